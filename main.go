package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"streamhub/infrastructure/cache"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/persistence"
	"streamhub/infrastructure/storage"
	"streamhub/infrastructure/utils"
	httpHandler "streamhub/interfaces/http"
	"streamhub/server"
	"streamhub/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Non-destructive; OS env still has precedence.
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Reload()

	cfg := configuration.C

	mongoClient, err := persistence.NewMongoDb(
		cfg.Database.Mongo.Host,
		cfg.Database.Mongo.Port,
		cfg.Database.Mongo.User,
		cfg.Database.Mongo.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		pingCancel()
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	pingCancel()
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoClient.Database(cfg.Database.Mongo.Name)

	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Index creation failed")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Media.TempDir, 0o755); err != nil {
		logger.GetLogger().WithField("error", err).Error("Temp dir creation failed")
		os.Exit(1)
	}

	redisClient, err := cache.NewCache(ctx,
		fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port),
		cfg.RedisClient.Username,
		cfg.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - view caching disabled")
		redisClient = nil
	}
	viewCache := cache.NewViewCache(redisClient)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	viewRepository := persistence.NewViewRepository(db)

	tokenManager := utils.NewTokenManager(cfg.Token)
	mediaStorage := storage.NewMediaStorage(cfg.Media)

	userUsecase := usecase.NewUserUsecase(userRepository, viewRepository, tokenManager, mediaStorage)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, mediaStorage, viewCache)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, viewRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, viewRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository, viewRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository, viewCache)
	channelUsecase := usecase.NewChannelUsecase(viewRepository, viewCache)
	dashboardUsecase := usecase.NewDashboardUsecase(videoRepository, viewRepository, viewCache)

	handlers := server.Handlers{
		User:         httpHandler.NewUserHandler(userUsecase),
		Video:        httpHandler.NewVideoHandler(videoUsecase),
		Comment:      httpHandler.NewCommentHandler(commentUsecase),
		Like:         httpHandler.NewLikeHandler(likeUsecase),
		Playlist:     httpHandler.NewPlaylistHandler(playlistUsecase),
		Subscription: httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Channel:      httpHandler.NewChannelHandler(channelUsecase),
		Dashboard:    httpHandler.NewDashboardHandler(dashboardUsecase),
	}

	router := server.InitiateRouter(handlers, tokenManager, userRepository, cfg.App.CORSOrigins)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).Info("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("HTTP server shutdown failed")
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.GetLogger().WithField("error", err).Error("Redis close failed")
			}
		}
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.GetLogger().WithField("error", err).Error("MongoDB disconnect failed")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server exited with error")
		os.Exit(1)
	}
}
