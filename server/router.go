package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"streamhub/domain/repository"
	"streamhub/infrastructure/utils"
	httpHandler "streamhub/interfaces/http"
	"streamhub/interfaces/middleware"
)

type Handlers struct {
	User         httpHandler.IUserHandler
	Video        httpHandler.IVideoHandler
	Comment      httpHandler.ICommentHandler
	Like         httpHandler.ILikeHandler
	Playlist     httpHandler.IPlaylistHandler
	Subscription httpHandler.ISubscriptionHandler
	Channel      httpHandler.IChannelHandler
	Dashboard    httpHandler.IDashboardHandler
}

func InitiateRouter(
	handlers Handlers,
	tokens utils.ITokenManager,
	userRepository repository.IUser,
	corsOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api/v1")

	// Session entry points stay outside the auth middleware.
	users := api.Group("users")
	users.POST("/register", handlers.User.Register)
	users.POST("/login", handlers.User.Login)
	users.POST("/refresh-token", handlers.User.RefreshToken)

	auth := api.Group("")
	auth.Use(middleware.Auth(tokens, userRepository))

	auth.POST("/users/logout", handlers.User.Logout)
	auth.GET("/users/current-user", handlers.User.GetCurrentUser)
	auth.PATCH("/users/update-account", handlers.User.UpdateAccount)
	auth.POST("/users/change-password", handlers.User.ChangePassword)
	auth.PATCH("/users/avatar", handlers.User.UpdateAvatar)
	auth.PATCH("/users/cover-image", handlers.User.UpdateCoverImage)
	auth.GET("/users/history", handlers.User.GetWatchHistory)

	auth.POST("/videos", handlers.Video.Publish)
	auth.GET("/videos", handlers.Video.ListOwn)
	auth.GET("/videos/:videoId", handlers.Video.Get)
	auth.PATCH("/videos/:videoId", handlers.Video.Update)
	auth.DELETE("/videos/:videoId", handlers.Video.Delete)
	auth.PATCH("/videos/toggle/publish/:videoId", handlers.Video.TogglePublish)

	auth.GET("/comments/:videoId", handlers.Comment.List)
	auth.POST("/comments/:videoId", handlers.Comment.Add)
	auth.PATCH("/comments/c/:commentId", handlers.Comment.Update)
	auth.DELETE("/comments/c/:commentId", handlers.Comment.Delete)

	auth.POST("/likes/toggle/v/:videoId", handlers.Like.ToggleVideoLike)
	auth.POST("/likes/toggle/c/:commentId", handlers.Like.ToggleCommentLike)
	auth.GET("/likes/videos", handlers.Like.GetLikedVideos)

	auth.POST("/playlist", handlers.Playlist.Create)
	auth.GET("/playlist/user", handlers.Playlist.ListOwn)
	auth.GET("/playlist/:playlistId", handlers.Playlist.Get)
	auth.PATCH("/playlist/:playlistId", handlers.Playlist.Update)
	auth.DELETE("/playlist/:playlistId", handlers.Playlist.Delete)
	auth.PATCH("/playlist/add/:videoId/:playlistId", handlers.Playlist.AddVideo)
	auth.PATCH("/playlist/remove/:videoId/:playlistId", handlers.Playlist.RemoveVideo)

	auth.POST("/subscriptions/c/:channelId", handlers.Subscription.Subscribe)
	auth.DELETE("/subscriptions/c/:channelId", handlers.Subscription.Unsubscribe)

	auth.GET("/users/c/:username", handlers.Channel.GetProfile)

	auth.GET("/dashboard/stats", handlers.Dashboard.GetStats)
	auth.GET("/dashboard/videos", handlers.Dashboard.GetVideos)

	return router
}
