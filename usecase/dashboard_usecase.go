package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/cache"
)

type IDashboardUsecase interface {
	// GetStats aggregates upload count, total views and subscriber counts for
	// the caller's own channel.
	GetStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error)
	GetVideos(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
}

type dashboardUsecase struct {
	videoRepo repository.IVideo
	viewRepo  repository.IDerivedView
	viewCache cache.IViewCache
}

func NewDashboardUsecase(videoRepo repository.IVideo, viewRepo repository.IDerivedView, viewCache cache.IViewCache) IDashboardUsecase {
	return &dashboardUsecase{videoRepo: videoRepo, viewRepo: viewRepo, viewCache: viewCache}
}

func (u *dashboardUsecase) GetStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	if stats, ok := u.viewCache.GetChannelStats(ctx, owner); ok {
		return stats, nil
	}
	stats, err := u.viewRepo.ChannelStats(ctx, owner)
	if err != nil {
		return dto.ChannelStats{}, err
	}
	u.viewCache.SetChannelStats(ctx, owner, stats)
	return stats, nil
}

func (u *dashboardUsecase) GetVideos(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	return u.videoRepo.GetByOwner(ctx, owner)
}
