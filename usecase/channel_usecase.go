package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/cache"
)

type IChannelUsecase interface {
	// GetProfile resolves a channel by username, with counts and the viewer's
	// subscription flag folded in.
	GetProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, error)
}

type channelUsecase struct {
	viewRepo  repository.IDerivedView
	viewCache cache.IViewCache
}

func NewChannelUsecase(viewRepo repository.IDerivedView, viewCache cache.IViewCache) IChannelUsecase {
	return &channelUsecase{viewRepo: viewRepo, viewCache: viewCache}
}

func (u *channelUsecase) GetProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return dto.ChannelProfile{}, model.NewValidationError("Username is required")
	}
	if profile, ok := u.viewCache.GetChannelProfile(ctx, username, viewer); ok {
		return profile, nil
	}
	profile, err := u.viewRepo.ChannelProfile(ctx, username, viewer)
	if err != nil {
		return dto.ChannelProfile{}, err
	}
	u.viewCache.SetChannelProfile(ctx, username, viewer, profile)
	return profile, nil
}
