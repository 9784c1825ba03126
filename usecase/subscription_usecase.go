package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/cache"
)

type ISubscriptionUsecase interface {
	Subscribe(ctx context.Context, subscriber, channel bson.ObjectID) (model.Subscription, error)
	Unsubscribe(ctx context.Context, subscriber, channel bson.ObjectID) error
}

type subscriptionUsecase struct {
	subRepo   repository.ISubscription
	userRepo  repository.IUser
	viewCache cache.IViewCache
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, userRepo repository.IUser, viewCache cache.IViewCache) ISubscriptionUsecase {
	return &subscriptionUsecase{subRepo: subRepo, userRepo: userRepo, viewCache: viewCache}
}

func (u *subscriptionUsecase) Subscribe(ctx context.Context, subscriber, channel bson.ObjectID) (model.Subscription, error) {
	if subscriber == channel {
		return model.Subscription{}, model.NewBadRequestError("You cannot subscribe to your own channel")
	}
	channelUser, err := u.userRepo.GetByID(ctx, channel)
	if err != nil {
		return model.Subscription{}, err
	}
	exists, err := u.subRepo.Exists(ctx, subscriber, channel)
	if err != nil {
		return model.Subscription{}, err
	}
	if exists {
		return model.Subscription{}, model.NewConflictError("Already subscribed to this channel")
	}
	sub, err := u.subRepo.Create(ctx, model.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
	})
	if err != nil {
		return model.Subscription{}, err
	}
	// Cached profiles carry subscriberCount and isSubscribed; both just changed.
	u.viewCache.InvalidateChannelProfile(ctx, channelUser.Username)
	u.viewCache.InvalidateChannelStats(ctx, channel)
	return sub, nil
}

func (u *subscriptionUsecase) Unsubscribe(ctx context.Context, subscriber, channel bson.ObjectID) error {
	channelUser, err := u.userRepo.GetByID(ctx, channel)
	if err != nil {
		return err
	}
	if err := u.subRepo.Delete(ctx, subscriber, channel); err != nil {
		return err
	}
	u.viewCache.InvalidateChannelProfile(ctx, channelUser.Username)
	u.viewCache.InvalidateChannelStats(ctx, channel)
	return nil
}
