package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type SubscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) col() *mongo.Collection {
	return r.db.Collection(subscriptionsCollection)
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	now := utils.GetCurrentTime()
	sub.ID = bson.NewObjectID()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if _, err := r.col().InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.Subscription{}, model.NewConflictError("Already subscribed to this channel")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: create subscription failed")
		return model.Subscription{}, model.NewInternalError("Subscription could not be created")
	}
	return sub, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriber, channel bson.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete subscription failed")
		return model.NewInternalError("Subscription could not be removed")
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Subscription not found")
	}
	return nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	err := r.col().FindOne(ctx, bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query subscription failed")
		return false, model.NewInternalError("Subscription could not be checked")
	}
	return true, nil
}
