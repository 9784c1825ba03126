package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
)

type ISubscription interface {
	Create(ctx context.Context, sub model.Subscription) (model.Subscription, error)
	Delete(ctx context.Context, subscriber, channel bson.ObjectID) error
	Exists(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error)
}
