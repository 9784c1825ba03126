package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
)

type IVideo interface {
	Create(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	// UpdateDetails applies only the non-empty fields.
	UpdateDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (model.Video, error)
	SetPublishStatus(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	Delete(ctx context.Context, id bson.ObjectID) error
}
