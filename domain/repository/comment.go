package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
)

type IComment interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
