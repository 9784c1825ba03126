package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error)
	GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	GetByOwnerAndTitle(ctx context.Context, owner bson.ObjectID, title string) (model.Playlist, error)
	UpdateDetails(ctx context.Context, id bson.ObjectID, title, description string) (model.Playlist, error)
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
