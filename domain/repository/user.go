package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
)

type IUser interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error)
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (model.User, error)
	UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error
	UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (model.User, error)
	// SetRefreshToken overwrites the stored renewal credential; an empty
	// token clears it (logout / invalidation by overwrite).
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	// PushWatchHistory moves videoID to the front of the user's watch
	// history, removing any earlier occurrence first.
	PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error
}
