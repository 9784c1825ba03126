package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) col() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := utils.GetCurrentTime()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.WatchHistory == nil {
		user.WatchHistory = []bson.ObjectID{}
	}
	if _, err := r.col().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.NewConflictError("User with this email or username already exists")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: create user failed")
		return model.User{}, model.NewInternalError("User could not be created")
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.NewNotFoundError("User not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query user by id failed")
		return model.User{}, model.NewInternalError("User could not be fetched")
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.col().FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.NewNotFoundError("User not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query user by username failed")
		return model.User{}, model.NewInternalError("User could not be fetched")
	}
	return u, nil
}

func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}}
	var u model.User
	err := r.col().FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.NewNotFoundError("User not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query user by username or email failed")
		return model.User{}, model.NewInternalError("User could not be fetched")
	}
	return u, nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (model.User, error) {
	set := bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}
	if fullname != "" {
		set = append(set, bson.E{Key: "fullname", Value: fullname})
	}
	if email != "" {
		set = append(set, bson.E{Key: "email", Value: email})
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	_, err := r.findOneAndSet(ctx, id, bson.D{
		{Key: "password", Value: passwordHash},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
	return err
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "avatar", Value: url},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "coverImage", Value: url},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}}}}
	if token == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}}}
	}
	res, err := r.col().UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: set refresh token failed")
		return model.NewInternalError("Session could not be updated")
	}
	if res.MatchedCount == 0 {
		return model.NewNotFoundError("User not found")
	}
	return nil
}

// PushWatchHistory pulls any earlier occurrence of the video before pushing
// it to the front, keeping the list most-recent-first without duplicates.
func (r *UserRepository) PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	filter := bson.D{{Key: "_id", Value: id}}
	pull := bson.D{{Key: "$pull", Value: bson.D{{Key: "watchHistory", Value: videoID}}}}
	if _, err := r.col().UpdateOne(ctx, filter, pull); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: watch history pull failed")
		return model.NewInternalError("Watch history could not be updated")
	}
	push := bson.D{{Key: "$push", Value: bson.D{{Key: "watchHistory", Value: bson.D{
		{Key: "$each", Value: bson.A{videoID}},
		{Key: "$position", Value: 0},
	}}}}}
	res, err := r.col().UpdateOne(ctx, filter, push)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: watch history push failed")
		return model.NewInternalError("Watch history could not be updated")
	}
	if res.MatchedCount == 0 {
		return model.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) findOneAndSet(ctx context.Context, id bson.ObjectID, set bson.D) (model.User, error) {
	var u model.User
	err := r.col().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.NewNotFoundError("User not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.NewConflictError("User with this email already exists")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: update user failed")
		return model.User{}, model.NewInternalError("User could not be updated")
	}
	return u, nil
}
