package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type LikeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) col() *mongo.Collection {
	return r.db.Collection(likesCollection)
}

func (r *LikeRepository) ToggleVideoLike(ctx context.Context, userID, videoID bson.ObjectID) (bool, error) {
	return r.toggle(ctx, userID, "video", videoID)
}

func (r *LikeRepository) ToggleCommentLike(ctx context.Context, userID, commentID bson.ObjectID) (bool, error) {
	return r.toggle(ctx, userID, "comment", commentID)
}

// toggle is a conditional delete followed, when nothing was deleted, by an
// upsert keyed on the same filter. Each step is a single atomic document
// operation, so two concurrent toggles cannot both insert: the upsert filter
// matches an existing row and $setOnInsert becomes a no-op.
func (r *LikeRepository) toggle(ctx context.Context, userID bson.ObjectID, targetField string, targetID bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "likedBy", Value: userID},
		{Key: targetField, Value: targetID},
	}

	res, err := r.col().DeleteOne(ctx, filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete like failed")
		return false, model.NewInternalError("Like could not be toggled")
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	now := utils.GetCurrentTime()
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "likedBy", Value: userID},
		{Key: targetField, Value: targetID},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}}}
	_, err = r.col().UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent identical toggle; the row
			// exists, which is the state this call wanted.
			return true, nil
		}
		logger.GetLogger().WithField("error", err).Error("mongo: upsert like failed")
		return false, model.NewInternalError("Like could not be toggled")
	}
	return true, nil
}
