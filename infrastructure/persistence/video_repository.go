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

type VideoRepository struct {
	db *mongo.Database
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) col() *mongo.Collection {
	return r.db.Collection(videosCollection)
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	now := utils.GetCurrentTime()
	video.ID = bson.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now
	if _, err := r.col().InsertOne(ctx, video); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create video failed")
		return model.Video{}, model.NewInternalError("Video could not be published")
	}
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var v model.Video
	err := r.col().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Video{}, model.NewNotFoundError("Video with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query video by id failed")
		return model.Video{}, model.NewInternalError("Video could not be fetched")
	}
	return v, nil
}

func (r *VideoRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	cursor, err := r.col().Find(ctx, bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: query videos by owner failed")
		return nil, model.NewInternalError("Videos could not be fetched")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: decode videos failed")
		return nil, model.NewInternalError("Videos could not be fetched")
	}
	return videos, nil
}

func (r *VideoRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (model.Video, error) {
	set := bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}
	if title != "" {
		set = append(set, bson.E{Key: "title", Value: title})
	}
	if description != "" {
		set = append(set, bson.E{Key: "description", Value: description})
	}
	if thumbnail != "" {
		set = append(set, bson.E{Key: "thumbnail", Value: thumbnail})
	}
	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: set}})
}

func (r *VideoRepository) SetPublishStatus(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPublished", Value: published},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}}})
}

// IncrementViews keeps the counter monotonic with a single $inc; no
// read-modify-write cycle.
func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: increment views failed")
		return model.NewInternalError("View count could not be updated")
	}
	if res.MatchedCount == 0 {
		return model.NewNotFoundError("Video with the given ID not found")
	}
	return nil
}

// Delete removes the video document only. Comments, likes and playlist
// references keep pointing at the deleted id; the views tolerate the
// dangling references.
func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete video failed")
		return model.NewInternalError("Video could not be deleted")
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Video with the given ID not found")
	}
	return nil
}

func (r *VideoRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.D) (model.Video, error) {
	var v model.Video
	err := r.col().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Video{}, model.NewNotFoundError("Video with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: update video failed")
		return model.Video{}, model.NewInternalError("Video could not be updated")
	}
	return v, nil
}
