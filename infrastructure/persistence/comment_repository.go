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

type CommentRepository struct {
	db *mongo.Database
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) col() *mongo.Collection {
	return r.db.Collection(commentsCollection)
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := utils.GetCurrentTime()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	if _, err := r.col().InsertOne(ctx, comment); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create comment failed")
		return model.Comment{}, model.NewInternalError("New comment could not be added")
	}
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var c model.Comment
	err := r.col().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, model.NewNotFoundError("Comment with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query comment by id failed")
		return model.Comment{}, model.NewInternalError("Comment could not be fetched")
	}
	return c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	var c model.Comment
	err := r.col().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: utils.GetCurrentTime()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Comment{}, model.NewNotFoundError("Comment with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: update comment failed")
		return model.Comment{}, model.NewInternalError("Comment could not be updated")
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete comment failed")
		return model.NewInternalError("Comment could not be deleted")
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Comment with the given ID not found")
	}
	return nil
}
