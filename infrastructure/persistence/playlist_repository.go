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

type PlaylistRepository struct {
	db *mongo.Database
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) col() *mongo.Collection {
	return r.db.Collection(playlistsCollection)
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	now := utils.GetCurrentTime()
	playlist.ID = bson.NewObjectID()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	if _, err := r.col().InsertOne(ctx, playlist); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: create playlist failed")
		return model.Playlist{}, model.NewInternalError("Playlist could not be created")
	}
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	var p model.Playlist
	err := r.col().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Playlist{}, model.NewNotFoundError("Playlist with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query playlist by id failed")
		return model.Playlist{}, model.NewInternalError("Playlist could not be fetched")
	}
	return p, nil
}

func (r *PlaylistRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	cursor, err := r.col().Find(ctx, bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: query playlists by owner failed")
		return nil, model.NewInternalError("Playlists could not be fetched")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	playlists := []model.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: decode playlists failed")
		return nil, model.NewInternalError("Playlists could not be fetched")
	}
	return playlists, nil
}

func (r *PlaylistRepository) GetByOwnerAndTitle(ctx context.Context, owner bson.ObjectID, title string) (model.Playlist, error) {
	var p model.Playlist
	err := r.col().FindOne(ctx, bson.D{
		{Key: "owner", Value: owner},
		{Key: "title", Value: title},
	}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Playlist{}, model.NewNotFoundError("Playlist not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: query playlist by title failed")
		return model.Playlist{}, model.NewInternalError("Playlist could not be fetched")
	}
	return p, nil
}

func (r *PlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description string) (model.Playlist, error) {
	set := bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}
	if title != "" {
		set = append(set, bson.E{Key: "title", Value: title})
	}
	if description != "" {
		set = append(set, bson.E{Key: "description", Value: description})
	}
	return r.findOneAndUpdate(ctx, id, bson.D{{Key: "$set", Value: set}})
}

// AddVideo appends without deduplication; a video may appear more than once
// in a playlist.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$push", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}},
	})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: delete playlist failed")
		return model.NewInternalError("Playlist could not be deleted")
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError("Playlist with the given ID not found")
	}
	return nil
}

func (r *PlaylistRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.D) (model.Playlist, error) {
	var p model.Playlist
	err := r.col().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Playlist{}, model.NewNotFoundError("Playlist with the given ID not found")
		}
		logger.GetLogger().WithField("error", err).Error("mongo: update playlist failed")
		return model.Playlist{}, model.NewInternalError("Playlist could not be updated")
	}
	return p, nil
}
