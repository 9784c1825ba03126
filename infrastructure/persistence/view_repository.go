package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
)

// ViewRepository is the derived-view builder. Each view is a fixed
// aggregation pipeline over the entity collections; every $lookup is a
// left-outer join and every flatten of a one-element lookup array uses
// $unwind with preserveNullAndEmptyArrays, so an absent related row surfaces
// as null instead of failing the view.
type ViewRepository struct {
	db *mongo.Database
}

func NewViewRepository(db *mongo.Database) repository.IDerivedView {
	return &ViewRepository{db: db}
}

func (r *ViewRepository) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, error) {
	profiles, err := aggregate[dto.ChannelProfile](ctx, r.db.Collection(usersCollection), channelProfilePipeline(username, viewer))
	if err != nil {
		return dto.ChannelProfile{}, err
	}
	if len(profiles) == 0 {
		return dto.ChannelProfile{}, model.NewNotFoundError("Channel doesn't exist")
	}
	return profiles[0], nil
}

func (r *ViewRepository) ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	stats, err := aggregate[dto.ChannelStats](ctx, r.db.Collection(usersCollection), channelStatsPipeline(owner))
	if err != nil {
		return dto.ChannelStats{}, err
	}
	if len(stats) == 0 {
		return dto.ChannelStats{}, model.NewNotFoundError("Channel stats could not be fetched")
	}
	return stats[0], nil
}

// LikedVideos returns rows in the order the store yields them; no ordering
// guarantee beyond stability for a given store state.
func (r *ViewRepository) LikedVideos(ctx context.Context, user bson.ObjectID) ([]dto.LikedVideo, error) {
	return aggregate[dto.LikedVideo](ctx, r.db.Collection(likesCollection), likedVideosPipeline(user))
}

func (r *ViewRepository) WatchHistory(ctx context.Context, user bson.ObjectID) (dto.WatchHistory, error) {
	histories, err := aggregate[dto.WatchHistory](ctx, r.db.Collection(usersCollection), watchHistoryPipeline(user))
	if err != nil {
		return dto.WatchHistory{}, err
	}
	if len(histories) == 0 {
		return dto.WatchHistory{}, model.NewNotFoundError("User not found")
	}
	return histories[0], nil
}

func (r *ViewRepository) VideoComments(ctx context.Context, videoID bson.ObjectID) ([]dto.CommentView, error) {
	return aggregate[dto.CommentView](ctx, r.db.Collection(commentsCollection), videoCommentsPipeline(videoID))
}

func (r *ViewRepository) PlaylistWithContents(ctx context.Context, id bson.ObjectID) (dto.PlaylistView, error) {
	playlists, err := aggregate[dto.PlaylistView](ctx, r.db.Collection(playlistsCollection), playlistPipeline(id))
	if err != nil {
		return dto.PlaylistView{}, err
	}
	if len(playlists) == 0 {
		return dto.PlaylistView{}, model.NewNotFoundError("Playlist with the given ID not found")
	}
	return playlists[0], nil
}

func aggregate[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: aggregation failed")
		return nil, model.NewInternalError("View could not be computed")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		logger.GetLogger().WithField("error", err).Error("mongo: decoding aggregation results failed")
		return nil, model.NewInternalError("View could not be computed")
	}
	return results, nil
}

// lookupStage builds a plain left-outer $lookup.
func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

// lookupPipelineStage builds a $lookup whose matches run through a
// sub-pipeline before landing in the output array.
func lookupPipelineStage(from, localField, foreignField, as string, sub mongo.Pipeline) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
		{Key: "pipeline", Value: sub},
	}}}
}

// unwindStage flattens a one-element array field to a scalar; an empty array
// becomes null rather than dropping the row.
func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

// ownerProjection is the reduced user shape embedded in views.
var ownerProjection = bson.D{{Key: "$project", Value: bson.D{
	{Key: "username", Value: 1},
	{Key: "fullname", Value: 1},
	{Key: "avatar", Value: 1},
}}}

func channelProfilePipeline(username string, viewer bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		// The caller lowercases the username, matching how it is stored.
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		lookupStage(subscriptionsCollection, "_id", "channel", "subscribers"),
		lookupStage(subscriptionsCollection, "_id", "subscriber", "subscribedChannels"),
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "subscribedChannelsCount", Value: bson.D{{Key: "$size", Value: "$subscribedChannels"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$subscribers.subscriber"}}}},
				{Key: "then", Value: true},
				{Key: "else", Value: false},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "fullname", Value: 1},
			{Key: "username", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "subscribedChannelsCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "email", Value: 1},
		}}},
	}
}

func channelStatsPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: owner}}}},
		lookupStage(subscriptionsCollection, "_id", "channel", "subscribers"),
		lookupStage(subscriptionsCollection, "_id", "subscriber", "subscribedTo"),
		lookupPipelineStage(videosCollection, "_id", "owner", "publishedVideos", mongo.Pipeline{
			{{Key: "$project", Value: bson.D{{Key: "owner", Value: 0}}}},
		}),
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalVideoViewCount", Value: bson.D{{Key: "$sum", Value: "$publishedVideos.views"}}},
			{Key: "subscriberCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "subscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "publishedVideos", Value: 1},
			{Key: "totalVideoViewCount", Value: 1},
			{Key: "subscriberCount", Value: 1},
			{Key: "subscribedToCount", Value: 1},
		}}},
	}
}

func likedVideosPipeline(user bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
			{Key: "likedBy", Value: user},
		}}},
		lookupPipelineStage(videosCollection, "video", "_id", "video", mongo.Pipeline{
			lookupPipelineStage(usersCollection, "owner", "_id", "owner", mongo.Pipeline{ownerProjection}),
			{{Key: "$project", Value: bson.D{
				{Key: "thumbnail", Value: 1},
				{Key: "owner", Value: 1},
				{Key: "title", Value: 1},
				{Key: "videoFile", Value: 1},
			}}},
			unwindStage("$owner"),
		}),
		{{Key: "$project", Value: bson.D{{Key: "video", Value: 1}}}},
		unwindStage("$video"),
	}
}

func watchHistoryPipeline(user bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: user}}}},
		lookupPipelineStage(videosCollection, "watchHistory", "_id", "watchHistory", mongo.Pipeline{
			lookupPipelineStage(usersCollection, "owner", "_id", "owner", mongo.Pipeline{ownerProjection}),
			unwindStage("$owner"),
			{{Key: "$project", Value: bson.D{
				{Key: "thumbnail", Value: 1},
				{Key: "title", Value: 1},
				{Key: "videoFile", Value: 1},
				{Key: "views", Value: 1},
				{Key: "owner", Value: 1},
				{Key: "createdAt", Value: 1},
			}}},
		}),
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "fullname", Value: 1},
			{Key: "email", Value: 1},
			{Key: "watchHistory", Value: 1},
		}}},
	}
}

func videoCommentsPipeline(videoID bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		lookupPipelineStage(usersCollection, "owner", "_id", "owner", mongo.Pipeline{ownerProjection}),
		unwindStage("$owner"),
		{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "video", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
		}}},
	}
}

func playlistPipeline(id bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		lookupPipelineStage(usersCollection, "owner", "_id", "owner", mongo.Pipeline{ownerProjection}),
		unwindStage("$owner"),
		lookupPipelineStage(videosCollection, "videos", "_id", "videos", mongo.Pipeline{
			lookupPipelineStage(usersCollection, "owner", "_id", "owner", mongo.Pipeline{ownerProjection}),
			unwindStage("$owner"),
		}),
		{{Key: "$project", Value: bson.D{
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "videos", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
		}}},
	}
}
