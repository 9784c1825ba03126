package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
)

// IDerivedView computes read-only composite documents by joining collections.
// Every join has left-outer semantics: missing related rows never fail the
// view, they surface as null after flattening.
type IDerivedView interface {
	// ChannelProfile fails with not-found when no user matches the
	// case-folded username.
	ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, error)
	ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error)
	LikedVideos(ctx context.Context, user bson.ObjectID) ([]dto.LikedVideo, error)
	WatchHistory(ctx context.Context, user bson.ObjectID) (dto.WatchHistory, error)
	VideoComments(ctx context.Context, videoID bson.ObjectID) ([]dto.CommentView, error)
	PlaylistWithContents(ctx context.Context, id bson.ObjectID) (dto.PlaylistView, error)
}
