package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func stageName(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func stageNames(pipeline []bson.D) []string {
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stageName(stage))
	}
	return names
}

func lookupValue(t *testing.T, stage bson.D) bson.D {
	t.Helper()
	assert.Equal(t, "$lookup", stageName(stage))
	value, ok := stage[0].Value.(bson.D)
	assert.True(t, ok)
	return value
}

func lookupField(t *testing.T, stage bson.D, key string) interface{} {
	t.Helper()
	for _, e := range lookupValue(t, stage) {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

func TestChannelProfilePipeline(t *testing.T) {
	viewer := bson.NewObjectID()
	pipeline := channelProfilePipeline("alice", viewer)

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(pipeline))

	// Subscriber rows join on channel, subscribed-channel rows on subscriber.
	assert.Equal(t, "channel", lookupField(t, pipeline[1], "foreignField"))
	assert.Equal(t, "subscribers", lookupField(t, pipeline[1], "as"))
	assert.Equal(t, "subscriber", lookupField(t, pipeline[2], "foreignField"))
	assert.Equal(t, "subscribedChannels", lookupField(t, pipeline[2], "as"))

	match, ok := pipeline[0][0].Value.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "username", match[0].Key)
	assert.Equal(t, "alice", match[0].Value)
}

func TestChannelStatsPipeline(t *testing.T) {
	owner := bson.NewObjectID()
	pipeline := channelStatsPipeline(owner)

	assert.Equal(t, []string{"$match", "$lookup", "$lookup", "$lookup", "$addFields", "$project"}, stageNames(pipeline))
	assert.Equal(t, videosCollection, lookupField(t, pipeline[3], "from"))
	assert.Equal(t, "publishedVideos", lookupField(t, pipeline[3], "as"))

	// The videos sub-pipeline strips the redundant owner reference.
	sub, ok := lookupField(t, pipeline[3], "pipeline").(mongo.Pipeline)
	assert.True(t, ok)
	assert.Len(t, sub, 1)
	assert.Equal(t, "$project", stageName(sub[0]))
}

func TestLikedVideosPipelineFiltersVideoLikes(t *testing.T) {
	user := bson.NewObjectID()
	pipeline := likedVideosPipeline(user)

	assert.Equal(t, []string{"$match", "$lookup", "$project", "$unwind"}, stageNames(pipeline))

	match, ok := pipeline[0][0].Value.(bson.D)
	assert.True(t, ok)
	// Comment likes must not leak into the liked-videos feed.
	assert.Equal(t, "video", match[0].Key)
	exists, ok := match[0].Value.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "$exists", exists[0].Key)
	assert.Equal(t, true, exists[0].Value)
	assert.Equal(t, "likedBy", match[1].Key)
	assert.Equal(t, user, match[1].Value)
}

func TestWatchHistoryPipeline(t *testing.T) {
	user := bson.NewObjectID()
	pipeline := watchHistoryPipeline(user)

	assert.Equal(t, []string{"$match", "$lookup", "$project"}, stageNames(pipeline))
	assert.Equal(t, "watchHistory", lookupField(t, pipeline[1], "localField"))
	assert.Equal(t, videosCollection, lookupField(t, pipeline[1], "from"))
}

func TestUnwindPreservesEmptyArrays(t *testing.T) {
	stage := unwindStage("$owner")

	value, ok := stage[0].Value.(bson.D)
	assert.True(t, ok)
	assert.Equal(t, "path", value[0].Key)
	assert.Equal(t, "$owner", value[0].Value)
	assert.Equal(t, "preserveNullAndEmptyArrays", value[1].Key)
	assert.Equal(t, true, value[1].Value)
}

func TestVideoCommentsPipeline(t *testing.T) {
	videoID := bson.NewObjectID()
	pipeline := videoCommentsPipeline(videoID)

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$project"}, stageNames(pipeline))
	assert.Equal(t, usersCollection, lookupField(t, pipeline[1], "from"))
	assert.Equal(t, "owner", lookupField(t, pipeline[1], "as"))
}

func TestPlaylistPipelineExpandsVideosWithOwners(t *testing.T) {
	pipeline := playlistPipeline(bson.NewObjectID())

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$lookup", "$project"}, stageNames(pipeline))
	assert.Equal(t, "videos", lookupField(t, pipeline[3], "localField"))

	sub, ok := lookupField(t, pipeline[3], "pipeline").(mongo.Pipeline)
	assert.True(t, ok)
	assert.Equal(t, []string{"$lookup", "$unwind"}, stageNames(sub))
}
