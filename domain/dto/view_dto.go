// Package dto holds request payloads and the read-only composite documents
// produced by the derived-view pipelines. Owner fields flattened out of
// one-element lookup arrays are pointers: an absent related row surfaces as
// JSON null, uniformly across every view.
package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VideoOwner is the reduced user shape embedded in view documents.
type VideoOwner struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	Username string        `bson:"username" json:"username"`
	Fullname string        `bson:"fullname" json:"fullname"`
	Avatar   string        `bson:"avatar" json:"avatar"`
}

type ChannelProfile struct {
	ID                      bson.ObjectID `bson:"_id" json:"_id"`
	Fullname                string        `bson:"fullname" json:"fullname"`
	Username                string        `bson:"username" json:"username"`
	SubscribersCount        int64         `bson:"subscribersCount" json:"subscribersCount"`
	SubscribedChannelsCount int64         `bson:"subscribedChannelsCount" json:"subscribedChannelsCount"`
	IsSubscribed            bool          `bson:"isSubscribed" json:"isSubscribed"`
	Avatar                  string        `bson:"avatar" json:"avatar"`
	CoverImage              string        `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Email                   string        `bson:"email" json:"email"`
}

// VideoSummary is a video with its owner reference projected out (dashboard)
// or expanded (playlists).
type VideoSummary struct {
	ID          bson.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string        `bson:"videoFile" json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail" json:"thumbnail"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Views       int64         `bson:"views" json:"views"`
	Owner       *VideoOwner   `bson:"owner,omitempty" json:"owner,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}

type ChannelStats struct {
	ID                  bson.ObjectID  `bson:"_id" json:"_id"`
	PublishedVideos     []VideoSummary `bson:"publishedVideos" json:"publishedVideos"`
	TotalVideoViewCount int64          `bson:"totalVideoViewCount" json:"totalVideoViewCount"`
	SubscriberCount     int64          `bson:"subscriberCount" json:"subscriberCount"`
	SubscribedToCount   int64          `bson:"subscribedToCount" json:"subscribedToCount"`
}

type LikedVideoItem struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
	Title     string        `bson:"title" json:"title"`
	VideoFile string        `bson:"videoFile" json:"videoFile"`
	Owner     *VideoOwner   `bson:"owner" json:"owner"`
}

// LikedVideo is one row of the liked-videos feed: the like id plus its video
// flattened to a single object.
type LikedVideo struct {
	ID    bson.ObjectID   `bson:"_id" json:"_id"`
	Video *LikedVideoItem `bson:"video" json:"video"`
}

type WatchedVideo struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
	Title     string        `bson:"title" json:"title"`
	VideoFile string        `bson:"videoFile" json:"videoFile"`
	Views     int64         `bson:"views" json:"views"`
	Owner     *VideoOwner   `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type WatchHistory struct {
	ID           bson.ObjectID  `bson:"_id" json:"_id"`
	Username     string         `bson:"username" json:"username"`
	Fullname     string         `bson:"fullname" json:"fullname"`
	Email        string         `bson:"email" json:"email"`
	WatchHistory []WatchedVideo `bson:"watchHistory" json:"watchHistory"`
}

type CommentView struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Video     bson.ObjectID `bson:"video" json:"video"`
	Owner     *VideoOwner   `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type PlaylistView struct {
	ID          bson.ObjectID  `bson:"_id" json:"_id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Owner       *VideoOwner    `bson:"owner" json:"owner"`
	Videos      []VideoSummary `bson:"videos" json:"videos"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
