package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. A channel is just a User referenced by
// Subscription rows; there is no separate channel entity.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	Fullname     string          `bson:"fullname" json:"fullname"`
	Password     string          `bson:"password" json:"-"`
	Avatar       string          `bson:"avatar" json:"avatar"`
	CoverImage   string          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	WatchHistory []bson.ObjectID `bson:"watchHistory" json:"watchHistory"`
	RefreshToken string          `bson:"refreshToken,omitempty" json:"-"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}
