package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist keeps an ordered list of video references. Duplicates are
// permitted; the list is never deduplicated.
type Playlist struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description"`
	Videos      []bson.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
