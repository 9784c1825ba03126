package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like targets exactly one of Video or Comment. The unset reference stays
// nil so the stored document never carries both fields.
type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	LikedBy   bson.ObjectID  `bson:"likedBy" json:"likedBy"`
	Video     *bson.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}
