package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription is one row per (subscriber, channel) pair instead of an array
// field on the user. Subscribe/unsubscribe and count queries stay indexed
// lookups rather than array scans.
type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
