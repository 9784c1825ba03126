package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ILike toggles are atomic at the store layer (conditional delete, then
// insert-if-absent) so two concurrent toggles cannot both insert. At most one
// Like row exists per (user, target) pair.
type ILike interface {
	// ToggleVideoLike reports whether the video ends up liked.
	ToggleVideoLike(ctx context.Context, userID, videoID bson.ObjectID) (bool, error)
	// ToggleCommentLike reports whether the comment ends up liked.
	ToggleCommentLike(ctx context.Context, userID, commentID bson.ObjectID) (bool, error)
}
