package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

// Action names the outcome of the follow toggle.
type Action string

const (
	ActionFollowed   Action = "followed"
	ActionUnfollowed Action = "unfollowed"
)

// Repository defines the storage primitives the social graph needs.
// The Add*/Remove* operations must be set-based (add-if-absent /
// remove-if-present) single-document updates so that concurrent toggles
// and retries after partial failures cannot corrupt the graph.
type Repository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)

	// AddFollowing adds target to actor's following set. Returns true if
	// the document was modified, false if target was already present.
	AddFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error)

	// RemoveFollowing removes target from actor's following set. Returns
	// true if the document was modified.
	RemoveFollowing(ctx context.Context, actorID, targetID primitive.ObjectID) (bool, error)

	// AddFollower / RemoveFollower maintain the mirror side on the
	// target's document. Both are idempotent.
	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
}

// FollowResult reports what the toggle did.
type FollowResult struct {
	Action         Action `json:"action"`
	TargetUsername string `json:"targetUsername"`
}

// Service owns the follow/unfollow state transition between two user
// documents.
type Service interface {
	// FollowOrUnfollow toggles the follow relation between actor and the
	// user named by targetUsername, keeping both documents' sets
	// consistent (A in B.followers iff B in A.following).
	FollowOrUnfollow(ctx context.Context, actorID primitive.ObjectID, targetUsername string) (*FollowResult, error)
}
