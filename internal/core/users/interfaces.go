package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByIDs retrieves multiple users in a single batch query.
	// Returns a map of ID → User; missing users are simply absent from
	// the map (no error for missing users).
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*User, error)

	// Search finds users whose username matches the query,
	// case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*User, error)

	// UpdateProfile applies field-level changes to a user document and
	// returns the updated document.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, changes ProfileChanges) (*User, error)

	// AddPost / RemovePost maintain the ordered posts reference list on
	// the user document. AddPost appends; RemovePost is an
	// remove-if-present set operation so retries are safe.
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error
}

// UserService defines the interface for user business logic
type UserService interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetProfile retrieves the public profile view for a username.
	GetProfile(ctx context.Context, username string) (*ProfileView, error)

	// Search finds up to limit users matching the query.
	Search(ctx context.Context, query string, limit int) ([]*ProfileView, error)

	// ListFollowing returns public profiles of everyone the named user
	// follows, in follow order.
	ListFollowing(ctx context.Context, username string) ([]*ProfileView, error)

	// ListFollowers returns public profiles of everyone following the
	// named user.
	ListFollowers(ctx context.Context, username string) ([]*ProfileView, error)

	// UpdateProfile applies changes to the target user. Only the account
	// owner or an admin may update a profile.
	UpdateProfile(ctx context.Context, actorID primitive.ObjectID, actorRole string, targetID primitive.ObjectID, changes ProfileChanges) (*ProfileView, error)
}
