package posts

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/users"
)

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Post, error)

	// ListByAuthor retrieves an author's posts sorted by createdAt
	// descending. A non-nil since restricts to posts created at or after
	// that instant. skip/limit window the sorted result; limit <= 0
	// means no limit.
	ListByAuthor(ctx context.Context, authorID primitive.ObjectID, since *time.Time, skip, limit int) ([]*Post, error)

	// Update applies field-level changes and stamps updatedAt.
	Update(ctx context.Context, id primitive.ObjectID, req UpdatePostRequest) error

	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddLike adds userID to the post's like set iff it is absent.
	// Returns true if the document was modified, false if the user had
	// already liked the post. Returns ErrNotFound if the post is absent.
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error)

	// RemoveLike removes userID from the like set if present. Returns
	// true if the document was modified.
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error)

	// AddComment appends a comment reference to the post's ordered
	// comments list.
	AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}

// UserStore is the slice of the user repository the post service needs:
// author resolution plus maintenance of the posts reference list.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*users.User, error)
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error
}

// CommentStore is the slice of the comment repository the post service
// needs for cascade deletes.
type CommentStore interface {
	// DeleteByPost removes every comment referencing the post and
	// returns how many were removed.
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

// Service defines the business logic interface for posts
type Service interface {
	// Create inserts the post and appends its ID to the author's posts list.
	Create(ctx context.Context, req CreatePostRequest) (*PostView, error)

	// Get retrieves a single post with its author's public profile.
	Get(ctx context.Context, id primitive.ObjectID) (*PostView, error)

	// ListByUsername retrieves all posts by the named user, newest first.
	ListByUsername(ctx context.Context, username string) ([]*PostView, error)

	// Update edits a post. Only the owner may edit (AccessPolicy.CanMutate).
	Update(ctx context.Context, actorID, postID primitive.ObjectID, req UpdatePostRequest) error

	// Delete removes a post and cascades to its comments. Owner or admin
	// only (AccessPolicy.CanDelete). Comments are deleted first; a
	// failure between the two steps surfaces as *PartialDeleteError.
	Delete(ctx context.Context, actorID primitive.ObjectID, actorRole string, postID primitive.ObjectID) error

	// ToggleLike adds the actor to the post's like set if absent,
	// removes them if present.
	ToggleLike(ctx context.Context, actorID, postID primitive.ObjectID) (*LikeResult, error)
}
