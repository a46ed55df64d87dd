package comments

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/posts"
)

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// ListByPost retrieves every comment referencing the post, oldest
	// first (insertion order).
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*Comment, error)

	// DeleteByPost removes every comment referencing the post and
	// returns how many were removed. Used by the post cascade delete.
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
}

// PostStore is the slice of the post repository the comment service
// needs: existence checks plus appending the comment reference.
type PostStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*posts.Post, error)
	AddComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}

// Service defines the business logic interface for comments
type Service interface {
	// Add creates a comment on an existing post and appends its
	// reference to the post's comments list. Any authenticated user may
	// comment on any post.
	Add(ctx context.Context, req AddCommentRequest) (*Comment, error)

	// ListByPost retrieves the comments of an existing post in order.
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*Comment, error)
}
