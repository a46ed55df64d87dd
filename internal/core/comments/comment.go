package comments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment document. A comment always references
// exactly one post; the post's comments list is the authoritative
// membership source and comments are only ever deleted as a cascade of
// post deletion.
type Comment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AuthorID    primitive.ObjectID `json:"authorId" bson:"userId"`
	PostID      primitive.ObjectID `json:"postId" bson:"postId"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// AddCommentRequest is the input for appending a comment to a post.
type AddCommentRequest struct {
	AuthorID    primitive.ObjectID `json:"-"`
	PostID      primitive.ObjectID `json:"postId"`
	Description string             `json:"description"`
}
