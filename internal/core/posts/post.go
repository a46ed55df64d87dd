package posts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post document. Likes is a set of user IDs; Comments
// is the authoritative ordered list of comment references for the post.
type Post struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	AuthorID    primitive.ObjectID   `json:"authorId" bson:"userId"`
	Description string               `json:"description" bson:"description"`
	ImageURL    string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Likes       []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments    []primitive.ObjectID `json:"comments" bson:"comments"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// AuthorView is the minimal public profile attached to posts in feeds
// and single-post views.
type AuthorView struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	AvatarURL string             `json:"avatarUrl,omitempty"`
}

// PostView is a post enriched with its author's public profile. The
// enrichment is a read-only join; the underlying documents are never
// mutated by view assembly.
type PostView struct {
	ID           primitive.ObjectID `json:"id"`
	Author       *AuthorView        `json:"author"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"imageUrl,omitempty"`
	LikeCount    int                `json:"likeCount"`
	CommentCount int                `json:"commentCount"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// NewPostView projects a post and its (possibly missing) author onto
// the public view. A nil author yields a view without author details
// rather than an error, so one dangling reference can't sink a feed.
func NewPostView(p *Post, author *AuthorView) *PostView {
	return &PostView{
		ID:           p.ID,
		Author:       author,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		LikeCount:    len(p.Likes),
		CommentCount: len(p.Comments),
		CreatedAt:    p.CreatedAt,
	}
}

// CreatePostRequest is the input for creating a post. ImageURL points at
// already-hosted media; this service never touches file storage.
type CreatePostRequest struct {
	AuthorID    primitive.ObjectID `json:"-"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl,omitempty"`
}

// UpdatePostRequest carries the fields a post edit may touch. Nil
// pointers mean "leave unchanged".
type UpdatePostRequest struct {
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// IsEmpty reports whether the update would touch nothing.
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Description == nil && r.ImageURL == nil
}

// LikeAction names the outcome of the like toggle.
type LikeAction string

const (
	ActionLiked   LikeAction = "liked"
	ActionUnliked LikeAction = "unliked"
)

// LikeResult reports what the like toggle did.
type LikeResult struct {
	Action LikeAction         `json:"action"`
	PostID primitive.ObjectID `json:"postId"`
}
