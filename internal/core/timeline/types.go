package timeline

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/posts"
	"Linkup/internal/core/users"
)

// DefaultPageSize is applied when the request doesn't carry a usable
// page size.
const DefaultPageSize = 10

// FolloweeWindow bounds how far back followees' posts are pulled into
// the feed. The caller's own posts are not windowed.
const FolloweeWindow = 24 * time.Hour

// UserStore is the slice of the user repository the timeline needs:
// the caller's following set plus batch author resolution.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*users.User, error)
}

// PostStore is the slice of the post repository the timeline needs.
type PostStore interface {
	ListByAuthor(ctx context.Context, authorID primitive.ObjectID, since *time.Time, skip, limit int) ([]*posts.Post, error)
}

// Service defines timeline business logic interface
type Service interface {
	GetTimeline(ctx context.Context, req GetTimelineRequest) (*TimelineResponse, error)
}

// GetTimelineRequest represents input for fetching a user's timeline.
// Page is 1-indexed at the interface; PageSize <= 0 falls back to
// DefaultPageSize.
type GetTimelineRequest struct {
	UserID   primitive.ObjectID `json:"-"` // Extracted from auth, not from query params
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// TimelineResponse represents the assembled feed: the caller's own
// window first, then one independently-windowed segment per followee in
// follow order. Ordering is descending by creation time within each
// segment only.
type TimelineResponse struct {
	Feed     []*posts.PostView `json:"feed"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// Errors
var (
	ErrUnauthenticated = errors.New("caller identity required")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
