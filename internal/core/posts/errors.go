package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post lookup finds no matching document
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when the actor may not mutate or delete the post.
	// Distinct from ErrNotFound: the post exists, the actor just isn't allowed.
	ErrNotAuthorized = errors.New("not authorized to modify this post")
)

// PartialDeleteError reports a cascade delete that removed the post's
// comments but failed before the post itself was deleted. The operation
// is retryable: re-running the delete finds zero comments and attempts
// the post deletion again.
type PartialDeleteError struct {
	PostID          string
	CommentsRemoved int64
	Err             error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("partial delete of post %s: %d comments removed but post deletion failed: %v", e.PostID, e.CommentsRemoved, e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

// IsPartialDelete checks if an error is a partial cascade-delete failure
func IsPartialDelete(err error) bool {
	var pd *PartialDeleteError
	return errors.As(err, &pd)
}

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
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
