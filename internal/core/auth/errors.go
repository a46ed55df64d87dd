package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	// Deliberately one error for both cases so login doesn't leak which
	// usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned for missing, malformed, expired, or
	// forged tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

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
