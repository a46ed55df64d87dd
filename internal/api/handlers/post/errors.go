package post

import (
	"errors"
	"log"
	"net/http"

	"Linkup/internal/api/handlers"
	"Linkup/internal/core/posts"
	"Linkup/internal/core/users"
)

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You are not authorized")
	case posts.IsPartialDelete(err):
		// Comments are gone but the post remains. Not a success and not
		// a generic failure: the client should retry the delete.
		log.Printf("ERROR: Partial post delete: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "PartialFailure", "The post delete only partially completed; please retry")
	default:
		log.Printf("ERROR: Post service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "StorageUnavailable", "An internal error occurred")
	}
}
