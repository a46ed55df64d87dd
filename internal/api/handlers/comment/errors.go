package comment

import (
	"errors"
	"log"
	"net/http"

	"Linkup/internal/api/handlers"
	"Linkup/internal/core/comments"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, comments.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	default:
		log.Printf("ERROR: Comment service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "StorageUnavailable", "An internal error occurred")
	}
}
