package timeline

import (
	"errors"
	"log"
	"net/http"

	"Linkup/internal/api/handlers"
	"Linkup/internal/core/timeline"
	"Linkup/internal/core/users"
)

// handleServiceError maps timeline service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case timeline.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, timeline.ErrUnauthenticated):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "User must be authenticated")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	default:
		log.Printf("ERROR: Timeline service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "StorageUnavailable", "An error occurred while fetching the timeline")
	}
}
