package user

import (
	"errors"
	"log"
	"net/http"

	"Linkup/internal/api/handlers"
	"Linkup/internal/core/social"
	"Linkup/internal/core/users"
)

// handleServiceError maps user/social service errors to HTTP responses.
// NotFound (absent target) and Forbidden (present but not allowed) are
// kept distinct on purpose.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, social.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "SelfFollowRejected", "You cannot follow yourself")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case errors.Is(err, users.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You are not authorized to modify this profile")
	case errors.Is(err, users.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "Conflict", err.Error())
	case social.IsPartialWrite(err):
		// One side of the dual write committed. Surfaced as its own kind
		// so the client knows a retry of the toggle will repair the graph.
		log.Printf("ERROR: Partial follow write: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "PartialFailure", "The follow update only partially completed; please retry")
	default:
		log.Printf("ERROR: User service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "StorageUnavailable", "An internal error occurred")
	}
}
