package auth

import (
	"errors"
	"log"
	"net/http"

	"Linkup/internal/api/handlers"
	"Linkup/internal/core/auth"
	"Linkup/internal/core/users"
)

// handleServiceError maps auth service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case auth.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, users.ErrUsernameTaken), errors.Is(err, users.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", err.Error())
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	default:
		log.Printf("ERROR: Auth service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "StorageUnavailable", "An internal error occurred")
	}
}
