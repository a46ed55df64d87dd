package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/core/auth"
)

// Context keys for storing caller identity
type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "user_role"
	usernameKey contextKey = "username"
)

// AuthMiddleware enforces bearer-token authentication for protected
// routes. Token validation is delegated to the auth service; the
// middleware only does header plumbing and context injection.
type AuthMiddleware struct {
	authService auth.Service
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth ensures the request carries a valid bearer token.
// On success the caller's ID, username, and role are injected into the
// request context; on failure the request is rejected with 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		user, err := m.authService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		ctx = context.WithValue(ctx, userRoleKey, user.Role)
		ctx = context.WithValue(ctx, usernameKey, user.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated caller's ID from the request
// context. Returns the zero ObjectID when the request is unauthenticated.
func GetUserID(r *http.Request) primitive.ObjectID {
	if id, ok := r.Context().Value(userIDKey).(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

// GetUserRole extracts the authenticated caller's role from the request context
func GetUserRole(r *http.Request) string {
	if role, ok := r.Context().Value(userRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetUsername extracts the authenticated caller's username from the request context
func GetUsername(r *http.Request) string {
	if name, ok := r.Context().Value(usernameKey).(string); ok {
		return name
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthenticationRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
