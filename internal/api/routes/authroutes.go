package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Linkup/internal/api/handlers/auth"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/auth"
	"Linkup/internal/core/users"
)

// AuthRoutes returns the /auth subrouter: the authenticated identity
// check.
func AuthRoutes(authService auth.Service, userService users.UserService, authMW *middleware.AuthMiddleware) chi.Router {
	ah := authHandlers.NewHandler(authService, userService)

	r := chi.NewRouter()

	r.With(authMW.RequireAuth).Get("/me", ah.Me)

	return r
}
