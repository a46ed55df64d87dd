package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Linkup/internal/api/handlers/auth"
	userHandlers "Linkup/internal/api/handlers/user"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/auth"
	"Linkup/internal/core/social"
	"Linkup/internal/core/users"
)

// UserRoutes returns the /users subrouter: signup/login, profile
// lookup, search, follow listings, profile update, and the follow
// toggle.
func UserRoutes(
	authService auth.Service,
	userService users.UserService,
	socialService social.Service,
	authMW *middleware.AuthMiddleware,
) chi.Router {
	ah := authHandlers.NewHandler(authService, userService)
	uh := userHandlers.NewHandler(userService, socialService)

	r := chi.NewRouter()

	// Public routes
	r.Post("/signup", ah.Signup)
	r.Post("/login", ah.Login)
	r.Get("/search", uh.Search)
	r.Get("/user/{id}", uh.GetProfileByID)
	r.Get("/{username}", uh.GetProfile)
	r.Get("/{username}/followers", uh.ListFollowers)
	r.Get("/{username}/following", uh.ListFollowing)

	// Authenticated routes
	r.With(authMW.RequireAuth).Put("/user/{id}", uh.UpdateProfile)
	r.With(authMW.RequireAuth).Put("/{username}/follow", uh.Follow)

	return r
}
