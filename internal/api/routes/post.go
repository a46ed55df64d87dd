package routes

import (
	"github.com/go-chi/chi/v5"

	postHandlers "Linkup/internal/api/handlers/post"
	timelineHandlers "Linkup/internal/api/handlers/timeline"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/posts"
	"Linkup/internal/core/timeline"
)

// PostRoutes returns the /posts subrouter: CRUD, the like toggle, and
// the authenticated timeline.
func PostRoutes(
	postService posts.Service,
	timelineService timeline.Service,
	authMW *middleware.AuthMiddleware,
) chi.Router {
	ph := postHandlers.NewHandler(postService)
	th := timelineHandlers.NewHandler(timelineService)

	r := chi.NewRouter()

	// Static segments must come before the {id} wildcard
	r.With(authMW.RequireAuth).Get("/timeline", th.GetTimeline)
	r.Get("/user/{username}", ph.ListByUser)

	r.With(authMW.RequireAuth).Post("/", ph.Create)
	r.Get("/{id}", ph.Get)
	r.With(authMW.RequireAuth).Put("/{id}", ph.Update)
	r.With(authMW.RequireAuth).Delete("/{id}", ph.Delete)
	r.With(authMW.RequireAuth).Put("/{id}/like", ph.ToggleLike)

	return r
}
