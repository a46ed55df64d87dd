package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Linkup/internal/api/handlers/comment"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/comments"
)

// CommentRoutes returns the /comments subrouter.
func CommentRoutes(commentService comments.Service, authMW *middleware.AuthMiddleware) chi.Router {
	ch := commentHandlers.NewHandler(commentService)

	r := chi.NewRouter()

	r.With(authMW.RequireAuth).Post("/", ch.Add)
	r.Get("/post/{postId}", ch.ListByPost)

	return r
}
