package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/api/handlers"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/posts"
)

var validate = validator.New()

// Handler serves post CRUD and the like toggle
type Handler struct {
	postService posts.Service
}

// NewHandler creates a new post handler
func NewHandler(postService posts.Service) *Handler {
	return &Handler{postService: postService}
}

type createPostRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// Create handles POST /api/v1/posts. Requires authentication.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	view, err := h.postService.Create(r.Context(), posts.CreatePostRequest{
		AuthorID:    middleware.GetUserID(r),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}

// Get handles GET /api/v1/posts/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	view, err := h.postService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// ListByUser handles GET /api/v1/posts/user/{username}
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	views, err := h.postService.ListByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": views})
}

type updatePostRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// Update handles PUT /api/v1/posts/{id}. Requires authentication; only
// the post owner may edit.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	if err := h.postService.Update(r.Context(), middleware.GetUserID(r), id, posts.UpdatePostRequest{
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post has been updated"})
}

// Delete handles DELETE /api/v1/posts/{id}. Requires authentication;
// owner or admin only. Cascades to the post's comments.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	if err := h.postService.Delete(r.Context(), middleware.GetUserID(r), middleware.GetUserRole(r), id); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post has been deleted"})
}

// ToggleLike handles PUT /api/v1/posts/{id}/like. Requires authentication.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	result, err := h.postService.ToggleLike(r.Context(), middleware.GetUserID(r), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
