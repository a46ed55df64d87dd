package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/api/handlers"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/comments"
)

var validate = validator.New()

// Handler serves comment creation and per-post listing
type Handler struct {
	commentService comments.Service
}

// NewHandler creates a new comment handler
func NewHandler(commentService comments.Service) *Handler {
	return &Handler{commentService: commentService}
}

type addCommentRequest struct {
	PostID      string `json:"postId" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
}

// Add handles POST /api/v1/comments. Requires authentication.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	comment, err := h.commentService.Add(r.Context(), comments.AddCommentRequest{
		AuthorID:    middleware.GetUserID(r),
		PostID:      postID,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}

// ListByPost handles GET /api/v1/comments/post/{postId}
func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "postId"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	found, err := h.commentService.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": found})
}
