package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Linkup/internal/api/handlers"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/social"
	"Linkup/internal/core/users"
)

var validate = validator.New()

// Handler serves user profile, search, follow-listing, profile update,
// and the follow/unfollow toggle
type Handler struct {
	userService   users.UserService
	socialService social.Service
}

// NewHandler creates a new user handler
func NewHandler(userService users.UserService, socialService social.Service) *Handler {
	return &Handler{
		userService:   userService,
		socialService: socialService,
	}
}

// GetProfile handles GET /api/v1/users/{username}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.userService.GetProfile(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// GetProfileByID handles GET /api/v1/users/user/{id}
func (h *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, users.NewProfileView(user))
}

// Search handles GET /api/v1/users/search?query=...&limit=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}

	profiles, err := h.userService.Search(r.Context(), query, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": profiles})
}

// ListFollowing handles GET /api/v1/users/{username}/following
func (h *Handler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profiles, err := h.userService.ListFollowing(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"following": profiles})
}

// ListFollowers handles GET /api/v1/users/{username}/followers
func (h *Handler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profiles, err := h.userService.ListFollowers(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"followers": profiles})
}

type updateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// UpdateProfile handles PUT /api/v1/users/{id}. Requires authentication;
// only the account owner or an admin may update a profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	targetID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	profile, err := h.userService.UpdateProfile(
		r.Context(),
		middleware.GetUserID(r),
		middleware.GetUserRole(r),
		targetID,
		users.ProfileChanges{Email: req.Email, AvatarURL: req.AvatarURL, Bio: req.Bio},
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// Follow handles PUT /api/v1/users/{username}/follow. Requires
// authentication; toggles the follow relation with the named user.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	if actorID.IsZero() {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "User must be authenticated")
		return
	}

	result, err := h.socialService.FollowOrUnfollow(r.Context(), actorID, chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
