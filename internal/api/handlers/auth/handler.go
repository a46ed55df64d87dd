package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Linkup/internal/api/handlers"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/auth"
	"Linkup/internal/core/users"
)

var validate = validator.New()

// Handler serves signup, login, and the authenticated identity check
type Handler struct {
	authService auth.Service
	userService users.UserService
}

// NewHandler creates a new auth handler
func NewHandler(authService auth.Service, userService users.UserService) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup handles POST /api/v1/users/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	user, err := h.authService.Signup(r.Context(), auth.SignupRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID.Hex(),
		"username": user.Username,
		"email":    user.Email,
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/v1/users/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Request body must be valid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/v1/auth/me — returns the caller's own profile.
// Requires authentication.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r)
	if username == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "User must be authenticated")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}
