package timeline

import (
	"net/http"
	"strconv"

	"Linkup/internal/api/handlers"
	"Linkup/internal/api/middleware"
	"Linkup/internal/core/timeline"
)

// Handler serves the authenticated user's feed
type Handler struct {
	service timeline.Service
}

// NewHandler creates a new timeline handler
func NewHandler(service timeline.Service) *Handler {
	return &Handler{service: service}
}

// GetTimeline handles GET /api/v1/posts/timeline?page=1&limit=10.
// Requires authentication.
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID.IsZero() {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "User must be authenticated to view their timeline")
		return
	}

	req := timeline.GetTimelineRequest{UserID: userID}

	// Non-numeric values fall through to the service defaults rather
	// than erroring, matching the legacy query contract.
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			req.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			req.PageSize = limit
		}
	}

	response, err := h.service.GetTimeline(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
