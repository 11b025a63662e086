package handler

import (
	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/infrastructure/feedback"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type saveDraftRequest struct {
	Rate *int `json:"rate" validate:"required"`
}

type submitRatingRequest struct {
	HostID string `json:"host_id"`
}

type ratingViewResponse struct {
	Accommodation *domain.Accommodation `json:"accommodation"`
	HostID        string                `json:"host_id,omitempty"`
	Rate          int                   `json:"rate"`
}

type draftResponse struct {
	AccommodationID string `json:"accommodation_id"`
	Rate            int    `json:"rate"`
}

// submitRatingResponse tells the front end which toasts to show and where to
// go next. NavigateTo is null when the guest stays on the rating view.
type submitRatingResponse struct {
	Rate          int              `json:"rate"`
	Notifications []feedback.Toast `json:"notifications"`
	NavigateTo    *string          `json:"navigate_to"`
}

type notificationsResponse struct {
	Notifications []feedback.Toast `json:"notifications"`
}
