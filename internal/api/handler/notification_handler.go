package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayinn/rating-gateway/internal/infrastructure/feedback"
)

// ToastDrainer pops every queued toast for a guest.
type ToastDrainer interface {
	Drain(ctx context.Context, username string) ([]feedback.Toast, error)
}

type NotificationHandler struct {
	toasts ToastDrainer
}

func NewNotificationHandler(toasts ToastDrainer) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// List handles GET /v1/notifications. Returned toasts are removed from the queue.
//
// @Summary      Drain pending toasts
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	claims, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	toasts, err := h.toasts.Drain(c.Request().Context(), claims.Username)
	if err != nil {
		return err
	}
	if toasts == nil {
		toasts = []feedback.Toast{}
	}
	return c.JSON(http.StatusOK, notificationsResponse{Notifications: toasts})
}
