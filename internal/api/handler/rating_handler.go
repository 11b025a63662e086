package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/api/metrics"
	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
	"github.com/stayinn/rating-gateway/internal/core/service"
	"github.com/stayinn/rating-gateway/internal/infrastructure/client"
	"github.com/stayinn/rating-gateway/internal/infrastructure/feedback"
)

// ToastSink hands out a Notifier that queues toasts for one guest. The submit
// handler uses it only when the response cannot carry the toasts.
type ToastSink interface {
	For(ctx context.Context, username string) ports.Notifier
}

// RatingHandler serves the rate-accommodation view. Every request builds its
// own service.RateAccommodation; the selected value survives between requests
// only through the draft store.
type RatingHandler struct {
	accommodations ports.AccommodationLookup
	ratings        ports.RatingSubmitter
	attempts       ports.RatingAttemptRepository
	drafts         ports.RatingDraftStore
	toasts         ToastSink
	log            zerolog.Logger
}

func NewRatingHandler(
	accommodations ports.AccommodationLookup,
	ratings ports.RatingSubmitter,
	attempts ports.RatingAttemptRepository,
	drafts ports.RatingDraftStore,
	toasts ToastSink,
	log zerolog.Logger,
) *RatingHandler {
	return &RatingHandler{
		accommodations: accommodations,
		ratings:        ratings,
		attempts:       attempts,
		drafts:         drafts,
		toasts:         toasts,
		log:            log,
	}
}

// View handles GET /v1/accommodations/:accommodation_id/rating.
//
// @Summary      Load the rating view for an accommodation
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        accommodation_id  path      string  true   "Accommodation ID"
// @Param        host_id           query     string  false  "Host ID"
// @Success      200               {object}  ratingViewResponse
// @Failure      401               {object}  errorResponse
// @Failure      404               {object}  errorResponse
// @Failure      502               {object}  errorResponse
// @Router       /v1/accommodations/{accommodation_id}/rating [get]
func (h *RatingHandler) View(c echo.Context) error {
	claims, token, err := ctxClaims(c)
	if err != nil {
		return err
	}
	ctx := client.WithBearerToken(c.Request().Context(), token)
	accommodationID := c.Param("accommodation_id")
	hostID := c.QueryParam("host_id")

	rec := feedback.NewRecorder()
	unit := service.NewRateAccommodation(h.accommodations, h.ratings, rec, rec, h.log)
	unit.Init(accommodationID, hostID)
	unit.SetRating(h.loadDraft(ctx, claims.Username, accommodationID))

	resp := ratingViewResponse{HostID: hostID, Rate: unit.Rating()}
	if query := unit.Accommodation(); query != nil {
		acc, err := query(ctx)
		if err != nil {
			return err
		}
		resp.Accommodation = acc
	}

	return c.JSON(http.StatusOK, resp)
}

// SaveDraft handles PUT /v1/accommodations/:accommodation_id/rating.
//
// @Summary      Select a star value
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accommodation_id  path      string            true  "Accommodation ID"
// @Param        body              body      saveDraftRequest  true  "Selected value"
// @Success      200               {object}  draftResponse
// @Failure      400               {object}  errorResponse
// @Failure      422               {object}  errorResponse
// @Router       /v1/accommodations/{accommodation_id}/rating [put]
func (h *RatingHandler) SaveDraft(c echo.Context) error {
	claims, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req saveDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	accommodationID := c.Param("accommodation_id")
	unit := service.NewRateAccommodation(h.accommodations, h.ratings, nil, nil, h.log)
	unit.Init(accommodationID, "")
	unit.SetRating(*req.Rate)

	if err := h.drafts.Save(c.Request().Context(), claims.Username, accommodationID, unit.Rating()); err != nil {
		return err
	}
	metrics.RatingDraftsTotal.Inc()

	return c.JSON(http.StatusOK, draftResponse{AccommodationID: accommodationID, Rate: unit.Rating()})
}

// Submit handles POST /v1/accommodations/:accommodation_id/rating.
//
// @Summary      Submit the selected star value
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        accommodation_id  path      string               true  "Accommodation ID"
// @Param        body              body      submitRatingRequest  true  "Host of the accommodation"
// @Success      201               {object}  submitRatingResponse
// @Failure      400               {object}  errorResponse
// @Failure      422               {object}  submitRatingResponse
// @Failure      502               {object}  submitRatingResponse
// @Router       /v1/accommodations/{accommodation_id}/rating [post]
func (h *RatingHandler) Submit(c echo.Context) error {
	claims, token, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := client.WithBearerToken(c.Request().Context(), token)
	accommodationID := c.Param("accommodation_id")

	rec := feedback.NewRecorder()
	submitter := service.NewAuditedSubmitter(h.ratings, h.attempts, claims.Username, h.log)

	unit := service.NewRateAccommodation(h.accommodations, submitter, rec, rec, h.log)
	unit.Init(accommodationID, req.HostID)
	unit.SetRating(h.loadDraft(ctx, claims.Username, accommodationID))

	err = unit.AddRating(ctx)

	toasts := rec.Toasts()
	if ctx.Err() != nil && len(toasts) > 0 {
		// The guest left before the answer; hand the toasts to GET /v1/notifications instead.
		feedback.Replay(h.toasts.For(ctx, claims.Username), toasts)
	}

	resp := submitRatingResponse{Rate: unit.Rating(), Notifications: toasts}
	if path, ok := rec.Navigation(); ok {
		resp.NavigateTo = &path
	}

	switch {
	case err == nil:
		metrics.RatingSubmissionsTotal.WithLabelValues(string(domain.OutcomeSucceeded)).Inc()
		return c.JSON(http.StatusCreated, resp)
	case errors.Is(err, domain.ErrMissingIdentifiers):
		metrics.RatingSubmissionsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		metrics.RatingSubmissionsTotal.WithLabelValues(string(domain.OutcomeFailed)).Inc()
		return c.JSON(http.StatusBadGateway, resp)
	}
}

// loadDraft falls back to the default value when the store is unreachable;
// the guest can still submit, just without the earlier selection.
func (h *RatingHandler) loadDraft(ctx context.Context, username, accommodationID string) int {
	rate, err := h.drafts.Load(ctx, username, accommodationID)
	if err != nil {
		h.log.Warn().Err(err).Str("accommodation_id", accommodationID).Msg("failed to load rating draft")
		return 0
	}
	return rate
}
