package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/infrastructure/client"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{"not found", fmt.Errorf("accommodation acc-1: %w", domain.ErrAccommodationNotFound), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"claims", domain.ErrInvalidClaims, http.StatusUnauthorized},
		{"missing ids", domain.ErrMissingIdentifiers, http.StatusUnprocessableEntity},
		{"breaker open", fmt.Errorf("GET x: %w", domain.ErrUpstreamUnavailable), http.StatusServiceUnavailable},
		{"upstream status", client.ErrResp{URL: "x", Method: http.MethodGet, StatusCode: 500}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
