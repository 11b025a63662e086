package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/stayinn/rating-gateway/internal/api/metrics"
	"github.com/stayinn/rating-gateway/internal/core/domain"
)

const (
	defaultBreakerTimeout = 10 * time.Second
	consecutiveFailures   = 2
)

// ErrResp describes a non-2xx answer from an upstream service.
type ErrResp struct {
	URL        string
	Method     string
	StatusCode int
}

func (e ErrResp) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// NewCircuitBreaker trips after more than two consecutive failures. Client
// errors (4xx) are the caller's fault and do not count against the upstream.
func NewCircuitBreaker(name string, timeout time.Duration, log zerolog.Logger) *gobreaker.CircuitBreaker {
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > consecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var resp ErrResp
			return errors.As(err, &resp) && resp.StatusCode >= 400 && resp.StatusCode < 500
		},
	})
}

// handleHTTPReqErr normalises transport and breaker errors so callers can
// test them with errors.Is.
func handleHTTPReqErr(err error, url, method string) error {
	var resp ErrResp
	if errors.As(err, &resp) {
		return resp
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s %s: %w (%v)", method, url, domain.ErrUpstreamUnavailable, err)
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s %s: %w (timeout)", method, url, domain.ErrUpstreamUnavailable)
	}
	return fmt.Errorf("%s %s: %w", method, url, err)
}

// outcomeLabel classifies an upstream call for the duration histogram.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
