package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/stayinn/rating-gateway/internal/api/metrics"
	"github.com/stayinn/rating-gateway/internal/core/domain"
)

const accommodationService = "accommodation"

// AccommodationClient reads accommodation views from the accommodation service.
type AccommodationClient struct {
	client  *http.Client
	address string
	cb      *gobreaker.CircuitBreaker
}

func NewAccommodationClient(client *http.Client, address string, cb *gobreaker.CircuitBreaker) *AccommodationClient {
	return &AccommodationClient{
		client:  client,
		address: strings.TrimRight(address, "/"),
		cb:      cb,
	}
}

// GetAccommodationByID fetches one accommodation. A 404 maps to
// domain.ErrAccommodationNotFound.
func (ac *AccommodationClient) GetAccommodationByID(ctx context.Context, id string) (*domain.Accommodation, error) {
	endpoint := ac.address + "/" + url.PathEscape(id)
	start := time.Now()

	result, err := ac.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		setAuthorization(ctx, req)

		resp, err := ac.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, ErrResp{URL: endpoint, Method: http.MethodGet, StatusCode: resp.StatusCode}
		}

		var acc domain.Accommodation
		if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON response: %w", err)
		}
		return &acc, nil
	})
	if err != nil {
		err = handleHTTPReqErr(err, endpoint, http.MethodGet)
		if resp, ok := err.(ErrResp); ok && resp.StatusCode == http.StatusNotFound {
			err = fmt.Errorf("accommodation %s: %w", id, domain.ErrAccommodationNotFound)
		}
	}
	metrics.UpstreamRequestDuration.WithLabelValues(accommodationService, outcomeLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	return result.(*domain.Accommodation), nil
}
