package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/stayinn/rating-gateway/internal/api/metrics"
	"github.com/stayinn/rating-gateway/internal/core/domain"
)

const ratingService = "rating"

// RatingClient posts guest ratings to the ratings service. It never retries.
type RatingClient struct {
	client  *http.Client
	address string
	cb      *gobreaker.CircuitBreaker
}

func NewRatingClient(client *http.Client, address string, cb *gobreaker.CircuitBreaker) *RatingClient {
	return &RatingClient{
		client:  client,
		address: strings.TrimRight(address, "/"),
		cb:      cb,
	}
}

// AddRatingAccommodation sends {idAccommodation, idHost, rate}. Any 2xx is a
// success; the body, when present, is decoded as the stored rate.
func (rc *RatingClient) AddRatingAccommodation(ctx context.Context, submission domain.RatingSubmission) (*domain.Rate, error) {
	requestBody, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rating: %w", err)
	}

	endpoint := rc.address + "/accommodation"
	start := time.Now()

	result, err := rc.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(requestBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		setAuthorization(ctx, req)

		resp, err := rc.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, ErrResp{URL: endpoint, Method: http.MethodPost, StatusCode: resp.StatusCode}
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		err = handleHTTPReqErr(err, endpoint, http.MethodPost)
	}
	metrics.UpstreamRequestDuration.WithLabelValues(ratingService, outcomeLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(result.([]byte))
	if len(raw) == 0 {
		return nil, nil
	}
	var rate domain.Rate
	if err := json.Unmarshal(raw, &rate); err != nil {
		// The write already happened; an unreadable echo is not a failure.
		return nil, nil
	}
	return &rate, nil
}
