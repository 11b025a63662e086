package ports

import (
	"context"

	"github.com/stayinn/rating-gateway/internal/core/domain"
)

// RatingSubmitter writes a rating to the ratings service. One call yields one
// result or one failure; implementations must not retry.
type RatingSubmitter interface {
	AddRatingAccommodation(ctx context.Context, submission domain.RatingSubmission) (*domain.Rate, error)
}

// RatingAttemptRepository persists the audit trail of submission attempts.
type RatingAttemptRepository interface {
	Insert(ctx context.Context, attempt *domain.RatingAttempt) error
}

// RatingDraftStore keeps the value a guest selected for an accommodation
// between requests. Load returns 0 when nothing was selected yet.
type RatingDraftStore interface {
	Load(ctx context.Context, username, accommodationID string) (int, error)
	Save(ctx context.Context, username, accommodationID string, rate int) error
}
