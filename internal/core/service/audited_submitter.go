package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
)

// AuditedSubmitter records every submission attempt before handing the
// outcome back unchanged. Audit failures are logged and swallowed.
type AuditedSubmitter struct {
	next  ports.RatingSubmitter
	repo  ports.RatingAttemptRepository
	guest string
	log   zerolog.Logger
	now   func() time.Time
}

func NewAuditedSubmitter(next ports.RatingSubmitter, repo ports.RatingAttemptRepository, guest string, log zerolog.Logger) *AuditedSubmitter {
	return &AuditedSubmitter{next: next, repo: repo, guest: guest, log: log, now: time.Now}
}

func (a *AuditedSubmitter) AddRatingAccommodation(ctx context.Context, submission domain.RatingSubmission) (*domain.Rate, error) {
	resp, err := a.next.AddRatingAccommodation(ctx, submission)

	attempt := &domain.RatingAttempt{
		Submission:  submission,
		Guest:       a.guest,
		Outcome:     domain.OutcomeSucceeded,
		AttemptedAt: a.now().UTC(),
	}
	if err != nil {
		attempt.Outcome = domain.OutcomeFailed
		attempt.Error = err.Error()
	}

	// The request context may already be cancelled; the audit row is still wanted.
	if auditErr := a.repo.Insert(context.WithoutCancel(ctx), attempt); auditErr != nil {
		a.log.Warn().Err(auditErr).
			Str("accommodation_id", submission.IDAccommodation).
			Msg("failed to insert rating attempt")
	}

	return resp, err
}
