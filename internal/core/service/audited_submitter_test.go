package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/domain"
)

type stubAttemptRepo struct {
	inserted  []*domain.RatingAttempt
	insertErr error
}

func (r *stubAttemptRepo) Insert(_ context.Context, a *domain.RatingAttempt) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, a)
	return nil
}

func TestAuditedSubmitter_RecordsSuccess(t *testing.T) {
	repo := &stubAttemptRepo{}
	sub := &stubSubmitter{}
	audited := NewAuditedSubmitter(sub, repo, "guest1", zerolog.Nop())
	fixed := time.Date(2024, 1, 18, 12, 0, 0, 0, time.UTC)
	audited.now = func() time.Time { return fixed }

	in := domain.RatingSubmission{IDAccommodation: "acc-1", IDHost: "host-9", Rate: 4}
	resp, err := audited.AddRatingAccommodation(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil || resp.Rate != 4 {
		t.Fatalf("expected response passed through, got %+v", resp)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one audit row, got %d", len(repo.inserted))
	}
	got := repo.inserted[0]
	if got.Outcome != domain.OutcomeSucceeded || got.Guest != "guest1" || got.Submission != in || !got.AttemptedAt.Equal(fixed) {
		t.Errorf("unexpected audit row: %+v", got)
	}
}

func TestAuditedSubmitter_RecordsFailure(t *testing.T) {
	repo := &stubAttemptRepo{}
	upstream := errors.New("bad gateway")
	audited := NewAuditedSubmitter(&stubSubmitter{err: upstream}, repo, "guest1", zerolog.Nop())

	_, err := audited.AddRatingAccommodation(context.Background(), domain.RatingSubmission{IDAccommodation: "a", IDHost: "h"})
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Outcome != domain.OutcomeFailed || repo.inserted[0].Error != "bad gateway" {
		t.Fatalf("unexpected audit rows: %+v", repo.inserted)
	}
}

func TestAuditedSubmitter_AuditFailureIsNonFatal(t *testing.T) {
	repo := &stubAttemptRepo{insertErr: errors.New("mongo unavailable")}
	sub := &stubSubmitter{}
	audited := NewAuditedSubmitter(sub, repo, "guest1", zerolog.Nop())

	if _, err := audited.AddRatingAccommodation(context.Background(), domain.RatingSubmission{IDAccommodation: "a", IDHost: "h", Rate: 1}); err != nil {
		t.Fatalf("expected audit failure to be non-fatal, got: %v", err)
	}
	if len(sub.calls) != 1 {
		t.Errorf("expected the submission to go through")
	}
}
