package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingIdentifiers  = errors.New("accommodation or host id missing")
	ErrForbidden           = errors.New("access forbidden")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// RatingSubmission is the payload sent to the ratings service. The JSON field
// names are part of the ratings service contract.
type RatingSubmission struct {
	IDAccommodation string `json:"idAccommodation" bson:"idAccommodation"`
	IDHost          string `json:"idHost" bson:"idHost"`
	Rate            int    `json:"rate" bson:"rate"`
}

// Rate is a stored rating as echoed back by the ratings service.
type Rate struct {
	ID                 string `json:"id"`
	ByGuestID          string `json:"byGuestId"`
	ForHostID          string `json:"forHostId"`
	ForAccommodationID string `json:"forAccommodationId"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
	Rate               int    `json:"rate"`
}

// AttemptOutcome is the result of a single submission attempt.
type AttemptOutcome string

const (
	OutcomeSucceeded AttemptOutcome = "succeeded"
	OutcomeFailed    AttemptOutcome = "failed"
)

// RatingAttempt is the audit record written for every submission.
type RatingAttempt struct {
	Submission  RatingSubmission `json:"submission" bson:"submission"`
	Guest       string           `json:"guest,omitempty" bson:"guest,omitempty"`
	Outcome     AttemptOutcome   `json:"outcome" bson:"outcome"`
	Error       string           `json:"error,omitempty" bson:"error,omitempty"`
	AttemptedAt time.Time        `json:"attempted_at" bson:"attempted_at"`
}
