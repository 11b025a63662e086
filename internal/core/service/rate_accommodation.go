package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
)

const (
	MsgRatingAdded  = "Rating added successfully"
	MsgRatingFailed = "Error adding rating"
	RootPath        = ""
)

// RateAccommodation lets a guest pick a star value for one accommodation/host
// pair and submit it. It holds no state beyond the two ids and the selected
// value, so a new instance is built for every interaction.
type RateAccommodation struct {
	accommodations ports.AccommodationLookup
	ratings        ports.RatingSubmitter
	notifier       ports.Notifier
	navigator      ports.Navigator
	log            zerolog.Logger

	accommodationID string
	hostID          string

	mu   sync.RWMutex
	rate int
}

// NewRateAccommodation wires the unit to its collaborators.
func NewRateAccommodation(
	accommodations ports.AccommodationLookup,
	ratings ports.RatingSubmitter,
	notifier ports.Notifier,
	navigator ports.Navigator,
	log zerolog.Logger,
) *RateAccommodation {
	return &RateAccommodation{
		accommodations: accommodations,
		ratings:        ratings,
		notifier:       notifier,
		navigator:      navigator,
		log:            log,
	}
}

// Init sets the accommodation and host ids. An empty string means absent.
func (r *RateAccommodation) Init(accommodationID, hostID string) {
	r.accommodationID = accommodationID
	r.hostID = hostID
}

// Accommodation returns the lazy accommodation source, or nil when no
// accommodation id was supplied.
func (r *RateAccommodation) Accommodation() ports.AccommodationQuery {
	if r.accommodationID == "" {
		return nil
	}
	id := r.accommodationID
	return func(ctx context.Context) (*domain.Accommodation, error) {
		return r.accommodations.GetAccommodationByID(ctx, id)
	}
}

// SetRating replaces the selected value. The range is not checked.
func (r *RateAccommodation) SetRating(value int) {
	r.mu.Lock()
	r.rate = value
	r.mu.Unlock()
}

// Rating returns the currently selected value, 0 when none was selected.
func (r *RateAccommodation) Rating() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rate
}

// AddRating submits the selected value. Missing ids are reported only to the
// log and returned as ErrMissingIdentifiers. Concurrent calls are not
// coalesced: each one reaches the ratings service.
func (r *RateAccommodation) AddRating(ctx context.Context) error {
	if r.accommodationID == "" || r.hostID == "" {
		r.log.Error().
			Str("accommodation_id", r.accommodationID).
			Str("host_id", r.hostID).
			Msg("accommodation ID is null")
		return domain.ErrMissingIdentifiers
	}

	submission := domain.RatingSubmission{
		IDAccommodation: r.accommodationID,
		IDHost:          r.hostID,
		Rate:            r.Rating(),
	}

	resp, err := r.ratings.AddRatingAccommodation(ctx, submission)
	if err != nil {
		r.log.Error().Err(err).
			Str("accommodation_id", submission.IDAccommodation).
			Str("host_id", submission.IDHost).
			Int("rate", submission.Rate).
			Msg("error adding rating")
		r.notifier.Error(MsgRatingFailed)
		return fmt.Errorf("add rating: %w", err)
	}

	ev := r.log.Info().
		Str("accommodation_id", submission.IDAccommodation).
		Str("host_id", submission.IDHost).
		Int("rate", submission.Rate)
	if resp != nil && resp.ID != "" {
		ev = ev.Str("rate_id", resp.ID)
	}
	ev.Msg("rating added successfully")

	r.notifier.Success(MsgRatingAdded)
	r.navigator.NavigateTo(RootPath)
	return nil
}
