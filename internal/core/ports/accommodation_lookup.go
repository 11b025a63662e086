package ports

import (
	"context"

	"github.com/stayinn/rating-gateway/internal/core/domain"
)

// AccommodationLookup fetches accommodation display data by id.
type AccommodationLookup interface {
	GetAccommodationByID(ctx context.Context, id string) (*domain.Accommodation, error)
}

// AccommodationQuery is a lazy accommodation source. Every call performs a
// fresh fetch; nothing is cached between calls.
type AccommodationQuery func(ctx context.Context) (*domain.Accommodation, error)
