package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftTTL = 24 * time.Hour

// DraftStore keeps the star value a guest selected but has not submitted.
// Key format: rating:draft:<username>:<accommodation_id>
type DraftStore struct {
	client *redis.Client
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

// Load returns the stored value, or 0 when the guest has not selected one.
func (d *DraftStore) Load(ctx context.Context, username, accommodationID string) (int, error) {
	v, err := d.client.Get(ctx, draftKey(username, accommodationID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load draft: %w", err)
	}
	rate, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("load draft: corrupt value %q: %w", v, err)
	}
	return rate, nil
}

// Save overwrites the draft and refreshes its expiry.
func (d *DraftStore) Save(ctx context.Context, username, accommodationID string, rate int) error {
	if err := d.client.Set(ctx, draftKey(username, accommodationID), rate, draftTTL).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func draftKey(username, accommodationID string) string {
	return fmt.Sprintf("rating:draft:%s:%s", username, accommodationID)
}
