package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

var (
	ErrQueueFull = errors.New("audit queue full")
	ErrClosed    = errors.New("audit dispatcher closed")
)

// Dispatcher writes rating attempts to a repository off the request path.
// Attempts are sharded by accommodation ID so rows for one accommodation are
// written in the order they were enqueued.
type Dispatcher struct {
	workers []chan *domain.RatingAttempt
	repo    ports.RatingAttemptRepository
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.RatingAttemptRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.RatingAttempt, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.RatingAttempt, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers exit once Close has drained
// their channel.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Insert enqueues the attempt and returns immediately. It never blocks: a
// full shard yields ErrQueueFull and the attempt is dropped.
func (d *Dispatcher) Insert(_ context.Context, attempt *domain.RatingAttempt) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	select {
	case d.workers[d.shardIndex(attempt.Submission.IDAccommodation)] <- attempt:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting attempts and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps an accommodation ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(accommodationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accommodationID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan *domain.RatingAttempt) {
	defer d.wg.Done()

	for attempt := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.repo.Insert(ctx, attempt); err != nil {
			d.log.Error().Err(err).
				Str("accommodation_id", attempt.Submission.IDAccommodation).
				Int("worker_id", id).
				Msg("rating attempt write failed")
		}
		cancel()
	}
}
