package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/core/ports"
	"github.com/stayinn/rating-gateway/internal/infrastructure/feedback"
)

const toastTTL = 10 * time.Minute

// ToastQueue stores toasts per guest until the front end drains them.
// Key format: toasts:<username>
type ToastQueue struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewToastQueue(client *redis.Client, log zerolog.Logger) *ToastQueue {
	return &ToastQueue{client: client, log: log}
}

// For returns a Notifier that queues toasts for username. Push failures are
// logged; notifications stay fire-and-forget for the caller.
func (q *ToastQueue) For(ctx context.Context, username string) ports.Notifier {
	return &sessionNotifier{queue: q, ctx: ctx, username: username}
}

func (q *ToastQueue) push(ctx context.Context, username string, t feedback.Toast) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	key := toastKey(username)
	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, key, raw)
	pipe.Expire(ctx, key, toastTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	return nil
}

// Drain removes and returns every queued toast for username, oldest first.
func (q *ToastQueue) Drain(ctx context.Context, username string) ([]feedback.Toast, error) {
	key := toastKey(username)
	pipe := q.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("drain toasts: %w", err)
	}

	toasts := make([]feedback.Toast, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var t feedback.Toast
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			q.log.Warn().Err(err).Str("username", username).Msg("skipping corrupt toast")
			continue
		}
		toasts = append(toasts, t)
	}
	return toasts, nil
}

func toastKey(username string) string {
	return "toasts:" + username
}

type sessionNotifier struct {
	queue    *ToastQueue
	ctx      context.Context
	username string
}

func (n *sessionNotifier) Success(message string) {
	n.send(feedback.Toast{Level: feedback.LevelSuccess, Message: message})
}

func (n *sessionNotifier) Error(message string) {
	n.send(feedback.Toast{Level: feedback.LevelError, Message: message})
}

func (n *sessionNotifier) send(t feedback.Toast) {
	if err := n.queue.push(context.WithoutCancel(n.ctx), n.username, t); err != nil {
		n.queue.log.Warn().Err(err).Str("username", n.username).Msg("failed to queue toast")
	}
}
