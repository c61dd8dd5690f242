package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResendThrottle rate-limits code resends per email address using a
// redis key with a TTL equal to the resend window.
type ResendThrottle struct {
	client *redis.Client
	window time.Duration
}

// NewResendThrottle creates a redis-backed resend throttle. A nil
// client disables throttling.
func NewResendThrottle(client *redis.Client, window time.Duration) *ResendThrottle {
	return &ResendThrottle{client: client, window: window}
}

// Allow reports whether a resend is permitted for the address, and if
// not, how many seconds remain in the window.
func (t *ResendThrottle) Allow(ctx context.Context, email string) (bool, int64, error) {
	if t.client == nil || t.window <= 0 {
		return true, 0, nil
	}

	ttl, err := t.client.TTL(ctx, t.key(email)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// Mark opens a new resend window for the address.
func (t *ResendThrottle) Mark(ctx context.Context, email string) error {
	if t.client == nil || t.window <= 0 {
		return nil
	}
	return t.client.Set(ctx, t.key(email), 1, t.window).Err()
}

func (t *ResendThrottle) key(email string) string {
	return "otp:res:" + email
}
