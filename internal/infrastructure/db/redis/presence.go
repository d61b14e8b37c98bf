package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPresenceTTL = 30 * time.Minute

// PresenceTracker records online accounts in Redis.
// Key format: online:<username>
type PresenceTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPresenceTracker creates a PresenceTracker wrapping the given Redis
// client. If ttl <= 0 a default matching the token expiry window is used.
func NewPresenceTracker(client *redis.Client, ttl time.Duration) *PresenceTracker {
	if ttl <= 0 {
		ttl = defaultPresenceTTL
	}
	return &PresenceTracker{client: client, ttl: ttl}
}

// MarkOnline records that the account authenticated recently (expires after
// the configured TTL).
func (p *PresenceTracker) MarkOnline(ctx context.Context, username string) error {
	return p.client.Set(ctx, p.key(username), "1", p.ttl).Err()
}

// IsOnline reports whether the account holds an unexpired presence marker.
func (p *PresenceTracker) IsOnline(ctx context.Context, username string) (bool, error) {
	n, err := p.client.Exists(ctx, p.key(username)).Result()
	if err != nil {
		return false, fmt.Errorf("presence check: %w", err)
	}
	return n > 0, nil
}

func (p *PresenceTracker) key(username string) string {
	return fmt.Sprintf("online:%s", username)
}
