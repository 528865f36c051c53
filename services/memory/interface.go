// Package memory carries booking context across turns: a TTL store keyed by
// user, pure merge rules for slot filling, and the continuity policy that
// decides when a turn starts a new task.
package memory

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"bookwise/models"
)

// MemoryStore is the continuity store contract. Implementations must treat
// outages as soft failures: resolution proceeds stateless when memory is
// unavailable.
type MemoryStore interface {
	// Get returns the remembered state, or nil when none exists.
	Get(ctx context.Context, domain, userID string) (*models.MemoryState, error)
	// Set persists state under the store's TTL, refreshing it.
	Set(ctx context.Context, domain, userID string, state *models.MemoryState) error
	// Clear removes the remembered state.
	Clear(ctx context.Context, domain, userID string) error
}

// RedisMemoryStore keeps continuity state in Redis as JSON with a TTL.
type RedisMemoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMemoryStore returns a Redis-backed store. A zero ttl falls back to
// one hour.
func NewRedisMemoryStore(client *redis.Client, ttl time.Duration) *RedisMemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisMemoryStore{client: client, ttl: ttl}
}
