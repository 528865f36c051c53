package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookwise/models"
	"bookwise/utils"
)

// Key builds the Redis key a user's continuity state lives under. Exposed so
// callers can echo where a remembered booking is held.
func Key(domain, userID string) string {
	return memoryKey(domain, userID)
}

// memoryKey builds the Redis key for a user's continuity state. IDs are
// sanitized so a hostile user id cannot inject key separators.
func memoryKey(domain, userID string) string {
	sanitize := func(s string) string {
		s = strings.ReplaceAll(s, ":", "_")
		s = strings.ReplaceAll(s, " ", "_")
		return s
	}
	if domain == "" {
		domain = models.BookingModeService
	}
	return fmt.Sprintf("memory:%s:user:%s", sanitize(domain), sanitize(userID))
}

// Get returns the remembered state for a user, or nil when none exists or
// Redis is unreachable.
func (s *RedisMemoryStore) Get(ctx context.Context, domain, userID string) (*models.MemoryState, error) {
	data, err := s.client.Get(ctx, memoryKey(domain, userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		utils.GetLogger().Warn("memory get failed, proceeding stateless",
			zap.String("userID", userID), zap.Error(err))
		return nil, nil
	}
	var state models.MemoryState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		utils.GetLogger().Warn("memory state corrupt, discarding",
			zap.String("userID", userID), zap.Error(err))
		return nil, nil
	}
	return &state, nil
}

// Set persists the state with the store's TTL.
func (s *RedisMemoryStore) Set(ctx context.Context, domain, userID string, state *models.MemoryState) error {
	if state == nil {
		return s.Clear(ctx, domain, userID)
	}
	state.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("memory: marshal state: %w", err)
	}
	if err := s.client.Set(ctx, memoryKey(domain, userID), data, s.ttl).Err(); err != nil {
		utils.GetLogger().Warn("memory set failed",
			zap.String("userID", userID), zap.Error(err))
		return nil
	}
	return nil
}

// Clear removes the remembered state.
func (s *RedisMemoryStore) Clear(ctx context.Context, domain, userID string) error {
	if err := s.client.Del(ctx, memoryKey(domain, userID)).Err(); err != nil {
		utils.GetLogger().Warn("memory clear failed",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
