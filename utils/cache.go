// File: utils/cache.go
package utils

import (
	"bookwise/config"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// MemoryCacheClient is the Redis client backing the continuity memory store.
var MemoryCacheClient *redis.Client

// InitRedis initializes the Redis client for continuity memory (using DB from
// AppConfig). Unlike the datastore, a Redis outage is not fatal: the engine
// degrades to stateless resolution, so failures here only log.
func InitRedis() {
	MemoryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := MemoryCacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("Redis (Memory) unreachable, continuing stateless: %v", err)
	}
}

// GetMemoryCacheClient returns the continuity memory client.
func GetMemoryCacheClient() *redis.Client {
	if MemoryCacheClient == nil {
		InitRedis()
	}
	return MemoryCacheClient
}

// queueHealthClient is a plain client on the queue DB used only for health
// checks; asynq manages its own connections.
var queueHealthClient *redis.Client

// GetQueueHealthClient returns a client pointed at the archive queue DB.
func GetQueueHealthClient() *redis.Client {
	if queueHealthClient == nil {
		queueHealthClient = redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
	}
	return queueHealthClient
}
