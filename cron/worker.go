package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookwise/config"
	historyRepo "bookwise/database/repository/history"
	"bookwise/models"
	"bookwise/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitHistoryWorker runs the async archive worker in background.
func InitHistoryWorker(repo historyRepo.ResolutionHistoryRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeArchiveResolution, handleArchiveTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[HistoryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HistoryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HistoryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleArchiveTask(repo historyRepo.ResolutionHistoryRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var record models.ResolutionRecord
		if err := json.Unmarshal(task.Payload(), &record); err != nil {
			log.Printf("[HistoryWorker] invalid payload: %v", err)
			return err
		}

		id, err := repo.Create(ctx, record)
		if err != nil {
			log.Printf("[HistoryWorker] failed to archive resolution for user %s: %v", record.UserID, err)
			return err
		}

		log.Printf("[HistoryWorker] archived resolution %s for user %s (%s)", id, record.UserID, record.Intent)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HistoryWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
