// File: bookwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"bookwise/config"
	"bookwise/cron"
	"bookwise/database"
	historyRepoPkg "bookwise/database/repository/history"
	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/routes"
	"bookwise/services/calendar"
	"bookwise/services/decision"
	"bookwise/services/intent"
	"bookwise/services/memory"
	"bookwise/services/resolve"
	"bookwise/services/semantics"
	"bookwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	historyRepo := historyRepoPkg.NewMongoHistoryRepo()

	// Queue client for write-behind archiving, plus the background worker
	// that drains it.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	cron.InitHistoryWorker(historyRepo)

	// services.
	memoryStore := memory.NewRedisMemoryStore(
		utils.GetMemoryCacheClient(),
		time.Duration(config.AppConfig.MemoryTTLSeconds)*time.Second,
	)

	signals, err := intent.LoadSignals(config.AppConfig.IntentSignalsPath)
	if err != nil {
		logger.Sugar().Warnf("main: intent signals file unavailable, using built-in table: %v", err)
		signals = intent.DefaultSignals()
	}

	resolveService := resolve.NewDefaultResolveService(
		intent.NewDefaultIntentResolver(signals),
		semantics.NewDefaultSemanticResolver(),
		calendar.NewDefaultCalendarBinder(),
		memoryStore,
		historyRepo,
		asynqClient,
		decision.Policy{
			AllowTimeWindows:        config.AppConfig.AllowTimeWindows,
			AllowConstraintOnlyTime: config.AppConfig.AllowConstraintOnlyTime,
		},
	)

	resolveHandler := handlers.NewResolveHandler(resolveService)
	memoryHandler := handlers.NewMemoryHandler(memoryStore)
	historyHandler := handlers.NewHistoryHandler(historyRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ResolveHandler:       resolveHandler.Resolve,
		GetMemoryHandler:     memoryHandler.GetMemory,
		ClearMemoryHandler:   memoryHandler.ClearMemory,
		GetHistoryHandler:    historyHandler.GetHistory,
		DeleteHistoryHandler: historyHandler.DeleteHistory,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"memory_store": utils.GetMemoryCacheClient(),
			"task_queue":   utils.GetQueueHealthClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
