package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/txledger/internal/adapter/client"
	"github.com/iho/txledger/internal/adapter/events"
	kafkaEvents "github.com/iho/txledger/internal/adapter/events/kafka"
	httpAdapter "github.com/iho/txledger/internal/adapter/http"
	"github.com/iho/txledger/internal/adapter/http/handler"
	postgresRepo "github.com/iho/txledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/txledger/internal/adapter/repository/redis"
	"github.com/iho/txledger/internal/infrastructure/config"
	"github.com/iho/txledger/internal/infrastructure/logger"
	"github.com/iho/txledger/internal/infrastructure/metrics"
	"github.com/iho/txledger/internal/infrastructure/postgres"
	"github.com/iho/txledger/internal/infrastructure/redis"
	"github.com/iho/txledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories and infrastructure
	txManager := postgresRepo.NewTxManager(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	idemRepo := postgresRepo.NewIdempotencyRepository(pool)
	retrier := postgresRepo.NewRetrier()
	cache := redisRepo.NewCache(redisClient)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// External services
	accountsClient := client.NewAccountsClient(cfg.AccountsServiceURL, cfg.AccountsTimeout)
	notificationClient := client.NewNotificationClient(cfg.NotificationServiceURL, cfg.NotificationTimeout)

	var drift usecase.DriftPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafkaEvents.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
		drift = publisher
		log.Info().Strs("brokers", cfg.KafkaBrokers).Msg("publishing drift events to kafka")
	} else {
		drift = events.NewLogPublisher(appLogger)
	}

	// Initialize use cases
	submissionUC := usecase.NewSubmissionUseCase(usecase.SubmissionConfig{
		TxManager:       txManager,
		TransactionRepo: txnRepo,
		IdempotencyRepo: idemRepo,
		Retrier:         retrier,
		Accounts:        accountsClient,
		Notifier:        notificationClient,
		Drift:           drift,
		IDGen:           events.NewULIDGenerator(),
		DailyLimit:      decimal.NewFromInt(cfg.DailyLimit),
		Metrics:         appMetrics,
		Logger:          appLogger,
	})
	queryUC := usecase.NewQueryUseCase(txnRepo, cache, cfg.CacheTTL, appLogger)

	// Initialize handlers and router
	txnHandler := handler.NewTransactionHandler(submissionUC, queryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: txnHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
