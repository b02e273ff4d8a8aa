package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/beanscout/beanscout/internal/catalog"
	httpDelivery "github.com/beanscout/beanscout/internal/catalog/delivery/http"
	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/repository"
	"github.com/beanscout/beanscout/internal/catalog/reviews"
	"github.com/beanscout/beanscout/internal/catalog/usecase/command"
	"github.com/beanscout/beanscout/kafka"
	"github.com/beanscout/beanscout/pkg/database"
	"github.com/beanscout/beanscout/pkg/logger"
	"github.com/beanscout/beanscout/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting catalog service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Open the catalog store
	store, closeStore := openStore()
	defer closeStore()

	// Review aggregates backend (optional)
	reviewsProvider := buildReviewsProvider()

	// Kafka publisher for catalog change events (optional)
	var notifier command.Notifier
	var publisher *kafka.Publisher
	kafkaBrokers := getEnv("KAFKA_BROKERS", "")
	if kafkaBrokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(kafkaBrokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, continuing without events")
		} else {
			notifier = publisher
			defer publisher.Close()
		}
	}

	// Initialize handler with Wire DI
	handler, err := catalog.InitializeHTTPHandler(store, reviewsProvider, notifier, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Kafka consumer: refresh the snapshot when another process mutates the
	// shared store (optional)
	if kafkaBrokers != "" {
		consumerCtx, cancelConsumer := context.WithCancel(context.Background())
		defer cancelConsumer()

		consumer, err := kafka.NewConsumer(
			strings.Split(kafkaBrokers, ","),
			getEnv("KAFKA_GROUP_ID", "catalog-service"),
			func(ctx context.Context, event kafka.CatalogChangedEvent) error {
				return handler.Refresh(ctx)
			},
		)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka consumer, continuing without refresh events")
		} else {
			consumer.Start(consumerCtx)
			defer consumer.Close()
		}
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(handler, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// openStore builds the configured catalog store backend, wrapped with tracing.
func openStore() (domain.CatalogStore, func()) {
	backend := getEnv("STORE_BACKEND", "buntdb")

	switch backend {
	case "postgres":
		dbConfig := database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "catalogdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}

		db, err := database.NewPostgresConnection(dbConfig)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		store := repository.NewPostgresCatalogStore(db)
		if err := store.Migrate(context.Background()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}

		logger.Logger.Info().Str("backend", backend).Msg("Catalog store initialized")
		return repository.NewCatalogStoreWithTracing(store), func() { db.Close() }

	case "memory":
		logger.Logger.Info().Str("backend", backend).Msg("Catalog store initialized")
		return repository.NewCatalogStoreWithTracing(repository.NewMemoryCatalogStore()), func() {}

	case "buntdb":
		path := getEnv("BUNTDB_PATH", "catalog.db")
		store, err := repository.OpenBuntDBCatalogStore(path)
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("path", path).Msg("Failed to open catalog store")
		}

		logger.Logger.Info().Str("backend", backend).Str("path", path).Msg("Catalog store initialized")
		return repository.NewCatalogStoreWithTracing(store), func() { store.Close() }

	default:
		logger.Logger.Fatal().Str("backend", backend).Msg("Unknown store backend")
		return nil, nil
	}
}

// buildReviewsProvider connects to Redis when configured, otherwise reviews
// decoration is disabled.
func buildReviewsProvider() reviews.Provider {
	redisAddr := getEnv("REDIS_ADDR", "")
	if redisAddr == "" {
		return reviews.NoopProvider{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Error().Err(err).Str("addr", redisAddr).Msg("Redis unavailable, review decoration disabled")
		return reviews.NoopProvider{}
	}

	logger.Logger.Info().Str("addr", redisAddr).Msg("Review aggregates backend connected")
	return reviews.NewRedisProvider(client)
}

func startHTTPServer(handler *httpDelivery.CatalogHandler, port string) {
	// Setup router
	router := mux.NewRouter()
	router.Use(httpDelivery.LoggingMiddleware)

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
