package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/storefront/docs"
	"github.com/tair/storefront/internal/config"
	httpDelivery "github.com/tair/storefront/internal/delivery/http"
	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/internal/repository"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	// stderr until the configured logger takes over
	logger.Bootstrap("storefront", os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(logger.Options{
		Service:     cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("version", version).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	// prices and totals are JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	tp, err := tracing.InitTracer(cfg.Tracing(version))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}

	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	events, closeEvents := newEventPublisher(cfg)

	api, err := storefront.InitializeAPI(db, events, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	router := mux.NewRouter()
	httpDelivery.RegisterMiddlewares(router, httpDelivery.MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: cfg.TracingEnabled,
	})
	api.RegisterRoutes(router)
	httpDelivery.RegisterMetrics(router, prometheus.DefaultGatherer)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	closeEvents()
	if err := tracing.Shutdown(ctx, tp); err != nil {
		logger.Logger.Error().Err(err).Msg("Tracer shutdown failed")
	}
	if err := database.Close(db); err != nil {
		logger.Logger.Error().Err(err).Msg("Database close failed")
	}

	logger.Logger.Info().Msg("Server stopped")
}

// newEventPublisher returns the Kafka publisher when brokers are configured
// and a no-op publisher otherwise
func newEventPublisher(cfg *config.Config) (domain.EventPublisher, func()) {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, order events disabled")
		return domain.NopPublisher{}, func() {}
	}

	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, order events disabled")
		return domain.NopPublisher{}, func() {}
	}

	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka publisher close failed")
		}
	}
}
