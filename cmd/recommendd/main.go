package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pkgkafka "github.com/MradulDixit-A/neupi-api/pkg/kafka"
	"github.com/MradulDixit-A/neupi-api/pkg/observability"
	pkgpostgres "github.com/MradulDixit-A/neupi-api/pkg/postgres"

	"github.com/MradulDixit-A/neupi-api/internal/application/usecase"
	"github.com/MradulDixit-A/neupi-api/internal/domain/port"
	"github.com/MradulDixit-A/neupi-api/internal/domain/service"
	"github.com/MradulDixit-A/neupi-api/internal/infrastructure/catalog"
	"github.com/MradulDixit-A/neupi-api/internal/infrastructure/config"
	"github.com/MradulDixit-A/neupi-api/internal/infrastructure/messaging"
	grpcPresentation "github.com/MradulDixit-A/neupi-api/internal/presentation/grpc"
	"github.com/MradulDixit-A/neupi-api/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting recommendation-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"catalog_source", cfg.CatalogSource,
	)

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Load scoring rules.
	rules, explanations, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		logger.Error("failed to load scoring rules", "error", err)
		os.Exit(1)
	}

	// Catalog backend.
	catalogRepo, cleanup, err := buildCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize card catalog", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Event publisher: Kafka when brokers are configured, noop otherwise.
	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
			Brokers: cfg.Kafka.Brokers,
		})
		defer kafkaProducer.Close()
		publisher = messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)
		logger.Info("kafka event publishing enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewNoopEventPublisher(logger)
		logger.Info("no kafka brokers configured, event publishing disabled")
	}

	// Wire domain services and use cases.
	recommender := service.NewRecommender(rules, explanations)
	healthBuilder := service.NewHealthScoreBuilder()

	recommendUC := usecase.NewRecommendCardsUseCase(catalogRepo, publisher, recommender, logger)
	healthScoreUC := usecase.NewGetHealthScoreUseCase(publisher, recommender.Analyzer(), healthBuilder, logger)
	analyzeUC := usecase.NewAnalyzeProfileUseCase(catalogRepo, publisher, recommender, healthBuilder, logger)

	// gRPC server.
	grpcHandler := grpcPresentation.NewRecommendationHandler(recommendUC, healthScoreUC, analyzeUC)
	grpcServer := grpcPresentation.NewServer(grpcHandler, logger)

	// HTTP server.
	mux := http.NewServeMux()
	rest.NewRecommendationHandler(recommendUC, healthScoreUC, analyzeUC, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(catalogRepo, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr(),
		Handler: rest.Chain(mux,
			rest.LoggingMiddleware(logger),
			rest.MetricsMiddleware(),
			rest.CORSMiddleware(cfg.CORSAllowedOrigins),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("recommendation-service stopped")
}

// buildCatalog selects and initializes the configured catalog backend. The
// returned cleanup releases backend resources and is always safe to call.
func buildCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CatalogRepository, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case "file":
		repo, err := catalog.NewFileRepository(cfg.CatalogFile, logger)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case "postgres":
		dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
		defer dbCancel()

		pgCfg := pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		}
		pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info("connected to database")

		if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/postgres/migrations"); migErr != nil {
			logger.Warn("migration warning", "error", migErr)
		}
		return catalog.NewPostgresRepository(pool), pool.Close, nil

	default:
		return catalog.NewStaticRepository(), noop, nil
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
