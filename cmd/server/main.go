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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/royalguard/activity-api/internal/adapter/handler"
	"github.com/royalguard/activity-api/internal/adapter/middleware"
	"github.com/royalguard/activity-api/internal/domain/service"
	"github.com/royalguard/activity-api/internal/infra/config"
	"github.com/royalguard/activity-api/internal/infra/messaging"
	"github.com/royalguard/activity-api/internal/infra/persistence"
	"github.com/royalguard/activity-api/internal/usecase"
)

const serviceName = "activity-api"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration.
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger.
	logger := config.NewLogger(cfg.App.Environment, serviceName, cfg.Log.Level)

	// Connect to MongoDB. A failure degrades the service instead of
	// killing it: ingestion answers 503 until the next deploy.
	store, err := persistence.NewStore(ctx, cfg.Mongo)
	if err != nil {
		logger.Warn("MongoDB not reachable at startup, serving degraded",
			slog.String("error", err.Error()))
	} else if err := store.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure indexes", slog.String("error", err.Error()))
	}
	defer func() {
		_ = store.Close(context.Background())
	}()

	// Initialize repositories.
	activityRepo := persistence.NewMongoActivityRepository(store.Database())
	logRepo := persistence.NewMongoGameLogRepository(store.Database())
	licenseRepo := persistence.NewMongoLicenseRepository(store.Database())

	// Initialize usecases. Publishing is disabled without brokers.
	recordActivityUC := usecase.NewRecordActivityUseCase(activityRepo)
	var ingestLogUC *usecase.IngestLogUseCase
	if len(cfg.Kafka.Brokers) > 0 {
		producer := messaging.NewLogProducer(cfg.Kafka)
		defer func() {
			_ = producer.Close()
		}()
		logger.Info("Kafka publishing enabled", slog.String("topic", cfg.Kafka.Topic))
		ingestLogUC = usecase.NewIngestLogUseCase(logRepo, producer)
	} else {
		ingestLogUC = usecase.NewIngestLogUseCase(logRepo, nil)
	}
	issueLicenseUC := usecase.NewIssueLicenseUseCase(licenseRepo)
	getLicenseUC := usecase.NewGetLicenseUseCase(licenseRepo)
	revokeLicenseUC := usecase.NewRevokeLicenseUseCase(licenseRepo)

	// Initialize the credential gate and handlers.
	gate := service.NewCredentialGate(cfg.Auth.APIKey)
	if !gate.Configured() {
		logger.Warn("No API key configured, all requests will be rejected")
	}

	healthHandler := handler.NewHealthHandler(store, cfg.App.Name, gate.Configured())
	activityHandler := handler.NewActivityHandler(recordActivityUC, gate)
	logHandler := handler.NewLogHandler(ingestLogUC, gate)
	licenseHandler := handler.NewLicenseHandler(issueLicenseUC, getLicenseUC, revokeLicenseUC)

	// Initialize OpenTelemetry when an endpoint is configured.
	tp, err := initTracerProvider(ctx)
	if err != nil {
		logger.Warn("Failed to initialize OTel tracer provider", slog.String("error", err.Error()))
	} else if tp != nil {
		defer func() {
			_ = tp.Shutdown(context.Background())
		}()
	}

	// Set up Gin router.
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics := middleware.NewMetrics(serviceName)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(metrics.Handler())
	if tp != nil {
		router.Use(otelgin.Middleware(serviceName))
	}

	healthHandler.RegisterRoutes(router)
	activityHandler.RegisterRoutes(router)
	logHandler.RegisterRoutes(router)
	licenseHandler.RegisterRoutes(router, middleware.APIKeyAuth(gate))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start HTTP server.
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.ParseDuration(cfg.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: config.ParseDuration(cfg.Server.WriteTimeout, 30*time.Second),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Activity API starting",
			slog.String("addr", addr),
			slog.Bool("database_connected", store.Connected()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown.
	shutdownTimeout := config.ParseDuration(cfg.Server.ShutdownTimeout, 15*time.Second)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("Activity API stopped")
	return nil
}

// initTracerProvider sets up the OTLP trace exporter. Tracing is
// entirely disabled when OTEL_EXPORTER_OTLP_ENDPOINT is unset.
func initTracerProvider(ctx context.Context) (*sdktrace.TracerProvider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}
