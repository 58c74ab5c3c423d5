package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandlers "github.com/erickfunier/pdftotext-worker/internal/adapters/inbound/http"
	"github.com/erickfunier/pdftotext-worker/internal/adapters/outbound/executor"
	"github.com/erickfunier/pdftotext-worker/internal/adapters/outbound/metrics"
	"github.com/erickfunier/pdftotext-worker/internal/adapters/outbound/persistence"
	appExtraction "github.com/erickfunier/pdftotext-worker/internal/application/extraction"
	appWorker "github.com/erickfunier/pdftotext-worker/internal/application/worker"
	"github.com/erickfunier/pdftotext-worker/internal/domain/worker"
	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/config"
	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/database"
	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.$CONFIG_ENV.yaml)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.Setup(os.Stdout, cfg.Logging, "worker-runtime")
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure - database connections
	postgres, err := database.NewPostgresConnection(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer postgres.Close()

	if err := postgres.Ping(ctx); err != nil {
		log.Fatalf("postgres ping error: %v", err)
	}
	logger.Info("Connected to Postgres")

	redis, err := database.NewRedisConnection(cfg.Redis)
	if err != nil {
		log.Fatalf("redis connection error: %v", err)
	}
	defer redis.Close()

	if err := redis.Ping(ctx); err != nil {
		log.Fatalf("redis ping error: %v", err)
	}
	logger.Info("Connected to Redis")

	// Resolve the converter once; a missing binary fails jobs, not startup
	converterPath := executor.ResolveBinary(cfg.Converter.Binary)
	if converterPath == "" {
		logger.Warn("PDF converter not found, jobs will fail until it is installed",
			slog.String("binary", cfg.Converter.Binary),
		)
	} else {
		logger.Info("Using PDF converter", slog.String("path", converterPath))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsService := metrics.NewPrometheusMetricsService(registry)

	// Initialize secondary adapters
	jobRepo := persistence.NewPostgresJobRepository(postgres.Pool)
	queueService := persistence.NewRedisQueueService(redis.Client, cfg.Worker.DequeueTimeout)
	publisher := persistence.NewRedisResultPublisher(redis.Client, cfg.Worker.ResultTTL)
	converter := executor.NewPdfToTextExecutor(converterPath, cfg.Converter.Timeout)

	extractionService := appExtraction.NewService(converter, logger, appExtraction.Options{
		LegacyEmptyOnLaunchError: cfg.Converter.LegacyEmptyOnLaunchError,
		Observer:                 metricsService,
	})

	workerConfig, err := worker.NewWorkerConfig(
		cfg.Worker.Queue,
		cfg.Worker.PollInterval,
		cfg.Worker.DequeueTimeout,
	)
	if err != nil {
		log.Fatalf("failed to create worker config: %v", err)
	}

	workerService := appWorker.NewService(
		jobRepo,
		queueService,
		publisher,
		metricsService,
		extractionService,
		workerConfig,
	)

	if cfg.Worker.MetricsPort != 0 {
		mux := http.NewServeMux()
		httpHandlers.RegisterOpsRoutes(mux, registry)
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Worker.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics listener stopped", slog.String("error", err.Error()))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("Metrics listener started", slog.String("addr", srv.Addr))
	}

	logger.Info("Worker Runtime service starting",
		slog.String("queue", workerConfig.QueueName),
		slog.Duration("pollInterval", workerConfig.PollInterval),
	)

	// Start worker; returns once the signal context is cancelled
	workerService.Start(ctx)
	logger.Info("Worker Runtime service stopped")
}
