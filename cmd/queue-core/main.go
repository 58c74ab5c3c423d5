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
	"github.com/erickfunier/pdftotext-worker/internal/adapters/outbound/metrics"
	"github.com/erickfunier/pdftotext-worker/internal/adapters/outbound/persistence"
	appQueue "github.com/erickfunier/pdftotext-worker/internal/application/queue"
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

	logger, err := logging.Setup(os.Stdout, cfg.Logging, "queue-core")
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize secondary adapters (output ports implementations)
	jobRepo := persistence.NewPostgresJobRepository(postgres.Pool)
	queueService := persistence.NewRedisQueueService(redis.Client, cfg.Worker.DequeueTimeout)
	metricsService := metrics.NewPrometheusMetricsService(registry)

	// Initialize application services (use cases)
	queueAppService := appQueue.NewService(jobRepo, queueService, metricsService, cfg.Worker.Queue)

	// Initialize primary adapters (input ports / HTTP handlers)
	queueHandlers := httpHandlers.NewQueueHandlers(queueAppService)

	// Setup HTTP routes
	mux := http.NewServeMux()
	httpHandlers.RegisterQueueRoutes(mux, queueHandlers)
	httpHandlers.RegisterOpsRoutes(mux, registry)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("Queue Core service running", slog.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
