package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/erickfunier/pdftotext-worker/internal/domain/worker"
)

// Service orchestrates worker-related use cases
type Service struct {
	jobRepo      queue.JobRepository
	queueService queue.QueueService
	publisher    queue.ResultPublisher
	metrics      queue.MetricsService
	processor    worker.JobProcessor
	config       *worker.WorkerConfig
}

// NewService creates a new worker application service
func NewService(
	jobRepo queue.JobRepository,
	queueService queue.QueueService,
	publisher queue.ResultPublisher,
	metrics queue.MetricsService,
	processor worker.JobProcessor,
	config *worker.WorkerConfig,
) *Service {
	return &Service{
		jobRepo:      jobRepo,
		queueService: queueService,
		publisher:    publisher,
		metrics:      metrics,
		processor:    processor,
		config:       config,
	}
}

// ProcessNextJob processes the next available job from the queue
func (s *Service) ProcessNextJob(ctx context.Context) error {
	_, err := s.processNext(ctx)
	return err
}

// processNext reports whether a job was dequeued, so Start can drain the
// queue without waiting a full poll interval between jobs.
func (s *Service) processNext(ctx context.Context) (bool, error) {
	job, err := s.queueService.Dequeue(ctx, s.config.QueueName)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to dequeue job",
			slog.String("error", err.Error()),
			slog.String("queue", s.config.QueueName),
		)
		return false, err
	}

	if job == nil {
		slog.DebugContext(ctx, "No jobs available in queue",
			slog.String("queue", s.config.QueueName),
		)
		return false, nil
	}

	slog.InfoContext(ctx, "Dequeued job",
		slog.String("jobId", job.ID.String()),
		slog.String("queue", job.Queue),
	)

	// The job is off the queue now; shutdown must not strand it.
	ctx = context.WithoutCancel(ctx)

	job.MarkAsProcessing()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		slog.ErrorContext(ctx, "Failed to update job status to processing",
			slog.String("jobId", job.ID.String()),
			slog.String("error", err.Error()),
		)
		return true, err
	}

	delivery := newDelivery(job, s.jobRepo, s.publisher, s.metrics)
	if err := s.processor.ProcessJob(ctx, delivery); err != nil {
		slog.ErrorContext(ctx, "Failed to report job result",
			slog.String("jobId", job.ID.String()),
			slog.String("error", err.Error()),
		)
		return true, err
	}

	slog.InfoContext(ctx, "Job finished",
		slog.String("jobId", job.ID.String()),
		slog.String("status", string(job.Status)),
	)
	return true, nil
}

// Start runs the worker loop until ctx is cancelled. Jobs are handled one at
// a time; the loop only sleeps for PollInterval when the queue is empty or
// the queue backend returned an error.
func (s *Service) Start(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started",
		slog.String("queue", s.config.QueueName),
		slog.Duration("pollInterval", s.config.PollInterval),
	)

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		s.drain(ctx)

		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker shutting down",
				slog.String("queue", s.config.QueueName),
			)
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) drain(ctx context.Context) {
	for ctx.Err() == nil {
		processed, err := s.processNext(ctx)
		if err != nil {
			if ctx.Err() == nil {
				slog.ErrorContext(ctx, "Error processing job",
					slog.String("error", err.Error()),
				)
			}
			return
		}
		if !processed {
			return
		}
	}
}
