package queue

import (
	"context"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/google/uuid"
)

// Service orchestrates queue-related use cases
type Service struct {
	jobRepo      queue.JobRepository
	queueService queue.QueueService
	metrics      queue.MetricsService
	defaultQueue string
}

// NewService creates a new queue application service
func NewService(
	jobRepo queue.JobRepository,
	queueService queue.QueueService,
	metrics queue.MetricsService,
	defaultQueue string,
) *Service {
	return &Service{
		jobRepo:      jobRepo,
		queueService: queueService,
		metrics:      metrics,
		defaultQueue: defaultQueue,
	}
}

// CreateJobCommand represents the data needed to request a conversion
type CreateJobCommand struct {
	Queue string
	// Body is the job body exactly as received; it is only decoded by the worker
	Body []byte
}

// CreateJob stores the body verbatim as a new job and enqueues it. Nothing is
// validated here beyond a non-empty body: malformed bodies and missing files
// are reported by the worker.
func (s *Service) CreateJob(ctx context.Context, cmd CreateJobCommand) (*queue.Job, error) {
	queueName := cmd.Queue
	if queueName == "" {
		queueName = s.defaultQueue
	}

	job, err := queue.NewJob(queueName, cmd.Body)
	if err != nil {
		return nil, err
	}

	// Persist before enqueueing so the worker always finds the row
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	if err := s.queueService.Enqueue(ctx, job); err != nil {
		return nil, err
	}

	s.metrics.RecordJobCreated(job.Queue)

	return job, nil
}

// GetJob retrieves a job by ID
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*queue.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// GetJobsByStatus retrieves jobs by status
func (s *Service) GetJobsByStatus(ctx context.Context, status queue.Status, limit int) ([]*queue.Job, error) {
	return s.jobRepo.FindByStatus(ctx, status, limit)
}

// GetMetrics counts jobs per status
func (s *Service) GetMetrics(ctx context.Context) (map[string]int64, error) {
	metrics := make(map[string]int64)

	for _, status := range []queue.Status{
		queue.StatusPending,
		queue.StatusProcessing,
		queue.StatusCompleted,
		queue.StatusFailed,
	} {
		count, err := s.jobRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		metrics[string(status)] = count
	}

	return metrics, nil
}
