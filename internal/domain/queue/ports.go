package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobRepository defines the interface for job persistence
// This is a port (output port) - secondary adapter will implement this
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	Update(ctx context.Context, job *Job) error

	FindByStatus(ctx context.Context, status Status, limit int) ([]*Job, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

// QueueService defines the interface for queue operations.
// Dequeue returns nil, nil when no job arrived before its timeout.
type QueueService interface {
	Enqueue(ctx context.Context, job *Job) error
	Dequeue(ctx context.Context, queueName string) (*Job, error)
}

// ResultPublisher delivers terminal job results to whoever is waiting on them
type ResultPublisher interface {
	Publish(ctx context.Context, job *Job) error
}

// MetricsService defines the interface for metrics collection
type MetricsService interface {
	RecordJobCreated(queue string)
	RecordJobCompleted(queue string)
	RecordJobFailed(queue, reason string)
	ObserveConversion(duration time.Duration)
}
