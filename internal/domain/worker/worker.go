package worker

import (
	"errors"
	"time"
)

// WorkerConfig contains worker configuration
type WorkerConfig struct {
	QueueName      string
	PollInterval   time.Duration
	DequeueTimeout time.Duration
}

const (
	DefaultPollInterval   = 5 * time.Second
	DefaultDequeueTimeout = 2 * time.Second
)

var (
	ErrQueueNameRequired   = errors.New("queue name is required")
	ErrPollIntervalInvalid = errors.New("poll interval must not be negative")
	ErrAlreadyReported     = errors.New("job result was already reported")
)

// NewWorkerConfig creates and validates worker configuration. Zero durations
// fall back to the defaults.
func NewWorkerConfig(queueName string, pollInterval, dequeueTimeout time.Duration) (*WorkerConfig, error) {
	if queueName == "" {
		return nil, ErrQueueNameRequired
	}
	if pollInterval < 0 || dequeueTimeout < 0 {
		return nil, ErrPollIntervalInvalid
	}
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	if dequeueTimeout == 0 {
		dequeueTimeout = DefaultDequeueTimeout
	}

	return &WorkerConfig{
		QueueName:      queueName,
		PollInterval:   pollInterval,
		DequeueTimeout: dequeueTimeout,
	}, nil
}
