package queue

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Job represents a PDF conversion request as it moves through the queue
type Job struct {
	ID          uuid.UUID
	Queue       string
	Status      Status
	Payload     []byte
	Result      string
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Status represents job processing status
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var (
	ErrInvalidQueue   = errors.New("queue name is required")
	ErrEmptyPayload   = errors.New("job payload is required")
	ErrJobNotFound    = errors.New("job not found")
	ErrInvalidStatus  = errors.New("invalid job status")
	ErrJobAlreadyDone = errors.New("job already reached a terminal status")
)

// NewJob creates a new pending job. The payload is kept verbatim; it is only
// decoded by the worker.
func NewJob(queue string, payload []byte) (*Job, error) {
	if queue == "" {
		return nil, ErrInvalidQueue
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	now := time.Now().UTC()
	return &Job{
		ID:        uuid.New(),
		Queue:     queue,
		Status:    StatusPending,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ParseStatus validates a status string coming from outside the domain
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// MarkAsProcessing marks the job as being processed
func (j *Job) MarkAsProcessing() {
	j.Status = StatusProcessing
	j.UpdatedAt = time.Now().UTC()
}

// MarkAsCompleted stores the extracted text and closes the job
func (j *Job) MarkAsCompleted(result string) error {
	if j.IsTerminal() {
		return ErrJobAlreadyDone
	}
	now := time.Now().UTC()
	j.Status = StatusCompleted
	j.Result = result
	j.Error = ""
	j.UpdatedAt = now
	j.CompletedAt = &now
	return nil
}

// MarkAsFailed stores the failure reason and closes the job
func (j *Job) MarkAsFailed(reason string) error {
	if j.IsTerminal() {
		return ErrJobAlreadyDone
	}
	now := time.Now().UTC()
	j.Status = StatusFailed
	j.Error = reason
	j.UpdatedAt = now
	j.CompletedAt = &now
	return nil
}

// IsTerminal reports whether the job has been completed or failed
func (j *Job) IsTerminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}

// Result is the message published on the job-result channel once a job
// reaches a terminal status.
type Result struct {
	JobID       string    `json:"job_id"`
	Queue       string    `json:"queue"`
	Status      Status    `json:"status"`
	Text        string    `json:"text,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewResult builds the result message for a terminal job
func NewResult(j *Job) Result {
	r := Result{
		JobID:  j.ID.String(),
		Queue:  j.Queue,
		Status: j.Status,
		Text:   j.Result,
		Reason: j.Error,
	}
	if j.CompletedAt != nil {
		r.CompletedAt = *j.CompletedAt
	}
	return r
}
