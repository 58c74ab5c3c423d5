package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/queue"
	"github.com/erickfunier/pdftotext-worker/internal/domain/worker"
)

// reportTimeout bounds persisting and publishing one terminal report
const reportTimeout = 10 * time.Second

// Delivery adapts a dequeued job to the extraction.Job capability. The first
// report persists the terminal state and publishes it on the result channel;
// any later report is rejected with worker.ErrAlreadyReported.
//
// A Delivery is used by a single goroutine.
type Delivery struct {
	job       *queue.Job
	jobRepo   queue.JobRepository
	publisher queue.ResultPublisher
	metrics   queue.MetricsService
	reported  bool
}

func newDelivery(job *queue.Job, jobRepo queue.JobRepository, publisher queue.ResultPublisher, metrics queue.MetricsService) *Delivery {
	return &Delivery{
		job:       job,
		jobRepo:   jobRepo,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Body returns the raw job payload
func (d *Delivery) Body() []byte {
	return d.job.Payload
}

// SendSuccess completes the job with the extracted text
func (d *Delivery) SendSuccess(ctx context.Context, text string) error {
	if err := d.claim(); err != nil {
		return err
	}
	if err := d.job.MarkAsCompleted(text); err != nil {
		return err
	}
	if d.metrics != nil {
		d.metrics.RecordJobCompleted(d.job.Queue)
	}
	return d.finish(ctx)
}

// SendFail fails the job with a fixed reason
func (d *Delivery) SendFail(ctx context.Context, reason string) error {
	if err := d.claim(); err != nil {
		return err
	}
	if err := d.job.MarkAsFailed(reason); err != nil {
		return err
	}
	if d.metrics != nil {
		d.metrics.RecordJobFailed(d.job.Queue, reason)
	}
	return d.finish(ctx)
}

// Reported tells whether a terminal report has been made
func (d *Delivery) Reported() bool {
	return d.reported
}

func (d *Delivery) claim() error {
	if d.reported {
		return worker.ErrAlreadyReported
	}
	d.reported = true
	return nil
}

func (d *Delivery) finish(ctx context.Context) error {
	// The terminal state is written even when the worker is shutting down.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportTimeout)
	defer cancel()

	if err := d.jobRepo.Update(ctx, d.job); err != nil {
		return fmt.Errorf("persist job %s: %w", d.job.ID, err)
	}
	if err := d.publisher.Publish(ctx, d.job); err != nil {
		return fmt.Errorf("publish result for job %s: %w", d.job.ID, err)
	}
	return nil
}
