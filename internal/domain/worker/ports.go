package worker

import (
	"context"

	"github.com/erickfunier/pdftotext-worker/internal/domain/extraction"
)

// JobProcessor handles one delivered job and reports its outcome through the
// job itself. The returned error is for transport problems only; per-job
// failures are reported with SendFail.
type JobProcessor interface {
	ProcessJob(ctx context.Context, job extraction.Job) error
}
