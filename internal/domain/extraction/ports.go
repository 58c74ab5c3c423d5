package extraction

import "context"

// Job is a unit of work handed to the extraction worker by the job framework.
// Exactly one of SendSuccess or SendFail must be called per job.
type Job interface {
	Body() []byte
	SendSuccess(ctx context.Context, text string) error
	SendFail(ctx context.Context, reason string) error
}

// Converter runs the external PDF-to-text tool against a file and returns
// its standard output.
type Converter interface {
	Convert(ctx context.Context, path string) ([]byte, error)
}

// Logger is the subset of *slog.Logger the worker writes to.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
