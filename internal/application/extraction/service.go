package extraction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/extraction"
)

// ConversionObserver receives the wall time of each converter run
type ConversionObserver interface {
	ObserveConversion(duration time.Duration)
}

// Options tunes the extraction service
type Options struct {
	// LegacyEmptyOnLaunchError reports success with empty text when the
	// converter cannot be started, instead of failing the job.
	LegacyEmptyOnLaunchError bool
	Observer                 ConversionObserver
}

// Service converts the PDF named by each job into plain text
type Service struct {
	converter extraction.Converter
	logger    extraction.Logger
	opts      Options
}

// NewService creates a new extraction service
func NewService(converter extraction.Converter, logger extraction.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		converter: converter,
		logger:    logger,
		opts:      opts,
	}
}

// ProcessJob decodes, validates and converts one job, then reports the
// outcome through exactly one of job.SendSuccess or job.SendFail. Per-job
// problems never surface as the returned error; only a failing report does.
func (s *Service) ProcessJob(ctx context.Context, job extraction.Job) error {
	workload, err := extraction.DecodeWorkload(job.Body())
	if err != nil {
		return s.fail(ctx, job, err)
	}

	if err := checkFile(workload.Filename); err != nil {
		return s.fail(ctx, job, err, slog.String("filename", workload.Filename))
	}

	s.logger.InfoContext(ctx, "Converting PDF",
		slog.String("filename", workload.Filename),
	)

	start := time.Now()
	output, err := s.converter.Convert(ctx, workload.Filename)
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveConversion(time.Since(start))
	}

	// A converter error that still ends in success is carried on the
	// "done" line instead of a separate log entry.
	doneAttrs := []any{slog.String("filename", workload.Filename)}

	switch {
	case err == nil:
	case errors.Is(err, extraction.ErrConverterExit):
		doneAttrs = append(doneAttrs, slog.String("converterError", err.Error()))
	case errors.Is(err, extraction.ErrConverterUnavailable) && s.opts.LegacyEmptyOnLaunchError:
		doneAttrs = append(doneAttrs, slog.String("converterError", err.Error()))
		output = nil
	default:
		return s.fail(ctx, job, err, slog.String("filename", workload.Filename))
	}

	text := extraction.NormalizeSpaces(output)

	doneAttrs = append(doneAttrs, slog.Int("bytes", len(text)))
	s.logger.InfoContext(ctx, "PDF conversion done", doneAttrs...)

	return job.SendSuccess(ctx, string(text))
}

func (s *Service) fail(ctx context.Context, job extraction.Job, err error, attrs ...any) error {
	reason := extraction.Reason(err)
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.ErrorContext(ctx, reason, attrs...)
	return job.SendFail(ctx, reason)
}
