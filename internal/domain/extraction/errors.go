package extraction

import "errors"

// Failure reasons reported back through the job framework. The first three
// are the long-standing reasons existing consumers match on.
const (
	ReasonMalformedJob         = "Job was not formatted properly."
	ReasonFileNotFound         = "PDF file was not found."
	ReasonFileUnreadable       = "PDF file could not be opened."
	ReasonConverterUnavailable = "PDF converter is unavailable."
	ReasonConverterTimeout     = "PDF conversion timed out."
)

var (
	ErrMalformedJob         = errors.New("job was not formatted properly")
	ErrFileNotFound         = errors.New("pdf file was not found")
	ErrFileUnreadable       = errors.New("pdf file could not be opened")
	ErrConverterUnavailable = errors.New("pdf converter is unavailable")
	ErrConverterTimeout     = errors.New("pdf conversion timed out")

	// ErrConverterExit is returned alongside the captured output when the
	// converter ran to completion but exited with a non-zero status.
	ErrConverterExit = errors.New("pdf converter exited with non-zero status")
)

// Reason maps an extraction error to the fixed reason string sent to the job
// framework. Converter errors that are not otherwise classified report as
// an unavailable converter.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMalformedJob):
		return ReasonMalformedJob
	case errors.Is(err, ErrFileNotFound):
		return ReasonFileNotFound
	case errors.Is(err, ErrFileUnreadable):
		return ReasonFileUnreadable
	case errors.Is(err, ErrConverterTimeout):
		return ReasonConverterTimeout
	default:
		return ReasonConverterUnavailable
	}
}
