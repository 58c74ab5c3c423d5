package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/erickfunier/pdftotext-worker/internal/domain/extraction"
)

// DefaultBinary is looked up on PATH when no converter binary is configured
const DefaultBinary = "pdftotext"

// waitDelay bounds how long Run waits for stdout to close after the process
// has been killed on timeout.
const waitDelay = 2 * time.Second

// PdfToTextExecutor implements extraction.Converter by running pdftotext
type PdfToTextExecutor struct {
	bin     string
	timeout time.Duration
}

// ResolveBinary returns the absolute path of the named executable, searched
// the same way a shell `which` would. An empty string means it was not found.
func ResolveBinary(name string) string {
	if name == "" {
		name = DefaultBinary
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return strings.TrimSpace(path)
}

// NewPdfToTextExecutor creates an executor for an already resolved binary path.
// A zero timeout disables the per-conversion deadline.
func NewPdfToTextExecutor(bin string, timeout time.Duration) *PdfToTextExecutor {
	return &PdfToTextExecutor{
		bin:     bin,
		timeout: timeout,
	}
}

// Binary returns the converter path the executor was built with
func (e *PdfToTextExecutor) Binary() string {
	return e.bin
}

// Args builds the pdftotext argument vector: quiet, UTF-8 output, unix line
// endings, the input file and "-" for standard output.
func Args(path string) []string {
	return []string{"-q", "-enc", "UTF-8", "-eol", "unix", path, "-"}
}

// Convert runs pdftotext against path and returns everything it wrote to
// standard output. Standard error is discarded. Cancelling ctx does not stop
// a conversion; the executor timeout does.
//
// A non-zero exit status still returns the captured output, together with an
// error wrapping extraction.ErrConverterExit.
func (e *PdfToTextExecutor) Convert(ctx context.Context, path string) ([]byte, error) {
	if e.bin == "" {
		return nil, fmt.Errorf("%w: %s not found on PATH", extraction.ErrConverterUnavailable, DefaultBinary)
	}

	// An absolute path can never be mistaken for a flag.
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	// A started conversion runs to completion; only the timeout stops it.
	ctx = context.WithoutCancel(ctx)
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, e.bin, Args(path)...)
	cmd.Stdout = &stdout
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s: %v", extraction.ErrConverterTimeout, e.timeout, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), fmt.Errorf("%w: %v", extraction.ErrConverterExit, err)
	}

	return nil, fmt.Errorf("%w: %v", extraction.ErrConverterUnavailable, err)
}
