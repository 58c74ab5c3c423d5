package extraction

import (
	"fmt"
	"os"

	"github.com/erickfunier/pdftotext-worker/internal/domain/extraction"
	"golang.org/x/sys/unix"
)

// checkFile reports ErrFileNotFound when path cannot be stat'ed and
// ErrFileUnreadable when it is not a regular file this process may read.
func checkFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", extraction.ErrFileNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", extraction.ErrFileNotFound, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", extraction.ErrFileUnreadable, path)
	}

	if err := unix.Access(path, unix.R_OK); err != nil {
		return fmt.Errorf("%w: %v", extraction.ErrFileUnreadable, err)
	}

	return nil
}
