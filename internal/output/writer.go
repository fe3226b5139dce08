package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileExists indicates the target file exists and overwriting is disabled
var ErrFileExists = errors.New("file already exists (use --force to overwrite)")

// Writer handles writing exported manifests to the filesystem
type Writer struct {
	force  bool
	dryRun bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Force  bool
	DryRun bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		force:  opts.Force,
		dryRun: opts.DryRun,
	}
}

// WriteFile writes data to path, creating parent directories. An existing
// file is only replaced when force is set.
func (w *Writer) WriteFile(path string, data []byte) error {
	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	if w.dryRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
