package storage

import (
	"bytes"
	"fmt"
	"os"

	"employee-list/internal/logger"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

// FileWriteError is returned when the export could not be persisted.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// AtomicWriter replaces files through a temporary sibling and a rename, so a
// failed write never leaves a truncated file at the destination.
type AtomicWriter struct {
	Perm   os.FileMode
	logger logger.Logger
}

func NewAtomicWriter(log logger.Logger) *AtomicWriter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &AtomicWriter{Perm: 0o644, logger: log}
}

// WriteFile stores text at path as UTF-8, overwriting any existing file.
func (w *AtomicWriter) WriteFile(path, text string) error {
	if err := w.writeFile(path, []byte(text)); err != nil {
		werr := &FileWriteError{Path: path, Err: err}
		w.logger.Error("AtomicWriter", werr, map[string]interface{}{"path": path})
		return werr
	}

	w.logger.Info("AtomicWriter", "file written", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

func (w *AtomicWriter) writeFile(path string, data []byte) error {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.Wrap(err, "replace file")
	}

	// Replacements keep the previous mode; new files start at 0600.
	if created {
		if err := os.Chmod(path, w.Perm); err != nil {
			return errors.Wrap(err, "chmod")
		}
	}
	return nil
}
