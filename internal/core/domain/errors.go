// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	// Configuration errors
	ErrNoInputExtensions  = errors.New("at least one input extension is required")
	ErrNoOutputExtensions = errors.New("at least one output extension is required")
	ErrEmptyDestination   = errors.New("destination directory is required")

	// Validation errors
	ErrRootNotFound = errors.New("root directory not found")
	ErrRootNotDir   = errors.New("root path is not a directory")
	ErrDestination  = errors.New("failed to create destination")

	// Processing errors
	ErrReadSource = errors.New("failed to read source file")
	ErrWriteDest  = errors.New("failed to write destination file")
	ErrRunAborted = errors.New("run aborted")
)

// FileOp names the filesystem operation that failed for a single file.
type FileOp string

const (
	FileOpRead   FileOp = "read"
	FileOpCreate FileOp = "create"
	FileOpWrite  FileOp = "write"
)

// FileError reports a per-file I/O failure during processing.
// It always carries the source path so the operator can find the offending file.
type FileError struct {
	Op     FileOp
	Source string
	Dest   string
	Err    error
}

func (e *FileError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Source, e.Dest, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *FileError) Unwrap() []error {
	kind := ErrWriteDest
	if e.Op == FileOpRead {
		kind = ErrReadSource
	}
	return []error{kind, e.Err}
}
