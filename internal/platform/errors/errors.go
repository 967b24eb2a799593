// Package errors provides error types and utilities for FlatSource.
// It extends the standard errors package with context wrapping and
// the mapping from errors to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates invalid command line or configuration input
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPattern indicates a malformed glob pattern
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrConfigFile indicates the YAML configuration file could not be used
	ErrConfigFile = errors.New("configuration file error")

	// ErrCanceled indicates the run was interrupted
	ErrCanceled = errors.New("operation canceled")
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := os.MkdirAll(dest, 0o755); err != nil {
//	    return errors.Wrap(err, "create destination")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf is fmt.Errorf; it accepts several %w verbs.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Invalid marks err as a usage error while keeping it in the chain.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	if Is(err, ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// IsInvalidInput reports whether the error is a usage or configuration error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput) || Is(err, ErrInvalidPattern) || Is(err, ErrConfigFile)
}

// IsCanceled reports whether the run was interrupted
func IsCanceled(err error) bool {
	return Is(err, ErrCanceled)
}

// ExitCode maps an error to the process exit code:
// nil is 0, configuration and usage errors are 2, everything else is 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsInvalidInput(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
