package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common errors
var (
	ErrNotExist        = errors.New("file does not exist")
	ErrIsDir           = errors.New("is a directory")
	ErrNotDir          = errors.New("not a directory")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("i/o failure")
	ErrNotSupported    = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsNotFound reports whether a path did not resolve to the expected kind of
// entry: missing, a directory where a file was expected, or the reverse.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotExist) || errors.Is(err, ErrIsDir) || errors.Is(err, ErrNotDir)
}

// IsInvalidArgument reports whether an error was caused by a bad argument
// such as a negative skip count or a malformed permission set.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsIO reports whether an error is a system-level read, write or delete failure.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsNotSupported reports whether the target file system cannot perform the
// requested operation.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// ioFailure marks cause as an I/O failure while keeping it in the chain.
func ioFailure(cause error) error {
	return fmt.Errorf("%w: %w", ErrIO, cause)
}

// invalidArgument builds an ErrInvalidArgument with a detail message.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// mapError translates an os-level failure into a *PathError using the
// package's error vocabulary.
func mapError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, ErrNotExist):
		return &PathError{Op: op, Path: path, Err: ErrNotExist}
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrNotSupported),
		errors.Is(err, ErrIsDir), errors.Is(err, ErrNotDir), errors.Is(err, ErrIO):
		return &PathError{Op: op, Path: path, Err: err}
	default:
		return &PathError{Op: op, Path: path, Err: ioFailure(err)}
	}
}
