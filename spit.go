package fileio

import (
	"bufio"
	"errors"
	"os"
)

// Spit writes content to the file at path, truncating it unless
// WithAppend(true) is given. Parent directories are not created; a missing
// parent is an ErrIO failure.
func (o *IO) Spit(path, content string, options ...Option) error {
	opts := o.processOptions(options...)
	o.logger.Debug("spitting", "op", "spit", "path", path, "append", opts.Append, "bytes", len(content))

	f, err := os.OpenFile(path, writeFlags(opts.Append), opts.FileMode)
	if err != nil {
		return &PathError{Op: "spit", Path: path, Err: ioFailure(err)}
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return &PathError{Op: "spit", Path: path, Err: ioFailure(err)}
	}
	if err := f.Close(); err != nil {
		return &PathError{Op: "spit", Path: path, Err: ioFailure(err)}
	}
	return nil
}

func writeFlags(appendMode bool) int {
	if appendMode {
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
}

// ErrSpitterClosed is returned when a line is written to a closed Spitter.
var ErrSpitterClosed = errors.New("spitter already closed")

// Spitter writes a file line by line through a buffer. A Spitter must be
// closed to flush its buffer; it is not safe for concurrent use.
type Spitter struct {
	path   string
	file   *os.File
	writer *bufio.Writer
	closed bool
}

// NewSpitter opens path for line writing. The file is truncated unless
// WithAppend(true) is given.
func (o *IO) NewSpitter(path string, options ...Option) (*Spitter, error) {
	opts := o.processOptions(options...)
	o.logger.Debug("opening spitter", "op", "spit", "path", path, "append", opts.Append)

	f, err := os.OpenFile(path, writeFlags(opts.Append), opts.FileMode)
	if err != nil {
		return nil, &PathError{Op: "spit", Path: path, Err: ioFailure(err)}
	}

	return &Spitter{
		path:   path,
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Spit writes line followed by a newline.
func (s *Spitter) Spit(line string) error {
	if s.closed {
		return &PathError{Op: "spit", Path: s.path, Err: ErrSpitterClosed}
	}
	if _, err := s.writer.WriteString(line); err != nil {
		return &PathError{Op: "spit", Path: s.path, Err: ioFailure(err)}
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return &PathError{Op: "spit", Path: s.path, Err: ioFailure(err)}
	}
	return nil
}

// Path returns the path the Spitter writes to.
func (s *Spitter) Path() string {
	return s.path
}

// Close flushes buffered lines and closes the file. Closing twice is a no-op.
func (s *Spitter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.writer.Flush()
	closeErr := s.file.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return &PathError{Op: "spit", Path: s.path, Err: ioFailure(err)}
	}
	return nil
}

// WithSpitter opens a Spitter on path, passes it to fn and closes it on
// every exit path. An error from fn takes precedence over a close error.
func (o *IO) WithSpitter(path string, fn func(*Spitter) error, options ...Option) (err error) {
	s, err := o.NewSpitter(path, options...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); err == nil {
			err = closeErr
		}
	}()

	return fn(s)
}
