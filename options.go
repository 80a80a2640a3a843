package fileio

import (
	"io/fs"
)

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for write and copy operations
type Options struct {
	// Append writes to the end of an existing file instead of truncating it
	Append bool

	// FileMode is the mode used when the operation creates a file.
	// Zero means the instance default.
	FileMode fs.FileMode

	// Verify compares source and destination checksums after a copy
	Verify bool

	// VerifyAlgorithm is the checksum algorithm used by Verify
	VerifyAlgorithm ChecksumAlgorithm
}

// WithAppend enables or disables append mode
func WithAppend(appendMode bool) Option {
	return func(o *Options) {
		o.Append = appendMode
	}
}

// WithFileMode sets the mode of files created by the operation
func WithFileMode(mode fs.FileMode) Option {
	return func(o *Options) {
		o.FileMode = mode
	}
}

// WithVerify enables checksum verification of copies
func WithVerify(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Verify = true
		o.VerifyAlgorithm = algorithm
	}
}

// processOptions applies options on top of the instance defaults.
func (o *IO) processOptions(options ...Option) *Options {
	opts := &Options{
		FileMode:        o.fileMode,
		Verify:          o.cfg.VerifyCopies,
		VerifyAlgorithm: ChecksumAlgorithm(o.cfg.CopyChecksum),
	}
	for _, option := range options {
		option(opts)
	}
	if opts.FileMode == 0 {
		opts.FileMode = o.fileMode
	}
	return opts
}
