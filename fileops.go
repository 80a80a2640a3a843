package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Mkdir creates a single directory with the configured directory mode.
// Parents are not created and an existing entry is a failure.
func (o *IO) Mkdir(path string) error {
	o.logger.Debug("creating directory", "op", "mkdir", "path", path)

	if err := os.Mkdir(path, o.dirMode); err != nil {
		return &PathError{Op: "mkdir", Path: path, Err: ioFailure(err)}
	}
	return nil
}

// Copy copies the regular file src to dst, replacing dst if it exists. With
// WithVerify (or Config.VerifyCopies) the checksums of both files are
// compared once the copy is on disk.
func (o *IO) Copy(src, dst string, options ...Option) error {
	opts := o.processOptions(options...)
	o.logger.Debug("copying", "op", "copy", "path", src, "dest", dst, "verify", opts.Verify)

	if opts.Verify {
		if _, err := NewHasher(opts.VerifyAlgorithm); err != nil {
			return &PathError{Op: "copy", Path: src, Err: err}
		}
	}

	if err := o.copyFile(src, dst, opts.FileMode); err != nil {
		return err
	}

	if !opts.Verify {
		return nil
	}

	want, err := o.Checksum(src, opts.VerifyAlgorithm)
	if err != nil {
		return err
	}
	ok, err := o.VerifyChecksum(dst, want, opts.VerifyAlgorithm)
	if err != nil {
		return err
	}
	if !ok {
		return &PathError{Op: "copy", Path: dst, Err: ioFailure(fmt.Errorf("%s checksum does not match %s", opts.VerifyAlgorithm, src))}
	}
	return nil
}

func (o *IO) copyFile(src, dst string, mode fs.FileMode) error {
	if err := o.checkFile("copy", src); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return mapError("copy", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return &PathError{Op: "copy", Path: dst, Err: ioFailure(err)}
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &PathError{Op: "copy", Path: dst, Err: ioFailure(err)}
	}
	if err := out.Close(); err != nil {
		return &PathError{Op: "copy", Path: dst, Err: ioFailure(err)}
	}
	return nil
}

// Delete removes a single file or empty directory. Unlike RecursiveDelete it
// fails when path is missing.
func (o *IO) Delete(path string) error {
	o.logger.Debug("deleting", "op", "delete", "path", path)

	if err := os.Remove(path); err != nil {
		return mapError("delete", path, err)
	}
	return nil
}

// ClearDirectory removes the regular files directly inside the directory at
// path and returns how many were removed. Subdirectories and their contents
// are left alone. When patterns are given only files whose base name matches
// at least one glob pattern are removed.
func (o *IO) ClearDirectory(path string, patterns ...string) (int, error) {
	o.logger.Debug("clearing directory", "op", "clear", "path", path, "patterns", patterns)

	info, err := os.Stat(path)
	if err != nil {
		return 0, mapError("clear", path, err)
	}
	if !info.IsDir() {
		return 0, &PathError{Op: "clear", Path: path, Err: fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNotDir)}
	}

	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return 0, &PathError{Op: "clear", Path: path, Err: invalidArgument("bad pattern %q: %v", pattern, err)}
		}
		matchers = append(matchers, g)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, mapError("clear", path, err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !matchesAny(matchers, entry.Name()) {
			continue
		}

		child := filepath.Join(path, entry.Name())
		if err := os.Remove(child); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return removed, &PathError{Op: "clear", Path: child, Err: ioFailure(err)}
		}
		removed++
	}
	return removed, nil
}

// matchesAny reports whether name matches one of matchers. No matchers
// matches everything.
func matchesAny(matchers []glob.Glob, name string) bool {
	if len(matchers) == 0 {
		return true
	}
	for _, m := range matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Exists reports whether path names an existing entry. Broken symbolic
// links do not exist.
func (o *IO) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DoesNotExist is the negation of Exists.
func (o *IO) DoesNotExist(path string) bool {
	return !o.Exists(path)
}

// IsDir reports whether path names an existing directory.
func (o *IO) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
