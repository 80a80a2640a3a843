package fileio

import (
	"iter"
	"os"
)

// Lines returns a lazy sequence of every line in the file at path, in file
// order, with line terminators stripped.
//
// The path is resolved eagerly: a missing path or a directory fails here.
// The file itself is opened when ranging starts and closed when ranging
// ends, including when the consumer breaks out early. A read failure is
// delivered as the error element of the sequence.
func (o *IO) Lines(path string) (iter.Seq2[string, error], error) {
	return o.LinesWindow(path, Window{})
}

// LinesSkip is Lines with the first skipFront lines discarded.
func (o *IO) LinesSkip(path string, skipFront int) (iter.Seq2[string, error], error) {
	return o.LinesWindow(path, Window{SkipFront: skipFront})
}

// LinesWindow is Lines with w.SkipFront leading and w.SkipBack trailing lines
// discarded. The file is read once; at most w.SkipBack lines are buffered.
func (o *IO) LinesWindow(path string, w Window) (iter.Seq2[string, error], error) {
	if err := w.Validate(); err != nil {
		return nil, &PathError{Op: "lines", Path: path, Err: err}
	}
	if err := o.checkFile("lines", path); err != nil {
		return nil, err
	}

	o.logger.Debug("streaming lines", "op", "lines", "path", path,
		"skip_front", w.SkipFront, "skip_back", w.SkipBack)

	return func(yield func(string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield("", mapError("lines", path, err))
			return
		}
		defer f.Close()

		for line, err := range scanWindow(f, w, o.maxLineSize) {
			if err != nil {
				yield("", mapError("lines", path, err))
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}, nil
}

// ReadLines returns every line of the file at path.
func (o *IO) ReadLines(path string) ([]string, error) {
	return o.ReadLinesWindow(path, Window{})
}

// ReadLinesSkip returns the lines of the file at path after the first skipFront.
func (o *IO) ReadLinesSkip(path string, skipFront int) ([]string, error) {
	return o.ReadLinesWindow(path, Window{SkipFront: skipFront})
}

// ReadLinesWindow returns the lines of the file at path selected by w. The
// result is never nil on success.
func (o *IO) ReadLinesWindow(path string, w Window) ([]string, error) {
	seq, err := o.LinesWindow(path, w)
	if err != nil {
		return nil, err
	}
	return collect(seq)
}

// checkFile verifies that path names something readable as a file.
func (o *IO) checkFile(op, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return mapError(op, path, err)
	}
	if info.IsDir() {
		return &PathError{Op: op, Path: path, Err: ErrIsDir}
	}
	return nil
}
