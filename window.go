package fileio

import (
	"bufio"
	"io"
	"iter"
)

// defaultMaxLineSize bounds a single line when a Window is applied to a reader
// directly rather than through an *IO instance.
const defaultMaxLineSize = 1 << 20

// initialLineBuffer is the scanner's starting buffer; it grows up to the
// configured maximum line size.
const initialLineBuffer = 64 * 1024

// Window describes how many leading and trailing lines to drop from a line
// source. The zero Window keeps every line.
type Window struct {
	SkipFront int
	SkipBack  int
}

// Validate rejects negative skip counts.
func (w Window) Validate() error {
	if w.SkipFront < 0 {
		return invalidArgument("skip front cannot be negative: %d", w.SkipFront)
	}
	if w.SkipBack < 0 {
		return invalidArgument("skip back cannot be negative: %d", w.SkipBack)
	}
	return nil
}

// Len returns how many lines the window keeps out of total. Skip counts of
// any size saturate at zero.
func (w Window) Len(total int) int {
	if w.SkipFront >= total || w.SkipBack >= total-w.SkipFront {
		return 0
	}
	return total - w.SkipFront - w.SkipBack
}

// Slice applies the window to lines that have already been counted. The
// result shares the backing array of lines and is never nil.
func (w Window) Slice(lines []string) []string {
	n := w.Len(len(lines))
	if n == 0 {
		return []string{}
	}
	return lines[w.SkipFront : w.SkipFront+n]
}

// Lines streams the windowed lines of r. Line terminators ("\n" and "\r\n")
// are stripped. A read failure is yielded once as the error element and ends
// the sequence. The sequence is single-pass and stops reading r as soon as
// the consumer stops ranging.
func (w Window) Lines(r io.Reader) iter.Seq2[string, error] {
	return scanWindow(r, w, defaultMaxLineSize)
}

// scanWindow reads r once. Lines past SkipFront are held in a ring of at most
// SkipBack entries; a line is released only once SkipBack newer lines have
// been seen, so the trailing SkipBack lines are never yielded.
func scanWindow(r io.Reader, w Window, maxLineSize int) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := w.Validate(); err != nil {
			yield("", err)
			return
		}

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(initialLineBuffer, maxLineSize)), maxLineSize)

		skipped := 0
		var ring []string
		head := 0

		for scanner.Scan() {
			if skipped < w.SkipFront {
				skipped++
				continue
			}

			line := scanner.Text()
			if w.SkipBack == 0 {
				if !yield(line, nil) {
					return
				}
				continue
			}

			// Still filling the ring
			if len(ring) < w.SkipBack {
				ring = append(ring, line)
				continue
			}

			out := ring[head]
			ring[head] = line
			head = (head + 1) % w.SkipBack
			if !yield(out, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", ioFailure(err))
		}
	}
}

// collect drains a line sequence into a slice, stopping at the first error.
func collect(seq iter.Seq2[string, error]) ([]string, error) {
	lines := []string{}
	for line, err := range seq {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
