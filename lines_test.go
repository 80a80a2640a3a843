package fileio

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIO builds an IO from the default config with optional tweaks and a
// logger that discards output.
func newTestIO(t *testing.T, tweaks ...func(*Config)) *IO {
	t.Helper()

	cfg := DefaultConfig()
	for _, tweak := range tweaks {
		tweak(cfg)
	}

	fio, err := New(cfg)
	require.NoError(t, err)
	return fio.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	five := writeFile(t, dir, "five.txt", "one\ntwo\nthree\nfour\nfive\n")
	empty := writeFile(t, dir, "empty.txt", "")
	fio := newTestIO(t)

	tests := []struct {
		name   string
		path   string
		window Window
		want   []string
	}{
		{name: "five 0 0", path: five, window: Window{}, want: []string{"one", "two", "three", "four", "five"}},
		{name: "five 1 0", path: five, window: Window{SkipFront: 1}, want: []string{"two", "three", "four", "five"}},
		{name: "five 2 0", path: five, window: Window{SkipFront: 2}, want: []string{"three", "four", "five"}},
		{name: "five 3 0", path: five, window: Window{SkipFront: 3}, want: []string{"four", "five"}},
		{name: "five 4 0", path: five, window: Window{SkipFront: 4}, want: []string{"five"}},
		{name: "five 5 0", path: five, window: Window{SkipFront: 5}, want: []string{}},
		{name: "five 6 0", path: five, window: Window{SkipFront: 6}, want: []string{}},
		{name: "five 0 1", path: five, window: Window{SkipBack: 1}, want: []string{"one", "two", "three", "four"}},
		{name: "five 0 2", path: five, window: Window{SkipBack: 2}, want: []string{"one", "two", "three"}},
		{name: "five 0 3", path: five, window: Window{SkipBack: 3}, want: []string{"one", "two"}},
		{name: "five 0 4", path: five, window: Window{SkipBack: 4}, want: []string{"one"}},
		{name: "five 0 5", path: five, window: Window{SkipBack: 5}, want: []string{}},
		{name: "five 0 6", path: five, window: Window{SkipBack: 6}, want: []string{}},
		{name: "five 1 1", path: five, window: Window{SkipFront: 1, SkipBack: 1}, want: []string{"two", "three", "four"}},
		{name: "empty 0 0", path: empty, window: Window{}, want: []string{}},
		{name: "empty 2 3", path: empty, window: Window{SkipFront: 2, SkipBack: 3}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fio.ReadLinesWindow(tt.path, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			seq, err := fio.LinesWindow(tt.path, tt.window)
			require.NoError(t, err)
			streamed, err := collect(seq)
			require.NoError(t, err)
			assert.Equal(t, got, streamed, "streaming and materialized forms differ")
		})
	}
}

func TestReadLinesArities(t *testing.T) {
	dir := t.TempDir()
	five := writeFile(t, dir, "five.txt", "one\ntwo\nthree\nfour\nfive\n")
	fio := newTestIO(t)

	all, err := fio.ReadLines(five)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, all)

	skipped, err := fio.ReadLinesSkip(five, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four", "five"}, skipped)

	seq, err := fio.Lines(five)
	require.NoError(t, err)
	streamed, err := collect(seq)
	require.NoError(t, err)
	assert.Equal(t, all, streamed)

	seq, err = fio.LinesSkip(five, 2)
	require.NoError(t, err)
	streamed, err = collect(seq)
	require.NoError(t, err)
	assert.Equal(t, skipped, streamed)
}

func TestLinesErrors(t *testing.T) {
	dir := t.TempDir()
	five := writeFile(t, dir, "five.txt", "one\ntwo\nthree\nfour\nfive\n")
	fio := newTestIO(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := fio.Lines(filepath.Join(dir, "nope.txt"))
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.True(t, IsNotExist(err))

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "lines", pathErr.Op)
		assert.Equal(t, filepath.Join(dir, "nope.txt"), pathErr.Path)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := fio.ReadLines(dir)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.ErrorIs(t, err, ErrIsDir)
	})

	t.Run("negative skip front", func(t *testing.T) {
		_, err := fio.LinesSkip(five, -1)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("negative skip back", func(t *testing.T) {
		_, err := fio.ReadLinesWindow(five, Window{SkipBack: -1})
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("file removed before iteration", func(t *testing.T) {
		path := writeFile(t, dir, "gone.txt", "a\nb\n")
		seq, err := fio.Lines(path)
		require.NoError(t, err)
		require.NoError(t, os.Remove(path))

		_, err = collect(seq)
		assert.True(t, IsNotExist(err))
	})

	t.Run("line longer than limit", func(t *testing.T) {
		small := newTestIO(t, func(c *Config) { c.MaxLineSize = 8 })
		path := writeFile(t, dir, "long.txt", "short\nthis line is far too long\n")

		var got []string
		var gotErr error
		seq, err := small.Lines(path)
		require.NoError(t, err)
		for line, err := range seq {
			if err != nil {
				gotErr = err
				break
			}
			got = append(got, line)
		}

		assert.Equal(t, []string{"short"}, got)
		assert.True(t, IsIO(gotErr))
	})
}

func TestLinesEarlyBreakReleasesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "many.txt", "a\nb\nc\nd\ne\n")
	fio := newTestIO(t)

	seq, err := fio.LinesWindow(path, Window{SkipBack: 1})
	require.NoError(t, err)

	var got []string
	for line, err := range seq {
		require.NoError(t, err)
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)

	if runtime.GOOS == "windows" {
		// An open handle would make the removal fail
		assert.NoError(t, os.Remove(path))
	}
}

func TestLinesSequenceIsReusable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "three.txt", "x\ny\nz\n")
	fio := newTestIO(t)

	seq, err := fio.LinesSkip(path, 1)
	require.NoError(t, err)

	first, err := collect(seq)
	require.NoError(t, err)
	second, err := collect(seq)
	require.NoError(t, err)

	assert.Equal(t, []string{"y", "z"}, first)
	assert.Equal(t, first, second)
}
