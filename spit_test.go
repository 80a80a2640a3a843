package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestSpit(t *testing.T) {
	dir := t.TempDir()
	fio := newTestIO(t)

	t.Run("creates and overwrites", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")

		require.NoError(t, fio.Spit(path, "first\n"))
		assert.Equal(t, "first\n", readString(t, path))

		require.NoError(t, fio.Spit(path, "second"))
		assert.Equal(t, "second", readString(t, path))
	})

	t.Run("appends", func(t *testing.T) {
		path := filepath.Join(dir, "log.txt")

		require.NoError(t, fio.Spit(path, "a\n", WithAppend(true)))
		require.NoError(t, fio.Spit(path, "b\n", WithAppend(true)))
		assert.Equal(t, "a\nb\n", readString(t, path))
	})

	t.Run("large content written whole", func(t *testing.T) {
		path := filepath.Join(dir, "large.txt")
		content := strings.Repeat("0123456789abcdef\n", 64*1024)

		require.NoError(t, fio.Spit(path, content))
		assert.Equal(t, content, readString(t, path))

		require.NoError(t, fio.Spit(path, "tail\n", WithAppend(true)))
		assert.Equal(t, content+"tail\n", readString(t, path))
	})

	t.Run("empty content truncates", func(t *testing.T) {
		path := writeFile(t, dir, "full.txt", "something")

		require.NoError(t, fio.Spit(path, ""))
		assert.Equal(t, "", readString(t, path))
	})

	t.Run("missing parent", func(t *testing.T) {
		err := fio.Spit(filepath.Join(dir, "no", "such", "dir.txt"), "x")
		require.Error(t, err)
		assert.True(t, IsIO(err))
		assert.NoDirExists(t, filepath.Join(dir, "no"))
	})

	t.Run("file mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not stored on windows")
		}
		path := filepath.Join(dir, "secret.txt")

		require.NoError(t, fio.Spit(path, "x", WithFileMode(0o600)))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("round trip through lines", func(t *testing.T) {
		path := filepath.Join(dir, "round.txt")

		require.NoError(t, fio.Spit(path, "one\ntwo\nthree\n"))
		lines, err := fio.ReadLinesWindow(path, Window{SkipFront: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"two", "three"}, lines)
	})
}

func TestSpitter(t *testing.T) {
	dir := t.TempDir()
	fio := newTestIO(t)

	t.Run("writes lines", func(t *testing.T) {
		path := filepath.Join(dir, "lines.txt")

		s, err := fio.NewSpitter(path)
		require.NoError(t, err)
		assert.Equal(t, path, s.Path())

		require.NoError(t, s.Spit("one"))
		require.NoError(t, s.Spit(""))
		require.NoError(t, s.Spit("three"))
		require.NoError(t, s.Close())

		assert.Equal(t, "one\n\nthree\n", readString(t, path))
	})

	t.Run("closed spitter", func(t *testing.T) {
		s, err := fio.NewSpitter(filepath.Join(dir, "closed.txt"))
		require.NoError(t, err)
		require.NoError(t, s.Close())
		assert.NoError(t, s.Close())

		err = s.Spit("late")
		assert.ErrorIs(t, err, ErrSpitterClosed)
	})

	t.Run("missing parent", func(t *testing.T) {
		_, err := fio.NewSpitter(filepath.Join(dir, "nope", "x.txt"))
		assert.True(t, IsIO(err))
	})
}

func TestWithSpitter(t *testing.T) {
	dir := t.TempDir()
	fio := newTestIO(t)

	t.Run("flushes on success", func(t *testing.T) {
		path := filepath.Join(dir, "ok.txt")

		err := fio.WithSpitter(path, func(s *Spitter) error {
			for _, line := range []string{"a", "b"} {
				if err := s.Spit(line); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", readString(t, path))
	})

	t.Run("closes on callback error", func(t *testing.T) {
		path := filepath.Join(dir, "fail.txt")
		boom := errors.New("boom")

		var kept *Spitter
		err := fio.WithSpitter(path, func(s *Spitter) error {
			kept = s
			_ = s.Spit("partial")
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, kept.Spit("after"), ErrSpitterClosed)
		assert.Equal(t, "partial\n", readString(t, path))
	})

	t.Run("appends", func(t *testing.T) {
		path := writeFile(t, dir, "append.txt", "head\n")

		err := fio.WithSpitter(path, func(s *Spitter) error {
			return s.Spit("tail")
		}, WithAppend(true))
		require.NoError(t, err)
		assert.Equal(t, "head\ntail\n", readString(t, path))
	})
}
