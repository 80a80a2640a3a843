package fileio

import (
	"context"
	"io"
	"iter"
)

// ============================================================================
// Core Interfaces (Interface Segregation)
// ============================================================================

// LineReader provides windowed, line-oriented reads of local files.
// Use this type in function signatures that only need to read lines.
type LineReader interface {
	// Lines streams every line of the file at path.
	Lines(path string) (iter.Seq2[string, error], error)

	// LinesSkip streams the lines after the first skipFront.
	LinesSkip(path string, skipFront int) (iter.Seq2[string, error], error)

	// LinesWindow streams the lines selected by w.
	LinesWindow(path string, w Window) (iter.Seq2[string, error], error)

	// ReadLines returns every line of the file at path.
	ReadLines(path string) ([]string, error)

	// ReadLinesSkip returns the lines after the first skipFront.
	ReadLinesSkip(path string, skipFront int) ([]string, error)

	// ReadLinesWindow returns the lines selected by w.
	ReadLinesWindow(path string, w Window) ([]string, error)
}

// TreeWalker mutates whole directory trees.
type TreeWalker interface {
	// RecursiveDelete deletes path and everything below it.
	RecursiveDelete(path string) error

	// GrantFullAccess gives every node under path maximal access.
	GrantFullAccess(path string) error

	// GrantOwnerAccess gives the owner of every node under path maximal access.
	GrantOwnerAccess(path string) error

	// RecursiveChmod applies a permission set to every node under path.
	RecursiveChmod(path string, perms PermissionSet) error

	// Chmod applies a permission set to a single path.
	Chmod(path string, perms PermissionSet) error
}

// Slurper reads whole sources into memory. Use for small sources only.
type Slurper interface {
	Slurp(ctx context.Context, source string) (string, error)
	SlurpLines(ctx context.Context, source string, w Window) ([]string, error)
	SlurpFile(path string) (string, error)
	SlurpReader(r io.Reader) (string, error)
	SlurpResource(name string) (string, error)
}

// ContentWriter writes text to local files.
type ContentWriter interface {
	// Spit writes content to path in one go.
	Spit(path, content string, opts ...Option) error

	// NewSpitter opens path for line-by-line writing.
	NewSpitter(path string, opts ...Option) (*Spitter, error)

	// WithSpitter scopes a Spitter to fn.
	WithSpitter(path string, fn func(*Spitter) error, opts ...Option) error
}

// FileManager provides single-entry file management.
type FileManager interface {
	Mkdir(path string) error
	Copy(src, dst string, opts ...Option) error
	Delete(path string) error
	ClearDirectory(path string, patterns ...string) (int, error)
	Exists(path string) bool
	DoesNotExist(path string) bool
	IsDir(path string) bool
	Checksum(path string, algorithm ChecksumAlgorithm) (string, error)
}

// FileIO is the full surface implemented by *IO.
type FileIO interface {
	LineReader
	TreeWalker
	Slurper
	ContentWriter
	FileManager
}

// Ensure IO implements interfaces
var (
	_ FileIO        = (*IO)(nil)
	_ LineReader    = (*IO)(nil)
	_ TreeWalker    = (*IO)(nil)
	_ Slurper       = (*IO)(nil)
	_ ContentWriter = (*IO)(nil)
	_ FileManager   = (*IO)(nil)
)
