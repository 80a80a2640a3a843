// Package fileio provides small, synchronous file utilities for a local file
// system: windowed line reads, whole-content reads ("slurp") and writes
// ("spit"), recursive deletion and recursive permission grants.
//
// FileIO follows interface segregation principles, providing separate
// interfaces for line reads ([LineReader]), tree mutation ([TreeWalker]),
// whole-source reads ([Slurper]), writes ([ContentWriter]) and single-entry
// management ([FileManager]), combined in [FileIO] and implemented by [IO].
//
// # Basic Usage
//
//	fio, err := fileio.New(fileio.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Write a file
//	err = fio.Spit("hello.txt", "one\ntwo\nthree\n")
//
//	// Read every line but the first and the last
//	lines, err := fio.ReadLinesWindow("hello.txt", fileio.Window{SkipFront: 1, SkipBack: 1})
//
//	// Read from a path, a file:// or http(s):// URL, or a resource: name
//	content, err := fio.Slurp(ctx, "https://example.com/robots.txt")
//
// # Line Windows
//
// A [Window] drops SkipFront leading and SkipBack trailing lines. Windows
// larger than the file give an empty result, never an error. The streaming
// forms return an iter.Seq2 that reads the file once, holds at most
// SkipBack lines in memory and stops reading as soon as the caller stops
// ranging:
//
//	seq, err := fio.LinesWindow("big.log", fileio.Window{SkipBack: 10})
//	if err != nil {
//	    return err
//	}
//	for line, err := range seq {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(line)
//	}
//
// # Tree Operations
//
// [IO.RecursiveDelete] removes a tree children first and treats entries that
// are already gone as deleted, so it is safe to repeat. [IO.GrantFullAccess]
// gives every node rwx for every subject, with chmod 0777 on file systems
// that keep POSIX permissions and a portable flag-based grant elsewhere.
//
// # Error Handling
//
// Every failure is a [*PathError] wrapping one of the package sentinels:
//
//	_, err := fio.ReadLines("missing.txt")
//	if fileio.IsNotFound(err) {
//	    // File does not exist or is a directory
//	}
//
//	var pathErr *fileio.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("Operation: %s, Path: %s\n", pathErr.Op, pathErr.Path)
//	}
//
// # Configuration
//
// FileIO can be configured via environment variables with the
// BEAVER_FILEIO_ prefix, or programmatically via the [Config] struct:
//
//	cfg := fileio.DefaultConfig()
//	cfg.PermissionStrategy = fileio.StrategyPortable
//	fio, err := fileio.New(cfg)
package fileio
