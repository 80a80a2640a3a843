package fileio

import (
	"io/fs"
	"os"
)

// osOps holds the file system primitives used by the tree walker. The
// function fields let tests simulate entries vanishing or refusing to change
// mid-walk.
type osOps struct {
	stat           func(name string) (fs.FileInfo, error)
	lstat          func(name string) (fs.FileInfo, error)
	readDir        func(name string) ([]fs.DirEntry, error)
	remove         func(name string) error
	chmod          func(name string, mode fs.FileMode) error
	posixSupported func(path string) bool
}

// newOSOps creates osOps backed by real OS syscalls.
func newOSOps() osOps {
	return osOps{
		stat:           os.Stat,
		lstat:          os.Lstat,
		readDir:        os.ReadDir,
		remove:         os.Remove,
		chmod:          os.Chmod,
		posixSupported: posixPermissionsSupported,
	}
}
