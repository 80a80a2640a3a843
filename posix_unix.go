//go:build unix && !linux

package fileio

// posixPermissionsSupported reports whether the file system holding path
// stores POSIX permission bits.
func posixPermissionsSupported(path string) bool {
	return true
}
