//go:build windows

package fileio

// posixPermissionsSupported reports whether the file system holding path
// stores POSIX permission bits. Windows only exposes a read-only attribute.
func posixPermissionsSupported(path string) bool {
	return false
}
