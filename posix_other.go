//go:build !unix && !windows

package fileio

func posixPermissionsSupported(path string) bool {
	return false
}
