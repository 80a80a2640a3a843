package fileio

import "strings"

// Slashify returns path with a trailing "/" added if missing.
func Slashify(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

// UncSlashify returns path with a trailing "\" added if missing.
func UncSlashify(path string) string {
	if strings.HasSuffix(path, `\`) {
		return path
	}
	return path + `\`
}

// PathToUNC converts a slash-separated path such as "/server/share/dir" to
// the UNC form "\\server\share\dir".
func PathToUNC(path string) string {
	return `\\` + strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", `\`)
}
