//go:build linux

package fileio

import (
	"golang.org/x/sys/unix"
)

// ntfsSuperMagic is the statfs type of ntfs and ntfs3 mounts.
const ntfsSuperMagic = 0x5346544e

// posixPermissionsSupported reports whether the file system holding path
// stores POSIX permission bits. FAT, exFAT and NTFS mounts accept chmod but
// do not keep per-subject bits.
func posixPermissionsSupported(path string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		// Unknown mounts are assumed to behave like the rest of the system
		return true
	}

	switch int64(st.Type) {
	case unix.MSDOS_SUPER_MAGIC, unix.EXFAT_SUPER_MAGIC, ntfsSuperMagic:
		return false
	default:
		return true
	}
}
