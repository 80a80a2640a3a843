package fileio

import (
	"io/fs"
	"strings"
)

// PermissionSet is a set of (subject, capability) pairs laid out exactly like
// the nine POSIX permission bits, so a set converts to a mode without mapping.
type PermissionSet uint16

// Individual permissions
const (
	OthersExecute PermissionSet = 1 << iota
	OthersWrite
	OthersRead
	GroupExecute
	GroupWrite
	GroupRead
	OwnerExecute
	OwnerWrite
	OwnerRead
)

// allPermissions is every valid bit of a PermissionSet.
const allPermissions PermissionSet = 0o777

// Subject is the class of user a permission applies to.
type Subject int

const (
	Owner Subject = iota
	Group
	Others
)

// Capability is what a subject is allowed to do.
type Capability int

const (
	Read Capability = iota
	Write
	Execute
)

// Permission returns the single-element set for subject and capability.
func Permission(s Subject, c Capability) PermissionSet {
	// owner bits sit highest, read highest within each triple
	shift := (2-int(s))*3 + (2 - int(c))
	return PermissionSet(1) << shift
}

// FullAccess returns read, write and execute for owner, group and others.
func FullAccess() PermissionSet {
	return allPermissions
}

// PermissionsFromMode extracts the permission bits of mode.
func PermissionsFromMode(mode fs.FileMode) PermissionSet {
	return PermissionSet(mode.Perm())
}

// ParsePermissions parses the nine-character symbolic form, e.g. "rwxr-x---".
func ParsePermissions(s string) (PermissionSet, error) {
	if len(s) != 9 {
		return 0, invalidArgument("permission string must have 9 characters: %q", s)
	}

	var p PermissionSet
	for i := 0; i < 9; i++ {
		want := "rwx"[i%3]
		switch s[i] {
		case want:
			p |= 1 << (8 - i)
		case '-':
		default:
			return 0, invalidArgument("invalid permission string %q at position %d", s, i)
		}
	}
	return p, nil
}

// Has reports whether every permission in q is in p.
func (p PermissionSet) Has(q PermissionSet) bool {
	return p&q == q
}

// Valid reports whether p only uses the nine permission bits.
func (p PermissionSet) Valid() bool {
	return p&^allPermissions == 0
}

// Mode converts p to a file mode.
func (p PermissionSet) Mode() fs.FileMode {
	return fs.FileMode(p & allPermissions)
}

// String renders p in the nine-character symbolic form.
func (p PermissionSet) String() string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		if p&(1<<(8-i)) != 0 {
			b.WriteByte("rwx"[i%3])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
