package fileio

import (
	"io/fs"
)

// Permission strategy names accepted by Config.PermissionStrategy.
const (
	StrategyAuto     = "auto"
	StrategyPosix    = "posix"
	StrategyPortable = "portable"
)

// grantFunc grants maximal access to one node.
type grantFunc func(path string, info fs.FileInfo) error

// selectGrant picks the access strategy for a whole GrantFullAccess call.
// The probe runs once, against the root of the walk.
func (o *IO) selectGrant(root string) (string, grantFunc) {
	strategy := o.cfg.PermissionStrategy
	if strategy == StrategyAuto || strategy == "" {
		strategy = StrategyPortable
		if o.ops.posixSupported(root) {
			strategy = StrategyPosix
		}
	}

	if strategy == StrategyPosix {
		return strategy, o.setGrant(FullAccess())
	}
	return strategy, o.addGrant(FullAccess())
}

// setGrant replaces the permission bits of each node with perms.
func (o *IO) setGrant(perms PermissionSet) grantFunc {
	mode := perms.Mode()
	return func(path string, _ fs.FileInfo) error {
		return o.ops.chmod(path, mode)
	}
}

// addGrant raises the bits in perms on top of whatever each node already
// has. On platforms without POSIX permissions the OS honours only the flags
// it understands.
func (o *IO) addGrant(perms PermissionSet) grantFunc {
	return func(path string, info fs.FileInfo) error {
		return o.ops.chmod(path, info.Mode().Perm()|perms.Mode())
	}
}

// requirePosix fails with ErrNotSupported when the file system holding path
// does not keep POSIX permission bits, unless the posix strategy is forced.
func (o *IO) requirePosix(op, path string) error {
	if o.cfg.PermissionStrategy != StrategyPosix && !o.ops.posixSupported(path) {
		return &PathError{Op: op, Path: path, Err: ErrNotSupported}
	}
	return nil
}
