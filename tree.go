package fileio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
)

// RecursiveDelete deletes path. A directory's children are deleted first,
// depth first, then the emptied directory itself.
//
// Entries that are already gone, including ones removed by someone else
// while the walk is running, count as deleted, so calling RecursiveDelete
// on a missing path succeeds. The first node that still exists but cannot
// be removed stops the walk with an ErrIO error; nodes deleted before that
// stay deleted.
func (o *IO) RecursiveDelete(path string) error {
	o.logger.Debug("deleting tree", "op", "delete", "path", path)
	return o.deleteNode(path)
}

func (o *IO) deleteNode(path string) error {
	info, err := o.ops.lstat(path)
	if err != nil {
		if isGone(err) {
			return nil
		}
		return mapError("delete", path, err)
	}

	// Symlinks are removed as links, never followed
	if info.IsDir() {
		entries, err := o.ops.readDir(path)
		if err != nil && !isGone(err) {
			return mapError("delete", path, err)
		}
		for _, entry := range entries {
			if err := o.deleteNode(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	}

	if err := o.ops.remove(path); err != nil && !isGone(err) {
		return &PathError{Op: "delete", Path: path, Err: ioFailure(err)}
	}
	return nil
}

// isGone reports whether err means the node no longer exists. ENOTDIR
// shows up when a path component has been replaced by a regular file.
func isGone(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// GrantFullAccess gives every node under path, path included, read, write
// and execute access for every subject.
//
// When the file system stores POSIX permissions each node is set to 0777.
// Otherwise a portable grant raises the readable, writable and executable
// flags without distinguishing subjects. The choice is made once per call,
// following Config.PermissionStrategy. Directories are granted before their
// children are listed. A symbolic link given as path is resolved; links
// found below it are not followed.
func (o *IO) GrantFullAccess(path string) error {
	strategy, grant := o.selectGrant(path)
	o.logger.Debug("granting full access", "op", "grant", "path", path, "strategy", strategy)
	return o.walkGrant("grant", path, grant)
}

// GrantOwnerAccess raises read, write and execute for the owner on every
// node under path, leaving group and others bits as they are. It needs no
// POSIX support: the flags are added on top of the current mode.
func (o *IO) GrantOwnerAccess(path string) error {
	o.logger.Debug("granting owner access", "op", "grant", "path", path)
	return o.walkGrant("grant", path, o.addGrant(OwnerRead|OwnerWrite|OwnerExecute))
}

// RecursiveChmod sets perms on every node under path, path included, in the
// same order as GrantFullAccess. Like Chmod it fails with ErrNotSupported on
// file systems without POSIX permissions. Directories stripped of owner
// read or execute cannot be descended into afterwards.
func (o *IO) RecursiveChmod(path string, perms PermissionSet) error {
	if !perms.Valid() {
		return &PathError{Op: "chmod", Path: path, Err: invalidArgument("malformed permission set %#o", uint16(perms))}
	}
	if err := o.requirePosix("chmod", path); err != nil {
		return err
	}

	o.logger.Debug("changing permissions recursively", "op", "chmod", "path", path, "perms", perms.String())
	return o.walkGrant("chmod", path, o.setGrant(perms))
}

// walkGrant resolves root through symbolic links and applies grant to it and
// to every node below it.
func (o *IO) walkGrant(op, root string, grant grantFunc) error {
	info, err := o.ops.stat(root)
	if err != nil {
		return mapError(op, root, err)
	}
	return o.grantNode(op, root, info, grant)
}

func (o *IO) grantNode(op, path string, info fs.FileInfo, grant grantFunc) error {
	if err := grant(path, info); err != nil {
		return mapError(op, path, err)
	}

	if !info.IsDir() {
		return nil
	}

	entries, err := o.ops.readDir(path)
	if err != nil {
		return mapError(op, path, err)
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		childInfo, err := o.ops.lstat(child)
		if err != nil {
			return mapError(op, child, err)
		}
		if childInfo.Mode()&fs.ModeSymlink != 0 {
			continue
		}
		if err := o.grantNode(op, child, childInfo, grant); err != nil {
			return err
		}
	}
	return nil
}

// Chmod applies perms to path alone. It fails with ErrNotSupported when the
// file system holding path does not store POSIX permissions, unless
// Config.PermissionStrategy forces the posix strategy.
func (o *IO) Chmod(path string, perms PermissionSet) error {
	if !perms.Valid() {
		return &PathError{Op: "chmod", Path: path, Err: invalidArgument("malformed permission set %#o", uint16(perms))}
	}

	if _, err := o.ops.lstat(path); err != nil {
		return mapError("chmod", path, err)
	}

	if err := o.requirePosix("chmod", path); err != nil {
		return err
	}

	o.logger.Debug("changing permissions", "op", "chmod", "path", path, "perms", perms.String())
	if err := o.ops.chmod(path, perms.Mode()); err != nil {
		return mapError("chmod", path, err)
	}
	return nil
}
