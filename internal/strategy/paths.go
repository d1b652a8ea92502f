package strategy

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

const dirPerm = 0o755

// tmpSibling returns a unique hidden name next to dst. Strategies build the
// new entry there and rename it over dst, so dst is never missing.
func tmpSibling(dst string) string {
	dir := filepath.Dir(dst)
	base := filepath.Base(dst)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.hooksync-tmp", base, uuid.New().String()[:8]))
}

// resolveSource returns the absolute, symlink-free path of src.
func resolveSource(src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", src, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", src, err)
	}
	return resolved, nil
}

// existingAncestor returns the closest existing directory at or above dir.
// It fails when that entry exists but is not a directory.
func existingAncestor(fsys FS, dir string) (string, error) {
	for p := dir; ; {
		info, err := fsys.Stat(p)
		switch {
		case err == nil && info.IsDir():
			return p, nil
		case err == nil:
			return "", &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", &fs.PathError{Op: "stat", Path: dir, Err: fs.ErrNotExist}
		}
		p = parent
	}
}

// prepareParent makes sure dst's directory exists, or in dry-run mode that
// it could be created and that the final rename over dst would not hit a
// directory.
func prepareParent(fsys FS, dst string, dryRun bool) error {
	dir := filepath.Dir(dst)
	if dryRun {
		if _, err := existingAncestor(fsys, dir); err != nil {
			return err
		}
		if info, err := fsys.Lstat(dst); err == nil && info.IsDir() {
			return &fs.PathError{Op: "rename", Path: dst, Err: syscall.EISDIR}
		}
		return nil
	}
	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create parent dir %s: %w", dir, err)
	}
	return nil
}

// replace renames tmp over dst and removes tmp if it is still present,
// which happens when both already name the same inode.
func replace(fsys FS, tmp, dst string) error {
	defer func() { _ = fsys.Remove(tmp) }()
	if err := fsys.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmp, dst, err)
	}
	return nil
}
