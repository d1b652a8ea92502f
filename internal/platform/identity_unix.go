//go:build unix

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Identity returns the device and inode of the file at path, following
// symlinks.
func Identity(path string) (FileID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return FileID{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return FileID{Dev: uint64(st.Dev), Ino: st.Ino}, nil //nolint:unconvert,gosec // G115: Dev is int32 on darwin, always non-negative
}

// SameFile reports whether a and b are the same file on disk.
func SameFile(a, b string) (bool, error) {
	ia, err := Identity(a)
	if err != nil {
		return false, err
	}
	ib, err := Identity(b)
	if err != nil {
		return false, err
	}
	return ia == ib, nil
}

// SameDevice reports whether a and b live on the same filesystem, which is
// the precondition for hard linking one to the other.
func SameDevice(a, b string) (bool, error) {
	ia, err := Identity(a)
	if err != nil {
		return false, err
	}
	ib, err := Identity(b)
	if err != nil {
		return false, err
	}
	return ia.Dev == ib.Dev, nil
}
