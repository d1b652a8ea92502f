//go:build linux

package platform

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// SetModTime sets the mtime of path, leaving atime untouched.
func SetModTime(path string, modTime time.Time) error {
	times := []unix.Timespec{
		{Nsec: unix.UTIME_OMIT},
		unix.NsecToTimespec(modTime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return fmt.Errorf("utimensat %s: %w", path, err)
	}
	return nil
}
