//go:build darwin

package platform

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// SetModTime sets the mtime of path. Darwin lacks UTIME_OMIT, so atime is
// set to the same value.
func SetModTime(path string, modTime time.Time) error {
	ts := unix.NsecToTimespec(modTime.UnixNano())
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{ts, ts}, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return fmt.Errorf("utimensat %s: %w", path, err)
	}
	return nil
}
