//go:build !linux && !darwin

package platform

import (
	"os"
	"time"
)

// SetModTime sets the mtime of path; the zero atime leaves it unchanged.
func SetModTime(path string, modTime time.Time) error {
	return os.Chtimes(path, time.Time{}, modTime)
}
