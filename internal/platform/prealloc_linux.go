//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// reserveMin is the smallest copy worth a fallocate call. Most hook
// scripts are far below it.
const reserveMin = 64 << 10

// reserve asks the filesystem for size bytes up front without changing the
// apparent file size, so an aborted copy never looks complete. It is
// advisory: unsupported filesystems just skip it.
func reserve(fd *os.File, size int64) {
	if size < reserveMin {
		return
	}
	//nolint:gosec,errcheck // G115: fd fits in int; fallocate is advisory
	unix.Fallocate(int(fd.Fd()), unix.FALLOC_FL_KEEP_SIZE, 0, size)
}
