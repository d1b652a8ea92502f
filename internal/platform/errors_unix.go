//go:build unix

package platform

import (
	"errors"

	"golang.org/x/sys/unix"
)

var unsupportedErrnos = []error{
	unix.EXDEV,      // hard link across devices
	unix.ENOTSUP,    // filesystem lacks the link type
	unix.EOPNOTSUPP, // same, on platforms where it differs from ENOTSUP
	unix.ENOSYS,
	unix.EPERM, // e.g. vfat refusing symlink(2)/link(2)
	unix.EMLINK,
}

// IsUnsupported reports whether err means the operation is structurally
// impossible here (unsupported link type, cross-device link) as opposed
// to an I/O failure.
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrUnsupported) {
		return true
	}
	for _, errno := range unsupportedErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
