//go:build windows

package platform

import (
	"errors"

	"golang.org/x/sys/windows"
)

var unsupportedErrnos = []error{
	windows.ERROR_PRIVILEGE_NOT_HELD, // symlinks without developer mode
	windows.ERROR_NOT_SAME_DEVICE,
	windows.ERROR_INVALID_FUNCTION, // filesystem without link support
	windows.ERROR_NOT_SUPPORTED,
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
