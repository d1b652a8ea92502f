//go:build !unix && !windows

package platform

import "errors"

// IsUnsupported reports whether err means the operation is structurally
// impossible here.
func IsUnsupported(err error) bool {
	return errors.Is(err, errors.ErrUnsupported)
}
