//go:build !unix

package platform

import (
	"fmt"
	"os"
)

// SameFile reports whether a and b are the same file on disk. On Windows
// os.SameFile compares volume serial number and file index.
func SameFile(a, b string) (bool, error) {
	fa, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", a, err)
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", b, err)
	}
	return os.SameFile(fa, fb), nil
}

// SameDevice cannot be answered without linking here; it reports true
// and leaves the verdict to the link call.
func SameDevice(a, b string) (bool, error) {
	if _, err := os.Stat(a); err != nil {
		return false, fmt.Errorf("stat %s: %w", a, err)
	}
	if _, err := os.Stat(b); err != nil {
		return false, fmt.Errorf("stat %s: %w", b, err)
	}
	return true, nil
}
