//go:build !linux

package platform

import "os"

// reserve is a no-op without fallocate(2).
func reserve(*os.File, int64) {}
