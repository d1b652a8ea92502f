//go:build darwin

package platform

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// CopyFile tries clonefile first for a copy-on-write copy, then falls back
// to read/write on macOS. clonefile needs a destination path that does not
// exist yet, so it clones to a ".clone" sibling and renames that over the
// open (empty) destination. DstFd then refers to the replaced inode and
// must not be used to read the result.
func CopyFile(params CopyFileParams) (CopyResult, error) {
	dstPath := params.DstFd.Name()
	clonePath := dstPath + ".clone"

	err := unix.Clonefile(params.SrcPath, clonePath, unix.CLONE_NOFOLLOW)
	if err == nil {
		if err := os.Rename(clonePath, dstPath); err == nil {
			return CopyResult{BytesWritten: params.SrcSize, Method: Clonefile}, nil
		}
		_ = os.Remove(clonePath)
	} else if !isFallbackCloneErr(err) {
		return CopyResult{}, err
	}

	reserve(params.DstFd, params.SrcSize)
	return copyReadWrite(params)
}

func isFallbackCloneErr(err error) bool {
	for _, errno := range []error{unix.ENOTSUP, unix.EXDEV, unix.EEXIST} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
