//go:build !linux && !darwin

package platform

// CopyFile falls back to read/write on other platforms.
func CopyFile(params CopyFileParams) (CopyResult, error) {
	reserve(params.DstFd, params.SrcSize)
	return copyReadWrite(params)
}
