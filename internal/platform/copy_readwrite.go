package platform

import (
	"io"
	"os"
	"sync"
)

const bufferSize = 1 << 20 // 1 MiB

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, bufferSize)
		return &b
	},
}

// copyReadWrite copies the source into params.DstFd with a pooled buffer.
// The destination offset is wherever the descriptor currently points.
func copyReadWrite(params CopyFileParams) (CopyResult, error) {
	srcFd, err := os.Open(params.SrcPath)
	if err != nil {
		return CopyResult{}, err
	}
	defer srcFd.Close()

	bufp := bufPool.Get().(*[]byte) //nolint:forcetypeassert // pool only holds *[]byte
	defer bufPool.Put(bufp)

	// Wrap both sides so io.CopyBuffer cannot take a ReaderFrom/WriterTo
	// shortcut and silently switch methods.
	n, err := io.CopyBuffer(
		struct{ io.Writer }{params.DstFd},
		struct{ io.Reader }{srcFd},
		*bufp,
	)
	return CopyResult{BytesWritten: n, Method: ReadWrite}, err
}

// CopyReadWrite is the exported version for use by other packages during testing.
func CopyReadWrite(params CopyFileParams) (CopyResult, error) {
	return copyReadWrite(params)
}
