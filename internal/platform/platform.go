// Package platform wraps the OS-specific pieces of syncing a file:
// accelerated byte copies, filesystem identity and error classification.
package platform

import "os"

// CopyMethod identifies which syscall/strategy was used for a copy.
type CopyMethod int

const (
	ReadWrite     CopyMethod = iota
	CopyFileRange            // Linux copy_file_range(2)
	Sendfile                 // Linux sendfile(2)
	Clonefile                // macOS clonefile(2)
)

func (m CopyMethod) String() string {
	switch m {
	case ReadWrite:
		return "read_write"
	case CopyFileRange:
		return "copy_file_range"
	case Sendfile:
		return "sendfile"
	case Clonefile:
		return "clonefile"
	default:
		return "unknown"
	}
}

// CopyResult reports the outcome of a copy operation.
type CopyResult struct {
	BytesWritten int64
	Method       CopyMethod
}

// CopyFileParams describes a whole-file copy into an already open,
// empty destination.
type CopyFileParams struct {
	DstFd   *os.File
	SrcPath string
	SrcSize int64
}

// FileID is the filesystem identity of a file: two paths with the same
// FileID are hard links to the same data.
type FileID struct {
	Dev uint64
	Ino uint64
}
