package strategy

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bamsammich/hooksync/internal/platform"
)

type copyStrategy struct {
	opts Options
}

func (*copyStrategy) Method() Method { return Copy }

// Apply writes a byte-for-byte copy of src to a temp file next to dst and
// renames it into place. Permission bits and mtime are carried over on a
// best-effort basis; failing to set them does not fail the copy.
func (s *copyStrategy) Apply(src, dst string) Attempt {
	fsys, dry := s.opts.FS, s.opts.DryRun

	info, err := fsys.Stat(src)
	if err != nil {
		return failed(Copy, dry, err)
	}
	if !info.Mode().IsRegular() {
		return failed(Copy, dry, &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid})
	}
	if err := prepareParent(fsys, dst, dry); err != nil {
		return failed(Copy, dry, err)
	}
	if dry {
		// The only precondition left is that the source is readable.
		f, err := fsys.Open(src)
		if err != nil {
			return failed(Copy, dry, err)
		}
		_ = f.Close()
		s.opts.Logger.Debug("would copy", "source", src, "path", dst)
		return succeeded(Copy, dry)
	}

	tmp := tmpSibling(dst)
	written, err := s.copyToTemp(src, tmp, info)
	if err != nil {
		_ = fsys.Remove(tmp)
		return failed(Copy, dry, err)
	}
	s.preserveMetadata(tmp, info)

	if err := replace(fsys, tmp, dst); err != nil {
		return failed(Copy, dry, err)
	}

	s.opts.Logger.Debug("copied", "source", src, "path", dst, "bytes", written)
	return Attempt{Method: Copy, Status: Succeeded, Bytes: written}
}

func (s *copyStrategy) copyToTemp(src, tmp string, info fs.FileInfo) (int64, error) {
	fd, err := s.opts.FS.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()|0o200)
	if err != nil {
		return 0, fmt.Errorf("create tmp %s: %w", tmp, err)
	}

	result, err := platform.CopyFile(platform.CopyFileParams{
		SrcPath: src,
		DstFd:   fd,
		SrcSize: info.Size(),
	})
	if err != nil {
		fd.Close()
		return result.BytesWritten, fmt.Errorf("copy data %s: %w", src, err)
	}
	if err := fd.Close(); err != nil {
		return result.BytesWritten, fmt.Errorf("close tmp %s: %w", tmp, err)
	}

	s.opts.Logger.Debug("copy method", "source", src, "method", result.Method.String())
	return result.BytesWritten, nil
}

// preserveMetadata runs after the data is written and the descriptor is
// closed, since a clonefile copy replaces the inode behind it.
func (s *copyStrategy) preserveMetadata(tmp string, info fs.FileInfo) {
	if err := s.opts.FS.Chmod(tmp, info.Mode().Perm()); err != nil {
		s.opts.Logger.Debug("preserve mode failed", "path", tmp, "error", err)
	}
	if err := platform.SetModTime(tmp, info.ModTime()); err != nil {
		s.opts.Logger.Debug("preserve mtime failed", "path", tmp, "error", err)
	}
}
