package strategy

import (
	"fmt"
	"path/filepath"
	"syscall"
)

type hardlinkStrategy struct {
	opts Options
}

func (*hardlinkStrategy) Method() Method { return Hardlink }

// Apply makes dst another name for src's inode. A target directory on a
// different device is detected before anything at dst is touched.
func (s *hardlinkStrategy) Apply(src, dst string) Attempt {
	fsys, dry := s.opts.FS, s.opts.DryRun

	if _, err := fsys.Stat(src); err != nil {
		return failed(Hardlink, dry, err)
	}

	anchor, err := existingAncestor(fsys, filepath.Dir(dst))
	if err != nil {
		return failed(Hardlink, dry, err)
	}
	same, err := fsys.SameDevice(src, anchor)
	if err != nil {
		return failed(Hardlink, dry, err)
	}
	if !same {
		return Attempt{
			Method: Hardlink,
			Status: Unsupported,
			Err:    fmt.Errorf("link %s -> %s: %w", dst, src, syscall.EXDEV),
			DryRun: dry,
		}
	}

	if err := prepareParent(fsys, dst, dry); err != nil {
		return failed(Hardlink, dry, err)
	}
	if dry {
		s.opts.Logger.Debug("would create hard link", "path", dst, "source", src)
		return succeeded(Hardlink, dry)
	}

	tmp := tmpSibling(dst)
	if err := fsys.Link(src, tmp); err != nil {
		return classify(Hardlink, dry, fmt.Errorf("link %s -> %s: %w", dst, src, err))
	}
	if err := replace(fsys, tmp, dst); err != nil {
		return failed(Hardlink, dry, err)
	}

	s.opts.Logger.Debug("created hard link", "path", dst, "source", src)
	return succeeded(Hardlink, dry)
}
