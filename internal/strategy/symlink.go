package strategy

import "fmt"

type symlinkStrategy struct {
	opts Options
}

func (*symlinkStrategy) Method() Method { return Symlink }

// Apply points dst at the resolved absolute path of src. Any existing
// entry at dst, stale symlink included, is replaced.
func (s *symlinkStrategy) Apply(src, dst string) Attempt {
	fsys, dry := s.opts.FS, s.opts.DryRun

	target, err := resolveSource(src)
	if err != nil {
		return failed(Symlink, dry, err)
	}
	if err := prepareParent(fsys, dst, dry); err != nil {
		return failed(Symlink, dry, err)
	}
	if dry {
		s.opts.Logger.Debug("would create symlink", "path", dst, "target", target)
		return succeeded(Symlink, dry)
	}

	tmp := tmpSibling(dst)
	if err := fsys.Symlink(target, tmp); err != nil {
		return classify(Symlink, dry, fmt.Errorf("symlink %s -> %s: %w", dst, target, err))
	}
	if err := replace(fsys, tmp, dst); err != nil {
		return failed(Symlink, dry, err)
	}

	s.opts.Logger.Debug("created symlink", "path", dst, "target", target)
	return succeeded(Symlink, dry)
}
