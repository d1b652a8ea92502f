package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/hooksync/internal/filter"
)

var (
	// ErrDiscovery matches every *DiscoveryError.
	ErrDiscovery = errors.New("discovery failed")
	// ErrNoFiles is returned when the source tree holds no eligible files.
	ErrNoFiles = errors.New("no hook files found")
)

// DiscoveryError reports a source tree that cannot be enumerated.
type DiscoveryError struct {
	Err  error
	Root string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDiscovery) hold for any *DiscoveryError.
func (e *DiscoveryError) Is(target error) bool { return target == ErrDiscovery }

// Discover enumerates the regular files under root accepted by chain and
// maps each to the same relative path under dstRoot. Directories rejected
// by chain are pruned; symlinks below root are never followed or emitted,
// but root itself may be a symlink to a directory. A nil chain uses the
// default extension filter.
func Discover(root string, chain *filter.Chain, dstRoot string) ([]FileEntry, error) {
	if chain == nil {
		chain = filter.NewChain()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: root, Err: errors.New("not a directory")}
	}
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	var entries []FileEntry
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == walkRoot {
			return nil
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return fmt.Errorf("rel path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.IsDir():
			if !chain.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		case !d.Type().IsRegular():
			return nil
		case !chain.Match(rel, false):
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		entries = append(entries, FileEntry{
			RelPath: rel,
			SrcPath: filepath.Join(root, filepath.FromSlash(rel)),
			DstPath: filepath.Join(dstRoot, filepath.FromSlash(rel)),
			Size:    fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	return entries, nil
}
