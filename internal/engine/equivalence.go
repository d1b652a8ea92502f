package engine

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bamsammich/hooksync/internal/platform"
)

// Verdict is the result of an equivalence check.
type Verdict int

const (
	NotEquivalent Verdict = iota
	SameSymlink           // target is a symlink resolving to the source
	SameIdentity          // target is the source inode (hard link)
	SameContent           // target is a separate file with identical bytes
)

func (v Verdict) String() string {
	switch v {
	case NotEquivalent:
		return "not equivalent"
	case SameSymlink:
		return "symlinked"
	case SameIdentity:
		return "hard linked"
	case SameContent:
		return "same content"
	default:
		return "unknown"
	}
}

// Equivalent reports whether the verdict allows skipping the file.
func (v Verdict) Equivalent() bool { return v != NotEquivalent }

// Checker decides whether a target already mirrors its source.
type Checker struct {
	// Hash returns a file's content digest. Defaults to HashFile with Digest.
	Hash   func(path string) (string, error)
	Digest Digest
}

// Equivalent checks, in order: target existence, symlink resolution,
// filesystem identity, then content. Any lookup failure yields
// NotEquivalent so the file is re-synced.
func (c *Checker) Equivalent(src, dst string) Verdict {
	dstInfo, err := os.Lstat(dst)
	if err != nil {
		return NotEquivalent
	}

	if dstInfo.Mode()&fs.ModeSymlink != 0 {
		if sameResolved(src, dst) {
			return SameSymlink
		}
		return NotEquivalent
	}
	if !dstInfo.Mode().IsRegular() {
		return NotEquivalent
	}

	if same, err := platform.SameFile(src, dst); err != nil {
		return NotEquivalent
	} else if same {
		return SameIdentity
	}

	srcInfo, err := os.Stat(src)
	if err != nil || srcInfo.Size() != dstInfo.Size() {
		return NotEquivalent
	}

	hashFn := c.Hash
	if hashFn == nil {
		hashFn = func(path string) (string, error) { return HashFile(path, c.Digest) }
	}
	srcSum, err := hashFn(src)
	if err != nil {
		return NotEquivalent
	}
	dstSum, err := hashFn(dst)
	if err != nil || srcSum != dstSum {
		return NotEquivalent
	}
	return SameContent
}

// sameResolved reports whether both paths resolve to the same absolute,
// symlink-free path. A dangling link fails to resolve.
func sameResolved(src, dst string) bool {
	a, err := resolve(src)
	if err != nil {
		return false
	}
	b, err := resolve(dst)
	if err != nil {
		return false
	}
	return a == b
}

func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
