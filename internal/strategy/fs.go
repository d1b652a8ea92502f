package strategy

import (
	"io/fs"
	"os"

	"github.com/bamsammich/hooksync/internal/platform"
)

// FS is the set of filesystem mutations and lookups the strategies use.
// OSFS is the real implementation; tests substitute failures.
type FS interface {
	Lstat(name string) (fs.FileInfo, error)
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error)
	Chmod(name string, mode fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Symlink(oldname, newname string) error
	Link(oldname, newname string) error
	SameDevice(a, b string) (bool, error)
}

// OSFS implements FS on the host filesystem.
type OSFS struct{}

func (OSFS) Lstat(name string) (fs.FileInfo, error)       { return os.Lstat(name) }
func (OSFS) Stat(name string) (fs.FileInfo, error)        { return os.Stat(name) }
func (OSFS) Open(name string) (*os.File, error)           { return os.Open(name) }
func (OSFS) Chmod(name string, mode fs.FileMode) error    { return os.Chmod(name, mode) }
func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }
func (OSFS) Remove(name string) error                     { return os.Remove(name) }
func (OSFS) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }
func (OSFS) Symlink(oldname, newname string) error        { return os.Symlink(oldname, newname) }
func (OSFS) Link(oldname, newname string) error           { return os.Link(oldname, newname) }
func (OSFS) SameDevice(a, b string) (bool, error)         { return platform.SameDevice(a, b) }

func (OSFS) OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}
