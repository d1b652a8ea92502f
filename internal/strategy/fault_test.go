package strategy

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// faultFS is the real filesystem with selected operations forced to fail.
type faultFS struct {
	OSFS
	symlinkErr error
	linkErr    error
	openErr    error // source opens
	createErr  error // temp file creation
	chmodErr   error
	crossDev   bool
	calls      []string
}

func (f *faultFS) Open(name string) (*os.File, error) {
	f.calls = append(f.calls, "open")
	if f.openErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: f.openErr}
	}
	return f.OSFS.Open(name)
}

func (f *faultFS) OpenFile(name string, flag int, perm fs.FileMode) (*os.File, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: f.createErr}
	}
	return f.OSFS.OpenFile(name, flag, perm)
}

func (f *faultFS) Chmod(name string, mode fs.FileMode) error {
	f.calls = append(f.calls, "chmod")
	if f.chmodErr != nil {
		return &fs.PathError{Op: "chmod", Path: name, Err: f.chmodErr}
	}
	return f.OSFS.Chmod(name, mode)
}

func (f *faultFS) Symlink(oldname, newname string) error {
	f.calls = append(f.calls, "symlink")
	if f.symlinkErr != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: f.symlinkErr}
	}
	return f.OSFS.Symlink(oldname, newname)
}

func (f *faultFS) Link(oldname, newname string) error {
	f.calls = append(f.calls, "link")
	if f.linkErr != nil {
		return &os.LinkError{Op: "link", Old: oldname, New: newname, Err: f.linkErr}
	}
	return f.OSFS.Link(oldname, newname)
}

func (f *faultFS) SameDevice(a, b string) (bool, error) {
	if f.crossDev {
		return false, nil
	}
	return f.OSFS.SameDevice(a, b)
}

// writeFile creates path with content, making parents as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// listTree returns every path under root, relative and slash-separated.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return paths
}

func requireNoTempFiles(t *testing.T, root string) {
	t.Helper()
	for _, p := range listTree(t, root) {
		require.False(t, strings.HasSuffix(p, ".hooksync-tmp"), "leftover temp file %s", p)
	}
}
