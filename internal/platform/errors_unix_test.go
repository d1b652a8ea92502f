//go:build unix

package platform

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestIsUnsupportedErrnos(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"exdev", &os.LinkError{Op: "link", Old: "a", New: "b", Err: unix.EXDEV}, true},
		{"enotsup", &os.LinkError{Op: "symlink", Old: "a", New: "b", Err: unix.ENOTSUP}, true},
		{"eperm", &os.LinkError{Op: "symlink", Old: "a", New: "b", Err: unix.EPERM}, true},
		{"eacces", &os.PathError{Op: "open", Path: "a", Err: unix.EACCES}, false},
		{"enospc", &os.PathError{Op: "write", Path: "a", Err: unix.ENOSPC}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnsupported(tt.err))
		})
	}
}
