package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/hooksync/internal/stats"
)

func feed(evs ...Event) <-chan Event {
	ch := make(chan Event, len(evs))
	for _, e := range evs {
		ch <- e
	}
	close(ch)
	return ch
}

func sampleEvents() []Event {
	return []Event{
		{Type: ScanComplete, Total: 3},
		{Type: FileSynced, Path: "pre.py", Outcome: stats.Symlinked, Method: "symlink"},
		{Type: FileSkipped, Path: "lib/util.py", Outcome: stats.Skipped, Reason: "same content"},
		{Type: AttemptFailed, Path: "sub/b.py", Method: "symlink", Error: assert.AnError},
		{Type: FileFailed, Path: "sub/b.py", Outcome: stats.Failed, Error: assert.AnError},
	}
}

func TestPresenter_Verbose(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(Config{Writer: &out, Verbose: true})
	require.NoError(t, p.Run(feed(sampleEvents()...)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "found 3 hook files", lines[0])
	assert.Equal(t, "symlink  pre.py", lines[1])
	assert.Equal(t, "skip  lib/util.py  (same content)", lines[2])
	assert.Contains(t, lines[3], "symlink failed for sub/b.py")
	assert.Equal(t, "Failed to sync: sub/b.py", lines[4])
}

func TestPresenter_QuietPrintsOnlyFailures(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(Config{Writer: &out})
	require.NoError(t, p.Run(feed(sampleEvents()...)))

	assert.Equal(t, "Failed to sync: sub/b.py\n", out.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPresenter_DrainsAfterWriteError(t *testing.T) {
	ch := make(chan Event, 4)
	ch <- Event{Type: FileFailed, Path: "a.py"}
	ch <- Event{Type: FileFailed, Path: "b.py"}
	ch <- Event{Type: FileFailed, Path: "c.py"}
	close(ch)

	err := NewPresenter(Config{Writer: brokenWriter{}}).Run(ch)
	require.Error(t, err)
	assert.Empty(t, ch)
}

func TestPresenter_NilWriter(t *testing.T) {
	assert.NoError(t, NewPresenter(Config{Verbose: true}).Run(feed(sampleEvents()...)))
}
