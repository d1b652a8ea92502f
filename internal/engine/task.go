package engine

import (
	"github.com/bamsammich/hooksync/internal/stats"
	"github.com/bamsammich/hooksync/internal/strategy"
)

// FileEntry is one source file and the target path it is mirrored to.
type FileEntry struct {
	RelPath string // slash-separated, relative to the source hooks root
	SrcPath string
	DstPath string
	Size    int64
}

// FileResult is the outcome of syncing one FileEntry.
type FileResult struct {
	Err      error
	Entry    FileEntry
	Attempts []strategy.Attempt // every strategy tried, in order
	Outcome  stats.Outcome
	Verdict  Verdict // equivalence verdict for skipped files
}
