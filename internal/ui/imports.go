package ui

import "github.com/bamsammich/hooksync/internal/event"

// Event is re-exported so presenters read naturally.
type Event = event.Event

const (
	ScanComplete  = event.ScanComplete
	FileSynced    = event.FileSynced
	FileSkipped   = event.FileSkipped
	FileFailed    = event.FileFailed
	AttemptFailed = event.AttemptFailed
)
