package event

import (
	"time"

	"github.com/bamsammich/hooksync/internal/stats"
)

// Type identifies the kind of event.
type Type int

const (
	ScanComplete Type = iota + 1
	FileSynced
	FileSkipped
	FileFailed
	AttemptFailed
)

var typeNames = [...]string{
	ScanComplete:  "ScanComplete",
	FileSynced:    "FileSynced",
	FileSkipped:   "FileSkipped",
	FileFailed:    "FileFailed",
	AttemptFailed: "AttemptFailed",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event represents a single progress event from the engine.
type Event struct {
	Type      Type
	Timestamp time.Time
	Path      string        // path relative to the hooks root
	Outcome   stats.Outcome // FileSynced, FileSkipped, FileFailed
	Method    string        // strategy name for AttemptFailed
	Reason    string        // why a file was skipped
	Total     int           // files discovered (ScanComplete)
	Error     error
}

// Emit stamps e and sends it on ch. A nil channel drops the event; a
// non-nil channel must be drained by its consumer until it is closed.
func Emit(ch chan<- Event, e Event) {
	if ch == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	ch <- e
}
