package stats

import (
	"fmt"
	"time"
)

// Outcome is the per-file result of a sync attempt.
type Outcome int

const (
	Symlinked Outcome = iota
	HardLinked
	Copied
	Skipped
	Failed

	numOutcomes
)

var outcomeNames = [...]string{
	Symlinked:  "symlink",
	HardLinked: "hardlink",
	Copied:     "copy",
	Skipped:    "skip",
	Failed:     "error",
}

func (o Outcome) String() string {
	if o >= 0 && o < numOutcomes {
		return outcomeNames[o]
	}
	return "unknown"
}

// Outcomes lists every outcome kind in reporting order.
func Outcomes() []Outcome {
	return []Outcome{Symlinked, HardLinked, Copied, Skipped, Failed}
}

// Collector accumulates run statistics. It is owned by a single engine run
// and is not safe for concurrent use.
type Collector struct {
	counts      [numOutcomes]int64
	bytesCopied int64
	startTime   time.Time
}

// NewCollector creates a Collector with startTime set to now.
func NewCollector() *Collector {
	return &Collector{startTime: time.Now()}
}

// Record counts one file outcome.
func (c *Collector) Record(o Outcome) {
	if o < 0 || o >= numOutcomes {
		return
	}
	c.counts[o]++
}

// AddBytesCopied adds to the number of bytes written by the copy strategy.
func (c *Collector) AddBytesCopied(n int64) { c.bytesCopied += n }

// Elapsed returns time since collector creation.
func (c *Collector) Elapsed() time.Duration {
	return time.Since(c.startTime)
}

// Snapshot is a read-only copy of the counters at the end of a run.
type Snapshot struct {
	Symlinked   int64
	HardLinked  int64
	Copied      int64
	Skipped     int64
	Failed      int64
	BytesCopied int64
	Elapsed     time.Duration
}

// Snapshot returns the current counters.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Symlinked:   c.counts[Symlinked],
		HardLinked:  c.counts[HardLinked],
		Copied:      c.counts[Copied],
		Skipped:     c.counts[Skipped],
		Failed:      c.counts[Failed],
		BytesCopied: c.bytesCopied,
		Elapsed:     c.Elapsed(),
	}
}

// Count returns the number of files recorded with outcome o.
func (s Snapshot) Count(o Outcome) int64 {
	switch o {
	case Symlinked:
		return s.Symlinked
	case HardLinked:
		return s.HardLinked
	case Copied:
		return s.Copied
	case Skipped:
		return s.Skipped
	case Failed:
		return s.Failed
	default:
		return 0
	}
}

// Total returns the number of files processed.
func (s Snapshot) Total() int64 {
	return s.Symlinked + s.HardLinked + s.Copied + s.Skipped + s.Failed
}

// OK reports whether no file ended in an error.
func (s Snapshot) OK() bool {
	return s.Failed == 0
}

func (s Snapshot) String() string {
	return fmt.Sprintf(
		"symlink=%d hardlink=%d copy=%d skip=%d error=%d bytes=%d",
		s.Symlinked, s.HardLinked, s.Copied, s.Skipped, s.Failed, s.BytesCopied,
	)
}

// FormatBytes returns a human-readable byte count.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
