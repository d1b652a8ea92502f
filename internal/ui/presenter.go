package ui

import (
	"fmt"
	"io"
)

// Config configures a Presenter.
type Config struct {
	Writer  io.Writer
	Verbose bool
}

// Presenter prints per-file progress lines from engine events. Failures
// are always printed; everything else only when verbose.
type Presenter struct {
	w       io.Writer
	verbose bool
}

// NewPresenter creates a Presenter writing to cfg.Writer.
func NewPresenter(cfg Config) *Presenter {
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}
	return &Presenter{w: w, verbose: cfg.Verbose}
}

// Run consumes events until the channel closes. Blocks until done.
func (p *Presenter) Run(events <-chan Event) error {
	for ev := range events {
		if err := p.handleEvent(ev); err != nil {
			// Keep draining so the engine never blocks on a dead writer.
			for range events {
			}
			return err
		}
	}
	return nil
}

func (p *Presenter) handleEvent(ev Event) error {
	var err error
	switch ev.Type {
	case FileFailed:
		_, err = fmt.Fprintf(p.w, "Failed to sync: %s\n", ev.Path)
	case ScanComplete:
		if p.verbose {
			_, err = fmt.Fprintf(p.w, "found %s hook files\n", FormatCount(int64(ev.Total)))
		}
	case FileSynced:
		if p.verbose {
			_, err = fmt.Fprintf(p.w, "%s  %s\n", ev.Outcome, ev.Path)
		}
	case FileSkipped:
		if p.verbose {
			_, err = fmt.Fprintf(p.w, "%s  %s  (%s)\n", ev.Outcome, ev.Path, ev.Reason)
		}
	case AttemptFailed:
		if p.verbose {
			_, err = fmt.Fprintf(p.w, "  %s failed for %s: %v\n", ev.Method, ev.Path, ev.Error)
		}
	}
	return err
}
