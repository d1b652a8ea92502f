package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bamsammich/hooksync/internal/event"
	"github.com/bamsammich/hooksync/internal/filter"
	"github.com/bamsammich/hooksync/internal/stats"
	"github.com/bamsammich/hooksync/internal/strategy"
)

// DefaultSubpath is where hooks live under both the source and target roots.
const DefaultSubpath = ".claude/hooks"

// ErrFilesFailed is wrapped by Result.Err when at least one file failed.
var ErrFilesFailed = errors.New("files failed to sync")

// Config describes a sync run.
type Config struct {
	Logger  *slog.Logger
	Filter  *filter.Chain // nil means the default extension filter
	Checker *Checker      // nil means a Checker using Digest
	FS      strategy.FS   // nil means the host filesystem
	Events  chan<- event.Event

	SourceRoot string // project whose Subpath holds the hook files
	TargetRoot string // project receiving them under the same Subpath
	Subpath    string // defaults to DefaultSubpath

	Method strategy.Method
	Digest Digest
	DryRun bool
}

// Result is the outcome of a sync run.
type Result struct {
	Err   error
	Files []FileResult
	Stats stats.Snapshot
}

// SourceDir returns the directory files are discovered in.
func (c Config) SourceDir() string { return filepath.Join(c.SourceRoot, c.subpath()) }

// TargetDir returns the directory files are mirrored into.
func (c Config) TargetDir() string { return filepath.Join(c.TargetRoot, c.subpath()) }

func (c Config) subpath() string {
	if c.Subpath == "" {
		return filepath.FromSlash(DefaultSubpath)
	}
	return filepath.FromSlash(c.Subpath)
}

// Run syncs every discovered file, blocking until complete. Files are
// processed in discovery order; a failing file never stops the batch.
// Cancellation is honored between files.
func Run(ctx context.Context, cfg Config) Result {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	checker := cfg.Checker
	if checker == nil {
		checker = &Checker{Digest: cfg.Digest}
	}

	srcDir, dstDir := cfg.SourceDir(), cfg.TargetDir()

	entries, err := Discover(srcDir, cfg.Filter, dstDir)
	if err != nil {
		return Result{Err: err}
	}
	if len(entries) == 0 {
		return Result{Err: fmt.Errorf("%w in %s", ErrNoFiles, srcDir)}
	}
	logger.Info("discovered hook files", "count", len(entries), "source", srcDir, "target", dstDir)
	event.Emit(cfg.Events, event.Event{Type: event.ScanComplete, Total: len(entries)})

	chain := strategy.Chain(cfg.Method, strategy.Options{
		FS:     cfg.FS,
		Logger: logger,
		DryRun: cfg.DryRun,
	})

	collector := stats.NewCollector()
	files := make([]FileResult, 0, len(entries))
	var runErr error

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		fr := syncFile(entry, checker, chain, logger, cfg.Events)
		collector.Record(fr.Outcome)
		for _, a := range fr.Attempts {
			collector.AddBytesCopied(a.Bytes)
		}
		files = append(files, fr)
	}

	snap := collector.Snapshot()
	if runErr == nil && snap.Failed > 0 {
		runErr = fmt.Errorf("%d %w", snap.Failed, ErrFilesFailed)
	}

	return Result{Stats: snap, Files: files, Err: runErr}
}

// syncFile skips an equivalent target or walks chain until a strategy
// succeeds.
func syncFile(
	entry FileEntry,
	checker *Checker,
	chain []strategy.Strategy,
	logger *slog.Logger,
	events chan<- event.Event,
) FileResult {
	fr := FileResult{Entry: entry}

	if v := checker.Equivalent(entry.SrcPath, entry.DstPath); v.Equivalent() {
		fr.Outcome, fr.Verdict = stats.Skipped, v
		logger.Debug("already synced", "path", entry.RelPath, "reason", v.String())
		event.Emit(events, event.Event{
			Type:    event.FileSkipped,
			Path:    entry.RelPath,
			Outcome: stats.Skipped,
			Reason:  v.String(),
		})
		return fr
	}

	for _, s := range chain {
		a := s.Apply(entry.SrcPath, entry.DstPath)
		fr.Attempts = append(fr.Attempts, a)
		if a.OK() {
			fr.Outcome = s.Method().Outcome()
			event.Emit(events, event.Event{
				Type:    event.FileSynced,
				Path:    entry.RelPath,
				Outcome: fr.Outcome,
				Method:  s.Method().String(),
			})
			return fr
		}

		logger.Debug("strategy failed",
			"path", entry.RelPath,
			"method", s.Method().String(),
			"status", a.Status.String(),
			"error", a.Err,
		)
		event.Emit(events, event.Event{
			Type:   event.AttemptFailed,
			Path:   entry.RelPath,
			Method: s.Method().String(),
			Error:  a.Err,
		})
		fr.Err = a.Err
	}

	fr.Outcome = stats.Failed
	if fr.Err == nil {
		fr.Err = errors.New("no strategy available")
	}
	logger.Warn("failed to sync", "path", entry.RelPath, "error", fr.Err)
	event.Emit(events, event.Event{
		Type:    event.FileFailed,
		Path:    entry.RelPath,
		Outcome: stats.Failed,
		Error:   fr.Err,
	})
	return fr
}
