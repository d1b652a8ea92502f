package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bamsammich/hooksync/internal/config"
	"github.com/bamsammich/hooksync/internal/engine"
	"github.com/bamsammich/hooksync/internal/event"
	"github.com/bamsammich/hooksync/internal/filter"
	"github.com/bamsammich/hooksync/internal/strategy"
	"github.com/bamsammich/hooksync/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the root command's flag values.
type options struct {
	chain      *filter.Chain
	source     string
	subpath    string
	filterFile string
	logFile    string
	extensions []string
	method     strategy.Method
	digest     engine.Digest
	dryRun     bool
	verbose    bool
	quiet      bool
	version    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdin, stdout, stderr)
	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{chain: filter.NewChain()}

	rootCmd := &cobra.Command{
		Use:   "hooksync [flags] <target>",
		Short: "Mirror hook files into a project using the cheapest link the filesystem supports",
		Long: `hooksync mirrors the hook files under <source>/.claude/hooks into
<target>/.claude/hooks. Each file is symlinked, hard linked or copied,
trying each in turn with --method=auto. Files already in sync are skipped,
so re-running is safe.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintf(stdout, "hooksync %s\n", version)
				return nil
			}
			return runSync(cmd, opts, args[0], stdout, stderr)
		},
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	f := rootCmd.Flags()
	f.BoolVar(&opts.version, "version", false, "print version and exit")
	f.Var(&methodFlag{method: &opts.method}, "method", methodUsage())
	f.BoolVar(&opts.dryRun, "dry-run", false, "report what would be synced without changing anything")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print one line per file and debug logs")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "plain summary and warnings only")
	f.StringVar(&opts.source, "source", "", "source project root (default: config defaults.source, else the current directory)")
	f.StringVar(&opts.subpath, "subpath", engine.DefaultSubpath, "hooks directory relative to source and target roots")
	f.StringSliceVar(&opts.extensions, "ext", filter.DefaultExtensions, "file extension to sync (repeatable)")
	f.Var(&digestFlag{digest: &opts.digest}, "digest", "content digest for equivalence checks: blake3 or xxhash")

	// Filter flags use a custom pflag.Value to preserve CLI ordering.
	f.Var(&filterFlag{chain: opts.chain}, "exclude", "exclude files matching PATTERN (repeatable)")
	f.Var(&filterFlag{chain: opts.chain, include: true}, "include", "include files matching PATTERN (repeatable)")
	f.StringVar(&opts.filterFile, "filter", "", "read filter rules from FILE")
	f.StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(newSummarizeCmd(stdin))
	rootCmd.AddCommand(newDocsCmd())
	return rootCmd
}

//nolint:gocyclo,revive // cyclomatic,cognitive-complexity: CLI entry point wires config, logging, engine and output
func runSync(cmd *cobra.Command, opts *options, target string, stdout, stderr io.Writer) error {
	logger, closeLog, err := setupLogging(opts, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if info, err := os.Stat(target); err != nil {
		return fmt.Errorf("target directory: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("target %s is not a directory", target)
	}

	// Load optional config file.
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config", "error", err)
	}
	if err := applyConfigDefaults(cmd, cfg, opts); err != nil {
		return err
	}

	if opts.source == "" {
		if opts.source, err = os.Getwd(); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}

	opts.chain.SetExtensions(opts.extensions...)
	if opts.filterFile != "" {
		if err := opts.chain.LoadFile(opts.filterFile); err != nil {
			return fmt.Errorf("load filter file: %w", err)
		}
	}

	if opts.dryRun {
		logger.Info("dry run mode")
	}

	events := make(chan event.Event, 64)
	presenterEvents := (<-chan event.Event)(events)
	if opts.logFile != "" {
		presenterEvents = teeEvents(logger, events)
	}
	presenter := ui.NewPresenter(ui.Config{Writer: stdout, Verbose: opts.verbose})

	engineCfg := engine.Config{
		SourceRoot: opts.source,
		TargetRoot: target,
		Subpath:    opts.subpath,
		Method:     opts.method,
		Digest:     opts.digest,
		DryRun:     opts.dryRun,
		Filter:     opts.chain,
		Events:     events,
		Logger:     logger,
	}

	logger.Debug("starting sync",
		"source", engineCfg.SourceDir(),
		"target", engineCfg.TargetDir(),
		"method", opts.method.String(),
		"digest", opts.digest.String(),
		"extensions", opts.chain.Extensions(),
	)

	// Presenter runs in the background, engine in the foreground.
	var presenterErr error
	var presenterWg sync.WaitGroup
	presenterWg.Add(1)
	go func() {
		defer presenterWg.Done()
		presenterErr = presenter.Run(presenterEvents)
	}()

	result := engine.Run(cmd.Context(), engineCfg)
	close(events)
	presenterWg.Wait()
	if presenterErr != nil {
		logger.Warn("presenter failed", "error", presenterErr)
	}

	if synced(result.Err) {
		reporter := &ui.Reporter{
			W:       stdout,
			Color:   !opts.quiet && ui.IsTerminal(stdout),
			DryRun:  opts.dryRun,
			Verbose: opts.verbose,
		}
		fmt.Fprintln(stdout)
		if err := reporter.Report(result.Stats); err != nil {
			logger.Warn("write summary", "error", err)
		}
	}

	logger.Info("sync finished",
		"stats", result.Stats.String(),
		"elapsed", ui.FormatDuration(result.Stats.Elapsed),
	)

	switch {
	case result.Err == nil:
		return nil
	case errors.Is(result.Err, engine.ErrFilesFailed):
		// The summary already reports the failure count.
		return &exitError{code: 1}
	default:
		return result.Err
	}
}

// synced reports whether the run got as far as processing files.
func synced(err error) bool {
	return err == nil ||
		errors.Is(err, engine.ErrFilesFailed) ||
		errors.Is(err, context.Canceled)
}

// setupLogging builds the stderr text logger, teed to a JSON file with
// --log, and installs it as the default.
func setupLogging(opts *options, stderr io.Writer) (*slog.Logger, func(), error) {
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	} else if !opts.quiet {
		logLevel = slog.LevelInfo
	}
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel})

	var logHandler slog.Handler = textHandler
	closeLog := func() {}
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closeLog = func() { _ = lf.Close() }
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}

	logger := slog.New(logHandler)
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

// teeEvents logs each event as a structured record before forwarding it.
func teeEvents(logger *slog.Logger, events <-chan event.Event) <-chan event.Event {
	teed := make(chan event.Event, cap(events))
	go func() {
		defer close(teed)
		for ev := range events {
			attrs := []slog.Attr{
				slog.String("type", ev.Type.String()),
				slog.String("path", ev.Path),
			}
			switch ev.Type {
			case event.ScanComplete:
				attrs = append(attrs, slog.Int("total", ev.Total))
			case event.FileSynced, event.FileSkipped, event.FileFailed:
				attrs = append(attrs, slog.String("outcome", ev.Outcome.String()))
			}
			if ev.Method != "" {
				attrs = append(attrs, slog.String("method", ev.Method))
			}
			if ev.Reason != "" {
				attrs = append(attrs, slog.String("reason", ev.Reason))
			}
			if ev.Error != nil {
				attrs = append(attrs, slog.String("error", ev.Error.Error()))
			}
			logger.LogAttrs(context.Background(), slog.LevelDebug, "hooksync.event", attrs...)
			teed <- ev
		}
	}()
	return teed
}

// applyConfigDefaults applies config file values for flags not explicitly
// set on the CLI. Config filter rules go after CLI rules, so the command
// line wins on first match.
func applyConfigDefaults(cmd *cobra.Command, cfg config.Config, opts *options) error {
	d := cfg.Defaults
	flags := cmd.Flags()

	if !flags.Changed("method") && d.Method != nil {
		m, err := strategy.ParseMethod(*d.Method)
		if err != nil {
			return fmt.Errorf("config defaults.method: %w", err)
		}
		opts.method = m
	}
	if !flags.Changed("digest") && d.Digest != nil {
		dg, err := engine.ParseDigest(*d.Digest)
		if err != nil {
			return fmt.Errorf("config defaults.digest: %w", err)
		}
		opts.digest = dg
	}
	if !flags.Changed("source") && d.Source != nil {
		opts.source = *d.Source
	}
	if !flags.Changed("subpath") && d.Subpath != nil {
		opts.subpath = *d.Subpath
	}
	if !flags.Changed("ext") && len(d.Extensions) > 0 {
		opts.extensions = d.Extensions
	}

	for _, p := range cfg.Filter.Include {
		if err := opts.chain.AddInclude(p); err != nil {
			return fmt.Errorf("config filter.include: %w", err)
		}
	}
	for _, p := range cfg.Filter.Exclude {
		if err := opts.chain.AddExclude(p); err != nil {
			return fmt.Errorf("config filter.exclude: %w", err)
		}
	}
	return nil
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
