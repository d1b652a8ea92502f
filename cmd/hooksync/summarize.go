package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bamsammich/hooksync/internal/summary"
)

// summarizerEnv names a shell command used as the primary summarizer when
// --command is not given.
const summarizerEnv = "HOOKSYNC_SUMMARIZER"

func newSummarizeCmd(stdin io.Reader) *cobra.Command {
	var (
		command string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print a one-line summary of a hook event read from stdin",
		Long: `Reads a hook event {"type": ..., "payload": {...}} as JSON on stdin and
prints a one-line summary. An optional external summarizer is tried first;
any failure falls back to a template. Always exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := summary.Decode(stdin)
			if err != nil {
				slog.Debug("malformed hook event", "error", err)
			}

			if command == "" {
				command = os.Getenv(summarizerEnv)
			}
			var primary summary.Summarizer
			if command != "" {
				primary = &summary.Command{Name: "sh", Args: []string{"-c", command}, Timeout: timeout}
			}

			s := summary.Safe(primary, summary.Template{}, slog.Default())
			text, _, _ := s.Summarize(cmd.Context(), ev) //nolint:errcheck // Safe never fails
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&command, "command", "",
		"shell command producing the summary (event JSON on stdin; default $"+summarizerEnv+")")
	cmd.Flags().DurationVar(&timeout, "timeout", summary.DefaultTimeout, "time limit for --command")
	return cmd
}
