package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/hooksync/internal/stats"
)

type summaryLine struct {
	label string
	value int64
	style lipgloss.Style
}

func summaryLines(snap stats.Snapshot) []summaryLine {
	errStyle := styleCount
	if snap.Failed > 0 {
		errStyle = styleErrors
	}
	return []summaryLine{
		{"Total files processed", snap.Total(), styleCount},
		{"Symlinked", snap.Symlinked, styleCount},
		{"Hard linked", snap.HardLinked, styleCount},
		{"Copied", snap.Copied, styleCount},
		{"Skipped (already synced)", snap.Skipped, styleSkipped},
		{"Errors", snap.Failed, errStyle},
	}
}

func verdictLine(snap stats.Snapshot) string {
	if snap.OK() {
		return "All files synced successfully!"
	}
	return fmt.Sprintf("%s files failed to sync", FormatCount(snap.Failed))
}

// Summary renders the end-of-run report as plain text:
//
//	Sync Summary:
//	  Total files processed: 3
//	  Symlinked: 2
//	  ...
//	  All files synced successfully!
func Summary(snap stats.Snapshot) string {
	var b strings.Builder
	b.WriteString("Sync Summary:\n")
	for _, l := range summaryLines(snap) {
		fmt.Fprintf(&b, "  %s: %s\n", l.label, FormatCount(l.value))
	}
	fmt.Fprintf(&b, "  %s\n", verdictLine(snap))
	return b.String()
}

// CompletionLine is a one-line digest of a run.
// Format: done ✓  files 12  copied 3.1 KiB  time 8ms  errors 0
func CompletionLine(snap stats.Snapshot) string {
	icon := "✓"
	if !snap.OK() {
		icon = "✗"
	}
	return fmt.Sprintf("done %s  files %s  copied %s  time %s  errors %s",
		icon,
		FormatCount(snap.Total()),
		FormatBytes(snap.BytesCopied),
		FormatDuration(snap.Elapsed),
		FormatCount(snap.Failed),
	)
}

// Reporter writes the summary, colored when Color is set.
type Reporter struct {
	W       io.Writer
	Color   bool
	DryRun  bool
	Verbose bool // append CompletionLine
}

// Report writes the summary for snap.
func (r *Reporter) Report(snap stats.Snapshot) error {
	var out string
	if r.Color {
		out = r.colored(snap)
	} else {
		out = Summary(snap)
	}
	if r.DryRun {
		out = r.style(styleDryRun, "(dry run: no changes made)") + "\n" + out
	}
	if r.Verbose {
		out += r.style(styleSkipped, CompletionLine(snap)) + "\n"
	}
	_, err := io.WriteString(r.W, out)
	return err
}

func (r *Reporter) colored(snap stats.Snapshot) string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Sync Summary:") + "\n")
	for _, l := range summaryLines(snap) {
		fmt.Fprintf(&b, "  %s %s\n", styleLabel.Render(l.label+":"), l.style.Render(FormatCount(l.value)))
	}
	final := styleOK
	if !snap.OK() {
		final = styleErrors
	}
	fmt.Fprintf(&b, "  %s\n", final.Render(verdictLine(snap)))
	return b.String()
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.Color {
		return text
	}
	return s.Render(text)
}
