// Package output provides terminal output formatting utilities for the
// bumpgen CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/bumpgen/internal/changeset"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintRunSummary prints the one-line outcome of an inference run.
// checkmark is the terminal-appropriate success symbol.
func PrintRunSummary(out io.Writer, checkmark string, units, novel, duplicates int) {
	fmt.Fprintf(out, "%s %d logical unit(s) examined, %d new changeset(s)",
		checkmark, units, novel)
	if duplicates > 0 {
		fmt.Fprintf(out, " (%d duplicate(s) skipped)", duplicates)
	}
	fmt.Fprintln(out)
}

// PrintChangeset prints one changeset's summary line and its per-package
// bumps, indented under the run summary.
func PrintChangeset(out io.Writer, cs changeset.Changeset) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(out, "\n  %s\n", bold(FirstLine(cs.Summary)))
	for _, rel := range cs.Releases {
		fmt.Fprintf(out, "    %s: %s\n", rel.Name, rel.Bump)
	}
}

// PrintWritten reports a persisted changeset file.
func PrintWritten(out io.Writer, name string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "  wrote %s\n", cyan(name))
}

// FirstLine returns the first line of a commit message.
func FirstLine(summary string) string {
	for i, r := range summary {
		if r == '\n' {
			return summary[:i]
		}
	}
	return summary
}
