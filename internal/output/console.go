package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Console writes operator messages and the final run summary.
type Console struct {
	Out   io.Writer
	Quiet bool // Suppress progress lines; errors and the summary are still printed
}

// NewConsole creates a console writing to out.
func NewConsole(out io.Writer, quiet bool) *Console {
	return &Console{Out: out, Quiet: quiet}
}

// Scanning announces the repository about to be processed.
func (c *Console) Scanning(path string) {
	if c.Quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(c.Out, "Scanning %v repo\n", path)
}

// Warning prints a non-fatal condition.
func (c *Console) Warning(format string, args ...interface{}) {
	if c.Quiet {
		return
	}
	color.New(color.FgCyan).Fprintf(c.Out, format+"\n", args...)
}

// Error prints a failure that did not stop the run.
func (c *Console) Error(msg string) {
	color.New(color.FgRed).Fprintf(c.Out, "ERROR: %s\n", msg)
}

// Summary prints one row per repository.
func (c *Console) Summary(s *RunSummary) error {
	colorTitle := color.New(color.FgGreen).Add(color.Underline)

	fmt.Fprintln(c.Out)
	colorTitle.Fprintln(c.Out, "Monthly Report Summary")
	fmt.Fprintf(c.Out, "Author: %s\n", s.Author)
	fmt.Fprintf(c.Out, "Year: %d\n", s.Year)
	fmt.Fprintf(c.Out, "Output: %s\n", s.OutputDir)
	if !s.GeneratedAt.IsZero() {
		fmt.Fprintf(c.Out, "Generated: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	color.New(color.FgYellow).Fprintf(c.Out, "Wrote %d commits from %d repositories (%d failed)\n\n",
		s.TotalCommits(), len(s.Repositories), s.FailedCount())

	if len(s.Repositories) == 0 {
		fmt.Fprintln(c.Out, "No repositories found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', 0)

	// Write header
	fmt.Fprintln(tw, "#\tRepository\tRemote\tCommits\tMonths\tFiles")

	// Write rows
	for i, r := range s.Repositories {
		months := formatMonths(r.Months)
		if r.Err != nil {
			months = "error"
		}
		files := make([]string, len(r.Files))
		for j, f := range r.Files {
			files[j] = filepath.Base(f)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			i+1,
			relativeTo(s.Root, r.Path),
			orDash(r.RemoteURL),
			r.Commits,
			months,
			orDash(strings.Join(files, ",")),
		)
	}

	return tw.Flush()
}

func relativeTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
