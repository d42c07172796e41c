package cmd

import (
	"context"
	"io"
	"time"

	"github.com/masmgr/raport-go/internal/aggregation"
	"github.com/masmgr/raport-go/internal/git"
	"github.com/masmgr/raport-go/internal/output"
	"github.com/masmgr/raport-go/internal/report"
	"github.com/masmgr/raport-go/internal/walker"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

// openRepository is replaced in tests.
var openRepository = git.NewRepository

func reportAction(c *cli.Context) error {
	rc, err := NewRunContext(c)
	if err != nil {
		return err
	}

	console := output.NewConsole(c.App.Writer, rc.Config.Console.Quiet)
	summary, err := rc.Execute(c.Context, console)
	if err != nil {
		return err
	}
	return console.Summary(summary)
}

// Execute discovers the repositories and writes their monthly reports, one
// repository at a time. An unreadable root yields an empty run. Log read
// failures are reported and skipped; report write failures stop the run.
func (ctx *RunContext) Execute(goctx context.Context, console *output.Console) (*output.RunSummary, error) {
	repos, err := walker.Discover(ctx.Root, ctx.Filter)
	if err != nil {
		console.Warning("Cannot read repositories root %s: %v", ctx.Root, err)
	}

	summary := &output.RunSummary{
		Root:        ctx.Root,
		OutputDir:   ctx.OutputDir,
		Year:        ctx.Year,
		Author:      ctx.Author,
		GeneratedAt: time.Now(),
	}

	writer := report.NewMonthlyWriter(ctx.OutputDir, ctx.Year)
	bar := newProgressBar(ctx.ProgressOut, len(repos), ctx.Config.Console.Progress)
	defer func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}()

	for _, path := range repos {
		console.Scanning(path)

		result, err := ctx.processRepository(goctx, path, writer, console)
		summary.Repositories = append(summary.Repositories, result)
		if bar != nil {
			if barErr := bar.Add(1); barErr != nil {
				// The bar's writer is gone; keep going without it.
				bar = nil
			}
		}
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (ctx *RunContext) processRepository(goctx context.Context, path string, writer *report.MonthlyWriter, console *output.Console) (output.RepositoryResult, error) {
	result := output.RepositoryResult{RepositoryContext: git.RepositoryContext{Path: path}}

	repo, err := openRepository(ctx.Reader, ctx.ReadOptions(path))
	if err != nil {
		console.Error(err.Error())
		result.Err = err
		return result, nil
	}

	records, err := repo.ReadLog(goctx)
	if err != nil {
		console.Error(err.Error())
		result.Err = err
	}

	url, err := repo.RemoteURL(goctx)
	if err != nil {
		console.Warning("No %s remote for %s", ctx.Config.Log.RemoteName, path)
		url = ""
	}
	result.RemoteURL = url

	written, err := writer.Write(records, url)
	result.Files = written.Files
	result.Commits = written.Entries
	result.Months = aggregation.CountByMonth(records)
	return result, err
}

// newProgressBar returns a bar on w, or nil when disabled or there is nothing to count.
func newProgressBar(w io.Writer, total int, enabled bool) *progressbar.ProgressBar {
	if !enabled || total == 0 || w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(10),
		progressbar.OptionSetDescription("[cyan]Writing reports[reset]"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]#[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
