package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/masmgr/raport-go/config"
	"github.com/masmgr/raport-go/internal/git"
	"github.com/masmgr/raport-go/internal/walker"
	"github.com/urfave/cli/v2"
)

// RunContext holds the arguments and configuration of one run.
type RunContext struct {
	Config    *config.Config
	Root      string
	OutputDir string
	Year      int
	Author    string
	Reader    git.ReaderKind
	Filter    walker.Filter

	// ProgressOut receives the progress bar; nil disables it.
	ProgressOut io.Writer
}

// NewRunContext creates a context from the positional arguments and flags.
// Fewer than four arguments prints the usage line to stdout and returns ErrUsage.
func NewRunContext(c *cli.Context) (*RunContext, error) {
	if c.NArg() < 4 {
		fmt.Fprintf(c.App.Writer, "Usage: %s %s\n", c.App.HelpName, c.App.ArgsUsage)
		return nil, ErrUsage
	}

	year, err := strconv.Atoi(c.Args().Get(2))
	if err != nil {
		return nil, fmt.Errorf("invalid year %q: %w", c.Args().Get(2), err)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	reader, err := git.ParseReaderKind(cfg.Log.Reader)
	if err != nil {
		return nil, err
	}

	filter := walker.Filter{Include: cfg.Filters.Include, Exclude: cfg.Filters.Exclude}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return &RunContext{
		Config:    cfg,
		Root:      c.Args().Get(0),
		OutputDir: c.Args().Get(1),
		Year:      year,
		Author:    c.Args().Get(3),
		Reader:    reader,
		Filter:    filter,

		ProgressOut: c.App.ErrWriter,
	}, nil
}

// ReadOptions returns the reader options for one repository.
func (ctx *RunContext) ReadOptions(repoPath string) git.ReadOptions {
	return git.ReadOptions{
		RepoPath:      repoPath,
		Year:          ctx.Year,
		Author:        ctx.Author,
		RemoteName:    ctx.Config.Log.RemoteName,
		FlushTrailing: ctx.Config.Log.FlushTrailingCommit,
	}
}
