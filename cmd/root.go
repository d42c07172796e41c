package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/masmgr/raport-go/config"
	"github.com/urfave/cli/v2"
)

// ErrUsage is returned when the positional arguments are incomplete.
// The usage line has already been printed.
var ErrUsage = errors.New("missing arguments")

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "raport",
		Usage:     "Monthly commit reports for one author across a directory of Git repositories",
		Version:   "1.0.0",
		ArgsUsage: "path_to_git_repos output_dir year user",
		Flags:     commonFlags(),
		Action:    reportAction,
	}
}

// Common flags
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.BoolFlag{
			Name:  "flush-trailing",
			Usage: "Also report the last commit of each log (dropped by default)",
		},
		&cli.StringFlag{
			Name:  "reader",
			Usage: "History reader (git-cli, go-git)",
		},
		&cli.StringFlag{
			Name:  "remote",
			Usage: "Remote whose URL prefixes commit links",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of repository directories to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of repository directories to exclude (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Show a progress bar on stderr",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only print errors and the summary",
		},
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("flush-trailing") {
		cfg.Log.FlushTrailingCommit = c.Bool("flush-trailing")
	}
	if reader := c.String("reader"); reader != "" {
		cfg.Log.Reader = reader
	}
	if remote := c.String("remote"); remote != "" {
		cfg.Log.RemoteName = remote
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if c.IsSet("progress") {
		cfg.Console.Progress = c.Bool("progress")
	}
	if c.IsSet("quiet") {
		cfg.Console.Quiet = c.Bool("quiet")
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
