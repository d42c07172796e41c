package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLIReader reads history by running the git executable in the repository root.
type CLIReader struct {
	opts ReadOptions
}

// NewCLIReader creates a reader for the repository in opts.RepoPath.
func NewCLIReader(opts ReadOptions) *CLIReader {
	return &CLIReader{opts: opts}
}

// GitError is returned when a git invocation exits unsuccessfully.
type GitError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *GitError) Unwrap() error { return e.Err }

// logArgs builds the arguments for the year/author restricted log.
func (r *CLIReader) logArgs() []string {
	return []string{
		"log",
		"--no-color",
		"--no-decorate",
		"--since", r.opts.Since(),
		"--until", r.opts.Until(),
		"--author", r.opts.Author,
		"--date", "rfc",
	}
}

// ReadLog runs `git log` and parses its output.
func (r *CLIReader) ReadLog(ctx context.Context) ([]CommitRecord, error) {
	out, err := r.run(ctx, r.logArgs()...)
	if err != nil {
		return nil, err
	}
	return ParseLog(string(out), ParseOptions{FlushTrailing: r.opts.FlushTrailing}), nil
}

// RemoteURL runs `git remote get-url` for the configured remote.
func (r *CLIReader) RemoteURL(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "remote", "get-url", r.opts.remoteName())
	if err != nil {
		return "", err
	}
	return NormalizeRemoteURL(string(out)), nil
}

func (r *CLIReader) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.opts.RepoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &GitError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}
