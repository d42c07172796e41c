package git

import (
	"fmt"
	"strconv"
	"time"
)

// CommitRecord is one parsed commit from a repository's log.
type CommitRecord struct {
	ID        string
	Timestamp time.Time
	Message   string // Message lines concatenated without separators
}

// Month returns the calendar month of the commit in its own offset.
func (r CommitRecord) Month() time.Month {
	return r.Timestamp.Month()
}

// RepositoryContext pairs a repository root with its resolved remote URL.
type RepositoryContext struct {
	Path      string
	RemoteURL string // Empty when the lookup failed
}

// ReaderKind selects the LogReader implementation.
type ReaderKind string

const (
	ReaderGitCLI ReaderKind = "git-cli"
	ReaderGoGit  ReaderKind = "go-git"
)

// ParseReaderKind maps a flag or config value onto a ReaderKind.
func ParseReaderKind(s string) (ReaderKind, error) {
	switch s {
	case "", "git-cli", "cli", "git":
		return ReaderGitCLI, nil
	case "go-git", "gogit":
		return ReaderGoGit, nil
	default:
		return "", fmt.Errorf("invalid reader: %s (expected git-cli or go-git)", s)
	}
}

// ReadOptions configures a log reader for one repository.
type ReadOptions struct {
	RepoPath      string
	Year          int
	Author        string
	RemoteName    string // Default: "origin"
	FlushTrailing bool
}

// Since returns the first day of the configured year as passed to git (YYYY-01-01).
func (o ReadOptions) Since() string {
	return strconv.Itoa(o.Year) + "-01-01"
}

// Until returns the last day of the configured year as passed to git (YYYY-12-31).
func (o ReadOptions) Until() string {
	return strconv.Itoa(o.Year) + "-12-31"
}

func (o ReadOptions) remoteName() string {
	if o.RemoteName == "" {
		return "origin"
	}
	return o.RemoteName
}
