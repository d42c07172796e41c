package git

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitReader reads history through go-git, without a git executable.
type GoGitReader struct {
	repo   *git.Repository
	opts   ReadOptions
	author *regexp.Regexp
}

// NewGoGitReader opens the repository in opts.RepoPath.
func NewGoGitReader(opts ReadOptions) (*GoGitReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &GoGitReader{repo: repo, opts: opts, author: authorPattern(opts.Author)}, nil
}

// authorPattern mirrors `git log --author`: a regular expression matched
// against "Name <email>". Invalid expressions fall back to a literal match.
func authorPattern(author string) *regexp.Regexp {
	if re, err := regexp.Compile(author); err == nil {
		return re
	}
	return regexp.MustCompile(regexp.QuoteMeta(author))
}

// yearWindow returns the committer-date window git uses for
// --since YYYY-01-01 --until YYYY-12-31, in local time.
func yearWindow(year int) (since, until time.Time) {
	since = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	until = time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
	return since, until
}

// ReadLog walks HEAD's history and returns the author's commits in the year, newest first.
func (r *GoGitReader) ReadLog(ctx context.Context) ([]CommitRecord, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	since, until := yearWindow(r.opts.Year)
	cIter, err := r.repo.Log(&git.LogOptions{
		From:  ref.Hash(),
		Order: git.LogOrderCommitterTime,
		Since: &since,
		Until: &until,
	})
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	var records []CommitRecord
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Merge commits carry an extra header line in git's output and are
		// dropped by the parser; keep the two readers consistent.
		if c.NumParents() > 1 {
			return nil
		}
		if !r.author.MatchString(c.Author.Name + " <" + c.Author.Email + ">") {
			return nil
		}

		records = append(records, CommitRecord{
			ID:        c.Hash.String(),
			Timestamp: c.Author.When,
			Message:   indentMessage(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// RemoteURL returns the first URL of the configured remote.
func (r *GoGitReader) RemoteURL(_ context.Context) (string, error) {
	remote, err := r.repo.Remote(r.opts.remoteName())
	if err != nil {
		return "", err
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", git.ErrRemoteNotFound
	}
	return NormalizeRemoteURL(urls[0]), nil
}

// indentMessage renders a commit message the way ParseLog accumulates it
// from git's output: every line indented, no separators.
func indentMessage(message string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(message, "\n"), "\n") {
		b.WriteString(MessageIndent)
		b.WriteString(strings.TrimRight(line, " \t\r"))
	}
	return b.String()
}
