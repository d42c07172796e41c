// Package walker discovers the repositories below a monitored directory.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const gitDirName = ".git"

// Filter selects repositories by their path relative to the walked root.
type Filter struct {
	Include []string // Glob patterns to include
	Exclude []string // Glob patterns to exclude
}

// Validate checks that every pattern is a well-formed glob.
func (f Filter) Validate() error {
	for _, p := range append(append([]string{}, f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern: %q", p)
		}
	}
	return nil
}

// Matches checks if a relative repository path passes the include/exclude filters.
func (f Filter) Matches(rel string) bool {
	// Normalize path separators
	rel = strings.ReplaceAll(rel, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// Discover returns the repository roots below root: every directory one
// level down that contains a ".git" entry. Deeper repositories are not
// searched. Unreadable subdirectories are skipped. Results are in lexical order.
func Discover(root string, filter Filter) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if !hasGitEntry(dir) {
			continue
		}
		if !filter.Matches(entry.Name()) {
			continue
		}
		repos = append(repos, dir)
	}
	return repos, nil
}

func hasGitEntry(dir string) bool {
	children, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, c := range children {
		if c.Name() == gitDirName {
			return true
		}
	}
	return false
}
