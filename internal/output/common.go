package output

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/masmgr/raport-go/internal/git"
)

// RepositoryResult records what one repository contributed to the reports.
type RepositoryResult struct {
	git.RepositoryContext
	Commits int
	Months  map[time.Month]int
	Files   []string
	Err     error // Log read failure; the repository contributed nothing
}

// RunSummary holds the results of one run over a repositories root.
type RunSummary struct {
	Root         string
	OutputDir    string
	Year         int
	Author       string
	GeneratedAt  time.Time
	Repositories []RepositoryResult
}

// TotalCommits returns the number of entries written across all repositories.
func (s *RunSummary) TotalCommits() int {
	total := 0
	for _, r := range s.Repositories {
		total += r.Commits
	}
	return total
}

// FailedCount returns the number of repositories whose log could not be read.
func (s *RunSummary) FailedCount() int {
	n := 0
	for _, r := range s.Repositories {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// formatMonths renders per-month counts in calendar order, e.g. "3:2 4:1".
func formatMonths(months map[time.Month]int) string {
	if len(months) == 0 {
		return "-"
	}
	keys := make([]int, 0, len(months))
	for m := range months {
		keys = append(keys, int(m))
	}
	sort.Ints(keys)

	parts := make([]string, len(keys))
	for i, m := range keys {
		parts[i] = strconv.Itoa(m) + ":" + strconv.Itoa(months[time.Month(m)])
	}
	return strings.Join(parts, " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
