package aggregation

import (
	"time"

	"github.com/masmgr/raport-go/internal/git"
)

// MonthRun is a maximal run of consecutive records sharing a calendar month.
type MonthRun struct {
	Month   time.Month
	Records []git.CommitRecord
}

// SplitByMonth groups records into month runs with a single forward scan.
// Records are not sorted: input newest first yields runs newest first, and a
// month that reappears after another one starts a new run.
func SplitByMonth(records []git.CommitRecord) []MonthRun {
	var runs []MonthRun
	start := 0
	for i := 1; i <= len(records); i++ {
		if i < len(records) && records[i].Month() == records[start].Month() {
			continue
		}
		runs = append(runs, MonthRun{
			Month:   records[start].Month(),
			Records: records[start:i],
		})
		start = i
	}
	return runs
}

// CountByMonth returns the number of records per calendar month.
func CountByMonth(records []git.CommitRecord) map[time.Month]int {
	counts := make(map[time.Month]int)
	for _, r := range records {
		counts[r.Month()]++
	}
	return counts
}
