package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/masmgr/raport-go/internal/aggregation"
	"github.com/masmgr/raport-go/internal/git"
)

const (
	filePrefix    = "raport_"
	fileExtension = ".txt"

	// entryDateLayout renders timestamps in the commit's own offset,
	// e.g. "2024-06-05 10:00:00 +02:00".
	entryDateLayout = "2006-01-02 15:04:05 -07:00"
)

// FileName returns the monthly report file name, e.g. "raport_6_2024.txt".
func FileName(year int, month time.Month) string {
	return filePrefix + strconv.Itoa(int(month)) + "_" + strconv.Itoa(year) + fileExtension
}

// MonthlyWriter appends commit entries to per-month report files in Dir.
type MonthlyWriter struct {
	Dir  string
	Year int
}

// NewMonthlyWriter creates a writer for the given output directory and year.
func NewMonthlyWriter(dir string, year int) *MonthlyWriter {
	return &MonthlyWriter{Dir: dir, Year: year}
}

// WriteResult summarizes one repository's contribution to the reports.
type WriteResult struct {
	Files   []string // In the order they were written to
	Entries int
}

// Path returns the report file path for month.
func (w *MonthlyWriter) Path(month time.Month) string {
	return filepath.Join(w.Dir, FileName(w.Year, month))
}

// Write appends records to the monthly files, opening a new file and
// writing a repository header whenever the month changes. Files are
// created when absent and never truncated. No records means no file is touched.
func (w *MonthlyWriter) Write(records []git.CommitRecord, remoteURL string) (WriteResult, error) {
	var result WriteResult
	for _, run := range aggregation.SplitByMonth(records) {
		path := w.Path(run.Month)
		if err := appendRun(path, remoteURL, run.Records); err != nil {
			return result, fmt.Errorf("write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
		result.Entries += len(run.Records)
	}
	return result, nil
}

func appendRun(path, remoteURL string, records []git.CommitRecord) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	writeHeader(bw, remoteURL)
	for _, r := range records {
		writeEntry(bw, remoteURL, r)
	}
	return bw.Flush()
}

func writeHeader(bw *bufio.Writer, remoteURL string) {
	bw.WriteString("Repository: ")
	bw.WriteString(remoteURL)
	bw.WriteString("\n\n\n")
}

func writeEntry(bw *bufio.Writer, remoteURL string, r git.CommitRecord) {
	bw.WriteString("Date: ")
	bw.WriteString(r.Timestamp.Format(entryDateLayout))
	bw.WriteString("\n")
	bw.WriteString(remoteURL)
	bw.WriteString("/")
	bw.WriteString(r.ID)
	bw.WriteString("\n")
	bw.WriteString("Message: ")
	bw.WriteString(strings.TrimPrefix(r.Message, git.MessageIndent))
	bw.WriteString("\n\n")
}
