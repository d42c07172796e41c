package git

import (
	"strings"
	"time"
)

// Prefixes of the default `git log --date=rfc` layout:
//
//	commit <id>
//	Author: <name> <email>
//	Date:   Wed, 5 Jun 2024 10:00:00 +0000
//	<message lines, indented by four spaces>
const (
	commitKeyword = "commit"
	commitPrefix  = "commit "
	dateLabel     = "Date:"

	// MessageIndent is the indentation git puts in front of each message line.
	MessageIndent = "    "
)

const (
	linePosID = iota
	linePosIgnored
	linePosDate
)

// rfc2822Layouts are tried in order once the weekday token has been removed.
var rfc2822Layouts = []string{
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 MST",
}

// ParseOptions controls ParseLog.
type ParseOptions struct {
	// FlushTrailing emits the final block at end of input. By default a block
	// is only finalized when the next commit line arrives, so the last one is lost.
	FlushTrailing bool
}

type pendingCommit struct {
	idLine   string
	dateLine string
	message  strings.Builder
}

// finalize turns the accumulated block into a record. ok is false when the
// date line does not parse.
func (p *pendingCommit) finalize() (CommitRecord, bool) {
	when, err := parseLogDate(p.dateLine)
	if err != nil {
		return CommitRecord{}, false
	}
	return CommitRecord{
		ID:        strings.TrimSpace(strings.TrimPrefix(p.idLine, commitPrefix)),
		Timestamp: when,
		Message:   p.message.String(),
	}, true
}

// ParseLog converts the stdout of one `git log` invocation into records, in
// the order git printed them (newest first).
func ParseLog(text string, opts ParseOptions) []CommitRecord {
	var (
		records []CommitRecord
		pending pendingCommit
		pos     int
		first   = true
	)

	if text == "" {
		return nil
	}

	// Lines have no length limit; a message line may be arbitrarily long.
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, commitKeyword) {
			pos = 0
			if !first {
				if rec, ok := pending.finalize(); ok {
					records = append(records, rec)
				}
				pending.message.Reset()
			}
			first = false
		}

		switch pos {
		case linePosID:
			pending.idLine = line
		case linePosIgnored:
		case linePosDate:
			pending.dateLine = line
		default:
			pending.message.WriteString(line)
		}
		pos++
	}

	if opts.FlushTrailing && !first {
		if rec, ok := pending.finalize(); ok {
			records = append(records, rec)
		}
	}

	return records
}

// parseLogDate parses a "Date:" line in RFC 2822 form. The leading weekday is
// optional and not checked against the date.
func parseLogDate(line string) (time.Time, error) {
	value := strings.TrimSpace(strings.TrimPrefix(line, dateLabel))
	if idx := strings.IndexByte(value, ','); idx != -1 {
		value = strings.TrimSpace(value[idx+1:])
	}

	var err error
	for _, layout := range rfc2822Layouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
