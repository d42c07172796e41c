package git

import (
	"strings"
	"testing"
	"time"
)

func TestParseLog_TrailingBlockDropped(t *testing.T) {
	text := "commit abc123\nAuthor: x\nDate: XXX, 05 Jun 2024 10:00:00 +0000\n    Fix bug\n" +
		"commit def456\nAuthor: y\nDate: XXX, 01 Jul 2024 09:00:00 +0000\n    Add feature\n"

	records := ParseLog(text, ParseOptions{})

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	rec := records[0]
	if rec.ID != "abc123" {
		t.Errorf("ID = %q, expected %q", rec.ID, "abc123")
	}
	if rec.Message != "    Fix bug" {
		t.Errorf("Message = %q, expected %q", rec.Message, "    Fix bug")
	}
	if rec.Month() != time.June {
		t.Errorf("Month = %v, expected June", rec.Month())
	}
	want := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	if !rec.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, expected %v", rec.Timestamp, want)
	}
}

func TestParseLog_FlushTrailing(t *testing.T) {
	text := "commit abc123\nAuthor: x\nDate: XXX, 05 Jun 2024 10:00:00 +0000\n    Fix bug\n" +
		"commit def456\nAuthor: y\nDate: XXX, 01 Jul 2024 09:00:00 +0000\n    Add feature\n"

	records := ParseLog(text, ParseOptions{FlushTrailing: true})

	if len(records) != 2 {
		t.Fatalf("records = %d, expected 2", len(records))
	}
	if records[1].ID != "def456" || records[1].Month() != time.July {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestParseLog_RealGitLayout(t *testing.T) {
	text := `commit 1111111111111111111111111111111111111111
Author: Jane Doe <jane@example.com>
Date:   Tue, 3 Sep 2024 17:45:12 +0200

    Subject line

    Body line
commit 2222222222222222222222222222222222222222
Author: Jane Doe <jane@example.com>
Date:   Mon, 2 Sep 2024 08:00:00 -0500

    Older change

`
	records := ParseLog(text, ParseOptions{})

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	rec := records[0]
	if rec.ID != "1111111111111111111111111111111111111111" {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.Message != "    Subject line    Body line" {
		t.Errorf("Message = %q", rec.Message)
	}
	_, offset := rec.Timestamp.Zone()
	if offset != 2*60*60 {
		t.Errorf("offset = %d, expected +0200", offset)
	}
	if rec.Timestamp.Day() != 3 || rec.Timestamp.Hour() != 17 {
		t.Errorf("Timestamp = %v, expected local 3 Sep 17:45", rec.Timestamp)
	}
}

func TestParseLog_MalformedDateDropped(t *testing.T) {
	text := "commit aaa\nAuthor: x\nDate: not a date\n    broken\n" +
		"commit bbb\nAuthor: x\nDate: Wed, 05 Jun 2024 10:00:00 +0000\n    ok\n" +
		"commit ccc\n"

	records := ParseLog(text, ParseOptions{})

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	if records[0].ID != "bbb" {
		t.Errorf("ID = %q, expected bbb", records[0].ID)
	}
}

func TestParseLog_MergeCommitDropped(t *testing.T) {
	// The Merge: header shifts the date line out of position.
	text := "commit mmm\nMerge: aaa bbb\nAuthor: x\nDate:   Wed, 5 Jun 2024 10:00:00 +0000\n    Merge branch\n" +
		"commit nnn\n"

	if records := ParseLog(text, ParseOptions{}); len(records) != 0 {
		t.Fatalf("records = %d, expected 0", len(records))
	}
}

func TestParseLog_Empty(t *testing.T) {
	for _, opts := range []ParseOptions{{}, {FlushTrailing: true}} {
		if records := ParseLog("", opts); len(records) != 0 {
			t.Errorf("ParseLog(\"\", %+v) = %d records, expected 0", opts, len(records))
		}
	}
}

func TestParseLogDate(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    time.Time
		wantErr bool
	}{
		{name: "GitRFC", line: "Date:   Wed, 5 Jun 2024 10:00:00 +0000", want: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)},
		{name: "PaddedDay", line: "Date: Wed, 05 Jun 2024 10:00:00 +0000", want: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)},
		{name: "NoWeekday", line: "Date:   5 Jun 2024 10:00:00 +0000", want: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)},
		{name: "NoSeconds", line: "Date: Wed, 5 Jun 2024 10:00 +0000", want: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)},
		{name: "Offset", line: "Date: Wed, 5 Jun 2024 23:30:00 -0130", want: time.Date(2024, 6, 6, 1, 0, 0, 0, time.UTC)},
		{name: "Garbage", line: "Date: yesterday", wantErr: true},
		{name: "Empty", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLogDate(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("parseLogDate(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLog_VeryLongMessageLine(t *testing.T) {
	long := MessageIndent + strings.Repeat("x", 17*1024*1024)
	text := "commit aaa\nAuthor: x\nDate: Wed, 05 Jun 2024 10:00:00 +0000\n" + long + "\n" +
		"commit bbb\nAuthor: x\nDate: Tue, 04 Jun 2024 10:00:00 +0000\n    second\n" +
		"commit ccc\nAuthor: x\nDate: Mon, 03 Jun 2024 10:00:00 +0000\n    third\n" +
		"commit ddd\nAuthor: x\nDate: Sun, 02 Jun 2024 10:00:00 +0000\n    trailing\n"

	records := ParseLog(text, ParseOptions{})

	if len(records) != 3 {
		t.Fatalf("records = %d, expected 3", len(records))
	}
	for i, id := range []string{"aaa", "bbb", "ccc"} {
		if records[i].ID != id {
			t.Errorf("records[%d].ID = %q, expected %q", i, records[i].ID, id)
		}
	}
	if len(records[0].Message) != len(long) {
		t.Errorf("records[0].Message length = %d, expected %d", len(records[0].Message), len(long))
	}
}

func TestParseLog_CRLF(t *testing.T) {
	text := "commit aaa\r\nAuthor: x\r\nDate: Wed, 05 Jun 2024 10:00:00 +0000\r\n    one\r\ncommit bbb\r\n"

	records := ParseLog(text, ParseOptions{})

	if len(records) != 1 || records[0].ID != "aaa" || records[0].Message != "    one" {
		t.Fatalf("records = %+v", records)
	}
}
