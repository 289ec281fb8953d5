package provider

import (
	"strings"
	"testing"
)

const searchFixture = `{"id":"abc123","title":"Go in 100 Seconds","channel":"Fireship","duration":128.0,"view_count":1234567,"thumbnails":[{"url":"https://i.example/lo.jpg"},{"url":"https://i.example/hi.jpg"}]}
{"id":"def456","title":"Untitled","uploader":"someone","duration":3671.0}
`

func TestParseSearchOutput(t *testing.T) {
	records, err := ParseSearchOutput([]byte(searchFixture))
	if err != nil {
		t.Fatalf("ParseSearchOutput() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.ID != "abc123" || first.Title != "Go in 100 Seconds" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Author != "Fireship" {
		t.Errorf("Author = %q, want channel name", first.Author)
	}
	if first.Duration != "2:08" {
		t.Errorf("Duration = %q, want 2:08", first.Duration)
	}
	if first.Views != "1,234,567 views" {
		t.Errorf("Views = %q", first.Views)
	}
	if first.Thumbnail != "https://i.example/hi.jpg" {
		t.Errorf("Thumbnail = %q, want the largest variant", first.Thumbnail)
	}

	if records[1].Author != "someone" {
		t.Errorf("uploader fallback failed: %+v", records[1])
	}
	if records[1].Duration != "1:01:11" {
		t.Errorf("Duration = %q, want 1:01:11", records[1].Duration)
	}
}

func TestParseSearchOutputRejectsRecordsWithoutID(t *testing.T) {
	input := `{"title":"no id here"}` + "\n" + `{"id":"keep","title":"kept"}` + "\n"
	records, err := ParseSearchOutput([]byte(input))
	if err != nil {
		t.Fatalf("ParseSearchOutput() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "keep" {
		t.Fatalf("got %+v, want only the record with an ID", records)
	}
}

func TestParseSearchOutputMalformedLineIsTerminal(t *testing.T) {
	input := `{"id":"ok","title":"fine"}` + "\n" + `{"id": truncated...` + "\n"
	if _, err := ParseSearchOutput([]byte(input)); err == nil {
		t.Fatal("expected an error for undecodable provider output")
	}
}

func TestParseSearchOutputEmpty(t *testing.T) {
	records, err := ParseSearchOutput([]byte("\n\n"))
	if err != nil {
		t.Fatalf("ParseSearchOutput() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestParseFormats(t *testing.T) {
	input := `{"formats":[
		{"format_id":"18","height":360,"format_note":"360p"},
		{"format_id":"22","height":720,"format_note":"720p"},
		{"format_id":"ba","height":0,"format_note":"audio only"}
	]}`
	formats, err := ParseFormats([]byte(input))
	if err != nil {
		t.Fatalf("ParseFormats() error = %v", err)
	}
	if len(formats) != 3 {
		t.Fatalf("got %d formats, want 3", len(formats))
	}
	if formats[1].Height != 720 || formats[1].ID != "22" {
		t.Fatalf("unexpected format: %+v", formats[1])
	}
}

func TestParseFormatsMalformed(t *testing.T) {
	if _, err := ParseFormats([]byte("not json at all")); err == nil {
		t.Fatal("expected an error for undecodable format listing")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, ""},
		{59, "0:59"},
		{61, "1:01"},
		{3600, "1:00:00"},
		{3671, "1:01:11"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatUploadDate(t *testing.T) {
	if got := formatUploadDate("20250102"); got != "2025-01-02" {
		t.Errorf("formatUploadDate = %q", got)
	}
	if got := formatUploadDate("2 days ago"); got != "2 days ago" {
		t.Errorf("non-date strings must pass through, got %q", got)
	}
}

func TestWatchURL(t *testing.T) {
	y := New(nil)
	if got := y.WatchURL("abc123"); !strings.HasSuffix(got, "watch?v=abc123") {
		t.Fatalf("WatchURL = %q", got)
	}
}
