package domain

import (
	"fmt"
	"strings"
	"time"
)

// VideoRecord is one unit of searchable or previously played media metadata.
// ID is the stable identifier used for deduplication in history and as the
// thumbnail cache key. Display fields are pre-formatted strings; the provider
// is responsible for turning raw counts and durations into them.
type VideoRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Duration  string    `json:"duration"`
	Views     string    `json:"views"`
	Published string    `json:"published"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	AddedAt   time.Time `json:"addedAt,omitzero"`
}

// DisplayLine renders the one-line menu representation of a record.
func (v VideoRecord) DisplayLine() string {
	parts := []string{truncate(v.Title, 70)}
	if v.Author != "" {
		parts = append(parts, v.Author)
	}
	if v.Duration != "" {
		parts = append(parts, v.Duration)
	}
	return strings.Join(parts, " | ")
}

// PreviewText renders the multi-line metadata block shown next to a
// highlighted record.
func (v VideoRecord) PreviewText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Title)
	if v.Author != "" {
		fmt.Fprintf(&b, "Channel:   %s\n", v.Author)
	}
	if v.Duration != "" {
		fmt.Fprintf(&b, "Duration:  %s\n", v.Duration)
	}
	if v.Views != "" {
		fmt.Fprintf(&b, "Views:     %s\n", v.Views)
	}
	if v.Published != "" {
		fmt.Fprintf(&b, "Published: %s\n", v.Published)
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
