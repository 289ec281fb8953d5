// Package provider adapts the external yt-dlp binary into the search,
// format-listing, and download ports.
package provider

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

const (
	// Binary is the search/extraction backend this provider shells out to.
	Binary = "yt-dlp"

	searchTimeout = 60 * time.Second
	watchBase     = "https://www.youtube.com/watch?v="
)

// YtDlp invokes yt-dlp for searching and format discovery. Empty results,
// process failure, and undecodable output are three distinct outcomes: the
// first maps to domain.ErrNoResults upstream, the latter two surface as
// ProviderError since there is no fallback data for a search.
type YtDlp struct {
	binary  string
	timeout time.Duration
	log     ports.Logger
}

// New builds a provider around the yt-dlp binary on PATH.
func New(log ports.Logger) *YtDlp {
	return &YtDlp{binary: Binary, timeout: searchTimeout, log: log}
}

// Search implements ports.SearchProvider. Records without an ID are rejected
// before they can be offered for selection.
func (y *YtDlp) Search(ctx context.Context, query string, limit int) ([]domain.VideoRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, y.binary,
		fmt.Sprintf("ytsearch%d:%s", limit, query),
		"--dump-json",
		"--flat-playlist",
		"--no-warnings",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &domain.ProviderError{
			Op:  "search",
			Err: fmt.Errorf("%w: %s", err, firstLine(stderr.String())),
		}
	}
	records, err := ParseSearchOutput(stdout.Bytes())
	if err != nil {
		return nil, &domain.ProviderError{Op: "search", Err: err}
	}
	return records, nil
}

// ListFormats implements ports.SearchProvider.
func (y *YtDlp) ListFormats(ctx context.Context, videoID string) ([]domain.Format, error) {
	ctx, cancel := context.WithTimeout(ctx, y.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, y.binary,
		"--dump-json",
		"--no-warnings",
		y.WatchURL(videoID),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &domain.ProviderError{
			Op:  "formats",
			Err: fmt.Errorf("%w: %s", err, firstLine(stderr.String())),
		}
	}
	formats, err := ParseFormats(stdout.Bytes())
	if err != nil {
		return nil, &domain.ProviderError{Op: "formats", Err: err}
	}
	return formats, nil
}

// WatchURL implements ports.SearchProvider.
func (y *YtDlp) WatchURL(videoID string) string {
	return watchBase + videoID
}

// searchEntry mirrors the subset of yt-dlp's flat-playlist JSON we consume.
type searchEntry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Uploader   string   `json:"uploader"`
	Channel    string   `json:"channel"`
	Duration   *float64 `json:"duration"`
	ViewCount  *int64   `json:"view_count"`
	UploadDate string   `json:"upload_date"`
	Thumbnails []struct {
		URL string `json:"url"`
	} `json:"thumbnails"`
}

// ParseSearchOutput decodes one JSON object per line into VideoRecords.
// Any undecodable line is terminal for the whole search.
func ParseSearchOutput(data []byte) ([]domain.VideoRecord, error) {
	var records []domain.VideoRecord
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 8*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e searchEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("malformed provider output: %w", err)
		}
		if e.ID == "" {
			continue
		}
		records = append(records, e.toRecord())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read provider output: %w", err)
	}
	return records, nil
}

func (e searchEntry) toRecord() domain.VideoRecord {
	author := e.Channel
	if author == "" {
		author = e.Uploader
	}
	rec := domain.VideoRecord{
		ID:        e.ID,
		Title:     e.Title,
		Author:    author,
		Published: formatUploadDate(e.UploadDate),
	}
	if e.Duration != nil {
		rec.Duration = formatDuration(int(*e.Duration))
	}
	if e.ViewCount != nil {
		rec.Views = humanize.Comma(*e.ViewCount) + " views"
	}
	if len(e.Thumbnails) > 0 {
		rec.Thumbnail = e.Thumbnails[len(e.Thumbnails)-1].URL
	}
	return rec
}

// videoInfo mirrors the format list of yt-dlp's full JSON dump.
type videoInfo struct {
	Formats []struct {
		FormatID   string `json:"format_id"`
		Height     int    `json:"height"`
		FormatNote string `json:"format_note"`
	} `json:"formats"`
}

// ParseFormats decodes the format list from a full video JSON dump.
func ParseFormats(data []byte) ([]domain.Format, error) {
	var info videoInfo
	if err := json.Unmarshal(bytes.TrimSpace(data), &info); err != nil {
		return nil, fmt.Errorf("malformed format listing: %w", err)
	}
	formats := make([]domain.Format, 0, len(info.Formats))
	for _, f := range info.Formats {
		formats = append(formats, domain.Format{
			ID:     f.FormatID,
			Height: f.Height,
			Note:   f.FormatNote,
		})
	}
	return formats, nil
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatUploadDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	if t, err := time.Parse("20060102", raw); err == nil {
		return t.Format("2006-01-02")
	}
	return raw
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

var _ ports.SearchProvider = (*YtDlp)(nil)
