// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application layer depends on these
// abstractions only; concrete implementations — the yt-dlp provider, the menu
// front-ends, the file-backed stores — live in the infrastructure layer and
// are wired together by the container.
package ports

import (
	"context"

	"github.com/kapral18/ytsurf/internal/domain"
)

// ConfigProvider loads the finalized configuration from persistent storage.
// Implementations typically read a key=value file under the config root.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SearchProvider is the boundary to the external search/extraction backend.
// Search returns ordered records for a query; records without an ID have
// already been rejected. ListFormats enumerates playable variants for one
// video so the dispatcher can offer resolution tiers.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.VideoRecord, error)
	ListFormats(ctx context.Context, videoID string) ([]domain.Format, error)
	WatchURL(videoID string) string
}

// Menu presents an ordered list and reports the chosen positional index.
// A cancelled selection surfaces as domain.ErrCancelled, distinct from both
// "no results" and hard errors. SupportsPreview tells callers whether wiring
// a preview callback is worthwhile.
type Menu interface {
	Pick(ctx context.Context, items []domain.MenuItem, opts domain.MenuOptions) (int, error)
	SupportsPreview() bool
}

// CacheRepository is the content-addressed, time-expiring search-result
// store. Get returns ok=false on a miss, an expired entry, or a corrupted
// entry; corruption is never fatal.
type CacheRepository interface {
	Get(query string) ([]domain.VideoRecord, bool, error)
	Put(query string, records []domain.VideoRecord) error
	Clear() error
	Dir() string
}

// HistoryRepository is the bounded, deduplicated, most-recent-first log of
// selected records. RecordSelection performs insert-or-promote-to-front and
// truncates to capacity in one atomic replacement.
type HistoryRepository interface {
	RecordSelection(record domain.VideoRecord) error
	List() ([]domain.VideoRecord, error)
	Clear() error
}

// Player streams a URL in the external media player. The call blocks for the
// duration of playback; there is no imposed timeout.
type Player interface {
	Play(ctx context.Context, url string, format string, audioOnly bool) error
}

// Downloader saves a URL into a destination directory that is guaranteed to
// exist by the caller.
type Downloader interface {
	Download(ctx context.Context, url, destDir, format string, audioOnly bool) error
}

// Notifier emits a user-facing notification, preferring the desktop notifier
// and degrading to a terminal banner.
type Notifier interface {
	Notify(title, body string)
}

// ThumbnailFetcher downloads a thumbnail to a destination path, tolerating
// concurrent fetches of the same destination via an advisory lock marker.
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// ThumbnailRenderer paints a downloaded image for terminal display and
// returns the rendered text.
type ThumbnailRenderer interface {
	Render(path string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external
// services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
