// Package thumbs downloads and renders video thumbnails for menu previews.
//
// Fuzzy-finder front-ends re-invoke the preview callback as the highlight
// moves, so the same thumbnail can be requested several times at once, also
// from a second tool instance. Fetch coordinates those racers with an
// advisory lock marker next to the destination file.
package thumbs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kapral18/ytsurf/internal/ports"
)

const (
	lockSuffix   = ".lock"
	lockWait     = 3 * time.Second
	pollInterval = 50 * time.Millisecond
	fetchTimeout = 5 * time.Second
)

// Fetcher performs idempotent, lock-coordinated thumbnail downloads.
type Fetcher struct {
	client *http.Client
	// lockWait bounds how long a caller polls for a competing download.
	lockWait time.Duration
	poll     time.Duration
}

// NewFetcher builds a fetcher with a bounded HTTP timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: fetchTimeout},
		lockWait: lockWait,
		poll:     pollInterval,
	}
}

// Fetch implements ports.ThumbnailFetcher.
//
// If dest already exists and is non-empty the download is skipped entirely.
// If another fetch holds the lock marker, Fetch polls until the marker goes
// away (bounded) and re-checks dest. Otherwise it takes the marker, fetches,
// and removes the marker on both success and failure; a failed fetch also
// removes any partial output.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if fileNonEmpty(dest) {
		return nil
	}
	lock := dest + lockSuffix

	for {
		fh, err := os.OpenFile(lock, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			fh.Close()
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		if err := f.awaitLock(ctx, lock); err != nil {
			return err
		}
		if fileNonEmpty(dest) {
			return nil
		}
		// Lock released but no file: the other fetch failed, take our turn.
	}
	defer os.Remove(lock)

	if err := f.download(ctx, url, dest); err != nil {
		_ = os.Remove(dest)
		return err
	}
	return nil
}

// Dest maps a video ID to its thumbnail path inside dir.
func Dest(dir, videoID string) string {
	return filepath.Join(dir, videoID+".jpg")
}

func (f *Fetcher) awaitLock(ctx context.Context, lock string) error {
	deadline := time.Now().Add(f.lockWait)
	for {
		if _, err := os.Stat(lock); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for %s", lock)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.poll):
		}
	}
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("thumbnail fetch: unexpected status %s", resp.Status)
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fileNonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

var _ ports.ThumbnailFetcher = (*Fetcher)(nil)
