// Package action decides what happens to a chosen record: stream or
// download, at which format, with a notification either way.
package action

import (
	"context"
	"fmt"
	"os"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Dispatcher composes two sequential choices — mode, then format — and
// invokes the player or downloader.
type Dispatcher struct {
	Config     domain.Config
	Provider   ports.SearchProvider
	Menu       ports.Menu
	Player     ports.Player
	Downloader ports.Downloader
	Notifier   ports.Notifier
	Logger     ports.Logger
}

// Dispatch runs the full action for a record. A cancelled prompt anywhere
// aborts the whole action with domain.ErrCancelled.
func (d *Dispatcher) Dispatch(ctx context.Context, record domain.VideoRecord) error {
	mode, err := d.resolveMode(ctx)
	if err != nil {
		return err
	}
	format, err := d.resolveFormat(ctx, record)
	if err != nil {
		return err
	}

	url := d.Provider.WatchURL(record.ID)
	if mode == domain.ModeDownload {
		if err := os.MkdirAll(d.Config.DownloadDir, 0o755); err != nil {
			return &domain.ResourceError{Path: d.Config.DownloadDir, Err: err}
		}
		d.Notifier.Notify("ytsurf", "Downloading: "+record.Title)
		return d.Downloader.Download(ctx, url, d.Config.DownloadDir, format, d.Config.AudioOnly)
	}
	d.Notifier.Notify("ytsurf", "Playing: "+record.Title)
	return d.Player.Play(ctx, url, format, d.Config.AudioOnly)
}

func (d *Dispatcher) resolveMode(ctx context.Context) (domain.ActionMode, error) {
	if d.Config.Mode != domain.ModeAsk {
		return d.Config.Mode, nil
	}
	items := []domain.MenuItem{
		{Index: 0, Display: "watch"},
		{Index: 1, Display: "download"},
	}
	idx, err := d.Menu.Pick(ctx, items, domain.MenuOptions{Prompt: "action"})
	if err != nil {
		return "", err
	}
	if idx == 1 {
		return domain.ModeDownload, nil
	}
	return domain.ModeWatch, nil
}

// resolveFormat determines the format code. Audio-only short-circuits to the
// fixed audio code without ever querying formats. An empty or failed format
// listing degrades to "best" without prompting.
func (d *Dispatcher) resolveFormat(ctx context.Context, record domain.VideoRecord) (string, error) {
	if d.Config.AudioOnly {
		return domain.FormatBestAudio, nil
	}
	if !d.Config.ChooseFormat {
		return domain.FormatBest, nil
	}

	formats, err := d.Provider.ListFormats(ctx, record.ID)
	if err != nil {
		d.Logger.Warn("format listing failed, using best", map[string]interface{}{
			"id": record.ID, "error": err.Error(),
		})
		return domain.FormatBest, nil
	}
	tiers := domain.ResolutionTiers(formats)
	if len(tiers) == 0 {
		return domain.FormatBest, nil
	}

	items := make([]domain.MenuItem, 0, len(tiers)+2)
	for i, h := range tiers {
		items = append(items, domain.MenuItem{Index: i, Display: fmt.Sprintf("%dp", h)})
	}
	items = append(items,
		domain.MenuItem{Index: len(tiers), Display: domain.FormatBest},
		domain.MenuItem{Index: len(tiers) + 1, Display: domain.FormatBestAudio},
	)

	idx, err := d.Menu.Pick(ctx, items, domain.MenuOptions{Prompt: "format"})
	if err != nil {
		return "", err
	}
	switch idx {
	case len(tiers):
		return domain.FormatBest, nil
	case len(tiers) + 1:
		return domain.FormatBestAudio, nil
	default:
		return domain.FormatForHeight(tiers[idx]), nil
	}
}
