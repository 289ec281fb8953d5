// Package surf orchestrates the search and history flows end-to-end:
// resolve records, offer them through the selection menu, hand the pick to
// the action dispatcher, and record it in history.
package surf

import (
	"context"
	"errors"
	"fmt"

	"github.com/kapral18/ytsurf/internal/application/action"
	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/infrastructure/thumbs"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Service wires the selection pipeline. All dependencies are explicit.
type Service struct {
	Config     domain.Config
	Provider   ports.SearchProvider
	Cache      ports.CacheRepository
	History    ports.HistoryRepository
	Menu       ports.Menu
	Fetcher    ports.ThumbnailFetcher
	Renderer   ports.ThumbnailRenderer
	Dispatcher *action.Dispatcher
	Logger     ports.Logger
	ScratchDir string
}

// Run executes one invocation: history mode when configured, search mode
// otherwise.
func (s *Service) Run(ctx context.Context, query string) error {
	if s.Provider == nil || s.Cache == nil || s.History == nil ||
		s.Menu == nil || s.Dispatcher == nil || s.Logger == nil {
		return errors.New("surf.Service dependencies not satisfied")
	}
	if s.Config.HistoryView {
		return s.runHistory(ctx)
	}
	return s.runSearch(ctx, query)
}

func (s *Service) runSearch(ctx context.Context, query string) error {
	records, err := s.resolveRecords(ctx, query)
	if err != nil {
		return err
	}
	return s.selectAndDispatch(ctx, records, false)
}

func (s *Service) runHistory(ctx context.Context) error {
	records, err := s.History.List()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(records) == 0 {
		return domain.ErrNoHistory
	}
	return s.selectAndDispatch(ctx, records, true)
}

// resolveRecords serves the query from the cache when fresh, otherwise from
// a live fetch. Empty result sets are deliberately not cached: a transient
// provider hiccup should not poison the slot for the whole expiry window.
func (s *Service) resolveRecords(ctx context.Context, query string) ([]domain.VideoRecord, error) {
	if records, ok, err := s.Cache.Get(query); err == nil && ok {
		s.Logger.Debug("cache hit", map[string]interface{}{"query": query})
		return records, nil
	} else if err != nil {
		s.Logger.Warn("cache read failed, fetching live", map[string]interface{}{
			"error": err.Error(),
		})
	}

	records, err := s.Provider.Search(ctx, query, s.Config.Limit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoResults
	}
	if err := s.Cache.Put(query, records); err != nil {
		s.Logger.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return records, nil
}

func (s *Service) selectAndDispatch(ctx context.Context, records []domain.VideoRecord, historyBadge bool) error {
	opts := domain.MenuOptions{
		Prompt:       "ytsurf",
		HistoryBadge: historyBadge,
	}
	items := domain.MenuItems(records)

	if s.Menu.SupportsPreview() {
		opts.Preview = s.previewFunc(records)
	} else if supportsIcons(s.Menu) && s.Config.ShowThumbnails && s.Fetcher != nil && s.ScratchDir != "" {
		// Launcher-style menus get their icons up front; wait for the whole
		// batch before presenting.
		thumbs.Prefetch(ctx, s.Fetcher, s.ScratchDir, records, s.Logger)
		for i, rec := range records {
			if dest := thumbs.Dest(s.ScratchDir, rec.ID); fileExists(dest) {
				items[i].Icon = dest
			}
		}
	}

	idx, err := s.Menu.Pick(ctx, items, opts)
	if err != nil {
		return err
	}
	record := records[idx]

	if err := s.Dispatcher.Dispatch(ctx, record); err != nil {
		return err
	}
	if err := s.History.RecordSelection(record); err != nil {
		s.Logger.Warn("history update failed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// previewFunc builds the live preview callback: re-derive the record from
// the 1-based position and render its metadata plus, when possible, its
// thumbnail. Every failure path degrades to text; selection never aborts
// because a preview could not be drawn.
func (s *Service) previewFunc(records []domain.VideoRecord) domain.PreviewFunc {
	return func(position int) string {
		if position < 1 || position > len(records) {
			return "no preview"
		}
		rec := records[position-1]
		text := rec.PreviewText()
		if !s.Config.ShowThumbnails || s.Fetcher == nil || s.Renderer == nil ||
			rec.Thumbnail == "" || s.ScratchDir == "" {
			return text
		}

		dest := thumbs.Dest(s.ScratchDir, rec.ID)
		ctx, cancel := context.WithTimeout(context.Background(), thumbFetchBudget)
		defer cancel()
		if err := s.Fetcher.Fetch(ctx, rec.Thumbnail, dest); err != nil {
			s.Logger.Debug("thumbnail fetch failed", map[string]interface{}{
				"id": rec.ID, "error": err.Error(),
			})
			return text
		}
		image, err := s.Renderer.Render(dest)
		if err != nil {
			return text
		}
		return text + "\n" + image
	}
}
