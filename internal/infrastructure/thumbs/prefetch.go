package thumbs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

const prefetchConcurrency = 4

// Prefetch downloads thumbnails for a whole result set before a launcher
// menu is shown, waiting for all fetches to finish. Individual failures are
// tolerated; the menu simply shows no icon for that entry.
func Prefetch(ctx context.Context, fetcher ports.ThumbnailFetcher, dir string, records []domain.VideoRecord, log ports.Logger) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)
	for _, rec := range records {
		if rec.Thumbnail == "" {
			continue
		}
		rec := rec
		g.Go(func() error {
			if err := fetcher.Fetch(ctx, rec.Thumbnail, Dest(dir, rec.ID)); err != nil {
				log.Debug("thumbnail prefetch failed", map[string]interface{}{
					"id": rec.ID, "error": err.Error(),
				})
			}
			return nil
		})
	}
	_ = g.Wait()
}
