package app

import (
	"context"

	"github.com/kapral18/ytsurf/internal/application/action"
	"github.com/kapral18/ytsurf/internal/application/doctor"
	"github.com/kapral18/ytsurf/internal/application/surf"
	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/infrastructure/cache"
	"github.com/kapral18/ytsurf/internal/infrastructure/config"
	"github.com/kapral18/ytsurf/internal/infrastructure/history"
	"github.com/kapral18/ytsurf/internal/infrastructure/menu"
	"github.com/kapral18/ytsurf/internal/infrastructure/notify"
	"github.com/kapral18/ytsurf/internal/infrastructure/player"
	"github.com/kapral18/ytsurf/internal/infrastructure/provider"
	"github.com/kapral18/ytsurf/internal/infrastructure/thumbs"
	"github.com/kapral18/ytsurf/internal/pkg/logger"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Container wires application services with infrastructure adapters. The
// base configuration comes from the file loader; flag overrides are applied
// by the CLI before the per-run services are built.
type Container struct {
	ConfigLoader *config.FileLoader
	FileConfig   domain.Config
	Logger       ports.Logger
}

// BuildContainer loads the configuration file and prepares shared adapters.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	loader := config.NewFileLoader("", log)
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Container{
		ConfigLoader: loader,
		FileConfig:   cfg,
		Logger:       log,
	}, nil
}

// HistoryStore builds the history backend the configuration selects.
func (c *Container) HistoryStore(cfg domain.Config) ports.HistoryRepository {
	if cfg.HistoryBackend == domain.HistorySQLite {
		return history.NewSQLiteStore(cfg.CacheDir, cfg.HistorySize, c.Logger)
	}
	return history.NewFileStore(cfg.CacheDir, cfg.HistorySize, c.Logger)
}

// CacheStore builds the search-result cache.
func (c *Container) CacheStore(cfg domain.Config) ports.CacheRepository {
	return cache.NewFileCache(cfg.CacheDir)
}

// DoctorService builds the diagnostics service.
func (c *Container) DoctorService(cfg domain.Config) *doctor.Service {
	return &doctor.Service{Config: cfg}
}

// SurfService builds the full selection pipeline for one invocation.
// scratchDir hosts thumbnails and menu plumbing and is removed by the caller.
func (c *Container) SurfService(cfg domain.Config, scratchDir string) *surf.Service {
	prov := provider.New(c.Logger)
	m := menu.ForConfig(cfg, scratchDir, c.Logger)

	dispatcher := &action.Dispatcher{
		Config:     cfg,
		Provider:   prov,
		Menu:       m,
		Player:     player.New(cfg.Player, cfg.PlayerArgs, c.Logger),
		Downloader: provider.NewDownloader(c.Logger),
		Notifier:   notify.New(nil),
		Logger:     c.Logger,
	}

	return &surf.Service{
		Config:     cfg,
		Provider:   prov,
		Cache:      c.CacheStore(cfg),
		History:    c.HistoryStore(cfg),
		Menu:       m,
		Fetcher:    thumbs.NewFetcher(),
		Renderer:   thumbs.NewRenderer(60, 20),
		Dispatcher: dispatcher,
		Logger:     c.Logger,
		ScratchDir: scratchDir,
	}
}
