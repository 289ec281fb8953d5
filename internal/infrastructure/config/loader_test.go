package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/pkg/logger"
)

func loadFrom(t *testing.T, content string) domain.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewFileLoader(path, logger.NewStd(false)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func TestOutOfRangeLimitFallsBackToDefault(t *testing.T) {
	cfg := loadFrom(t, "limit=9999\n")
	if cfg.Limit != domain.DefaultLimit {
		t.Fatalf("Limit = %d, want default %d", cfg.Limit, domain.DefaultLimit)
	}
}

func TestValidValuesApply(t *testing.T) {
	cfg := loadFrom(t, `
limit=25
menu=rofi
mode=download
show_thumbnails=no
history_size=5
history_backend=sqlite
player=vlc
player_args=--fullscreen --loop
`)
	if cfg.Limit != 25 {
		t.Errorf("Limit = %d, want 25", cfg.Limit)
	}
	if cfg.Menu != domain.MenuRofi {
		t.Errorf("Menu = %q, want rofi", cfg.Menu)
	}
	if cfg.Mode != domain.ModeDownload {
		t.Errorf("Mode = %q, want download", cfg.Mode)
	}
	if cfg.ShowThumbnails {
		t.Error("ShowThumbnails = true, want false")
	}
	if cfg.HistorySize != 5 {
		t.Errorf("HistorySize = %d, want 5", cfg.HistorySize)
	}
	if cfg.HistoryBackend != domain.HistorySQLite {
		t.Errorf("HistoryBackend = %q, want sqlite", cfg.HistoryBackend)
	}
	if cfg.Player != "vlc" {
		t.Errorf("Player = %q, want vlc", cfg.Player)
	}
	if len(cfg.PlayerArgs) != 2 || cfg.PlayerArgs[0] != "--fullscreen" {
		t.Errorf("PlayerArgs = %v", cfg.PlayerArgs)
	}
}

func TestCommentsBlanksAndUnknownKeysIgnored(t *testing.T) {
	cfg := loadFrom(t, `
# a comment
   # an indented comment

totally_unknown_key=whatever
limit=30
`)
	if cfg.Limit != 30 {
		t.Fatalf("Limit = %d, want 30", cfg.Limit)
	}
}

func TestInvalidValuesWarnAndKeepDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(domain.Config) bool
	}{
		{"non-numeric limit", "limit=lots\n", func(c domain.Config) bool { return c.Limit == domain.DefaultLimit }},
		{"unknown menu", "menu=dmenu2\n", func(c domain.Config) bool { return c.Menu == domain.MenuFzf }},
		{"unknown mode", "mode=maybe\n", func(c domain.Config) bool { return c.Mode == domain.ModeWatch }},
		{"bad bool", "show_thumbnails=sure\n", func(c domain.Config) bool { return c.ShowThumbnails }},
		{"history size range", "history_size=0\n", func(c domain.Config) bool { return c.HistorySize == domain.DefaultHistorySize }},
		{"bad backend", "history_backend=postgres\n", func(c domain.Config) bool { return c.HistoryBackend == domain.HistoryFile }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cfg := loadFrom(t, tt.content); !tt.check(cfg) {
				t.Fatalf("default was not kept for %s: %+v", tt.name, cfg)
			}
		})
	}
}

func TestMissingFileWritesDefaultAndReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	cfg, err := NewFileLoader(path, logger.NewStd(false)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Limit != domain.DefaultLimit || cfg.Menu != domain.MenuFzf {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}
