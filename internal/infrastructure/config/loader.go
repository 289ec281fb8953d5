package config

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kapral18/ytsurf/assets"
	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/pkg/filesystem"
	"github.com/kapral18/ytsurf/internal/ports"
)

// FileLoader loads key=value configuration from <config root>/config
// (overridable via YTSURF_CONFIG_DIR). Comment lines and blank lines are
// ignored, unknown keys are ignored, and invalid values fall back to their
// defaults with a warning. The result is an immutable domain.Config.
type FileLoader struct {
	overridePath string
	log          ports.Logger
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string, log ports.Logger) *FileLoader {
	return &FileLoader{overridePath: path, log: log}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg := Default()
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cfg, &domain.ResourceError{Path: filepath.Dir(path), Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if werr := os.WriteFile(path, assets.DefaultConfig, 0o644); werr != nil {
				l.log.Warn("could not write default config", map[string]interface{}{
					"path": path, "error": werr.Error(),
				})
			}
			return cfg, nil
		}
		return cfg, &domain.ResourceError{Path: path, Err: err}
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			l.warnKey("?", line, "not a key=value line")
			continue
		}
		l.apply(&cfg, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value))
	}
	return cfg, nil
}

// Default returns the built-in configuration before any file or flag is
// applied.
func Default() domain.Config {
	return domain.Config{
		Limit:          domain.DefaultLimit,
		Menu:           domain.MenuFzf,
		Mode:           domain.ModeWatch,
		ShowThumbnails: true,
		HistorySize:    domain.DefaultHistorySize,
		HistoryBackend: domain.HistoryFile,
		CacheDir:       filesystem.CacheRoot(),
		ConfigDir:      filesystem.ConfigRoot(),
		DownloadDir:    filesystem.DownloadRoot(),
		Player:         "mpv",
	}
}

func (l *FileLoader) apply(cfg *domain.Config, key, value string) {
	switch key {
	case "limit":
		if n, err := strconv.Atoi(value); err == nil && domain.ValidLimit(n) {
			cfg.Limit = n
		} else {
			l.warnKey(key, value, "allowed range 1-50, keeping default")
		}
	case "menu":
		switch domain.MenuBackend(value) {
		case domain.MenuFzf, domain.MenuRofi, domain.MenuPlain:
			cfg.Menu = domain.MenuBackend(value)
		default:
			l.warnKey(key, value, "expected fzf, rofi, or plain")
		}
	case "mode":
		switch domain.ActionMode(value) {
		case domain.ModeWatch, domain.ModeDownload, domain.ModeAsk:
			cfg.Mode = domain.ActionMode(value)
		default:
			l.warnKey(key, value, "expected watch, download, or ask")
		}
	case "show_thumbnails":
		if b, ok := parseBool(value); ok {
			cfg.ShowThumbnails = b
		} else {
			l.warnKey(key, value, "expected a boolean")
		}
	case "history_size":
		if n, err := strconv.Atoi(value); err == nil && domain.ValidHistorySize(n) {
			cfg.HistorySize = n
		} else {
			l.warnKey(key, value, "allowed range 1-1000, keeping default")
		}
	case "history_backend":
		switch domain.HistoryBackend(value) {
		case domain.HistoryFile, domain.HistorySQLite:
			cfg.HistoryBackend = domain.HistoryBackend(value)
		default:
			l.warnKey(key, value, "expected file or sqlite")
		}
	case "download_dir":
		if value != "" {
			cfg.DownloadDir = expandPath(value)
		}
	case "player":
		if value != "" {
			cfg.Player = value
		}
	case "player_args":
		cfg.PlayerArgs = strings.Fields(value)
	default:
		// Unknown keys are ignored so older configs keep loading.
	}
}

func (l *FileLoader) warnKey(key, value, detail string) {
	l.log.Warn("ignoring invalid config value", map[string]interface{}{
		"key": key, "value": value, "detail": detail,
	})
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	return filepath.Join(filesystem.ConfigRoot(), "config")
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
