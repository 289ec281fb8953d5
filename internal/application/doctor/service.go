// Package doctor runs environment diagnostics: external tool presence and
// writability of the persisted roots.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/infrastructure/menu"
	"github.com/kapral18/ytsurf/internal/infrastructure/provider"
	"github.com/kapral18/ytsurf/internal/infrastructure/thumbs"
)

// Service runs environment diagnostics.
type Service struct {
	Config domain.Config
}

// RequiredTools lists the external programs this invocation cannot run
// without: the search backend, the player (or downloader — same binary as
// the provider), and the configured menu front-end.
func RequiredTools(cfg domain.Config) []string {
	tools := []string{provider.Binary}
	if cfg.Mode != domain.ModeDownload {
		tools = append(tools, cfg.Player)
	}
	if bin := menu.Binary(cfg.Menu); bin != "" {
		tools = append(tools, bin)
	}
	return tools
}

// EnsureTools verifies the required tools eagerly, before any network or
// filesystem work. Menu binaries are exempt: a missing selector falls back
// down the backend chain instead of failing the run.
func EnsureTools(cfg domain.Config) error {
	tools := []string{provider.Binary}
	if cfg.Mode != domain.ModeDownload {
		tools = append(tools, cfg.Player)
	}
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			return &domain.ToolMissingError{Tool: tool}
		}
	}
	return nil
}

// Run executes all checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	for _, tool := range RequiredTools(s.Config) {
		if _, err := exec.LookPath(tool); err != nil {
			checks = append(checks, fail(tool, "not found in PATH"))
		} else {
			checks = append(checks, ok(tool, "found"))
		}
	}
	for _, tool := range []string{thumbs.RendererBinary, "notify-send"} {
		if _, err := exec.LookPath(tool); err != nil {
			checks = append(checks, warn(tool, "not found (optional)"))
		} else {
			checks = append(checks, ok(tool, "found"))
		}
	}

	checks = append(checks, writableCheck("cache dir", s.Config.CacheDir))
	checks = append(checks, writableCheck("config dir", s.Config.ConfigDir))

	return domain.HealthReport{Checks: checks}, nil
}

func writableCheck(name, dir string) domain.HealthCheck {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(name, fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fail(name, fmt.Sprintf("cannot write in %s: %v", dir, err))
	}
	_ = os.Remove(probe)
	return ok(name, dir)
}

func ok(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Detail: detail}
}

func warn(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Detail: detail}
}

func fail(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Detail: detail}
}
