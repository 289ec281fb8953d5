// Package player invokes the external media player for streaming.
package player

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/kapral18/ytsurf/internal/ports"
)

// MPV streams URLs through an mpv-compatible player. Playback blocks until
// the user closes the player; duration is user-controlled.
type MPV struct {
	binary    string
	extraArgs []string
	log       ports.Logger
}

// New builds a player around the configured binary (mpv by default).
func New(binary string, extraArgs []string, log ports.Logger) *MPV {
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{binary: binary, extraArgs: extraArgs, log: log}
}

// Binary returns the player executable name for dependency checks.
func (p *MPV) Binary() string {
	return p.binary
}

// Play implements ports.Player.
func (p *MPV) Play(ctx context.Context, url string, format string, audioOnly bool) error {
	var args []string
	if audioOnly {
		args = append(args, "--no-video")
	}
	if format != "" && format != "best" {
		args = append(args, "--ytdl-format="+format)
	}
	args = append(args, p.extraArgs...)
	args = append(args, url)

	p.log.Debug("starting playback", map[string]interface{}{
		"player": p.binary, "url": url,
	})
	cmd := exec.CommandContext(ctx, p.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

var _ ports.Player = (*MPV)(nil)
