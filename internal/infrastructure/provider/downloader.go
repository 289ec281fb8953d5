package provider

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kapral18/ytsurf/internal/ports"
)

const outputTemplate = "%(title)s [%(id)s].%(ext)s"

// Downloader saves videos through yt-dlp. Progress output streams straight
// to the terminal; the call blocks until the download finishes and has no
// imposed timeout.
type Downloader struct {
	binary string
	log    ports.Logger
}

// NewDownloader builds a downloader around the yt-dlp binary on PATH.
func NewDownloader(log ports.Logger) *Downloader {
	return &Downloader{binary: Binary, log: log}
}

// Download implements ports.Downloader. The caller guarantees destDir exists.
func (d *Downloader) Download(ctx context.Context, url, destDir, format string, audioOnly bool) error {
	args := []string{
		"--no-warnings",
		"--output", filepath.Join(destDir, outputTemplate),
	}
	if format != "" {
		args = append(args, "--format", format)
	}
	if audioOnly {
		args = append(args, "--extract-audio")
	}
	args = append(args, url)

	d.log.Debug("starting download", map[string]interface{}{
		"url": url, "dir": destDir, "format": format,
	})
	cmd := exec.CommandContext(ctx, d.binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}

var _ ports.Downloader = (*Downloader)(nil)
