package thumbs

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/kapral18/ytsurf/internal/ports"
)

// RendererBinary is the external program that paints images into the
// terminal.
const RendererBinary = "chafa"

// Chafa renders an image file to ANSI text via the chafa binary. A missing
// renderer degrades to an error the preview turns into plain text.
type Chafa struct {
	binary string
	size   string
}

// NewRenderer builds a renderer constrained to the given character cell size.
func NewRenderer(cols, rows int) *Chafa {
	return &Chafa{binary: RendererBinary, size: fmt.Sprintf("%dx%d", cols, rows)}
}

// Render implements ports.ThumbnailRenderer.
func (c *Chafa) Render(path string) (string, error) {
	bin, err := exec.LookPath(c.binary)
	if err != nil {
		return "", fmt.Errorf("renderer unavailable: %w", err)
	}
	var out bytes.Buffer
	cmd := exec.Command(bin, "--size", c.size, path)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return out.String(), nil
}

var _ ports.ThumbnailRenderer = (*Chafa)(nil)
