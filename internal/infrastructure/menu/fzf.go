package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Fzf streams the display list to the external fuzzy finder. Each line is
// prefixed with its 1-based position in a hidden first field, so the chosen
// record is recovered from that field and never from the display text.
type Fzf struct {
	binary  string
	scratch string
	log     ports.Logger
}

// NewFzf builds the fuzzy-finder backend. scratch hosts the preview FIFOs.
func NewFzf(scratch string, log ports.Logger) *Fzf {
	return &Fzf{binary: FzfBinary, scratch: scratch, log: log}
}

// SupportsPreview implements ports.Menu.
func (f *Fzf) SupportsPreview() bool { return true }

// Pick implements ports.Menu.
func (f *Fzf) Pick(ctx context.Context, items []domain.MenuItem, opts domain.MenuOptions) (int, error) {
	if len(items) == 0 {
		return 0, domain.ErrNoResults
	}

	var input strings.Builder
	for i, item := range items {
		fmt.Fprintf(&input, "%d\t%s\n", i+1, item.Display)
	}

	args := []string{
		"--delimiter", "\t",
		"--with-nth", "2..",
		"--no-multi",
		"--layout", "reverse",
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt+"> ")
	}
	if opts.HistoryBadge {
		args = append(args, "--header", "── history ──")
	}

	var server *previewServer
	if opts.Preview != nil {
		var err error
		server, err = startPreviewServer(f.scratch, opts.Preview)
		if err != nil {
			f.log.Warn("preview disabled", map[string]interface{}{"error": err.Error()})
		} else {
			defer server.stop()
			args = append(args,
				"--preview", server.command(),
				"--preview-window", "right:50%",
			)
		}
	}

	cmd := exec.CommandContext(ctx, f.binary, args...)
	cmd.Stdin = strings.NewReader(input.String())
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case 1, 130:
				// No match accepted, or interrupted: both are a quiet quit.
				return 0, domain.ErrCancelled
			}
		}
		return 0, fmt.Errorf("fzf: %w", err)
	}

	position, _, found := strings.Cut(strings.TrimSpace(out.String()), "\t")
	if !found {
		return 0, domain.ErrCancelled
	}
	n, err := strconv.Atoi(position)
	if err != nil || n < 1 || n > len(items) {
		return 0, fmt.Errorf("fzf returned unexpected selection %q", position)
	}
	return items[n-1].Index, nil
}

var _ ports.Menu = (*Fzf)(nil)
