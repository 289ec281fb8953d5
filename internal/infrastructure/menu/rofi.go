package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Rofi is the launcher backend. rofi reports the chosen row number directly
// (-format i), so index mapping never depends on the display string. There
// is no live preview; thumbnails appear as row icons when pre-fetched.
type Rofi struct {
	binary string
	log    ports.Logger
}

// NewRofi builds the launcher backend.
func NewRofi(log ports.Logger) *Rofi {
	return &Rofi{binary: RofiBinary, log: log}
}

// SupportsPreview implements ports.Menu.
func (r *Rofi) SupportsPreview() bool { return false }

// SupportsIcons reports that rofi rows can carry icon metadata, so callers
// pre-fetch thumbnails before the menu launches.
func (r *Rofi) SupportsIcons() bool { return true }

// Pick implements ports.Menu.
func (r *Rofi) Pick(ctx context.Context, items []domain.MenuItem, opts domain.MenuOptions) (int, error) {
	if len(items) == 0 {
		return 0, domain.ErrNoResults
	}

	var input strings.Builder
	icons := false
	for _, item := range items {
		input.WriteString(item.Display)
		if item.Icon != "" {
			// rofi row metadata: display\0icon\x1fpath
			fmt.Fprintf(&input, "\x00icon\x1f%s", item.Icon)
			icons = true
		}
		input.WriteByte('\n')
	}

	args := []string{"-dmenu", "-i", "-format", "i"}
	if opts.Prompt != "" {
		args = append(args, "-p", opts.Prompt)
	}
	if opts.HistoryBadge {
		args = append(args, "-mesg", "history")
	}
	if icons {
		args = append(args, "-show-icons")
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = strings.NewReader(input.String())
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return 0, domain.ErrCancelled
		}
		return 0, fmt.Errorf("rofi: %w", err)
	}

	raw := strings.TrimSpace(out.String())
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n >= len(items) {
		return 0, domain.ErrCancelled
	}
	return items[n].Index, nil
}

var _ ports.Menu = (*Rofi)(nil)
