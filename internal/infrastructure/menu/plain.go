package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// Plain is the numbered fallback backend: it prints the list 1..N, reads a
// line, re-prompts on invalid input, and treats "q" or an empty line as
// cancellation. It never crashes on non-numeric input.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlain constructs a plain prompt referencing stdio.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Plain{in: bufio.NewReader(in), out: out}
}

// SupportsPreview implements ports.Menu.
func (p *Plain) SupportsPreview() bool { return false }

// Pick implements ports.Menu.
func (p *Plain) Pick(ctx context.Context, items []domain.MenuItem, opts domain.MenuOptions) (int, error) {
	if len(items) == 0 {
		return 0, domain.ErrNoResults
	}
	if opts.HistoryBadge {
		fmt.Fprintln(p.out, "── history ──")
	}
	for i, item := range items {
		fmt.Fprintf(p.out, "%3d) %s\n", i+1, item.Display)
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = "select"
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(p.out, "%s [1-%d, q to quit]: ", prompt, len(items))
		line, err := p.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return 0, domain.ErrCancelled
			}
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "q") {
			return 0, domain.ErrCancelled
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintln(p.out, "invalid selection")
			continue
		}
		return items[n-1].Index, nil
	}
}

var _ ports.Menu = (*Plain)(nil)
