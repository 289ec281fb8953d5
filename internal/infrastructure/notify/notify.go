// Package notify emits user notifications, preferring the desktop notifier
// and degrading to a terminal banner.
package notify

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kapral18/ytsurf/internal/ports"
)

const sendBinary = "notify-send"

// Desktop routes through notify-send when available; otherwise it prints a
// formatted banner to the terminal.
type Desktop struct {
	out io.Writer
}

// New builds a notifier writing terminal fallbacks to out (stderr if nil).
func New(out io.Writer) *Desktop {
	if out == nil {
		out = os.Stderr
	}
	return &Desktop{out: out}
}

// Notify implements ports.Notifier. Failures are swallowed: a notification
// must never abort the action it announces.
func (d *Desktop) Notify(title, body string) {
	if path, err := exec.LookPath(sendBinary); err == nil {
		if err := exec.Command(path, title, body).Run(); err == nil {
			return
		}
	}
	line := fmt.Sprintf("== %s: %s ==", title, body)
	fmt.Fprintf(d.out, "%s\n%s\n%s\n", strings.Repeat("=", len(line)), line, strings.Repeat("=", len(line)))
}

var _ ports.Notifier = (*Desktop)(nil)
