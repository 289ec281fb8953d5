// Package menu implements the interchangeable selection front-ends.
//
// All backends honor the same contract: they render the display strings of
// an ordered item list and report the chosen positional index. Selection is
// never resolved by matching the chosen string back against the list, since
// display strings are not unique.
package menu

import (
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"

	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/ports"
)

// External selector binaries.
const (
	FzfBinary  = "fzf"
	RofiBinary = "rofi"
)

// ForConfig picks the concrete backend for this invocation: the configured
// one when it is usable, degrading rofi→fzf→plain with a warning when it is
// not. A non-terminal stdin or stdout forces the plain backend off the
// table's interactive end.
func ForConfig(cfg domain.Config, scratchDir string, log ports.Logger) ports.Menu {
	switch cfg.Menu {
	case domain.MenuRofi:
		if binaryOnPath(RofiBinary) {
			return NewRofi(log)
		}
		log.Warn("rofi not found, falling back to fzf", nil)
		fallthrough
	case domain.MenuFzf:
		if !interactiveTerminal() {
			return NewPlain(nil, nil)
		}
		if binaryOnPath(FzfBinary) {
			return NewFzf(scratchDir, log)
		}
		log.Warn("fzf not found, falling back to plain prompt", nil)
		return NewPlain(nil, nil)
	default:
		return NewPlain(nil, nil)
	}
}

// Binary returns the external program a configured backend depends on, or ""
// when it has none.
func Binary(kind domain.MenuBackend) string {
	switch kind {
	case domain.MenuFzf:
		return FzfBinary
	case domain.MenuRofi:
		return RofiBinary
	}
	return ""
}

func interactiveTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func binaryOnPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
