package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/kapral18/ytsurf/internal/domain"
)

// previewServer bridges fzf's preview pane back into the process. fzf runs
// the preview command with the highlighted line; the command writes the
// hidden position field into the request FIFO and cats the response FIFO,
// which this server fills by invoking the in-process callback. No external
// interpreter re-derives any state per keystroke.
type previewServer struct {
	reqPath  string
	respPath string
}

const previewStop = "stop"

func startPreviewServer(dir string, fn domain.PreviewFunc) (*previewServer, error) {
	s := &previewServer{
		reqPath:  filepath.Join(dir, "preview.req"),
		respPath: filepath.Join(dir, "preview.out"),
	}
	for _, path := range []string{s.reqPath, s.respPath} {
		_ = os.Remove(path)
		if err := syscall.Mkfifo(path, 0o600); err != nil {
			return nil, fmt.Errorf("mkfifo %s: %w", path, err)
		}
	}
	go s.serve(fn)
	return s, nil
}

// command returns the shell snippet fzf executes per highlight; {1} expands
// to the hidden position field.
func (s *previewServer) command() string {
	return fmt.Sprintf("printf '%%s' {1} > %q && cat %q", s.reqPath, s.respPath)
}

func (s *previewServer) serve(fn domain.PreviewFunc) {
	for {
		// Opening the FIFO blocks until fzf's preview command connects.
		data, err := os.ReadFile(s.reqPath)
		if err != nil {
			return
		}
		req := strings.TrimSpace(string(data))
		if req == previewStop {
			return
		}
		text := "no preview"
		if n, err := strconv.Atoi(req); err == nil {
			text = fn(n)
		}
		s.respond(text)
	}
}

// respond writes the rendered preview for the waiting cat. The finder kills
// preview commands as the highlight moves, so the reader may already be
// gone; a bounded non-blocking open keeps the server from wedging.
func (s *previewServer) respond(text string) {
	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		f, err := os.OpenFile(s.respPath, os.O_WRONLY|syscall.O_NONBLOCK, 0)
		if err == nil {
			_, _ = f.WriteString(text)
			f.Close()
			return
		}
		if time.Now().After(deadline) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (s *previewServer) stop() {
	if f, err := os.OpenFile(s.reqPath, os.O_WRONLY|syscall.O_NONBLOCK, 0); err == nil {
		_, _ = f.WriteString(previewStop)
		f.Close()
	}
	_ = os.Remove(s.reqPath)
	_ = os.Remove(s.respPath)
}
