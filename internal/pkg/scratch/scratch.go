// Package scratch manages the per-invocation temporary directory used for
// thumbnails and menu plumbing. The directory is exclusive to one run and is
// unconditionally removed on exit.
package scratch

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// New creates a fresh scratch directory and returns it with its cleanup
// function. Cleanup is best-effort and safe to call more than once.
func New() (string, func(), error) {
	dir := filepath.Join(os.TempDir(), "ytsurf-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, err
	}
	cleanup := func() {
		_ = os.RemoveAll(dir)
	}
	return dir, cleanup, nil
}
