package assets

import (
	_ "embed"
)

// DefaultConfig contains the embedded default configuration file, written
// out on first run.
//
//go:embed defaults/config
var DefaultConfig []byte
