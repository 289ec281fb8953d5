package surf

import (
	"os"
	"time"

	"github.com/kapral18/ytsurf/internal/ports"
)

// thumbFetchBudget bounds a single preview-time thumbnail download.
const thumbFetchBudget = 8 * time.Second

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

// supportsIcons probes a backend for the optional icon capability used by
// launcher-style menus.
func supportsIcons(m ports.Menu) bool {
	c, ok := m.(interface{ SupportsIcons() bool })
	return ok && c.SupportsIcons()
}
