package domain

import (
	"fmt"
	"sort"
)

// Universal format codes understood by the player and downloader.
const (
	FormatBest      = "best"
	FormatBestAudio = "bestaudio"
)

// Format is one playable variant reported by the provider. Only the
// resolution tier matters for selection; codec details stay with the backend.
type Format struct {
	ID     string
	Height int
	Note   string
}

// ResolutionTiers extracts the distinct resolution heights from a format
// list, sorted descending. Formats without a video height (audio-only,
// storyboards) are skipped.
func ResolutionTiers(formats []Format) []int {
	seen := make(map[int]bool)
	var tiers []int
	for _, f := range formats {
		if f.Height <= 0 || seen[f.Height] {
			continue
		}
		seen[f.Height] = true
		tiers = append(tiers, f.Height)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))
	return tiers
}

// FormatForHeight translates a resolution tier into the selection expression
// passed to the player or downloader: best video+audio not exceeding the
// height, falling back to best-overall not exceeding it.
func FormatForHeight(height int) string {
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", height, height)
}
