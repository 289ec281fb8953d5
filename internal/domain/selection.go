package domain

// MenuItem pairs a display string with the position of its source record.
// Display strings are not unique (two videos can share a title), so every
// backend reports the chosen Index rather than the chosen string.
type MenuItem struct {
	Index   int
	Display string
	Icon    string
}

// PreviewFunc renders the preview block for the currently highlighted item,
// identified by its 1-based position in the rendered list. Implementations
// must never fail the selection; on error they return degraded text.
type PreviewFunc func(position int) string

// MenuOptions tunes one menu invocation.
type MenuOptions struct {
	Prompt       string
	HistoryBadge bool
	Preview      PreviewFunc
}

// MenuItems derives the 1:1 display list for a slice of records, preserving
// order so that a returned index maps straight back to its record.
func MenuItems(records []VideoRecord) []MenuItem {
	items := make([]MenuItem, len(records))
	for i, rec := range records {
		items[i] = MenuItem{Index: i, Display: rec.DisplayLine()}
	}
	return items
}
