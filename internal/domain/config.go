package domain

// MenuBackend names one of the interchangeable selection front-ends.
type MenuBackend string

const (
	MenuFzf   MenuBackend = "fzf"
	MenuRofi  MenuBackend = "rofi"
	MenuPlain MenuBackend = "plain"
)

// ActionMode fixes the stream/download decision ahead of time. ModeAsk leaves
// the decision to an interactive prompt.
type ActionMode string

const (
	ModeAsk      ActionMode = "ask"
	ModeWatch    ActionMode = "watch"
	ModeDownload ActionMode = "download"
)

// HistoryBackend selects the persistence layer for the history log.
type HistoryBackend string

const (
	HistoryFile   HistoryBackend = "file"
	HistorySQLite HistoryBackend = "sqlite"
)

// Validation bounds for numeric configuration keys.
const (
	LimitMin = 1
	LimitMax = 50

	HistorySizeMin = 1
	HistorySizeMax = 1000

	DefaultLimit       = 15
	DefaultHistorySize = 100
)

// Config is the finalized, immutable configuration for one invocation,
// assembled by the resolver from defaults, the config file, and CLI flags.
// Components receive it explicitly; there is no ambient global state.
type Config struct {
	Limit          int
	Menu           MenuBackend
	Mode           ActionMode
	AudioOnly      bool
	ChooseFormat   bool
	ShowThumbnails bool
	HistoryView    bool

	HistorySize    int
	HistoryBackend HistoryBackend

	CacheDir    string
	ConfigDir   string
	DownloadDir string

	Player     string
	PlayerArgs []string
}

// ValidLimit reports whether n is inside the allowed result-limit range.
func ValidLimit(n int) bool {
	return n >= LimitMin && n <= LimitMax
}

// ValidHistorySize reports whether n is inside the allowed history capacity range.
func ValidHistorySize(n int) bool {
	return n >= HistorySizeMin && n <= HistorySizeMax
}
