package theme

import "github.com/thenoetrevino/kboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	ColumnBorder   string
	SelectedBorder string
	DragBorder     string
	Title          string
	Subtle         string
	Normal         string
	PriorityLow    string
	PriorityMedium string
	PriorityHigh   string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes the theme colors from the given theme
func Init(t config.Theme) {
	t.ApplyDefaults()

	Accent = t.Accent
	ColumnBorder = t.ColumnBorder
	SelectedBorder = t.SelectedBorder
	DragBorder = t.DragBorder
	Title = t.Title
	Subtle = t.Subtle
	Normal = t.Normal
	PriorityLow = t.PriorityLow
	PriorityMedium = t.PriorityMedium
	PriorityHigh = t.PriorityHigh
	InfoFg = t.InfoFg
	InfoBg = t.InfoBg
	WarningFg = t.WarningFg
	WarningBg = t.WarningBg
	ErrorFg = t.ErrorFg
	ErrorBg = t.ErrorBg
}
