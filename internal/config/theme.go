package config

// Theme defines all configurable color values
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // Card or column being dragged

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultTheme returns the default (purple) theme
func DefaultTheme() Theme {
	return Theme{
		Preset: "default",
		Accent: "#874BFD",

		ColumnBorder:   "#5F87D7",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		PriorityLow:    "#5FD75F",
		PriorityMedium: "#FFAF00",
		PriorityHigh:   "#FF5F5F",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		ColumnBorder:   "#808080",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		PriorityLow:    "#808080",
		PriorityMedium: "#D0D0D0",
		PriorityHigh:   "#FFFFFF",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#505050",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",
	}
}

// presetTheme returns a preset theme by name
func presetTheme(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the selected preset
func (t *Theme) ApplyDefaults() {
	preset := presetTheme(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.ColumnBorder, preset.ColumnBorder)
	fill(&t.SelectedBorder, preset.SelectedBorder)
	fill(&t.DragBorder, preset.DragBorder)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.PriorityLow, preset.PriorityLow)
	fill(&t.PriorityMedium, preset.PriorityMedium)
	fill(&t.PriorityHigh, preset.PriorityHigh)
	fill(&t.InfoFg, preset.InfoFg)
	fill(&t.InfoBg, preset.InfoBg)
	fill(&t.WarningFg, preset.WarningFg)
	fill(&t.WarningBg, preset.WarningBg)
	fill(&t.ErrorFg, preset.ErrorFg)
	fill(&t.ErrorBg, preset.ErrorBg)
}
