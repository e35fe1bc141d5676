package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Grid  GridConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// GridConfig holds card area dimension configuration.
type GridConfig struct {
	// HeightReduction is subtracted from terminal height for the card area.
	// Accounts for: app padding (1) + header (1) + search box (3) + shortcuts (1) + controls (1) + status and hints (2) = 9
	HeightReduction int

	// MinHeight is the minimum card area height.
	MinHeight int

	// WidthReduction is subtracted from terminal width before splitting into columns.
	// Accounts for app padding on each side.
	WidthReduction int

	// Gap is the horizontal space between cards.
	Gap int

	// MinCardWidth is the narrowest a card may get.
	MinCardWidth int

	// CardHeight is the rendered card height including its border.
	CardHeight int

	// ListRowHeight is the height of one row in list view.
	ListRowHeight int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// PickerMaxVisible: max results shown by the quick-open picker.
	PickerMaxVisible int

	// HelpLeftColumnWidth: width for help overlay left column.
	HelpLeftColumnWidth int

	// HelpRightColumnWidth: width for help overlay right column.
	HelpRightColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit   int
	URLCharLimit    int
	SearchCharLimit int

	// Display widths
	StandardWidth int // Used for shortcut name and URL
	SearchWidth   int // Used for the search box
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Grid: GridConfig{
			HeightReduction: 9, // app padding (1) + header (1) + search (3) + shortcuts (1) + controls (1) + status and hints (2)
			MinHeight:       4,
			WidthReduction:  4,
			Gap:             1,
			MinCardWidth:    14,
			CardHeight:      4,
			ListRowHeight:   1,
		},
		Modal: ModalConfig{
			DefaultWidthPercent:  40,
			MinWidth:             40,
			MaxWidth:             72,
			PickerMaxVisible:     10,
			HelpLeftColumnWidth:  22,
			HelpRightColumnWidth: 24,
		},
		Input: InputConfig{
			NameCharLimit:   60,
			URLCharLimit:    500,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     50,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
