package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App             lipgloss.Style
	Clock           lipgloss.Style
	Account         lipgloss.Style
	SearchBox       lipgloss.Style
	SearchBoxActive lipgloss.Style
	Placeholder     lipgloss.Style
	Shortcut        lipgloss.Style
	ShortcutActive  lipgloss.Style
	Card            lipgloss.Style
	CardSelected    lipgloss.Style
	CardTitle       lipgloss.Style
	CardHost        lipgloss.Style
	Row             lipgloss.Style
	RowSelected     lipgloss.Style
	BadgeIcon       lipgloss.Style // favicon resolved
	BadgeFallback   lipgloss.Style // generated letter avatar
	BadgeSurface    lipgloss.TerminalColor
	ControlActive   lipgloss.Style
	ControlInactive lipgloss.Style
	Title           lipgloss.Style
	Modal           lipgloss.Style
	Empty           lipgloss.Style
	Status          lipgloss.Style
	Help            lipgloss.Style
	HintKey         lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc        lipgloss.Style // Description portion of hints (e.g., "open", "move")
}

// palette is the set of colors a theme is built from.
type palette struct {
	primary  lipgloss.TerminalColor // main text
	subtle   lipgloss.TerminalColor // secondary text
	accent   lipgloss.TerminalColor // selection and active controls
	border   lipgloss.TerminalColor // inactive borders
	surface  lipgloss.TerminalColor // avatar background
	onAccent lipgloss.TerminalColor // text on accent background
}

var palettes = map[string]palette{
	// Industrial design: grayscale with single desaturated teal accent.
	"light": {
		primary:  lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"},
		subtle:   lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"},
		accent:   lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"},
		border:   lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"},
		surface:  lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"},
		onAccent: lipgloss.Color("#1A1A1A"),
	},
	"dark": {
		primary:  lipgloss.Color("#D0D0D0"),
		subtle:   lipgloss.Color("#707070"),
		accent:   lipgloss.Color("#5F8787"),
		border:   lipgloss.Color("#505050"),
		surface:  lipgloss.Color("#303030"),
		onAccent: lipgloss.Color("#1A1A1A"),
	},
	"sepia": {
		primary:  lipgloss.Color("#433422"),
		subtle:   lipgloss.Color("#8A7559"),
		accent:   lipgloss.Color("#A0522D"),
		border:   lipgloss.Color("#B8A284"),
		surface:  lipgloss.Color("#EADBC0"),
		onAccent: lipgloss.Color("#FBF5E6"),
	},
	"nord": {
		primary:  lipgloss.Color("#ECEFF4"),
		subtle:   lipgloss.Color("#81A1C1"),
		accent:   lipgloss.Color("#88C0D0"),
		border:   lipgloss.Color("#4C566A"),
		surface:  lipgloss.Color("#3B4252"),
		onAccent: lipgloss.Color("#2E3440"),
	},
}

// KnownTheme reports whether name has its own palette.
func KnownTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}

// DefaultStyles returns the styles of the default theme.
func DefaultStyles() Styles {
	return ThemeStyles(model.DefaultTheme)
}

// ThemeStyles returns the styles for a theme. Names without a palette use
// the default theme's colors.
func ThemeStyles(name string) Styles {
	p, ok := palettes[name]
	if !ok {
		p = palettes[model.DefaultTheme]
	}
	return newStyles(p)
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Clock: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		Account: lipgloss.NewStyle().
			Foreground(p.subtle),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		SearchBoxActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(p.subtle),

		Shortcut: lipgloss.NewStyle().
			Foreground(p.primary).
			Padding(0, 1),

		ShortcutActive: lipgloss.NewStyle().
			Background(p.accent).
			Foreground(p.onAccent).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(p.primary),

		CardHost: lipgloss.NewStyle().
			Foreground(p.subtle),

		Row: lipgloss.NewStyle().
			Foreground(p.primary).
			PaddingLeft(1),

		RowSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(p.accent).
			Foreground(p.onAccent),

		BadgeIcon: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		BadgeFallback: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.subtle),

		BadgeSurface: p.surface,

		ControlActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		ControlInactive: lipgloss.NewStyle().
			Foreground(p.subtle),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(1, 0),

		Status: lipgloss.NewStyle().
			Foreground(p.subtle),

		Help: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),
	}
}
