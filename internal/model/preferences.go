package model

// ViewMode selects how bookmark cards are laid out.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// Scope selects which part of the bookmark tree is shown.
type Scope string

const (
	ScopeBar Scope = "bar" // children of the bookmarks bar folder
	ScopeAll Scope = "all" // every root
)

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	return s == ScopeBar || s == ScopeAll
}

// Column bounds for grid mode.
const (
	MinColumns     = 2
	MaxColumns     = 6
	DefaultColumns = 5
)

// DefaultTheme is applied when no theme is stored.
const DefaultTheme = "light"

// Preferences is the persisted UI state. It is treated as an immutable value:
// changes produce a new Preferences via the With* methods.
type Preferences struct {
	View      ViewMode
	Columns   int
	Source    Scope
	Theme     string
	Shortcuts []Shortcut
}

// DefaultPreferences returns the preferences used on a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		View:      ViewGrid,
		Columns:   DefaultColumns,
		Source:    ScopeBar,
		Theme:     DefaultTheme,
		Shortcuts: DefaultShortcuts(),
	}
}

// ClampColumns restricts n to [MinColumns, MaxColumns].
func ClampColumns(n int) int {
	if n > MaxColumns {
		return MaxColumns
	}
	if n < MinColumns {
		return MinColumns
	}
	return n
}

// WithView returns a copy with the view mode replaced.
func (p Preferences) WithView(v ViewMode) Preferences {
	p.View = v
	return p
}

// WithColumns returns a copy with the column count replaced.
func (p Preferences) WithColumns(n int) Preferences {
	p.Columns = n
	return p
}

// WithSource returns a copy with the scope replaced.
func (p Preferences) WithSource(s Scope) Preferences {
	p.Source = s
	return p
}

// WithTheme returns a copy with the theme replaced.
func (p Preferences) WithTheme(theme string) Preferences {
	p.Theme = theme
	return p
}

// WithShortcuts returns a copy holding its own copy of the shortcut list.
func (p Preferences) WithShortcuts(list []Shortcut) Preferences {
	p.Shortcuts = append([]Shortcut(nil), list...)
	return p
}
