package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/tui/layout"
)

// Mode is the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAddShortcut
	ModeHelp
)

// Focus selects which tile group receives navigation keys.
type Focus int

const (
	FocusCards Focus = iota
	FocusShortcuts
)

// MessageType controls how the status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// SearchState holds the search box and the query it last applied.
type SearchState struct {
	Input textinput.Model
	Query string // applied query, kept after leaving search mode
}

// NewSearchState creates a new SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search bookmarks"
	input.Prompt = "/ "
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	return SearchState{Input: input}
}

// Reset clears the query.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Query = ""
}

// ShortcutFormState holds the add-shortcut modal inputs.
type ShortcutFormState struct {
	NameInput textinput.Model
	URLInput  textinput.Model
	OnURL     bool // true when the URL field has focus
}

// NewShortcutFormState creates a new ShortcutFormState with initialized inputs.
func NewShortcutFormState(cfg layout.LayoutConfig) ShortcutFormState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = cfg.Input.NameCharLimit
	nameInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "example.com"
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	return ShortcutFormState{
		NameInput: nameInput,
		URLInput:  urlInput,
	}
}

// Reset clears both inputs and focuses the name field.
func (f *ShortcutFormState) Reset() tea.Cmd {
	f.NameInput.Reset()
	f.URLInput.Reset()
	f.OnURL = false
	f.URLInput.Blur()
	return f.NameInput.Focus()
}

// ToggleField moves focus to the other input.
func (f *ShortcutFormState) ToggleField() tea.Cmd {
	f.OnURL = !f.OnURL
	if f.OnURL {
		f.NameInput.Blur()
		return f.URLInput.Focus()
	}
	f.URLInput.Blur()
	return f.NameInput.Focus()
}

// Blur removes focus from both inputs.
func (f *ShortcutFormState) Blur() {
	f.NameInput.Blur()
	f.URLInput.Blur()
}

// Update forwards msg to the focused input.
func (f *ShortcutFormState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.OnURL {
		f.URLInput, cmd = f.URLInput.Update(msg)
	} else {
		f.NameInput, cmd = f.NameInput.Update(msg)
	}
	return cmd
}

// NavState tracks focus and the cursor within each tile group.
type NavState struct {
	Focus          Focus
	CardCursor     int
	ShortcutCursor int // len(shortcuts) selects the add tile
}

// ClampCards keeps CardCursor inside [0, total).
func (n *NavState) ClampCards(total int) {
	if n.CardCursor >= total {
		n.CardCursor = total - 1
	}
	if n.CardCursor < 0 {
		n.CardCursor = 0
	}
}

// FetchState tracks bookmark loading.
type FetchState struct {
	Seq     *bookmarks.Sequencer
	Loading bool
	Err     error // last fetch failure, nil after a success
}
