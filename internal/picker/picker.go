// Package picker is a small full-screen chooser for quick-open results.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/search"
	"github.com/nikbrunner/tabdeck/internal/tile"
	"github.com/nikbrunner/tabdeck/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// keyMap holds the picker's bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up", "ctrl+p")),
		Down:   key.NewBinding(key.WithKeys("j", "down", "ctrl+n")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// Picker lets the user choose one link from quick-open results.
type Picker struct {
	results   []search.SearchResult
	query     string
	keys      keyMap
	cfg       layout.LayoutConfig
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		keys:    defaultKeyMap(),
		cfg:     layout.DefaultConfig(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Select):
			if len(p.results) == 0 {
				return p, nil
			}
			p.selected = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}

		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Open: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n")

	maxVisible := p.cfg.Modal.PickerMaxVisible
	if fit := (p.height - 4) / 2; fit > 0 && fit < maxVisible {
		maxVisible = fit
	}
	start, end := layout.CalculateVisibleListItems(maxVisible, p.cursor, len(p.results))
	maxWidth := p.width - 3

	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := highlight(result, style)
		b.WriteString(cursor + layout.TruncateANSIAware(title, maxWidth, p.cfg.Text) + "\n")
		b.WriteString("   " + layout.TruncateANSIAware(urlStyle.Render(result.Link.URL), maxWidth, p.cfg.Text) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders the display title with fuzzy-matched runes emphasised.
// MatchedIndexes refer to the "title url" string the ranking ran over, so
// only indexes inside the raw title are applied.
func highlight(result search.SearchResult, style lipgloss.Style) string {
	title := tile.DisplayTitle(result.Link)
	if len(result.MatchedIndexes) == 0 || title != result.Link.Title {
		return style.Render(title)
	}

	matched := make(map[int]bool, len(result.MatchedIndexes))
	for _, i := range result.MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range title {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedLink returns the selected link, or nil if cancelled.
func (p Picker) SelectedLink() *model.Link {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		link := p.results[p.cursor].Link
		return &link
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
