package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/tabdeck/internal/clock"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/tile"
	"github.com/nikbrunner/tabdeck/internal/tui/layout"
)

// renderView creates the complete start page view.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeAddShortcut:
		return a.renderShortcutModal()
	}

	width := a.contentWidth()
	sections := []string{
		a.renderHeader(width),
		a.renderSearchBox(width),
		a.renderShortcutStrip(width),
		layout.TruncateANSIAware(a.renderControls(), width, a.layoutConfig.Text),
		a.renderBody(width),
		a.renderStatusLine(width),
		layout.TruncateANSIAware(a.renderHints(a.getContextualHints()), width, a.layoutConfig.Text),
	}

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// contentWidth is the terminal width minus app padding (left=2, right=2).
func (a App) contentWidth() int {
	w := a.width - 4
	if w < 1 {
		return 1
	}
	return w
}

// renderHeader renders the clock with the signed-in account on the right.
func (a App) renderHeader(width int) string {
	left := a.styles.Clock.Render(clock.Format(a.now))
	if a.account == nil || a.account.Email == "" {
		return left
	}

	right := a.styles.Account.Render(a.account.Email)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderSearchBox renders the search input, or the applied query when
// search mode is not active.
func (a App) renderSearchBox(width int) string {
	boxWidth := width - 2 // border
	if boxWidth < 1 {
		boxWidth = 1
	}

	if a.mode == ModeSearch {
		return a.styles.SearchBoxActive.Width(boxWidth).Render(a.search.Input.View())
	}

	text := a.styles.Placeholder.Render("/ " + a.search.Input.Placeholder)
	if a.search.Query != "" {
		text = a.search.Input.Prompt + a.search.Query
	}
	return a.styles.SearchBox.Width(boxWidth).Render(text)
}

// renderShortcutStrip renders the shortcut tiles followed by the add tile.
func (a App) renderShortcutStrip(width int) string {
	items := a.stripItems()
	parts := make([]string, len(items))
	for i, item := range items {
		selected := a.nav.Focus == FocusShortcuts && i == a.nav.ShortcutCursor
		label := a.renderBadge(item.Tile) + " " + item.Title()
		if selected {
			parts[i] = a.styles.ShortcutActive.Render(label)
		} else {
			parts[i] = a.styles.Shortcut.Render(label)
		}
	}
	return layout.TruncateANSIAware(strings.Join(parts, " "), width, a.layoutConfig.Text)
}

// renderControls renders the view toggle, column control, scope and theme.
// The column control only exists in grid view.
func (a App) renderControls() string {
	control := func(label string, active bool) string {
		if active {
			return a.styles.ControlActive.Render("[" + label + "]")
		}
		return a.styles.ControlInactive.Render(label)
	}

	parts := []string{
		control("grid", a.prefs.View == model.ViewGrid) + " " + control("list", a.prefs.View == model.ViewList),
	}
	if a.prefs.View == model.ViewGrid {
		parts = append(parts, a.styles.ControlInactive.Render("cols ")+a.styles.ControlActive.Render(fmt.Sprintf("%d", a.prefs.Columns)))
	}
	parts = append(parts,
		a.styles.ControlInactive.Render("source ")+a.styles.ControlActive.Render(string(a.prefs.Source)),
		a.styles.ControlInactive.Render("theme ")+a.styles.ControlActive.Render(a.prefs.Theme),
	)
	return strings.Join(parts, "  ")
}

// renderBody renders the cards, or the empty state when nothing is visible.
func (a App) renderBody(width int) string {
	height := layout.CalculateGridHeight(a.height, a.layoutConfig.Grid)

	var body string
	switch {
	case len(a.visible) == 0 && a.fetch.Loading:
		body = a.styles.Empty.Render("Loading bookmarks...")
	case len(a.visible) == 0:
		body = a.styles.Empty.Render("No bookmarks found")
	case a.prefs.View == model.ViewList:
		body = a.renderList(width, height)
	default:
		body = a.renderGrid(width, height)
	}

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

// renderGrid renders the visible cards in rows of the configured column count.
func (a App) renderGrid(width, height int) string {
	cfg := a.layoutConfig.Grid
	columns := a.columns()
	cardWidth := layout.CalculateCardWidth(width, columns, cfg)
	items := a.cardItems()

	totalRows := layout.RowCount(len(items), columns)
	visibleRows := layout.CalculateVisibleRows(height, cfg.CardHeight)
	offset := layout.CalculateViewportOffset(a.nav.CardCursor/columns, totalRows, visibleRows)

	gap := strings.Repeat(" ", cfg.Gap)
	var rows []string
	for row := offset; row < totalRows && row < offset+visibleRows; row++ {
		var cards []string
		for col := 0; col < columns; col++ {
			idx := row*columns + col
			if idx >= len(items) {
				break
			}
			if col > 0 {
				cards = append(cards, gap)
			}
			selected := a.nav.Focus == FocusCards && idx == a.nav.CardCursor
			cards = append(cards, a.renderCard(items[idx].Tile, selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one bookmark card: avatar and title, then the host.
func (a App) renderCard(t tile.Tile, selected bool, outerWidth int) string {
	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}

	// Width excludes the border; text width also excludes padding
	styleWidth := outerWidth - 2
	textWidth := styleWidth - 2
	if textWidth < 1 {
		textWidth = 1
	}

	badge := a.renderBadge(t)
	title, _ := layout.TruncateText(t.Title, textWidth-lipgloss.Width(badge)-1, a.layoutConfig.Text)
	host, _ := layout.TruncateText(t.Host, textWidth, a.layoutConfig.Text)

	content := badge + " " + a.styles.CardTitle.Render(title) + "\n" + a.styles.CardHost.Render(host)
	return style.Width(styleWidth).Render(content)
}

// renderList renders one row per visible link.
func (a App) renderList(width, height int) string {
	items := a.cardItems()
	visibleRows := layout.CalculateVisibleRows(height, a.layoutConfig.Grid.ListRowHeight)
	offset := layout.CalculateViewportOffset(a.nav.CardCursor, len(items), visibleRows)

	var rows []string
	for i := offset; i < len(items) && i < offset+visibleRows; i++ {
		t := items[i].Tile
		row := a.renderBadge(t) + " " + t.Title + "  " + a.styles.CardHost.Render(t.Host)
		row = layout.TruncateANSIAware(row, width-1, a.layoutConfig.Text)

		if a.nav.Focus == FocusCards && i == a.nav.CardCursor {
			rows = append(rows, a.styles.RowSelected.Width(width).Render(layout.StripANSI(row)))
		} else {
			rows = append(rows, a.styles.Row.Render(row))
		}
	}
	return strings.Join(rows, "\n")
}

// renderBadge renders the tile avatar. Bookmark avatars sit on a rounded
// surface; shortcut avatars have no background.
func (a App) renderBadge(t tile.Tile) string {
	style := a.styles.BadgeIcon
	if t.Icon == tile.IconFallback {
		style = a.styles.BadgeFallback
	}
	if t.Rounded() {
		style = style.Background(a.styles.BadgeSurface)
		return style.Render(" " + t.Letter + " ")
	}
	return style.Render(t.Letter)
}

// renderStatusLine shows the current message, or the selected URL.
func (a App) renderStatusLine(width int) string {
	if a.messageText != "" {
		return layout.TruncateANSIAware(a.renderMessageLine(), width, a.layoutConfig.Text)
	}

	item, ok := a.selectedItem()
	if !ok || item.URL() == "" {
		return ""
	}
	url, _ := layout.TruncateText(item.URL(), width, a.layoutConfig.Text)
	return a.styles.Status.Render(url)
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = a.styles.Title
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderShortcutModal renders the add-shortcut dialog centered on screen.
func (a App) renderShortcutModal() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Add Shortcut"))
	content.WriteString("\n\n")
	content.WriteString("Name:\n")
	content.WriteString(a.form.NameInput.View())
	content.WriteString("\n\n")
	content.WriteString("URL:\n")
	content.WriteString(a.form.URLInput.View())
	content.WriteString("\n\n")
	if a.messageText != "" {
		content.WriteString(a.renderMessageLine())
		content.WriteString("\n")
	}
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "Tab", Desc: "next"},
		{Key: "Enter", Desc: "save"},
		{Key: "Esc", Desc: "cancel"},
	}))

	modal := a.styles.Modal.Width(modalWidth).Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the help overlay.
func (a App) renderHelpOverlay() string {
	// No border, just raw columns
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	// Left column: navigation and opening
	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("h/j/k/l  move\n")
	left.WriteString("tab      focus strip\n")
	left.WriteString("/        search\n")
	left.WriteString("esc      clear search\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("act") + "\n")
	left.WriteString("enter    open\n")
	left.WriteString("Y        yank url\n")
	left.WriteString("a        add shortcut\n")
	left.WriteString("r        reload\n")

	// Right column: display preferences
	var right strings.Builder
	right.WriteString(a.styles.Title.Render("view") + "\n")
	right.WriteString("v    grid/list\n")
	right.WriteString("+/-  columns\n")
	right.WriteString("t    theme\n")
	right.WriteString("b    bar/all\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	leftCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpLeftColumnWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpRightColumnWidth).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}
