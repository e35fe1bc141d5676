package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/browser"
	"github.com/nikbrunner/tabdeck/internal/clock"
	"github.com/nikbrunner/tabdeck/internal/favicon"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/prefs"
	"github.com/nikbrunner/tabdeck/internal/profile"
	"github.com/nikbrunner/tabdeck/internal/search"
	"github.com/nikbrunner/tabdeck/internal/shortcuts"
	"github.com/nikbrunner/tabdeck/internal/tile"
	"github.com/nikbrunner/tabdeck/internal/tui/layout"
)

const (
	fetchTimeout = 10 * time.Second
	probeTimeout = 30 * time.Second
)

// IconProber checks which favicon hosts load.
type IconProber interface {
	Probe(ctx context.Context, tiles []tile.Tile) ([]favicon.Result, error)
}

// App is the main bubbletea model for the start page.
type App struct {
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	// Collaborators
	store     *prefs.Store
	shortcuts *shortcuts.Manager
	source    bookmarks.Source
	prober    IconProber
	navigator browser.Navigator
	clipboard browser.Clipboard
	logger    *zap.Logger
	changes   <-chan struct{}
	nowFunc   func() time.Time

	// Presentation state
	prefs    model.Preferences
	themes   []string
	renderer tile.Renderer
	account  *profile.Info
	allLinks []model.Link
	visible  []model.Link
	now      time.Time

	mode   Mode
	nav    NavState
	fetch  FetchState
	search SearchState
	form   ShortcutFormState

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Prefs        model.Preferences
	Store        *prefs.Store         // optional, in-memory if nil
	Source       bookmarks.Source     // nil reports bookmarks as unavailable
	Renderer     *tile.Renderer       // optional, default favicon template if nil
	Prober       IconProber           // optional, no probing if nil
	Navigator    browser.Navigator    // optional, system browser if nil
	Clipboard    browser.Clipboard    // optional, system clipboard if nil
	Logger       *zap.Logger          // optional, no-op if nil
	Account      *profile.Info        // optional
	Themes       []string             // theme cycle order
	Changes      <-chan struct{}      // optional bookmark file change signals
	Now          func() time.Time     // optional, time.Now if nil
	Keys         *KeyMap              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	store := params.Store
	if store == nil {
		store = prefs.NewStore(prefs.NewMemoryKV(nil))
	}

	renderer := tile.NewRenderer("")
	if params.Renderer != nil {
		renderer = *params.Renderer
	}

	var navigator browser.Navigator = browser.System{}
	if params.Navigator != nil {
		navigator = params.Navigator
	}

	var clip browser.Clipboard = browser.SystemClipboard{}
	if params.Clipboard != nil {
		clip = params.Clipboard
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	nowFunc := params.Now
	if nowFunc == nil {
		nowFunc = time.Now
	}

	themes := params.Themes
	if len(themes) == 0 {
		themes = []string{model.DefaultTheme}
	}

	return App{
		keys:         keys,
		styles:       ThemeStyles(params.Prefs.Theme),
		layoutConfig: layoutCfg,
		store:        store,
		shortcuts:    shortcuts.NewManager(store),
		source:       params.Source,
		prober:       params.Prober,
		navigator:    navigator,
		clipboard:    clip,
		logger:       logger,
		changes:      params.Changes,
		nowFunc:      nowFunc,
		prefs:        params.Prefs,
		themes:       themes,
		renderer:     renderer,
		account:      params.Account,
		now:          nowFunc(),
		search:       NewSearchState(layoutCfg),
		form:         NewShortcutFormState(layoutCfg),
		fetch:        FetchState{Seq: &bookmarks.Sequencer{}},
		width:        80,
		height:       24,
	}
}

// linksLoadedMsg carries the result of one bookmark fetch.
type linksLoadedMsg struct {
	seq   uint64
	links []model.Link
	err   error
}

// faviconsProbedMsg carries the hosts whose favicon failed to load.
type faviconsProbedMsg struct {
	seq    uint64
	failed []string
}

// tickMsg refreshes the clock.
type tickMsg time.Time

// bookmarksChangedMsg signals that the bookmarks file changed on disk.
type bookmarksChangedMsg struct{}

// openedMsg reports the outcome of opening a URL.
type openedMsg struct {
	url string
	err error
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetchLinks(), a.tick(), a.waitForChange())
}

// fetchLinks starts a fetch tagged with a fresh sequence number. Only the
// response to the most recent fetch is applied.
func (a App) fetchLinks() tea.Cmd {
	seq := a.fetch.Seq.Next()
	src, scope := a.source, a.prefs.Source
	a.logger.Debug("fetching bookmarks", zap.Uint64("seq", seq), zap.String("scope", string(scope)))

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		links, err := bookmarks.FetchLinks(ctx, src, scope)
		return linksLoadedMsg{seq: seq, links: links, err: err}
	}
}

// probeFavicons checks favicon hosts for the current tiles.
func (a App) probeFavicons(seq uint64) tea.Cmd {
	if a.prober == nil {
		return nil
	}

	tiles := a.renderer.Bookmarks(a.allLinks)
	tiles = append(tiles, a.renderer.Shortcuts(a.prefs.Shortcuts)...)
	prober, logger := a.prober, a.logger

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		results, err := prober.Probe(ctx, tiles)
		if err != nil {
			logger.Debug("favicon probe interrupted", zap.Error(err))
		}
		return faviconsProbedMsg{seq: seq, failed: favicon.FailedHosts(results)}
	}
}

func (a App) tick() tea.Cmd {
	return tea.Tick(clock.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks until the watcher signals a change.
func (a App) waitForChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	ch := a.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return bookmarksChangedMsg{}
	}
}

func (a App) openURL(url string) tea.Cmd {
	nav := a.navigator
	return func() tea.Msg {
		return openedMsg{url: url, err: nav.Open(url)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.now = a.nowFunc()
		return a, a.tick()

	case linksLoadedMsg:
		return a.handleLinksLoaded(msg)

	case faviconsProbedMsg:
		if !a.fetch.Seq.IsLatest(msg.seq) {
			return a, nil
		}
		if len(msg.failed) > 0 {
			a.logger.Debug("favicons unavailable", zap.Strings("hosts", msg.failed))
			a.renderer = a.renderer.WithFailures(msg.failed)
		}
		return a, nil

	case bookmarksChangedMsg:
		a.logger.Info("bookmarks changed on disk")
		a.fetch.Loading = true
		return a, tea.Batch(a.fetchLinks(), a.waitForChange())

	case openedMsg:
		if msg.err != nil {
			a.logger.Warn("open url", zap.String("url", msg.url), zap.Error(msg.err))
			a.setMessage(MessageError, "Could not open "+msg.url)
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.handleSearchMode(msg)
		case ModeAddShortcut:
			return a.handleAddShortcutMode(msg)
		case ModeHelp:
			return a.handleHelpMode(msg)
		default:
			return a.handleNormalMode(msg)
		}
	}

	// Forward anything else (cursor blinks) to the focused inputs
	var cmd tea.Cmd
	switch a.mode {
	case ModeSearch:
		a.search.Input, cmd = a.search.Input.Update(msg)
	case ModeAddShortcut:
		cmd = a.form.Update(msg)
	}
	return a, cmd
}

func (a App) handleLinksLoaded(msg linksLoadedMsg) (tea.Model, tea.Cmd) {
	if !a.fetch.Seq.IsLatest(msg.seq) {
		a.logger.Debug("discarding stale bookmarks", zap.Uint64("seq", msg.seq))
		return a, nil
	}

	a.fetch.Loading = false
	a.fetch.Err = msg.err
	if msg.err != nil {
		a.logger.Error("bookmarks unavailable", zap.Error(msg.err))
		a.allLinks = nil
		a.applyFilter()
		a.setMessage(MessageError, "Bookmarks unavailable")
		return a, nil
	}

	a.logger.Debug("bookmarks loaded", zap.Uint64("seq", msg.seq), zap.Int("count", len(msg.links)))
	a.allLinks = msg.links
	a.applyFilter()
	return a, a.probeFavicons(msg.seq)
}

// applyFilter recomputes the visible links from the current query.
func (a *App) applyFilter() {
	a.visible = search.Filter(a.allLinks, a.search.Query)
	a.nav.ClampCards(len(a.visible))
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
}

// persist applies next and reports a failed write. The in-memory value is
// kept either way.
func (a *App) persist(next model.Preferences, err error, what string) {
	a.prefs = next
	if err != nil {
		a.logger.Warn("save preference", zap.String("pref", what), zap.Error(err))
		a.setMessage(MessageError, "Could not save "+what)
	}
}

// columns returns the number of tiles per row for the current view.
func (a App) columns() int {
	if a.prefs.View == model.ViewList {
		return 1
	}
	return a.prefs.Columns
}

func (a App) cardItems() []Item {
	return bookmarkItems(a.renderer, a.visible)
}

func (a App) stripItems() []Item {
	return shortcutItems(a.renderer, a.prefs.Shortcuts)
}

// selectedItem returns the item under the cursor of the focused group.
func (a App) selectedItem() (Item, bool) {
	if a.nav.Focus == FocusShortcuts {
		items := a.stripItems()
		if a.nav.ShortcutCursor < len(items) {
			return items[a.nav.ShortcutCursor], true
		}
		return Item{}, false
	}

	items := a.cardItems()
	if a.nav.CardCursor < len(items) {
		return items[a.nav.CardCursor], true
	}
	return Item{}, false
}

func (a App) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.clearMessage()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
		return a, nil

	case msg.Type == tea.KeyEsc:
		if a.search.Query != "" {
			a.search.Reset()
			a.applyFilter()
		}
		return a, nil

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.nav.Focus = FocusCards
		a.search.Input.SetValue(a.search.Query)
		a.search.Input.CursorEnd()
		cmd := a.search.Input.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.Focus):
		if a.nav.Focus == FocusCards {
			a.nav.Focus = FocusShortcuts
		} else {
			a.nav.Focus = FocusCards
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		a.move(0, -1)
	case key.Matches(msg, a.keys.Down):
		a.move(0, 1)
	case key.Matches(msg, a.keys.Left):
		a.move(-1, 0)
	case key.Matches(msg, a.keys.Right):
		a.move(1, 0)

	case key.Matches(msg, a.keys.Open):
		item, ok := a.selectedItem()
		if !ok {
			return a, nil
		}
		if item.Kind == ItemAddShortcut {
			return a.openShortcutForm()
		}
		a.logger.Debug("opening", zap.String("url", item.URL()))
		return a, a.openURL(item.URL())

	case key.Matches(msg, a.keys.ToggleView):
		next := model.ViewList
		if a.prefs.View == model.ViewList {
			next = model.ViewGrid
		}
		p, err := a.store.SetView(a.prefs, next)
		a.persist(p, err, "view")

	case key.Matches(msg, a.keys.ColumnsUp):
		a.changeColumns(1)
	case key.Matches(msg, a.keys.ColumnsDown):
		a.changeColumns(-1)

	case key.Matches(msg, a.keys.CycleTheme):
		theme := a.nextTheme()
		p, err := a.store.SetTheme(a.prefs, theme)
		a.persist(p, err, "theme")
		a.styles = ThemeStyles(a.prefs.Theme)

	case key.Matches(msg, a.keys.CycleSource):
		next := model.ScopeAll
		if a.prefs.Source == model.ScopeAll {
			next = model.ScopeBar
		}
		p, err := a.store.SetSource(a.prefs, next)
		a.persist(p, err, "source")
		a.nav.CardCursor = 0
		a.fetch.Loading = true
		return a, a.fetchLinks()

	case key.Matches(msg, a.keys.AddShortcut):
		return a.openShortcutForm()

	case key.Matches(msg, a.keys.YankURL):
		item, ok := a.selectedItem()
		if !ok || item.URL() == "" {
			return a, nil
		}
		if err := a.clipboard.WriteAll(item.URL()); err != nil {
			a.logger.Warn("copy url", zap.Error(err))
			a.setMessage(MessageError, "Could not copy URL")
			return a, nil
		}
		a.setMessage(MessageSuccess, "Copied "+item.URL())

	case key.Matches(msg, a.keys.Reload):
		a.fetch.Loading = true
		return a, a.fetchLinks()
	}

	return a, nil
}

// move shifts the cursor of the focused group.
func (a *App) move(dx, dy int) {
	if a.nav.Focus == FocusShortcuts {
		// The strip is a single row
		total := len(a.prefs.Shortcuts) + 1
		a.nav.ShortcutCursor = layout.MoveInGrid(a.nav.ShortcutCursor, total, total, dx, 0)
		if dy > 0 && len(a.visible) > 0 {
			a.nav.Focus = FocusCards
		}
		return
	}

	if dy < 0 && a.nav.CardCursor < a.columns() {
		a.nav.Focus = FocusShortcuts
		return
	}
	a.nav.CardCursor = layout.MoveInGrid(a.nav.CardCursor, len(a.visible), a.columns(), dx, dy)
}

// changeColumns adjusts the grid width within [MinColumns, MaxColumns].
// The control only exists in grid view.
func (a *App) changeColumns(delta int) {
	if a.prefs.View != model.ViewGrid {
		return
	}
	next := a.prefs.Columns + delta
	if next < model.MinColumns || next > model.MaxColumns {
		return
	}
	p, err := a.store.SetColumns(a.prefs, next)
	a.persist(p, err, "columns")
}

// nextTheme returns the theme after the current one in the cycle. A theme
// outside the cycle moves to its start.
func (a App) nextTheme() string {
	for i, t := range a.themes {
		if t == a.prefs.Theme {
			return a.themes[(i+1)%len(a.themes)]
		}
	}
	return a.themes[0]
}

func (a App) openShortcutForm() (tea.Model, tea.Cmd) {
	a.mode = ModeAddShortcut
	cmd := a.form.Reset()
	return a, cmd
}

func (a App) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search.Reset()
		a.search.Input.Blur()
		a.mode = ModeNormal
		a.applyFilter()
		return a, nil

	case tea.KeyEnter:
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyDown, tea.KeyUp:
		// Arrow keys leave the box and move through the results
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	if q := a.search.Input.Value(); q != a.search.Query {
		a.search.Query = q
		a.nav.CardCursor = 0
		a.applyFilter()
	}
	return a, cmd
}

func (a App) handleAddShortcutMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.form.Blur()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab, tea.KeyShiftTab:
		cmd := a.form.ToggleField()
		return a, cmd

	case tea.KeyEnter:
		next, added, err := a.shortcuts.Add(a.prefs, a.form.NameInput.Value(), a.form.URLInput.Value())
		if !added {
			a.setMessage(MessageWarning, "Name and URL are required")
			return a, nil
		}
		a.persist(next, err, "shortcuts")
		a.form.Blur()
		a.mode = ModeNormal
		if err == nil {
			sc := a.prefs.Shortcuts[len(a.prefs.Shortcuts)-1]
			a.logger.Info("shortcut added", zap.String("name", sc.Name), zap.String("url", sc.URL))
			a.setMessage(MessageSuccess, "Added "+sc.Name)
		}
		return a, nil
	}

	cmd := a.form.Update(msg)
	return a, cmd
}

func (a App) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Quit):
		a.mode = ModeNormal
	}
	return a, nil
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// Focus returns which tile group has focus.
func (a App) Focus() Focus {
	return a.nav.Focus
}

// Cursor returns the card cursor position.
func (a App) Cursor() int {
	return a.nav.CardCursor
}

// ShortcutCursor returns the shortcut strip cursor position.
func (a App) ShortcutCursor() int {
	return a.nav.ShortcutCursor
}

// Preferences returns the preferences currently applied.
func (a App) Preferences() model.Preferences {
	return a.prefs
}

// Links returns every link from the last successful fetch.
func (a App) Links() []model.Link {
	return a.allLinks
}

// Visible returns the links that pass the current query.
func (a App) Visible() []model.Link {
	return a.visible
}

// Query returns the applied search query.
func (a App) Query() string {
	return a.search.Query
}

// Message returns the status message, empty when none.
func (a App) Message() string {
	return a.messageText
}

// Renderer returns the tile renderer, including known favicon failures.
func (a App) Renderer() tile.Renderer {
	return a.renderer
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
