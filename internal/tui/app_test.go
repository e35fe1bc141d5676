package tui_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/browser"
	"github.com/nikbrunner/tabdeck/internal/favicon"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/prefs"
	"github.com/nikbrunner/tabdeck/internal/tile"
	"github.com/nikbrunner/tabdeck/internal/tui"
)

// barForest is a bar holding A and a second folder holding B.
func barForest() []model.Node {
	return []model.Node{
		model.FolderNode("",
			model.FolderNode("Bookmarks bar", model.LinkNode("A", "https://a.com")),
			model.FolderNode("Other bookmarks", model.LinkNode("B", "https://b.com")),
		),
	}
}

// flatForest puts n links in the bookmarks bar.
func flatForest(n int) []model.Node {
	links := make([]model.Node, n)
	for i := range links {
		links[i] = model.LinkNode(fmt.Sprintf("Site %d", i), fmt.Sprintf("https://site%d.com", i))
	}
	return []model.Node{model.FolderNode("", model.FolderNode("Bookmarks bar", links...))}
}

// swapSource serves whatever forest it currently holds.
type swapSource struct {
	forest []model.Node
}

func (s *swapSource) Tree(ctx context.Context) ([]model.Node, error) {
	return s.forest, nil
}

type fakeProber struct {
	results []favicon.Result
}

func (p fakeProber) Probe(ctx context.Context, tiles []tile.Tile) ([]favicon.Result, error) {
	return p.results, nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, app tui.App, msg tea.Msg) (tui.App, tea.Cmd) {
	t.Helper()
	updated, cmd := app.Update(msg)
	return updated.(tui.App), cmd
}

// load presses reload and applies the fetch result.
func load(t *testing.T, app tui.App) tui.App {
	t.Helper()
	app, cmd := send(t, app, runes("r"))
	if cmd == nil {
		t.Fatal("reload returned no command")
	}
	app, _ = send(t, app, cmd())
	return app
}

type fixture struct {
	kv  *prefs.MemoryKV
	rec *browser.Recorder
	app tui.App
}

func newFixture(t *testing.T, forest []model.Node, mutate func(*tui.AppParams)) fixture {
	t.Helper()
	kv := prefs.NewMemoryKV(nil)
	p, err := prefs.Load(kv)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	rec := &browser.Recorder{}
	params := tui.AppParams{
		Prefs:     p,
		Store:     prefs.NewStore(kv),
		Source:    bookmarks.StaticSource{Forest: forest},
		Navigator: rec,
		Clipboard: rec,
		Themes:    []string{"light", "dark", "sepia"},
	}
	if mutate != nil {
		mutate(&params)
	}
	return fixture{kv: kv, rec: rec, app: load(t, tui.NewApp(params))}
}

func stored(t *testing.T, kv *prefs.MemoryKV, key string) string {
	t.Helper()
	v, ok, err := kv.Get(key)
	if err != nil || !ok {
		t.Fatalf("%s not stored (ok=%v, err=%v)", key, ok, err)
	}
	return v
}

func TestApp_Defaults(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	p := f.app.Preferences()
	if p.View != model.ViewGrid || p.Columns != 5 || p.Source != model.ScopeBar || p.Theme != "light" {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if len(p.Shortcuts) != 5 {
		t.Errorf("expected 5 default shortcuts, got %d", len(p.Shortcuts))
	}
	if f.app.Mode() != tui.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", f.app.Mode())
	}
}

func TestApp_BarScopeShowsBarOnly(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	links := f.app.Visible()
	if len(links) != 1 || links[0].Title != "A" {
		t.Errorf("bar scope: got %+v, want only A", links)
	}
}

func TestApp_CycleSource_RefetchesAndPersists(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, cmd := send(t, f.app, runes("b"))
	if cmd == nil {
		t.Fatal("source change should refetch")
	}
	app, _ = send(t, app, cmd())

	if app.Preferences().Source != model.ScopeAll {
		t.Errorf("source = %q, want all", app.Preferences().Source)
	}
	if got := len(app.Visible()); got != 2 {
		t.Errorf("all scope: got %d links, want 2", got)
	}
	if got := stored(t, f.kv, prefs.KeySource); got != "all" {
		t.Errorf("stored source = %q, want all", got)
	}
}

func TestApp_StaleFetchDiscarded(t *testing.T) {
	src := &swapSource{forest: flatForest(1)}
	app := tui.NewApp(tui.AppParams{Prefs: model.DefaultPreferences(), Source: src})

	app, first := send(t, app, runes("r"))
	firstMsg := first()

	src.forest = flatForest(3)
	app, second := send(t, app, runes("r"))
	secondMsg := second()

	// Newest response first, then the late stale one
	app, _ = send(t, app, secondMsg)
	app, _ = send(t, app, firstMsg)

	if got := len(app.Links()); got != 3 {
		t.Errorf("stale response applied: got %d links, want 3", got)
	}
}

func TestApp_StaleFetchIgnoredBeforeLatest(t *testing.T) {
	src := &swapSource{forest: flatForest(2)}
	app := tui.NewApp(tui.AppParams{Prefs: model.DefaultPreferences(), Source: src})

	app, first := send(t, app, runes("r"))
	app, _ = send(t, app, runes("r"))

	app, _ = send(t, app, first())
	if got := len(app.Links()); got != 0 {
		t.Errorf("superseded fetch applied: got %d links", got)
	}
}

func TestApp_UnavailableSource(t *testing.T) {
	f := newFixture(t, nil, func(p *tui.AppParams) {
		p.Source = bookmarks.StaticSource{Err: errors.New("no bookmarks api")}
	})

	if len(f.app.Visible()) != 0 {
		t.Errorf("expected no links, got %d", len(f.app.Visible()))
	}
	if f.app.Message() != "Bookmarks unavailable" {
		t.Errorf("message = %q", f.app.Message())
	}
}

func TestApp_NilSourceIsUnavailable(t *testing.T) {
	f := newFixture(t, nil, func(p *tui.AppParams) {
		p.Source = nil
	})

	if f.app.Message() != "Bookmarks unavailable" {
		t.Errorf("message = %q", f.app.Message())
	}
}

func TestApp_Search_FiltersLive(t *testing.T) {
	f := newFixture(t, barForest(), func(p *tui.AppParams) {
		p.Prefs.Source = model.ScopeAll
	})
	app := f.app

	app, _ = send(t, app, runes("/"))
	if app.Mode() != tui.ModeSearch {
		t.Fatalf("expected ModeSearch, got %v", app.Mode())
	}

	app, _ = send(t, app, runes("b.com"))
	links := app.Visible()
	if len(links) != 1 || links[0].Title != "B" {
		t.Errorf("filter: got %+v, want only B", links)
	}

	// Enter keeps the query applied
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected ModeNormal after enter, got %v", app.Mode())
	}
	if app.Query() != "b.com" || len(app.Visible()) != 1 {
		t.Errorf("query = %q, visible = %d", app.Query(), len(app.Visible()))
	}

	// Refetch keeps the filter
	app = load(t, app)
	if len(app.Visible()) != 1 {
		t.Errorf("after reload: visible = %d, want 1", len(app.Visible()))
	}

	// Esc in normal mode clears it
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.Query() != "" || len(app.Visible()) != 2 {
		t.Errorf("after esc: query = %q, visible = %d", app.Query(), len(app.Visible()))
	}
}

func TestApp_Search_EscClears(t *testing.T) {
	f := newFixture(t, barForest(), func(p *tui.AppParams) {
		p.Prefs.Source = model.ScopeAll
	})

	app, _ := send(t, f.app, runes("/"))
	app, _ = send(t, app, runes("zzz"))
	if len(app.Visible()) != 0 {
		t.Errorf("expected nothing to match, got %d", len(app.Visible()))
	}

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.Mode() != tui.ModeNormal || app.Query() != "" || len(app.Visible()) != 2 {
		t.Errorf("esc: mode=%v query=%q visible=%d", app.Mode(), app.Query(), len(app.Visible()))
	}
}

func TestApp_ToggleView_Persists(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, runes("v"))
	if app.Preferences().View != model.ViewList {
		t.Errorf("view = %q, want list", app.Preferences().View)
	}
	if got := stored(t, f.kv, prefs.KeyView); got != "list" {
		t.Errorf("stored view = %q, want list", got)
	}

	app, _ = send(t, app, runes("v"))
	if app.Preferences().View != model.ViewGrid {
		t.Errorf("view = %q, want grid", app.Preferences().View)
	}
}

func TestApp_Columns_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		want  int
		saved bool
	}{
		{"up once", "+", 6, true},
		{"up past max", "+++", 6, true},
		{"equals also raises", "=", 6, true},
		{"down once", "-", 4, true},
		{"down to min", "------", 2, true},
		{"up then down", "+-", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, barForest(), nil)
			app := f.app
			for _, r := range tt.keys {
				app, _ = send(t, app, runes(string(r)))
			}

			if got := app.Preferences().Columns; got != tt.want {
				t.Errorf("columns = %d, want %d", got, tt.want)
			}
			if got := stored(t, f.kv, prefs.KeyColumns); got != fmt.Sprint(tt.want) {
				t.Errorf("stored columns = %q, want %d", got, tt.want)
			}
		})
	}
}

func TestApp_Columns_NotStoredWhenUnchanged(t *testing.T) {
	f := newFixture(t, barForest(), func(p *tui.AppParams) {
		p.Prefs.Columns = model.MaxColumns
	})

	app, _ := send(t, f.app, runes("+"))
	if app.Preferences().Columns != model.MaxColumns {
		t.Errorf("columns = %d", app.Preferences().Columns)
	}
	if _, ok, _ := f.kv.Get(prefs.KeyColumns); ok {
		t.Error("columns stored without a change")
	}
}

func TestApp_Columns_IgnoredInListView(t *testing.T) {
	f := newFixture(t, barForest(), func(p *tui.AppParams) {
		p.Prefs.View = model.ViewList
	})

	app, _ := send(t, f.app, runes("+"))
	if app.Preferences().Columns != model.DefaultColumns {
		t.Errorf("columns changed in list view: %d", app.Preferences().Columns)
	}
}

func TestApp_CycleTheme(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	want := []string{"dark", "sepia", "light"}
	app := f.app
	for _, theme := range want {
		app, _ = send(t, app, runes("t"))
		if got := app.Preferences().Theme; got != theme {
			t.Errorf("theme = %q, want %q", got, theme)
		}
		if got := stored(t, f.kv, prefs.KeyTheme); got != theme {
			t.Errorf("stored theme = %q, want %q", got, theme)
		}
	}
}

func TestApp_CycleTheme_UnknownStartsCycle(t *testing.T) {
	f := newFixture(t, barForest(), func(p *tui.AppParams) {
		p.Prefs.Theme = "solarized"
	})

	app, _ := send(t, f.app, runes("t"))
	if got := app.Preferences().Theme; got != "light" {
		t.Errorf("theme = %q, want light", got)
	}
}

func TestApp_GridNavigation(t *testing.T) {
	f := newFixture(t, flatForest(7), nil)
	app := f.app

	steps := []struct {
		key  string
		want int
	}{
		{"l", 1},
		{"j", 6},
		{"j", 6}, // no row below
		{"l", 6}, // end of items
		{"h", 5},
		{"k", 0},
	}

	for i, s := range steps {
		app, _ = send(t, app, runes(s.key))
		if app.Cursor() != s.want {
			t.Errorf("step %d (%s): cursor = %d, want %d", i, s.key, app.Cursor(), s.want)
		}
	}

	// Up from the first row moves focus to the shortcut strip
	app, _ = send(t, app, runes("k"))
	if app.Focus() != tui.FocusShortcuts {
		t.Errorf("expected shortcut focus, got %v", app.Focus())
	}
	app, _ = send(t, app, runes("j"))
	if app.Focus() != tui.FocusCards {
		t.Errorf("expected card focus, got %v", app.Focus())
	}
}

func TestApp_ListNavigation(t *testing.T) {
	f := newFixture(t, flatForest(3), func(p *tui.AppParams) {
		p.Prefs.View = model.ViewList
	})
	app := f.app

	app, _ = send(t, app, runes("j"))
	app, _ = send(t, app, runes("j"))
	app, _ = send(t, app, runes("j"))
	if app.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", app.Cursor())
	}
}

func TestApp_OpenCard(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	_, cmd := send(t, f.app, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	cmd()

	if len(f.rec.Opened) != 1 || f.rec.Opened[0] != "https://a.com" {
		t.Errorf("opened = %v", f.rec.Opened)
	}
}

func TestApp_OpenFailureShowsMessage(t *testing.T) {
	f := newFixture(t, barForest(), nil)
	f.rec.Err = errors.New("no browser")

	app, cmd := send(t, f.app, tea.KeyMsg{Type: tea.KeyEnter})
	app, _ = send(t, app, cmd())

	if app.Message() != "Could not open https://a.com" {
		t.Errorf("message = %q", app.Message())
	}
}

func TestApp_YankURL(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, runes("Y"))
	if len(f.rec.Copied) != 1 || f.rec.Copied[0] != "https://a.com" {
		t.Errorf("copied = %v", f.rec.Copied)
	}
	if app.Message() != "Copied https://a.com" {
		t.Errorf("message = %q", app.Message())
	}
}

func TestApp_OpenShortcut(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, tea.KeyMsg{Type: tea.KeyTab})
	if app.Focus() != tui.FocusShortcuts {
		t.Fatalf("expected shortcut focus, got %v", app.Focus())
	}
	app, _ = send(t, app, runes("l"))

	_, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	cmd()
	if len(f.rec.Opened) != 1 || f.rec.Opened[0] != "https://mail.google.com" {
		t.Errorf("opened = %v", f.rec.Opened)
	}
}

func TestApp_AddTileOpensModal(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, tea.KeyMsg{Type: tea.KeyTab})
	for range model.DefaultShortcuts() {
		app, _ = send(t, app, runes("l"))
	}
	if app.ShortcutCursor() != 5 {
		t.Fatalf("shortcut cursor = %d, want 5", app.ShortcutCursor())
	}

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.Mode() != tui.ModeAddShortcut {
		t.Errorf("expected ModeAddShortcut, got %v", app.Mode())
	}
	if len(f.rec.Opened) != 0 {
		t.Errorf("add tile navigated: %v", f.rec.Opened)
	}
}

func TestApp_AddShortcut_Submit(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, runes("a"))
	if app.Mode() != tui.ModeAddShortcut {
		t.Fatalf("expected ModeAddShortcut, got %v", app.Mode())
	}

	app, _ = send(t, app, runes("Docs"))
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app, _ = send(t, app, runes("docs.dev"))
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", app.Mode())
	}

	list := app.Preferences().Shortcuts
	if len(list) != 6 {
		t.Fatalf("expected 6 shortcuts, got %d", len(list))
	}
	if last := list[5]; last.Name != "Docs" || last.URL != "https://docs.dev" {
		t.Errorf("added = %+v", last)
	}

	reloaded, err := prefs.Load(f.kv)
	if err != nil {
		t.Fatalf("reload prefs: %v", err)
	}
	if len(reloaded.Shortcuts) != 6 {
		t.Errorf("stored %d shortcuts, want 6", len(reloaded.Shortcuts))
	}
}

func TestApp_AddShortcut_RejectsEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		url  string
	}{
		{"both empty", "", ""},
		{"no url", "Docs", ""},
		{"no name", "", "docs.dev"},
		{"blank name", "   ", "docs.dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, barForest(), nil)

			app, _ := send(t, f.app, runes("a"))
			if tt.in != "" {
				app, _ = send(t, app, runes(tt.in))
			}
			app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
			if tt.url != "" {
				app, _ = send(t, app, runes(tt.url))
			}
			app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEnter})

			if app.Mode() != tui.ModeAddShortcut {
				t.Errorf("modal closed on invalid input")
			}
			if len(app.Preferences().Shortcuts) != 5 {
				t.Errorf("shortcuts changed: %d", len(app.Preferences().Shortcuts))
			}
			if _, ok, _ := f.kv.Get(prefs.KeyShortcuts); ok {
				t.Error("shortcuts stored on invalid input")
			}
		})
	}
}

func TestApp_AddShortcut_Cancel(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, runes("a"))
	app, _ = send(t, app, runes("Docs"))
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})

	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", app.Mode())
	}
	if len(app.Preferences().Shortcuts) != 5 {
		t.Errorf("shortcuts changed: %d", len(app.Preferences().Shortcuts))
	}
}

func TestApp_FaviconFailures(t *testing.T) {
	prober := fakeProber{results: []favicon.Result{
		{Host: "a.com", Status: favicon.Failed},
		{Host: "github.com", Status: favicon.Loaded},
	}}

	kv := prefs.NewMemoryKV(nil)
	app := tui.NewApp(tui.AppParams{
		Prefs:  model.DefaultPreferences(),
		Store:  prefs.NewStore(kv),
		Source: bookmarks.StaticSource{Forest: barForest()},
		Prober: prober,
	})

	app, fetch := send(t, app, runes("r"))
	app, probe := send(t, app, fetch())
	if probe == nil {
		t.Fatal("loading links should start a favicon probe")
	}
	app, _ = send(t, app, probe())

	r := app.Renderer()
	if !r.Failed["a.com"] {
		t.Error("a.com should be marked failed")
	}
	if r.Failed["github.com"] {
		t.Error("github.com should not be marked failed")
	}
	if got := r.Bookmark(model.Link{Title: "A", URL: "https://a.com"}).Icon; got != tile.IconFallback {
		t.Errorf("icon = %v, want fallback", got)
	}
}

func TestApp_HelpMode(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	app, _ := send(t, f.app, runes("?"))
	if app.Mode() != tui.ModeHelp {
		t.Fatalf("expected ModeHelp, got %v", app.Mode())
	}
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected ModeNormal, got %v", app.Mode())
	}
}

func TestApp_Quit(t *testing.T) {
	f := newFixture(t, barForest(), nil)

	_, cmd := send(t, f.app, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestApp_ChangeSignalRefetches(t *testing.T) {
	changes := make(chan struct{}, 1)
	src := &swapSource{forest: flatForest(1)}
	app := tui.NewApp(tui.AppParams{
		Prefs:   model.DefaultPreferences(),
		Source:  src,
		Changes: changes,
	})
	app = load(t, app)

	src.forest = flatForest(4)
	changes <- struct{}{}

	// Init's batch includes the watcher command; run it directly
	batch, ok := app.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init should batch its commands")
	}
	watch := batch[len(batch)-1]
	app, cmd := send(t, app, watch())

	// The refetch is batched with the next wait
	next, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatal("change should batch a refetch")
	}
	app, _ = send(t, app, next[0]())
	if got := len(app.Links()); got != 4 {
		t.Errorf("links = %d, want 4", got)
	}
}
