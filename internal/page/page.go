// Package page renders the static HTML start page.
package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nikbrunner/tabdeck/internal/clock"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/profile"
	"github.com/nikbrunner/tabdeck/internal/tile"
)

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Card is a tile prepared for the template.
type Card struct {
	Title    string
	URL      string
	RawTitle string       // stored title, matched by the live search
	Image    template.URL // favicon URL or avatar data URI
	Fallback string       // avatar data URI swapped in when Image fails
	Rounded  bool
}

// Data is everything the page template needs.
type Data struct {
	Theme      string
	Themes     []string
	View       model.ViewMode
	Columns    int
	ShowCols   bool
	Source     model.Scope
	Clock      string
	Account    *profile.Info
	Shortcuts  []Card
	Cards      []Card
	Empty      bool
	MinColumns int
	MaxColumns int
}

// Params holds the inputs for Build.
type Params struct {
	Prefs    model.Preferences
	Links    []model.Link
	Renderer tile.Renderer
	Themes   []string
	Now      time.Time
	Account  *profile.Info
}

// Build assembles page data from preferences and already filtered links.
func Build(p Params) Data {
	return Data{
		Theme:      p.Prefs.Theme,
		Themes:     p.Themes,
		View:       p.Prefs.View,
		Columns:    p.Prefs.Columns,
		ShowCols:   p.Prefs.View == model.ViewGrid,
		Source:     p.Prefs.Source,
		Clock:      clock.Format(p.Now),
		Account:    p.Account,
		Shortcuts:  cards(p.Renderer.Shortcuts(p.Prefs.Shortcuts)),
		Cards:      bookmarkCards(p.Renderer, p.Links),
		Empty:      len(p.Links) == 0,
		MinColumns: model.MinColumns,
		MaxColumns: model.MaxColumns,
	}
}

// bookmarkCards keeps each link's stored title next to its display title so
// the page search matches the same fields as search.Filter.
func bookmarkCards(r tile.Renderer, links []model.Link) []Card {
	out := cards(r.Bookmarks(links))
	for i, l := range links {
		out[i].RawTitle = l.Title
	}
	return out
}

func cards(tiles []tile.Tile) []Card {
	out := make([]Card, len(tiles))
	for i, t := range tiles {
		out[i] = Card{
			Title:    t.Title,
			URL:      t.URL,
			Image:    template.URL(t.ImageSource()),
			Fallback: t.Fallback().AvatarDataURI(),
			Rounded:  t.Rounded(),
		}
	}
	return out
}

// Render writes the page to w.
func Render(w io.Writer, data Data) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Write renders the page into the file at path.
// Creates the directory if it doesn't exist.
func Write(path string, data Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultPath returns the default page path: ~/.config/tabdeck/newtab.html
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tabdeck", "newtab.html"), nil
}
