package tile

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// DefaultFaviconTemplate is the favicon service URL; %s receives the hostname.
const DefaultFaviconTemplate = "https://www.google.com/s2/favicons?domain=%s&sz=64"

// Kind distinguishes bookmark cards from shortcut tiles.
type Kind int

const (
	KindBookmark Kind = iota
	KindShortcut
)

// IconState records which icon a tile shows.
type IconState int

const (
	IconPrimary  IconState = iota // remote favicon
	IconFallback                  // generated letter avatar
)

// Tile is the rendered form of a bookmark or shortcut.
type Tile struct {
	Kind    Kind
	Title   string // display title (bookmark) or name (shortcut)
	URL     string
	Host    string
	IconURL string // empty when the hostname could not be resolved
	Icon    IconState
	Letter  string // avatar letter, always set
}

// Fallback returns the tile switched to its letter avatar. A tile that is
// already in fallback is returned unchanged, so a failing avatar can never
// trigger another substitution.
func (t Tile) Fallback() Tile {
	if t.Icon == IconFallback {
		return t
	}
	t.Icon = IconFallback
	return t
}

// Rounded reports whether the avatar uses a rounded square background.
// Bookmark cards do; shortcut tiles use a plain background.
func (t Tile) Rounded() bool {
	return t.Kind == KindBookmark
}

// Renderer builds tiles. Failed holds hostnames whose favicon is known not
// to load; tiles for those hosts start in fallback.
type Renderer struct {
	FaviconTemplate string
	Failed          map[string]bool
}

// NewRenderer creates a Renderer using the given favicon template.
// An empty template selects DefaultFaviconTemplate.
func NewRenderer(template string) Renderer {
	if template == "" {
		template = DefaultFaviconTemplate
	}
	return Renderer{FaviconTemplate: template, Failed: map[string]bool{}}
}

// WithFailures returns a copy of r that also treats hosts as failed.
func (r Renderer) WithFailures(hosts []string) Renderer {
	failed := make(map[string]bool, len(r.Failed)+len(hosts))
	for h := range r.Failed {
		failed[h] = true
	}
	for _, h := range hosts {
		failed[h] = true
	}
	r.Failed = failed
	return r
}

// Bookmark renders a bookmark card.
func (r Renderer) Bookmark(l model.Link) Tile {
	title := DisplayTitle(l)
	return r.build(KindBookmark, title, l.URL)
}

// Bookmarks renders every link in order.
func (r Renderer) Bookmarks(links []model.Link) []Tile {
	tiles := make([]Tile, len(links))
	for i, l := range links {
		tiles[i] = r.Bookmark(l)
	}
	return tiles
}

// Shortcut renders a shortcut tile. The avatar letter comes from the name.
func (r Renderer) Shortcut(s model.Shortcut) Tile {
	return r.build(KindShortcut, s.Name, s.URL)
}

// Shortcuts renders every shortcut in order.
func (r Renderer) Shortcuts(list []model.Shortcut) []Tile {
	tiles := make([]Tile, len(list))
	for i, s := range list {
		tiles[i] = r.Shortcut(s)
	}
	return tiles
}

// build decides the icon before the tile exists: primary only when a
// favicon URL resolves and the host has not failed before.
func (r Renderer) build(kind Kind, title, rawURL string) Tile {
	t := Tile{
		Kind:   kind,
		Title:  title,
		URL:    rawURL,
		Letter: Letter(title),
		Icon:   IconFallback,
	}

	host, ok := Hostname(rawURL)
	if !ok {
		return t
	}
	t.Host = host
	t.IconURL = FaviconURL(r.FaviconTemplate, host)
	if !r.Failed[host] {
		t.Icon = IconPrimary
	}
	return t
}

// DisplayTitle returns the trimmed title, else the hostname without a
// leading "www.", else the raw URL.
func DisplayTitle(l model.Link) string {
	if t := strings.TrimSpace(l.Title); t != "" {
		return t
	}
	host, ok := Hostname(l.URL)
	if !ok {
		return l.URL
	}
	return strings.TrimPrefix(host, "www.")
}

// Hostname extracts the hostname of an absolute URL.
func Hostname(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return u.Hostname(), true
}

// FaviconURL fills the favicon template with host.
func FaviconURL(template, host string) string {
	if template == "" {
		template = DefaultFaviconTemplate
	}
	return fmt.Sprintf(template, url.QueryEscape(host))
}

// Letter returns the upper-cased first character of title, or "?".
func Letter(title string) string {
	r, _ := utf8.DecodeRuneInString(title)
	if title == "" || r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
