package tui

import (
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/tile"
)

// ItemKind distinguishes the things a cursor can rest on.
type ItemKind int

const (
	ItemBookmark ItemKind = iota
	ItemShortcut
	ItemAddShortcut
)

// Item is a selectable tile.
type Item struct {
	Kind ItemKind
	Tile tile.Tile
}

// URL returns the item's target, empty for the add tile.
func (i Item) URL() string {
	if i.Kind == ItemAddShortcut {
		return ""
	}
	return i.Tile.URL
}

// Title returns a display title for the item.
func (i Item) Title() string {
	if i.Kind == ItemAddShortcut {
		return "Add shortcut"
	}
	return i.Tile.Title
}

// bookmarkItems renders links as bookmark items.
func bookmarkItems(r tile.Renderer, links []model.Link) []Item {
	tiles := r.Bookmarks(links)
	items := make([]Item, len(tiles))
	for i, t := range tiles {
		items[i] = Item{Kind: ItemBookmark, Tile: t}
	}
	return items
}

// shortcutItems renders the shortcut strip, ending with the add tile.
func shortcutItems(r tile.Renderer, list []model.Shortcut) []Item {
	tiles := r.Shortcuts(list)
	items := make([]Item, 0, len(tiles)+1)
	for _, t := range tiles {
		items = append(items, Item{Kind: ItemShortcut, Tile: t})
	}
	return append(items, Item{Kind: ItemAddShortcut, Tile: tile.Tile{Kind: tile.KindShortcut, Letter: "+", Icon: tile.IconFallback}})
}
