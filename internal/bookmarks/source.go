package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// ErrUnavailable is returned when the bookmark host cannot provide a tree.
var ErrUnavailable = errors.New("bookmark source unavailable")

// Source provides the host bookmark hierarchy as a forest of roots.
type Source interface {
	Tree(ctx context.Context) ([]model.Node, error)
}

// FetchLinks retrieves the tree from src and flattens the part selected by scope.
// ScopeBar restricts the walk to the bookmarks bar folder; a missing bar
// yields an empty result. Any other scope walks every root.
func FetchLinks(ctx context.Context, src Source, scope model.Scope) ([]model.Link, error) {
	if src == nil {
		return nil, fmt.Errorf("fetch links: %w", ErrUnavailable)
	}

	forest, err := src.Tree(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch links: %w", err)
	}

	if scope == model.ScopeBar {
		return Flatten(BarChildren(forest)), nil
	}
	return Flatten(forest), nil
}

// OpenSource picks a Source implementation for the given file.
// Netscape HTML exports are recognised by extension; anything else is read
// as a Chromium Bookmarks file.
func OpenSource(path string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return NewHTMLSource(path)
	default:
		return NewChromeSource(path)
	}
}

// StaticSource serves a fixed forest.
type StaticSource struct {
	Forest []model.Node
	Err    error
}

// Tree implements Source.
func (s StaticSource) Tree(ctx context.Context) ([]model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Forest, nil
}
