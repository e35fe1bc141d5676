package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/favicon"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/prefs"
	"github.com/nikbrunner/tabdeck/internal/profile"
	"github.com/nikbrunner/tabdeck/internal/tile"
)

// env holds the collaborators shared by all commands.
type env struct {
	kv     prefs.KV
	store  *prefs.Store
	prefs  model.Preferences
	source bookmarks.Source
}

// openEnv opens the preference store, loads preferences and picks the
// bookmark source. The --scope flag overrides the stored scope without
// persisting it.
func openEnv() (*env, error) {
	kv, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	p, err := prefs.Load(kv)
	if err != nil {
		closeKV(kv)
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if scopeFlag != "" {
		p = p.WithSource(model.Scope(scopeFlag))
	}

	logger.Debug("preferences loaded",
		zap.String("view", string(p.View)),
		zap.Int("columns", p.Columns),
		zap.String("source", string(p.Source)),
		zap.String("theme", p.Theme),
	)

	return &env{
		kv:     kv,
		store:  prefs.NewStore(kv),
		prefs:  p,
		source: bookmarks.OpenSource(cfg.BookmarksPath),
	}, nil
}

// Close releases the preference store.
func (e *env) Close() {
	closeKV(e.kv)
}

func closeKV(kv prefs.KV) {
	if c, ok := kv.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("close preferences", zap.Error(err))
		}
	}
}

// links fetches the bookmarks for the current scope.
func (e *env) links(ctx context.Context) ([]model.Link, error) {
	links, err := bookmarks.FetchLinks(ctx, e.source, e.prefs.Source)
	if err != nil {
		return nil, err
	}
	logger.Debug("bookmarks fetched", zap.Int("count", len(links)))
	return links, nil
}

// account returns the signed-in profile, or nil when there is none.
func account() *profile.Info {
	info, ok := profile.Lookup(cfg.ProfilePath)
	if !ok {
		return nil
	}
	return &info
}

func newRenderer() tile.Renderer {
	return tile.NewRenderer(cfg.Favicon.Template)
}

// newProber returns the favicon prober, or nil when probing is disabled.
func newProber() *favicon.Prober {
	if !cfg.Favicon.Probe {
		return nil
	}
	return favicon.NewProber(favicon.Options{
		Concurrency: cfg.Favicon.Concurrency,
		Timeout:     cfg.Favicon.Timeout,
		Logger:      logger,
	})
}
