package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/tui"
)

// watchDebounce coalesces the burst of events a browser produces when it
// rewrites the bookmarks file.
const watchDebounce = 300 * time.Millisecond

// runTUI runs the interactive start page.
func runTUI(ctx context.Context) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	renderer := newRenderer()
	params := tui.AppParams{
		Prefs:    e.prefs,
		Store:    e.store,
		Source:   e.source,
		Renderer: &renderer,
		Logger:   logger,
		Account:  account(),
		Themes:   cfg.Themes,
	}
	if prober := newProber(); prober != nil {
		params.Prober = prober
	}

	if cfg.Watch {
		watcher, err := startWatcher(ctx, cfg.BookmarksPath)
		if err != nil {
			// Live reload is optional; the page still works without it
			logger.Warn("bookmarks watcher unavailable", zap.Error(err))
		} else {
			defer watcher.Stop()
			params.Changes = watcher.Changes()
		}
	}

	logger.Info("starting tui", zap.String("bookmarks", cfg.BookmarksPath))
	p := tea.NewProgram(tui.NewApp(params), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func startWatcher(ctx context.Context, path string) (*bookmarks.Watcher, error) {
	w, err := bookmarks.NewWatcher(path, watchDebounce, logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
