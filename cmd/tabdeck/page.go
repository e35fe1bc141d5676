package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/favicon"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/page"
	"github.com/nikbrunner/tabdeck/internal/tile"
)

// pageCmd writes the static HTML start page.
var pageCmd = &cobra.Command{
	Use:   "page [path]",
	Short: "Write the static HTML start page (default ~/.config/tabdeck/newtab.html)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := ""
		if len(args) == 1 {
			outputPath = args[0]
		} else {
			var err error
			outputPath, err = page.DefaultPath()
			if err != nil {
				return fmt.Errorf("default page path: %w", err)
			}
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		links, err := e.links(cmd.Context())
		if err != nil {
			return err
		}

		renderer := probeRenderer(cmd.Context(), newRenderer(), links, e)
		data := page.Build(page.Params{
			Prefs:    e.prefs,
			Links:    links,
			Renderer: renderer,
			Themes:   cfg.Themes,
			Now:      time.Now(),
			Account:  account(),
		})

		if err := page.Write(outputPath, data); err != nil {
			return err
		}

		logger.Info("page written", zap.String("path", outputPath), zap.Int("cards", len(data.Cards)))
		fmt.Printf("Wrote %d bookmarks, %d shortcuts to %s\n", len(data.Cards), len(data.Shortcuts), outputPath)
		return nil
	},
}

// probeRenderer marks hosts whose favicon does not load so the page starts
// them on the letter avatar. Without probing the page relies on the
// browser's load failure handler alone.
func probeRenderer(ctx context.Context, r tile.Renderer, links []model.Link, e *env) tile.Renderer {
	prober := newProber()
	if prober == nil {
		return r
	}

	tiles := append(r.Bookmarks(links), r.Shortcuts(e.prefs.Shortcuts)...)
	results, err := prober.Probe(ctx, tiles)
	if err != nil {
		logger.Warn("favicon probe interrupted", zap.Error(err))
	}
	failed := favicon.FailedHosts(results)
	logger.Debug("favicons probed", zap.Int("hosts", len(results)), zap.Int("failed", len(failed)))
	return r.WithFailures(failed)
}
