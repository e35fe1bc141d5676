package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/config"
	"github.com/nikbrunner/tabdeck/internal/logging"
	"github.com/nikbrunner/tabdeck/internal/model"
)

var (
	// Global flags
	configPath    string
	bookmarksPath string
	scopeFlag     string
	verbose       bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the start page TUI.
var rootCmd = &cobra.Command{
	Use:   "tabdeck",
	Short: "tabdeck - a terminal new tab page for your browser bookmarks",
	Long: `tabdeck shows your browser bookmarks as a searchable grid of cards,
with shortcut tiles, a clock, and switchable themes.

Run without arguments to open the interactive start page.

Keybindings:
  h/j/k/l     Move between cards
  tab         Switch between cards and shortcuts
  enter       Open the selected tile
  /           Search bookmarks
  v           Toggle grid/list view
  +/-         More/fewer columns
  t           Cycle theme
  b           Bookmarks bar / all bookmarks
  a           Add shortcut
  Y           Copy URL
  ?           Help
  q           Quit`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return fmt.Errorf("config path: %w", err)
			}
		}

		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if bookmarksPath != "" {
			loaded.BookmarksPath = config.ExpandHome(bookmarksPath)
		}
		if scopeFlag != "" && !model.Scope(scopeFlag).Valid() {
			return fmt.Errorf("invalid --scope %q: want bar or all", scopeFlag)
		}
		cfg = loaded

		// The TUI owns the terminal, so logs always go to the file
		logger, err = logging.New(logging.Options{Path: cfg.LogPath, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("config loaded", zap.String("path", path), zap.String("bookmarks", cfg.BookmarksPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/tabdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&bookmarksPath, "bookmarks", "", "Bookmarks file (Chromium JSON or Netscape HTML)")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "", "Bookmark scope for this run: bar or all")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Shortcut subcommands
	shortcutCmd.AddCommand(shortcutAddCmd)
	shortcutCmd.AddCommand(shortcutListCmd)

	// Add commands to root
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(shortcutCmd)
	rootCmd.AddCommand(prefsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
