package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/shortcuts"
)

var shortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Manage shortcut tiles",
}

// shortcutAddCmd appends a shortcut tile.
var shortcutAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a shortcut tile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		next, added, err := shortcuts.NewManager(e.store).Add(e.prefs, args[0], args[1])
		if !added {
			return errors.New("shortcut name and url are required")
		}
		if err != nil {
			return err
		}

		sc := next.Shortcuts[len(next.Shortcuts)-1]
		logger.Info("shortcut added", zap.String("name", sc.Name), zap.String("url", sc.URL))
		fmt.Printf("Added %s -> %s\n", sc.Name, sc.URL)
		return nil
	},
}

// shortcutListCmd prints the shortcut tiles in strip order.
var shortcutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shortcut tiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if len(e.prefs.Shortcuts) == 0 {
			fmt.Println("No shortcuts")
			return nil
		}
		for _, sc := range e.prefs.Shortcuts {
			fmt.Printf("%-16s %s\n", sc.Name, sc.URL)
		}
		return nil
	},
}
