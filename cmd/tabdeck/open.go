package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikbrunner/tabdeck/internal/browser"
	"github.com/nikbrunner/tabdeck/internal/model"
	"github.com/nikbrunner/tabdeck/internal/picker"
	"github.com/nikbrunner/tabdeck/internal/search"
)

// openCmd performs a quick search and opens the selected bookmark.
var openCmd = &cobra.Command{
	Use:   "open <query...>",
	Short: "Search bookmarks and open the selected one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		links, err := e.links(cmd.Context())
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results := search.Lookup(links, query)
		logger.Debug("quick open", zap.String("query", query), zap.Int("results", len(results)))

		if len(results) == 0 {
			fmt.Printf("No bookmarks found for '%s'\n", query)
			return nil
		}

		var selected *model.Link
		if len(results) == 1 {
			// Single result - select it directly
			selected = &results[0].Link
			fmt.Printf("Opening: %s\n", selected.Title)
		} else {
			// Multiple results - show picker
			program := tea.NewProgram(picker.New(results, query), tea.WithContext(cmd.Context()))
			finalModel, err := program.Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			finalPicker := finalModel.(picker.Picker)
			if finalPicker.Cancelled() {
				return nil
			}
			selected = finalPicker.SelectedLink()
		}

		if selected == nil {
			return nil
		}
		return browser.System{}.Open(selected.URL)
	},
}
