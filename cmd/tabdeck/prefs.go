package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// prefsView is the printed form of the effective preferences.
type prefsView struct {
	View      model.ViewMode   `yaml:"view"`
	Columns   int              `yaml:"columns"`
	Source    model.Scope      `yaml:"source"`
	Theme     string           `yaml:"theme"`
	Shortcuts []model.Shortcut `yaml:"shortcuts"`
	Store     string           `yaml:"store"`
}

// prefsCmd prints the preferences the start page would use.
var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Print effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()

		if err := enc.Encode(prefsView{
			View:      e.prefs.View,
			Columns:   e.prefs.Columns,
			Source:    e.prefs.Source,
			Theme:     e.prefs.Theme,
			Shortcuts: e.prefs.Shortcuts,
			Store:     cfg.PrefsPath,
		}); err != nil {
			return fmt.Errorf("print preferences: %w", err)
		}
		return nil
	},
}
