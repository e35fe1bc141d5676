// Package config loads the tabdeck YAML configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/tile"
)

// Config holds application configuration.
type Config struct {
	BookmarksPath string        `yaml:"bookmarks_path"`
	ProfilePath   string        `yaml:"profile_path"`
	PrefsPath     string        `yaml:"prefs_path"`
	LogPath       string        `yaml:"log_path"`
	Favicon       FaviconConfig `yaml:"favicon"`
	Themes        []string      `yaml:"themes"`
	Watch         bool          `yaml:"watch"`
}

// FaviconConfig controls favicon URLs and the reachability probe.
type FaviconConfig struct {
	Template    string        `yaml:"template"`
	Probe       bool          `yaml:"probe"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// DefaultThemes lists the themes offered by the theme switch.
var DefaultThemes = []string{"light", "dark", "sepia", "nord"}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	dir, _ := Dir()

	bookmarksPath, _ := bookmarks.DefaultChromePath()
	profilePath, _ := bookmarks.DefaultChromePreferencesPath()

	return Config{
		BookmarksPath: bookmarksPath,
		ProfilePath:   profilePath,
		PrefsPath:     filepath.Join(dir, "prefs.db"),
		LogPath:       filepath.Join(dir, "tabdeck.log"),
		Favicon: FaviconConfig{
			Template:    tile.DefaultFaviconTemplate,
			Probe:       true,
			Timeout:     5 * time.Second,
			Concurrency: 8,
		},
		Themes: append([]string(nil), DefaultThemes...),
		Watch:  true,
	}
}

// Dir returns the config directory: ~/.config/tabdeck
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdeck"), nil
}

// DefaultPath returns the default config path: ~/.config/tabdeck/config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config from the YAML file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Non-fatal: defaults still apply when the file can't be written
			_ = Save(path, &config)
			return &config, nil
		}
		return nil, err
	}

	// Fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	config.fillBlanks()
	config.expand()

	return &config, nil
}

// Save writes config to the YAML file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) fillBlanks() {
	defaults := DefaultConfig()
	if c.BookmarksPath == "" {
		c.BookmarksPath = defaults.BookmarksPath
	}
	if c.ProfilePath == "" {
		c.ProfilePath = defaults.ProfilePath
	}
	if c.PrefsPath == "" {
		c.PrefsPath = defaults.PrefsPath
	}
	if c.LogPath == "" {
		c.LogPath = defaults.LogPath
	}
	if c.Favicon.Template == "" {
		c.Favicon.Template = defaults.Favicon.Template
	}
	if c.Favicon.Timeout <= 0 {
		c.Favicon.Timeout = defaults.Favicon.Timeout
	}
	if c.Favicon.Concurrency <= 0 {
		c.Favicon.Concurrency = defaults.Favicon.Concurrency
	}
	if len(c.Themes) == 0 {
		c.Themes = defaults.Themes
	}
}

func (c *Config) expand() {
	c.BookmarksPath = ExpandHome(c.BookmarksPath)
	c.ProfilePath = ExpandHome(c.ProfilePath)
	c.PrefsPath = ExpandHome(c.PrefsPath)
	c.LogPath = ExpandHome(c.LogPath)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
