// Package shortcuts manages the user's shortcut tiles.
package shortcuts

import (
	"strings"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// Persister saves the full shortcut list.
type Persister interface {
	SetShortcuts(p model.Preferences, list []model.Shortcut) (model.Preferences, error)
}

// Manager appends shortcuts and persists the result.
type Manager struct {
	store Persister
}

// NewManager creates a Manager writing through store.
func NewManager(store Persister) *Manager {
	return &Manager{store: store}
}

// NormalizeURL trims raw and prefixes https:// unless it already carries an
// http or https scheme.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	return "https://" + u
}

// Add appends a shortcut to p and persists the whole list. It reports false
// and leaves p untouched when the trimmed name or URL is empty.
func (m *Manager) Add(p model.Preferences, name, rawURL string) (model.Preferences, bool, error) {
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)
	if name == "" || rawURL == "" {
		return p, false, nil
	}

	list := make([]model.Shortcut, 0, len(p.Shortcuts)+1)
	list = append(list, p.Shortcuts...)
	list = append(list, model.Shortcut{Name: name, URL: NormalizeURL(rawURL)})

	next, err := m.store.SetShortcuts(p, list)
	return next, true, err
}
