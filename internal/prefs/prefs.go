package prefs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// Preference keys.
const (
	KeyView      = "ext_view"
	KeyColumns   = "ext_cols"
	KeySource    = "ext_source"
	KeyTheme     = "ext_theme"
	KeyShortcuts = "ext_user_shortcuts"
)

// Store reads and writes Preferences field by field.
type Store struct {
	kv KV
}

// NewStore creates a Store backed by kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the preferences stored in kv. See Store.Load.
func Load(kv KV) (model.Preferences, error) {
	return NewStore(kv).Load()
}

// Load reads every preference, applying the default for any field that is
// absent or invalid. The column count is clamped to its allowed range.
func (s *Store) Load() (model.Preferences, error) {
	p := model.DefaultPreferences()

	if v, ok, err := s.kv.Get(KeyView); err != nil {
		return p, fmt.Errorf("load %s: %w", KeyView, err)
	} else if ok && model.ViewMode(v).Valid() {
		p.View = model.ViewMode(v)
	}

	if v, ok, err := s.kv.Get(KeyColumns); err != nil {
		return p, fmt.Errorf("load %s: %w", KeyColumns, err)
	} else if ok {
		p.Columns = ParseColumns(v)
	}

	if v, ok, err := s.kv.Get(KeySource); err != nil {
		return p, fmt.Errorf("load %s: %w", KeySource, err)
	} else if ok && model.Scope(v).Valid() {
		p.Source = model.Scope(v)
	}

	if v, ok, err := s.kv.Get(KeyTheme); err != nil {
		return p, fmt.Errorf("load %s: %w", KeyTheme, err)
	} else if ok && v != "" {
		p.Theme = v
	}

	if v, ok, err := s.kv.Get(KeyShortcuts); err != nil {
		return p, fmt.Errorf("load %s: %w", KeyShortcuts, err)
	} else if ok {
		var list []model.Shortcut
		if err := json.Unmarshal([]byte(v), &list); err == nil && list != nil {
			p.Shortcuts = list
		}
	}

	return p, nil
}

// ParseColumns converts a stored column count. The leading integer is used,
// so "4.5" reads as 4 and "3px" as 3. Values without one give the default;
// numbers are clamped to [MinColumns, MaxColumns].
func ParseColumns(v string) int {
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return model.DefaultColumns
	}
	return model.ClampColumns(n)
}

// SetView persists the view mode and returns the updated preferences.
func (s *Store) SetView(p model.Preferences, v model.ViewMode) (model.Preferences, error) {
	next := p.WithView(v)
	return next, s.set(KeyView, string(v))
}

// SetColumns persists the column count and returns the updated preferences.
func (s *Store) SetColumns(p model.Preferences, n int) (model.Preferences, error) {
	next := p.WithColumns(n)
	return next, s.set(KeyColumns, strconv.Itoa(next.Columns))
}

// SetSource persists the bookmark scope and returns the updated preferences.
func (s *Store) SetSource(p model.Preferences, scope model.Scope) (model.Preferences, error) {
	next := p.WithSource(scope)
	return next, s.set(KeySource, string(scope))
}

// SetTheme persists the theme and returns the updated preferences.
// Any theme name is accepted.
func (s *Store) SetTheme(p model.Preferences, theme string) (model.Preferences, error) {
	next := p.WithTheme(theme)
	return next, s.set(KeyTheme, theme)
}

// SetShortcuts persists the whole shortcut list and returns the updated preferences.
func (s *Store) SetShortcuts(p model.Preferences, list []model.Shortcut) (model.Preferences, error) {
	if list == nil {
		list = []model.Shortcut{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return p, fmt.Errorf("encode shortcuts: %w", err)
	}
	next := p.WithShortcuts(list)
	return next, s.set(KeyShortcuts, string(data))
}

func (s *Store) set(key, value string) error {
	if err := s.kv.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
