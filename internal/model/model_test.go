package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nikbrunner/tabdeck/internal/model"
)

func TestClampColumns(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{10, 6},
		{7, 6},
		{6, 6},
		{4, 4},
		{2, 2},
		{0, 2},
		{-3, 2},
	}

	for _, tt := range tests {
		if got := model.ClampColumns(tt.in); got != tt.want {
			t.Errorf("ClampColumns(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !model.ViewGrid.Valid() || !model.ViewList.Valid() {
		t.Error("grid and list should be valid views")
	}
	if model.ViewMode("tiles").Valid() {
		t.Error("unknown view should be invalid")
	}
	if !model.ScopeBar.Valid() || !model.ScopeAll.Valid() {
		t.Error("bar and all should be valid scopes")
	}
	if model.Scope("").Valid() {
		t.Error("empty scope should be invalid")
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := model.DefaultPreferences()

	want := model.Preferences{
		View:      model.ViewGrid,
		Columns:   5,
		Source:    model.ScopeBar,
		Theme:     "light",
		Shortcuts: model.DefaultShortcuts(),
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestWith_LeavesOriginal(t *testing.T) {
	p := model.DefaultPreferences()

	q := p.WithView(model.ViewList).WithColumns(3).WithSource(model.ScopeAll).WithTheme("dark")

	if p.View != model.ViewGrid || p.Columns != 5 || p.Source != model.ScopeBar || p.Theme != "light" {
		t.Errorf("original changed: %+v", p)
	}
	if q.View != model.ViewList || q.Columns != 3 || q.Source != model.ScopeAll || q.Theme != "dark" {
		t.Errorf("copy not updated: %+v", q)
	}
}

func TestWithShortcuts_Copies(t *testing.T) {
	list := []model.Shortcut{{Name: "Go", URL: "https://go.dev"}}
	p := model.DefaultPreferences().WithShortcuts(list)

	list[0].Name = "changed"
	if p.Shortcuts[0].Name != "Go" {
		t.Errorf("WithShortcuts shares the caller's slice")
	}

	if got := p.WithShortcuts(nil).Shortcuts; got != nil {
		t.Errorf("WithShortcuts(nil) = %v, want nil", got)
	}
}

func TestNodeKinds(t *testing.T) {
	link := model.LinkNode("Go", "https://go.dev")
	if !link.IsLink() || link.IsFolder() {
		t.Errorf("link node: IsLink=%v IsFolder=%v", link.IsLink(), link.IsFolder())
	}

	empty := model.FolderNode("Empty")
	if empty.IsLink() || !empty.IsFolder() {
		t.Errorf("empty folder: IsLink=%v IsFolder=%v", empty.IsLink(), empty.IsFolder())
	}
}
