package bookmarks_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nikbrunner/tabdeck/internal/bookmarks"
	"github.com/nikbrunner/tabdeck/internal/model"
)

// scenarioForest is a bar holding A and a second folder holding B.
func scenarioForest() []model.Node {
	return []model.Node{
		model.FolderNode("",
			model.FolderNode("Bookmarks bar", model.LinkNode("A", "https://a.com")),
			model.FolderNode("Other bookmarks", model.LinkNode("B", "https://b.com")),
		),
	}
}

func TestFetchLinks_Scopes(t *testing.T) {
	src := bookmarks.StaticSource{Forest: scenarioForest()}

	bar, err := bookmarks.FetchLinks(context.Background(), src, model.ScopeBar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]model.Link{{Title: "A", URL: "https://a.com"}}, bar); diff != "" {
		t.Errorf("bar scope mismatch (-want +got):\n%s", diff)
	}

	all, err := bookmarks.FetchLinks(context.Background(), src, model.ScopeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Link{
		{Title: "A", URL: "https://a.com"},
		{Title: "B", URL: "https://b.com"},
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("all scope mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchLinks_MissingBarIsEmpty(t *testing.T) {
	src := bookmarks.StaticSource{Forest: []model.Node{model.FolderNode("")}}

	links, err := bookmarks.FetchLinks(context.Background(), src, model.ScopeBar)
	if err != nil {
		t.Fatalf("missing bar should not be an error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %d", len(links))
	}
}

func TestFetchLinks_Unavailable(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := bookmarks.FetchLinks(context.Background(), nil, model.ScopeAll)
		if !errors.Is(err, bookmarks.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		src := bookmarks.NewChromeSource(filepath.Join(t.TempDir(), "Bookmarks"))
		links, err := bookmarks.FetchLinks(context.Background(), src, model.ScopeBar)
		if !errors.Is(err, bookmarks.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
		if links != nil {
			t.Errorf("expected nil links on error, got %v", links)
		}
	})

	t.Run("source error", func(t *testing.T) {
		src := bookmarks.StaticSource{Err: bookmarks.ErrUnavailable}
		_, err := bookmarks.FetchLinks(context.Background(), src, model.ScopeAll)
		if !errors.Is(err, bookmarks.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestOpenSource(t *testing.T) {
	tests := []struct {
		path     string
		wantHTML bool
	}{
		{"/tmp/Bookmarks", false},
		{"/tmp/bookmarks.html", true},
		{"/tmp/export.HTM", true},
		{"/tmp/bookmarks.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, isHTML := bookmarks.OpenSource(tt.path).(*bookmarks.HTMLSource)
			if isHTML != tt.wantHTML {
				t.Errorf("OpenSource(%q) html = %v, want %v", tt.path, isHTML, tt.wantHTML)
			}
		})
	}
}

func TestSequencer(t *testing.T) {
	var seq bookmarks.Sequencer

	if seq.IsLatest(0) {
		t.Error("zero should never be latest")
	}

	first := seq.Next()
	if !seq.IsLatest(first) {
		t.Error("first request should be latest right after issue")
	}

	second := seq.Next()
	if seq.IsLatest(first) {
		t.Error("first request should be stale after a second is issued")
	}
	if !seq.IsLatest(second) {
		t.Error("second request should be latest")
	}
	if seq.Latest() != second {
		t.Errorf("Latest() = %d, want %d", seq.Latest(), second)
	}
}
