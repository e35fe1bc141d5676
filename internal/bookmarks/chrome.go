package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// chromeFile mirrors the subset of the Chromium Bookmarks file we read.
type chromeFile struct {
	Roots struct {
		BookmarkBar *chromeNode `json:"bookmark_bar"`
		Other       *chromeNode `json:"other"`
		Synced      *chromeNode `json:"synced"`
	} `json:"roots"`
}

type chromeNode struct {
	Type     string       `json:"type"` // "url" or "folder"
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Children []chromeNode `json:"children"`
}

// ChromeSource reads a Chromium-family Bookmarks JSON file.
type ChromeSource struct {
	path string
}

// NewChromeSource creates a ChromeSource for the given file path.
func NewChromeSource(path string) *ChromeSource {
	return &ChromeSource{path: path}
}

// Path returns the bookmarks file path.
func (s *ChromeSource) Path() string {
	return s.path
}

// Tree implements Source. The forest holds one synthetic root whose
// children are the bookmarks bar, other bookmarks and mobile bookmarks,
// in that order. The bar slot is always first; a file without a bar gets an
// empty folder there so bar scope never reads another root.
func (s *ChromeSource) Tree(ctx context.Context) ([]model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var file chromeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}

	root := model.FolderNode("")
	if file.Roots.BookmarkBar == nil {
		root.Children = append(root.Children, model.FolderNode(""))
	} else {
		root.Children = append(root.Children, file.Roots.BookmarkBar.toNode())
	}
	for _, r := range []*chromeNode{file.Roots.Other, file.Roots.Synced} {
		if r != nil {
			root.Children = append(root.Children, r.toNode())
		}
	}

	return []model.Node{root}, nil
}

// toNode converts a Chromium node into a model.Node.
func (n chromeNode) toNode() model.Node {
	if n.Type == "url" {
		return model.LinkNode(n.Name, n.URL)
	}

	node := model.FolderNode(n.Name)
	for _, c := range n.Children {
		node.Children = append(node.Children, c.toNode())
	}
	return node
}

// DefaultChromePath returns the default Chrome profile Bookmarks path for this OS.
func DefaultChromePath() (string, error) {
	return chromeProfileFile("Bookmarks")
}

// DefaultChromePreferencesPath returns the default Chrome profile Preferences path.
func DefaultChromePreferencesPath() (string, error) {
	return chromeProfileFile("Preferences")
}

func chromeProfileFile(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome", "Default", name), nil
	case "windows":
		return filepath.Join(homeDir, "AppData", "Local", "Google", "Chrome", "User Data", "Default", name), nil
	default:
		return filepath.Join(homeDir, ".config", "google-chrome", "Default", name), nil
	}
}
