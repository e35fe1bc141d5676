package bookmarks

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// HTMLSource reads a Netscape bookmark HTML export, as written by every
// major browser's "Export bookmarks" action.
type HTMLSource struct {
	path string
}

// NewHTMLSource creates an HTMLSource for the given file path.
func NewHTMLSource(path string) *HTMLSource {
	return &HTMLSource{path: path}
}

// Path returns the export file path.
func (s *HTMLSource) Path() string {
	return s.path
}

// Tree implements Source.
func (s *HTMLSource) Tree(ctx context.Context) ([]model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer file.Close()

	forest, err := ParseHTMLTree(file)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}
	return forest, nil
}

// treeNode is a mutable node used while the document is being walked.
type treeNode struct {
	title    string
	url      *string
	children []*treeNode
	folder   bool
}

func (t *treeNode) toNode() model.Node {
	if !t.folder {
		return model.Node{Title: t.title, URL: t.url}
	}
	node := model.FolderNode(t.title)
	for _, c := range t.children {
		node.Children = append(node.Children, c.toNode())
	}
	return node
}

// ParseHTMLTree parses Netscape bookmark HTML into a forest with one
// synthetic root. The root's children are the top-level entries of the
// outermost list, so the first exported folder plays the bookmarks bar.
func ParseHTMLTree(r io.Reader) ([]model.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	root := &treeNode{folder: true}

	// Folder stack for hierarchy; the root is always at the bottom
	stack := []*treeNode{root}
	var pending *treeNode // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				parent := stack[len(stack)-1]
				folder := &treeNode{title: textContent(n), folder: true}
				parent.children = append(parent.children, folder)
				pending = folder
				return

			case "a":
				href := attr(n, "href")
				if href == "" {
					return
				}
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, &treeNode{
					title: textContent(n),
					url:   &href,
				})
				return

			case "dl":
				pushed := false
				if pending != nil {
					stack = append(stack, pending)
					pending = nil
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					stack = stack[:len(stack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return []model.Node{root.toNode()}, nil
}

// textContent returns the trimmed text content of a node.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// attr returns the value of an attribute, case-insensitive.
func attr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}
