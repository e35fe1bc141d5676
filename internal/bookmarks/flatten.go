package bookmarks

import "github.com/nikbrunner/tabdeck/internal/model"

// Flatten walks the forest in pre-order and returns every link node in
// encounter order. A node is emitted when it has a URL and, independently,
// its children are visited when it has any.
//
// The walk uses an explicit stack so deeply nested folders cannot exhaust
// the goroutine stack.
func Flatten(forest []model.Node) []model.Link {
	links := []model.Link{}

	// Push in reverse so the first sibling is popped first
	stack := make([]*model.Node, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, &forest[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsLink() {
			links = append(links, model.Link{Title: n.Title, URL: *n.URL})
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, &n.Children[i])
		}
	}

	return links
}

// BarChildren returns the children of the first child of the first root,
// which is the bookmarks bar folder by convention. Returns nil when that
// folder is missing or empty.
func BarChildren(forest []model.Node) []model.Node {
	if len(forest) == 0 {
		return nil
	}
	root := forest[0]
	if len(root.Children) == 0 {
		return nil
	}
	return root.Children[0].Children
}
