package model

// Link is a single bookmark entry produced by flattening the bookmark tree.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Node is one entry of the host bookmark hierarchy.
// A node with a URL is a link; a node with Children is a folder.
// A node may be neither (an empty folder).
type Node struct {
	Title    string  `json:"title"`
	URL      *string `json:"url,omitempty"`
	Children []Node  `json:"children,omitempty"`
}

// IsLink reports whether the node carries a URL.
func (n Node) IsLink() bool {
	return n.URL != nil
}

// IsFolder reports whether the node carries children.
func (n Node) IsFolder() bool {
	return n.Children != nil
}

// LinkNode returns a link node with the given title and URL.
func LinkNode(title, url string) Node {
	return Node{Title: title, URL: &url}
}

// FolderNode returns a folder node holding the given children.
func FolderNode(title string, children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{Title: title, Children: children}
}
