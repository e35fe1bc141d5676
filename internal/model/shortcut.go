package model

// Shortcut is a user-defined tile, kept separately from bookmarks.
type Shortcut struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultShortcuts returns the shortcut list used when none is stored.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{Name: "YouTube", URL: "https://youtube.com"},
		{Name: "Gmail", URL: "https://mail.google.com"},
		{Name: "GitHub", URL: "https://github.com"},
		{Name: "ChatGPT", URL: "https://chatgpt.com"},
		{Name: "Twitter", URL: "https://x.com"},
	}
}
