package tile

import "net/url"

const (
	avatarRounded = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64"><rect width="64" height="64" rx="12" fill="#E5E7EB"/><text x="50%" y="55%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-weight="bold" font-size="32" fill="#374151">`
	avatarPlain   = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64"><text x="50%" y="55%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-weight="bold" font-size="32" fill="#374151">`
	avatarClose   = `</text></svg>`
)

// AvatarSVG returns the letter avatar markup for the tile.
func (t Tile) AvatarSVG() string {
	open := avatarPlain
	if t.Rounded() {
		open = avatarRounded
	}
	return open + escapeXML(t.Letter) + avatarClose
}

// AvatarDataURI returns the avatar as an image data URI.
func (t Tile) AvatarDataURI() string {
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(t.AvatarSVG())
}

// ImageSource returns what an <img> should load for the tile's current state.
func (t Tile) ImageSource() string {
	if t.Icon == IconPrimary && t.IconURL != "" {
		return t.IconURL
	}
	return t.AvatarDataURI()
}

func escapeXML(s string) string {
	switch s {
	case "<":
		return "&lt;"
	case ">":
		return "&gt;"
	case "&":
		return "&amp;"
	case `"`:
		return "&quot;"
	default:
		return s
	}
}
