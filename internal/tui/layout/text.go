package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sgrPattern matches the colour and weight sequences lipgloss emits.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const sgrReset = "\x1b[0m"

// StripANSI returns s without styling, as it appears on screen.
func StripANSI(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleLength counts the runes of s that occupy a cell.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText shortens a card title or host to maxWidth runes, ending in
// the configured ellipsis. The bool reports whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if utf8.RuneCountInString(text) <= maxWidth {
		return text, false
	}

	ellipsis := []rune(cfg.Ellipsis)
	if maxWidth <= len(ellipsis) {
		return string(ellipsis[:maxWidth]), true
	}
	return string([]rune(text)[:maxWidth-len(ellipsis)]) + cfg.Ellipsis, true
}

// TruncateANSIAware fits an already styled line (a control bar, a list row,
// a highlighted picker match) into maxWidth cells. Escape sequences pass
// through untouched and a reset closes the line so a cut style cannot leak
// into the next section.
func TruncateANSIAware(styled string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleLength(styled) <= maxWidth {
		return styled
	}

	budget := maxWidth - utf8.RuneCountInString(cfg.Ellipsis)
	var b strings.Builder
	for rest := styled; rest != "" && budget > 0; {
		if loc := sgrPattern.FindStringIndex(rest); loc != nil && loc[0] == 0 {
			b.WriteString(rest[:loc[1]])
			rest = rest[loc[1]:]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		if r != utf8.RuneError {
			b.WriteString(rest[:size])
			budget--
		}
		rest = rest[size:]
	}

	b.WriteString(cfg.Ellipsis)
	b.WriteString(sgrReset)
	return b.String()
}
