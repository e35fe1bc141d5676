package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "hjkl:move enter:open"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter save  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (hjkl, tab)
	Edit   []Hint // Preference hints (v, +/-, t)
	Action []Hint // Action hints (Enter, /)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return a.getNormalModeHints()
	case ModeSearch:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "apply"}},
			System: []Hint{{Key: "Esc", Desc: "clear"}},
		}
	case ModeAddShortcut:
		// Hints are shown inside the modal itself
		return HintSet{}
	case ModeHelp:
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getNormalModeHints returns hints for ModeNormal. The columns hint is only
// offered in grid view.
func (a App) getNormalModeHints() HintSet {
	edit := []Hint{{Key: "v", Desc: "view"}}
	if a.columns() > 1 {
		edit = append(edit, Hint{Key: "+/-", Desc: "cols"})
	}
	edit = append(edit, Hint{Key: "t", Desc: "theme"}, Hint{Key: "b", Desc: "source"})

	system := []Hint{{Key: "?", Desc: "help"}, {Key: "q", Desc: "quit"}}
	if a.search.Query != "" {
		system = append([]Hint{{Key: "Esc", Desc: "clear"}}, system...)
	}

	return HintSet{
		Nav: []Hint{
			{Key: "hjkl", Desc: "move"},
			{Key: "tab", Desc: "focus"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "a", Desc: "add"},
		},
		Edit:   edit,
		System: system,
	}
}
