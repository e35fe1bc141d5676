package layout

// CalculateModalWidth sizes the add-shortcut dialog: widthPercent of the
// terminal, held between cfg.MinWidth and cfg.MaxWidth, and never wider than
// the terminal minus the app padding.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := clamp(terminalWidth*widthPercent/100, cfg.MinWidth, cfg.MaxWidth)
	return clamp(width, 1, terminalWidth-4)
}

// CalculateVisibleListItems returns the window [start, end) of picker
// results to draw so the cursor stays on the last visible line once it
// scrolls past the first page.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}
	start = clamp(selectedIdx-maxVisible+1, 0, totalItems-maxVisible)
	return start, start + maxVisible
}

// clamp bounds v to [lo, hi]. When hi < lo the lower bound wins.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
