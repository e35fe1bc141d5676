package layout

// CalculateGridHeight computes the content height for the card area.
// Returns at least MinHeight.
func CalculateGridHeight(terminalHeight int, cfg GridConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateCardWidth computes the outer width of each card when columns
// cards share a row. Returns at least MinCardWidth.
func CalculateCardWidth(terminalWidth, columns int, cfg GridConfig) int {
	if columns < 1 {
		columns = 1
	}

	available := terminalWidth - cfg.WidthReduction - cfg.Gap*(columns-1)
	width := available / columns
	if width < cfg.MinCardWidth {
		width = cfg.MinCardWidth
	}
	return width
}

// CalculateVisibleRows computes how many rows of rowHeight fit in height.
func CalculateVisibleRows(height, rowHeight int) int {
	if rowHeight < 1 {
		rowHeight = 1
	}
	rows := height / rowHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// RowCount returns the number of rows needed for total items.
func RowCount(total, columns int) int {
	if total <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	return (total + columns - 1) / columns
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// MoveInGrid returns the index reached from idx by moving dx columns or dy
// rows in a row-major grid. Moves that leave the grid keep idx, except that
// moving down into a short last row lands on its final item.
func MoveInGrid(idx, total, columns, dx, dy int) int {
	if total <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	row, col := idx/columns, idx%columns

	if dx != 0 {
		col += dx
		if col < 0 || col >= columns {
			return idx
		}
		next := row*columns + col
		if next >= total {
			return idx
		}
		return next
	}

	if dy != 0 {
		next := idx + dy*columns
		if next < 0 {
			return idx
		}
		if next >= total {
			if (total-1)/columns > row {
				return total - 1
			}
			return idx
		}
		return next
	}

	return idx
}
