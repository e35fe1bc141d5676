package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		percent       int
		want          int
	}{
		{"percent within bounds", 150, 40, 60}, // 150*40/100 = 60
		{"raised to min", 80, 40, 40},          // 32, min 40
		{"capped at max", 250, 40, 72},         // 100, max 72
		{"limited by terminal", 42, 40, 38},    // min 40, but 42-4 = 38
		{"tiny terminal clamps to 1", 3, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, tt.percent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.percent, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name        string
		maxVisible  int
		selectedIdx int
		totalItems  int
		wantStart   int
		wantEnd     int
	}{
		{"cursor on first page", 5, 2, 10, 0, 5},
		{"cursor on last visible line", 5, 4, 10, 0, 5},
		{"scrolled by one", 5, 5, 10, 1, 6},
		{"cursor on last result", 5, 9, 10, 5, 10},
		{"fewer results than lines", 5, 2, 3, 0, 3},
		{"cursor past results keeps window full", 5, 12, 10, 5, 10},
		{"no results", 5, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selectedIdx, tt.totalItems)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleListItems(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selectedIdx, tt.totalItems,
					start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
