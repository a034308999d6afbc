package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestGridLayoutCellAt(t *testing.T) {
	// 3x3 grid of 4x2 cells with 1-cell gaps starting at (2, 1).
	l := GridLayout{X: 2, Y: 1, Size: 3, CellW: 4, CellH: 2, Gap: 1}

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first cell corner", 2, 1, 0, true},
		{"first cell inside", 5, 2, 0, true},
		{"horizontal gap", 6, 1, -1, false},
		{"second column", 7, 1, 1, true},
		{"vertical gap", 2, 3, -1, false},
		{"second row", 2, 4, 3, true},
		{"last cell", 15, 8, 8, true},
		{"past the grid", 16, 8, -1, false},
		{"before the grid", 0, 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.CellAt(tc.x, tc.y)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("CellAt(%d, %d) = (%d, %v), expected (%d, %v)", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestGridLayoutBounds(t *testing.T) {
	l := GridLayout{X: 2, Y: 1, Size: 3, CellW: 4, CellH: 2, Gap: 1}
	b := l.Bounds()
	if b != NewRect(2, 1, 14, 8) {
		t.Errorf("Bounds() = %+v, expected {2 1 14 8}", b)
	}

	if (GridLayout{}).Bounds().W != 0 {
		t.Error("empty layout should have zero width")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 100.0, 5.5},
		{-5.5, 0.0, 100.0, 0.0},
		{115.5, 0.0, 100.0, 100.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
