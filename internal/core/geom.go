// Package core provides fundamental types and utilities shared by the game
// engine and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned box in terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// GridLayout describes where a square grid of cells sits on screen.
// Cells are CellW x CellH blocks separated by Gap columns and rows.
type GridLayout struct {
	X, Y  int // Top-left corner of the first cell
	Size  int // Cells per side
	CellW int
	CellH int
	Gap   int
}

// CellRect returns the screen rectangle of cell i in row-major order.
func (l GridLayout) CellRect(i int) Rect {
	row, col := i/l.Size, i%l.Size
	return NewRect(
		l.X+col*(l.CellW+l.Gap),
		l.Y+row*(l.CellH+l.Gap),
		l.CellW,
		l.CellH,
	)
}

// CellAt returns the index of the cell under (x, y).
// Points on gaps or outside the grid report false.
func (l GridLayout) CellAt(x, y int) (int, bool) {
	for i := range l.Size * l.Size {
		if l.CellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Bounds returns the rectangle covering the whole grid.
func (l GridLayout) Bounds() Rect {
	if l.Size <= 0 {
		return NewRect(l.X, l.Y, 0, 0)
	}
	w := l.Size*l.CellW + (l.Size-1)*l.Gap
	h := l.Size*l.CellH + (l.Size-1)*l.Gap
	return NewRect(l.X, l.Y, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
