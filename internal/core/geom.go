// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal host. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in world units used for hitboxes.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap.
// Edges are inclusive: rectangles that only touch count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	if r.Right() < other.X || r.X > other.Right() {
		return false
	}
	if r.Bottom() < other.Y || r.Y > other.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the rectangle horizontally by dx on both sides.
func (r Rect) Inset(dx float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y, W: r.W - 2*dx, H: r.H}
}

// Contains reports whether r fully encloses other.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Cells maps the rectangle onto a character grid where each cell covers
// cellW x cellH world units. The result is in cell coordinates.
func (r Rect) Cells(cellW, cellH float64) (x0, y0, x1, y1 int) {
	x0 = FloorDiv(r.X, cellW)
	y0 = FloorDiv(r.Y, cellH)
	x1 = FloorDiv(r.Right(), cellW)
	y1 = FloorDiv(r.Bottom(), cellH)
	return x0, y0, x1, y1
}

// FloorDiv divides v by unit and rounds toward negative infinity.
func FloorDiv(v, unit float64) int {
	q := v / unit
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
