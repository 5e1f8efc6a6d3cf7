package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge counts",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edge counts",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching corner counts",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "fractional gap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.001, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(100, 0, 120, 50).Inset(20)
	if r.X != 120 || r.W != 80 || r.Y != 0 || r.H != 50 {
		t.Errorf("Inset(20) = %+v, expected {120 0 80 50}", r)
	}
}

func TestRectContains(t *testing.T) {
	outer := NewRect(0, 0, 70, 40)

	if !outer.Contains(NewRect(10, 5, 51, 31)) {
		t.Error("inset hitbox should be contained")
	}
	if !outer.Contains(outer) {
		t.Error("rect should contain itself")
	}
	if outer.Contains(NewRect(30, 5, 51, 31)) {
		t.Error("hitbox overflowing the right edge should not be contained")
	}
}

func TestRectCells(t *testing.T) {
	x0, y0, x1, y1 := NewRect(15, 30, 20, 20).Cells(10, 20)
	if x0 != 1 || y0 != 1 || x1 != 3 || y1 != 2 {
		t.Errorf("Cells() = (%d, %d, %d, %d), expected (1, 1, 3, 2)", x0, y0, x1, y1)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		v, unit  float64
		expected int
	}{
		{25, 10, 2},
		{20, 10, 2},
		{0, 10, 0},
		{-5, 10, -1},
		{-20, 10, -2},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.v, tc.unit); got != tc.expected {
			t.Errorf("FloorDiv(%v, %v) = %d, expected %d", tc.v, tc.unit, got, tc.expected)
		}
	}
}
