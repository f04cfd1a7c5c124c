package core

import "testing"

func TestVec2Add(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		dx, dy   int
		expected Vec2
	}{
		{"right", V(1, 1), 1, 0, V(2, 1)},
		{"up", V(1, 1), 0, -1, V(1, 0)},
		{"diagonal", V(3, 3), -1, 1, V(2, 4)},
		{"off the left edge", V(0, 0), -1, 0, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Add(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Add(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestVec2String(t *testing.T) {
	if got := V(-3, 12).String(); got != "(-3,12)" {
		t.Errorf("String() = %q", got)
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

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
		{-3, -8, -1, -3},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
