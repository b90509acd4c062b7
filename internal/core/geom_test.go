package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single pixel overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"empty rect", NewRect(0, 0, 10, 10), NewRect(5, 5, 0, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Intersect(NewRect(-5, 4, 8, 20))
	if got != NewRect(0, 4, 3, 6) {
		t.Errorf("Intersect() = %+v, expected {0 4 3 6}", got)
	}
	if got := NewRect(0, 0, 2, 2).Intersect(NewRect(5, 5, 2, 2)); !got.Empty() {
		t.Errorf("disjoint Intersect() = %+v, expected empty", got)
	}
}

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("%s: Contains(%d, %d) = %v, expected %v", tc.name, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	pipe := NewRect(100, 0, 20, 50)

	tests := []struct {
		name      string
		cx, cy, r float64
		expected  bool
	}{
		{"centre inside", 110, 25, 4, true},
		{"grazing left side", 97, 25, 4, true},
		{"clear of left side", 95, 25, 4, false},
		{"below the pipe", 110, 56, 4, false},
		{"near corner but outside", 97, 53, 4, false},
		{"overlapping corner", 98, 52, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tc.cx, tc.cy, tc.r, pipe); got != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v, %v) = %v, expected %v", tc.cx, tc.cy, tc.r, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp to [min, max]")
	}
}

func TestLerpRound(t *testing.T) {
	if Lerp(10, 20, 0.5) != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, expected 15", Lerp(10, 20, 0.5))
	}
	if Lerp(10, 20, 2) != 20 {
		t.Error("Lerp should clamp t to 1")
	}
	if Round(2.5) != 3 || Round(-2.5) != -3 || Round(2.4) != 2 {
		t.Error("Round should round half away from zero")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
