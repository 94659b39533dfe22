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
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 25, false},
		{5, 15, false},
		{15, 30, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectFIntersects(t *testing.T) {
	paddle := RectF{X: 0, Y: 100, W: 10, H: 100}

	tests := []struct {
		name     string
		ball     RectF
		expected bool
	}{
		{"overlapping face", RectF{X: 5, Y: 150, W: 10, H: 10}, true},
		{"touching face", RectF{X: 10, Y: 150, W: 10, H: 10}, false},
		{"grazing top corner", RectF{X: 5, Y: 91, W: 10, H: 10}, true},
		{"above paddle", RectF{X: 5, Y: 90, W: 10, H: 10}, false},
		{"below paddle", RectF{X: 5, Y: 200, W: 10, H: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ball.Intersects(paddle); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 10, Y: 10}.Add(Point{X: 1, Y: -1})
	if p != (Point{X: 11, Y: 9}) {
		t.Errorf("Add = %v", p)
	}
	if !p.In(20, 20) {
		t.Error("(11, 9) should be inside 20x20")
	}
	if (Point{X: 20, Y: 0}).In(20, 20) || (Point{X: 0, Y: -1}).In(20, 20) {
		t.Error("edge points should be outside")
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{FieldW: 600, FieldH: 400, Area: NewRect(1, 2, 60, 20)}

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 1, 2},
		{599, 399, 60, 21},
		{300, 200, 31, 12},
		{-50, 900, 1, 21}, // clamped to area
	}
	for _, tc := range tests {
		cx, cy := v.ToCell(tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
		}
	}

	r := v.ToRect(RectF{X: 0, Y: 160, W: 10, H: 100})
	if r.W != 1 || r.H != 5 {
		t.Errorf("ToRect paddle = %+v, expected 1x5 cells", r)
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
	if ClampF(-1.5, 0, 3) != 0 || ClampF(4.5, 0, 3) != 3 {
		t.Error("ClampF out of range")
	}
}
