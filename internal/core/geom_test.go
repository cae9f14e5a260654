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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	if got := NewRect(0, 0, 10, 6).Inset(1); got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := NewRect(0, 0, 2, 2).Inset(3); got.W != 0 || got.H != 0 {
		t.Errorf("over-inset should collapse to zero size, got %+v", got)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name             string
		areaW, areaH     int
		w, h             int
		expectX, expectY int
	}{
		{"fits", 80, 24, 20, 10, 30, 7},
		{"too wide", 10, 24, 20, 10, 0, 7},
		{"exact", 20, 10, 20, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.areaW, tc.areaH, tc.w, tc.h)
			if r.X != tc.expectX || r.Y != tc.expectY || r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect = %+v, expected origin (%d, %d)", r, tc.expectX, tc.expectY)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestParsePaletteColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{"Bright-Cyan", ColorBrightCyan, true},
		{"grey", ColorGray, true},
		{"ultraviolet", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
	for c := range colorNames {
		if back, ok := ParseColor(c.String()); !ok || back != c {
			t.Errorf("ParseColor(%q) did not round-trip", c.String())
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Set/Has mismatch")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}
