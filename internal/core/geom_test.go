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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           Rect
	}{
		{"ordered", 1, 2, 4, 6, NewRect(1, 2, 3, 4)},
		{"swapped", 4, 6, 1, 2, NewRect(1, 2, 3, 4)},
		{"degenerate", 3, 3, 3, 5, NewRect(3, 3, 0, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectFromCorners(tc.x0, tc.y0, tc.x1, tc.y1); got != tc.want {
				t.Errorf("RectFromCorners() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestRectClip(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	if got := NewRect(-5, -2, 10, 10).Clip(screen); got != NewRect(0, 0, 5, 8) {
		t.Errorf("partial clip = %+v", got)
	}
	if got := NewRect(10, 5, 4, 4).Clip(screen); got != NewRect(10, 5, 4, 4) {
		t.Errorf("inside clip = %+v", got)
	}
	if got := NewRect(100, 5, 4, 4).Clip(screen); !got.Empty() {
		t.Errorf("outside clip should be empty, got %+v", got)
	}
}
