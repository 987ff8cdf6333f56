package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func box(minX, minY, maxX, maxY float32) AABB {
	return NewAABB(mgl32.Vec2{minX, minY}, mgl32.Vec2{maxX, maxY})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"overlapping", box(0, 0, 2, 2), box(1, 1, 3, 3), true},
		{"separated horizontally", box(0, 0, 1, 1), box(2, 0, 3, 1), false},
		{"separated vertically", box(0, 0, 1, 1), box(0, 2, 1, 3), false},
		{"touching right edge", box(0, 0, 1, 1), box(1, 0, 2, 1), false},
		{"touching top edge", box(0, 0, 1, 1), box(0, 1, 1, 2), false},
		{"touching corner", box(0, 0, 1, 1), box(1, 1, 2, 2), false},
		{"contained", box(0, 0, 10, 10), box(4, 4, 5, 5), true},
		{"overlap on x only", box(0, 0, 2, 1), box(1, 3, 3, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMTV(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected mgl32.Vec2
	}{
		{
			name:     "push left out of right neighbour",
			a:        box(0, 0, 2, 2),
			b:        box(1.5, 0.5, 3, 1.5),
			expected: mgl32.Vec2{-0.5, 0},
		},
		{
			name:     "push up out of ground",
			a:        box(0, -0.25, 1, 0.75),
			b:        box(-5, -10, 5, 0),
			expected: mgl32.Vec2{0, 0.25},
		},
		{
			name:     "push right out of left neighbour",
			a:        box(2.5, 0, 3.5, 1),
			b:        box(0, -2, 3, 3),
			expected: mgl32.Vec2{0.5, 0},
		},
		{
			name:     "push down out of ceiling",
			a:        box(0, 0, 1, 1),
			b:        box(-4, 0.75, 4, 5),
			expected: mgl32.Vec2{0, -0.25},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MTV(tc.a, tc.b)
			if !got.ApproxEqual(tc.expected) {
				t.Errorf("MTV() = %v, expected %v", got, tc.expected)
			}
			if got.X() != 0 && got.Y() != 0 {
				t.Errorf("MTV() = %v, expected a single-axis correction", got)
			}

			moved := tc.a.Translate(got)
			if Overlaps(moved, tc.b) {
				t.Errorf("box still overlaps after applying MTV: %v vs %v", moved, tc.b)
			}
		})
	}
}

func TestMTVTieZeroesVertical(t *testing.T) {
	// Equal penetration on both axes resolves horizontally.
	got := MTV(box(0, 0, 1, 1), box(0.5, 0.5, 2, 2))
	if got.Y() != 0 || got.X() != -0.5 {
		t.Errorf("MTV() = %v, expected [-0.5 0]", got)
	}
}

func TestFromCenter(t *testing.T) {
	b := FromCenter(mgl32.Vec2{1, 2}, mgl32.Vec2{4, 2})

	if !b.Min.ApproxEqual(mgl32.Vec2{-1, 1}) || !b.Max.ApproxEqual(mgl32.Vec2{3, 3}) {
		t.Errorf("FromCenter() = %v", b)
	}
	if !b.Size().ApproxEqual(mgl32.Vec2{4, 2}) {
		t.Errorf("Size() = %v, expected [4 2]", b.Size())
	}
	if !b.Center().ApproxEqual(mgl32.Vec2{1, 2}) {
		t.Errorf("Center() = %v, expected [1 2]", b.Center())
	}
}

func TestGroundPlane(t *testing.T) {
	g := GroundPlane(box(3, 0.5, 4, 1.5), 0)

	if g.Max.Y() != 0 || g.Min.Y() != -10 {
		t.Errorf("ground Y range = [%v, %v], expected [-10, 0]", g.Min.Y(), g.Max.Y())
	}
	if g.Min.X() != -97 || g.Max.X() != 103 {
		t.Errorf("ground X range = [%v, %v], expected [-97, 103]", g.Min.X(), g.Max.X())
	}
}
