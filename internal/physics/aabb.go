// Package physics provides axis-aligned bounding box math for the simulation:
// overlap tests, single-axis minimum translation vectors and the sequential
// resolution policy used by the player and enemies.
// Like core, it has no dependency on the terminal platform.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box in world units.
// It is always derived from an owner's transform and sprite extent.
type AABB struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// NewAABB creates a box from its corners.
func NewAABB(min, max mgl32.Vec2) AABB {
	return AABB{Min: min, Max: max}
}

// FromCenter creates a box of the given size centered on center.
func FromCenter(center, size mgl32.Vec2) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Size returns the box width and height.
func (b AABB) Size() mgl32.Vec2 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b AABB) Center() mgl32.Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Translate returns the box moved by v.
func (b AABB) Translate(v mgl32.Vec2) AABB {
	return AABB{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Overlaps reports whether a and b strictly overlap on both axes.
// Boxes that only share an edge do not overlap.
func Overlaps(a, b AABB) bool {
	return a.Max.X() > b.Min.X() &&
		a.Max.Y() > b.Min.Y() &&
		a.Min.X() < b.Max.X() &&
		a.Min.Y() < b.Max.Y()
}

// MTV returns the correction that moves a out of b along a single axis.
//
// For each axis the smaller of the two penetration candidates is kept, then
// the axis with the larger correction is zeroed. This is not an exact
// minimum displacement; it resolves along the axis of least penetration.
// The caller translates a's owner by the result and must recompute a.
func MTV(a, b AABB) mgl32.Vec2 {
	left := b.Min.X() - a.Max.X()
	right := b.Max.X() - a.Min.X()
	bottom := b.Min.Y() - a.Max.Y()
	top := b.Max.Y() - a.Min.Y()

	var mtv mgl32.Vec2
	if abs32(left) > right {
		mtv[0] = right
	} else {
		mtv[0] = left
	}
	if abs32(bottom) > top {
		mtv[1] = top
	} else {
		mtv[1] = bottom
	}

	if abs32(mtv[0]) <= abs32(mtv[1]) {
		mtv[1] = 0
	} else {
		mtv[0] = 0
	}
	return mtv
}

// GroundPlane returns the synthetic ground box used to approximate an
// infinite floor at level beneath box: 200 units wide, 10 units deep.
func GroundPlane(box AABB, level float32) AABB {
	return AABB{
		Min: mgl32.Vec2{box.Min.X() - 100, level - 10},
		Max: mgl32.Vec2{box.Min.X() + 100, level},
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
