package physics

import "github.com/go-gl/mathgl/mgl32"

// BoundsFunc derives an owner's box from its current position.
type BoundsFunc func(position mgl32.Vec3) AABB

// Resolution summarizes one sequential resolution pass.
type Resolution struct {
	Bounds   AABB // Box after the last correction
	Contacts int  // Number of obstacles that required a correction
	HitY     bool // Whether any correction had a vertical component
}

// Resolve pushes the owner at position out of each obstacle in order.
//
// Resolution is sequential: after every correction the box is recomputed
// from the moved position, so later obstacles see the corrected position.
// The outcome depends on obstacle order.
func Resolve(position *mgl32.Vec3, bounds BoundsFunc, obstacles ...AABB) Resolution {
	res := Resolution{Bounds: bounds(*position)}
	for i := range obstacles {
		if !Overlaps(res.Bounds, obstacles[i]) {
			continue
		}

		mtv := MTV(res.Bounds, obstacles[i])
		*position = position.Add(mtv.Vec3(0))
		if mtv.Y() != 0 {
			res.HitY = true
		}
		res.Contacts++
		res.Bounds = bounds(*position)
	}
	return res
}
