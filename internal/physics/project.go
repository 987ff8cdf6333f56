package physics

import "github.com/go-gl/mathgl/mgl32"

// Projector supplies the combined view-projection matrix for a viewport.
type Projector interface {
	ViewProjection(width, height float32) mgl32.Mat4
}

// WindowRect is a rectangle in window pixels with a top-left origin.
// Min is the projection of the box's Min corner, so Min.Y is usually the
// larger window Y. Use Normalized for ordered corners.
type WindowRect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Normalized returns the rect with Min <= Max on both axes.
func (r WindowRect) Normalized() WindowRect {
	out := r
	if out.Min[0] > out.Max[0] {
		out.Min[0], out.Max[0] = out.Max[0], out.Min[0]
	}
	if out.Min[1] > out.Max[1] {
		out.Min[1], out.Max[1] = out.Max[1], out.Min[1]
	}
	return out
}

// AABB returns the normalized rect as a box in window space.
func (r WindowRect) AABB() AABB {
	n := r.Normalized()
	return AABB{Min: n.Min, Max: n.Max}
}

// ProjectToWindow maps a world box to window coordinates.
// Corners go through projection*view, a perspective divide, a [-1,1] to
// [0,1] remap with Y flipped, and finally a scale by the window size.
func ProjectToWindow(box AABB, p Projector, window mgl32.Vec2) WindowRect {
	vp := p.ViewProjection(window.X(), window.Y())
	return WindowRect{
		Min: projectPoint(vp, box.Min, window),
		Max: projectPoint(vp, box.Max, window),
	}
}

// OnScreen reports whether any part of box is visible in the window.
func OnScreen(box AABB, p Projector, window mgl32.Vec2) bool {
	screen := AABB{Max: window}
	return Overlaps(ProjectToWindow(box, p, window).AABB(), screen)
}

func projectPoint(vp mgl32.Mat4, point mgl32.Vec2, window mgl32.Vec2) mgl32.Vec2 {
	clip := vp.Mul4x1(mgl32.Vec4{point.X(), point.Y(), 0, 1})
	if clip.W() != 0 {
		clip = clip.Mul(1 / clip.W())
	}

	nx := clip.X()*0.5 + 0.5
	ny := clip.Y()*0.5 + 0.5

	return mgl32.Vec2{
		nx * window.X(),
		(1 - ny) * window.Y(),
	}
}
