// Package camera implements the scene camera: a transform plus projection
// settings that produce view and projection matrices, and the per-frame
// follow, zoom and pan update.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/core"
)

// ProjectionKind selects the projection matrix.
type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

// String returns the projection name.
func (k ProjectionKind) String() string {
	if k == Perspective {
		return "perspective"
	}
	return "orthographic"
}

// Zoom limits for OrthoScale.
const (
	MinZoom float32 = 0.01
	MaxZoom float32 = 10
)

// Camera is a positioned viewpoint. It looks down its rotated -Z axis with
// rotated +Y as up.
type Camera struct {
	Position   mgl32.Vec3
	Rotation   mgl32.Quat
	Scale      mgl32.Vec3
	FOV        float32 // Vertical field of view in degrees
	Near       float32
	Far        float32
	OrthoScale float32 // Half the visible height in world units
	Projection ProjectionKind

	// CellAspect is the height/width ratio of one window unit. Terminal
	// cells are roughly twice as tall as they are wide.
	CellAspect float32

	// Pan is a manual offset added on top of the followed position.
	Pan mgl32.Vec2
}

// Default returns the level camera: orthographic, slightly above the
// ground, looking into the scene.
func Default() Camera {
	return Camera{
		Position:   mgl32.Vec3{0, 3.1, 1},
		Rotation:   mgl32.QuatIdent(),
		Scale:      mgl32.Vec3{1, 1, 1},
		FOV:        60,
		Near:       0.1,
		Far:        1000,
		OrthoScale: 3.7,
		Projection: Orthographic,
		CellAspect: 1,
	}
}

// Eye returns the effective camera position including the pan offset.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.Position.Add(c.Pan.Vec3(0))
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	eye := c.Eye()
	forward := c.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	up := c.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
	return mgl32.LookAtV(eye, eye.Add(forward), up)
}

// Aspect returns the physical aspect ratio of a width x height window.
func (c *Camera) Aspect(width, height float32) float32 {
	cell := c.CellAspect
	if cell <= 0 {
		cell = 1
	}
	if height <= 0 {
		return 1
	}
	return width / (height * cell)
}

// ProjectionMatrix returns the camera-to-clip matrix for the window size.
func (c *Camera) ProjectionMatrix(width, height float32) mgl32.Mat4 {
	ar := c.Aspect(width, height)
	if c.Projection == Perspective {
		return mgl32.Perspective(mgl32.DegToRad(c.FOV), ar, c.Near, c.Far)
	}

	s := c.OrthoScale
	d := (c.Far - c.Near) * 0.5
	return mgl32.Ortho(-s*ar, s*ar, -s, s, -d, d)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection(width, height float32) mgl32.Mat4 {
	return c.ProjectionMatrix(width, height).Mul4(c.View())
}

// Settings tune the per-frame camera update.
type Settings struct {
	FollowLerp float32 // Fraction of the X distance to the target closed per tick
	Lead       float32 // Target offset in front of the followed point
	PanStep    float32
	ZoomStep   float32
}

// DefaultSettings returns the standard tuning.
func DefaultSettings() Settings {
	return Settings{
		FollowLerp: 0.1,
		Lead:       1.5,
		PanStep:    0.1,
		ZoomStep:   0.1,
	}
}

// Update follows targetX on the X axis and applies zoom and pan input.
// Zoom is clamped to [MinZoom, MaxZoom].
func (c *Camera) Update(in core.InputFrame, targetX float32, st Settings) {
	goal := targetX + st.Lead
	c.Position[0] += (goal - c.Position[0]) * st.FollowLerp

	if in.Down(core.ActionZoomOut) {
		c.SetZoom(c.OrthoScale + st.ZoomStep)
	}
	if in.Down(core.ActionZoomIn) {
		c.SetZoom(c.OrthoScale - st.ZoomStep)
	}

	c.Pan[0] += in.Axis(core.ActionPanLeft, core.ActionPanRight) * st.PanStep
	c.Pan[1] += in.Axis(core.ActionPanDown, core.ActionPanUp) * st.PanStep
}

// SetZoom sets OrthoScale, clamped to the supported range.
func (c *Camera) SetZoom(scale float32) {
	c.OrthoScale = mgl32.Clamp(scale, MinZoom, MaxZoom)
}

// Snap moves the camera straight to targetX, dropping any pan.
func (c *Camera) Snap(targetX float32, st Settings) {
	c.Position[0] = targetX + st.Lead
	c.Pan = mgl32.Vec2{}
}
