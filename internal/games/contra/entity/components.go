// Package entity defines the stage's component types and the bullet and
// enemy archetypes built on ecs groups.
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// Transform places an entity in the world.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform returns an unrotated, unit-scale transform at position.
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// RigidBody carries velocity and the AABB derived from the transform.
type RigidBody struct {
	Velocity mgl32.Vec2
	AABB     physics.AABB
}

// Sprite is a single static frame.
type Sprite struct {
	Frame sprite.Frame
}

// BoundsAt returns the box of a frame scaled by 1/pixelsPerUnit and
// centered on position.
func BoundsAt(position mgl32.Vec3, frame sprite.Frame, pixelsPerUnit float32) physics.AABB {
	size := frame.Extent().Mul(1 / pixelsPerUnit)
	return physics.FromCenter(position.Vec2(), size)
}

// World is the read-only view of the stage an archetype update needs.
type World struct {
	Static      []physics.AABB
	GroundLevel float32
	Camera      physics.Projector
	Window      mgl32.Vec2
}
