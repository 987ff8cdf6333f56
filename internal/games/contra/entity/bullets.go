package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/ecs"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// BulletSpawn describes a new bullet.
type BulletSpawn struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec2
}

// BulletReport summarizes one bullet update pass.
type BulletReport struct {
	Removed    int          // Bullets removed this pass
	StaticHits int          // Bullets stopped by level geometry or the ground
	OffScreen  int          // Bullets culled outside the window
	EnemyHits  []ecs.Handle // Enemies hit this pass, already removed
}

// BulletGroup is the bullet archetype: Transform, RigidBody and Sprite.
type BulletGroup struct {
	transforms *ecs.SlotArray[Transform]
	bodies     *ecs.SlotArray[RigidBody]
	sprites    *ecs.SlotArray[Sprite]
	group      *ecs.Group

	frame         sprite.Frame
	step          float32
	pixelsPerUnit float32
}

var _ ecs.Archetype[BulletSpawn] = (*BulletGroup)(nil)

// NewBulletGroup creates a bullet group drawing every bullet with frame.
// Bullets advance step world units per update regardless of their
// velocity magnitude.
func NewBulletGroup(frame sprite.Frame, step, pixelsPerUnit float32) *BulletGroup {
	b := &BulletGroup{
		frame:         frame,
		step:          step,
		pixelsPerUnit: pixelsPerUnit,
	}
	b.Init()
	return b
}

// Init allocates empty stores.
func (b *BulletGroup) Init() {
	b.transforms = ecs.NewSlotArray[Transform]("bullet.transform")
	b.bodies = ecs.NewSlotArray[RigidBody]("bullet.body")
	b.sprites = ecs.NewSlotArray[Sprite]("bullet.sprite")
	b.group = ecs.NewGroup("bullets", b.transforms, b.bodies, b.sprites)
}

// Add spawns a bullet.
func (b *BulletGroup) Add(spawn BulletSpawn) ecs.Handle {
	tr := NewTransform(spawn.Position)
	body := RigidBody{
		Velocity: spawn.Velocity,
		AABB:     BoundsAt(spawn.Position, b.frame, b.pixelsPerUnit),
	}
	return b.group.Commit(
		b.transforms.Insert(tr),
		b.bodies.Insert(body),
		b.sprites.Insert(Sprite{Frame: b.frame}),
	)
}

// Remove destroys a bullet immediately.
func (b *BulletGroup) Remove(h ecs.Handle) {
	b.group.Remove(h)
}

// Len returns the number of live bullets.
func (b *BulletGroup) Len() int {
	return b.group.Len()
}

// Live returns the live handles.
func (b *BulletGroup) Live() []ecs.Handle {
	return b.group.Live()
}

// Contains reports whether h is a live bullet.
func (b *BulletGroup) Contains(h ecs.Handle) bool {
	return b.group.Contains(h)
}

// Transform returns a bullet's transform.
func (b *BulletGroup) Transform(h ecs.Handle) *Transform {
	return b.transforms.Get(h)
}

// Body returns a bullet's rigid body.
func (b *BulletGroup) Body(h ecs.Handle) *RigidBody {
	return b.bodies.Get(h)
}

// Sprite returns a bullet's sprite.
func (b *BulletGroup) Sprite(h ecs.Handle) *Sprite {
	return b.sprites.Get(h)
}

// Check verifies the group invariant.
func (b *BulletGroup) Check() error {
	return b.group.Check()
}

// Shutdown frees all storage.
func (b *BulletGroup) Shutdown() {
	b.group.Shutdown()
}

func (b *BulletGroup) refresh(h ecs.Handle) {
	body := b.bodies.Get(h)
	body.AABB = BoundsAt(b.transforms.Get(h).Position, b.sprites.Get(h).Frame, b.pixelsPerUnit)
}

// Update moves every bullet and removes those that hit something or left
// the window. Enemies hit are removed from enemies as well; a nil enemy
// group is allowed.
func (b *BulletGroup) Update(w World, enemies *EnemyGroup) BulletReport {
	var report BulletReport

	for _, h := range b.group.Live() {
		b.refresh(h)
	}

	for _, h := range b.group.Live() {
		tr := b.transforms.Get(h)
		body := b.bodies.Get(h)

		if body.Velocity.Len() > 0 {
			dir := body.Velocity.Normalize().Mul(b.step)
			tr.Position = tr.Position.Add(dir.Vec3(0))
		}
		b.refresh(h)

		if b.hitsStatic(body.AABB, w) || tr.Position.Y() < w.GroundLevel {
			report.StaticHits++
			b.group.MarkForRemoval(h)
			continue
		}

		if enemies != nil {
			if e, ok := enemies.FirstOverlap(body.AABB); ok {
				enemies.MarkForRemoval(e)
				b.group.MarkForRemoval(h)
				continue
			}
		}

		if w.Camera != nil && w.Window.X() > 0 && w.Window.Y() > 0 &&
			!physics.OnScreen(body.AABB, w.Camera, w.Window) {
			report.OffScreen++
			b.group.MarkForRemoval(h)
		}
	}

	report.Removed = b.group.Flush()
	if enemies != nil {
		report.EnemyHits = enemies.FlushRemovals()
	}
	return report
}

func (b *BulletGroup) hitsStatic(box physics.AABB, w World) bool {
	for i := range w.Static {
		if physics.Overlaps(box, w.Static[i]) {
			return true
		}
	}
	return false
}
