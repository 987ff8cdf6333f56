package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/ecs"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// EnemySpawn describes a new enemy. Enemies spawned at ground level are
// pushed onto the ground by their first update.
type EnemySpawn struct {
	Position mgl32.Vec3
}

// EnemyGroup is the "red guy" archetype: Transform, RigidBody and an
// animation Playback. Enemies have no velocity; they only animate and are
// kept out of the ground and level geometry.
type EnemyGroup struct {
	transforms *ecs.SlotArray[Transform]
	bodies     *ecs.SlotArray[RigidBody]
	playbacks  *ecs.SlotArray[sprite.Playback]
	group      *ecs.Group

	animation     *sprite.Animation
	pixelsPerUnit float32
}

var _ ecs.Archetype[EnemySpawn] = (*EnemyGroup)(nil)

// NewEnemyGroup creates an enemy group playing animation.
func NewEnemyGroup(animation *sprite.Animation, pixelsPerUnit float32) *EnemyGroup {
	e := &EnemyGroup{
		animation:     animation,
		pixelsPerUnit: pixelsPerUnit,
	}
	e.Init()
	return e
}

// Init allocates empty stores.
func (e *EnemyGroup) Init() {
	e.transforms = ecs.NewSlotArray[Transform]("enemy.transform")
	e.bodies = ecs.NewSlotArray[RigidBody]("enemy.body")
	e.playbacks = ecs.NewSlotArray[sprite.Playback]("enemy.playback")
	e.group = ecs.NewGroup("enemies", e.transforms, e.bodies, e.playbacks)
}

// Add spawns an enemy.
func (e *EnemyGroup) Add(spawn EnemySpawn) ecs.Handle {
	pb := sprite.NewPlayback(e.animation)
	body := RigidBody{AABB: BoundsAt(spawn.Position, pb.Current(), e.pixelsPerUnit)}
	return e.group.Commit(
		e.transforms.Insert(NewTransform(spawn.Position)),
		e.bodies.Insert(body),
		e.playbacks.Insert(pb),
	)
}

// Remove destroys an enemy immediately.
func (e *EnemyGroup) Remove(h ecs.Handle) {
	e.group.Remove(h)
}

// MarkForRemoval queues an enemy for FlushRemovals.
func (e *EnemyGroup) MarkForRemoval(h ecs.Handle) {
	e.group.MarkForRemoval(h)
}

// FlushRemovals removes queued enemies and returns their handles.
func (e *EnemyGroup) FlushRemovals() []ecs.Handle {
	if e.group.Pending() == 0 {
		return nil
	}
	var removed []ecs.Handle
	before := append([]ecs.Handle(nil), e.group.Live()...)
	e.group.Flush()
	for _, h := range before {
		if !e.group.Contains(h) {
			removed = append(removed, h)
		}
	}
	return removed
}

// Len returns the number of live enemies.
func (e *EnemyGroup) Len() int {
	return e.group.Len()
}

// Live returns the live handles.
func (e *EnemyGroup) Live() []ecs.Handle {
	return e.group.Live()
}

// Contains reports whether h is a live enemy.
func (e *EnemyGroup) Contains(h ecs.Handle) bool {
	return e.group.Contains(h)
}

// Transform returns an enemy's transform.
func (e *EnemyGroup) Transform(h ecs.Handle) *Transform {
	return e.transforms.Get(h)
}

// Body returns an enemy's rigid body.
func (e *EnemyGroup) Body(h ecs.Handle) *RigidBody {
	return e.bodies.Get(h)
}

// Playback returns an enemy's animation cursor.
func (e *EnemyGroup) Playback(h ecs.Handle) *sprite.Playback {
	return e.playbacks.Get(h)
}

// FirstOverlap returns the first live enemy whose box overlaps box.
func (e *EnemyGroup) FirstOverlap(box physics.AABB) (ecs.Handle, bool) {
	for _, h := range e.group.Live() {
		if physics.Overlaps(box, e.bodies.Get(h).AABB) {
			return h, true
		}
	}
	return ecs.Handle{}, false
}

// Check verifies the group invariant.
func (e *EnemyGroup) Check() error {
	return e.group.Check()
}

// Shutdown frees all storage.
func (e *EnemyGroup) Shutdown() {
	e.group.Shutdown()
}

// Update animates every enemy and keeps it out of the ground and the
// level geometry. Only positions are corrected.
func (e *EnemyGroup) Update(w World) {
	for _, h := range e.group.Live() {
		pb := e.playbacks.Get(h)
		pb.Tick()

		tr := e.transforms.Get(h)
		body := e.bodies.Get(h)
		frame := pb.Current()
		bounds := func(p mgl32.Vec3) physics.AABB {
			return BoundsAt(p, frame, e.pixelsPerUnit)
		}

		body.AABB = bounds(tr.Position)
		ground := physics.GroundPlane(body.AABB, w.GroundLevel)
		physics.Resolve(&tr.Position, bounds, ground)
		body.AABB = physics.Resolve(&tr.Position, bounds, w.Static...).Bounds
	}
}
