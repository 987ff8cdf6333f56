// Package player implements the player controller: a seven-state machine
// driven by input that moves, lands, collides with the level and fires
// bullets into the bullet group.
package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/ecs"
	"github.com/vovakirdan/tui-contra/internal/games/contra/entity"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// BulletSpawner receives the bullets the player fires.
type BulletSpawner interface {
	Add(spawn entity.BulletSpawn) ecs.Handle
}

// Animations resolves animation assets by name. Unknown names are a
// programming error and may panic.
type Animations interface {
	Animation(name string) *sprite.Animation
}

// Frame is everything the player reads from the stage for one update.
type Frame struct {
	World        entity.World
	Bullets      BulletSpawner
	Dt           float32 // Seconds since the previous update
	FireInterval float32 // Overrides the configured interval when > 0
}

// Report describes what happened during one update.
type Report struct {
	Shots  int
	Landed bool // Became grounded this update
}

// Player is the singleton player entity. It owns its components directly.
type Player struct {
	Transform entity.Transform
	Velocity  mgl32.Vec2
	AABB      physics.AABB
	Playback  sprite.Playback
	Heading   float32 // +1 facing right, -1 facing left
	Speed     float32
	State     State

	firing    bool
	fireTimer float32

	cfg   config.PlayerConfig
	anims Animations
}

// New creates a player at the configured spawn point, idle and facing right.
func New(cfg config.PlayerConfig, anims Animations) *Player {
	p := &Player{
		cfg:   cfg,
		anims: anims,
	}
	p.Reset()
	return p
}

// Reset puts the player back at the spawn point.
func (p *Player) Reset() {
	p.Transform = entity.NewTransform(mgl32.Vec3(p.cfg.Spawn))
	p.Velocity = mgl32.Vec2{}
	p.Heading = 1
	p.Speed = p.cfg.Speed
	p.State = IdleGunForward
	p.firing = false
	p.fireTimer = 0
	p.Playback = sprite.NewPlayback(p.anims.Animation(p.State.Animation()))
	p.AABB = p.bounds(p.Transform.Position)
}

// Position returns the player position.
func (p *Player) Position() mgl32.Vec3 {
	return p.Transform.Position
}

// Grounded reports whether the player stands on something. Grounded means
// the vertical velocity is exactly zero.
func (p *Player) Grounded() bool {
	return p.Velocity.Y() == 0
}

// Moving reports whether the player has horizontal velocity.
func (p *Player) Moving() bool {
	return p.Velocity.X() != 0
}

// Firing reports whether the fire latch is set.
func (p *Player) Firing() bool {
	return p.firing
}

// bounds returns the collision box at pos: the current frame's width and
// the state's hit height, centered on pos.
func (p *Player) bounds(pos mgl32.Vec3) physics.AABB {
	frame := p.Playback.Current()
	size := mgl32.Vec2{frame.Width(), p.State.info().hitHeight}
	return physics.FromCenter(pos.Vec2(), size.Mul(1/p.cfg.PixelsPerUnit))
}

// DrawBounds returns the box the current frame is drawn in: the full frame
// standing on the bottom edge of the collision box, so raised guns reach
// above the hit box.
func (p *Player) DrawBounds() physics.AABB {
	frame := p.Playback.Current()
	hit := p.bounds(p.Transform.Position)
	size := frame.Extent().Mul(1 / p.cfg.PixelsPerUnit)
	feet := mgl32.Vec2{p.Transform.Position.X() - size.X()/2, hit.Min.Y()}
	return physics.NewAABB(feet, feet.Add(size))
}

// Muzzle returns the bullet the player would fire right now. The offset and
// the velocity X are mirrored by the heading.
func (p *Player) Muzzle() entity.BulletSpawn {
	info := p.State.info()
	offset := mgl32.Vec3{info.offset.X() * p.Heading, info.offset.Y(), 0}
	return entity.BulletSpawn{
		Position: p.Transform.Position.Add(offset),
		Velocity: mgl32.Vec2{info.velocity.X() * p.Heading, info.velocity.Y()},
	}
}

// Update advances the player by one tick.
func (p *Player) Update(in core.InputFrame, f Frame) Report {
	var report Report
	wasGrounded := p.Grounded()

	// Horizontal input
	var dir float32
	if in.Down(core.ActionLeft) {
		dir--
		if p.Grounded() {
			p.State = RunningGunForward
		}
		p.Heading = -1
	}
	if in.Down(core.ActionRight) {
		dir++
		if p.Grounded() {
			p.State = RunningGunForward
		}
		p.Heading = 1
	}
	switch {
	case dir > 0:
		p.Velocity[0] = p.Speed
	case dir < 0:
		p.Velocity[0] = -p.Speed
	default:
		p.Velocity[0] = 0
	}

	// Jump on press only, so holding the key never stacks impulses
	if in.Has(core.ActionJump) && p.Grounded() {
		p.Velocity[1] = p.cfg.JumpImpulse
		p.State = Jumping
	}

	p.Velocity[1] -= p.cfg.Gravity
	p.Transform.Position = p.Transform.Position.Add(p.Velocity.Vec3(0))

	p.collide(f.World)

	if p.Grounded() {
		p.refineGrounded(in)
		report.Landed = !wasGrounded
	}
	p.AABB = p.bounds(p.Transform.Position)

	report.Shots = p.fire(in, f)

	p.Playback.SetAsset(p.anims.Animation(p.State.Animation()))
	p.Playback.Tick()

	return report
}

// collide resolves the player against the ground plane and then every
// static box, in order. Any vertical correction stops vertical motion.
func (p *Player) collide(w entity.World) {
	p.AABB = p.bounds(p.Transform.Position)

	ground := physics.GroundPlane(p.AABB, w.GroundLevel)
	res := physics.Resolve(&p.Transform.Position, p.bounds, ground)
	if res.HitY {
		p.Velocity[1] = 0
	}

	res = physics.Resolve(&p.Transform.Position, p.bounds, w.Static...)
	if res.HitY {
		p.Velocity[1] = 0
	}
	p.AABB = res.Bounds
}

func (p *Player) refineGrounded(in core.InputFrame) {
	up := in.Down(core.ActionUp)
	down := in.Down(core.ActionDown)

	if !p.Moving() {
		switch {
		case down:
			p.State = IdleProneGunForward
		case up:
			p.State = IdleGunUp
		default:
			p.State = IdleGunForward
		}
		return
	}

	switch {
	case down:
		p.State = RunningGunDown
	case up:
		p.State = RunningGunUp
	default:
		p.State = RunningGunForward
	}
}

// fire spawns at most one bullet while the fire action is held. The first
// shot of a press is immediate; repeats wait for the fire interval.
func (p *Player) fire(in core.InputFrame, f Frame) int {
	shots := 0
	if in.Down(core.ActionFire) {
		interval := p.cfg.FireInterval
		if f.FireInterval > 0 {
			interval = f.FireInterval
		}

		p.fireTimer += f.Dt
		if p.fireTimer > interval || !p.firing {
			p.fireTimer = 0
			p.firing = true
			if f.Bullets != nil {
				f.Bullets.Add(p.Muzzle())
			}
			shots++
		}
	}

	if in.Released(core.ActionFire) || !in.Down(core.ActionFire) {
		p.firing = false
	}
	return shots
}
