package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/assets"
	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/ecs"
	"github.com/vovakirdan/tui-contra/internal/games/contra/entity"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

type fakeAnims map[string]*sprite.Animation

func (f fakeAnims) Animation(name string) *sprite.Animation {
	a, ok := f[name]
	if !ok {
		panic("unknown animation " + name)
	}
	return a
}

func newAnims() fakeAnims {
	m := fakeAnims{}
	for _, s := range States() {
		m[s.Animation()] = &sprite.Animation{
			Name:  s.Animation(),
			Speed: 0.1,
			Frames: []sprite.Frame{
				{UV: mgl32.Vec4{0, 0, 34, 40}},
				{UV: mgl32.Vec4{34, 0, 68, 40}},
			},
		}
	}
	return m
}

type recorder struct {
	spawns []entity.BulletSpawn
}

func (r *recorder) Add(s entity.BulletSpawn) ecs.Handle {
	r.spawns = append(r.spawns, s)
	return ecs.Handle{Index: uint32(len(r.spawns))}
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newPlayer() (*Player, config.PlayerConfig) {
	cfg := config.DefaultContraConfig().Player
	return New(cfg, newAnims()), cfg
}

func frame(static ...physics.AABB) Frame {
	return Frame{
		World: entity.World{Static: static, GroundLevel: 0},
		Dt:    1.0 / 30,
	}
}

// settle runs empty updates until the player has been grounded for two
// consecutive ticks.
func settle(t *testing.T, p *Player, f Frame) {
	t.Helper()
	streak := 0
	for i := 0; i < 500; i++ {
		p.Update(core.NewInputFrame(), f)
		if p.Grounded() {
			streak++
			if streak == 2 {
				return
			}
		} else {
			streak = 0
		}
	}
	t.Fatalf("player never settled, position %v", p.Position())
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSpawnFallsAndLands(t *testing.T) {
	p, cfg := newPlayer()
	f := frame()

	landed := 0
	for i := 0; i < 100; i++ {
		if p.Update(core.NewInputFrame(), f).Landed {
			landed++
		}
	}

	if landed != 1 {
		t.Errorf("Landed reported %d times, expected 1", landed)
	}
	if !p.Grounded() {
		t.Fatal("player should be grounded")
	}
	want := 45 / cfg.PixelsPerUnit / 2
	if !near(p.Position().Y(), want) {
		t.Errorf("resting y = %v, expected %v", p.Position().Y(), want)
	}
	if !near(p.AABB.Min.Y(), 0) {
		t.Errorf("box bottom = %v, expected 0", p.AABB.Min.Y())
	}
	if p.State != IdleGunForward {
		t.Errorf("State = %v, expected IdleGunForward", p.State)
	}
}

func TestConvergesToRunningGunForward(t *testing.T) {
	p, cfg := newPlayer()
	p.Transform.Position = mgl32.Vec3{0, 3, 0}
	p.Velocity = mgl32.Vec2{0, -0.01}
	f := frame()

	for i := 0; i < 200; i++ {
		p.Update(held(core.ActionRight), f)
	}

	if p.State != RunningGunForward {
		t.Errorf("State = %v, expected RunningGunForward", p.State)
	}
	if !p.Grounded() || p.Velocity.X() != cfg.Speed || p.Heading != 1 {
		t.Errorf("velocity %v heading %v grounded %v", p.Velocity, p.Heading, p.Grounded())
	}
	if p.Position().X() <= 0 {
		t.Errorf("player did not move right: %v", p.Position())
	}
}

func TestJumpImpulseOncePerPress(t *testing.T) {
	p, cfg := newPlayer()
	f := frame()
	settle(t, p, f)

	p.Update(pressed(core.ActionJump), f)
	if p.State != Jumping {
		t.Fatalf("State = %v, expected Jumping", p.State)
	}
	if want := cfg.JumpImpulse - cfg.Gravity; p.Velocity.Y() != want {
		t.Fatalf("vy after jump = %v, expected %v", p.Velocity.Y(), want)
	}

	prev := p.Velocity.Y()
	for i := 0; i < 5; i++ {
		p.Update(held(core.ActionJump), f)
		if want := prev - cfg.Gravity; p.Velocity.Y() != want {
			t.Fatalf("tick %d: vy = %v, expected %v (held jump must not stack)", i, p.Velocity.Y(), want)
		}
		prev = p.Velocity.Y()
	}

	// A new press in the air does nothing either
	p.Update(pressed(core.ActionJump), f)
	if want := prev - cfg.Gravity; p.Velocity.Y() != want {
		t.Errorf("airborne press changed vy to %v, expected %v", p.Velocity.Y(), want)
	}
}

func TestGroundedRefinement(t *testing.T) {
	tests := []struct {
		name  string
		input []core.Action
		want  State
	}{
		{"idle", nil, IdleGunForward},
		{"prone", []core.Action{core.ActionDown}, IdleProneGunForward},
		{"look up", []core.Action{core.ActionUp}, IdleGunUp},
		{"run", []core.Action{core.ActionRight}, RunningGunForward},
		{"run up", []core.Action{core.ActionRight, core.ActionUp}, RunningGunUp},
		{"run down", []core.Action{core.ActionLeft, core.ActionDown}, RunningGunDown},
		{"run both", []core.Action{core.ActionLeft, core.ActionUp, core.ActionDown}, RunningGunDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newPlayer()
			f := frame()
			settle(t, p, f)

			p.Update(held(tc.input...), f)
			if p.State != tc.want {
				t.Errorf("State = %v, expected %v", p.State, tc.want)
			}
			if p.Playback.Asset.Name != tc.want.Animation() {
				t.Errorf("animation = %q, expected %q", p.Playback.Asset.Name, tc.want.Animation())
			}
		})
	}
}

func TestProneShrinksBox(t *testing.T) {
	p, cfg := newPlayer()
	f := frame()
	settle(t, p, f)

	p.Update(held(core.ActionDown), f)
	if h := p.AABB.Size().Y(); !near(h, 18/cfg.PixelsPerUnit) {
		t.Errorf("prone box height = %v, expected %v", h, 18/cfg.PixelsPerUnit)
	}
}

func TestBulletMirroredByHeading(t *testing.T) {
	p, _ := newPlayer()

	for _, s := range States() {
		t.Run(s.String(), func(t *testing.T) {
			p.State = s
			p.Heading = 1
			right := p.Muzzle()
			p.Heading = -1
			left := p.Muzzle()

			if left.Velocity.X() != -right.Velocity.X() || left.Velocity.Y() != right.Velocity.Y() {
				t.Errorf("velocity right %v left %v", right.Velocity, left.Velocity)
			}
			dr := right.Position.Sub(p.Position())
			dl := left.Position.Sub(p.Position())
			if !near(dl.X(), -dr.X()) || !near(dl.Y(), dr.Y()) {
				t.Errorf("offset right %v left %v", dr, dl)
			}
		})
	}
}

func TestFireFacingLeft(t *testing.T) {
	p, _ := newPlayer()
	rec := &recorder{}
	f := frame()
	f.Bullets = rec
	settle(t, p, f)

	p.Update(held(core.ActionLeft), f)
	p.Update(pressed(core.ActionFire), f)

	if len(rec.spawns) != 1 {
		t.Fatalf("fired %d bullets, expected 1", len(rec.spawns))
	}
	if v := rec.spawns[0].Velocity; v != (mgl32.Vec2{-1, 0}) {
		t.Errorf("bullet velocity = %v, expected (-1, 0)", v)
	}
	if rec.spawns[0].Position.X() >= p.Position().X() {
		t.Error("bullet should spawn left of the player")
	}
}

func TestFireCadence(t *testing.T) {
	p, cfg := newPlayer()
	rec := &recorder{}
	f := frame()
	f.Bullets = rec
	settle(t, p, f)

	if cfg.FireInterval != 0.25 {
		t.Fatalf("test assumes a 0.25s interval, got %v", cfg.FireInterval)
	}

	shots := p.Update(pressed(core.ActionFire), f).Shots
	for i := 1; i < 17; i++ {
		shots += p.Update(held(core.ActionFire), f).Shots
	}
	// Immediate shot, then one every 8 ticks of 1/30s
	if shots != 3 || len(rec.spawns) != 3 {
		t.Errorf("held fire produced %d shots, expected 3", shots)
	}

	rel := core.NewInputFrame()
	rel.Release(core.ActionFire)
	p.Update(rel, f)
	if p.Firing() {
		t.Error("release should clear the fire latch")
	}

	if got := p.Update(pressed(core.ActionFire), f).Shots; got != 1 {
		t.Errorf("new press fired %d shots, expected 1 immediately", got)
	}
}

func TestFireIntervalOverride(t *testing.T) {
	p, _ := newPlayer()
	f := frame()
	f.Bullets = &recorder{}
	f.FireInterval = 1
	settle(t, p, f)

	shots := p.Update(pressed(core.ActionFire), f).Shots
	for i := 1; i < 30; i++ {
		shots += p.Update(held(core.ActionFire), f).Shots
	}
	if shots != 1 {
		t.Errorf("shots = %d within one second, expected 1", shots)
	}
}

func TestWalkIntoBlockStops(t *testing.T) {
	p, _ := newPlayer()
	block := physics.NewAABB(mgl32.Vec2{2, 0}, mgl32.Vec2{3, 1})
	f := frame(block)
	settle(t, p, f)

	for i := 0; i < 200; i++ {
		p.Update(held(core.ActionRight), f)
	}

	if p.AABB.Max.X() > 2+1e-4 {
		t.Errorf("player box max x = %v, expected to stop at the block face 2", p.AABB.Max.X())
	}
	if physics.Overlaps(p.AABB, block) {
		t.Error("player still overlaps the block")
	}
	if !p.Grounded() {
		t.Error("a horizontal push must not leave the player airborne")
	}
}

func TestLandOnBlock(t *testing.T) {
	p, cfg := newPlayer()
	block := physics.NewAABB(mgl32.Vec2{2, 0}, mgl32.Vec2{3, 1})
	p.Transform.Position = mgl32.Vec3{2.5, 3, 0}
	settle(t, p, frame(block))

	want := 1 + 45/cfg.PixelsPerUnit/2
	if !near(p.Position().Y(), want) {
		t.Errorf("y = %v, expected to rest on the block at %v", p.Position().Y(), want)
	}
}

func TestDrawBoundsStandOnHitBox(t *testing.T) {
	p, cfg := newPlayer()
	for _, st := range []State{IdleGunUp, IdleGunForward, IdleProneGunForward, Jumping} {
		p.State = st
		draw := p.DrawBounds()
		hit := p.bounds(p.Transform.Position)
		if !near(draw.Min.Y(), hit.Min.Y()) {
			t.Errorf("%v: draw bottom = %v, expected hit box bottom %v", st, draw.Min.Y(), hit.Min.Y())
		}
		if h := draw.Size().Y(); !near(h, 40/cfg.PixelsPerUnit) {
			t.Errorf("%v: draw height = %v, expected full frame %v", st, h, 40/cfg.PixelsPerUnit)
		}
	}
}

func TestRaisedMuzzleInsideDrawBox(t *testing.T) {
	m, err := assets.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultContraConfig().Player

	for _, st := range []State{IdleGunUp, RunningGunUp} {
		for _, heading := range []float32{1, -1} {
			p := New(cfg, m)
			p.State = st
			p.Heading = heading
			p.Playback.SetAsset(m.Animation(st.Animation()))

			for i := range p.Playback.Asset.Len() {
				p.Playback.Frame = i
				draw := p.DrawBounds()
				muzzle := p.Muzzle().Position
				if muzzle.Y() < draw.Min.Y() || muzzle.Y() > draw.Max.Y() {
					t.Errorf("%v heading %v frame %d: muzzle y %v outside draw box [%v, %v]",
						st, heading, i, muzzle.Y(), draw.Min.Y(), draw.Max.Y())
				}
			}
		}
	}
}

func TestStateString(t *testing.T) {
	if got := IdleProneGunForward.String(); got != "IdleProneGunForward" {
		t.Errorf("String() = %q", got)
	}
	if got := State(42).String(); got != "Unknown" {
		t.Errorf("out of range String() = %q", got)
	}
	if len(States()) != 7 {
		t.Errorf("len(States()) = %d, expected 7", len(States()))
	}
}
