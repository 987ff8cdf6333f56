package player

import "github.com/go-gl/mathgl/mgl32"

// State is the player's discrete behavioural state.
type State int

const (
	RunningGunForward State = iota
	RunningGunUp
	RunningGunDown
	IdleGunForward
	IdleGunUp
	IdleProneGunForward
	Jumping
	stateCount
)

// stateInfo is the per-state lookup row. Pixel values are in sprite
// pixels and scaled by the player's pixels-per-unit.
type stateInfo struct {
	name      string
	animation string
	velocity  mgl32.Vec2 // Bullet direction for heading +1
	offset    mgl32.Vec2 // Muzzle offset from the player position for heading +1
	hitHeight float32    // Collision box height
}

var states = [stateCount]stateInfo{
	RunningGunForward: {
		name:      "RunningGunForward",
		animation: "player_state_running_gun_forward_not_firing",
		velocity:  mgl32.Vec2{1, 0},
		offset:    mgl32.Vec2{0.55, 0.2},
		hitHeight: 45,
	},
	RunningGunUp: {
		name:      "RunningGunUp",
		animation: "player_state_running_gun_up_not_firing",
		velocity:  mgl32.Vec2{1.5, 0.8},
		offset:    mgl32.Vec2{0.4, 0.7},
		hitHeight: 45,
	},
	RunningGunDown: {
		name:      "RunningGunDown",
		animation: "player_state_running_gun_down_not_firing",
		velocity:  mgl32.Vec2{1.8, -0.8},
		offset:    mgl32.Vec2{0.4, -0.3},
		hitHeight: 45,
	},
	IdleGunForward: {
		name:      "IdleGunForward",
		animation: "player_state_idle_gun_forward_not_firing",
		velocity:  mgl32.Vec2{1, 0},
		offset:    mgl32.Vec2{0.5, 0.2},
		hitHeight: 45,
	},
	IdleGunUp: {
		name:      "IdleGunUp",
		animation: "player_state_idle_gun_up_not_firing",
		velocity:  mgl32.Vec2{0, 1},
		offset:    mgl32.Vec2{0.1, 1.0},
		hitHeight: 45,
	},
	IdleProneGunForward: {
		name:      "IdleProneGunForward",
		animation: "player_state_idle_prone_gun_forward_not_firing",
		velocity:  mgl32.Vec2{1, 0},
		offset:    mgl32.Vec2{0.6, -0.05},
		hitHeight: 18,
	},
	Jumping: {
		name:      "Jumping",
		animation: "player_state_jumping_null_null",
		velocity:  mgl32.Vec2{1, 0},
		offset:    mgl32.Vec2{0.5, 0.2},
		hitHeight: 15,
	},
}

// States returns every state in declaration order.
func States() []State {
	out := make([]State, 0, stateCount)
	for s := State(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s State) info() stateInfo {
	if s < 0 || s >= stateCount {
		return states[IdleGunForward]
	}
	return states[s]
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "Unknown"
	}
	return states[s].name
}

// Animation returns the name of the animation asset played in this state.
func (s State) Animation() string {
	return s.info().animation
}

// BulletVelocity returns the bullet direction for heading +1.
func (s State) BulletVelocity() mgl32.Vec2 {
	return s.info().velocity
}

// BulletOffset returns the muzzle offset for heading +1.
func (s State) BulletOffset() mgl32.Vec2 {
	return s.info().offset
}
