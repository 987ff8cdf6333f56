// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ContraConfig contains all configuration for the Contra stage.
type ContraConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Level      LevelConfig      `yaml:"level"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines movement and firing parameters for the player.
type PlayerConfig struct {
	Speed         float32    `yaml:"speed"`           // World units per tick
	JumpImpulse   float32    `yaml:"jump_impulse"`    // Upward velocity set on jump
	Gravity       float32    `yaml:"gravity"`         // Subtracted from vy every tick
	PixelsPerUnit float32    `yaml:"pixels_per_unit"` // Sprite pixels per world unit
	Spawn         [3]float32 `yaml:"spawn"`
	FireInterval  float32    `yaml:"fire_interval"` // Seconds between shots while held
}

// BulletConfig defines bullet parameters.
type BulletConfig struct {
	Speed         float32 `yaml:"speed"` // World units per tick
	PixelsPerUnit float32 `yaml:"pixels_per_unit"`
}

// LevelConfig defines the static geometry and enemy layout.
type LevelConfig struct {
	GroundLevel float32     `yaml:"ground_level"`
	Blocks      BlockConfig `yaml:"blocks"`
	Enemies     EnemyConfig `yaml:"enemies"`
}

// BlockConfig lays out Count boxes of Width x Height, one every Spacing units.
type BlockConfig struct {
	Count   int     `yaml:"count"`
	Spacing float32 `yaml:"spacing"`
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
}

// EnemyConfig lays out Count enemies starting at First, one every Spacing units.
type EnemyConfig struct {
	Count         int     `yaml:"count"`
	First         float32 `yaml:"first"`
	Spacing       float32 `yaml:"spacing"`
	PixelsPerUnit float32 `yaml:"pixels_per_unit"`
}

// CameraConfig defines the scene camera.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	FOV        float32    `yaml:"fov"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	OrthoScale float32    `yaml:"ortho_scale"`
	Projection string     `yaml:"projection"` // "orthographic" or "perspective"
	CellAspect float32    `yaml:"cell_aspect"`
	FollowLerp float32    `yaml:"follow_lerp"`
	Lead       float32    `yaml:"lead"`
	PanStep    float32    `yaml:"pan_step"`
	ZoomStep   float32    `yaml:"zoom_step"`
}

// AudioConfig names the sources played by the stage.
type AudioConfig struct {
	Music         string  `yaml:"music"`
	MusicVolume   float64 `yaml:"music_volume"`
	Shot          string  `yaml:"shot"`
	EnemyDown     string  `yaml:"enemy_down"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyDensity float64 `yaml:"enemy_density"` // Fraction of the enemy layout dropped at level 0
	FireSlowdown float64 `yaml:"fire_slowdown"` // Fire interval growth at max difficulty; 0 keeps it fixed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
