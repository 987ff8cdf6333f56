package config

import (
	_ "embed"
)

//go:embed defaults/contra.yaml
var defaultContraYAML []byte

// DefaultContraConfig returns the default stage configuration.
func DefaultContraConfig() ContraConfig {
	return ContraConfig{
		Player: PlayerConfig{
			Speed:         0.05,
			JumpImpulse:   0.25,
			Gravity:       0.015,
			PixelsPerUnit: 39.26,
			Spawn:         [3]float32{0, 0.5, 0},
			FireInterval:  0.25,
		},
		Bullets: BulletConfig{
			Speed:         0.1,
			PixelsPerUnit: 40,
		},
		Level: LevelConfig{
			GroundLevel: 0,
			Blocks: BlockConfig{
				Count:   100,
				Spacing: 5,
				Width:   1,
				Height:  1,
			},
			Enemies: EnemyConfig{
				Count:         30,
				First:         7.5,
				Spacing:       10,
				PixelsPerUnit: 39.26,
			},
		},
		Camera: CameraConfig{
			Position:   [3]float32{0, 3.1, 1},
			FOV:        60,
			Near:       0.1,
			Far:        1000,
			OrthoScale: 3.7,
			Projection: "orthographic",
			CellAspect: 2,
			FollowLerp: 0.1,
			Lead:       1.5,
			PanStep:    0.1,
			ZoomStep:   0.1,
		},
		Audio: AudioConfig{
			Music:         "audio.level_1_bg",
			MusicVolume:   0.1,
			Shot:          "audio.shot",
			EnemyDown:     "audio.enemy_down",
			EffectsVolume: 0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				EnemyDensity: 0.5,
				FireSlowdown: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "contra":
		return defaultContraYAML
	default:
		return nil
	}
}
