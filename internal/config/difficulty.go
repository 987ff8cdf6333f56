package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyCount returns how many enemies of a layout of n are spawned.
// At level 0 the configured density fraction is dropped; at level 1 the
// full layout is used. At least one enemy is always kept.
func (d *DifficultyManager) EnemyCount(n int) int {
	if n <= 0 {
		return 0
	}
	level := d.initialLevel
	drop := clampF(d.cfg.Scaling.EnemyDensity, 0.0, 1.0) * (1.0 - level)
	kept := int(math.Round(float64(n) * (1.0 - drop)))
	if kept < 1 {
		kept = 1
	}
	return kept
}

// FireInterval returns the current seconds between shots.
// The interval grows with difficulty, up to base * (1 + FireSlowdown).
// A zero FireSlowdown keeps base at every level.
func (d *DifficultyManager) FireInterval(base float32, score int, ticks int) float32 {
	level := d.Level(score, ticks)
	return base * float32(1.0+level*d.cfg.Scaling.FireSlowdown)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
