package contra

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/config"
	"github.com/vovakirdan/tui-contra/internal/physics"
)

// Blocks lays out the static level geometry: Count boxes resting on the
// ground, one every Spacing units from x=0.
func Blocks(cfg config.LevelConfig) []physics.AABB {
	b := cfg.Blocks
	if b.Count <= 0 {
		return nil
	}

	out := make([]physics.AABB, 0, b.Count)
	for i := range b.Count {
		corner := mgl32.Vec2{float32(i) * b.Spacing, cfg.GroundLevel}
		out = append(out, physics.NewAABB(corner, corner.Add(mgl32.Vec2{b.Width, b.Height})))
	}
	return out
}

// EnemyPositions returns n spawn points spread over the configured enemy
// slots. Enemies spawn at ground level and settle on their first update.
// When n is below the slot count, slots are skipped evenly so the stage
// keeps its length.
func EnemyPositions(cfg config.LevelConfig, n int) []mgl32.Vec3 {
	e := cfg.Enemies
	if n <= 0 || e.Count <= 0 {
		return nil
	}
	n = min(n, e.Count)

	out := make([]mgl32.Vec3, 0, n)
	for i := range n {
		slot := i * e.Count / n
		x := e.First + float32(slot)*e.Spacing
		out = append(out, mgl32.Vec3{x, cfg.GroundLevel, 0})
	}
	return out
}
