package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	d.SetEnabled(false)
	if got := d.Level(1000, 0); got != 0.2 {
		t.Errorf("disabled Level = %v, expected initial 0.2", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestEnemyCount(t *testing.T) {
	cfg := DifficultyConfig{Scaling: ScalingConfig{EnemyDensity: 0.5}}

	tests := []struct {
		level float64
		n     int
		want  int
	}{
		{0.0, 30, 15},
		{1.0, 30, 30},
		{0.5, 20, 15},
		{0.0, 1, 1},
		{0.0, 0, 0},
	}
	for _, tc := range tests {
		d := NewDifficultyManager(cfg)
		d.SetInitialLevel(tc.level)
		if got := d.EnemyCount(tc.n); got != tc.want {
			t.Errorf("EnemyCount(%d) at level %v = %d, expected %d", tc.n, tc.level, got, tc.want)
		}
	}
}

func TestFireInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{FireSlowdown: 1},
	})

	if got := d.FireInterval(0.25, 0, 0); got != 0.25 {
		t.Errorf("FireInterval at level 0 = %v, expected 0.25", got)
	}
	if got := d.FireInterval(0.25, 100, 0); got != 0.5 {
		t.Errorf("FireInterval at max = %v, expected 0.5", got)
	}
}

func TestDefaultFireIntervalIsFixed(t *testing.T) {
	cfg := DefaultContraConfig()
	d := NewDifficultyManager(cfg.Difficulty)

	for _, score := range []int{0, 500, 2000, 10000} {
		if got := d.FireInterval(cfg.Player.FireInterval, score, 0); got != 0.25 {
			t.Errorf("FireInterval at score %d = %v, expected 0.25", score, got)
		}
	}
}
