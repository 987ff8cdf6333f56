package sprite

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func makeAnimation(name string, frames int, speed float32) *Animation {
	a := &Animation{Name: name, Speed: speed}
	for i := 0; i < frames; i++ {
		x := float32(i * 10)
		a.Frames = append(a.Frames, Frame{Texture: "atlas", UV: mgl32.Vec4{x, 0, x + 8, 12}})
	}
	return a
}

func TestFrameExtent(t *testing.T) {
	f := Frame{UV: mgl32.Vec4{113, 81, 146, 120}}
	if f.Width() != 33 || f.Height() != 39 {
		t.Errorf("extent = %v, expected [33 39]", f.Extent())
	}
}

func TestPlaybackTick(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		speed     float32
		ticks     int
		wantFrame int
	}{
		{"no advance before threshold", 3, 0.5, 1, 0},
		{"advance at threshold", 3, 0.5, 2, 1},
		{"wraps around", 3, 0.5, 6, 0},
		{"speed one advances every tick", 4, 1, 3, 3},
		{"single frame stays", 1, 0.8, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayback(makeAnimation("a", tc.frames, tc.speed))
			for i := 0; i < tc.ticks; i++ {
				p.Tick()
			}
			if p.Frame != tc.wantFrame {
				t.Errorf("Frame = %d, expected %d", p.Frame, tc.wantFrame)
			}
		})
	}
}

func TestPlaybackIsPerEntity(t *testing.T) {
	shared := makeAnimation("run", 6, 0.5)
	a := NewPlayback(shared)
	b := NewPlayback(shared)

	a.Tick()
	a.Tick()

	if a.Frame != 1 || b.Frame != 0 {
		t.Errorf("cursors should be independent: a=%d b=%d", a.Frame, b.Frame)
	}
}

func TestPlaybackSetAssetWrapsCursor(t *testing.T) {
	p := NewPlayback(makeAnimation("run", 6, 1))
	for i := 0; i < 4; i++ {
		p.Tick()
	}

	p.SetAsset(makeAnimation("idle", 1, 0.1))
	if p.Frame != 0 {
		t.Errorf("Frame = %d, expected 0 after switching to a single-frame asset", p.Frame)
	}

	p2 := NewPlayback(makeAnimation("run", 6, 1))
	p2.Tick()
	p2.Tick()
	p2.SetAsset(makeAnimation("run_up", 6, 1))
	if p2.Frame != 2 {
		t.Errorf("Frame = %d, expected cursor kept at 2", p2.Frame)
	}
}

func TestPlaybackEmpty(t *testing.T) {
	var p Playback
	p.Tick()
	if got := p.Current(); got != (Frame{}) {
		t.Errorf("Current() of empty playback = %v", got)
	}
}
