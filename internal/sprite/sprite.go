// Package sprite holds atlas frames and frame-based animations.
//
// An Animation is a shared, read-only asset owned by the asset manager.
// Entities keep a Playback, which points at an Animation and carries their
// own cursor, so any number of entities can play the same asset at
// different positions.
package sprite

import "github.com/go-gl/mathgl/mgl32"

// Frame is a rectangle of a texture atlas.
// UV holds pixel coordinates (x0, y0, x1, y1).
type Frame struct {
	Texture string
	UV      mgl32.Vec4
}

// Width returns the frame width in pixels.
func (f Frame) Width() float32 {
	return f.UV[2] - f.UV[0]
}

// Height returns the frame height in pixels.
func (f Frame) Height() float32 {
	return f.UV[3] - f.UV[1]
}

// Extent returns the frame size as a vector.
func (f Frame) Extent() mgl32.Vec2 {
	return mgl32.Vec2{f.Width(), f.Height()}
}

// Animation is an ordered list of frames advanced at Speed per tick.
// A Speed of 0.1 advances one frame every ten ticks.
type Animation struct {
	Name   string
	Frames []Frame
	Speed  float32
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.Frames)
}

// Playback is the per-entity view of an Animation.
type Playback struct {
	Asset *Animation
	Frame int
	Time  float32
}

// NewPlayback starts playing asset from its first frame.
func NewPlayback(asset *Animation) Playback {
	return Playback{Asset: asset}
}

// Tick advances the accumulator by the asset speed and steps to the next
// frame, wrapping, each time it reaches one.
func (p *Playback) Tick() {
	if p.Asset == nil || p.Asset.Len() == 0 {
		return
	}
	p.Time += p.Asset.Speed
	if p.Time >= 1 {
		p.Time = 0
		p.Frame = (p.Frame + 1) % p.Asset.Len()
	}
}

// SetAsset switches to another animation.
// The cursor is kept and wrapped into the new asset's frame range, so a
// running cycle stays in phase when only the gun direction changes.
func (p *Playback) SetAsset(asset *Animation) {
	if p.Asset == asset {
		return
	}
	p.Asset = asset
	if asset == nil || asset.Len() == 0 {
		p.Frame = 0
		return
	}
	p.Frame %= asset.Len()
}

// Current returns the frame to draw. A playback without frames returns the
// zero Frame.
func (p Playback) Current() Frame {
	if p.Asset == nil || p.Asset.Len() == 0 {
		return Frame{}
	}
	return p.Asset.Frames[p.Frame%p.Asset.Len()]
}
