package contra

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-contra/internal/core"
	"github.com/vovakirdan/tui-contra/internal/physics"
	"github.com/vovakirdan/tui-contra/internal/registry"
	"github.com/vovakirdan/tui-contra/internal/sprite"
)

// Visual characters for rendering
const (
	GroundTop  = '═'
	GroundFill = '░'
	FacingR    = '>'
	FacingL    = '<'
)

// Render draws the stage as seen through the camera. Every world box is
// projected to the cells of dst the same way bullets are culled against the
// viewport set by Resize. Render only reads the stage.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())

	g.drawGround(dst, screen)

	for _, box := range g.static {
		g.fill(dst, screen, box, g.glyph("textures.bg_elements"))
	}

	for _, h := range g.enemies.Live() {
		frame := g.enemies.Playback(h).Current()
		g.fill(dst, screen, g.enemies.Body(h).AABB, g.frameGlyph(frame))
	}

	g.drawPlayer(dst, screen)

	for _, h := range g.bullets.Live() {
		frame := g.bullets.Sprite(h).Frame
		g.fill(dst, screen, g.bullets.Body(h).AABB, g.frameGlyph(frame))
	}

	if g.debug {
		g.drawDebug(dst, screen)
	}
	g.drawHUD(dst)
}

type glyph struct {
	r rune
	c core.Color
}

func (g *Game) glyph(texture string) glyph {
	t := g.assets.Texture(texture)
	return glyph{r: t.Glyph, c: t.Color}
}

func (g *Game) frameGlyph(f sprite.Frame) glyph {
	if f.Texture == "" {
		return glyph{r: '?', c: core.ColorWhite}
	}
	return g.glyph(f.Texture)
}

// cells returns the size of dst in window units.
func cells(dst *core.Screen) mgl32.Vec2 {
	return mgl32.Vec2{float32(dst.Width()), float32(dst.Height())}
}

// cellRect projects a world box to the cells it covers. Boxes smaller than a
// cell still cover one.
func (g *Game) cellRect(dst *core.Screen, box physics.AABB) core.Rect {
	r := physics.ProjectToWindow(box, &g.camera, cells(dst)).Normalized()
	rect := core.RectFromCorners(
		int(math.Floor(float64(r.Min.X()))),
		int(math.Floor(float64(r.Min.Y()))),
		int(math.Ceil(float64(r.Max.X()))),
		int(math.Ceil(float64(r.Max.Y()))),
	)
	rect.W = max(rect.W, 1)
	rect.H = max(rect.H, 1)
	return rect
}

func (g *Game) cellOf(dst *core.Screen, p mgl32.Vec3) (int, int) {
	r := physics.ProjectToWindow(physics.AABB{Min: p.Vec2(), Max: p.Vec2()}, &g.camera, cells(dst))
	return int(math.Floor(float64(r.Min.X()))), int(math.Floor(float64(r.Min.Y())))
}

func (g *Game) fill(dst *core.Screen, screen core.Rect, box physics.AABB, gl glyph) {
	r := g.cellRect(dst, box).Clip(screen)
	if r.Empty() {
		return
	}
	dst.DrawRectColored(r, gl.r, gl.c)
}

func (g *Game) drawGround(dst *core.Screen, screen core.Rect) {
	eye := g.camera.Eye().X()
	ground := physics.NewAABB(
		mgl32.Vec2{eye - 1000, g.cfg.Level.GroundLevel - 10},
		mgl32.Vec2{eye + 1000, g.cfg.Level.GroundLevel},
	)
	r := g.cellRect(dst, ground).Clip(screen)
	if r.Empty() {
		return
	}
	dst.DrawRectColored(r, GroundFill, core.ColorGray)
	dst.DrawHLineColored(r.X, r.Y, r.W, GroundTop, core.ColorGreen)
}

func (g *Game) drawPlayer(dst *core.Screen, screen core.Rect) {
	p := g.player
	gl := g.frameGlyph(p.Playback.Current())
	g.fill(dst, screen, p.DrawBounds(), gl)

	marker := FacingR
	if p.Heading < 0 {
		marker = FacingL
	}
	x, y := g.cellOf(dst, p.Muzzle().Position)
	if dst.InBounds(x, y) {
		dst.SetColored(x, y, marker, core.ColorBrightWhite)
	}
}

// drawDebug outlines the collision boxes.
func (g *Game) drawDebug(dst *core.Screen, screen core.Rect) {
	outline := func(box physics.AABB, c core.Color) {
		r := g.cellRect(dst, box)
		if r.Clip(screen).Empty() {
			return
		}
		dst.DrawBoxColored(r, c)
	}

	outline(g.player.AABB, core.ColorBrightWhite)
	for _, h := range g.enemies.Live() {
		outline(g.enemies.Body(h).AABB, core.ColorRed)
	}
	for _, h := range g.bullets.Live() {
		outline(g.bullets.Body(h).AABB, core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SCORE %06d  ENEMIES %d/%d ", g.score, g.enemies.Len(), g.enemyTotal)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	switch {
	case g.cleared:
		dst.DrawTextCentered(dst.Height()/2, " STAGE CLEAR ")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf(" Score: %d  -  R to restart ", g.score))
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// DebugEnabled reports whether the debug overlay is on.
func (g *Game) DebugEnabled() bool {
	return g.debug
}

// DebugRows returns a snapshot of the simulation for the platform's debug
// panel.
func (g *Game) DebugRows() []registry.DebugRow {
	p := g.player
	pos := p.Position()
	return []registry.DebugRow{
		{Label: "state", Value: p.State.String()},
		{Label: "position", Value: fmt.Sprintf("%.2f, %.2f", pos.X(), pos.Y())},
		{Label: "velocity", Value: fmt.Sprintf("%.3f, %.3f", p.Velocity.X(), p.Velocity.Y())},
		{Label: "grounded", Value: fmt.Sprintf("%t", p.Grounded())},
		{Label: "heading", Value: fmt.Sprintf("%+.0f", p.Heading)},
		{Label: "camera", Value: fmt.Sprintf("%.2f, %.2f", g.camera.Eye().X(), g.camera.Eye().Y())},
		{Label: "ortho", Value: fmt.Sprintf("%.2f (%s)", g.camera.OrthoScale, g.camera.Projection)},
		{Label: "bullets", Value: fmt.Sprintf("%d", g.bullets.Len())},
		{Label: "enemies", Value: fmt.Sprintf("%d/%d", g.enemies.Len(), g.enemyTotal)},
		{Label: "shots", Value: fmt.Sprintf("%d", g.shots)},
		{Label: "kills", Value: fmt.Sprintf("%d", g.kills)},
		{Label: "tick", Value: fmt.Sprintf("%d", g.ticks)},
		{Label: "difficulty", Value: fmt.Sprintf("%.2f", g.difficulty.Level(g.score, g.ticks))},
	}
}
