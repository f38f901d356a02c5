package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"parabolic/game"
)

// Draw renders the plot, the level, the shot and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.drawPlot(screen)
	g.drawLevel(screen)
	if g.session.ShowPreview {
		g.drawPreview(screen)
	}
	g.drawShot(screen)
	g.drawLauncher(screen)
	g.drawHUD(screen)
	g.drawButtons(screen)
	if g.showDebug {
		g.drawDebug(screen)
	}
}

// drawPlot draws the plot background, grid and axis labels.
func (g *Game) drawPlot(screen *ebiten.Image) {
	c := g.camera
	vector.DrawFilledRect(screen, float32(c.Left), float32(c.Top), float32(c.Right-c.Left), float32(c.Bottom-c.Top), colorPlot, false)

	stepX := game.TickStep(c.SpanX / axisTickCount)
	for x := 0.0; x <= c.SpanX+1e-9; x += stepX {
		p := c.WorldToScreen(game.Vec2{X: x})
		strokeLine(screen, game.Vec2{X: p.X, Y: c.Top}, p, 1, colorGrid)
		drawText(screen, formatTick(x), int(p.X)-8, int(c.Bottom)+18, colorTextDim)
	}
	stepY := game.TickStep(c.SpanY / (axisTickCount / 2))
	for y := 0.0; y <= c.SpanY+1e-9; y += stepY {
		p := c.WorldToScreen(game.Vec2{Y: y})
		strokeLine(screen, p, game.Vec2{X: c.Right, Y: p.Y}, 1, colorGrid)
		drawText(screen, formatTick(y), int(c.Left)-48, int(p.Y)+4, colorTextDim)
	}

	origin := c.WorldToScreen(game.Vec2{})
	strokeLine(screen, origin, game.Vec2{X: c.Right, Y: origin.Y}, 3, colorGround)
	strokeLine(screen, origin, game.Vec2{X: origin.X, Y: c.Top}, 1, colorAxis)
	drawText(screen, "distance (m)", int(c.Right)-90, int(c.Bottom)+36, colorTextDim)
	drawText(screen, "height (m)", int(c.Left)-80, int(c.Top)-10, colorTextDim)
}

// drawLevel draws the target, barriers and bounce surface.
func (g *Game) drawLevel(screen *ebiten.Image) {
	s := g.session
	level := s.Level()
	c := g.camera
	pxX, _ := c.PixelsPerMeter()

	targetColor := colorTarget
	if s.Shot != nil && s.Shot.Bounces < level.RequiredBounces {
		targetColor = colorTargetLocked
	}
	center := c.WorldToScreen(level.Target.Center)
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(level.Target.Radius*pxX), targetColor, true)

	for _, b := range level.Barriers {
		topLeft := c.WorldToScreen(game.Vec2{X: b.Rect.X, Y: b.Rect.Y + b.Rect.H})
		bottomRight := c.WorldToScreen(game.Vec2{X: b.Rect.X + b.Rect.W, Y: b.Rect.Y})
		vector.DrawFilledRect(screen, float32(topLeft.X), float32(topLeft.Y),
			float32(bottomRight.X-topLeft.X), float32(bottomRight.Y-topLeft.Y), colorBarrier, true)
	}

	if level.Surface == nil {
		return
	}
	corners := level.Surface.Corners
	for _, e := range game.QuadEdges(corners) {
		strokeLine(screen, c.WorldToScreen(e.A), c.WorldToScreen(e.B), 3, colorSurface)
	}
	if s.Phase != game.PhaseFlying {
		for i, corner := range corners {
			p := c.WorldToScreen(corner)
			radius := float32(5)
			if g.editor.Mode == game.DragCorner && g.editor.Corner == i {
				radius = 8
			}
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, colorHandle, true)
		}
	}
}

// drawPreview draws the predicted path as a dashed line.
func (g *Game) drawPreview(screen *ebiten.Image) {
	pts := g.pred.Points
	stride := max(len(pts)/maxTrailSegments, 1)
	dash := true
	for i := stride; i < len(pts); i += stride {
		if dash {
			strokeLine(screen, g.camera.WorldToScreen(pts[i-stride]), g.camera.WorldToScreen(pts[i]), 2, colorPreview)
		}
		dash = !dash
	}
}

// drawShot draws the trail and the projectile, in flight or where it came to rest.
func (g *Game) drawShot(screen *ebiten.Image) {
	s := g.session
	trail := s.Trail
	if len(trail) == 0 {
		return
	}

	stride := max(len(trail)/maxTrailSegments, 1)
	prev := g.camera.WorldToScreen(trail[0])
	for i := stride; i < len(trail); i += stride {
		p := g.camera.WorldToScreen(trail[i])
		strokeLine(screen, prev, p, 2, colorTrail)
		prev = p
	}

	pos := trail[len(trail)-1]
	p := g.camera.WorldToScreen(pos)
	strokeLine(screen, prev, p, 2, colorTrail)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 6, colorProjectile, true)
}

// drawLauncher draws the launch point, the aim vector and the slingshot band.
func (g *Game) drawLauncher(screen *ebiten.Image) {
	s := g.session
	p := g.camera.WorldToScreen(s.Launch.LaunchPoint())
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 7, colorLauncher, true)

	theta := s.Launch.AngleDeg * math.Pi / 180
	length := 30 + s.Launch.Speed*0.3
	tip := game.Vec2{X: p.X + math.Cos(theta)*length, Y: p.Y - math.Sin(theta)*length}
	strokeLine(screen, p, tip, 2, colorLauncher)

	if g.slinging {
		strokeLine(screen, p, g.ghost, 2, colorSling)
		vector.DrawFilledCircle(screen, float32(g.ghost.X), float32(g.ghost.Y), 5, colorSling, true)
	}
}

func strokeLine(dst *ebiten.Image, a, b game.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
