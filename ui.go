package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"parabolic/game"
)

const helpText = "Space launch/pause  R reset  P/N level  W/S height  A/D speed  Up/Down angle  -/= sim speed  T preview  F1 debug  " +
	"drag launcher to aim  drag plate/corners to edit (Shift or right button rotates)  Alt+Enter fullscreen"

// drawHUD draws the level, launch and status readouts above the plot.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	level := s.Level()
	env := level.Environment

	preview := "off"
	if s.ShowPreview {
		preview = "on"
	}

	lines := []struct {
		text string
		clr  color.Color
	}{
		{fmt.Sprintf("%s  %s   [level %d/%d, unlocked through %s]",
			level.Code, level.Title, s.Current+1, len(s.Levels), s.Levels[s.Unlocked].Code), colorText},
		{fmt.Sprintf("%s: g=%.2f m/s^2  wind=%+.2f m/s^2  drag=%.3f/s   bounces required: %d",
			env.Name, env.Gravity, env.WindAccelX, env.Drag, level.RequiredBounces), colorTextDim},
		{fmt.Sprintf("Angle %.1f deg   Speed %.1f m/s   Height %.1f m   Sim x%.1f   Preview %s",
			s.Launch.AngleDeg, s.Launch.Speed, s.Launch.Height, s.SimSpeed, preview), colorText},
		{g.predictionLine(), colorTextDim},
		{fmt.Sprintf("%s | %s", s.PhaseText(), s.Status), phaseColor(s.Phase)},
	}
	for i, l := range lines {
		drawText(screen, l.text, hudX, hudY+i*hudLineHeight, l.clr)
	}
	drawText(screen, helpText, hudX, g.height-12, colorTextDim)
}

func (g *Game) predictionLine() string {
	if shot := g.session.Shot; shot != nil {
		return fmt.Sprintf("In flight: t=%.2f s  x=%.1f m  y=%.1f m  bounces %d",
			shot.Elapsed, shot.Pos.X, shot.Pos.Y, shot.Bounces)
	}
	p := g.pred
	return fmt.Sprintf("Predicted: range %.1f m  time %.2f s  peak %.1f m  bounces %d  -> %s",
		p.Range, p.FlightTime, p.MaxHeight(), p.Bounces, p.Outcome)
}

func phaseColor(p game.Phase) color.Color {
	switch p {
	case game.PhaseSuccess:
		return colorSuccess
	case game.PhaseFailed:
		return colorFailure
	default:
		return colorText
	}
}

// buttons lays out the on-screen controls along the top right.
func (g *Game) buttons() []button {
	labels := []struct {
		label  string
		action game.FrameActions
	}{
		{"Launch/Pause", game.FrameActions{LaunchPause: true}},
		{"Reset", game.FrameActions{Reset: true}},
		{"Prev Level", game.FrameActions{PrevLevel: true}},
		{"Next Level", game.FrameActions{NextLevel: true}},
	}

	out := make([]button, len(labels))
	x := float64(g.width) - float64(len(labels))*(buttonWidth+buttonGap)
	for i, l := range labels {
		out[i] = button{label: l.label, x: x + float64(i)*(buttonWidth+buttonGap), y: hudY - 12, action: l.action}
	}
	return out
}

func (g *Game) buttonAt(p game.Vec2) (button, bool) {
	for _, b := range g.buttons() {
		r := game.Rect{X: b.x, Y: b.y, W: buttonWidth, H: buttonHeight}
		if r.Contains(p) {
			return b, true
		}
	}
	return button{}, false
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	hovered, hover := g.buttonAt(cursorPosition())
	for _, b := range g.buttons() {
		clr := colorButton
		if hover && hovered.label == b.label {
			clr = colorButtonHover
		}
		vector.DrawFilledRect(screen, float32(b.x), float32(b.y), buttonWidth, buttonHeight, clr, true)
		drawText(screen, b.label, int(b.x)+10, int(b.y)+20, colorText)
	}
}

// drawDebug shows frame timing and view internals (F1).
func (g *Game) drawDebug(screen *ebiten.Image) {
	pxX, pxY := g.camera.PixelsPerMeter()
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("window %.1f x %.1f m  scale %.2f x %.2f px/m", g.spanX, g.spanY, pxX, pxY),
		fmt.Sprintf("trail %d pts  prediction %d pts", len(g.session.Trail), len(g.pred.Points)),
		fmt.Sprintf("editor mode %d  slinging %t", g.editor.Mode, g.slinging),
	}
	x := int(g.camera.Right) - 330
	for i, l := range lines {
		drawText(screen, l, x, int(g.camera.Top)+18+i*hudLineHeight, colorTextDim)
	}
}

// drawText uses the classic text.Draw signature with the 7x13 bitmap face.
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}
