package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"parabolic/game"
)

// readHotkeys maps this frame's key presses to session actions.
func readHotkeys() game.FrameActions {
	return game.FrameActions{
		LaunchPause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		PrevLevel:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		NextLevel:   inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
}

// readButtons reports clicks on the on-screen buttons.
func (g *Game) readButtons() game.FrameActions {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return game.FrameActions{}
	}
	if b, ok := g.buttonAt(cursorPosition()); ok {
		return b.action
	}
	return game.FrameActions{}
}

// handleWindowKeys toggles fullscreen on Alt+Enter.
func (g *Game) handleWindowKeys() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)

	if altEnterPressed && !g.prevAltEnter {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
		}
	}
	g.prevAltEnter = altEnterPressed
}

// handleConfigKeys applies held-key edits to the launch configuration and
// the one-shot toggles. Launch edits are ignored while a shot is in flight.
func (g *Game) handleConfigKeys(dt float64) {
	s := g.session

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.ShowPreview = !s.ShowPreview
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.SetSimSpeed(s.SimSpeed + simStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.SetSimSpeed(s.SimSpeed - simStep)
	}

	if s.Phase == game.PhaseFlying {
		return
	}

	var dHeight, dSpeed, dAngle float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dHeight += heightRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dHeight -= heightRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dSpeed += speedRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dSpeed -= speedRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dAngle += angleRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dAngle -= angleRate * dt
	}

	if dHeight != 0 || dSpeed != 0 {
		s.AdjustConfig(dHeight, dSpeed)
	}
	if dAngle != 0 {
		launch := s.Launch
		launch.AngleDeg += dAngle
		s.SetLaunch(launch)
	}
}

// handleMouse drives the slingshot and the bounce-surface editor.
func (g *Game) handleMouse() {
	s := g.session
	level := s.Level()
	cursor := cursorPosition()
	world := g.camera.ScreenToWorld(cursor)
	launchPx := g.camera.WorldToScreen(s.Launch.LaunchPoint())

	if s.Phase != game.PhaseFlying {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if _, onButton := g.buttonAt(cursor); !onButton {
				switch {
				case cursor.Dist(launchPx) <= slingGrabRadius:
					g.slinging = true
				case level.Surface != nil:
					g.beginSurfaceDrag(level.Surface, cursor, world)
				}
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && level.Surface != nil &&
			game.PointInPolygon(world, level.Surface.Corners[:]) {
			g.editor.BeginRotate(level.Surface, world)
		}
	}

	if g.slinging {
		g.ghost = cursor
		pxX, pxY := g.camera.PixelsPerMeter()
		s.SetLaunch(game.SlingshotLaunch(s.Launch, launchPx, cursor, pxX/slingshotGain, pxY/slingshotGain, s.Config().Bounds))
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.slinging = false
			s.Fire()
		}
		return
	}

	if g.editor.Dragging() {
		g.editor.Drag(level.Surface, world, g.spanX, g.spanY)
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
			g.editor.End()
			log.Printf("%s surface moved to %v", level.Code, level.Surface.Corners)
		}
	}
}

// beginSurfaceDrag picks a corner handle if one is under the cursor, otherwise
// grabs the whole quad. Shift turns a body grab into a rotation.
func (g *Game) beginSurfaceDrag(surface *game.BounceSurface, cursor, world game.Vec2) {
	for i, c := range surface.Corners {
		if cursor.Dist(g.camera.WorldToScreen(c)) <= cornerGrabRadius {
			g.editor.BeginCorner(i)
			return
		}
	}
	if !game.PointInPolygon(world, surface.Corners[:]) {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.editor.BeginRotate(surface, world)
		return
	}
	g.editor.BeginTranslate(surface, world)
}

func cursorPosition() game.Vec2 {
	x, y := ebiten.CursorPosition()
	return game.Vec2{X: float64(x), Y: float64(y)}
}
