package main

import (
	"time"

	"parabolic/game"
)

// Game adapts a game.Session to ebiten: it turns input into session calls
// and draws the session state every frame.
type Game struct {
	session *game.Session
	editor  game.SurfaceEditor

	width  int
	height int

	// view is rebuilt each update from the session
	pred   game.Prediction
	camera *game.Camera
	spanX  float64
	spanY  float64

	slinging bool
	ghost    game.Vec2 // screen-space pull point while slinging

	lastUpdate   time.Time
	prevAltEnter bool
	showDebug    bool
}

// button is an on-screen control that maps to one frame action.
type button struct {
	label  string
	x, y   float64
	action game.FrameActions
}

func newGame(session *game.Session, width, height int) *Game {
	g := &Game{
		session:    session,
		width:      width,
		height:     height,
		lastUpdate: time.Now(),
	}
	g.refreshView()
	return g
}

// Layout follows the window size so the plot fills whatever space it has.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Update consumes one frame of input and advances the shot.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.handleWindowKeys()

	actions := readHotkeys().Merge(g.readButtons())
	if g.session.ApplyActions(actions) {
		g.editor.End()
		g.slinging = false
		g.refreshView()
		return nil
	}

	g.handleConfigKeys(dt)
	g.refreshView()
	g.handleMouse()
	g.session.Tick(dt)
	g.refreshView()
	return nil
}

// refreshView recomputes the prediction, the fitted window and the camera.
// The window is frozen while a drag is in progress so the mapping under the cursor stays put.
func (g *Game) refreshView() {
	s := g.session
	g.pred = s.Prediction()
	if (!g.editor.Dragging() && !g.slinging) || g.spanX == 0 {
		g.spanX, g.spanY = s.Window(g.pred)
	}
	left, right, top, bottom := plotRect(float64(g.width), float64(g.height))
	g.camera = game.NewCamera(left, right, top, bottom, g.spanX, g.spanY)
}

// plotRect fits a plot rectangle with the window's distance-to-height ratio
// inside the screen margins, so both axes share one scale.
func plotRect(w, h float64) (left, right, top, bottom float64) {
	availW := w - plotMarginLeft - plotMarginRight
	availH := h - plotMarginTop - plotMarginBottom
	if availW < 1 || availH < 1 {
		return plotMarginLeft, plotMarginLeft + 1, plotMarginTop, plotMarginTop + 1
	}

	plotW := availW
	plotH := plotW / game.DistanceToHeightRatio
	if plotH > availH {
		plotH = availH
		plotW = plotH * game.DistanceToHeightRatio
	}
	left = plotMarginLeft + (availW-plotW)/2
	top = plotMarginTop + (availH - plotH)
	return left, left + plotW, top, top + plotH
}
