package game

import "math"

// DragMode is what a surface drag is currently doing.
type DragMode int

const (
	DragNone DragMode = iota
	DragCorner
	DragTranslate
	DragRotate
)

// SurfaceEditor applies drag edits to a level's bounce surface in world space.
// Every edit keeps the quad inside the visible window [0, spanX] x [0, spanY].
type SurfaceEditor struct {
	Mode   DragMode
	Corner int // corner index while Mode == DragCorner

	startPoint   Vec2
	startCorners [4]Vec2
	center       Vec2
	startAngle   float64
}

// Dragging reports whether a drag is in progress.
func (e *SurfaceEditor) Dragging() bool {
	return e.Mode != DragNone
}

// BeginCorner starts dragging a single corner.
func (e *SurfaceEditor) BeginCorner(idx int) {
	if idx < 0 || idx > 3 {
		return
	}
	e.Mode = DragCorner
	e.Corner = idx
}

// BeginTranslate starts moving the whole quad, anchored at the grab point.
func (e *SurfaceEditor) BeginTranslate(s *BounceSurface, grab Vec2) {
	e.Mode = DragTranslate
	e.startPoint = grab
	e.startCorners = s.Corners
}

// BeginRotate starts rotating the quad about its center, anchored at the grab point.
func (e *SurfaceEditor) BeginRotate(s *BounceSurface, grab Vec2) {
	e.Mode = DragRotate
	e.startCorners = s.Corners
	e.center = QuadCenter(s.Corners)
	e.startAngle = math.Atan2(grab.Y-e.center.Y, grab.X-e.center.X)
}

// End finishes the current drag.
func (e *SurfaceEditor) End() {
	e.Mode = DragNone
}

// Drag applies the in-progress edit with the pointer at world point p.
// It reports whether the surface changed.
func (e *SurfaceEditor) Drag(s *BounceSurface, p Vec2, spanX, spanY float64) bool {
	if s == nil {
		return false
	}
	maxX := math.Max(spanX, 1)
	maxY := math.Max(spanY, 1)

	switch e.Mode {
	case DragCorner:
		s.Corners[e.Corner] = Vec2{clamp(p.X, 0, maxX), clamp(p.Y, 0, maxY)}
		return true

	case DragTranslate:
		lo, hi := QuadBounds(e.startCorners)
		dx := clamp(p.X-e.startPoint.X, -lo.X, maxX-hi.X)
		dy := clamp(p.Y-e.startPoint.Y, -lo.Y, maxY-hi.Y)
		for i, c := range e.startCorners {
			s.Corners[i] = Vec2{c.X + dx, c.Y + dy}
		}
		return true

	case DragRotate:
		angle := math.Atan2(p.Y-e.center.Y, p.X-e.center.X) - e.startAngle
		var rotated [4]Vec2
		for i, c := range e.startCorners {
			rotated[i] = e.center.Add(RotateVec(c.Sub(e.center), angle))
		}
		s.Corners = shiftInside(rotated, maxX, maxY)
		return true
	}
	return false
}

// shiftInside moves a quad back inside [0, maxX] x [0, maxY] without changing its shape
// where possible; corners are floored at zero if the quad is larger than the window.
func shiftInside(c [4]Vec2, maxX, maxY float64) [4]Vec2 {
	lo, hi := QuadBounds(c)

	var shift Vec2
	switch {
	case lo.X < 0:
		shift.X = -lo.X
	case hi.X > maxX:
		shift.X = maxX - hi.X
	}
	switch {
	case lo.Y < 0:
		shift.Y = -lo.Y
	case hi.Y > maxY:
		shift.Y = maxY - hi.Y
	}

	for i := range c {
		c[i] = Vec2{math.Max(c[i].X+shift.X, 0), math.Max(c[i].Y+shift.Y, 0)}
	}
	return c
}

// SlingshotLaunch converts a pull-back from the launch point to ghost into a launch config.
// Pulling down aims up. pxPerMeterX and pxPerMeterY convert the screen pull into m/s.
// ghost is in screen space (y down), as is launch.
func SlingshotLaunch(cur LaunchConfig, launch, ghost Vec2, pxPerMeterX, pxPerMeterY float64, b LaunchBounds) LaunchConfig {
	pxPerMeterX = math.Max(pxPerMeterX, 1e-6)
	pxPerMeterY = math.Max(pxPerMeterY, 1e-6)

	vx := math.Max((launch.X-ghost.X)/pxPerMeterX, 0)
	vy := (ghost.Y - launch.Y) / pxPerMeterY

	out := cur
	out.Speed = math.Hypot(vx, vy)
	out.AngleDeg = math.Atan2(vy, math.Max(vx, 1e-6)) * 180 / math.Pi
	return out.Clamp(b)
}
