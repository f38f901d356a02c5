package game

import "math"

// Camera maps the fitted world window onto a screen-space plot rectangle.
// World y grows up; screen y grows down.
type Camera struct {
	Left, Right float64 // plot edges in pixels
	Top, Bottom float64
	SpanX       float64 // world window, meters
	SpanY       float64
}

// NewCamera creates a camera for a plot rectangle and world window
func NewCamera(left, right, top, bottom, spanX, spanY float64) *Camera {
	return &Camera{
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		SpanX:  spanX,
		SpanY:  spanY,
	}
}

func (c *Camera) plotSize() (w, h float64) {
	return math.Max(c.Right-c.Left, 1), math.Max(c.Bottom-c.Top, 1)
}

// PixelsPerMeter returns the horizontal and vertical scale.
func (c *Camera) PixelsPerMeter() (float64, float64) {
	w, h := c.plotSize()
	return w / math.Max(c.SpanX, 1), h / math.Max(c.SpanY, 1)
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	w, h := c.plotSize()
	return Vec2{
		X: c.Left + p.X/math.Max(c.SpanX, 1)*w,
		Y: c.Bottom - p.Y/math.Max(c.SpanY, 1)*h,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates, floored at the origin
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	w, h := c.plotSize()
	return Vec2{
		X: math.Max((p.X-c.Left)/w*math.Max(c.SpanX, 1), 0),
		Y: math.Max((c.Bottom-p.Y)/h*math.Max(c.SpanY, 1), 0),
	}
}

// TickStep rounds a raw axis spacing up to 1, 2 or 5 times a power of ten.
func TickStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag*(1+1e-12) {
			return m * mag
		}
	}
	return 10 * mag
}
