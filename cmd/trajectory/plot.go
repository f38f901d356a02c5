package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"parabolic/game"
)

// Plot constants
const (
	plotWidth         = 1500
	plotHeight        = 780
	plotMarginLeft    = 100
	plotMarginRight   = 30
	plotMarginTop     = 20
	plotMarginBottom  = 70
	axisLabels        = 12
	trajectorySamples = 500
	trajectoryWidth   = 3.0
	markerRadius      = 5.0
)

var (
	colorPaper      = color.RGBA{255, 255, 255, 255}
	colorLightGrid  = color.RGBA{220, 220, 220, 255}
	colorAxisLine   = color.RGBA{90, 90, 90, 255}
	colorTrajectory = color.RGBA{0, 0, 230, 230}
	colorGroundLine = color.RGBA{0, 0, 0, 102}
	colorLaunch     = color.RGBA{230, 0, 0, 255}
	colorLanding    = color.RGBA{0, 180, 0, 255}
	colorLabel      = color.RGBA{20, 20, 20, 255}
)

// plotter rasterizes shapes onto an RGBA canvas through a camera.
type plotter struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	camera *game.Camera
}

func newPlotter(spanX, spanY float64) *plotter {
	img := image.NewRGBA(image.Rect(0, 0, plotWidth, plotHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorPaper), image.Point{}, draw.Src)
	return &plotter{
		img:    img,
		raster: vector.NewRasterizer(plotWidth, plotHeight),
		camera: game.NewCamera(plotMarginLeft, plotWidth-plotMarginRight, plotMarginTop, plotHeight-plotMarginBottom, spanX, spanY),
	}
}

// fill rasterizes a closed polygon given in screen space.
func (p *plotter) fill(pts []game.Vec2, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	p.raster.Reset(plotWidth, plotHeight)
	p.raster.DrawOp = draw.Over
	p.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.raster.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.raster.ClosePath()
	p.raster.Draw(p.img, p.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// line draws a screen-space segment of the given pixel width as a quad.
func (p *plotter) line(a, b game.Vec2, width float64, clr color.Color) {
	dir := b.Sub(a).Normalize()
	if dir == (game.Vec2{}) {
		return
	}
	off := game.Vec2{X: -dir.Y, Y: dir.X}.Scale(width / 2)
	p.fill([]game.Vec2{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)}, clr)
}

func (p *plotter) dot(center game.Vec2, radius float64, clr color.Color) {
	const segments = 24
	pts := make([]game.Vec2, segments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / segments
		pts[i] = center.Add(game.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}.Scale(radius))
	}
	p.fill(pts, clr)
}

func (p *plotter) text(s string, x, y int, clr color.Color) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// polyline draws connected world-space points.
func (p *plotter) polyline(pts []game.Vec2, width float64, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		p.line(p.camera.WorldToScreen(pts[i-1]), p.camera.WorldToScreen(pts[i]), width, clr)
	}
}

func (p *plotter) grid() {
	c := p.camera
	stepX := game.TickStep(c.SpanX / axisLabels)
	for x := 0.0; x <= c.SpanX+1e-9; x += stepX {
		s := c.WorldToScreen(game.Vec2{X: x})
		p.line(game.Vec2{X: s.X, Y: c.Top}, game.Vec2{X: s.X, Y: c.Bottom}, 1, colorLightGrid)
		p.text(tickLabel(x), int(s.X)-10, int(c.Bottom)+18, colorLabel)
	}
	stepY := game.TickStep(c.SpanY / axisLabels)
	for y := 0.0; y <= c.SpanY+1e-9; y += stepY {
		s := c.WorldToScreen(game.Vec2{Y: y})
		p.line(game.Vec2{X: c.Left, Y: s.Y}, game.Vec2{X: c.Right, Y: s.Y}, 1, colorLightGrid)
		p.text(tickLabel(y), int(c.Left)-60, int(s.Y)+4, colorLabel)
	}

	p.line(game.Vec2{X: c.Left, Y: c.Top}, game.Vec2{X: c.Left, Y: c.Bottom}, 1.5, colorAxisLine)
	p.line(game.Vec2{X: c.Left, Y: c.Bottom}, game.Vec2{X: c.Right, Y: c.Bottom}, 1.5, colorAxisLine)
	p.text("Horizontal Distance (m)", int((c.Left+c.Right)/2)-80, plotHeight-20, colorLabel)
	p.text("Height (m)", 8, plotMarginTop+10, colorLabel)
}

// savePlot renders the sampled trajectory with launch and landing markers to a PNG.
func savePlot(path string, points []game.Vec2, flightTime, distance float64) error {
	if len(points) == 0 {
		return fmt.Errorf("no trajectory points")
	}

	var maxX, maxY float64
	for _, pt := range points {
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	spanX, spanY := game.FitWindow(maxX, maxY)

	p := newPlotter(spanX, spanY)
	p.grid()
	p.polyline(points, trajectoryWidth, colorTrajectory)
	p.polyline([]game.Vec2{{X: 0, Y: 0}, {X: spanX, Y: 0}}, 1, colorGroundLine)

	launch := p.camera.WorldToScreen(points[0])
	landing := p.camera.WorldToScreen(points[len(points)-1])
	p.dot(launch, markerRadius, colorLaunch)
	p.dot(landing, markerRadius, colorLanding)

	labelX := int(math.Min(landing.X+0.02*(p.camera.Right-p.camera.Left), p.camera.Right-170))
	labelY := int(landing.Y - 0.04*(p.camera.Bottom-p.camera.Top))
	p.text(fmt.Sprintf("Range: %.2f m", math.Abs(distance)), labelX, labelY-18, colorLabel)
	p.text(fmt.Sprintf("Flight time: %.1f s", flightTime), labelX, labelY, colorLabel)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
