package game

import "math"

// Axis window constants
const (
	// DistanceToHeightRatio is the fixed spanX/spanY ratio of every fitted window.
	DistanceToHeightRatio = 2.0

	xPaddingRatio = 0.06
	yPaddingRatio = 0.10
)

// FitWindow pads the raw extents and grows the relatively smaller span so that
// spanX/spanY == DistanceToHeightRatio. Neither padded span is ever shrunk.
func FitWindow(rawMaxX, rawMaxY float64) (spanX, spanY float64) {
	xPad := math.Max(rawMaxX, 1) * xPaddingRatio
	yPad := math.Max(rawMaxY, 1) * yPaddingRatio

	spanX = math.Max(rawMaxX+xPad, 1)
	spanY = math.Max(rawMaxY+yPad, 1)

	if spanX/spanY < DistanceToHeightRatio {
		spanX = spanY * DistanceToHeightRatio
	} else {
		spanY = spanX / DistanceToHeightRatio
	}
	return spanX, spanY
}

// WorldWindow fits a window around everything visible for level: the predicted
// path, the launch point, the target, the bounce surface, the barriers and the
// live shot if there is one.
func WorldWindow(level *Level, launch LaunchConfig, pred Prediction, shot *Projectile) (spanX, spanY float64) {
	maxX := math.Max(pred.Range, level.Target.Center.X+level.Target.Radius)
	maxY := math.Max(pred.MaxHeight(), launch.Height)
	maxY = math.Max(maxY, level.Target.Center.Y+level.Target.Radius)

	if level.Surface != nil {
		_, hi := QuadBounds(level.Surface.Corners)
		maxX = math.Max(maxX, hi.X)
		maxY = math.Max(maxY, hi.Y)
	}

	for _, b := range level.Barriers {
		hi := b.Rect.Max()
		maxX = math.Max(maxX, hi.X)
		maxY = math.Max(maxY, hi.Y)
	}

	if shot != nil {
		maxX = math.Max(maxX, shot.Pos.X)
		maxY = math.Max(maxY, shot.Pos.Y)
	}

	return FitWindow(math.Max(maxX, 1), math.Max(maxY, 1))
}
