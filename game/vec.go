package game

import "math"

// Vec2 is a 2D vector in world space (meters, y up).
type Vec2 struct {
	X float64
	Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length. Use this when comparing lengths to avoid the sqrt.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Normalize returns the unit vector, or the zero vector if v is too short to have a direction.
func (v Vec2) Normalize() Vec2 {
	lsq := v.LenSq()
	if lsq < degenerateLenSq {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{v.X / l, v.Y / l}
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y float64 // Minimum corner
	W, H float64 // Extent along each axis
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Max returns the corner opposite the anchor.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.W, r.Y + r.H}
}
