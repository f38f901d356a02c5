package game

import "math"

const (
	// parallelEpsilon is the smallest |r x s| treated as a real crossing.
	parallelEpsilon = 1e-6

	// degenerateLenSq is the squared length below which a direction is undefined.
	degenerateLenSq = 1e-8

	// polygonSlopeEpsilon keeps the even-odd crossing test finite on horizontal edges.
	polygonSlopeEpsilon = 1e-6
)

// SegmentIntersection intersects segment p->p2 with segment q->q2.
// t is the parameter along p->p2 and u the parameter along q->q2, both in [0, 1].
// Parallel or collinear segments report no intersection.
func SegmentIntersection(p, p2, q, q2 Vec2) (t, u float64, ok bool) {
	r := p2.Sub(p)
	s := q2.Sub(q)
	rxs := Cross(r, s)
	if math.Abs(rxs) < parallelEpsilon {
		return 0, 0, false
	}

	qmp := q.Sub(p)
	t = Cross(qmp, s) / rxs
	u = Cross(qmp, r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// PointInPolygon tests p against poly with the even-odd rule.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	if len(poly) < 3 {
		return false
	}

	inside := false
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y+polygonSlopeEpsilon)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Edge is a directed segment between two quad corners.
type Edge struct {
	A, B Vec2
}

// QuadEdges returns the four edges of a quad in corner order, wrapping back to the first corner.
func QuadEdges(c [4]Vec2) [4]Edge {
	return [4]Edge{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// QuadCenter returns the mean of the four corners.
func QuadCenter(c [4]Vec2) Vec2 {
	return c[0].Add(c[1]).Add(c[2]).Add(c[3]).Scale(0.25)
}

// QuadBounds returns the axis-aligned min and max corners of a quad.
func QuadBounds(c [4]Vec2) (lo, hi Vec2) {
	lo, hi = c[0], c[0]
	for _, p := range c[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// RotateVec rotates v counter-clockwise around the origin by angle radians.
func RotateVec(v Vec2, angle float64) Vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return Vec2{
		X: v.X*cosA - v.Y*sinA,
		Y: v.X*sinA + v.Y*cosA,
	}
}
