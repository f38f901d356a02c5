package game

import "math"

// Bounce response constants
const (
	// bounceDamping scales the whole velocity after a reflection so numerical error never adds energy.
	bounceDamping = 0.995

	// bounceNudge pushes the projectile off the surface after a hit so the next step starts outside.
	bounceNudge = 0.05
)

// Outcome classifies the result of one simulation step.
type Outcome int

const (
	OutcomeFlying Outcome = iota
	OutcomeHitTarget
	OutcomeHitGround
	OutcomeHitBarrier
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFlying:
		return "Flying"
	case OutcomeHitTarget:
		return "HitTarget"
	case OutcomeHitGround:
		return "HitGround"
	case OutcomeHitBarrier:
		return "HitBarrier"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the flight is over.
func (o Outcome) Terminal() bool {
	return o != OutcomeFlying
}

// Projectile is the kinematic state of one shot.
type Projectile struct {
	Pos     Vec2
	Vel     Vec2
	Elapsed float64 // simulated seconds since launch
	Bounces int
}

// Launch creates a projectile at the launch point with the configured velocity.
func Launch(cfg LaunchConfig) Projectile {
	return Projectile{
		Pos: cfg.LaunchPoint(),
		Vel: cfg.Velocity(),
	}
}

// Step advances p by dt against level and classifies the result.
// This is the single physics core used by both live flight (Session.Tick)
// and trajectory prediction (Predict), so the preview always matches the shot.
func Step(p *Projectile, level *Level, dt float64) Outcome {
	env := level.Environment
	prev := p.Pos

	// Semi-implicit Euler: velocity first, then position with the new velocity.
	ax := env.WindAccelX - env.Drag*p.Vel.X
	ay := -env.Gravity - env.Drag*p.Vel.Y
	p.Vel.X += ax * dt
	p.Vel.Y += ay * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Elapsed += dt

	if level.Surface != nil {
		resolveSurfaceBounce(p, level.Surface, prev)
	}

	for _, b := range level.Barriers {
		if b.Rect.Contains(p.Pos) {
			return OutcomeHitBarrier
		}
	}

	if p.Pos.Dist(level.Target.Center) <= level.Target.Radius && p.Bounces >= level.RequiredBounces {
		return OutcomeHitTarget
	}

	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
		return OutcomeHitGround
	}

	return OutcomeFlying
}

// surfaceHit is one edge crossing found during a step.
type surfaceHit struct {
	t      float64 // parameter along the travel segment
	point  Vec2
	normal Vec2 // unit, opposing the velocity
}

// resolveSurfaceBounce reflects p off the earliest quad edge crossed between prev and p.Pos.
func resolveSurfaceBounce(p *Projectile, s *BounceSurface, prev Vec2) {
	var best surfaceHit
	found := false

	for _, e := range QuadEdges(s.Corners) {
		t, _, ok := SegmentIntersection(prev, p.Pos, e.A, e.B)
		if !ok {
			continue
		}
		dir := e.B.Sub(e.A).Normalize()
		if dir.LenSq() < degenerateLenSq {
			continue
		}
		normal := Vec2{-dir.Y, dir.X}
		if p.Vel.Dot(normal) > 0 {
			normal = normal.Scale(-1)
		}
		if !found || t < best.t {
			best = surfaceHit{
				t:      t,
				point:  prev.Add(p.Pos.Sub(prev).Scale(t)),
				normal: normal,
			}
			found = true
		}
	}

	if found {
		vn := p.Vel.Dot(best.normal)
		p.Vel = p.Vel.Sub(best.normal.Scale((1 + s.Restitution) * vn))
		p.Vel = p.Vel.Scale(bounceDamping)
		p.Pos = best.point.Add(best.normal.Scale(bounceNudge))
		p.Bounces++
		return
	}

	// A fast step can jump over a thin edge and end inside the quad.
	if PointInPolygon(p.Pos, s.Corners[:]) {
		p.Vel.Y = math.Abs(p.Vel.Y) * s.Restitution
		p.Pos.Y += bounceNudge
		p.Bounces++
	}
}
