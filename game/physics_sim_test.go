package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// openLevel is a flat drag-free level with the target far out of reach.
func openLevel(g float64) *Level {
	return &Level{
		Code:        "TEST",
		Environment: Environment{Name: "Flat", Gravity: g},
		Target:      Target{Center: Vec2{1e6, 1e6}, Radius: 1},
	}
}

func TestPredictMatchesClosedForm(t *testing.T) {
	tests := []struct {
		name string
		cfg  LaunchConfig
	}{
		{"45deg", LaunchConfig{AngleDeg: 45, Speed: 10}},
		{"30deg", LaunchConfig{AngleDeg: 30, Speed: 25}},
		{"60deg", LaunchConfig{AngleDeg: 60, Speed: 18}},
		{"raised", LaunchConfig{AngleDeg: 20, Speed: 15, Height: 12}},
	}

	step := DefaultConfig().FixedStep
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantT, wantR, err := FlightTimeAndRange(tt.cfg, EarthGravity)
			if err != nil {
				t.Fatalf("closed form: %v", err)
			}

			pred := Predict(tt.cfg, openLevel(EarthGravity))
			if pred.Outcome != OutcomeHitGround {
				t.Fatalf("outcome = %v, want HitGround", pred.Outcome)
			}
			if math.Abs(pred.FlightTime-wantT) > 2*step {
				t.Errorf("flight time = %.4f, want %.4f", pred.FlightTime, wantT)
			}
			v := tt.cfg.Velocity()
			if math.Abs(pred.Range-wantR) > 2*step*v.X+1e-9 {
				t.Errorf("range = %.4f, want %.4f", pred.Range, wantR)
			}
		})
	}
}

func TestPredictReferenceShot(t *testing.T) {
	pred := Predict(LaunchConfig{AngleDeg: 45, Speed: 10}, openLevel(9.8))
	if math.Abs(pred.FlightTime-1.443) > 0.01 {
		t.Errorf("flight time = %.4f, want ~1.443", pred.FlightTime)
	}
	if math.Abs(pred.Range-10.20) > 0.05 {
		t.Errorf("range = %.4f, want ~10.20", pred.Range)
	}
	if pred.Bounces != 0 {
		t.Errorf("bounces = %d, want 0", pred.Bounces)
	}
}

func TestHorizontalLaunchFromGroundLandsImmediately(t *testing.T) {
	cfg := LaunchConfig{AngleDeg: 0, Speed: 50, Height: 0}
	pred := Predict(cfg, openLevel(EarthGravity))

	if pred.Outcome != OutcomeHitGround {
		t.Fatalf("outcome = %v, want HitGround", pred.Outcome)
	}
	if pred.Bounces != 0 {
		t.Errorf("bounces = %d, want 0", pred.Bounces)
	}
	step := DefaultConfig().FixedStep
	if len(pred.Points) != 2 {
		t.Errorf("points = %d, want launch point plus one step", len(pred.Points))
	}
	if pred.Range > cfg.Speed*step+1e-9 {
		t.Errorf("range = %.4f, want at most one sub-step of travel", pred.Range)
	}
	if pred.FlightTime != step {
		t.Errorf("flight time = %v, want %v", pred.FlightTime, step)
	}
}

func TestStepIntegratesVelocityBeforePosition(t *testing.T) {
	level := openLevel(10)
	level.Environment.WindAccelX = 2
	level.Environment.Drag = 0.5

	p := Projectile{Pos: Vec2{0, 100}, Vel: Vec2{4, 6}}
	dt := 0.1
	if got := Step(&p, level, dt); got != OutcomeFlying {
		t.Fatalf("outcome = %v, want Flying", got)
	}

	wantVel := Vec2{4 + (2-0.5*4)*dt, 6 + (-10-0.5*6)*dt}
	if p.Vel != wantVel {
		t.Errorf("vel = %+v, want %+v", p.Vel, wantVel)
	}
	wantPos := Vec2{wantVel.X * dt, 100 + wantVel.Y*dt}
	if math.Abs(p.Pos.X-wantPos.X) > 1e-12 || math.Abs(p.Pos.Y-wantPos.Y) > 1e-12 {
		t.Errorf("pos = %+v, want %+v", p.Pos, wantPos)
	}
	if p.Elapsed != dt {
		t.Errorf("elapsed = %v, want %v", p.Elapsed, dt)
	}
}

func TestStepGroundClampsHeight(t *testing.T) {
	p := Projectile{Pos: Vec2{5, 0.01}, Vel: Vec2{1, -10}}
	if got := Step(&p, openLevel(EarthGravity), 0.01); got != OutcomeHitGround {
		t.Fatalf("outcome = %v, want HitGround", got)
	}
	if p.Pos.Y != 0 {
		t.Errorf("y = %v, want 0", p.Pos.Y)
	}
}

func TestBarrierBeatsTarget(t *testing.T) {
	level := openLevel(0)
	level.Target = Target{Center: Vec2{10, 10}, Radius: 5}
	level.Barriers = []Barrier{{Rect{X: 8, Y: 8, W: 4, H: 4}}}

	p := Projectile{Pos: Vec2{9.9, 10}, Vel: Vec2{1, 0}}
	if got := Step(&p, level, 0.1); got != OutcomeHitBarrier {
		t.Fatalf("outcome = %v, want HitBarrier", got)
	}
}

func TestBarrierContainmentIsAbsolute(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := Rect{
			X: rapid.Float64Range(1, 100).Draw(t, "x"),
			Y: rapid.Float64Range(1, 100).Draw(t, "y"),
			W: rapid.Float64Range(0.5, 20).Draw(t, "w"),
			H: rapid.Float64Range(0.5, 20).Draw(t, "h"),
		}
		inside := Vec2{
			X: r.X + rapid.Float64Range(0, 1).Draw(t, "fx")*r.W,
			Y: r.Y + rapid.Float64Range(0, 1).Draw(t, "fy")*r.H,
		}
		level := &Level{
			Environment: Environment{Gravity: 0},
			Target:      Target{Center: inside, Radius: 50},
			Barriers:    []Barrier{{r}},
		}

		// Zero velocity and gravity: the step lands exactly on the drawn point.
		p := Projectile{Pos: inside}
		if got := Step(&p, level, 0.01); got != OutcomeHitBarrier {
			t.Fatalf("outcome = %v at %+v in %+v, want HitBarrier", got, inside, r)
		}
	})
}

func TestRequiredBouncesGateTarget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		required := rapid.IntRange(1, 5).Draw(t, "required")
		bounces := rapid.IntRange(0, required-1).Draw(t, "bounces")
		angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
		frac := rapid.Float64Range(0, 0.99).Draw(t, "frac")

		center := Vec2{50, 50}
		radius := 10.0
		pos := center.Add(RotateVec(Vec2{radius * frac, 0}, angle))
		level := &Level{
			Environment:     Environment{Gravity: 0},
			Target:          Target{Center: center, Radius: radius},
			RequiredBounces: required,
		}

		p := Projectile{Pos: pos, Bounces: bounces}
		if got := Step(&p, level, 0.01); got == OutcomeHitTarget {
			t.Fatalf("hit target with %d of %d bounces", bounces, required)
		}

		p = Projectile{Pos: pos, Bounces: required}
		if got := Step(&p, level, 0.01); got != OutcomeHitTarget {
			t.Fatalf("outcome = %v with enough bounces, want HitTarget", got)
		}
	})
}

func TestZeroRequiredBouncesAllowsDirectHit(t *testing.T) {
	level := openLevel(0)
	level.Target = Target{Center: Vec2{1, 1}, Radius: 0.5}

	p := Projectile{Pos: Vec2{0.9, 1}, Vel: Vec2{1, 0}}
	if got := Step(&p, level, 0.05); got != OutcomeHitTarget {
		t.Fatalf("outcome = %v, want HitTarget", got)
	}
}

// plate is a 10 x 2 quad centered on center and rotated by angle.
func plate(center Vec2, angle, restitution float64) *BounceSurface {
	half := [4]Vec2{{-5, 1}, {5, 1}, {5, -1}, {-5, -1}}
	s := &BounceSurface{Restitution: restitution}
	for i, c := range half {
		s.Corners[i] = center.Add(RotateVec(c, angle))
	}
	return s
}

func TestSurfaceBounceReflectsOffTop(t *testing.T) {
	level := openLevel(0)
	level.Surface = plate(Vec2{50, 50}, 0, 1)

	p := Projectile{Pos: Vec2{50, 52}, Vel: Vec2{0, -20}}
	if got := Step(&p, level, 0.1); got != OutcomeFlying {
		t.Fatalf("outcome = %v, want Flying", got)
	}
	if p.Bounces != 1 {
		t.Fatalf("bounces = %d, want 1", p.Bounces)
	}
	if want := 20 * bounceDamping; math.Abs(p.Vel.Y-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", p.Vel.Y, want)
	}
	if want := 51 + bounceNudge; math.Abs(p.Pos.Y-want) > 1e-9 {
		t.Errorf("y = %v, want %v", p.Pos.Y, want)
	}
}

func TestSurfaceZeroRestitutionKeepsTangent(t *testing.T) {
	level := openLevel(0)
	level.Surface = plate(Vec2{50, 50}, 0, 0)

	p := Projectile{Pos: Vec2{48, 52}, Vel: Vec2{10, -20}}
	Step(&p, level, 0.1)
	if p.Bounces != 1 {
		t.Fatalf("bounces = %d, want 1", p.Bounces)
	}
	if math.Abs(p.Vel.Y) > 1e-9 {
		t.Errorf("vy = %v, want 0", p.Vel.Y)
	}
	if want := 10 * bounceDamping; math.Abs(p.Vel.X-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", p.Vel.X, want)
	}
}

func TestSurfaceEarliestEdgeWins(t *testing.T) {
	level := openLevel(0)
	level.Surface = plate(Vec2{50, 50}, 0, 1)

	// Travels straight down through the whole plate: top edge first.
	p := Projectile{Pos: Vec2{50, 53}, Vel: Vec2{0, -60}}
	Step(&p, level, 0.1)
	if p.Pos.Y < 51 {
		t.Errorf("y = %v, want reflected off the top edge", p.Pos.Y)
	}
	if p.Vel.Y <= 0 {
		t.Errorf("vy = %v, want upward", p.Vel.Y)
	}
}

func TestSurfaceTunnelingFallback(t *testing.T) {
	level := openLevel(0)
	level.Surface = plate(Vec2{50, 50}, 0, 0.5)

	// Starts inside the quad, so no edge is crossed during the step.
	p := Projectile{Pos: Vec2{50, 50}, Vel: Vec2{1, -4}}
	Step(&p, level, 0.01)
	if p.Bounces != 1 {
		t.Fatalf("bounces = %d, want 1", p.Bounces)
	}
	if want := 4 * 0.5; math.Abs(p.Vel.Y-want) > 1e-9 {
		t.Errorf("vy = %v, want %v", p.Vel.Y, want)
	}
	if p.Vel.X != 1 {
		t.Errorf("vx = %v, want unchanged", p.Vel.X)
	}
}

func TestSurfaceBounceNeverGainsEnergy(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rot := rapid.Float64Range(0, math.Pi).Draw(t, "rotation")
		restitution := rapid.Float64Range(0, 1).Draw(t, "restitution")
		heading := rapid.Float64Range(0, 2*math.Pi).Draw(t, "heading")
		speed := rapid.Float64Range(1, 400).Draw(t, "speed")

		center := Vec2{100, 100}
		level := openLevel(0)
		level.Surface = plate(center, rot, restitution)

		dir := RotateVec(Vec2{1, 0}, heading)
		start := center.Sub(dir.Scale(6))
		p := Projectile{Pos: start, Vel: dir.Scale(speed)}
		before := p.Vel.Len()

		Step(&p, level, 6/speed)
		if p.Bounces != 1 {
			t.Fatalf("bounces = %d, want 1", p.Bounces)
		}
		if after := p.Vel.Len(); after > before+1e-9 {
			t.Fatalf("speed grew from %v to %v", before, after)
		}
	})
}

func TestSurfaceNormalSpeedNonIncreasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		restitution := rapid.Float64Range(0, 1).Draw(t, "restitution")
		vy := rapid.Float64Range(-200, -1).Draw(t, "vy")
		vx := rapid.Float64Range(-3, 3).Draw(t, "slope") * math.Abs(vy)

		level := openLevel(0)
		level.Surface = plate(Vec2{100, 100}, 0, restitution)

		p := Projectile{Pos: Vec2{100, 101.5}, Vel: Vec2{vx, vy}}
		Step(&p, level, 1/math.Abs(vy))
		if p.Bounces != 1 {
			t.Fatalf("bounces = %d, want 1", p.Bounces)
		}
		if math.Abs(p.Vel.Y) > math.Abs(vy)+1e-9 {
			t.Fatalf("normal speed grew from %v to %v", math.Abs(vy), math.Abs(p.Vel.Y))
		}
	})
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeFlying:     "Flying",
		OutcomeHitTarget:  "HitTarget",
		OutcomeHitGround:  "HitGround",
		OutcomeHitBarrier: "HitBarrier",
		Outcome(42):       "Unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
	if OutcomeFlying.Terminal() || !OutcomeHitGround.Terminal() {
		t.Error("Terminal() misclassifies outcomes")
	}
}
