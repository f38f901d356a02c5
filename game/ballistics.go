package game

import (
	"errors"
	"fmt"
	"math"
)

// EarthGravity is the gravity used by the closed-form calculator.
const EarthGravity = 9.8

var (
	ErrNonFinite     = errors.New("inputs must be finite numbers")
	ErrNegativeSpeed = errors.New("velocity cannot be negative")
	ErrNoLanding     = errors.New("no real landing time")
)

// TrajectoryAt returns the drag-free position at time t.
func TrajectoryAt(cfg LaunchConfig, g, t float64) Vec2 {
	v := cfg.Velocity()
	return Vec2{
		X: v.X * t,
		Y: cfg.Height + v.Y*t - 0.5*g*t*t,
	}
}

// FlightTimeAndRange solves the drag-free landing time and horizontal range.
func FlightTimeAndRange(cfg LaunchConfig, g float64) (flightTime, rng float64, err error) {
	if !finite(cfg.AngleDeg) || !finite(cfg.Speed) || !finite(cfg.Height) {
		return 0, 0, ErrNonFinite
	}
	if cfg.Speed < 0 {
		return 0, 0, ErrNegativeSpeed
	}

	vy := cfg.Velocity().Y
	disc := vy*vy + 2*g*cfg.Height
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: vy^2 + 2*g*h is negative (%g)", ErrNoLanding, disc)
	}

	flightTime = (vy + math.Sqrt(disc)) / g
	if flightTime < 0 {
		return 0, 0, fmt.Errorf("%w: landing time computed as negative (%g)", ErrNoLanding, flightTime)
	}
	return flightTime, TrajectoryAt(cfg, g, flightTime).X, nil
}

// SampleTrajectory returns samples+1 evenly spaced points from launch to landing.
// samples is floored at 2.
func SampleTrajectory(cfg LaunchConfig, g, flightTime float64, samples int) []Vec2 {
	samples = max(samples, 2)
	points := make([]Vec2, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) * flightTime / float64(samples)
		points = append(points, TrajectoryAt(cfg, g, t))
	}
	return points
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
