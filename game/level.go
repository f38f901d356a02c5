package game

import (
	"math"
	"math/rand"
)

// Environment holds the per-level physical constants.
type Environment struct {
	Name       string
	Gravity    float64 // m/s^2, pulls toward -y
	WindAccelX float64 // constant horizontal acceleration, m/s^2
	Drag       float64 // linear drag coefficient, 1/s
}

// LaunchConfig is the caller-editable shot setup.
type LaunchConfig struct {
	AngleDeg float64 // signed, 0 is horizontal
	Speed    float64 // m/s
	Height   float64 // launch height above ground, m
}

// Velocity returns the launch velocity vector.
func (c LaunchConfig) Velocity() Vec2 {
	theta := c.AngleDeg * math.Pi / 180
	return Vec2{c.Speed * math.Cos(theta), c.Speed * math.Sin(theta)}
}

// LaunchPoint is where a projectile starts for this config.
func (c LaunchConfig) LaunchPoint() Vec2 {
	return Vec2{0, math.Max(c.Height, 0)}
}

// Clamp limits every field to b.
func (c LaunchConfig) Clamp(b LaunchBounds) LaunchConfig {
	return LaunchConfig{
		AngleDeg: clamp(c.AngleDeg, b.MinAngleDeg, b.MaxAngleDeg),
		Speed:    clamp(c.Speed, b.MinSpeed, b.MaxSpeed),
		Height:   clamp(c.Height, b.MinHeight, b.MaxHeight),
	}
}

// Target is the circle a shot must reach.
type Target struct {
	Center Vec2
	Radius float64
}

// Barrier is a lethal axis-aligned rectangle.
type Barrier struct {
	Rect Rect
}

// BounceSurface is a convex quad that reflects the projectile.
// Corners are ordered around the perimeter; the quad need not be axis aligned.
type BounceSurface struct {
	Corners     [4]Vec2
	Restitution float64 // fraction of normal speed kept, in [0, 1]
}

// Level aggregates everything one shot is simulated against.
type Level struct {
	Code            string // e.g. "EARTH 2"
	Title           string
	Index           int // 1-based position within its environment
	Environment     Environment
	Target          Target
	Surface         *BounceSurface // nil when the level has no bounce surface
	Barriers        []Barrier
	RequiredBounces int
	DefaultLaunch   LaunchConfig
}

// Clone returns a copy whose surface and barriers do not alias l.
func (l Level) Clone() Level {
	out := l
	if l.Surface != nil {
		s := *l.Surface
		out.Surface = &s
	}
	if l.Barriers != nil {
		out.Barriers = append([]Barrier(nil), l.Barriers...)
	}
	return out
}

// Campaign constants
const (
	earthGravity  = 9.8
	earthDrag     = 0.015
	earthWindMin  = 0.20
	earthWindMax  = 0.80
	moonGravity   = 1.62
	targetRadiusE = 12.0
)

// Campaign returns the full level list: the Earth levels followed by the Moon levels.
// rng supplies the Earth wind; pass a seeded source for a reproducible campaign.
func Campaign(rng *rand.Rand) []Level {
	levels := EarthCampaign(rng)
	return append(levels, MoonCampaign()...)
}

// randomEarthWind picks a wind magnitude in [0.20, 0.80) with a random sign.
func randomEarthWind(rng *rand.Rand) float64 {
	magnitude := earthWindMin + rng.Float64()*(earthWindMax-earthWindMin)
	if rng.Intn(2) == 0 {
		return -magnitude
	}
	return magnitude
}

func earthEnv(rng *rand.Rand) Environment {
	return Environment{
		Name:       "Earth",
		Gravity:    earthGravity,
		WindAccelX: randomEarthWind(rng),
		Drag:       earthDrag,
	}
}

// flatSurface builds a surface from its top-left and bottom-right corners.
func flatSurface(x0, yTop, x1, yBottom, restitution float64) *BounceSurface {
	return &BounceSurface{
		Corners: [4]Vec2{
			{x0, yTop},
			{x1, yTop},
			{x1, yBottom},
			{x0, yBottom},
		},
		Restitution: restitution,
	}
}

// gap returns a lower and an upper barrier with an opening between them.
func gap(x, w, lowH, highY, highH float64) []Barrier {
	return []Barrier{
		{Rect{X: x, Y: 0, W: w, H: lowH}},
		{Rect{X: x, Y: highY, W: w, H: highH}},
	}
}

// EarthCampaign returns the four Earth levels.
func EarthCampaign(rng *rand.Rand) []Level {
	return []Level{
		{
			Code:          "EARTH 1",
			Title:         "Direct Shot",
			Index:         1,
			Environment:   earthEnv(rng),
			Target:        Target{Center: Vec2{165, 28}, Radius: targetRadiusE},
			DefaultLaunch: LaunchConfig{AngleDeg: 34, Speed: 56, Height: 2},
		},
		{
			Code:            "EARTH 2",
			Title:           "Single Bounce",
			Index:           2,
			Environment:     earthEnv(rng),
			Target:          Target{Center: Vec2{208, 36}, Radius: targetRadiusE},
			Surface:         flatSurface(86, 19, 146, 13, 0.82),
			RequiredBounces: 1,
			DefaultLaunch:   LaunchConfig{AngleDeg: 31, Speed: 58, Height: 2},
		},
		{
			Code:          "EARTH 3",
			Title:         "Thread The Gap",
			Index:         3,
			Environment:   earthEnv(rng),
			Target:        Target{Center: Vec2{230, 34}, Radius: targetRadiusE},
			Barriers:      gap(133, 9, 24, 58, 42),
			DefaultLaunch: LaunchConfig{AngleDeg: 30, Speed: 64, Height: 2.5},
		},
		{
			Code:            "EARTH 4",
			Title:           "Bank Shot Through Gap",
			Index:           4,
			Environment:     earthEnv(rng),
			Target:          Target{Center: Vec2{280, 36}, Radius: targetRadiusE},
			Surface:         flatSurface(120, 22, 188, 15, 0.80),
			Barriers:        gap(208, 10, 28, 62, 38),
			RequiredBounces: 1,
			DefaultLaunch:   LaunchConfig{AngleDeg: 33, Speed: 67, Height: 3},
		},
	}
}

// MoonCampaign returns the four Moon levels. The Moon has no wind and no drag.
func MoonCampaign() []Level {
	moon := Environment{Name: "Moon", Gravity: moonGravity}

	return []Level{
		{
			Code:          "MOON 1",
			Title:         "Direct Shot",
			Index:         1,
			Environment:   moon,
			Target:        Target{Center: Vec2{700, 130}, Radius: 30},
			DefaultLaunch: LaunchConfig{AngleDeg: 18, Speed: 90, Height: 20},
		},
		{
			Code:            "MOON 2",
			Title:           "Bounce Into Target",
			Index:           2,
			Environment:     moon,
			Target:          Target{Center: Vec2{980, 190}, Radius: 35},
			Surface:         flatSurface(380, 95, 690, 75, 0.9),
			RequiredBounces: 1,
			DefaultLaunch:   LaunchConfig{AngleDeg: 28, Speed: 145, Height: 22},
		},
		{
			Code:          "MOON 3",
			Title:         "Thread The Gap",
			Index:         3,
			Environment:   moon,
			Target:        Target{Center: Vec2{980, 190}, Radius: 32},
			Barriers:      gap(560, 38, 230, 310, 260),
			DefaultLaunch: LaunchConfig{AngleDeg: 20, Speed: 145, Height: 24},
		},
		{
			Code:            "MOON 4",
			Title:           "Bank Shot Through Gap",
			Index:           4,
			Environment:     moon,
			Target:          Target{Center: Vec2{1110, 220}, Radius: 32},
			Surface:         flatSurface(420, 106, 710, 84, 0.88),
			Barriers:        gap(790, 36, 250, 340, 260),
			RequiredBounces: 1,
			DefaultLaunch:   LaunchConfig{AngleDeg: 24, Speed: 170, Height: 30},
		},
	}
}
