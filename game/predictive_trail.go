package game

import "math"

// Prediction is a full simulated trajectory for one launch configuration.
type Prediction struct {
	Points     []Vec2 // launch point followed by every sub-step position
	Range      float64
	FlightTime float64
	Bounces    int
	Outcome    Outcome
}

// MaxHeight returns the highest y reached along the path.
func (p Prediction) MaxHeight() float64 {
	peak := 0.0
	for _, pt := range p.Points {
		peak = math.Max(peak, pt.Y)
	}
	return peak
}

// Predict simulates launch against level with the default step and caps.
func Predict(launch LaunchConfig, level *Level) Prediction {
	return PredictWith(DefaultConfig(), launch, level)
}

// PredictWith simulates a fresh projectile until it lands, hits something,
// exceeds cfg.MaxSimTime, or uses up cfg.MaxPredictionSteps iterations.
// It reads level without modifying it, so repeated calls give identical results.
func PredictWith(cfg Config, launch LaunchConfig, level *Level) Prediction {
	p := Launch(launch)
	maxSteps := cfg.MaxPredictionSteps()

	points := make([]Vec2, 0, maxSteps+1)
	points = append(points, p.Pos)
	outcome := OutcomeFlying

	for i := 0; i < maxSteps; i++ {
		outcome = Step(&p, level, cfg.FixedStep)
		points = append(points, p.Pos)
		if outcome.Terminal() || p.Elapsed > cfg.MaxSimTime {
			break
		}
	}

	return Prediction{
		Points:     points,
		Range:      math.Max(p.Pos.X, 0),
		FlightTime: p.Elapsed,
		Bounces:    p.Bounces,
		Outcome:    outcome,
	}
}
