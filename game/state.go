package game

import (
	"fmt"
	"log"
	"math"
)

// Phase is the stage of the current shot.
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseFlying
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "Aiming"
	case PhaseFlying:
		return "Flying"
	case PhaseSuccess:
		return "Success"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// FrameActions are the discrete requests the input layer makes in one frame.
type FrameActions struct {
	LaunchPause bool // launch, or toggle pause while flying
	Reset       bool
	PrevLevel   bool
	NextLevel   bool
}

// Merge ORs two action sets, e.g. hotkeys and on-screen buttons.
func (a FrameActions) Merge(o FrameActions) FrameActions {
	return FrameActions{
		LaunchPause: a.LaunchPause || o.LaunchPause,
		Reset:       a.Reset || o.Reset,
		PrevLevel:   a.PrevLevel || o.PrevLevel,
		NextLevel:   a.NextLevel || o.NextLevel,
	}
}

// Session is the single-writer game state: the level list, progression,
// the launch configuration and the shot in flight.
type Session struct {
	Levels   []Level
	Current  int // index of the displayed level
	Unlocked int // highest index reachable by progression

	Launch      LaunchConfig
	Phase       Phase
	Shot        *Projectile // non-nil only while flying
	Last        Projectile  // final state of the most recent finished shot
	Trail       []Vec2
	Paused      bool
	Status      string
	SimSpeed    float64
	ShowPreview bool

	config Config
	logger *log.Logger
}

// NewSession starts on the first level in the aiming phase.
// levels is owned by the session afterwards. A nil logger discards output.
func NewSession(levels []Level, cfg Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = discardLogger
	}
	s := &Session{
		Levels:      levels,
		Phase:       PhaseAiming,
		Status:      "Ready",
		SimSpeed:    clamp(cfg.SimSpeed, cfg.SimSpeedMin, cfg.SimSpeedMax),
		ShowPreview: true,
		config:      cfg,
		logger:      logger,
	}
	if len(levels) > 0 {
		s.Launch = levels[0].DefaultLaunch.Clamp(cfg.Bounds)
	}
	return s
}

// Config returns the simulation configuration the session was built with.
func (s *Session) Config() Config {
	return s.config
}

// Level returns the current level. Edits through the pointer are seen by the simulator.
func (s *Session) Level() *Level {
	return &s.Levels[s.Current]
}

// PhaseText is the phase label shown to the player.
func (s *Session) PhaseText() string {
	if s.Phase == PhaseFlying && s.Paused {
		return "Paused"
	}
	return s.Phase.String()
}

// Fire launches a new shot from the current launch configuration.
func (s *Session) Fire() {
	shot := Launch(s.Launch)
	s.Shot = &shot
	s.Phase = PhaseFlying
	s.Paused = false
	s.Trail = append(s.Trail[:0], shot.Pos)
	s.Status = "Shot launched"
	s.logger.Printf("launch %s angle=%.1f speed=%.1f height=%.1f",
		s.Level().Code, s.Launch.AngleDeg, s.Launch.Speed, s.Launch.Height)
}

// Reset returns to aiming and drops the shot and trail.
func (s *Session) Reset() {
	s.Phase = PhaseAiming
	s.Shot = nil
	s.Trail = s.Trail[:0]
	s.Paused = false
	s.Status = "Reset"
}

// SetLoadedStatus reports the current level as freshly loaded.
func (s *Session) SetLoadedStatus() {
	s.Status = fmt.Sprintf("Loaded %s", s.Level().Code)
}

func (s *Session) loadLevelDefaults() {
	s.Launch = s.Level().DefaultLaunch.Clamp(s.config.Bounds)
	s.Reset()
}

// PrevLevel moves back one level. It reports whether the level changed.
func (s *Session) PrevLevel() bool {
	if s.Current <= 0 {
		return false
	}
	s.Current--
	s.loadLevelDefaults()
	s.Status = fmt.Sprintf("Moved to %s", s.Level().Code)
	return true
}

// NextLevel moves forward one level if it is unlocked. It reports whether the level changed.
func (s *Session) NextLevel() bool {
	if s.Current >= s.Unlocked {
		return false
	}
	s.Current++
	s.loadLevelDefaults()
	s.Status = fmt.Sprintf("Advanced to %s", s.Level().Code)
	return true
}

// ApplyActions handles one frame of discrete input.
// It returns true when the level changed, in which case the caller should
// skip the rest of the frame.
func (s *Session) ApplyActions(a FrameActions) bool {
	if a.LaunchPause {
		if s.Phase == PhaseFlying {
			s.Paused = !s.Paused
			if s.Paused {
				s.Status = "Paused"
			} else {
				s.Status = "Resumed"
			}
		} else {
			s.Fire()
		}
	}

	if a.Reset {
		s.Reset()
	}

	if a.PrevLevel && s.PrevLevel() {
		return true
	}
	if a.NextLevel && s.NextLevel() {
		return true
	}
	return false
}

// AdjustConfig nudges height and speed by the given deltas and clamps the result.
func (s *Session) AdjustConfig(dHeight, dSpeed float64) {
	s.Launch.Height += dHeight
	s.Launch.Speed += dSpeed
	s.Launch = s.Launch.Clamp(s.config.Bounds)
}

// SetLaunch replaces the launch configuration, clamped to the configured bounds.
func (s *Session) SetLaunch(cfg LaunchConfig) {
	s.Launch = cfg.Clamp(s.config.Bounds)
}

// SetSimSpeed sets the simulation-speed multiplier within its bounds.
func (s *Session) SetSimSpeed(v float64) {
	s.SimSpeed = clamp(v, s.config.SimSpeedMin, s.config.SimSpeedMax)
}

// Tick advances the shot in flight by frameDt wall-clock seconds scaled by
// SimSpeed, capped at MaxFrameSlice, in fixed sub-steps.
func (s *Session) Tick(frameDt float64) {
	if s.Phase != PhaseFlying || s.Paused || s.Shot == nil {
		return
	}

	remaining := math.Min(frameDt*s.SimSpeed, s.config.MaxFrameSlice)
	level := s.Level()
	for remaining > 0 {
		dt := math.Min(remaining, s.config.FixedStep)
		remaining -= dt

		outcome := Step(s.Shot, level, dt)
		s.Trail = append(s.Trail, s.Shot.Pos)

		if outcome.Terminal() {
			s.finish(outcome)
			return
		}
		if s.Shot.Elapsed > s.config.MaxSimTime {
			s.Phase = PhaseFailed
			s.Status = "Missed target: timed out"
			s.land()
			return
		}
	}
}

// finish records a terminal outcome and updates progression.
func (s *Session) finish(outcome Outcome) {
	shot := s.Shot
	switch outcome {
	case OutcomeHitTarget:
		s.Phase = PhaseSuccess
		if s.Current == s.Unlocked && s.Unlocked+1 < len(s.Levels) {
			s.Unlocked++
		}
		note := " | Campaign complete"
		if s.Current < s.Unlocked {
			note = " | Next level unlocked (N)"
		}
		s.Status = fmt.Sprintf("Target hit in %.2fs with %d bounce(s)%s", shot.Elapsed, shot.Bounces, note)
	case OutcomeHitGround:
		s.Phase = PhaseFailed
		s.Status = fmt.Sprintf("Missed target: hit ground at x=%.2f m after %d bounce(s)",
			math.Max(shot.Pos.X, 0), shot.Bounces)
	case OutcomeHitBarrier:
		s.Phase = PhaseFailed
		s.Status = "Missed target: barrier collision"
	}
	s.land()
}

// land retires the shot once the phase has left Flying.
func (s *Session) land() {
	s.Last = *s.Shot
	s.Shot = nil
	s.logger.Printf("%s: %s", s.Level().Code, s.Status)
}

// Prediction simulates the current launch configuration against the current level.
func (s *Session) Prediction() Prediction {
	return PredictWith(s.config, s.Launch, s.Level())
}

// Window fits the display window around the current level, pred and the shot.
// A finished shot keeps counting while its trail is still on screen.
func (s *Session) Window(pred Prediction) (spanX, spanY float64) {
	shot := s.Shot
	if shot == nil && len(s.Trail) > 0 {
		shot = &s.Last
	}
	return WorldWindow(s.Level(), s.Launch, pred, shot)
}
