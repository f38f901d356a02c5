package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvScreenWidth  = "PARABOLIC_SCREEN_WIDTH"
	EnvScreenHeight = "PARABOLIC_SCREEN_HEIGHT"
	EnvSimSpeed     = "PARABOLIC_SIM_SPEED"
	EnvSeed         = "PARABOLIC_SEED"
)

// LaunchBounds limits what the input layer may write into a LaunchConfig.
type LaunchBounds struct {
	MinAngleDeg, MaxAngleDeg float64
	MinSpeed, MaxSpeed       float64
	MinHeight, MaxHeight     float64
}

// Config holds simulation and window configuration
type Config struct {
	// FixedStep is the integration sub-step in seconds
	FixedStep float64

	// MaxSimTime is the hard cap on simulated flight duration in seconds
	MaxSimTime float64

	// TrajectorySamples sizes the prediction budget; the iteration cap is six times this
	TrajectorySamples int

	// MaxFrameSlice caps how much simulated time a single tick may consume
	MaxFrameSlice float64

	// Bounds clamps launch configuration edits
	Bounds LaunchBounds

	// SimSpeed is the initial simulation-speed multiplier
	SimSpeed float64

	// SimSpeedMin and SimSpeedMax bound the multiplier
	SimSpeedMin float64
	SimSpeedMax float64

	// Seed drives campaign wind generation; 0 means seed from the clock
	Seed int64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		FixedStep:         1.0 / 240.0,
		MaxSimTime:        60.0,
		TrajectorySamples: 320,
		MaxFrameSlice:     0.10,
		Bounds: LaunchBounds{
			MinAngleDeg: -89,
			MaxAngleDeg: 89,
			MinSpeed:    5,
			MaxSpeed:    500,
			MinHeight:   0,
			MaxHeight:   400,
		},
		SimSpeed:     1.0,
		SimSpeedMin:  0.5,
		SimSpeedMax:  5.0,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	}
}

// MaxPredictionSteps is the iteration cap applied by Predict.
func (c Config) MaxPredictionSteps() int {
	return c.TrajectorySamples * 6
}

// LoadConfig returns DefaultConfig overlaid with PARABOLIC_* environment variables.
// If envFile is non-empty and exists it is loaded first; variables already set in
// the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvScreenWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s=%q: want a positive integer", EnvScreenWidth, v)
		}
		cfg.ScreenWidth = n
	}
	if v, ok := os.LookupEnv(EnvScreenHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s=%q: want a positive integer", EnvScreenHeight, v)
		}
		cfg.ScreenHeight = n
	}
	if v, ok := os.LookupEnv(EnvSimSpeed); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSimSpeed, v, err)
		}
		cfg.SimSpeed = clamp(f, cfg.SimSpeedMin, cfg.SimSpeedMax)
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = n
	}

	return cfg, nil
}

// discardLogger is used when a caller passes a nil logger.
var discardLogger = log.New(io.Discard, "", 0)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
