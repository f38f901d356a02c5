package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FixedStep != 1.0/240.0 {
		t.Errorf("fixed step = %v, want 1/240", cfg.FixedStep)
	}
	if cfg.MaxPredictionSteps() != 320*6 {
		t.Errorf("max prediction steps = %d, want %d", cfg.MaxPredictionSteps(), 320*6)
	}
	if cfg.MaxSimTime != 60 || cfg.MaxFrameSlice != 0.10 {
		t.Errorf("caps = %v / %v", cfg.MaxSimTime, cfg.MaxFrameSlice)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv(EnvScreenWidth, "1280")
	t.Setenv(EnvScreenHeight, "720")
	t.Setenv(EnvSimSpeed, "9")
	t.Setenv(EnvSeed, "42")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Errorf("screen = %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.SimSpeed != cfg.SimSpeedMax {
		t.Errorf("sim speed = %v, want clamped to %v", cfg.SimSpeed, cfg.SimSpeedMax)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		EnvScreenWidth:  "wide",
		EnvScreenHeight: "-5",
		EnvSimSpeed:     "fast",
		EnvSeed:         "1.5",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(""); err == nil {
				t.Errorf("%s=%q accepted", key, value)
			}
		})
	}
}

func TestLoadConfigDotEnvFile(t *testing.T) {
	if _, set := os.LookupEnv(EnvSeed); set {
		t.Skipf("%s already set in the environment", EnvSeed)
	}
	t.Cleanup(func() { os.Unsetenv(EnvSeed) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvSeed+"=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7 from .env", cfg.Seed)
	}
}

func TestLoadConfigMissingFileIsFine(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing env file: %v", err)
	}
}
