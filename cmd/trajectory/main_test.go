package main

import (
	"bufio"
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"parabolic/game"
)

func TestFilenameValue(t *testing.T) {
	tests := map[float64]string{
		75:     "75",
		1.5:    "1p5",
		12.346: "12p35",
		-3.25:  "neg3p25",
		0.1:    "0p1",
		2.999:  "3",
	}
	for in, want := range tests {
		if got := filenameValue(in); got != want {
			t.Errorf("filenameValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2026, time.February, 16, 10, 0, 0, 0, time.UTC)
	got := outputName(game.LaunchConfig{AngleDeg: 75, Speed: 150, Height: 600}, now)
	if want := "A75_V150_H600_trajectory_2-16-26.png"; got != want {
		t.Errorf("outputName = %q, want %q", got, want)
	}
}

func TestParseLaunch(t *testing.T) {
	got, err := parseLaunch([]string{"45", "30", "1.5"})
	if err != nil {
		t.Fatalf("parseLaunch: %v", err)
	}
	if got != (game.LaunchConfig{AngleDeg: 45, Speed: 30, Height: 1.5}) {
		t.Errorf("launch = %+v", got)
	}

	if _, err := parseLaunch([]string{"45", "fast", "1"}); err == nil || !strings.Contains(err.Error(), "velocity") {
		t.Errorf("bad velocity error = %v", err)
	}
}

func TestPromptLaunchRetriesInvalidInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("abc\n45\n10\n0\n"))
	var out bytes.Buffer

	got, err := promptLaunch(in, &out)
	if err != nil {
		t.Fatalf("promptLaunch: %v", err)
	}
	if got != (game.LaunchConfig{AngleDeg: 45, Speed: 10}) {
		t.Errorf("launch = %+v", got)
	}
	if !strings.Contains(out.String(), "Please enter a valid number") {
		t.Errorf("no retry message in %q", out.String())
	}
}

func TestPromptLaunchEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("45\n"))
	if _, err := promptLaunch(in, &bytes.Buffer{}); !errors.Is(err, errInputEnded) {
		t.Errorf("err = %v, want errInputEnded", err)
	}
}

func TestPromptLaunchLastLineWithoutNewline(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("45\n10\n2"))
	got, err := promptLaunch(in, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("promptLaunch: %v", err)
	}
	if got.Height != 2 {
		t.Errorf("height = %v, want 2", got.Height)
	}
}

func TestRunWritesPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	var out bytes.Buffer

	if err := run([]string{"45", "10", "0"}, strings.NewReader(""), &out, path, 100); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Time of flight: 1.4431 s") {
		t.Errorf("output missing flight time: %q", out.String())
	}
	if !strings.Contains(out.String(), "Horizontal distance: 10.2041 m") {
		t.Errorf("output missing distance: %q", out.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != plotWidth || b.Dy() != plotHeight {
		t.Errorf("plot size = %v", b)
	}
}

func TestRunRejectsImpossibleLanding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.png")
	err := run([]string{"0", "1", "-10"}, strings.NewReader(""), &bytes.Buffer{}, path, 100)
	if !errors.Is(err, game.ErrNoLanding) {
		t.Fatalf("err = %v, want ErrNoLanding", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("plot written for a failed calculation")
	}
}

func TestRunArgumentCount(t *testing.T) {
	if err := run([]string{"1", "2"}, strings.NewReader(""), &bytes.Buffer{}, "", 10); err == nil {
		t.Error("two arguments accepted")
	}
}
