package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"parabolic/game"
)

var errInputEnded = errors.New("input ended unexpectedly (EOF)")

func main() {
	log.SetFlags(0)

	output := flag.String("o", "", "output PNG path (default A<angle>_V<speed>_H<height>_trajectory_<date>.png)")
	samples := flag.Int("samples", trajectorySamples, "number of trajectory samples in the plot")
	flag.Usage = usage
	flag.Parse()

	if err := run(flag.Args(), os.Stdin, os.Stdout, *output, *samples); err != nil {
		log.Printf("Error: %v", err)
		usage()
		os.Exit(1)
	}
}

func usage() {
	program := os.Args[0]
	fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags]\n  %s [flags] <angle_deg> <velocity_mps> <height_m>\n\n", program, program)
	fmt.Fprintf(os.Stderr, "Examples:\n  %s\n  %s 45 30 1.5\n\n", program, program)
	fmt.Fprintln(os.Stderr, "The program saves a PNG plot named like:\n  A75_V150_H600_trajectory_2-16-26.png")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func run(args []string, in io.Reader, out io.Writer, output string, samples int) error {
	var launch game.LaunchConfig
	var err error
	switch len(args) {
	case 0:
		launch, err = promptLaunch(bufio.NewReader(in), out)
	case 3:
		launch, err = parseLaunch(args)
	default:
		err = fmt.Errorf("expected exactly 3 arguments: <angle_deg> <velocity_mps> <height_m>, got %d", len(args))
	}
	if err != nil {
		return err
	}

	flightTime, distance, err := game.FlightTimeAndRange(launch, game.EarthGravity)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nTime of flight: %.4f s\n", flightTime)
	fmt.Fprintf(out, "Horizontal distance: %.4f m\n", distance)

	if output == "" {
		output = outputName(launch, time.Now())
	}
	points := game.SampleTrajectory(launch, game.EarthGravity, flightTime, samples)
	if err := savePlot(output, points, flightTime, distance); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	fmt.Fprintf(out, "Saved plot: %s\n", output)
	return nil
}

func parseLaunch(args []string) (game.LaunchConfig, error) {
	labels := [3]string{"angle", "velocity", "height"}
	var values [3]float64
	for i, label := range labels {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return game.LaunchConfig{}, fmt.Errorf("invalid %s: %q, expected a number", label, args[i])
		}
		values[i] = v
	}
	return game.LaunchConfig{AngleDeg: values[0], Speed: values[1], Height: values[2]}, nil
}

// promptLaunch asks for each value until it parses.
func promptLaunch(in *bufio.Reader, out io.Writer) (game.LaunchConfig, error) {
	prompts := [3]string{"Angle (degrees): ", "Velocity (m/s): ", "Height (m): "}
	var values [3]float64
	for i, prompt := range prompts {
		v, err := readFloat(in, out, prompt)
		if err != nil {
			return game.LaunchConfig{}, err
		}
		values[i] = v
	}
	return game.LaunchConfig{AngleDeg: values[0], Speed: values[1], Height: values[2]}, nil
}

func readFloat(in *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, errInputEnded
			}
			return 0, fmt.Errorf("could not read input: %w", err)
		}
		if v, perr := strconv.ParseFloat(strings.TrimSpace(line), 64); perr == nil {
			return v, nil
		}
		fmt.Fprintln(out, "Please enter a valid number (e.g., 45 or 12.5).")
		if err == io.EOF {
			return 0, errInputEnded
		}
	}
}

// outputName builds A<angle>_V<speed>_H<height>_trajectory_<M>-<D>-<YY>.png.
func outputName(launch game.LaunchConfig, now time.Time) string {
	return fmt.Sprintf("A%s_V%s_H%s_trajectory_%d-%d-%02d.png",
		filenameValue(launch.AngleDeg), filenameValue(launch.Speed), filenameValue(launch.Height),
		int(now.Month()), now.Day(), now.Year()%100)
}

// filenameValue rounds to two decimals, drops trailing zeros,
// and spells the sign and decimal point as "neg" and "p".
func filenameValue(v float64) string {
	rounded := math.Round(v*100) / 100
	var s string
	if math.Abs(rounded-math.Trunc(rounded)) < 1e-9 {
		s = strconv.FormatFloat(rounded, 'f', 0, 64)
	} else {
		s = strings.TrimRight(strconv.FormatFloat(rounded, 'f', 2, 64), "0")
		s = strings.TrimSuffix(s, ".")
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		s = "neg" + rest
	}
	return strings.ReplaceAll(s, ".", "p")
}
