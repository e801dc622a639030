// Command smoothinfo prints the time and frequency behavior of retention
// presets.
//
// Usage:
//
//	smoothinfo [flags] [preset-name ...]
//
// Without arguments it prints info for all known presets.
//
// Examples:
//
//	smoothinfo translate zoom
//	smoothinfo -fps 144 rotate
//	smoothinfo -presets tuning.yaml
//	smoothinfo -spring 8,1 translate
//	smoothinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/internal/core"
	"github.com/cwbudde/algo-smooth/smooth/preset"
	"github.com/cwbudde/algo-smooth/smooth/response"
)

func main() {
	fps := flag.Float64("fps", 60, "frame rate in frames per second")
	size := flag.Int("size", 4096, "FFT size for the measured cutoff gain (power of two)")
	presetsPath := flag.String("presets", "", "YAML preset table merged over the built-in presets")
	spring := flag.String("spring", "", "compare with a damped spring given as frequency,damping")
	list := flag.Bool("list", false, "list available preset names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothinfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints time and frequency behavior of retention presets.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo translate zoom\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -fps 144 rotate\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -presets tuning.yaml\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -spring 8,1 translate\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -list\n")
	}
	flag.Parse()

	if err := validateFrameRate(*fps); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	registry, err := loadRegistry(*presetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, n := range registry.Names() {
			fmt.Println(n)
		}
		return
	}

	entries := resolvePresets(registry, flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching presets\n")
		os.Exit(1)
	}

	printAnalysis(entries, *fps, *size)

	if *spring != "" {
		freq, damping, err := parseSpring(*spring)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printSpringComparison(entries, *fps, freq, damping)
	}
}

func loadRegistry(path string) (*preset.Registry, error) {
	if path == "" {
		return preset.Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return preset.Load(data)
}

func resolvePresets(registry *preset.Registry, names []string) []preset.Preset {
	if len(names) == 0 {
		return registry.Presets()
	}

	var result []preset.Preset
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		p, ok := registry.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown preset %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, p)
	}
	return result
}

func parseSpring(s string) (freq, damping float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("spring must be frequency,damping, got %q", s)
	}
	freq, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("spring frequency: %w", err)
	}
	damping, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("spring damping: %w", err)
	}
	return freq, damping, nil
}

func validateFrameRate(fps float64) error {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return fmt.Errorf("frame rate must be positive and finite, got %v", fps)
	}
	return nil
}

func printAnalysis(entries []preset.Preset, fps float64, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Preset\tKind\tRetention\tPer Frame\tHalf-life [s]\tTau [s]\tSettle 1%% [s]\tSettle [frames]\tCutoff [Hz]\tFFT Gain@Cutoff [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---------\t---------\t-------------\t-------\t-------------\t---------------\t-----------\t--------------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, p := range entries {
		a, err := response.Analyze(p.Retention, response.WithFrameRate(fps))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s: %v\n", p.Name, err)
			continue
		}

		gain := math.NaN()
		if sp, err := response.FrequencyResponse(p.Retention, size, response.WithFrameRate(fps)); err == nil {
			gain = core.LinearToDB(sp.GainAt(a.CutoffHz))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "warning: %s: %v\n", p.Name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.4g\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%.4f\t%.2f\n",
			p.Name,
			p.Kind,
			p.Retention,
			a.PercentPerFrame,
			a.HalfLife,
			a.TimeConstant,
			a.Settle1,
			frames(a.SettleFrames),
			a.CutoffHz,
			gain,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSpringComparison(entries []preset.Preset, fps, freq, damping float64) {
	const horizon = 10 // seconds
	n := int(math.Ceil(horizon * fps))

	curve, err := response.SpringStep(freq, damping, response.WithFrameRate(fps), response.WithFrames(n))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "\nModel\tSettle 1%% [frames]\tOvershoot\n")
	_, _ = fmt.Fprintf(tw, "-----\t------------------\t---------\n")
	_, _ = fmt.Fprintf(tw, "spring(%.3g, %.3g)\t%s\t%.4f\n", freq, damping,
		frames(response.SettleFrames(curve, 1, 0.01)), response.Overshoot(curve, 1))

	for _, p := range entries {
		step, err := response.StepResponse(p.Retention, response.WithFrameRate(fps), response.WithFrames(n))
		if err != nil {
			continue
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.4f\n", p.Name,
			frames(response.SettleFrames(step, 1, 0.01)), response.Overshoot(step, 1))
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func frames(n int) string {
	switch {
	case n < 0:
		return "never"
	case n == math.MaxInt:
		return "inf"
	default:
		return strconv.Itoa(n)
	}
}
