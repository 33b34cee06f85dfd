// Package main benchmarks the geometry interpolator across a matrix of
// scenarios and writes the results as JSON and CSV. Useful for catching
// per-frame cost regressions, since the morph runs on every frame of
// the open and close transitions.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/geom"
)

// Scenario is one interpolator configuration to sweep.
type Scenario struct {
	Name       string  `json:"name"`
	ImageW     float64 `json:"image_w"`
	ImageH     float64 `json:"image_h"`
	ThumbW     float64 `json:"thumb_w"`
	ThumbH     float64 `json:"thumb_h"`
	PixelRatio float64 `json:"pixel_ratio"`
	Discrete   bool    `json:"discrete"`
}

// Result stores measurements for one scenario run.
type Result struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash"`
	GoVersion  string  `json:"go_version"`
	OS         string  `json:"os"`
	Arch       string  `json:"arch"`
	Scenario   string  `json:"scenario"`
	Steps      int     `json:"steps"`
	TotalMs    float64 `json:"total_ms"`
	PerCallNs  float64 `json:"per_call_ns"`
	Monotonic  bool    `json:"monotonic"`
}

var scenarios = []Scenario{
	{Name: "wide-hidpi", ImageW: 1600, ImageH: 900, ThumbW: 160, ThumbH: 160, PixelRatio: 2},
	{Name: "tall-hidpi", ImageW: 900, ImageH: 1600, ThumbW: 160, ThumbH: 160, PixelRatio: 2},
	{Name: "square-lodpi", ImageW: 1200, ImageH: 1200, ThumbW: 120, ThumbH: 90, PixelRatio: 1},
	{Name: "wide-discrete", ImageW: 1600, ImageH: 900, ThumbW: 160, ThumbH: 160, PixelRatio: 2, Discrete: true},
	{Name: "anamorphic", ImageW: 2390, ImageH: 1000, ThumbW: 200, ThumbH: 100, PixelRatio: 3},
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func main() {
	steps := flag.Int("steps", 100000, "interpolation steps per scenario")
	outJSON := flag.String("json", "bench_morph.json", "JSON output path")
	outCSV := flag.String("csv", "bench_morph.csv", "CSV output path")
	flag.Parse()

	commit := gitCommit()
	now := time.Now().UTC().Format(time.RFC3339)

	var results []Result
	for _, sc := range scenarios {
		r := runScenario(sc, *steps)
		r.Timestamp = now
		r.CommitHash = commit
		r.GoVersion = runtime.Version()
		r.OS = runtime.GOOS
		r.Arch = runtime.GOARCH
		results = append(results, r)
		fmt.Printf("%-16s %8.1f ns/call  monotonic=%v\n", sc.Name, r.PerCallNs, r.Monotonic)
	}

	if err := writeJSON(*outJSON, results); err != nil {
		fmt.Fprintf(os.Stderr, "bench_morph: %v\n", err)
		os.Exit(1)
	}
	if err := writeCSV(*outCSV, results); err != nil {
		fmt.Fprintf(os.Stderr, "bench_morph: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(sc Scenario, steps int) Result {
	thumb := core.Rect{X: 40, Y: 40, W: sc.ThumbW, H: sc.ThumbH}
	dims := core.Size{W: sc.ImageW, H: sc.ImageH}
	safe := core.Rect{W: 1280, H: 832}
	strategy := geom.SizeContinuous
	if sc.Discrete {
		strategy = geom.SizeDiscrete
	}

	monotonic := true
	prevW := -1.0

	start := time.Now()
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		f := geom.Interpolate(geom.Input{
			Progress:   p,
			Target:     1,
			Thumb:      &thumb,
			SafeArea:   safe,
			Dims:       &dims,
			PixelRatio: sc.PixelRatio,
			Strategy:   strategy,
		})
		if !sc.Discrete {
			if f.BoxW() < prevW {
				monotonic = false
			}
			prevW = f.BoxW()
		}
	}
	elapsed := time.Since(start)

	return Result{
		Scenario:  sc.Name,
		Steps:     steps,
		TotalMs:   float64(elapsed.Milliseconds()),
		PerCallNs: float64(elapsed.Nanoseconds()) / float64(steps+1),
		Monotonic: monotonic,
	}
}

func writeJSON(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"scenario", "steps", "total_ms", "per_call_ns", "monotonic", "commit", "go"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.Scenario,
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%.3f", r.TotalMs),
			fmt.Sprintf("%.1f", r.PerCallNs),
			fmt.Sprintf("%v", r.Monotonic),
			r.CommitHash,
			r.GoVersion,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
