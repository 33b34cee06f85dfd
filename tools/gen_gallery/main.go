// Package main generates a deterministic demo gallery: a set of PNG
// images with varied aspect ratios and procedural patterns, plus a
// manifest describing what was generated.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// GalleryParams defines parameters for gallery generation.
type GalleryParams struct {
	Seed     int64 `json:"seed"`
	Count    int   `json:"count"`
	MinWidth int   `json:"min_width"`
	MaxWidth int   `json:"max_width"`
}

// Entry describes one generated image.
type Entry struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Aspect  float64 `json:"aspect"`
	Pattern string  `json:"pattern"`
}

// Manifest describes a complete generated gallery.
type Manifest struct {
	Params    GalleryParams `json:"params"`
	Entries   []Entry       `json:"entries"`
	Generated string        `json:"generated"`
}

// Aspect ratios sampled per image. Tall, square, and wide cases all
// need to show up so the morph math is exercised in both branches.
var aspects = []float64{0.5, 0.75, 1.0, 4.0 / 3.0, 16.0 / 9.0, 2.39}

var patterns = []string{"stripes", "rings", "checker", "gradient"}

func main() {
	outDir := flag.String("out", "gallery", "output directory")
	count := flag.Int("count", 12, "number of images")
	seed := flag.Int64("seed", 42, "random seed")
	minW := flag.Int("min-width", 640, "minimum image width")
	maxW := flag.Int("max-width", 1920, "maximum image width")
	flag.Parse()

	params := GalleryParams{Seed: *seed, Count: *count, MinWidth: *minW, MaxWidth: *maxW}
	if err := generate(*outDir, params); err != nil {
		fmt.Fprintf(os.Stderr, "gen_gallery: %v\n", err)
		os.Exit(1)
	}
}

func generate(outDir string, params GalleryParams) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(params.Seed))

	manifest := Manifest{
		Params:    params,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for i := 0; i < params.Count; i++ {
		w := params.MinWidth + rng.Intn(params.MaxWidth-params.MinWidth+1)
		aspect := aspects[rng.Intn(len(aspects))]
		h := int(float64(w) / aspect)
		pattern := patterns[rng.Intn(len(patterns))]

		name := fmt.Sprintf("%02d_%s.png", i, pattern)
		if err := writePattern(filepath.Join(outDir, name), w, h, pattern, rng); err != nil {
			return err
		}
		manifest.Entries = append(manifest.Entries, Entry{
			Name: name, Width: w, Height: h, Aspect: aspect, Pattern: pattern,
		})
		fmt.Printf("generated %s (%dx%d)\n", name, w, h)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0o644)
}

func writePattern(path string, w, h int, pattern string, rng *rand.Rand) error {
	a := randomColor(rng)
	b := randomColor(rng)
	m := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, patternColor(pattern, x, y, w, h, a, b))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, m)
}

func patternColor(pattern string, x, y, w, h int, a, b color.NRGBA) color.NRGBA {
	switch pattern {
	case "stripes":
		if (x/48)%2 == 0 {
			return a
		}
		return b
	case "rings":
		cx := float64(x - w/2)
		cy := float64(y - h/2)
		if int(math.Hypot(cx, cy)/40)%2 == 0 {
			return a
		}
		return b
	case "checker":
		if (x/64+y/64)%2 == 0 {
			return a
		}
		return b
	default: // gradient
		t := float64(x) / float64(w)
		return lerpColor(a, b, t)
	}
}

func randomColor(rng *rand.Rand) color.NRGBA {
	return color.NRGBA{
		R: uint8(64 + rng.Intn(192)),
		G: uint8(64 + rng.Intn(192)),
		B: uint8(64 + rng.Intn(192)),
		A: 255,
	}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
