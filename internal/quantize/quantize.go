// Package quantize reduces an image to a small set of representative colours
// with their pixel populations, the input to seed scoring.
package quantize

import (
	"cmp"
	"fmt"
	"image"
	"slices"

	"github.com/jmylchreest/tonal/internal/hct"
)

// Config controls quantisation.
type Config struct {
	MaxColors     int     // Upper bound on the number of clusters
	MaxIterations int     // k-means iteration cap
	Convergence   float64 // Average centroid movement (Lab units) treated as converged
	MaxSamples    int     // Pixels sampled from an image before clustering
	Seed          int64   // Seed for centroid initialisation
}

// DefaultConfig returns the default quantiser configuration.
func DefaultConfig() Config {
	return Config{
		MaxColors:     128,
		MaxIterations: 20,
		Convergence:   2.0,
		MaxSamples:    16384,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MaxColors < 1 {
		return fmt.Errorf("color count must be at least 1, got %d", c.MaxColors)
	}
	if c.MaxColors > 256 {
		return fmt.Errorf("color count too large: %d (maximum: 256)", c.MaxColors)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.MaxSamples < 1 {
		return fmt.Errorf("max samples must be at least 1, got %d", c.MaxSamples)
	}
	return nil
}

// Result maps each representative colour to the number of pixels it stands for.
type Result struct {
	Populations map[uint32]int
}

// Swatch is one quantised colour and its population.
type Swatch struct {
	Argb       uint32
	Population int
}

// Swatches returns the result ordered by descending population, ties broken by
// ARGB value so that the order is stable.
func (r *Result) Swatches() []Swatch {
	out := make([]Swatch, 0, len(r.Populations))
	for argb, n := range r.Populations {
		out = append(out, Swatch{Argb: argb, Population: n})
	}
	slices.SortFunc(out, func(a, b Swatch) int {
		if c := cmp.Compare(b.Population, a.Population); c != 0 {
			return c
		}
		return cmp.Compare(a.Argb, b.Argb)
	})
	return out
}

// Total returns the number of pixels represented.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Populations {
		total += n
	}
	return total
}

// Quantize clusters pixels into at most cfg.MaxColors colours. Pixels that are
// not fully opaque are ignored.
func Quantize(pixels []uint32, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[uint32]int)
	for _, p := range pixels {
		if !hct.IsOpaque(p) {
			continue
		}
		counts[p]++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no opaque pixels found")
	}

	if len(counts) <= cfg.MaxColors {
		return &Result{Populations: counts}, nil
	}

	return newKMeans(cfg).run(counts), nil
}

// QuantizeImage samples img and quantises the sampled pixels.
func QuantizeImage(img image.Image, cfg Config) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if cfg.MaxSamples < 1 {
		return nil, fmt.Errorf("max samples must be at least 1, got %d", cfg.MaxSamples)
	}
	return Quantize(SamplePixels(img, cfg.MaxSamples), cfg)
}
