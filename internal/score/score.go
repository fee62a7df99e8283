// Package score ranks quantised colours by how well they would serve as the
// source colour of a theme.
package score

import (
	"cmp"
	"math"
	"slices"

	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/quantize"
)

const (
	targetChroma            = 48.0 // A1 chroma
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// DefaultFallback is returned when no input colour is suitable: Google blue.
const DefaultFallback uint32 = 0xff4285f4

// Options controls ranking.
type Options struct {
	Desired  int    // Maximum number of colours returned
	Fallback uint32 // Returned alone when nothing survives filtering
	Filter   bool   // Drop greys and hues that cover almost none of the image
}

// DefaultOptions returns the options used for theme seeds.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: DefaultFallback, Filter: true}
}

type scored struct {
	hct   hct.HCT
	score float64
}

// Score ranks the colours in populations, most suitable first. The result is
// never empty: it holds opts.Fallback when no colour qualifies. Colours whose
// hues are close to a better ranked colour are skipped, with the minimum hue
// distance relaxed from 90 down to 15 degrees until opts.Desired colours are
// found.
func Score(populations map[uint32]int, opts Options) []uint32 {
	if opts.Desired < 1 {
		opts.Desired = 1
	}

	argbs := make([]uint32, 0, len(populations))
	for argb := range populations {
		argbs = append(argbs, argb)
	}
	slices.Sort(argbs)

	colors := make([]hct.HCT, 0, len(argbs))
	var huePopulation [360]int
	populationSum := 0.0
	for _, argb := range argbs {
		h := hct.FromArgb(argb)
		colors = append(colors, h)
		huePopulation[int(math.Floor(h.Hue()))%360] += populations[argb]
		populationSum += float64(populations[argb])
	}

	var excited [360]float64
	if populationSum > 0 {
		for hue := range 360 {
			proportion := float64(huePopulation[hue]) / populationSum
			for i := hue - 14; i < hue+16; i++ {
				excited[hct.SanitizeDegreesInt(i)] += proportion
			}
		}
	}

	candidates := make([]scored, 0, len(colors))
	for _, h := range colors {
		proportion := excited[hct.SanitizeDegreesInt(int(hct.Round(h.Hue())))]
		if opts.Filter && (h.Chroma() < cutoffChroma || proportion <= cutoffExcitedProportion) {
			continue
		}
		chromaWeight := weightChromaAbove
		if h.Chroma() < targetChroma {
			chromaWeight = weightChromaBelow
		}
		candidates = append(candidates, scored{
			hct:   h,
			score: proportion*100*weightProportion + (h.Chroma()-targetChroma)*chromaWeight,
		})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var chosen []hct.HCT
	for difference := 90.0; difference >= 15; difference-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			if !hasNearbyHue(chosen, c.hct.Hue(), difference) {
				chosen = append(chosen, c.hct)
			}
			if len(chosen) >= opts.Desired {
				break
			}
		}
		if len(chosen) >= opts.Desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []uint32{opts.Fallback}
	}
	out := make([]uint32, len(chosen))
	for i, h := range chosen {
		out[i] = h.ToArgb()
	}
	return out
}

// Rank scores a quantiser result.
func Rank(res *quantize.Result, opts Options) []uint32 {
	if res == nil {
		return []uint32{opts.Fallback}
	}
	return Score(res.Populations, opts)
}

func hasNearbyHue(chosen []hct.HCT, hue, difference float64) bool {
	for _, c := range chosen {
		if hct.DifferenceDegrees(hue, c.Hue()) < difference {
			return true
		}
	}
	return false
}
