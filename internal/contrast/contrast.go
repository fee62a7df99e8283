// Package contrast provides WCAG-style contrast ratios between tones, and the
// tone search used to hit a target ratio against a background.
//
// Tones are L* values in [0, 100]. Functions that cannot satisfy a request
// return -1.
package contrast

import (
	"math"

	"github.com/jmylchreest/tonal/internal/hct"
)

const (
	// RatioMin is the contrast ratio of a colour against itself.
	RatioMin = 1.0
	// RatioMax is the contrast ratio of black against white.
	RatioMax = 21.0
	// Ratio30 is the minimum for large text and UI components.
	Ratio30 = 3.0
	// Ratio45 is the minimum for body text.
	Ratio45 = 4.5
	// Ratio70 is the enhanced minimum for body text.
	Ratio70 = 7.0

	// ratioEpsilon absorbs floating point error when checking a computed
	// luminance against the requested ratio.
	ratioEpsilon = 0.04

	// luminanceGamutMapTolerance nudges results away from the background so
	// that gamut mapping, which may shift tone slightly, keeps the ratio.
	luminanceGamutMapTolerance = 0.4
)

// RatioOfYs returns the contrast ratio of two relative luminances in [0, 100].
func RatioOfYs(y1, y2 float64) float64 {
	lighter := math.Max(y1, y2)
	darker := y1
	if lighter == y1 {
		darker = y2
	}
	return (lighter + 5) / (darker + 5)
}

// RatioOfTones returns the contrast ratio of two tones, in [1, 21].
func RatioOfTones(t1, t2 float64) float64 {
	return RatioOfYs(hct.YFromLstar(t1), hct.YFromLstar(t2))
}

// Lighter returns a tone >= tone that achieves ratio against it, or -1 if
// none exists.
func Lighter(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	darkY := hct.YFromLstar(tone)
	lightY := ratio*(darkY+5) - 5
	if lightY < 0 || lightY > 100 {
		return -1
	}
	realContrast := RatioOfYs(lightY, darkY)
	if realContrast < ratio && math.Abs(realContrast-ratio) > ratioEpsilon {
		return -1
	}
	result := hct.LstarFromY(lightY) + luminanceGamutMapTolerance
	if result < 0 || result > 100 {
		return -1
	}
	return result
}

// Darker returns a tone <= tone that achieves ratio against it, or -1 if
// none exists.
func Darker(tone, ratio float64) float64 {
	if tone < 0 || tone > 100 {
		return -1
	}
	lightY := hct.YFromLstar(tone)
	darkY := (lightY+5)/ratio - 5
	if darkY < 0 || darkY > 100 {
		return -1
	}
	realContrast := RatioOfYs(lightY, darkY)
	if realContrast < ratio && math.Abs(realContrast-ratio) > ratioEpsilon {
		return -1
	}
	result := hct.LstarFromY(darkY) - luminanceGamutMapTolerance
	if result < 0 || result > 100 {
		return -1
	}
	return result
}

// LighterUnsafe is Lighter, returning 100 when the ratio cannot be reached.
func LighterUnsafe(tone, ratio float64) float64 {
	if safe := Lighter(tone, ratio); safe >= 0 {
		return safe
	}
	return 100
}

// DarkerUnsafe is Darker, returning 0 when the ratio cannot be reached.
func DarkerUnsafe(tone, ratio float64) float64 {
	return math.Max(0, Darker(tone, ratio))
}
