// Package blend shifts colours toward one another in HCT.
package blend

import (
	"math"

	"github.com/jmylchreest/tonal/internal/hct"
)

// Harmonize rotates the hue of design toward source by half their hue
// difference, at most 15 degrees, keeping chroma and tone. Used to make
// fixed colours such as terminal red feel related to a theme.
func Harmonize(design, source uint32) uint32 {
	from := hct.FromArgb(design)
	to := hct.FromArgb(source)
	rotation := math.Min(hct.DifferenceDegrees(from.Hue(), to.Hue())*0.5, 15.0)
	hue := hct.SanitizeDegrees(from.Hue() + rotation*hct.RotationDirection(from.Hue(), to.Hue()))
	return hct.From(hue, from.Chroma(), from.Tone()).ToArgb()
}

// HctHue blends the hue of from toward to by amount in [0, 1], keeping the
// chroma and tone of from.
func HctHue(from, to uint32, amount float64) uint32 {
	ucs := Cam16Ucs(from, to, amount)
	blended := hct.FromArgb(ucs)
	original := hct.FromArgb(from)
	return hct.From(blended.Hue(), original.Chroma(), original.Tone()).ToArgb()
}

// Cam16Ucs interpolates linearly between from and to in CAM16-UCS.
func Cam16Ucs(from, to uint32, amount float64) uint32 {
	a := hct.Cam16FromArgb(from)
	b := hct.Cam16FromArgb(to)
	jstar := a.Jstar + (b.Jstar-a.Jstar)*amount
	astar := a.Astar + (b.Astar-a.Astar)*amount
	bstar := a.Bstar + (b.Bstar-a.Bstar)*amount
	return hct.Cam16FromUcs(jstar, astar, bstar).ToArgb()
}
