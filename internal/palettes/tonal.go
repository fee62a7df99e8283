// Package palettes provides tonal palettes: a fixed hue and chroma that can be
// rendered at any tone.
package palettes

import (
	"math"
	"sync"

	"github.com/jmylchreest/tonal/internal/hct"
)

// StandardTones are the tones commonly exported for a tonal palette.
var StandardTones = []int{0, 4, 5, 6, 10, 12, 15, 17, 20, 22, 24, 25, 30, 35, 40, 50, 60, 70, 80, 87, 90, 92, 94, 95, 96, 98, 99, 100}

// TonalPalette is a convenience type for retrieving colours that are constant
// in hue and chroma, but vary in tone.
type TonalPalette struct {
	hue      float64
	chroma   float64
	keyColor hct.HCT

	mu    sync.Mutex
	cache map[int]uint32
}

// FromArgb creates a tonal palette from the hue and chroma of an ARGB colour.
func FromArgb(argb uint32) *TonalPalette {
	return FromHct(hct.FromArgb(argb))
}

// FromHct creates a tonal palette from the hue and chroma of an HCT colour,
// which also becomes the key colour.
func FromHct(h hct.HCT) *TonalPalette {
	return newTonalPalette(h.Hue(), h.Chroma(), h)
}

// FromHueAndChroma creates a tonal palette from hue and chroma. The key colour
// is the colour closest to tone 50 that reaches the requested chroma.
func FromHueAndChroma(hue, chroma float64) *TonalPalette {
	return newTonalPalette(hue, chroma, newKeyColor(hue, chroma).create())
}

func newTonalPalette(hue, chroma float64, keyColor hct.HCT) *TonalPalette {
	return &TonalPalette{
		hue:      hue,
		chroma:   chroma,
		keyColor: keyColor,
		cache:    make(map[int]uint32),
	}
}

// Tone returns the ARGB colour at the given tone, memoised per palette.
func (p *TonalPalette) Tone(tone int) uint32 {
	p.mu.Lock()
	if argb, ok := p.cache[tone]; ok {
		p.mu.Unlock()
		return argb
	}
	p.mu.Unlock()

	var argb uint32
	if tone == 99 && hct.IsYellow(p.hue) {
		// Yellows at tone 99 read as cream; split the difference with white.
		argb = averageArgb(p.Tone(98), p.Tone(100))
	} else {
		argb = hct.From(p.hue, p.chroma, float64(tone)).ToArgb()
	}

	p.mu.Lock()
	p.cache[tone] = argb
	p.mu.Unlock()
	return argb
}

// GetHct returns the HCT colour at the given tone.
func (p *TonalPalette) GetHct(tone float64) hct.HCT {
	return hct.From(p.hue, p.chroma, tone)
}

// Hue returns the palette's hue.
func (p *TonalPalette) Hue() float64 { return p.hue }

// Chroma returns the palette's requested chroma.
func (p *TonalPalette) Chroma() float64 { return p.chroma }

// KeyColor returns the palette's key colour.
func (p *TonalPalette) KeyColor() hct.HCT { return p.keyColor }

func averageArgb(a, b uint32) uint32 {
	avg := func(x, y uint8) uint8 {
		return uint8(math.Floor((float64(x)+float64(y))/2 + 0.5))
	}
	return hct.ArgbFromRGB(
		avg(hct.Red(a), hct.Red(b)),
		avg(hct.Green(a), hct.Green(b)),
		avg(hct.Blue(a), hct.Blue(b)),
	)
}

// keyColor finds the tone at which a hue reaches a requested chroma, choosing
// the tone closest to 50 when several qualify.
type keyColor struct {
	hue             float64
	requestedChroma float64
	chromaCache     map[int]float64
}

const maxChromaValue = 200.0

func newKeyColor(hue, requestedChroma float64) *keyColor {
	return &keyColor{
		hue:             hue,
		requestedChroma: requestedChroma,
		chromaCache:     make(map[int]float64),
	}
}

// create binary searches tones for the lowest tone with sufficient chroma
// nearest the pivot.
func (k *keyColor) create() hct.HCT {
	const pivotTone = 50
	const toneStepSize = 1
	const epsilon = 0.01

	lowerTone := 0
	upperTone := 100
	for lowerTone < upperTone {
		midTone := (lowerTone + upperTone) / 2
		isAscending := k.maxChroma(midTone) < k.maxChroma(midTone+toneStepSize)
		sufficientChroma := k.maxChroma(midTone) >= k.requestedChroma-epsilon

		if sufficientChroma {
			// Either range [lowerTone, midTone] or [midTone, upperTone] has
			// the answer, so search in the range closer to the pivot tone.
			if abs(lowerTone-pivotTone) < abs(upperTone-pivotTone) {
				upperTone = midTone
			} else {
				if lowerTone == midTone {
					return hct.From(k.hue, k.requestedChroma, float64(lowerTone))
				}
				lowerTone = midTone
			}
		} else {
			// As there is no sufficient chroma in the midTone, follow the
			// direction to the chroma peak.
			if isAscending {
				lowerTone = midTone + toneStepSize
			} else {
				upperTone = midTone
			}
		}
	}
	return hct.From(k.hue, k.requestedChroma, float64(lowerTone))
}

func (k *keyColor) maxChroma(tone int) float64 {
	if c, ok := k.chromaCache[tone]; ok {
		return c
	}
	c := hct.From(k.hue, maxChromaValue, float64(tone)).Chroma()
	k.chromaCache[tone] = c
	return c
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
