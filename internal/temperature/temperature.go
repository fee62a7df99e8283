// Package temperature implements colour temperature theory: warm colours sit
// near orange and cool colours near blue, which gives a principled way to find
// complements and analogous colours.
package temperature

import (
	"math"
	"sort"
	"sync"

	"github.com/jmylchreest/tonal/internal/hct"
)

// Cache computes and memoises temperature relations for one input colour.
type Cache struct {
	input hct.HCT

	once         sync.Once
	hctsByHue    []hct.HCT // 361 entries, hue 0 through 360 inclusive
	tempsByHue   []float64
	inputTemp    float64
	coldestTemp  float64
	warmestTemp  float64
	coldest      hct.HCT
	warmest      hct.HCT
	hctsByTemp   []hct.HCT
	complement   *hct.HCT
	complementMu sync.Mutex
}

// NewCache creates a temperature cache for input.
func NewCache(input hct.HCT) *Cache {
	return &Cache{input: input}
}

func (c *Cache) init() {
	c.once.Do(func() {
		c.hctsByHue = make([]hct.HCT, 0, 361)
		for hue := 0.0; hue <= 360; hue++ {
			c.hctsByHue = append(c.hctsByHue, hct.From(hue, c.input.Chroma(), c.input.Tone()))
		}
		c.tempsByHue = make([]float64, len(c.hctsByHue))
		for i, h := range c.hctsByHue {
			c.tempsByHue[i] = RawTemperature(h)
		}
		c.inputTemp = RawTemperature(c.input)

		type entry struct {
			hct  hct.HCT
			temp float64
		}
		entries := make([]entry, 0, len(c.hctsByHue)+1)
		for i, h := range c.hctsByHue {
			entries = append(entries, entry{hct: h, temp: c.tempsByHue[i]})
		}
		entries = append(entries, entry{hct: c.input, temp: c.inputTemp})
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].temp < entries[j].temp })

		c.hctsByTemp = make([]hct.HCT, len(entries))
		for i, e := range entries {
			c.hctsByTemp[i] = e.hct
		}
		c.coldest, c.coldestTemp = entries[0].hct, entries[0].temp
		last := entries[len(entries)-1]
		c.warmest, c.warmestTemp = last.hct, last.temp
	})
}

// Coldest returns the coldest colour at the input's chroma and tone.
func (c *Cache) Coldest() hct.HCT {
	c.init()
	return c.coldest
}

// Warmest returns the warmest colour at the input's chroma and tone.
func (c *Cache) Warmest() hct.HCT {
	c.init()
	return c.warmest
}

// HctsByTemp returns the 360 hues at the input's chroma and tone plus the
// input itself, sorted coldest first.
func (c *Cache) HctsByTemp() []hct.HCT {
	c.init()
	out := make([]hct.HCT, len(c.hctsByTemp))
	copy(out, c.hctsByTemp)
	return out
}

// Complement returns a colour that is the input's opposite in temperature,
// travelling the hue wheel on the far side of the coldest-warmest axis.
func (c *Cache) Complement() hct.HCT {
	c.complementMu.Lock()
	defer c.complementMu.Unlock()
	if c.complement != nil {
		return *c.complement
	}
	c.init()

	coldestHue := c.coldest.Hue()
	warmestHue := c.warmest.Hue()
	tempRange := c.warmestTemp - c.coldestTemp
	startHueIsColdestToWarmest := isBetween(c.input.Hue(), coldestHue, warmestHue)
	startHue, endHue := coldestHue, warmestHue
	if startHueIsColdestToWarmest {
		startHue, endHue = warmestHue, coldestHue
	}

	smallestError := 1000.0
	answer := c.hctsByHue[roundIndex(c.input.Hue())]
	complementRelativeTemp := 1 - c.InputRelativeTemperature()

	// Find the colour in the other section, closest to the inverse percentile
	// of the input colour.
	for hueAddend := 0.0; hueAddend <= 360; hueAddend++ {
		hue := hct.SanitizeDegrees(startHue + hueAddend)
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		idx := roundIndex(hue)
		relativeTemp := (c.tempsByHue[idx] - c.coldestTemp) / tempRange
		errorValue := math.Abs(complementRelativeTemp - relativeTemp)
		if errorValue < smallestError {
			smallestError = errorValue
			answer = c.hctsByHue[idx]
		}
	}

	c.complement = &answer
	return answer
}

// Analogous returns five colours that pair well with the input, the input in
// the middle, using twelve divisions of the temperature wheel.
func (c *Cache) Analogous() []hct.HCT {
	return c.AnalogousN(5, 12)
}

// AnalogousN returns count colours analogous to the input, spaced by equal
// temperature steps when the wheel is split into divisions.
func (c *Cache) AnalogousN(count, divisions int) []hct.HCT {
	c.init()

	// The starting hue is the hue of the input colour.
	startHue := roundIndex(c.input.Hue())
	startHct := c.hctsByHue[startHue]
	lastTemp := c.relative(c.tempsByHue[startHue])

	allColors := []hct.HCT{startHct}

	absoluteTotalTempDelta := 0.0
	for i := 0; i < 360; i++ {
		hue := hct.SanitizeDegreesInt(startHue + i)
		temp := c.relative(c.tempsByHue[hue])
		absoluteTotalTempDelta += math.Abs(temp - lastTemp)
		lastTemp = temp
	}

	hueAddend := 1
	tempStep := absoluteTotalTempDelta / float64(divisions)
	totalTempDelta := 0.0
	lastTemp = c.relative(c.tempsByHue[startHue])
	for len(allColors) < divisions {
		hue := hct.SanitizeDegreesInt(startHue + hueAddend)
		h := c.hctsByHue[hue]
		temp := c.relative(c.tempsByHue[hue])
		totalTempDelta += math.Abs(temp - lastTemp)

		desiredTotalTempDeltaForIndex := float64(len(allColors)) * tempStep
		indexSatisfied := totalTempDelta >= desiredTotalTempDeltaForIndex
		indexAddend := 1
		// Keep adding this hue to the answers until its temperature is
		// insufficient. This ensures consistent behaviour when there aren't
		// divisions discrete steps between 0 and 360 in hue with
		// tempStep delta in temperature between them.
		for indexSatisfied && len(allColors) < divisions {
			allColors = append(allColors, h)
			desiredTotalTempDeltaForIndex = float64(len(allColors)+indexAddend) * tempStep
			indexSatisfied = totalTempDelta >= desiredTotalTempDeltaForIndex
			indexAddend++
		}
		lastTemp = temp
		hueAddend++

		if hueAddend > 360 {
			for len(allColors) < divisions {
				allColors = append(allColors, h)
			}
			break
		}
	}

	answers := []hct.HCT{c.input}

	// First, generate analogues from rotating counter-clockwise.
	ccwCount := int(math.Floor(float64(count-1) / 2))
	for i := 1; i < ccwCount+1; i++ {
		index := wrapIndex(-i, len(allColors))
		answers = append([]hct.HCT{allColors[index]}, answers...)
	}

	// Second, generate analogues from rotating clockwise.
	cwCount := count - ccwCount - 1
	for i := 1; i < cwCount+1; i++ {
		index := wrapIndex(i, len(allColors))
		answers = append(answers, allColors[index])
	}

	return answers
}

// InputRelativeTemperature returns the input's temperature relative to the
// coldest (0) and warmest (1) colours at its chroma and tone.
func (c *Cache) InputRelativeTemperature() float64 {
	c.init()
	return c.relative(c.inputTemp)
}

// RelativeTemperature returns how warm h is relative to the coldest (0) and
// warmest (1) colours at the input's chroma and tone.
func (c *Cache) RelativeTemperature(h hct.HCT) float64 {
	c.init()
	return c.relative(RawTemperature(h))
}

func (c *Cache) relative(temp float64) float64 {
	tempRange := c.warmestTemp - c.coldestTemp
	if tempRange == 0 {
		return 0.5
	}
	return (temp - c.coldestTemp) / tempRange
}

// RawTemperature returns a colour's temperature. Values below 0 are cool and
// above 0 are warm; the range is roughly -0.5 to 3.
//
// Based on Ou, Woodcock and Wright, "A study of colour emotion and colour
// preference", using L*a*b* hue and chroma.
func RawTemperature(color hct.HCT) float64 {
	lab := hct.LabFromArgb(color.ToArgb())
	hue := hct.SanitizeDegrees(math.Atan2(lab[2], lab[1]) * 180 / math.Pi)
	chroma := math.Hypot(lab[1], lab[2])
	return -0.5 + 0.02*math.Pow(chroma, 1.07)*math.Cos(hct.SanitizeDegrees(hue-50)*math.Pi/180)
}

// isBetween reports whether angle lies on the clockwise arc from a to b.
func isBetween(angle, a, b float64) bool {
	if a < b {
		return a <= angle && angle <= b
	}
	return a <= angle || angle <= b
}

func roundIndex(hue float64) int {
	return int(math.Floor(hue + 0.5))
}

func wrapIndex(index, size int) int {
	for index < 0 {
		index += size
	}
	if index >= size {
		index %= size
	}
	return index
}
