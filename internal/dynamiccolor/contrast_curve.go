package dynamiccolor

import "github.com/jmylchreest/tonal/internal/hct"

// ContrastCurve maps a contrast level in [-1, 1] to a target contrast ratio,
// interpolating linearly between four anchors at levels -1, 0, 0.5 and 1.
type ContrastCurve struct {
	Low    float64
	Normal float64
	Medium float64
	High   float64
}

// NewContrastCurve creates a contrast curve from its four anchors.
func NewContrastCurve(low, normal, medium, high float64) *ContrastCurve {
	return &ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}

// Get returns the contrast ratio for contrastLevel.
func (c *ContrastCurve) Get(contrastLevel float64) float64 {
	switch {
	case contrastLevel <= -1:
		return c.Low
	case contrastLevel < 0:
		return hct.Lerp(c.Low, c.Normal, contrastLevel+1)
	case contrastLevel < 0.5:
		return hct.Lerp(c.Normal, c.Medium, contrastLevel/0.5)
	case contrastLevel < 1:
		return hct.Lerp(c.Medium, c.High, (contrastLevel-0.5)/0.5)
	default:
		return c.High
	}
}
