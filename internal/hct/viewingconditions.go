package hct

import "math"

// ViewingConditions holds the environment a colour is perceived in, with the
// intermediate values CAM16 needs precomputed.
type ViewingConditions struct {
	N      float64
	Aw     float64
	Nbb    float64
	Ncb    float64
	C      float64
	Nc     float64
	RgbD   [3]float64
	Fl     float64
	FlRoot float64
	Z      float64
}

// DefaultViewingConditions are sRGB-like: D65 white, an adapting luminance of
// 11.72 cd/m², an L* 50 background and average surround.
var DefaultViewingConditions = DefaultViewingConditionsWithBackground(50)

// NewViewingConditions creates viewing conditions.
//
// whitePoint is in XYZ, adaptingLuminance in cd/m², backgroundLstar is the L*
// of the surround, surround is 0 (dark) to 2 (average) and discountingIlluminant
// marks whether the eye has fully adapted to the illuminant.
func NewViewingConditions(whitePoint [3]float64, adaptingLuminance, backgroundLstar, surround float64, discountingIlluminant bool) ViewingConditions {
	// A background of pure black is non-physical and leads to infinities.
	backgroundLstar = math.Max(0.1, backgroundLstar)

	rgbW := matrixMultiply(whitePoint, xyzToCam16RGB)

	f := 0.8 + surround/10
	var c float64
	if f >= 0.9 {
		c = Lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		c = Lerp(0.525, 0.59, (f-0.8)*10)
	}

	d := 1.0
	if !discountingIlluminant {
		d = f * (1 - (1/3.6)*math.Exp((-adaptingLuminance-42)/92))
	}
	d = Clamp(0, 1, d)
	nc := f

	var rgbD [3]float64
	for i := range rgbD {
		rgbD[i] = d*(100/rgbW[i]) + 1 - d
	}

	k := 1 / (5*adaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4
	fl := k4*adaptingLuminance + 0.1*k4F*k4F*math.Cbrt(5*adaptingLuminance)
	n := YFromLstar(backgroundLstar) / whitePoint[1]
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)
	ncb := nbb

	var rgbA [3]float64
	for i := range rgbA {
		factor := math.Pow(fl*rgbD[i]*rgbW[i]/100, 0.42)
		rgbA[i] = 400 * factor / (factor + 27.13)
	}
	aw := (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2]) * nbb

	return ViewingConditions{
		N:      n,
		Aw:     aw,
		Nbb:    nbb,
		Ncb:    ncb,
		C:      c,
		Nc:     nc,
		RgbD:   rgbD,
		Fl:     fl,
		FlRoot: math.Pow(fl, 0.25),
		Z:      z,
	}
}

// DefaultViewingConditionsWithBackground returns the default viewing
// conditions with a custom background L*.
func DefaultViewingConditionsWithBackground(lstar float64) ViewingConditions {
	return NewViewingConditions(
		WhitePointD65,
		200/math.Pi*YFromLstar(50)/100,
		lstar,
		2,
		false,
	)
}
