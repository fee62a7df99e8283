package hct

import "fmt"

// HCT is a colour expressed as CAM16 hue and chroma plus L* tone.
//
// Tone is what makes HCT useful for theming: contrast between two colours is a
// function of their tones alone, so a palette built by varying tone at a fixed
// hue and chroma has predictable contrast.
//
// HCT values are immutable; the With* methods return new colours.
type HCT struct {
	hue    float64
	chroma float64
	tone   float64
	argb   uint32
}

// From creates an HCT colour from hue, chroma and tone. The resulting colour
// may have lower chroma than requested when the request is out of gamut.
func From(hue, chroma, tone float64) HCT {
	return FromArgb(SolveToArgb(hue, chroma, tone))
}

// FromArgb creates an HCT colour from an ARGB value.
func FromArgb(argb uint32) HCT {
	cam := Cam16FromArgb(argb)
	return HCT{
		hue:    cam.Hue,
		chroma: cam.Chroma,
		tone:   LstarFromArgb(argb),
		argb:   argb,
	}
}

// FromHex parses a hex colour string into an HCT colour.
func FromHex(s string) (HCT, error) {
	argb, err := ArgbFromHex(s)
	if err != nil {
		return HCT{}, err
	}
	return FromArgb(argb), nil
}

// Hue returns the hue in degrees, [0, 360).
func (h HCT) Hue() float64 { return h.hue }

// Chroma returns the chroma.
func (h HCT) Chroma() float64 { return h.chroma }

// Tone returns the tone, [0, 100].
func (h HCT) Tone() float64 { return h.tone }

// ToArgb returns the colour as an ARGB value.
func (h HCT) ToArgb() uint32 { return h.argb }

// Hex returns the colour as #rrggbb.
func (h HCT) Hex() string { return HexFromArgb(h.argb) }

// WithHue returns the colour with a new hue, keeping chroma and tone where
// the gamut allows.
func (h HCT) WithHue(hue float64) HCT {
	return FromArgb(SolveToArgb(hue, h.chroma, h.tone))
}

// WithChroma returns the colour with a new chroma.
func (h HCT) WithChroma(chroma float64) HCT {
	return FromArgb(SolveToArgb(h.hue, chroma, h.tone))
}

// WithTone returns the colour with a new tone.
func (h HCT) WithTone(tone float64) HCT {
	return FromArgb(SolveToArgb(h.hue, h.chroma, tone))
}

// InViewingConditions translates the colour into different viewing
// conditions, returning the colour that looks the same under the default
// conditions as this one does under vc.
func (h HCT) InViewingConditions(vc ViewingConditions) HCT {
	cam := Cam16FromArgb(h.argb)
	viewed := cam.XYZInViewingConditions(vc)
	recast := Cam16FromXYZInViewingConditions(viewed[0], viewed[1], viewed[2], DefaultViewingConditions)
	return From(recast.Hue, recast.Chroma, LstarFromY(viewed[1]))
}

// String implements fmt.Stringer.
func (h HCT) String() string {
	return fmt.Sprintf("hct(%.3f, %.3f, %.3f) %s", h.hue, h.chroma, h.tone, h.Hex())
}

// IsBlue reports whether hue falls in the blue range, [250, 270).
func IsBlue(hue float64) bool { return hue >= 250 && hue < 270 }

// IsYellow reports whether hue falls in the yellow range, [105, 125).
func IsYellow(hue float64) bool { return hue >= 105 && hue < 125 }

// IsCyan reports whether hue falls in the cyan range, [170, 207).
func IsCyan(hue float64) bool { return hue >= 170 && hue < 207 }
