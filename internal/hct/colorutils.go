// Package hct implements the HCT (hue, chroma, tone) colour model: CAM16 hue and
// chroma combined with L* tone, plus the solver that maps an HCT triple back into
// the sRGB gamut.
package hct

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var srgbToXYZ = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

var xyzToSRGB = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// WhitePointD65 is the standard D65 white point in XYZ, Y normalised to 100.
var WhitePointD65 = [3]float64{95.047, 100.0, 108.883}

// ArgbFromRGB packs 8-bit red, green and blue components into an opaque ARGB value.
func ArgbFromRGB(r, g, b uint8) uint32 {
	return 0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Alpha returns the alpha component of an ARGB value.
func Alpha(argb uint32) uint8 { return uint8(argb >> 24) }

// Red returns the red component of an ARGB value.
func Red(argb uint32) uint8 { return uint8(argb >> 16) }

// Green returns the green component of an ARGB value.
func Green(argb uint32) uint8 { return uint8(argb >> 8) }

// Blue returns the blue component of an ARGB value.
func Blue(argb uint32) uint8 { return uint8(argb) }

// IsOpaque reports whether the ARGB value has full alpha.
func IsOpaque(argb uint32) bool { return Alpha(argb) == 0xff }

// ArgbFromLinRGB converts linear RGB components, each in [0, 100], to ARGB.
func ArgbFromLinRGB(linrgb [3]float64) uint32 {
	return ArgbFromRGB(Delinearized(linrgb[0]), Delinearized(linrgb[1]), Delinearized(linrgb[2]))
}

// ArgbFromXYZ converts a colour from XYZ to ARGB.
func ArgbFromXYZ(x, y, z float64) uint32 {
	lin := matrixMultiply([3]float64{x, y, z}, xyzToSRGB)
	return ArgbFromLinRGB(lin)
}

// XYZFromArgb converts a colour from ARGB to XYZ.
func XYZFromArgb(argb uint32) [3]float64 {
	lin := [3]float64{Linearized(Red(argb)), Linearized(Green(argb)), Linearized(Blue(argb))}
	return matrixMultiply(lin, srgbToXYZ)
}

// ArgbFromLab converts a colour from L*a*b* to ARGB.
func ArgbFromLab(l, a, b float64) uint32 {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x := labInvf(fx) * WhitePointD65[0]
	y := labInvf(fy) * WhitePointD65[1]
	z := labInvf(fz) * WhitePointD65[2]
	return ArgbFromXYZ(x, y, z)
}

// LabFromArgb converts a colour from ARGB to L*a*b*.
func LabFromArgb(argb uint32) [3]float64 {
	xyz := XYZFromArgb(argb)
	fx := labF(xyz[0] / WhitePointD65[0])
	fy := labF(xyz[1] / WhitePointD65[1])
	fz := labF(xyz[2] / WhitePointD65[2])
	return [3]float64{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// ArgbFromLstar returns the grey ARGB value with the given L*.
func ArgbFromLstar(lstar float64) uint32 {
	c := Delinearized(YFromLstar(lstar))
	return ArgbFromRGB(c, c, c)
}

// LstarFromArgb returns the L* of an ARGB colour.
func LstarFromArgb(argb uint32) float64 {
	return 116*labF(XYZFromArgb(argb)[1]/100) - 16
}

// YFromLstar converts an L* value to a Y value in [0, 100].
//
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance. L* is
// perceptually uniform, Y is linear.
func YFromLstar(lstar float64) float64 {
	return 100 * labInvf((lstar+16)/116)
}

// LstarFromY converts a Y value to an L* value.
func LstarFromY(y float64) float64 {
	return labF(y/100)*116 - 16
}

// Linearized converts an 8-bit sRGB component to a linear component in [0, 100].
func Linearized(component uint8) float64 {
	r, _, _ := colorful.Color{R: float64(component) / 255}.LinearRgb()
	return r * 100
}

// Delinearized converts a linear component in [0, 100] to an 8-bit sRGB component.
func Delinearized(component float64) uint8 {
	c := colorful.LinearRgb(component/100, 0, 0)
	return uint8(ClampInt(0, 255, roundHalfUp(c.R*255)))
}

// HexFromArgb formats an ARGB value as #rrggbb, ignoring alpha.
func HexFromArgb(argb uint32) string {
	c := colorful.Color{
		R: float64(Red(argb)) / 255,
		G: float64(Green(argb)) / 255,
		B: float64(Blue(argb)) / 255,
	}
	return c.Hex()
}

// ArgbFromHex parses #rgb, #rrggbb or #aarrggbb (the leading # is optional).
func ArgbFromHex(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		var a uint8
		if _, err := fmt.Sscanf(hex[:2], "%02x", &a); err != nil {
			return 0, fmt.Errorf("invalid alpha in colour %q: %w", s, err)
		}
		rgb, err := ArgbFromHex(hex[2:])
		if err != nil {
			return 0, err
		}
		return rgb&0x00ffffff | uint32(a)<<24, nil
	default:
		return 0, fmt.Errorf("invalid colour %q: expected #rgb, #rrggbb or #aarrggbb", s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return ArgbFromRGB(r, g, b), nil
}

func labF(t float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	if t > e {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}

func labInvf(ft float64) float64 {
	const e = 216.0 / 24389.0
	const kappa = 24389.0 / 27.0
	ft3 := ft * ft * ft
	if ft3 > e {
		return ft3
	}
	return (116*ft - 16) / kappa
}
