package dynamiccolor

import (
	"strings"

	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// ColorSpec2025 is the 2025 ruleset. It adds dim roles, chroma multipliers
// and watch support, and resolves tone delta pairs with explicit
// constraints. Roles it does not redefine keep their 2021 recipe.
//
// Every role it returns also serves 2021 schemes: the 2025 recipe applies
// only when the scheme's spec version is 2025.
type ColorSpec2025 struct {
	ColorSpec2021
}

var _ ColorSpec = ColorSpec2025{}

func isPhone(s *DynamicScheme) bool { return s.Platform == PlatformPhone }

// contrastCurve2025 returns the standard curve starting at defaultContrast.
func contrastCurve2025(defaultContrast float64) *ContrastCurve {
	switch defaultContrast {
	case 1.5:
		return NewContrastCurve(1.5, 1.5, 3, 4.5)
	case 3:
		return NewContrastCurve(3, 3, 4.5, 7)
	case 4.5:
		return NewContrastCurve(4.5, 4.5, 7, 11)
	case 6:
		return NewContrastCurve(6, 6, 7, 11)
	case 7:
		return NewContrastCurve(7, 7, 11, 21)
	case 9:
		return NewContrastCurve(9, 9, 11, 21)
	case 11:
		return NewContrastCurve(11, 11, 21, 21)
	case 21:
		return NewContrastCurve(21, 21, 21, 21)
	default:
		return NewContrastCurve(defaultContrast, defaultContrast, 7, 21)
	}
}

func curve2025(defaultContrast float64) func(*DynamicScheme) *ContrastCurve {
	cc := contrastCurve2025(defaultContrast)
	return func(*DynamicScheme) *ContrastCurve { return cc }
}

// phoneCurve picks the curve by platform.
func phoneCurve(phone, watch float64) func(*DynamicScheme) *ContrastCurve {
	return func(s *DynamicScheme) *ContrastCurve {
		if isPhone(s) {
			return contrastCurve2025(phone)
		}
		return contrastCurve2025(watch)
	}
}

// containerCurve applies only when raising contrast on a phone.
func containerCurve(s *DynamicScheme) *ContrastCurve {
	if isPhone(s) && s.ContrastLevel > 0 {
		return contrastCurve2025(1.5)
	}
	return nil
}

// extend2025 merges the 2025 recipe into the 2021 role of the same name.
func extend2025(base, color2025 *DynamicColor) *DynamicColor {
	return base.ToBuilder().ExtendSpecVersion(Spec2025, color2025).MustBuild()
}

func (c ColorSpec2025) HighestSurface(s *DynamicScheme) *DynamicColor {
	if s.IsDark {
		return c.SurfaceBright()
	}
	return c.SurfaceDim()
}

// phoneHighestSurface is the background of most foreground roles: the highest
// surface on phones, surface_container_high on watches.
func (c ColorSpec2025) phoneHighestSurface(s *DynamicScheme) *DynamicColor {
	if isPhone(s) {
		return c.HighestSurface(s)
	}
	return c.SurfaceContainerHigh()
}

func (c ColorSpec2025) phoneHighestSurfaceOnly(s *DynamicScheme) *DynamicColor {
	if isPhone(s) {
		return c.HighestSurface(s)
	}
	return nil
}

// Surfaces

func (c ColorSpec2025) Background() *DynamicColor {
	color2025 := c.Surface().ToBuilder().Name("background").MustBuild()
	return extend2025(c.ColorSpec2021.Background(), color2025)
}

func (c ColorSpec2025) OnBackground() *DynamicColor {
	color2025 := c.OnSurface().ToBuilder().
		Name("on_background").
		Tone(func(s *DynamicScheme) float64 {
			if s.Platform == PlatformWatch {
				return 100
			}
			return c.OnSurface().GetTone(s)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnBackground(), color2025)
}

// surfaceTone picks a light surface tone by neutral hue and variant.
func surfaceTone(s *DynamicScheme, yellow, vibrant, other float64) float64 {
	switch {
	case hct.IsYellow(s.NeutralPalette.Hue()):
		return yellow
	case s.Variant == VariantVibrant:
		return vibrant
	default:
		return other
	}
}

// surfaceChroma picks a chroma multiplier by variant, with a separate value
// for expressive schemes on yellow neutrals.
func surfaceChroma(s *DynamicScheme, neutral, tonalSpot, expressiveYellow, expressive, vibrant float64) float64 {
	switch s.Variant {
	case VariantNeutral:
		return neutral
	case VariantTonalSpot:
		return tonalSpot
	case VariantExpressive:
		if hct.IsYellow(s.NeutralPalette.Hue()) {
			return expressiveYellow
		}
		return expressive
	case VariantVibrant:
		return vibrant
	}
	return 1
}

func (c ColorSpec2025) Surface() *DynamicColor {
	color2025 := NewBuilder().
		Name("surface").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if !isPhone(s) {
				return 0
			}
			if s.IsDark {
				return 4
			}
			return surfaceTone(s, 99, 97, 98)
		}).
		IsBackground(true).
		MustBuild()
	return extend2025(c.ColorSpec2021.Surface(), color2025)
}

func (c ColorSpec2025) SurfaceDim() *DynamicColor {
	color2025 := NewBuilder().
		Name("surface_dim").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.IsDark {
				return 4
			}
			return surfaceTone(s, 90, 85, 87)
		}).
		IsBackground(true).
		ChromaMultiplier(func(s *DynamicScheme) float64 {
			if s.IsDark {
				return 1
			}
			return surfaceChroma(s, 2.5, 1.7, 2.7, 1.75, 1.36)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceDim(), color2025)
}

func (c ColorSpec2025) SurfaceBright() *DynamicColor {
	color2025 := NewBuilder().
		Name("surface_bright").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.IsDark {
				return 18
			}
			return surfaceTone(s, 99, 97, 98)
		}).
		IsBackground(true).
		ChromaMultiplier(func(s *DynamicScheme) float64 {
			if !s.IsDark {
				return 1
			}
			return surfaceChroma(s, 2.5, 1.7, 2.7, 1.75, 1.36)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceBright(), color2025)
}

func (c ColorSpec2025) SurfaceContainerLowest() *DynamicColor {
	color2025 := NewBuilder().
		Name("surface_container_lowest").
		Palette(neutralPalette).
		Tone(darkLightTone(0, 100)).
		IsBackground(true).
		MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceContainerLowest(), color2025)
}

// surfaceContainer2025 builds a phone-tinted surface container. Watches use a
// fixed dark tone and no chroma boost.
func surfaceContainer2025(name string, dark, yellow, vibrant, other, watch float64, chroma func(*DynamicScheme) float64) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if !isPhone(s) {
				return watch
			}
			if s.IsDark {
				return dark
			}
			return surfaceTone(s, yellow, vibrant, other)
		}).
		IsBackground(true).
		ChromaMultiplier(func(s *DynamicScheme) float64 {
			if !isPhone(s) {
				return 1
			}
			return chroma(s)
		}).
		MustBuild()
}

func (c ColorSpec2025) SurfaceContainerLow() *DynamicColor {
	color2025 := surfaceContainer2025("surface_container_low", 6, 98, 95, 96, 15,
		func(s *DynamicScheme) float64 { return surfaceChroma(s, 1.3, 1.25, 1.3, 1.15, 1.08) })
	return extend2025(c.ColorSpec2021.SurfaceContainerLow(), color2025)
}

func (c ColorSpec2025) SurfaceContainer() *DynamicColor {
	color2025 := surfaceContainer2025("surface_container", 9, 96, 92, 94, 20,
		func(s *DynamicScheme) float64 { return surfaceChroma(s, 1.6, 1.4, 1.6, 1.3, 1.15) })
	return extend2025(c.ColorSpec2021.SurfaceContainer(), color2025)
}

func (c ColorSpec2025) SurfaceContainerHigh() *DynamicColor {
	color2025 := surfaceContainer2025("surface_container_high", 12, 94, 90, 92, 25,
		func(s *DynamicScheme) float64 { return surfaceChroma(s, 1.9, 1.5, 1.95, 1.45, 1.22) })
	return extend2025(c.ColorSpec2021.SurfaceContainerHigh(), color2025)
}

func (c ColorSpec2025) SurfaceContainerHighest() *DynamicColor {
	color2025 := NewBuilder().
		Name("surface_container_highest").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.IsDark {
				return 15
			}
			return surfaceTone(s, 92, 88, 90)
		}).
		IsBackground(true).
		ChromaMultiplier(func(s *DynamicScheme) float64 {
			return surfaceChroma(s, 2.2, 1.7, 2.3, 1.6, 1.29)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceContainerHighest(), color2025)
}

// onSurfaceChroma is the chroma multiplier shared by on-surface and outline
// roles on phones.
func onSurfaceChroma(s *DynamicScheme) float64 {
	if !isPhone(s) {
		return 1
	}
	switch s.Variant {
	case VariantNeutral:
		return 2.2
	case VariantTonalSpot:
		return 1.7
	case VariantExpressive:
		if hct.IsYellow(s.NeutralPalette.Hue()) {
			return darkLight(s, 3.0, 2.3)
		}
		return 1.6
	}
	return 1
}

func (c ColorSpec2025) OnSurface() *DynamicColor {
	initial := GetInitialToneFromBackground(c.phoneHighestSurface)
	color2025 := NewBuilder().
		Name("on_surface").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.Variant == VariantVibrant {
				return tMaxC(s.NeutralPalette, 0, 100, 1.1)
			}
			return initial(s)
		}).
		ChromaMultiplier(onSurfaceChroma).
		Background(c.phoneHighestSurface).
		ContrastCurve(func(s *DynamicScheme) *ContrastCurve {
			if s.IsDark && isPhone(s) {
				return contrastCurve2025(11)
			}
			return contrastCurve2025(9)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnSurface(), color2025)
}

func (c ColorSpec2025) SurfaceVariant() *DynamicColor {
	color2025 := c.SurfaceContainerHighest().ToBuilder().Name("surface_variant").MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceVariant(), color2025)
}

func (c ColorSpec2025) OnSurfaceVariant() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_surface_variant").
		Palette(neutralPalette).
		ChromaMultiplier(onSurfaceChroma).
		Background(c.phoneHighestSurface).
		ContrastCurve(func(s *DynamicScheme) *ContrastCurve {
			if isPhone(s) {
				return contrastCurve2025(darkLight(s, 6, 4.5))
			}
			return contrastCurve2025(7)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnSurfaceVariant(), color2025)
}

func (c ColorSpec2025) InverseSurface() *DynamicColor {
	color2025 := NewBuilder().
		Name("inverse_surface").
		Palette(neutralPalette).
		Tone(darkLightTone(98, 4)).
		ChromaMultiplier(func(s *DynamicScheme) float64 {
			return surfaceChroma(s, 2.2, 1.7, 2.3, 1.6, 1)
		}).
		IsBackground(true).
		MustBuild()
	return extend2025(c.ColorSpec2021.InverseSurface(), color2025)
}

func (c ColorSpec2025) InverseOnSurface() *DynamicColor {
	color2025 := NewBuilder().
		Name("inverse_on_surface").
		Palette(neutralPalette).
		Background(role(c.InverseSurface)).
		ContrastCurve(curve2025(7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.InverseOnSurface(), color2025)
}

func (c ColorSpec2025) Outline() *DynamicColor {
	color2025 := NewBuilder().
		Name("outline").
		Palette(neutralPalette).
		ChromaMultiplier(onSurfaceChroma).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(3, 4.5)).
		MustBuild()
	return extend2025(c.ColorSpec2021.Outline(), color2025)
}

func (c ColorSpec2025) OutlineVariant() *DynamicColor {
	color2025 := NewBuilder().
		Name("outline_variant").
		Palette(neutralPalette).
		ChromaMultiplier(onSurfaceChroma).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(1.5, 3)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OutlineVariant(), color2025)
}

func (c ColorSpec2025) SurfaceTint() *DynamicColor {
	color2025 := c.Primary().ToBuilder().Name("surface_tint").MustBuild()
	return extend2025(c.ColorSpec2021.SurfaceTint(), color2025)
}

// Primaries

func (c ColorSpec2025) Primary() *DynamicColor {
	color2025 := NewBuilder().
		Name("primary").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.PrimaryPalette
			switch s.Variant {
			case VariantNeutral:
				if isPhone(s) {
					return darkLight(s, 80, 40)
				}
				return 90
			case VariantTonalSpot:
				if isPhone(s) {
					if s.IsDark {
						return 80
					}
					return tMaxC(p, 0, 100, 1)
				}
				return tMaxC(p, 0, 90, 1)
			case VariantExpressive:
				if !isPhone(s) {
					return tMaxC(p, 0, 100, 1)
				}
				upper := 98.0
				if hct.IsYellow(p.Hue()) {
					upper = 25
				} else if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 0, upper, 1)
			default:
				if !isPhone(s) {
					return tMaxC(p, 0, 100, 1)
				}
				upper := 98.0
				if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 0, upper, 1)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(4.5, 7)).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if !isPhone(s) {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.PrimaryContainer(), c.Primary(), 5, PolarityRelativeLighter, ConstraintFarther)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.Primary(), color2025)
}

func (c ColorSpec2025) PrimaryDim() *DynamicColor {
	return NewBuilder().
		Name("primary_dim").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch s.Variant {
			case VariantNeutral:
				return 85
			case VariantTonalSpot:
				return tMaxC(s.PrimaryPalette, 0, 90, 1)
			default:
				return tMaxC(s.PrimaryPalette, 0, 100, 1)
			}
		}).
		IsBackground(true).
		Background(role(c.SurfaceContainerHigh)).
		ContrastCurve(curve2025(4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPairWithConstraint(c.PrimaryDim(), c.Primary(), 5, PolarityDarker, ConstraintFarther)
		}).
		MustBuild()
}

func (c ColorSpec2025) OnPrimary() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_primary").
		Palette(primaryPalette).
		Background(func(s *DynamicScheme) *DynamicColor {
			if isPhone(s) {
				return c.Primary()
			}
			return c.PrimaryDim()
		}).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnPrimary(), color2025)
}

func (c ColorSpec2025) PrimaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("primary_container").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.PrimaryPalette
			if s.Platform == PlatformWatch {
				return 30
			}
			switch s.Variant {
			case VariantNeutral:
				return darkLight(s, 30, 90)
			case VariantTonalSpot:
				if s.IsDark {
					return tMinC(p, 35, 93)
				}
				return tMaxC(p, 0, 90, 1)
			case VariantExpressive:
				if s.IsDark {
					return tMaxC(p, 30, 93, 1)
				}
				upper := 90.0
				if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 78, upper, 1)
			default:
				if s.IsDark {
					return tMinC(p, 66, 93)
				}
				upper := 93.0
				if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 66, upper, 1)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurfaceOnly).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if s.Platform != PlatformWatch {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.PrimaryContainer(), c.PrimaryDim(), 10, PolarityDarker, ConstraintFarther)
		}).
		ContrastCurve(containerCurve).
		MustBuild()
	return extend2025(c.ColorSpec2021.PrimaryContainer(), color2025)
}

func (c ColorSpec2025) OnPrimaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_primary_container").
		Palette(primaryPalette).
		Background(role(c.PrimaryContainer)).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnPrimaryContainer(), color2025)
}

func (c ColorSpec2025) InversePrimary() *DynamicColor {
	color2025 := NewBuilder().
		Name("inverse_primary").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 { return tMaxC(s.PrimaryPalette, 0, 100, 1) }).
		Background(role(c.InverseSurface)).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.InversePrimary(), color2025)
}

// Secondaries

func (c ColorSpec2025) Secondary() *DynamicColor {
	color2025 := NewBuilder().
		Name("secondary").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.SecondaryPalette
			if s.Platform == PlatformWatch {
				if s.Variant == VariantNeutral {
					return 90
				}
				return tMaxC(p, 0, 90, 1)
			}
			switch s.Variant {
			case VariantNeutral:
				if s.IsDark {
					return tMinC(p, 0, 98)
				}
				return tMaxC(p, 0, 100, 1)
			case VariantVibrant:
				return tMaxC(p, 0, darkLight(s, 90, 98), 1)
			default:
				if s.IsDark {
					return 80
				}
				return tMaxC(p, 0, 100, 1)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(4.5, 7)).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if !isPhone(s) {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.SecondaryContainer(), c.Secondary(), 5, PolarityRelativeLighter, ConstraintFarther)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.Secondary(), color2025)
}

func (c ColorSpec2025) SecondaryDim() *DynamicColor {
	return NewBuilder().
		Name("secondary_dim").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.Variant == VariantNeutral {
				return 85
			}
			return tMaxC(s.SecondaryPalette, 0, 90, 1)
		}).
		IsBackground(true).
		Background(role(c.SurfaceContainerHigh)).
		ContrastCurve(curve2025(4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPairWithConstraint(c.SecondaryDim(), c.Secondary(), 5, PolarityDarker, ConstraintFarther)
		}).
		MustBuild()
}

func (c ColorSpec2025) OnSecondary() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_secondary").
		Palette(secondaryPalette).
		Background(func(s *DynamicScheme) *DynamicColor {
			if isPhone(s) {
				return c.Secondary()
			}
			return c.SecondaryDim()
		}).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnSecondary(), color2025)
}

func (c ColorSpec2025) SecondaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("secondary_container").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.SecondaryPalette
			if s.Platform == PlatformWatch {
				return 30
			}
			switch s.Variant {
			case VariantVibrant:
				if s.IsDark {
					return tMinC(p, 30, 40)
				}
				return tMaxC(p, 84, 90, 1)
			case VariantExpressive:
				if s.IsDark {
					return 15
				}
				return tMaxC(p, 90, 95, 1)
			default:
				return darkLight(s, 25, 90)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurfaceOnly).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if s.Platform != PlatformWatch {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.SecondaryContainer(), c.SecondaryDim(), 10, PolarityDarker, ConstraintFarther)
		}).
		ContrastCurve(containerCurve).
		MustBuild()
	return extend2025(c.ColorSpec2021.SecondaryContainer(), color2025)
}

func (c ColorSpec2025) OnSecondaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_secondary_container").
		Palette(secondaryPalette).
		Background(role(c.SecondaryContainer)).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnSecondaryContainer(), color2025)
}

// Tertiaries

func (c ColorSpec2025) Tertiary() *DynamicColor {
	color2025 := NewBuilder().
		Name("tertiary").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.TertiaryPalette
			if s.Platform == PlatformWatch {
				if s.Variant == VariantTonalSpot {
					return tMaxC(p, 0, 90, 1)
				}
				return tMaxC(p, 0, 100, 1)
			}
			switch s.Variant {
			case VariantExpressive, VariantVibrant:
				upper := darkLight(s, 98, 100)
				if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 0, upper, 1)
			default:
				if s.IsDark {
					return tMaxC(p, 0, 98, 1)
				}
				return tMaxC(p, 0, 100, 1)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(4.5, 7)).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if !isPhone(s) {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.TertiaryContainer(), c.Tertiary(), 5, PolarityRelativeLighter, ConstraintFarther)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.Tertiary(), color2025)
}

func tertiaryDimTone(s *DynamicScheme) float64 {
	if s.Variant == VariantTonalSpot {
		return tMaxC(s.TertiaryPalette, 0, 90, 1)
	}
	return tMaxC(s.TertiaryPalette, 0, 100, 1)
}

func (c ColorSpec2025) TertiaryDim() *DynamicColor {
	return NewBuilder().
		Name("tertiary_dim").
		Palette(tertiaryPalette).
		Tone(tertiaryDimTone).
		IsBackground(true).
		Background(role(c.SurfaceContainerHigh)).
		ContrastCurve(curve2025(4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPairWithConstraint(c.TertiaryDim(), c.Tertiary(), 5, PolarityDarker, ConstraintFarther)
		}).
		MustBuild()
}

func (c ColorSpec2025) OnTertiary() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_tertiary").
		Palette(tertiaryPalette).
		Background(func(s *DynamicScheme) *DynamicColor {
			if isPhone(s) {
				return c.Tertiary()
			}
			return c.TertiaryDim()
		}).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnTertiary(), color2025)
}

func (c ColorSpec2025) TertiaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("tertiary_container").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.TertiaryPalette
			if s.Platform == PlatformWatch {
				return tertiaryDimTone(s)
			}
			switch s.Variant {
			case VariantNeutral:
				if s.IsDark {
					return tMaxC(p, 0, 93, 1)
				}
				return tMaxC(p, 0, 96, 1)
			case VariantTonalSpot:
				return tMaxC(p, 0, darkLight(s, 93, 100), 1)
			case VariantExpressive:
				upper := darkLight(s, 93, 100)
				if hct.IsCyan(p.Hue()) {
					upper = 88
				}
				return tMaxC(p, 75, upper, 1)
			default:
				if s.IsDark {
					return tMaxC(p, 0, 93, 1)
				}
				return tMaxC(p, 72, 100, 1)
			}
		}).
		IsBackground(true).
		Background(c.phoneHighestSurfaceOnly).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if s.Platform != PlatformWatch {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.TertiaryContainer(), c.TertiaryDim(), 10, PolarityDarker, ConstraintFarther)
		}).
		ContrastCurve(containerCurve).
		MustBuild()
	return extend2025(c.ColorSpec2021.TertiaryContainer(), color2025)
}

func (c ColorSpec2025) OnTertiaryContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_tertiary_container").
		Palette(tertiaryPalette).
		Background(role(c.TertiaryContainer)).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnTertiaryContainer(), color2025)
}

// Errors

func (c ColorSpec2025) Error() *DynamicColor {
	color2025 := NewBuilder().
		Name("error").
		Palette(errorPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.ErrorPalette
			if !isPhone(s) {
				return tMinC(p, 0, 100)
			}
			if s.IsDark {
				return tMinC(p, 0, 98)
			}
			return tMaxC(p, 0, 100, 1)
		}).
		IsBackground(true).
		Background(c.phoneHighestSurface).
		ContrastCurve(phoneCurve(4.5, 7)).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if !isPhone(s) {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.ErrorContainer(), c.Error(), 5, PolarityRelativeLighter, ConstraintFarther)
		}).
		MustBuild()
	return extend2025(c.ColorSpec2021.Error(), color2025)
}

func (c ColorSpec2025) ErrorDim() *DynamicColor {
	return NewBuilder().
		Name("error_dim").
		Palette(errorPalette).
		Tone(func(s *DynamicScheme) float64 { return tMinC(s.ErrorPalette, 0, 100) }).
		IsBackground(true).
		Background(role(c.SurfaceContainerHigh)).
		ContrastCurve(curve2025(4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPairWithConstraint(c.ErrorDim(), c.Error(), 5, PolarityDarker, ConstraintFarther)
		}).
		MustBuild()
}

func (c ColorSpec2025) OnError() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_error").
		Palette(errorPalette).
		Background(func(s *DynamicScheme) *DynamicColor {
			if isPhone(s) {
				return c.Error()
			}
			return c.ErrorDim()
		}).
		ContrastCurve(phoneCurve(6, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnError(), color2025)
}

func (c ColorSpec2025) ErrorContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("error_container").
		Palette(errorPalette).
		Tone(func(s *DynamicScheme) float64 {
			p := s.ErrorPalette
			if s.Platform == PlatformWatch {
				return 30
			}
			if s.IsDark {
				return tMinC(p, 30, 93)
			}
			return tMaxC(p, 0, 90, 1)
		}).
		IsBackground(true).
		Background(c.phoneHighestSurfaceOnly).
		ToneDeltaPair(func(s *DynamicScheme) *ToneDeltaPair {
			if s.Platform != PlatformWatch {
				return nil
			}
			return NewToneDeltaPairWithConstraint(c.ErrorContainer(), c.ErrorDim(), 10, PolarityDarker, ConstraintFarther)
		}).
		ContrastCurve(containerCurve).
		MustBuild()
	return extend2025(c.ColorSpec2021.ErrorContainer(), color2025)
}

func (c ColorSpec2025) OnErrorContainer() *DynamicColor {
	color2025 := NewBuilder().
		Name("on_error_container").
		Palette(errorPalette).
		Background(role(c.ErrorContainer)).
		ContrastCurve(phoneCurve(4.5, 7)).
		MustBuild()
	return extend2025(c.ColorSpec2021.OnErrorContainer(), color2025)
}

// Fixed colours take the light, standard contrast container tone so they look
// the same in every scheme derived from one source.

func fixed2025(name string, palette func(*DynamicScheme) *palettes.TonalPalette, container func() *DynamicColor, background func(*DynamicScheme) *DynamicColor) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(palette).
		Tone(func(s *DynamicScheme) float64 {
			return container().GetTone(From(s, false, 0))
		}).
		IsBackground(true).
		Background(background).
		ContrastCurve(containerCurve).
		MustBuild()
}

func fixedDim2025(name string, palette func(*DynamicScheme) *palettes.TonalPalette, fixed, fixedDim func() *DynamicColor) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(palette).
		Tone(func(s *DynamicScheme) float64 { return fixed().GetTone(s) }).
		IsBackground(true).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPairWithConstraint(fixedDim(), fixed(), 5, PolarityDarker, ConstraintExact)
		}).
		MustBuild()
}

func onFixed2025(name string, palette func(*DynamicScheme) *palettes.TonalPalette, fixedDim func() *DynamicColor, defaultContrast float64) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(palette).
		Background(role(fixedDim)).
		ContrastCurve(curve2025(defaultContrast)).
		MustBuild()
}

func (c ColorSpec2025) PrimaryFixed() *DynamicColor {
	color2025 := fixed2025("primary_fixed", primaryPalette, c.PrimaryContainer, c.phoneHighestSurfaceOnly)
	return extend2025(c.ColorSpec2021.PrimaryFixed(), color2025)
}

func (c ColorSpec2025) PrimaryFixedDim() *DynamicColor {
	color2025 := fixedDim2025("primary_fixed_dim", primaryPalette, c.PrimaryFixed, c.PrimaryFixedDim)
	return extend2025(c.ColorSpec2021.PrimaryFixedDim(), color2025)
}

func (c ColorSpec2025) OnPrimaryFixed() *DynamicColor {
	color2025 := onFixed2025("on_primary_fixed", primaryPalette, c.PrimaryFixedDim, 7)
	return extend2025(c.ColorSpec2021.OnPrimaryFixed(), color2025)
}

func (c ColorSpec2025) OnPrimaryFixedVariant() *DynamicColor {
	color2025 := onFixed2025("on_primary_fixed_variant", primaryPalette, c.PrimaryFixedDim, 4.5)
	return extend2025(c.ColorSpec2021.OnPrimaryFixedVariant(), color2025)
}

func (c ColorSpec2025) SecondaryFixed() *DynamicColor {
	color2025 := fixed2025("secondary_fixed", secondaryPalette, c.SecondaryContainer, c.phoneHighestSurfaceOnly)
	return extend2025(c.ColorSpec2021.SecondaryFixed(), color2025)
}

func (c ColorSpec2025) SecondaryFixedDim() *DynamicColor {
	color2025 := fixedDim2025("secondary_fixed_dim", secondaryPalette, c.SecondaryFixed, c.SecondaryFixedDim)
	return extend2025(c.ColorSpec2021.SecondaryFixedDim(), color2025)
}

func (c ColorSpec2025) OnSecondaryFixed() *DynamicColor {
	color2025 := onFixed2025("on_secondary_fixed", secondaryPalette, c.SecondaryFixedDim, 7)
	return extend2025(c.ColorSpec2021.OnSecondaryFixed(), color2025)
}

func (c ColorSpec2025) OnSecondaryFixedVariant() *DynamicColor {
	color2025 := onFixed2025("on_secondary_fixed_variant", secondaryPalette, c.SecondaryFixedDim, 4.5)
	return extend2025(c.ColorSpec2021.OnSecondaryFixedVariant(), color2025)
}

func (c ColorSpec2025) TertiaryFixed() *DynamicColor {
	color2025 := fixed2025("tertiary_fixed", tertiaryPalette, c.TertiaryContainer, c.phoneHighestSurfaceOnly)
	return extend2025(c.ColorSpec2021.TertiaryFixed(), color2025)
}

func (c ColorSpec2025) TertiaryFixedDim() *DynamicColor {
	color2025 := fixedDim2025("tertiary_fixed_dim", tertiaryPalette, c.TertiaryFixed, c.TertiaryFixedDim)
	return extend2025(c.ColorSpec2021.TertiaryFixedDim(), color2025)
}

func (c ColorSpec2025) OnTertiaryFixed() *DynamicColor {
	color2025 := onFixed2025("on_tertiary_fixed", tertiaryPalette, c.TertiaryFixedDim, 7)
	return extend2025(c.ColorSpec2021.OnTertiaryFixed(), color2025)
}

func (c ColorSpec2025) OnTertiaryFixedVariant() *DynamicColor {
	color2025 := onFixed2025("on_tertiary_fixed_variant", tertiaryPalette, c.TertiaryFixedDim, 4.5)
	return extend2025(c.ColorSpec2021.OnTertiaryFixedVariant(), color2025)
}

// Android-only colours follow the 2025 role they stand in for.

func (c ColorSpec2025) ControlActivated() *DynamicColor {
	color2025 := c.PrimaryContainer().ToBuilder().Name("control_activated").MustBuild()
	return extend2025(c.ColorSpec2021.ControlActivated(), color2025)
}

func (c ColorSpec2025) ControlNormal() *DynamicColor {
	color2025 := c.OnSurfaceVariant().ToBuilder().Name("control_normal").MustBuild()
	return extend2025(c.ColorSpec2021.ControlNormal(), color2025)
}

func (c ColorSpec2025) TextPrimaryInverse() *DynamicColor {
	color2025 := c.InverseOnSurface().ToBuilder().Name("text_primary_inverse").MustBuild()
	return extend2025(c.ColorSpec2021.TextPrimaryInverse(), color2025)
}

func (c ColorSpec2025) TextSecondaryAndTertiaryInverse() *DynamicColor {
	color2025 := c.OnSurfaceVariant().ToBuilder().Name("text_secondary_and_tertiary_inverse").MustBuild()
	return extend2025(c.ColorSpec2021.TextSecondaryAndTertiaryInverse(), color2025)
}

func (c ColorSpec2025) TextPrimaryInverseDisableOnly() *DynamicColor {
	color2025 := c.InverseOnSurface().ToBuilder().Name("text_primary_inverse_disable_only").MustBuild()
	return extend2025(c.ColorSpec2021.TextPrimaryInverseDisableOnly(), color2025)
}

func (c ColorSpec2025) TextSecondaryAndTertiaryInverseDisabled() *DynamicColor {
	color2025 := c.InverseOnSurface().ToBuilder().Name("text_secondary_and_tertiary_inverse_disabled").MustBuild()
	return extend2025(c.ColorSpec2021.TextSecondaryAndTertiaryInverseDisabled(), color2025)
}

func (c ColorSpec2025) TextHintInverse() *DynamicColor {
	color2025 := c.InverseOnSurface().ToBuilder().Name("text_hint_inverse").MustBuild()
	return extend2025(c.ColorSpec2021.TextHintInverse(), color2025)
}

// GetHct resolves the tone of color and renders it at the palette's hue and
// chroma, scaled by the role's chroma multiplier.
func (c ColorSpec2025) GetHct(s *DynamicScheme, color *DynamicColor) hct.HCT {
	palette := color.Palette(s)
	tone := c.GetTone(s, color)
	return hct.From(palette.Hue(), palette.Chroma()*color.ChromaMultiplier(s), tone)
}

// GetTone resolves the tone of color in s.
//
// A role in a tone delta pair is placed relative to its partner's resolved
// tone under the pair's constraint, then held to its own contrast minimum.
// Background roles always avoid tones between 49 and 65, except the fixed dim
// roles, which must track their fixed partner exactly.
func (ColorSpec2025) GetTone(s *DynamicScheme, color *DynamicColor) float64 {
	if pair := color.ToneDeltaPair(s); pair != nil {
		absoluteDelta := pair.Delta
		if pair.Polarity == PolarityDarker ||
			(pair.Polarity == PolarityRelativeLighter && s.IsDark) ||
			(pair.Polarity == PolarityRelativeDarker && !s.IsDark) {
			absoluteDelta = -pair.Delta
		}

		amRoleA := color.name == pair.RoleA.name
		selfRole, refRole := pair.RoleB, pair.RoleA
		relativeDelta := -absoluteDelta
		if amRoleA {
			selfRole, refRole = pair.RoleA, pair.RoleB
			relativeDelta = absoluteDelta
		}
		selfTone := selfRole.tone(s)
		refTone := refRole.GetTone(s)

		switch pair.Constraint {
		case ConstraintExact:
			selfTone = hct.Clamp(0, 100, refTone+relativeDelta)
		case ConstraintNearer:
			if relativeDelta > 0 {
				selfTone = hct.Clamp(0, 100, hct.Clamp(refTone, refTone+relativeDelta, selfTone))
			} else {
				selfTone = hct.Clamp(0, 100, hct.Clamp(refTone+relativeDelta, refTone, selfTone))
			}
		case ConstraintFarther:
			if relativeDelta > 0 {
				selfTone = hct.Clamp(refTone+relativeDelta, 100, selfTone)
			} else {
				selfTone = hct.Clamp(0, refTone+relativeDelta, selfTone)
			}
		}

		if bg, cc := color.Background(s), color.ContrastCurve(s); bg != nil && cc != nil {
			bgTone := bg.GetTone(s)
			selfContrast := cc.Get(s.ContrastLevel)
			if contrast.RatioOfTones(bgTone, selfTone) < selfContrast || s.ContrastLevel < 0 {
				selfTone = ForegroundTone(bgTone, selfContrast)
			}
		}

		return avoidAwkwardTones2025(color, selfTone)
	}

	answer := color.tone(s)

	bg := color.Background(s)
	cc := color.ContrastCurve(s)
	if bg == nil || cc == nil {
		return answer
	}

	bgTone := bg.GetTone(s)
	desiredRatio := cc.Get(s.ContrastLevel)

	// Recalculate from the desired ratio when the current ratio falls short
	// or contrast is being reduced.
	if contrast.RatioOfTones(bgTone, answer) < desiredRatio || s.ContrastLevel < 0 {
		answer = ForegroundTone(bgTone, desiredRatio)
	}

	answer = avoidAwkwardTones2025(color, answer)

	second := color.SecondBackground(s)
	if second == nil {
		return answer
	}
	return dualBackgroundTone(answer, bgTone, second.GetTone(s), desiredRatio)
}

// avoidAwkwardTones2025 keeps background roles out of [49, 65), snapping to
// whichever side tone is nearer to using 57 as the pivot.
func avoidAwkwardTones2025(color *DynamicColor, tone float64) float64 {
	if !color.isBackground || strings.HasSuffix(color.name, "_fixed_dim") {
		return tone
	}
	if tone >= 57 {
		return hct.Clamp(65, 100, tone)
	}
	return hct.Clamp(0, 49, tone)
}

// tMaxC returns the tone at which palette reaches its chroma (scaled by
// chromaMultiplier), searching down from white, clamped to [lower, upper].
func tMaxC(palette *palettes.TonalPalette, lower, upper, chromaMultiplier float64) float64 {
	answer := findBestToneForChroma(palette.Hue(), palette.Chroma()*chromaMultiplier, 100, true)
	return hct.Clamp(lower, upper, answer)
}

// tMinC is tMaxC searching up from black.
func tMinC(palette *palettes.TonalPalette, lower, upper float64) float64 {
	answer := findBestToneForChroma(palette.Hue(), palette.Chroma(), 0, false)
	return hct.Clamp(lower, upper, answer)
}

// findBestToneForChroma walks tone one step at a time from tone, keeping the
// tone with the highest chroma seen, until the requested chroma is met or
// tone leaves [0, 100].
func findBestToneForChroma(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	best := hct.From(hue, chroma, answer)
	step := 1.0
	if byDecreasingTone {
		step = -1
	}
	for best.Chroma() < chroma {
		if tone < 0 || tone > 100 {
			break
		}
		tone += step
		candidate := hct.From(hue, chroma, tone)
		if best.Chroma() < candidate.Chroma() {
			best = candidate
			answer = tone
		}
	}
	return answer
}

// Palettes

func (c ColorSpec2025) PrimaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	h := source.Hue()
	phone := platform == PlatformPhone
	switch variant {
	case VariantNeutral:
		chroma := 12.0
		if phone {
			chroma = 8
			if hct.IsBlue(h) {
				chroma = 12
			}
		} else if hct.IsBlue(h) {
			chroma = 16
		}
		return palettes.FromHueAndChroma(h, chroma)
	case VariantTonalSpot:
		if phone && isDark {
			return palettes.FromHueAndChroma(h, 26)
		}
		return palettes.FromHueAndChroma(h, 32)
	case VariantExpressive:
		if !phone {
			return palettes.FromHueAndChroma(h, 40)
		}
		if isDark {
			return palettes.FromHueAndChroma(h, 36)
		}
		return palettes.FromHueAndChroma(h, 48)
	case VariantVibrant:
		if phone {
			return palettes.FromHueAndChroma(h, 74)
		}
		return palettes.FromHueAndChroma(h, 56)
	default:
		return c.ColorSpec2021.PrimaryPalette(variant, source, isDark, platform, contrastLevel)
	}
}

func (c ColorSpec2025) SecondaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	h := source.Hue()
	phone := platform == PlatformPhone
	switch variant {
	case VariantNeutral:
		chroma := 6.0
		switch {
		case phone && hct.IsBlue(h):
			chroma = 6
		case phone:
			chroma = 4
		case hct.IsBlue(h):
			chroma = 10
		}
		return palettes.FromHueAndChroma(h, chroma)
	case VariantTonalSpot:
		return palettes.FromHueAndChroma(h, 16)
	case VariantExpressive:
		chroma := 24.0
		if phone && isDark {
			chroma = 16
		}
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 105, 140, 204, 253, 278, 300, 333, 360},
			[]float64{-160, 155, -100, 96, -96, -156, -165, -160}), chroma)
	case VariantVibrant:
		chroma := 36.0
		if phone {
			chroma = 56
		}
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 38, 105, 140, 333, 360},
			[]float64{-14, 10, -14, 10, -14}), chroma)
	default:
		return c.ColorSpec2021.SecondaryPalette(variant, source, isDark, platform, contrastLevel)
	}
}

func (c ColorSpec2025) TertiaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	phone := platform == PlatformPhone
	switch variant {
	case VariantNeutral:
		chroma := 36.0
		if phone {
			chroma = 20
		}
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 38, 105, 161, 204, 278, 333, 360},
			[]float64{-32, 26, 10, -39, 24, -15, -32}), chroma)
	case VariantTonalSpot:
		chroma := 32.0
		if phone {
			chroma = 28
		}
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 20, 71, 161, 333, 360},
			[]float64{-40, 48, -32, 40, -32}), chroma)
	case VariantExpressive:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 105, 140, 204, 253, 278, 300, 333, 360},
			[]float64{-165, 160, -105, 101, -101, -160, -170, -165}), 48)
	case VariantVibrant:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 38, 71, 105, 140, 161, 253, 333, 360},
			[]float64{-72, 35, 24, -24, 62, 50, 62, -72}), 56)
	default:
		return c.ColorSpec2021.TertiaryPalette(variant, source, isDark, platform, contrastLevel)
	}
}

func expressiveNeutralHue(source hct.HCT) float64 {
	return GetRotatedHue(source,
		[]float64{0, 71, 124, 253, 278, 300, 360},
		[]float64{10, 0, 10, 0, 10, 0})
}

func expressiveNeutralChroma(source hct.HCT, isDark bool, platform Platform) float64 {
	neutralHue := expressiveNeutralHue(source)
	if platform != PlatformPhone {
		return 12
	}
	if !isDark {
		return 18
	}
	if hct.IsYellow(neutralHue) {
		return 6
	}
	return 14
}

func vibrantNeutralHue(source hct.HCT) float64 {
	return GetRotatedHue(source,
		[]float64{0, 38, 105, 140, 333, 360},
		[]float64{-14, 10, -14, 10, -14})
}

func vibrantNeutralChroma(source hct.HCT, platform Platform) float64 {
	if platform == PlatformPhone {
		return 28
	}
	if hct.IsBlue(vibrantNeutralHue(source)) {
		return 28
	}
	return 20
}

func (c ColorSpec2025) NeutralPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	h := source.Hue()
	phone := platform == PlatformPhone
	switch variant {
	case VariantNeutral:
		if phone {
			return palettes.FromHueAndChroma(h, 1.4)
		}
		return palettes.FromHueAndChroma(h, 6)
	case VariantTonalSpot:
		if phone {
			return palettes.FromHueAndChroma(h, 5)
		}
		return palettes.FromHueAndChroma(h, 10)
	case VariantExpressive:
		return palettes.FromHueAndChroma(expressiveNeutralHue(source), expressiveNeutralChroma(source, isDark, platform))
	case VariantVibrant:
		return palettes.FromHueAndChroma(vibrantNeutralHue(source), vibrantNeutralChroma(source, platform))
	default:
		return c.ColorSpec2021.NeutralPalette(variant, source, isDark, platform, contrastLevel)
	}
}

func (c ColorSpec2025) NeutralVariantPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	h := source.Hue()
	phone := platform == PlatformPhone
	switch variant {
	case VariantNeutral:
		chroma := 6.0
		if phone {
			chroma = 1.4
		}
		return palettes.FromHueAndChroma(h, chroma*2.2)
	case VariantTonalSpot:
		chroma := 10.0
		if phone {
			chroma = 5
		}
		return palettes.FromHueAndChroma(h, chroma*1.7)
	case VariantExpressive:
		hue := expressiveNeutralHue(source)
		chroma := expressiveNeutralChroma(source, isDark, platform)
		multiplier := 2.3
		if hct.IsYellow(hue) {
			multiplier = 1.6
		}
		return palettes.FromHueAndChroma(hue, chroma*multiplier)
	case VariantVibrant:
		return palettes.FromHueAndChroma(vibrantNeutralHue(source), vibrantNeutralChroma(source, platform)*1.29)
	default:
		return c.ColorSpec2021.NeutralVariantPalette(variant, source, isDark, platform, contrastLevel)
	}
}

func (c ColorSpec2025) ErrorPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette {
	hue := GetPiecewiseValue(source,
		[]float64{0, 3, 13, 23, 33, 43, 153, 273, 360},
		[]float64{12, 22, 32, 12, 22, 32, 22, 12})
	phone := platform == PlatformPhone
	pick := func(onPhone, other float64) *palettes.TonalPalette {
		if phone {
			return palettes.FromHueAndChroma(hue, onPhone)
		}
		return palettes.FromHueAndChroma(hue, other)
	}
	switch variant {
	case VariantNeutral:
		return pick(50, 40)
	case VariantTonalSpot:
		return pick(60, 48)
	case VariantExpressive:
		return pick(64, 48)
	case VariantVibrant:
		return pick(80, 60)
	default:
		return c.ColorSpec2021.ErrorPalette(variant, source, isDark, platform, contrastLevel)
	}
}
