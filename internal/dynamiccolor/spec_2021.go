package dynamiccolor

import (
	"math"

	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/dislike"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
	"github.com/jmylchreest/tonal/internal/temperature"
)

// ColorSpec2021 is the original Material You ruleset.
type ColorSpec2021 struct{}

var _ ColorSpec = ColorSpec2021{}

func primaryPalette(s *DynamicScheme) *palettes.TonalPalette        { return s.PrimaryPalette }
func secondaryPalette(s *DynamicScheme) *palettes.TonalPalette      { return s.SecondaryPalette }
func tertiaryPalette(s *DynamicScheme) *palettes.TonalPalette       { return s.TertiaryPalette }
func neutralPalette(s *DynamicScheme) *palettes.TonalPalette        { return s.NeutralPalette }
func neutralVariantPalette(s *DynamicScheme) *palettes.TonalPalette { return s.NeutralVariantPalette }
func errorPalette(s *DynamicScheme) *palettes.TonalPalette          { return s.ErrorPalette }

// darkLight picks dark or light by the scheme's brightness.
func darkLight(s *DynamicScheme, dark, light float64) float64 {
	if s.IsDark {
		return dark
	}
	return light
}

func constTone(tone float64) func(*DynamicScheme) float64 {
	return func(*DynamicScheme) float64 { return tone }
}

func darkLightTone(dark, light float64) func(*DynamicScheme) float64 {
	return func(s *DynamicScheme) float64 { return darkLight(s, dark, light) }
}

func curve(low, normal, medium, high float64) func(*DynamicScheme) *ContrastCurve {
	c := NewContrastCurve(low, normal, medium, high)
	return func(*DynamicScheme) *ContrastCurve { return c }
}

func role(fn func() *DynamicColor) func(*DynamicScheme) *DynamicColor {
	return func(*DynamicScheme) *DynamicColor { return fn() }
}

func isFidelity(s *DynamicScheme) bool {
	return s.Variant == VariantFidelity || s.Variant == VariantContent
}

func isMonochrome(s *DynamicScheme) bool { return s.Variant == VariantMonochrome }

// HighestSurface returns the surface with the most contrast against
// foreground roles: surface_bright in dark schemes, surface_dim otherwise.
func (c ColorSpec2021) HighestSurface(s *DynamicScheme) *DynamicColor {
	if s.IsDark {
		return c.SurfaceBright()
	}
	return c.SurfaceDim()
}

func keyColorTone(palette func(*DynamicScheme) *palettes.TonalPalette) func(*DynamicScheme) float64 {
	return func(s *DynamicScheme) float64 { return palette(s).KeyColor().Tone() }
}

func (ColorSpec2021) PrimaryPaletteKeyColor() *DynamicColor {
	return FromPalette("primary_palette_key_color", primaryPalette, keyColorTone(primaryPalette))
}

func (ColorSpec2021) SecondaryPaletteKeyColor() *DynamicColor {
	return FromPalette("secondary_palette_key_color", secondaryPalette, keyColorTone(secondaryPalette))
}

func (ColorSpec2021) TertiaryPaletteKeyColor() *DynamicColor {
	return FromPalette("tertiary_palette_key_color", tertiaryPalette, keyColorTone(tertiaryPalette))
}

func (ColorSpec2021) NeutralPaletteKeyColor() *DynamicColor {
	return FromPalette("neutral_palette_key_color", neutralPalette, keyColorTone(neutralPalette))
}

func (ColorSpec2021) NeutralVariantPaletteKeyColor() *DynamicColor {
	return FromPalette("neutral_variant_palette_key_color", neutralVariantPalette, keyColorTone(neutralVariantPalette))
}

func (ColorSpec2021) ErrorPaletteKeyColor() *DynamicColor {
	return FromPalette("error_palette_key_color", errorPalette, keyColorTone(errorPalette))
}

// Surfaces

func (ColorSpec2021) Background() *DynamicColor {
	return NewBuilder().
		Name("background").
		Palette(neutralPalette).
		Tone(darkLightTone(6, 98)).
		IsBackground(true).
		MustBuild()
}

func (c ColorSpec2021) OnBackground() *DynamicColor {
	return NewBuilder().
		Name("on_background").
		Palette(neutralPalette).
		Tone(darkLightTone(90, 10)).
		Background(role(c.Background)).
		ContrastCurve(curve(3, 3, 4.5, 7)).
		MustBuild()
}

func (ColorSpec2021) Surface() *DynamicColor {
	return NewBuilder().
		Name("surface").
		Palette(neutralPalette).
		Tone(darkLightTone(6, 98)).
		IsBackground(true).
		MustBuild()
}

func (ColorSpec2021) SurfaceDim() *DynamicColor {
	light := NewContrastCurve(87, 87, 80, 75)
	return NewBuilder().
		Name("surface_dim").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			return darkLight(s, 6, light.Get(s.ContrastLevel))
		}).
		IsBackground(true).
		MustBuild()
}

func (ColorSpec2021) SurfaceBright() *DynamicColor {
	dark := NewContrastCurve(24, 24, 29, 34)
	return NewBuilder().
		Name("surface_bright").
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			return darkLight(s, dark.Get(s.ContrastLevel), 98)
		}).
		IsBackground(true).
		MustBuild()
}

// surfaceContainer2021 builds a surface container whose tone tracks the
// contrast level along a separate curve per brightness.
func surfaceContainer2021(name string, dark, light *ContrastCurve) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(neutralPalette).
		Tone(func(s *DynamicScheme) float64 {
			if s.IsDark {
				return dark.Get(s.ContrastLevel)
			}
			return light.Get(s.ContrastLevel)
		}).
		IsBackground(true).
		MustBuild()
}

func (ColorSpec2021) SurfaceContainerLowest() *DynamicColor {
	return surfaceContainer2021("surface_container_lowest",
		NewContrastCurve(4, 4, 2, 0), NewContrastCurve(100, 100, 100, 100))
}

func (ColorSpec2021) SurfaceContainerLow() *DynamicColor {
	return surfaceContainer2021("surface_container_low",
		NewContrastCurve(10, 10, 11, 12), NewContrastCurve(96, 96, 96, 95))
}

func (ColorSpec2021) SurfaceContainer() *DynamicColor {
	return surfaceContainer2021("surface_container",
		NewContrastCurve(12, 12, 16, 20), NewContrastCurve(94, 94, 92, 90))
}

func (ColorSpec2021) SurfaceContainerHigh() *DynamicColor {
	return surfaceContainer2021("surface_container_high",
		NewContrastCurve(17, 17, 21, 25), NewContrastCurve(92, 92, 88, 85))
}

func (ColorSpec2021) SurfaceContainerHighest() *DynamicColor {
	return surfaceContainer2021("surface_container_highest",
		NewContrastCurve(22, 22, 26, 30), NewContrastCurve(90, 90, 84, 80))
}

func (c ColorSpec2021) OnSurface() *DynamicColor {
	return NewBuilder().
		Name("on_surface").
		Palette(neutralPalette).
		Tone(darkLightTone(90, 10)).
		Background(c.HighestSurface).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (ColorSpec2021) SurfaceVariant() *DynamicColor {
	return NewBuilder().
		Name("surface_variant").
		Palette(neutralVariantPalette).
		Tone(darkLightTone(30, 90)).
		IsBackground(true).
		MustBuild()
}

func (c ColorSpec2021) OnSurfaceVariant() *DynamicColor {
	return NewBuilder().
		Name("on_surface_variant").
		Palette(neutralVariantPalette).
		Tone(darkLightTone(80, 30)).
		Background(c.HighestSurface).
		ContrastCurve(curve(3, 4.5, 7, 11)).
		MustBuild()
}

func (ColorSpec2021) InverseSurface() *DynamicColor {
	return NewBuilder().
		Name("inverse_surface").
		Palette(neutralPalette).
		Tone(darkLightTone(90, 20)).
		IsBackground(true).
		MustBuild()
}

func (c ColorSpec2021) InverseOnSurface() *DynamicColor {
	return NewBuilder().
		Name("inverse_on_surface").
		Palette(neutralPalette).
		Tone(darkLightTone(20, 95)).
		Background(role(c.InverseSurface)).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (c ColorSpec2021) Outline() *DynamicColor {
	return NewBuilder().
		Name("outline").
		Palette(neutralVariantPalette).
		Tone(darkLightTone(60, 50)).
		Background(c.HighestSurface).
		ContrastCurve(curve(1.5, 3, 4.5, 7)).
		MustBuild()
}

func (c ColorSpec2021) OutlineVariant() *DynamicColor {
	return NewBuilder().
		Name("outline_variant").
		Palette(neutralVariantPalette).
		Tone(darkLightTone(30, 80)).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		MustBuild()
}

func (ColorSpec2021) Shadow() *DynamicColor {
	return FromPalette("shadow", neutralPalette, constTone(0))
}

func (ColorSpec2021) Scrim() *DynamicColor {
	return FromPalette("scrim", neutralPalette, constTone(0))
}

func (ColorSpec2021) SurfaceTint() *DynamicColor {
	return NewBuilder().
		Name("surface_tint").
		Palette(primaryPalette).
		Tone(darkLightTone(80, 40)).
		IsBackground(true).
		MustBuild()
}

// Primaries

func (c ColorSpec2021) Primary() *DynamicColor {
	return NewBuilder().
		Name("primary").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 100, 0)
			}
			return darkLight(s, 80, 40)
		}).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(3, 4.5, 7, 7)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.PrimaryContainer(), c.Primary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (ColorSpec2021) PrimaryDim() *DynamicColor { return nil }

func (c ColorSpec2021) OnPrimary() *DynamicColor {
	return NewBuilder().
		Name("on_primary").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 10, 90)
			}
			return darkLight(s, 20, 100)
		}).
		Background(role(c.Primary)).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (c ColorSpec2021) PrimaryContainer() *DynamicColor {
	return NewBuilder().
		Name("primary_container").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch {
			case isFidelity(s):
				return s.SourceColorHct.Tone()
			case isMonochrome(s):
				return darkLight(s, 85, 25)
			default:
				return darkLight(s, 30, 90)
			}
		}).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.PrimaryContainer(), c.Primary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (c ColorSpec2021) OnPrimaryContainer() *DynamicColor {
	return NewBuilder().
		Name("on_primary_container").
		Palette(primaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch {
			case isFidelity(s):
				return ForegroundTone(c.PrimaryContainer().tone(s), 4.5)
			case isMonochrome(s):
				return darkLight(s, 0, 100)
			default:
				return darkLight(s, 90, 30)
			}
		}).
		Background(role(c.PrimaryContainer)).
		ContrastCurve(curve(3, 4.5, 7, 11)).
		MustBuild()
}

func (c ColorSpec2021) InversePrimary() *DynamicColor {
	return NewBuilder().
		Name("inverse_primary").
		Palette(primaryPalette).
		Tone(darkLightTone(40, 80)).
		Background(role(c.InverseSurface)).
		ContrastCurve(curve(3, 4.5, 7, 7)).
		MustBuild()
}

// Secondaries

func (c ColorSpec2021) Secondary() *DynamicColor {
	return NewBuilder().
		Name("secondary").
		Palette(secondaryPalette).
		Tone(darkLightTone(80, 40)).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(3, 4.5, 7, 7)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.SecondaryContainer(), c.Secondary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (ColorSpec2021) SecondaryDim() *DynamicColor { return nil }

func (c ColorSpec2021) OnSecondary() *DynamicColor {
	return NewBuilder().
		Name("on_secondary").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 10, 100)
			}
			return darkLight(s, 20, 100)
		}).
		Background(role(c.Secondary)).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (c ColorSpec2021) SecondaryContainer() *DynamicColor {
	return NewBuilder().
		Name("secondary_container").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			initialTone := darkLight(s, 30, 90)
			switch {
			case isMonochrome(s):
				return darkLight(s, 30, 85)
			case !isFidelity(s):
				return initialTone
			default:
				return findDesiredChromaByTone(s.SecondaryPalette.Hue(), s.SecondaryPalette.Chroma(), initialTone, !s.IsDark)
			}
		}).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.SecondaryContainer(), c.Secondary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (c ColorSpec2021) OnSecondaryContainer() *DynamicColor {
	return NewBuilder().
		Name("on_secondary_container").
		Palette(secondaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch {
			case isMonochrome(s):
				return darkLight(s, 90, 10)
			case !isFidelity(s):
				return darkLight(s, 90, 30)
			default:
				return ForegroundTone(c.SecondaryContainer().tone(s), 4.5)
			}
		}).
		Background(role(c.SecondaryContainer)).
		ContrastCurve(curve(3, 4.5, 7, 11)).
		MustBuild()
}

// Tertiaries

func (c ColorSpec2021) Tertiary() *DynamicColor {
	return NewBuilder().
		Name("tertiary").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 90, 25)
			}
			return darkLight(s, 80, 40)
		}).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(3, 4.5, 7, 7)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.TertiaryContainer(), c.Tertiary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (ColorSpec2021) TertiaryDim() *DynamicColor { return nil }

func (c ColorSpec2021) OnTertiary() *DynamicColor {
	return NewBuilder().
		Name("on_tertiary").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 10, 90)
			}
			return darkLight(s, 20, 100)
		}).
		Background(role(c.Tertiary)).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (c ColorSpec2021) TertiaryContainer() *DynamicColor {
	return NewBuilder().
		Name("tertiary_container").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch {
			case isMonochrome(s):
				return darkLight(s, 60, 49)
			case !isFidelity(s):
				return darkLight(s, 30, 90)
			default:
				proposed := s.TertiaryPalette.GetHct(s.SourceColorHct.Tone())
				return dislike.FixIfDisliked(proposed).Tone()
			}
		}).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.TertiaryContainer(), c.Tertiary(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (c ColorSpec2021) OnTertiaryContainer() *DynamicColor {
	return NewBuilder().
		Name("on_tertiary_container").
		Palette(tertiaryPalette).
		Tone(func(s *DynamicScheme) float64 {
			switch {
			case isMonochrome(s):
				return darkLight(s, 0, 100)
			case !isFidelity(s):
				return darkLight(s, 90, 30)
			default:
				return ForegroundTone(c.TertiaryContainer().tone(s), 4.5)
			}
		}).
		Background(role(c.TertiaryContainer)).
		ContrastCurve(curve(3, 4.5, 7, 11)).
		MustBuild()
}

// Errors

func (c ColorSpec2021) Error() *DynamicColor {
	return NewBuilder().
		Name("error").
		Palette(errorPalette).
		Tone(darkLightTone(80, 40)).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(3, 4.5, 7, 7)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.ErrorContainer(), c.Error(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (ColorSpec2021) ErrorDim() *DynamicColor { return nil }

func (c ColorSpec2021) OnError() *DynamicColor {
	return NewBuilder().
		Name("on_error").
		Palette(errorPalette).
		Tone(darkLightTone(20, 100)).
		Background(role(c.Error)).
		ContrastCurve(curve(4.5, 7, 11, 21)).
		MustBuild()
}

func (c ColorSpec2021) ErrorContainer() *DynamicColor {
	return NewBuilder().
		Name("error_container").
		Palette(errorPalette).
		Tone(darkLightTone(30, 90)).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(c.ErrorContainer(), c.Error(), 10, PolarityNearer, false)
		}).
		MustBuild()
}

func (c ColorSpec2021) OnErrorContainer() *DynamicColor {
	return NewBuilder().
		Name("on_error_container").
		Palette(errorPalette).
		Tone(func(s *DynamicScheme) float64 {
			if isMonochrome(s) {
				return darkLight(s, 90, 10)
			}
			return darkLight(s, 90, 30)
		}).
		Background(role(c.ErrorContainer)).
		ContrastCurve(curve(3, 4.5, 7, 11)).
		MustBuild()
}

// Fixed colours keep the same tone in light and dark schemes.

func monoTone(mono, other float64) func(*DynamicScheme) float64 {
	return func(s *DynamicScheme) float64 {
		if isMonochrome(s) {
			return mono
		}
		return other
	}
}

func (c ColorSpec2021) fixed(name string, palette func(*DynamicScheme) *palettes.TonalPalette, tone func(*DynamicScheme) float64, fixed, fixedDim func() *DynamicColor) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(palette).
		Tone(tone).
		IsBackground(true).
		Background(c.HighestSurface).
		ContrastCurve(curve(1, 1, 3, 4.5)).
		ToneDeltaPair(func(*DynamicScheme) *ToneDeltaPair {
			return NewToneDeltaPair(fixed(), fixedDim(), 10, PolarityLighter, true)
		}).
		MustBuild()
}

func onFixed(name string, palette func(*DynamicScheme) *palettes.TonalPalette, tone func(*DynamicScheme) float64, fixed, fixedDim func() *DynamicColor, cc func(*DynamicScheme) *ContrastCurve) *DynamicColor {
	return NewBuilder().
		Name(name).
		Palette(palette).
		Tone(tone).
		Background(role(fixedDim)).
		SecondBackground(role(fixed)).
		ContrastCurve(cc).
		MustBuild()
}

func (c ColorSpec2021) PrimaryFixed() *DynamicColor {
	return c.fixed("primary_fixed", primaryPalette, monoTone(40, 90), c.PrimaryFixed, c.PrimaryFixedDim)
}

func (c ColorSpec2021) PrimaryFixedDim() *DynamicColor {
	return c.fixed("primary_fixed_dim", primaryPalette, monoTone(30, 80), c.PrimaryFixed, c.PrimaryFixedDim)
}

func (c ColorSpec2021) OnPrimaryFixed() *DynamicColor {
	return onFixed("on_primary_fixed", primaryPalette, monoTone(100, 10),
		c.PrimaryFixed, c.PrimaryFixedDim, curve(4.5, 7, 11, 21))
}

func (c ColorSpec2021) OnPrimaryFixedVariant() *DynamicColor {
	return onFixed("on_primary_fixed_variant", primaryPalette, monoTone(90, 30),
		c.PrimaryFixed, c.PrimaryFixedDim, curve(3, 4.5, 7, 11))
}

func (c ColorSpec2021) SecondaryFixed() *DynamicColor {
	return c.fixed("secondary_fixed", secondaryPalette, monoTone(80, 90), c.SecondaryFixed, c.SecondaryFixedDim)
}

func (c ColorSpec2021) SecondaryFixedDim() *DynamicColor {
	return c.fixed("secondary_fixed_dim", secondaryPalette, monoTone(70, 80), c.SecondaryFixed, c.SecondaryFixedDim)
}

func (c ColorSpec2021) OnSecondaryFixed() *DynamicColor {
	return onFixed("on_secondary_fixed", secondaryPalette, constTone(10),
		c.SecondaryFixed, c.SecondaryFixedDim, curve(4.5, 7, 11, 21))
}

func (c ColorSpec2021) OnSecondaryFixedVariant() *DynamicColor {
	return onFixed("on_secondary_fixed_variant", secondaryPalette, monoTone(25, 30),
		c.SecondaryFixed, c.SecondaryFixedDim, curve(3, 4.5, 7, 11))
}

func (c ColorSpec2021) TertiaryFixed() *DynamicColor {
	return c.fixed("tertiary_fixed", tertiaryPalette, monoTone(40, 90), c.TertiaryFixed, c.TertiaryFixedDim)
}

func (c ColorSpec2021) TertiaryFixedDim() *DynamicColor {
	return c.fixed("tertiary_fixed_dim", tertiaryPalette, monoTone(30, 80), c.TertiaryFixed, c.TertiaryFixedDim)
}

func (c ColorSpec2021) OnTertiaryFixed() *DynamicColor {
	return onFixed("on_tertiary_fixed", tertiaryPalette, monoTone(100, 10),
		c.TertiaryFixed, c.TertiaryFixedDim, curve(4.5, 7, 11, 21))
}

func (c ColorSpec2021) OnTertiaryFixedVariant() *DynamicColor {
	return onFixed("on_tertiary_fixed_variant", tertiaryPalette, monoTone(90, 30),
		c.TertiaryFixed, c.TertiaryFixedDim, curve(3, 4.5, 7, 11))
}

// Android-only colours

func (ColorSpec2021) ControlActivated() *DynamicColor {
	return NewBuilder().
		Name("control_activated").
		Palette(primaryPalette).
		Tone(darkLightTone(30, 90)).
		IsBackground(true).
		MustBuild()
}

func (ColorSpec2021) ControlNormal() *DynamicColor {
	return FromPalette("control_normal", neutralVariantPalette, darkLightTone(80, 30))
}

func (ColorSpec2021) ControlHighlight() *DynamicColor {
	return NewBuilder().
		Name("control_highlight").
		Palette(neutralPalette).
		Tone(darkLightTone(100, 0)).
		Opacity(func(s *DynamicScheme) float64 { return darkLight(s, 0.20, 0.12) }).
		MustBuild()
}

func (ColorSpec2021) TextPrimaryInverse() *DynamicColor {
	return FromPalette("text_primary_inverse", neutralPalette, darkLightTone(10, 90))
}

func (ColorSpec2021) TextSecondaryAndTertiaryInverse() *DynamicColor {
	return FromPalette("text_secondary_and_tertiary_inverse", neutralVariantPalette, darkLightTone(30, 80))
}

func (ColorSpec2021) TextPrimaryInverseDisableOnly() *DynamicColor {
	return FromPalette("text_primary_inverse_disable_only", neutralPalette, darkLightTone(10, 90))
}

func (ColorSpec2021) TextSecondaryAndTertiaryInverseDisabled() *DynamicColor {
	return FromPalette("text_secondary_and_tertiary_inverse_disabled", neutralPalette, darkLightTone(10, 90))
}

func (ColorSpec2021) TextHintInverse() *DynamicColor {
	return FromPalette("text_hint_inverse", neutralPalette, darkLightTone(10, 90))
}

// GetHct resolves the tone of color and renders it from the role's palette.
func (c ColorSpec2021) GetHct(s *DynamicScheme, color *DynamicColor) hct.HCT {
	return color.Palette(s).GetHct(c.GetTone(s, color))
}

// GetTone resolves the tone of color in s.
//
// Roles in a tone delta pair are solved together in up to three rounds: each
// to its own contrast minimum, then expanding the farther role, then
// contracting the nearer one. Other roles are adjusted against their
// background only when the initial tone falls short, and against a second
// background when they have one.
func (ColorSpec2021) GetTone(s *DynamicScheme, color *DynamicColor) float64 {
	decreasingContrast := s.ContrastLevel < 0

	if pair := color.ToneDeltaPair(s); pair != nil {
		roleA, roleB := pair.RoleA, pair.RoleB
		delta := pair.Delta
		polarity := pair.Polarity
		stayTogether := pair.StayTogether

		bgTone := color.Background(s).GetTone(s)

		aIsNearer := polarity == PolarityNearer ||
			(polarity == PolarityLighter && !s.IsDark) ||
			(polarity == PolarityDarker && s.IsDark)
		nearer, farther := roleB, roleA
		if aIsNearer {
			nearer, farther = roleA, roleB
		}
		amNearer := color.name == nearer.name
		expansionDir := -1.0
		if s.IsDark {
			expansionDir = 1
		}

		// 1st round: solve to min, each.
		nContrast := nearer.ContrastCurve(s).Get(s.ContrastLevel)
		fContrast := farther.ContrastCurve(s).Get(s.ContrastLevel)

		// Good enough tones are not adjusted.
		nInitialTone := nearer.tone(s)
		nTone := nInitialTone
		if contrast.RatioOfTones(bgTone, nInitialTone) < nContrast {
			nTone = ForegroundTone(bgTone, nContrast)
		}
		fInitialTone := farther.tone(s)
		fTone := fInitialTone
		if contrast.RatioOfTones(bgTone, fInitialTone) < fContrast {
			fTone = ForegroundTone(bgTone, fContrast)
		}

		if decreasingContrast {
			// Bare minimum that satisfies contrast.
			nTone = ForegroundTone(bgTone, nContrast)
			fTone = ForegroundTone(bgTone, fContrast)
		}

		if (fTone-nTone)*expansionDir < delta {
			// 2nd round: expand farther to match delta.
			fTone = hct.Clamp(0, 100, nTone+delta*expansionDir)
			if (fTone-nTone)*expansionDir < delta {
				// 3rd round: contract nearer to match delta.
				nTone = hct.Clamp(0, 100, fTone-delta*expansionDir)
			}
		}

		// Avoid the 50-59 awkward zone.
		moveBoth := func() {
			if expansionDir > 0 {
				nTone = 60
				fTone = math.Max(fTone, nTone+delta*expansionDir)
			} else {
				nTone = 49
				fTone = math.Min(fTone, nTone+delta*expansionDir)
			}
		}
		switch {
		case 50 <= nTone && nTone < 60:
			moveBoth()
		case 50 <= fTone && fTone < 60:
			if stayTogether {
				// Keep both on the same side of the zone.
				moveBoth()
			} else if expansionDir > 0 {
				fTone = 60
			} else {
				fTone = 49
			}
		}

		if amNearer {
			return nTone
		}
		return fTone
	}

	answer := color.tone(s)

	bg := color.Background(s)
	cc := color.ContrastCurve(s)
	if bg == nil || cc == nil {
		return answer
	}

	bgTone := bg.GetTone(s)
	desiredRatio := cc.Get(s.ContrastLevel)

	if contrast.RatioOfTones(bgTone, answer) < desiredRatio {
		answer = ForegroundTone(bgTone, desiredRatio)
	}
	if decreasingContrast {
		answer = ForegroundTone(bgTone, desiredRatio)
	}

	if color.isBackground && 50 <= answer && answer < 60 {
		if contrast.RatioOfTones(49, bgTone) >= desiredRatio {
			answer = 49
		} else {
			answer = 60
		}
	}

	second := color.SecondBackground(s)
	if second == nil {
		return answer
	}
	return dualBackgroundTone(answer, bgTone, second.GetTone(s), desiredRatio)
}

// dualBackgroundTone adjusts answer so that it reaches desiredRatio against
// two backgrounds, preferring a light foreground when either background does.
func dualBackgroundTone(answer, bgTone1, bgTone2, desiredRatio float64) float64 {
	upper := math.Max(bgTone1, bgTone2)
	lower := math.Min(bgTone1, bgTone2)

	if contrast.RatioOfTones(upper, answer) >= desiredRatio &&
		contrast.RatioOfTones(lower, answer) >= desiredRatio {
		return answer
	}

	// The darkest light tone and the lightest dark tone that satisfy the
	// ratio, or -1 when unreachable.
	lightOption := contrast.Lighter(upper, desiredRatio)
	darkOption := contrast.Darker(lower, desiredRatio)

	var availables []float64
	if lightOption != -1 {
		availables = append(availables, lightOption)
	}
	if darkOption != -1 {
		availables = append(availables, darkOption)
	}

	if TonePrefersLightForeground(bgTone1) || TonePrefersLightForeground(bgTone2) {
		if lightOption < 0 {
			return 100
		}
		return lightOption
	}
	if len(availables) == 1 {
		return availables[0]
	}
	if darkOption < 0 {
		return 0
	}
	return darkOption
}

// Palettes

func (ColorSpec2021) PrimaryPalette(variant Variant, source hct.HCT, _ bool, _ Platform, _ float64) *palettes.TonalPalette {
	h, c := source.Hue(), source.Chroma()
	switch variant {
	case VariantContent, VariantFidelity:
		return palettes.FromHueAndChroma(h, c)
	case VariantFruitSalad:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h-50), 48)
	case VariantMonochrome:
		return palettes.FromHueAndChroma(h, 0)
	case VariantNeutral:
		return palettes.FromHueAndChroma(h, 12)
	case VariantRainbow:
		return palettes.FromHueAndChroma(h, 48)
	case VariantExpressive:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h+240), 40)
	case VariantVibrant:
		return palettes.FromHueAndChroma(h, 200)
	default:
		return palettes.FromHueAndChroma(h, 36)
	}
}

func (ColorSpec2021) SecondaryPalette(variant Variant, source hct.HCT, _ bool, _ Platform, _ float64) *palettes.TonalPalette {
	h, c := source.Hue(), source.Chroma()
	switch variant {
	case VariantContent, VariantFidelity:
		return palettes.FromHueAndChroma(h, math.Max(c-32, c*0.5))
	case VariantFruitSalad:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h-50), 36)
	case VariantMonochrome:
		return palettes.FromHueAndChroma(h, 0)
	case VariantNeutral:
		return palettes.FromHueAndChroma(h, 8)
	case VariantExpressive:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 21, 51, 121, 151, 191, 271, 321, 360},
			[]float64{45, 95, 45, 20, 45, 90, 45, 45, 45}), 24)
	case VariantVibrant:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 41, 61, 101, 131, 181, 251, 301, 360},
			[]float64{18, 15, 10, 12, 15, 18, 15, 12, 12}), 24)
	default:
		return palettes.FromHueAndChroma(h, 16)
	}
}

func (ColorSpec2021) TertiaryPalette(variant Variant, source hct.HCT, _ bool, _ Platform, _ float64) *palettes.TonalPalette {
	h := source.Hue()
	switch variant {
	case VariantContent:
		analogous := temperature.NewCache(source).AnalogousN(3, 6)
		return palettes.FromHct(dislike.FixIfDisliked(analogous[2]))
	case VariantFidelity:
		complement := temperature.NewCache(source).Complement()
		return palettes.FromHct(dislike.FixIfDisliked(complement))
	case VariantFruitSalad:
		return palettes.FromHueAndChroma(h, 36)
	case VariantMonochrome:
		return palettes.FromHueAndChroma(h, 0)
	case VariantNeutral:
		return palettes.FromHueAndChroma(h, 16)
	case VariantExpressive:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 21, 51, 121, 151, 191, 271, 321, 360},
			[]float64{120, 120, 20, 45, 20, 15, 20, 120, 120}), 32)
	case VariantVibrant:
		return palettes.FromHueAndChroma(GetRotatedHue(source,
			[]float64{0, 41, 61, 101, 131, 181, 251, 301, 360},
			[]float64{35, 30, 20, 25, 30, 35, 30, 25, 25}), 32)
	default:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h+60), 24)
	}
}

func (ColorSpec2021) NeutralPalette(variant Variant, source hct.HCT, _ bool, _ Platform, _ float64) *palettes.TonalPalette {
	h, c := source.Hue(), source.Chroma()
	switch variant {
	case VariantContent, VariantFidelity:
		return palettes.FromHueAndChroma(h, c/8)
	case VariantFruitSalad:
		return palettes.FromHueAndChroma(h, 10)
	case VariantMonochrome, VariantRainbow:
		return palettes.FromHueAndChroma(h, 0)
	case VariantNeutral:
		return palettes.FromHueAndChroma(h, 2)
	case VariantExpressive:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h+15), 8)
	case VariantVibrant:
		return palettes.FromHueAndChroma(h, 10)
	default:
		return palettes.FromHueAndChroma(h, 6)
	}
}

func (ColorSpec2021) NeutralVariantPalette(variant Variant, source hct.HCT, _ bool, _ Platform, _ float64) *palettes.TonalPalette {
	h, c := source.Hue(), source.Chroma()
	switch variant {
	case VariantContent, VariantFidelity:
		return palettes.FromHueAndChroma(h, c/8+4)
	case VariantFruitSalad:
		return palettes.FromHueAndChroma(h, 16)
	case VariantMonochrome, VariantRainbow:
		return palettes.FromHueAndChroma(h, 0)
	case VariantNeutral:
		return palettes.FromHueAndChroma(h, 2)
	case VariantExpressive:
		return palettes.FromHueAndChroma(hct.SanitizeDegrees(h+15), 12)
	case VariantVibrant:
		return palettes.FromHueAndChroma(h, 12)
	default:
		return palettes.FromHueAndChroma(h, 8)
	}
}

// ErrorPalette returns nil: 2021 schemes use the default error palette.
func (ColorSpec2021) ErrorPalette(Variant, hct.HCT, bool, Platform, float64) *palettes.TonalPalette {
	return nil
}

// findDesiredChromaByTone walks tone from tone towards the requested chroma,
// stopping at the first chroma peak or once within 0.4 of it.
func findDesiredChromaByTone(hue, chroma, tone float64, byDecreasingTone bool) float64 {
	answer := tone
	closestToChroma := hct.From(hue, chroma, tone)
	if closestToChroma.Chroma() >= chroma {
		return answer
	}

	step := 1.0
	if byDecreasingTone {
		step = -1
	}
	chromaPeak := closestToChroma.Chroma()
	for closestToChroma.Chroma() < chroma {
		answer += step
		if answer < 0 || answer > 100 {
			answer = hct.Clamp(0, 100, answer)
			break
		}
		potentialSolution := hct.From(hue, chroma, answer)
		if chromaPeak > potentialSolution.Chroma() {
			break
		}
		if math.Abs(potentialSolution.Chroma()-chroma) < 0.4 {
			break
		}

		potentialDelta := math.Abs(potentialSolution.Chroma() - chroma)
		currentDelta := math.Abs(closestToChroma.Chroma() - chroma)
		if potentialDelta < currentDelta {
			closestToChroma = potentialSolution
		}
		chromaPeak = math.Max(chromaPeak, potentialSolution.Chroma())
	}
	return answer
}
