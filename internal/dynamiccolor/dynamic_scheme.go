package dynamiccolor

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// DynamicScheme is the context every role is resolved against: a source
// colour, the user's preferences, and the six palettes derived from them.
//
// Schemes are treated as immutable once built; roles cache their results by
// scheme pointer.
type DynamicScheme struct {
	SourceColorHct hct.HCT
	Variant        Variant
	IsDark         bool
	Platform       Platform
	// ContrastLevel is in [-1, 1]: 0 is standard, 0.5 medium, 1 high and
	// -1 reduced contrast.
	ContrastLevel float64
	SpecVersion   SpecVersion

	PrimaryPalette        *palettes.TonalPalette
	SecondaryPalette      *palettes.TonalPalette
	TertiaryPalette       *palettes.TonalPalette
	NeutralPalette        *palettes.TonalPalette
	NeutralVariantPalette *palettes.TonalPalette
	ErrorPalette          *palettes.TonalPalette
}

// Options are the inputs to NewDynamicScheme. The zero value is a light,
// standard contrast, tonal spot phone scheme using the 2021 rules.
type Options struct {
	Source        hct.HCT
	Variant       Variant
	IsDark        bool
	ContrastLevel float64
	Platform      Platform
	SpecVersion   SpecVersion
}

// NewDynamicScheme builds a scheme, generating its palettes with the rules of
// the requested spec version. Variants without 2025 rules fall back to 2021.
func NewDynamicScheme(opts Options) *DynamicScheme {
	version := MaybeFallbackSpecVersion(opts.SpecVersion, opts.Variant)
	spec := GetColorSpec(version)
	args := func(fn func(Variant, hct.HCT, bool, Platform, float64) *palettes.TonalPalette) *palettes.TonalPalette {
		return fn(opts.Variant, opts.Source, opts.IsDark, opts.Platform, opts.ContrastLevel)
	}

	errorPalette := args(spec.ErrorPalette)
	if errorPalette == nil {
		errorPalette = palettes.FromHueAndChroma(25, 84)
	}

	return &DynamicScheme{
		SourceColorHct:        opts.Source,
		Variant:               opts.Variant,
		IsDark:                opts.IsDark,
		Platform:              opts.Platform,
		ContrastLevel:         opts.ContrastLevel,
		SpecVersion:           version,
		PrimaryPalette:        args(spec.PrimaryPalette),
		SecondaryPalette:      args(spec.SecondaryPalette),
		TertiaryPalette:       args(spec.TertiaryPalette),
		NeutralPalette:        args(spec.NeutralPalette),
		NeutralVariantPalette: args(spec.NeutralVariantPalette),
		ErrorPalette:          errorPalette,
	}
}

// From returns a copy of other with a different brightness and contrast
// level. The palettes are shared, not regenerated.
func From(other *DynamicScheme, isDark bool, contrastLevel float64) *DynamicScheme {
	s := *other
	s.IsDark = isDark
	s.ContrastLevel = contrastLevel
	return &s
}

// MaybeFallbackSpecVersion returns the spec version a variant can use. Only
// expressive, vibrant, tonal spot and neutral have 2025 rules.
func MaybeFallbackSpecVersion(version SpecVersion, variant Variant) SpecVersion {
	switch variant {
	case VariantExpressive, VariantVibrant, VariantTonalSpot, VariantNeutral:
		return version
	default:
		return Spec2021
	}
}

// GetPiecewiseValue returns the value whose hue range [breakpoints[i],
// breakpoints[i+1]) contains the source hue, or the source hue when none
// does.
func GetPiecewiseValue(source hct.HCT, breakpoints, values []float64) float64 {
	size := min(len(breakpoints)-1, len(values))
	hue := source.Hue()
	for i := 0; i < size; i++ {
		if hue >= breakpoints[i] && hue < breakpoints[i+1] {
			return hct.SanitizeDegrees(values[i])
		}
	}
	return hue
}

// GetRotatedHue rotates the source hue by the piecewise rotation for its hue
// range.
func GetRotatedHue(source hct.HCT, breakpoints, rotations []float64) float64 {
	rotation := GetPiecewiseValue(source, breakpoints, rotations)
	if min(len(breakpoints)-1, len(rotations)) <= 0 {
		rotation = 0
	}
	return hct.SanitizeDegrees(source.Hue() + rotation)
}

// SourceColorArgb returns the source colour as ARGB.
func (s *DynamicScheme) SourceColorArgb() uint32 { return s.SourceColorHct.ToArgb() }

// GetHct resolves color against the scheme.
func (s *DynamicScheme) GetHct(color *DynamicColor) hct.HCT { return color.GetHct(s) }

// GetArgb resolves color against the scheme as ARGB.
func (s *DynamicScheme) GetArgb(color *DynamicColor) uint32 { return color.GetArgb(s) }

func (s *DynamicScheme) String() string {
	mode := "light"
	if s.IsDark {
		mode = "dark"
	}
	return fmt.Sprintf("Scheme: variant=%s, mode=%s, platform=%s, contrastLevel=%.1f, seed=%s, specVersion=%s",
		s.Variant, mode, s.Platform, s.ContrastLevel, s.SourceColorHct, s.SpecVersion)
}

var materialColors = NewMaterialDynamicColors()

func (s *DynamicScheme) PrimaryPaletteKeyColor() uint32 {
	return materialColors.PrimaryPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) SecondaryPaletteKeyColor() uint32 {
	return materialColors.SecondaryPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) TertiaryPaletteKeyColor() uint32 {
	return materialColors.TertiaryPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) NeutralPaletteKeyColor() uint32 {
	return materialColors.NeutralPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) NeutralVariantPaletteKeyColor() uint32 {
	return materialColors.NeutralVariantPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) ErrorPaletteKeyColor() uint32 {
	return materialColors.ErrorPaletteKeyColor().GetArgb(s)
}

func (s *DynamicScheme) Background() uint32   { return materialColors.Background().GetArgb(s) }
func (s *DynamicScheme) OnBackground() uint32 { return materialColors.OnBackground().GetArgb(s) }
func (s *DynamicScheme) Surface() uint32      { return materialColors.Surface().GetArgb(s) }
func (s *DynamicScheme) SurfaceDim() uint32   { return materialColors.SurfaceDim().GetArgb(s) }
func (s *DynamicScheme) SurfaceBright() uint32 {
	return materialColors.SurfaceBright().GetArgb(s)
}

func (s *DynamicScheme) SurfaceContainerLowest() uint32 {
	return materialColors.SurfaceContainerLowest().GetArgb(s)
}

func (s *DynamicScheme) SurfaceContainerLow() uint32 {
	return materialColors.SurfaceContainerLow().GetArgb(s)
}

func (s *DynamicScheme) SurfaceContainer() uint32 {
	return materialColors.SurfaceContainer().GetArgb(s)
}

func (s *DynamicScheme) SurfaceContainerHigh() uint32 {
	return materialColors.SurfaceContainerHigh().GetArgb(s)
}

func (s *DynamicScheme) SurfaceContainerHighest() uint32 {
	return materialColors.SurfaceContainerHighest().GetArgb(s)
}

func (s *DynamicScheme) OnSurface() uint32      { return materialColors.OnSurface().GetArgb(s) }
func (s *DynamicScheme) SurfaceVariant() uint32 { return materialColors.SurfaceVariant().GetArgb(s) }
func (s *DynamicScheme) OnSurfaceVariant() uint32 {
	return materialColors.OnSurfaceVariant().GetArgb(s)
}
func (s *DynamicScheme) InverseSurface() uint32 { return materialColors.InverseSurface().GetArgb(s) }
func (s *DynamicScheme) InverseOnSurface() uint32 {
	return materialColors.InverseOnSurface().GetArgb(s)
}
func (s *DynamicScheme) Outline() uint32        { return materialColors.Outline().GetArgb(s) }
func (s *DynamicScheme) OutlineVariant() uint32 { return materialColors.OutlineVariant().GetArgb(s) }
func (s *DynamicScheme) Shadow() uint32         { return materialColors.Shadow().GetArgb(s) }
func (s *DynamicScheme) Scrim() uint32          { return materialColors.Scrim().GetArgb(s) }
func (s *DynamicScheme) SurfaceTint() uint32    { return materialColors.SurfaceTint().GetArgb(s) }

func (s *DynamicScheme) Primary() uint32    { return materialColors.Primary().GetArgb(s) }
func (s *DynamicScheme) PrimaryDim() uint32 { return materialColors.PrimaryDim().GetArgb(s) }
func (s *DynamicScheme) OnPrimary() uint32  { return materialColors.OnPrimary().GetArgb(s) }
func (s *DynamicScheme) PrimaryContainer() uint32 {
	return materialColors.PrimaryContainer().GetArgb(s)
}
func (s *DynamicScheme) OnPrimaryContainer() uint32 {
	return materialColors.OnPrimaryContainer().GetArgb(s)
}
func (s *DynamicScheme) InversePrimary() uint32 { return materialColors.InversePrimary().GetArgb(s) }

func (s *DynamicScheme) Secondary() uint32    { return materialColors.Secondary().GetArgb(s) }
func (s *DynamicScheme) SecondaryDim() uint32 { return materialColors.SecondaryDim().GetArgb(s) }
func (s *DynamicScheme) OnSecondary() uint32  { return materialColors.OnSecondary().GetArgb(s) }
func (s *DynamicScheme) SecondaryContainer() uint32 {
	return materialColors.SecondaryContainer().GetArgb(s)
}
func (s *DynamicScheme) OnSecondaryContainer() uint32 {
	return materialColors.OnSecondaryContainer().GetArgb(s)
}

func (s *DynamicScheme) Tertiary() uint32    { return materialColors.Tertiary().GetArgb(s) }
func (s *DynamicScheme) TertiaryDim() uint32 { return materialColors.TertiaryDim().GetArgb(s) }
func (s *DynamicScheme) OnTertiary() uint32  { return materialColors.OnTertiary().GetArgb(s) }
func (s *DynamicScheme) TertiaryContainer() uint32 {
	return materialColors.TertiaryContainer().GetArgb(s)
}
func (s *DynamicScheme) OnTertiaryContainer() uint32 {
	return materialColors.OnTertiaryContainer().GetArgb(s)
}

func (s *DynamicScheme) Error() uint32          { return materialColors.Error().GetArgb(s) }
func (s *DynamicScheme) ErrorDim() uint32       { return materialColors.ErrorDim().GetArgb(s) }
func (s *DynamicScheme) OnError() uint32        { return materialColors.OnError().GetArgb(s) }
func (s *DynamicScheme) ErrorContainer() uint32 { return materialColors.ErrorContainer().GetArgb(s) }
func (s *DynamicScheme) OnErrorContainer() uint32 {
	return materialColors.OnErrorContainer().GetArgb(s)
}

func (s *DynamicScheme) PrimaryFixed() uint32    { return materialColors.PrimaryFixed().GetArgb(s) }
func (s *DynamicScheme) PrimaryFixedDim() uint32 { return materialColors.PrimaryFixedDim().GetArgb(s) }
func (s *DynamicScheme) OnPrimaryFixed() uint32  { return materialColors.OnPrimaryFixed().GetArgb(s) }
func (s *DynamicScheme) OnPrimaryFixedVariant() uint32 {
	return materialColors.OnPrimaryFixedVariant().GetArgb(s)
}

func (s *DynamicScheme) SecondaryFixed() uint32 { return materialColors.SecondaryFixed().GetArgb(s) }
func (s *DynamicScheme) SecondaryFixedDim() uint32 {
	return materialColors.SecondaryFixedDim().GetArgb(s)
}
func (s *DynamicScheme) OnSecondaryFixed() uint32 {
	return materialColors.OnSecondaryFixed().GetArgb(s)
}
func (s *DynamicScheme) OnSecondaryFixedVariant() uint32 {
	return materialColors.OnSecondaryFixedVariant().GetArgb(s)
}

func (s *DynamicScheme) TertiaryFixed() uint32 { return materialColors.TertiaryFixed().GetArgb(s) }
func (s *DynamicScheme) TertiaryFixedDim() uint32 {
	return materialColors.TertiaryFixedDim().GetArgb(s)
}
func (s *DynamicScheme) OnTertiaryFixed() uint32 { return materialColors.OnTertiaryFixed().GetArgb(s) }
func (s *DynamicScheme) OnTertiaryFixedVariant() uint32 {
	return materialColors.OnTertiaryFixedVariant().GetArgb(s)
}

func (s *DynamicScheme) ControlActivated() uint32 {
	return materialColors.ControlActivated().GetArgb(s)
}
func (s *DynamicScheme) ControlNormal() uint32 { return materialColors.ControlNormal().GetArgb(s) }
func (s *DynamicScheme) ControlHighlight() uint32 {
	return materialColors.ControlHighlight().GetArgb(s)
}
func (s *DynamicScheme) TextPrimaryInverse() uint32 {
	return materialColors.TextPrimaryInverse().GetArgb(s)
}
func (s *DynamicScheme) TextSecondaryAndTertiaryInverse() uint32 {
	return materialColors.TextSecondaryAndTertiaryInverse().GetArgb(s)
}
func (s *DynamicScheme) TextPrimaryInverseDisableOnly() uint32 {
	return materialColors.TextPrimaryInverseDisableOnly().GetArgb(s)
}
func (s *DynamicScheme) TextSecondaryAndTertiaryInverseDisabled() uint32 {
	return materialColors.TextSecondaryAndTertiaryInverseDisabled().GetArgb(s)
}
func (s *DynamicScheme) TextHintInverse() uint32 { return materialColors.TextHintInverse().GetArgb(s) }
