package dynamiccolor

import (
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// ColorSpec is a versioned ruleset: a catalog of colour roles, the algorithm
// that resolves their tones, and the palettes a scheme derives from its
// source colour.
//
// Role methods return a fresh DynamicColor on each call. Dim roles do not
// exist before 2025 and are nil in ColorSpec2021.
type ColorSpec interface {
	HighestSurface(s *DynamicScheme) *DynamicColor

	// Main palette key colours.
	PrimaryPaletteKeyColor() *DynamicColor
	SecondaryPaletteKeyColor() *DynamicColor
	TertiaryPaletteKeyColor() *DynamicColor
	NeutralPaletteKeyColor() *DynamicColor
	NeutralVariantPaletteKeyColor() *DynamicColor
	ErrorPaletteKeyColor() *DynamicColor

	// Surfaces.
	Background() *DynamicColor
	OnBackground() *DynamicColor
	Surface() *DynamicColor
	SurfaceDim() *DynamicColor
	SurfaceBright() *DynamicColor
	SurfaceContainerLowest() *DynamicColor
	SurfaceContainerLow() *DynamicColor
	SurfaceContainer() *DynamicColor
	SurfaceContainerHigh() *DynamicColor
	SurfaceContainerHighest() *DynamicColor
	OnSurface() *DynamicColor
	SurfaceVariant() *DynamicColor
	OnSurfaceVariant() *DynamicColor
	InverseSurface() *DynamicColor
	InverseOnSurface() *DynamicColor
	Outline() *DynamicColor
	OutlineVariant() *DynamicColor
	Shadow() *DynamicColor
	Scrim() *DynamicColor
	SurfaceTint() *DynamicColor

	// Primaries.
	Primary() *DynamicColor
	PrimaryDim() *DynamicColor
	OnPrimary() *DynamicColor
	PrimaryContainer() *DynamicColor
	OnPrimaryContainer() *DynamicColor
	InversePrimary() *DynamicColor

	// Secondaries.
	Secondary() *DynamicColor
	SecondaryDim() *DynamicColor
	OnSecondary() *DynamicColor
	SecondaryContainer() *DynamicColor
	OnSecondaryContainer() *DynamicColor

	// Tertiaries.
	Tertiary() *DynamicColor
	TertiaryDim() *DynamicColor
	OnTertiary() *DynamicColor
	TertiaryContainer() *DynamicColor
	OnTertiaryContainer() *DynamicColor

	// Errors.
	Error() *DynamicColor
	ErrorDim() *DynamicColor
	OnError() *DynamicColor
	ErrorContainer() *DynamicColor
	OnErrorContainer() *DynamicColor

	// Primary fixed colours.
	PrimaryFixed() *DynamicColor
	PrimaryFixedDim() *DynamicColor
	OnPrimaryFixed() *DynamicColor
	OnPrimaryFixedVariant() *DynamicColor

	// Secondary fixed colours.
	SecondaryFixed() *DynamicColor
	SecondaryFixedDim() *DynamicColor
	OnSecondaryFixed() *DynamicColor
	OnSecondaryFixedVariant() *DynamicColor

	// Tertiary fixed colours.
	TertiaryFixed() *DynamicColor
	TertiaryFixedDim() *DynamicColor
	OnTertiaryFixed() *DynamicColor
	OnTertiaryFixedVariant() *DynamicColor

	// Android-only colours.
	ControlActivated() *DynamicColor
	ControlNormal() *DynamicColor
	ControlHighlight() *DynamicColor
	TextPrimaryInverse() *DynamicColor
	TextSecondaryAndTertiaryInverse() *DynamicColor
	TextPrimaryInverseDisableOnly() *DynamicColor
	TextSecondaryAndTertiaryInverseDisabled() *DynamicColor
	TextHintInverse() *DynamicColor

	// Resolution.
	GetHct(s *DynamicScheme, color *DynamicColor) hct.HCT
	GetTone(s *DynamicScheme, color *DynamicColor) float64

	// Palette generation. ErrorPalette may return nil, in which case the
	// scheme uses the default error palette.
	PrimaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
	SecondaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
	TertiaryPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
	NeutralPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
	NeutralVariantPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
	ErrorPalette(variant Variant, source hct.HCT, isDark bool, platform Platform, contrastLevel float64) *palettes.TonalPalette
}

var (
	spec2021 ColorSpec = ColorSpec2021{}
	spec2025 ColorSpec = ColorSpec2025{}
)

// GetColorSpec returns the ruleset for version. Unknown versions get the 2021
// rules.
func GetColorSpec(version SpecVersion) ColorSpec {
	if version == Spec2025 {
		return spec2025
	}
	return spec2021
}
