package dynamiccolor

// MaterialDynamicColors exposes every named Material role. Each method
// returns a role that resolves correctly for both spec versions.
type MaterialDynamicColors struct {
	ColorSpec
}

// NewMaterialDynamicColors returns the role catalog.
func NewMaterialDynamicColors() MaterialDynamicColors {
	return MaterialDynamicColors{ColorSpec: spec2025}
}

// KeyColors returns the six palette key colour roles.
func (m MaterialDynamicColors) KeyColors() []*DynamicColor {
	return []*DynamicColor{
		m.PrimaryPaletteKeyColor(),
		m.SecondaryPaletteKeyColor(),
		m.TertiaryPaletteKeyColor(),
		m.NeutralPaletteKeyColor(),
		m.NeutralVariantPaletteKeyColor(),
		m.ErrorPaletteKeyColor(),
	}
}

// AllDynamicColors returns every role in display order: surfaces, then the
// primary, secondary, tertiary and error families, then the fixed roles.
// Dim roles are included; they resolve for 2021 schemes too, using the 2025
// recipe. Key colours and Android-only roles are excluded.
func (m MaterialDynamicColors) AllDynamicColors() []*DynamicColor {
	return []*DynamicColor{
		m.Background(),
		m.OnBackground(),
		m.Surface(),
		m.SurfaceDim(),
		m.SurfaceBright(),
		m.SurfaceContainerLowest(),
		m.SurfaceContainerLow(),
		m.SurfaceContainer(),
		m.SurfaceContainerHigh(),
		m.SurfaceContainerHighest(),
		m.OnSurface(),
		m.SurfaceVariant(),
		m.OnSurfaceVariant(),
		m.InverseSurface(),
		m.InverseOnSurface(),
		m.Outline(),
		m.OutlineVariant(),
		m.Shadow(),
		m.Scrim(),
		m.SurfaceTint(),
		m.Primary(),
		m.PrimaryDim(),
		m.OnPrimary(),
		m.PrimaryContainer(),
		m.OnPrimaryContainer(),
		m.InversePrimary(),
		m.Secondary(),
		m.SecondaryDim(),
		m.OnSecondary(),
		m.SecondaryContainer(),
		m.OnSecondaryContainer(),
		m.Tertiary(),
		m.TertiaryDim(),
		m.OnTertiary(),
		m.TertiaryContainer(),
		m.OnTertiaryContainer(),
		m.Error(),
		m.ErrorDim(),
		m.OnError(),
		m.ErrorContainer(),
		m.OnErrorContainer(),
		m.PrimaryFixed(),
		m.PrimaryFixedDim(),
		m.OnPrimaryFixed(),
		m.OnPrimaryFixedVariant(),
		m.SecondaryFixed(),
		m.SecondaryFixedDim(),
		m.OnSecondaryFixed(),
		m.OnSecondaryFixedVariant(),
		m.TertiaryFixed(),
		m.TertiaryFixedDim(),
		m.OnTertiaryFixed(),
		m.OnTertiaryFixedVariant(),
	}
}

// AndroidColors returns the legacy Android-only roles.
func (m MaterialDynamicColors) AndroidColors() []*DynamicColor {
	return []*DynamicColor{
		m.ControlActivated(),
		m.ControlNormal(),
		m.ControlHighlight(),
		m.TextPrimaryInverse(),
		m.TextSecondaryAndTertiaryInverse(),
		m.TextPrimaryInverseDisableOnly(),
		m.TextSecondaryAndTertiaryInverseDisabled(),
		m.TextHintInverse(),
	}
}

// lookup returns the role named name, searching key colours, the main
// catalog and the Android roles.
func (m MaterialDynamicColors) lookup(name string) (*DynamicColor, bool) {
	for _, group := range [][]*DynamicColor{m.KeyColors(), m.AllDynamicColors(), m.AndroidColors()} {
		for _, c := range group {
			if c.Name() == name {
				return c, true
			}
		}
	}
	return nil, false
}
