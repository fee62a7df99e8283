package dynamiccolor

import (
	"math"
	"testing"

	"github.com/jmylchreest/tonal/internal/hct"
)

func TestMaybeFallbackSpecVersion(t *testing.T) {
	tests := []struct {
		variant Variant
		want    SpecVersion
	}{
		{variant: VariantTonalSpot, want: Spec2025},
		{variant: VariantNeutral, want: Spec2025},
		{variant: VariantVibrant, want: Spec2025},
		{variant: VariantExpressive, want: Spec2025},
		{variant: VariantMonochrome, want: Spec2021},
		{variant: VariantFidelity, want: Spec2021},
		{variant: VariantContent, want: Spec2021},
		{variant: VariantRainbow, want: Spec2021},
		{variant: VariantFruitSalad, want: Spec2021},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			if got := MaybeFallbackSpecVersion(Spec2025, tt.variant); got != tt.want {
				t.Errorf("MaybeFallbackSpecVersion(2025, %s) = %s, want %s", tt.variant, got, tt.want)
			}
			if got := MaybeFallbackSpecVersion(Spec2021, tt.variant); got != Spec2021 {
				t.Errorf("MaybeFallbackSpecVersion(2021, %s) = %s, want 2021", tt.variant, got)
			}
		})
	}
}

func TestNewDynamicSchemeFallsBack(t *testing.T) {
	s := NewDynamicScheme(Options{Source: hct.FromArgb(0xff4285f4), Variant: VariantMonochrome, SpecVersion: Spec2025})
	if s.SpecVersion != Spec2021 {
		t.Errorf("SpecVersion = %s, want 2021", s.SpecVersion)
	}
	if s.ErrorPalette == nil || math.Abs(s.ErrorPalette.Hue()-25) > 1e-9 || s.ErrorPalette.Chroma() != 84 {
		t.Errorf("ErrorPalette = %v, want hue 25 chroma 84", s.ErrorPalette)
	}
}

// sourceAtHue returns a colour whose hue lies close to hue.
func sourceAtHue(hue float64) hct.HCT {
	return hct.From(hue, 40, 50)
}

func TestGetPiecewiseValue(t *testing.T) {
	breakpoints := []float64{0, 100, 200, 360}
	values := []float64{10, 20, 30}

	tests := []struct {
		name string
		hue  float64
		want float64
	}{
		{name: "first bucket", hue: 50, want: 10},
		{name: "second bucket", hue: 150, want: 20},
		{name: "last bucket", hue: 300, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetPiecewiseValue(sourceAtHue(tt.hue), breakpoints, values); got != tt.want {
				t.Errorf("GetPiecewiseValue() = %v, want %v", got, tt.want)
			}
		})
	}

	source := sourceAtHue(150)
	if got := GetPiecewiseValue(source, []float64{0, 100}, []float64{5}); got != source.Hue() {
		t.Errorf("GetPiecewiseValue() outside every bucket = %v, want source hue %v", got, source.Hue())
	}
}

func TestGetRotatedHue(t *testing.T) {
	tests := []struct {
		name        string
		hue         float64
		breakpoints []float64
		rotations   []float64
		wantOffset  float64
	}{
		{name: "positive rotation", hue: 50, breakpoints: []float64{0, 180, 360}, rotations: []float64{30, -30}, wantOffset: 30},
		{name: "negative rotation", hue: 200, breakpoints: []float64{0, 180, 360}, rotations: []float64{30, -30}, wantOffset: -30},
		{name: "wraps past 360", hue: 350, breakpoints: []float64{0, 180, 360}, rotations: []float64{30, 30}, wantOffset: 30},
		{name: "degenerate tables", hue: 120, breakpoints: []float64{0}, rotations: nil, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := sourceAtHue(tt.hue)
			got := GetRotatedHue(source, tt.breakpoints, tt.rotations)
			want := hct.SanitizeDegrees(source.Hue() + tt.wantOffset)
			if math.Abs(got-want) > 1e-9 || got < 0 || got >= 360 {
				t.Errorf("GetRotatedHue() = %v, want %v", got, want)
			}
		})
	}
}

func TestFromKeepsPalettes(t *testing.T) {
	s := testScheme(Spec2025, false)
	dark := From(s, true, 0.5)
	if !dark.IsDark || dark.ContrastLevel != 0.5 {
		t.Errorf("From() = %s, want dark at contrast 0.5", dark)
	}
	if dark.PrimaryPalette != s.PrimaryPalette || dark.SpecVersion != s.SpecVersion {
		t.Error("From() did not share the source scheme's palettes and spec version")
	}
	if s.IsDark {
		t.Error("From() modified the source scheme")
	}
}

func TestBlackSeedTonalSpot2021(t *testing.T) {
	tests := []struct {
		name             string
		isDark           bool
		wantBackground   float64
		wantOnBackground float64
	}{
		{name: "light", isDark: false, wantBackground: 98, wantOnBackground: 10},
		{name: "dark", isDark: true, wantBackground: 6, wantOnBackground: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDynamicScheme(Options{
				Source:      hct.FromArgb(0xff000000),
				Variant:     VariantTonalSpot,
				IsDark:      tt.isDark,
				SpecVersion: Spec2021,
			})
			m := NewMaterialDynamicColors()
			bg := m.Background().GetTone(s)
			if bg != tt.wantBackground {
				t.Errorf("Background().GetTone() = %v, want %v", bg, tt.wantBackground)
			}
			on := m.OnBackground().GetTone(s)
			if on != tt.wantOnBackground {
				t.Errorf("OnBackground().GetTone() = %v, want %v", on, tt.wantOnBackground)
			}
			if ratio := contrastOf(s.Background(), s.OnBackground()); ratio < 4.5 {
				t.Errorf("contrast(background, on_background) = %.2f, want >= 4.5", ratio)
			}
		})
	}
}

func TestSchemeGetters(t *testing.T) {
	s := testScheme(Spec2025, false)
	m := NewMaterialDynamicColors()
	tests := []struct {
		name string
		got  uint32
		role *DynamicColor
	}{
		{name: "primary", got: s.Primary(), role: m.Primary()},
		{name: "surface", got: s.Surface(), role: m.Surface()},
		{name: "on_tertiary_container", got: s.OnTertiaryContainer(), role: m.OnTertiaryContainer()},
		{name: "error_dim", got: s.ErrorDim(), role: m.ErrorDim()},
	}

	for _, tt := range tests {
		if want := s.GetArgb(tt.role); tt.got != want {
			t.Errorf("%s = %#08x, want %#08x", tt.name, tt.got, want)
		}
	}
	if s.SourceColorArgb() != 0xff4285f4 {
		t.Errorf("SourceColorArgb() = %#08x, want 0xff4285f4", s.SourceColorArgb())
	}
}
