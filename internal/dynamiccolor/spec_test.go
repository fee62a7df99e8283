package dynamiccolor

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/hct"
)

var testSeeds = []uint32{
	0xff4285f4, // blue
	0xffea4335, // red
	0xff34a853, // green
	0xfffbbc04, // yellow
	0xff00bcd4, // cyan
	0xff6750a4, // baseline purple
	0xff000000,
}

var contrastLevels = []float64{-1, -0.5, 0, 0.5, 1}

func contrastOf(a, b uint32) float64 {
	return contrast.RatioOfTones(hct.LstarFromArgb(a), hct.LstarFromArgb(b))
}

// eachScheme calls fn with every combination of seed, brightness and contrast
// level for the given variants and version.
func eachScheme(t *testing.T, version SpecVersion, platform Platform, variants []Variant, fn func(t *testing.T, s *DynamicScheme)) {
	t.Helper()
	for _, variant := range variants {
		for _, seed := range testSeeds {
			for _, isDark := range []bool{false, true} {
				for _, level := range contrastLevels {
					s := NewDynamicScheme(Options{
						Source:        hct.FromArgb(seed),
						Variant:       variant,
						IsDark:        isDark,
						ContrastLevel: level,
						Platform:      platform,
						SpecVersion:   version,
					})
					t.Run(fmt.Sprintf("%s/%#08x/dark=%v/%v", variant, seed, isDark, level), func(t *testing.T) {
						fn(t, s)
					})
				}
			}
		}
	}
}

func TestPrimaryContainerSeparation2021(t *testing.T) {
	m := NewMaterialDynamicColors()
	variants := []Variant{VariantTonalSpot, VariantVibrant, VariantExpressive, VariantFidelity, VariantContent}
	eachScheme(t, Spec2021, PlatformPhone, variants, func(t *testing.T, s *DynamicScheme) {
		primary := m.Primary().GetTone(s)
		container := m.PrimaryContainer().GetTone(s)
		if d := math.Abs(primary - container); d < 10-1e-9 {
			t.Errorf("|primary - primary_container| = %.2f (%.2f, %.2f), want >= 10", d, primary, container)
		}
		if s.Variant == VariantFidelity || s.Variant == VariantContent {
			return
		}
		bg := m.HighestSurface(s).GetTone(s)
		if math.Abs(container-bg) > math.Abs(primary-bg) {
			t.Errorf("primary_container tone %.2f is farther than primary %.2f from background %.2f", container, primary, bg)
		}
	})
}

func TestBackgroundRolesAvoidAwkwardZone2021(t *testing.T) {
	m := NewMaterialDynamicColors()
	variants := []Variant{VariantTonalSpot, VariantMonochrome, VariantFidelity, VariantRainbow}
	eachScheme(t, Spec2021, PlatformPhone, variants, func(t *testing.T, s *DynamicScheme) {
		for _, role := range m.AllDynamicColors() {
			if !role.IsBackground() {
				continue
			}
			if tone := role.GetTone(s); tone >= 50 && tone < 60 {
				t.Errorf("%s tone = %.2f, want outside [50, 60)", role.Name(), tone)
			}
		}
	})
}

func TestBackgroundRolesAvoidAwkwardZone2025(t *testing.T) {
	m := NewMaterialDynamicColors()
	variants := []Variant{VariantTonalSpot, VariantNeutral, VariantVibrant, VariantExpressive}
	for _, platform := range []Platform{PlatformPhone, PlatformWatch} {
		eachScheme(t, Spec2025, platform, variants, func(t *testing.T, s *DynamicScheme) {
			for _, role := range m.AllDynamicColors() {
				if !role.IsBackground() || strings.HasSuffix(role.Name(), "_fixed_dim") {
					continue
				}
				if role.ToneDeltaPair(s) == nil && (role.Background(s) == nil || role.ContrastCurve(s) == nil) {
					continue
				}
				if tone := role.GetTone(s); tone > 49 && tone < 65 {
					t.Errorf("%s tone = %.2f, want outside (49, 65)", role.Name(), tone)
				}
			}
		})
	}
}

func TestFixedDimDelta2025(t *testing.T) {
	m := NewMaterialDynamicColors()
	families := []struct {
		fixed, fixedDim *DynamicColor
	}{
		{m.PrimaryFixed(), m.PrimaryFixedDim()},
		{m.SecondaryFixed(), m.SecondaryFixedDim()},
		{m.TertiaryFixed(), m.TertiaryFixedDim()},
	}
	variants := []Variant{VariantTonalSpot, VariantNeutral, VariantVibrant, VariantExpressive}
	eachScheme(t, Spec2025, PlatformPhone, variants, func(t *testing.T, s *DynamicScheme) {
		for _, f := range families {
			fixed := f.fixed.GetTone(s)
			dim := f.fixedDim.GetTone(s)
			if fixed < 5 {
				continue
			}
			if d := fixed - dim; math.Abs(d-5) > 1e-9 {
				t.Errorf("%s - %s = %.4f, want 5", f.fixed.Name(), f.fixedDim.Name(), d)
			}
		}
	})
}

func TestFixedRolesIgnoreBrightness2025(t *testing.T) {
	m := NewMaterialDynamicColors()
	light := testScheme(Spec2025, false)
	dark := From(light, true, 0)
	for _, role := range []*DynamicColor{m.PrimaryFixed(), m.SecondaryFixedDim(), m.TertiaryFixed()} {
		if l, d := role.GetArgb(light), role.GetArgb(dark); l != d {
			t.Errorf("%s light = %#08x, dark = %#08x, want equal", role.Name(), l, d)
		}
	}
}

func TestAllRolesResolve(t *testing.T) {
	m := NewMaterialDynamicColors()
	groups := [][]*DynamicColor{m.KeyColors(), m.AllDynamicColors(), m.AndroidColors()}
	for _, version := range []SpecVersion{Spec2021, Spec2025} {
		for _, platform := range []Platform{PlatformPhone, PlatformWatch} {
			for _, variant := range Variants() {
				for _, seed := range []uint32{0xff4285f4, 0xfffbbc04, 0xff000000} {
					for _, level := range []float64{-1, 0, 1} {
						s := NewDynamicScheme(Options{
							Source:        hct.FromArgb(seed),
							Variant:       variant,
							IsDark:        level > 0,
							ContrastLevel: level,
							Platform:      platform,
							SpecVersion:   version,
						})
						for _, group := range groups {
							for _, role := range group {
								tone := role.GetTone(s)
								if math.IsNaN(tone) || tone < 0 || tone > 100 {
									t.Errorf("%s: %s tone = %v, want within [0, 100]", s, role.Name(), tone)
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestForegroundContrast(t *testing.T) {
	m := NewMaterialDynamicColors()
	pairs := []struct {
		fg, bg *DynamicColor
	}{
		{m.OnPrimary(), m.Primary()},
		{m.OnSecondaryContainer(), m.SecondaryContainer()},
		{m.OnTertiary(), m.Tertiary()},
		{m.OnErrorContainer(), m.ErrorContainer()},
		{m.OnSurface(), m.Surface()},
	}
	for _, version := range []SpecVersion{Spec2021, Spec2025} {
		s := NewDynamicScheme(Options{Source: hct.FromArgb(0xff6750a4), SpecVersion: version})
		for _, p := range pairs {
			if ratio := contrastOf(p.fg.GetArgb(s), p.bg.GetArgb(s)); ratio < 4.5-0.05 {
				t.Errorf("%s: contrast(%s, %s) = %.2f, want >= 4.5", version, p.fg.Name(), p.bg.Name(), ratio)
			}
		}
	}
}

func TestSpec2025ChromaMultiplier(t *testing.T) {
	m := NewMaterialDynamicColors()
	s := NewDynamicScheme(Options{Source: hct.FromArgb(0xff4285f4), Variant: VariantNeutral, SpecVersion: Spec2025})
	if got := m.SurfaceContainerHighest().ChromaMultiplier(s); got != 2.2 {
		t.Errorf("SurfaceContainerHighest().ChromaMultiplier() = %v, want 2.2", got)
	}
	s2021 := From(s, false, 0)
	s2021.SpecVersion = Spec2021
	if got := m.SurfaceContainerHighest().ChromaMultiplier(s2021); got != 1 {
		t.Errorf("ChromaMultiplier() under 2021 = %v, want 1", got)
	}
}

func TestDimRolesAreNilIn2021(t *testing.T) {
	c := ColorSpec2021{}
	for name, role := range map[string]*DynamicColor{
		"primary_dim":   c.PrimaryDim(),
		"secondary_dim": c.SecondaryDim(),
		"tertiary_dim":  c.TertiaryDim(),
		"error_dim":     c.ErrorDim(),
	} {
		if role != nil {
			t.Errorf("ColorSpec2021.%s = %v, want nil", name, role)
		}
	}
}

func TestGetColorSpec(t *testing.T) {
	if _, ok := GetColorSpec(Spec2021).(ColorSpec2021); !ok {
		t.Errorf("GetColorSpec(2021) = %T, want ColorSpec2021", GetColorSpec(Spec2021))
	}
	if _, ok := GetColorSpec(Spec2025).(ColorSpec2025); !ok {
		t.Errorf("GetColorSpec(2025) = %T, want ColorSpec2025", GetColorSpec(Spec2025))
	}
}

func TestCatalogNamesAreUnique(t *testing.T) {
	m := NewMaterialDynamicColors()
	seen := make(map[string]bool)
	for _, group := range [][]*DynamicColor{m.KeyColors(), m.AllDynamicColors(), m.AndroidColors()} {
		for _, role := range group {
			if seen[role.Name()] {
				t.Errorf("duplicate role name %q", role.Name())
			}
			seen[role.Name()] = true
		}
	}

	if role, ok := m.lookup("on_primary_container"); !ok || role.Name() != "on_primary_container" {
		t.Errorf("lookup(on_primary_container) = %v, %v", role, ok)
	}
	if _, ok := m.lookup("nope"); ok {
		t.Error("lookup(nope) ok = true")
	}
}

func TestFindBestToneForChromaStaysInRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		for _, chroma := range []float64{0, 16, 48, 120} {
			for _, down := range []bool{true, false} {
				start := 0.0
				if down {
					start = 100
				}
				tone := findBestToneForChroma(hue, chroma, start, down)
				if tone < -1 || tone > 101 {
					t.Errorf("findBestToneForChroma(%v, %v, %v) = %v", hue, chroma, start, tone)
				}
			}
		}
	}
}
