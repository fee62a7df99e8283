package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "light", want: ModeLight},
		{input: " Dark ", want: ModeDark},
		{input: "BOTH", want: ModeBoth},
		{input: "dusk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseMode(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestGenerateModes(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantLight bool
		wantDark  bool
	}{
		{mode: ModeLight, wantLight: true},
		{mode: ModeDark, wantDark: true},
		{mode: ModeBoth, wantLight: true, wantDark: true},
		{mode: "", wantLight: true, wantDark: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			th, err := Generate(Options{Source: 0xff4285f4, Mode: tt.mode, SpecVersion: dynamiccolor.Spec2025})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if (th.Light != nil) != tt.wantLight || (th.Dark != nil) != tt.wantDark {
				t.Errorf("Generate() light = %v, dark = %v, want %v, %v", th.Light != nil, th.Dark != nil, tt.wantLight, tt.wantDark)
			}
			if got := len(th.Schemes()); got != btoi(tt.wantLight)+btoi(tt.wantDark) {
				t.Errorf("len(Schemes()) = %d", got)
			}
		})
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestGenerateValidates(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "contrast too high", opts: Options{ContrastLevel: 1.5}},
		{name: "contrast too low", opts: Options{ContrastLevel: -2}},
		{name: "bad mode", opts: Options{Mode: "dusk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.opts); err == nil {
				t.Error("Generate() error = nil")
			}
		})
	}
}

func TestGenerateMatchesScheme(t *testing.T) {
	th, err := Generate(Options{Source: 0xff6750a4, Variant: dynamiccolor.VariantVibrant, SpecVersion: dynamiccolor.Spec2025, Mode: ModeLight})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if th.Source != "#6750a4" || th.Variant != "vibrant" || th.SpecVersion != "2025" {
		t.Errorf("Generate() header = %s %s %s", th.Source, th.Variant, th.SpecVersion)
	}

	s := dynamiccolor.NewDynamicScheme(dynamiccolor.Options{
		Source:      hct.FromArgb(0xff6750a4),
		Variant:     dynamiccolor.VariantVibrant,
		SpecVersion: dynamiccolor.Spec2025,
	})
	primary, ok := th.Light.Get("primary")
	if !ok {
		t.Fatal("Get(primary) ok = false")
	}
	if primary.Argb != s.Primary() {
		t.Errorf("primary = %#08x, want %#08x", primary.Argb, s.Primary())
	}
	if th.Light.Hex("primary") != primary.Hex || th.Light.Hex("missing") != "" {
		t.Error("Hex() does not match Get()")
	}
}

func TestDimRolesOnlyIn2025(t *testing.T) {
	for _, tt := range []struct {
		version dynamiccolor.SpecVersion
		want    bool
	}{
		{version: dynamiccolor.Spec2021, want: false},
		{version: dynamiccolor.Spec2025, want: true},
	} {
		th, err := Generate(Options{Source: 0xff4285f4, SpecVersion: tt.version, Mode: ModeDark})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, ok := th.Dark.Get("primary_dim"); ok != tt.want {
			t.Errorf("%s: primary_dim present = %v, want %v", tt.version, ok, tt.want)
		}
		for _, name := range []string{"surface_dim", "primary_fixed_dim"} {
			if _, ok := th.Dark.Get(name); !ok {
				t.Errorf("%s: %s missing", tt.version, name)
			}
		}
	}
}

func TestPalettes(t *testing.T) {
	th, err := Generate(Options{Source: 0xff4285f4, Mode: ModeLight})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(th.Palettes) != 6 {
		t.Fatalf("len(Palettes) = %d, want 6", len(th.Palettes))
	}
	for _, p := range th.Palettes {
		if len(p.Tones) != len(PaletteTones) {
			t.Errorf("%s: len(Tones) = %d, want %d", p.Name, len(p.Tones), len(PaletteTones))
		}
		if p.Tones[0].Hex != "#000000" || p.Tones[len(p.Tones)-1].Hex != "#ffffff" {
			t.Errorf("%s: tone 0 = %s, tone 100 = %s", p.Name, p.Tones[0].Hex, p.Tones[len(p.Tones)-1].Hex)
		}
		if !strings.HasPrefix(p.KeyColor, "#") {
			t.Errorf("%s: KeyColor = %q", p.Name, p.KeyColor)
		}
	}
}
