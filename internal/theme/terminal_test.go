package theme

import (
	"testing"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
)

func TestTerminal(t *testing.T) {
	tests := []struct {
		name       string
		isDark     bool
		wantNormal float64
		wantBright float64
	}{
		{name: "light", isDark: false, wantNormal: 40, wantBright: 50},
		{name: "dark", isDark: true, wantNormal: 70, wantBright: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := dynamiccolor.NewDynamicScheme(dynamiccolor.Options{
				Source: hct.FromArgb(0xff6750a4),
				IsDark: tt.isDark,
			})
			colors := Terminal(s)
			if len(colors) != 16 {
				t.Fatalf("len(Terminal()) = %d, want 16", len(colors))
			}
			for i, c := range colors {
				if c.Name != ANSINames[i] {
					t.Errorf("Terminal()[%d].Name = %q, want %q", i, c.Name, ANSINames[i])
				}
			}
			for i := 1; i <= 6; i++ {
				if d := colors[i].Tone - tt.wantNormal; d > 1 || d < -1 {
					t.Errorf("%s tone = %v, want %v", colors[i].Name, colors[i].Tone, tt.wantNormal)
				}
				if d := colors[i+8].Tone - tt.wantBright; d > 1 || d < -1 {
					t.Errorf("%s tone = %v, want %v", colors[i+8].Name, colors[i+8].Tone, tt.wantBright)
				}
			}
			if colors[0].Tone >= colors[15].Tone {
				t.Errorf("black tone %v >= brightwhite tone %v", colors[0].Tone, colors[15].Tone)
			}
		})
	}
}

func TestTerminalRedStaysRed(t *testing.T) {
	s := dynamiccolor.NewDynamicScheme(dynamiccolor.Options{Source: hct.FromArgb(0xff0000ff), IsDark: true})
	red := hct.FromArgb(0xfff44336).Hue()
	got := Terminal(s)[1]
	if d := hct.DifferenceDegrees(got.Hue, red); d > 16 {
		t.Errorf("red hue = %v, %v degrees from design red, want <= 15", got.Hue, d)
	}
}

func TestSchemeANSI(t *testing.T) {
	th, err := Generate(Options{Source: 0xff6750a4, Mode: ModeDark})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := th.Dark.ANSI(4); got != th.Dark.Terminal[4].Hex {
		t.Errorf("ANSI(4) = %q, want %q", got, th.Dark.Terminal[4].Hex)
	}
	if got := th.Dark.ANSI(16); got != "" {
		t.Errorf("ANSI(16) = %q, want empty", got)
	}
}
