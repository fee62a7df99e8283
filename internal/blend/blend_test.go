package blend

import (
	"testing"

	"github.com/jmylchreest/tonal/internal/hct"
)

const (
	red    = 0xffff0000
	blue   = 0xff0000ff
	green  = 0xff00ff00
	yellow = 0xffffff00
)

func closeArgb(a, b uint32) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			return -d
		}
		return d
	}
	return diff(hct.Red(a), hct.Red(b)) <= 1 && diff(hct.Green(a), hct.Green(b)) <= 1 && diff(hct.Blue(a), hct.Blue(b)) <= 1
}

func TestHarmonize(t *testing.T) {
	tests := []struct {
		name           string
		design, source uint32
		want           uint32
	}{
		{name: "red to blue", design: red, source: blue, want: 0xfffb0057},
		{name: "red to green", design: red, source: green, want: 0xffd85600},
		{name: "red to yellow", design: red, source: yellow, want: 0xffd85600},
		{name: "blue to green", design: blue, source: green, want: 0xff0047a3},
		{name: "blue to red", design: blue, source: red, want: 0xff5700dc},
		{name: "green to blue", design: green, source: blue, want: 0xff00fc94},
		{name: "green to red", design: green, source: red, want: 0xffb1f000},
		{name: "yellow to red", design: yellow, source: red, want: 0xfffff6e3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Harmonize(tt.design, tt.source); !closeArgb(got, tt.want) {
				t.Errorf("Harmonize(%#08x, %#08x) = %#08x, want %#08x", tt.design, tt.source, got, tt.want)
			}
		})
	}
}

func TestHarmonizeRotatesAtMost15Degrees(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 20 {
		design := hct.From(hue, 50, 50).ToArgb()
		got := Harmonize(design, blue)
		before := hct.FromArgb(design).Hue()
		after := hct.FromArgb(got).Hue()
		if d := hct.DifferenceDegrees(before, after); d > 15.5 {
			t.Errorf("Harmonize() moved hue %.1f by %.1f degrees", before, d)
		}
	}
}

func TestCam16UcsEndpoints(t *testing.T) {
	if got := Cam16Ucs(red, blue, 0); !closeArgb(got, red) {
		t.Errorf("Cam16Ucs(amount 0) = %#08x, want %#08x", got, uint32(red))
	}
	if got := Cam16Ucs(red, blue, 1); !closeArgb(got, blue) {
		t.Errorf("Cam16Ucs(amount 1) = %#08x, want %#08x", got, uint32(blue))
	}
}

func TestHctHueKeepsTone(t *testing.T) {
	got := hct.FromArgb(HctHue(red, blue, 0.5))
	want := hct.FromArgb(red)
	if d := got.Tone() - want.Tone(); d > 1 || d < -1 {
		t.Errorf("HctHue() tone = %.2f, want %.2f", got.Tone(), want.Tone())
	}
}
