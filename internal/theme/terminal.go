package theme

import (
	"math"

	"github.com/jmylchreest/tonal/internal/blend"
	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// ANSINames are the names of the 16 terminal colours, in ANSI order.
var ANSINames = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightblack", "brightred", "brightgreen", "brightyellow",
	"brightblue", "brightmagenta", "brightcyan", "brightwhite",
}

// ansiHues are the design colours harmonised toward the source, indexed like
// ANSINames[1:7].
var ansiHues = []uint32{
	0xfff44336, // red
	0xff4caf50, // green
	0xffffeb3b, // yellow
	0xff2196f3, // blue
	0xff9c27b0, // magenta
	0xff00bcd4, // cyan
}

// maxTerminalChroma keeps harmonised accents readable next to muted surfaces.
const maxTerminalChroma = 60

// terminalTones returns the tones used for normal and bright accents.
func terminalTones(isDark bool) (normal, bright int) {
	if isDark {
		return 70, 80
	}
	return 40, 50
}

// Terminal derives a 16 colour ANSI palette from a scheme. Accents are fixed
// design colours rotated toward the source hue; greys come from the neutral
// palette so black stays dark and white stays light in both brightnesses.
func Terminal(s *dynamiccolor.DynamicScheme) []Color {
	source := s.SourceColorArgb()
	normal, bright := terminalTones(s.IsDark)

	out := make([]Color, 16)
	greys := map[int]int{0: 20, 7: 80, 8: 50, 15: 95}
	for idx, tone := range greys {
		out[idx] = newColor(ANSINames[idx], s.NeutralPalette.Tone(tone))
	}

	for i, design := range ansiHues {
		h := hct.FromArgb(blend.Harmonize(design, source))
		p := palettes.FromHueAndChroma(h.Hue(), math.Min(h.Chroma(), maxTerminalChroma))
		out[i+1] = newColor(ANSINames[i+1], p.Tone(normal))
		out[i+9] = newColor(ANSINames[i+9], p.Tone(bright))
	}
	return out
}

func newColor(name string, argb uint32) Color {
	h := hct.FromArgb(argb)
	return Color{
		Name:   name,
		Hex:    hct.HexFromArgb(argb),
		Argb:   argb,
		Hue:    round2(h.Hue()),
		Chroma: round2(h.Chroma()),
		Tone:   round2(h.Tone()),
	}
}
