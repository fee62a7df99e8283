// Package dislike detects and fixes colours that are universally disliked:
// dark, saturated yellow-greens that read as bile or mould.
package dislike

import "github.com/jmylchreest/tonal/internal/hct"

// IsDisliked reports whether h falls in the disliked region: hue 90 to 111,
// chroma above 16 and tone below 65, all rounded.
func IsDisliked(h hct.HCT) bool {
	hue := hct.Round(h.Hue())
	huePasses := hue >= 90 && hue <= 111
	chromaPasses := hct.Round(h.Chroma()) > 16
	tonePasses := hct.Round(h.Tone()) < 65
	return huePasses && chromaPasses && tonePasses
}

// FixIfDisliked lightens a disliked colour to tone 70, keeping hue and
// chroma. Other colours are returned unchanged.
func FixIfDisliked(h hct.HCT) hct.HCT {
	if IsDisliked(h) {
		return hct.From(h.Hue(), h.Chroma(), 70)
	}
	return h
}
