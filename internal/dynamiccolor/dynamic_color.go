// Package dynamiccolor resolves Material colour roles against a scheme.
//
// A DynamicColor is a named role whose palette, tone, background and
// constraints are functions of a DynamicScheme. Roles refer to each other
// through those functions, so the role catalog forms a graph that is walked
// lazily each time a role is resolved.
package dynamiccolor

import (
	"fmt"
	"math"
	"sync"

	"github.com/jmylchreest/tonal/internal/contrast"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// hctCacheLimit is the number of schemes a DynamicColor remembers before its
// cache is cleared.
const hctCacheLimit = 4

// DynamicColor is a colour role that adjusts itself to the scheme it is
// resolved against.
//
// Build one with NewBuilder, FromPalette or FromArgb. A DynamicColor is safe
// for concurrent use.
type DynamicColor struct {
	name             string
	palette          func(*DynamicScheme) *palettes.TonalPalette
	tone             func(*DynamicScheme) float64
	isBackground     bool
	chromaMultiplier func(*DynamicScheme) float64
	background       func(*DynamicScheme) *DynamicColor
	secondBackground func(*DynamicScheme) *DynamicColor
	contrastCurve    func(*DynamicScheme) *ContrastCurve
	toneDeltaPair    func(*DynamicScheme) *ToneDeltaPair
	opacity          func(*DynamicScheme) float64

	mu       sync.Mutex
	hctCache map[*DynamicScheme]hct.HCT
}

// FromPalette creates a role with no background or constraints.
func FromPalette(name string, palette func(*DynamicScheme) *palettes.TonalPalette, tone func(*DynamicScheme) float64) *DynamicColor {
	return NewBuilder().Name(name).Palette(palette).Tone(tone).MustBuild()
}

// FromArgb creates a role that always renders argb's hue and chroma at the
// colour's own tone.
func FromArgb(name string, argb uint32) *DynamicColor {
	h := hct.FromArgb(argb)
	palette := palettes.FromArgb(argb)
	return FromPalette(name,
		func(*DynamicScheme) *palettes.TonalPalette { return palette },
		func(*DynamicScheme) float64 { return h.Tone() })
}

// Name returns the role name, for example "primary_container".
func (d *DynamicColor) Name() string { return d.name }

// IsBackground reports whether other roles may use this one as a background.
func (d *DynamicColor) IsBackground() bool { return d.isBackground }

// Palette returns the tonal palette the role draws from in s.
func (d *DynamicColor) Palette(s *DynamicScheme) *palettes.TonalPalette { return d.palette(s) }

// Background returns the role's background in s, or nil.
func (d *DynamicColor) Background(s *DynamicScheme) *DynamicColor {
	if d.background == nil {
		return nil
	}
	return d.background(s)
}

// SecondBackground returns the role's second background in s, or nil.
func (d *DynamicColor) SecondBackground(s *DynamicScheme) *DynamicColor {
	if d.secondBackground == nil {
		return nil
	}
	return d.secondBackground(s)
}

// ContrastCurve returns the role's contrast curve in s, or nil.
func (d *DynamicColor) ContrastCurve(s *DynamicScheme) *ContrastCurve {
	if d.contrastCurve == nil {
		return nil
	}
	return d.contrastCurve(s)
}

// ToneDeltaPair returns the role's tone delta pair in s, or nil.
func (d *DynamicColor) ToneDeltaPair(s *DynamicScheme) *ToneDeltaPair {
	if d.toneDeltaPair == nil {
		return nil
	}
	return d.toneDeltaPair(s)
}

// ChromaMultiplier returns the factor applied to the palette chroma in s.
func (d *DynamicColor) ChromaMultiplier(s *DynamicScheme) float64 {
	if d.chromaMultiplier == nil {
		return 1
	}
	return d.chromaMultiplier(s)
}

// Opacity returns the role's opacity in s and whether it has one.
func (d *DynamicColor) Opacity(s *DynamicScheme) (float64, bool) {
	if d.opacity == nil {
		return 1, false
	}
	return d.opacity(s), true
}

// GetArgb returns the role resolved against s as an ARGB value, with the
// role's opacity applied to the alpha channel.
func (d *DynamicColor) GetArgb(s *DynamicScheme) uint32 {
	argb := d.GetHct(s).ToArgb()
	if d.opacity == nil {
		return argb
	}
	alpha := uint32(hct.ClampInt(0, 255, int(hct.Round(d.opacity(s)*255))))
	return argb&0x00ffffff | alpha<<24
}

// GetHct returns the role resolved against s. Results are memoised per
// scheme.
func (d *DynamicColor) GetHct(s *DynamicScheme) hct.HCT {
	d.mu.Lock()
	if cached, ok := d.hctCache[s]; ok {
		d.mu.Unlock()
		return cached
	}
	d.mu.Unlock()

	answer := GetColorSpec(s.SpecVersion).GetHct(s, d)

	d.mu.Lock()
	if d.hctCache == nil || len(d.hctCache) > hctCacheLimit {
		d.hctCache = make(map[*DynamicScheme]hct.HCT)
	}
	d.hctCache[s] = answer
	d.mu.Unlock()
	return answer
}

// GetTone returns the tone the role resolves to in s.
func (d *DynamicColor) GetTone(s *DynamicScheme) float64 {
	return GetColorSpec(s.SpecVersion).GetTone(s, d)
}

// ToBuilder returns a builder initialised with this role's fields.
func (d *DynamicColor) ToBuilder() *Builder {
	return &Builder{
		name:             d.name,
		palette:          d.palette,
		tone:             d.tone,
		isBackground:     d.isBackground,
		chromaMultiplier: d.chromaMultiplier,
		background:       d.background,
		secondBackground: d.secondBackground,
		contrastCurve:    d.contrastCurve,
		toneDeltaPair:    d.toneDeltaPair,
		opacity:          d.opacity,
	}
}

func (d *DynamicColor) String() string { return d.name }

// ForegroundTone returns a tone that reaches ratio against bgTone, preferring
// a light foreground on tones below 60 and breaking near-ties towards it.
func ForegroundTone(bgTone, ratio float64) float64 {
	lighterTone := contrast.LighterUnsafe(bgTone, ratio)
	darkerTone := contrast.DarkerUnsafe(bgTone, ratio)
	lighterRatio := contrast.RatioOfTones(lighterTone, bgTone)
	darkerRatio := contrast.RatioOfTones(darkerTone, bgTone)

	if TonePrefersLightForeground(bgTone) {
		// Both sides fall short by about the same amount: stay light.
		negligibleDifference := math.Abs(lighterRatio-darkerRatio) < 0.1 &&
			lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligibleDifference {
			return lighterTone
		}
		return darkerTone
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darkerTone
	}
	return lighterTone
}

// EnableLightForeground nudges tones that prefer a light foreground, but
// cannot support one, down to 49.
func EnableLightForeground(tone float64) float64 {
	if TonePrefersLightForeground(tone) && !ToneAllowsLightForeground(tone) {
		return 49
	}
	return tone
}

// TonePrefersLightForeground reports whether tone reads better with a light
// foreground. Rounded tones below 60 do.
func TonePrefersLightForeground(tone float64) bool {
	return hct.Round(tone) < 60
}

// ToneAllowsLightForeground reports whether tone is dark enough for a light
// foreground.
func ToneAllowsLightForeground(tone float64) bool {
	return hct.Round(tone) <= 49
}

// GetInitialToneFromBackground returns a tone function that yields the
// background's tone, or 50 without one.
func GetInitialToneFromBackground(background func(*DynamicScheme) *DynamicColor) func(*DynamicScheme) float64 {
	if background == nil {
		return func(*DynamicScheme) float64 { return 50 }
	}
	return func(s *DynamicScheme) float64 {
		if bg := background(s); bg != nil {
			return bg.GetTone(s)
		}
		return 50
	}
}

// Builder assembles a DynamicColor.
type Builder struct {
	name             string
	palette          func(*DynamicScheme) *palettes.TonalPalette
	tone             func(*DynamicScheme) float64
	isBackground     bool
	chromaMultiplier func(*DynamicScheme) float64
	background       func(*DynamicScheme) *DynamicColor
	secondBackground func(*DynamicScheme) *DynamicColor
	contrastCurve    func(*DynamicScheme) *ContrastCurve
	toneDeltaPair    func(*DynamicScheme) *ToneDeltaPair
	opacity          func(*DynamicScheme) float64

	err error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Name sets the role name.
func (b *Builder) Name(name string) *Builder { b.name = name; return b }

// Palette sets the palette function.
func (b *Builder) Palette(fn func(*DynamicScheme) *palettes.TonalPalette) *Builder {
	b.palette = fn
	return b
}

// Tone sets the initial tone function. Without one the role starts at its
// background's tone, or 50.
func (b *Builder) Tone(fn func(*DynamicScheme) float64) *Builder { b.tone = fn; return b }

// IsBackground marks the role as usable as a background.
func (b *Builder) IsBackground(v bool) *Builder { b.isBackground = v; return b }

// ChromaMultiplier sets the palette chroma multiplier function.
func (b *Builder) ChromaMultiplier(fn func(*DynamicScheme) float64) *Builder {
	b.chromaMultiplier = fn
	return b
}

// Background sets the background function.
func (b *Builder) Background(fn func(*DynamicScheme) *DynamicColor) *Builder {
	b.background = fn
	return b
}

// SecondBackground sets the second background function.
func (b *Builder) SecondBackground(fn func(*DynamicScheme) *DynamicColor) *Builder {
	b.secondBackground = fn
	return b
}

// ContrastCurve sets the contrast curve function.
func (b *Builder) ContrastCurve(fn func(*DynamicScheme) *ContrastCurve) *Builder {
	b.contrastCurve = fn
	return b
}

// ToneDeltaPair sets the tone delta pair function.
func (b *Builder) ToneDeltaPair(fn func(*DynamicScheme) *ToneDeltaPair) *Builder {
	b.toneDeltaPair = fn
	return b
}

// Opacity sets the opacity function.
func (b *Builder) Opacity(fn func(*DynamicScheme) float64) *Builder { b.opacity = fn; return b }

// ExtendSpecVersion returns a builder whose every field uses extended when the
// scheme's spec version is version, and this builder's field otherwise.
//
// The extended role must share the name and background flag of this one.
func (b *Builder) ExtendSpecVersion(version SpecVersion, extended *DynamicColor) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.validateExtendedColor(version, extended); err != nil {
		return &Builder{name: b.name, err: err}
	}

	base := *b
	if base.tone == nil {
		base.tone = GetInitialToneFromBackground(base.background)
	}
	pick := func(s *DynamicScheme) bool { return s.SpecVersion == version }

	return &Builder{
		name:         base.name,
		isBackground: base.isBackground,
		palette: func(s *DynamicScheme) *palettes.TonalPalette {
			fn := base.palette
			if pick(s) {
				fn = extended.palette
			}
			if fn == nil {
				return nil
			}
			return fn(s)
		},
		tone: func(s *DynamicScheme) float64 {
			if pick(s) {
				return extended.tone(s)
			}
			return base.tone(s)
		},
		chromaMultiplier: func(s *DynamicScheme) float64 {
			fn := base.chromaMultiplier
			if pick(s) {
				fn = extended.chromaMultiplier
			}
			if fn == nil {
				return 1
			}
			return fn(s)
		},
		background: func(s *DynamicScheme) *DynamicColor {
			fn := base.background
			if pick(s) {
				fn = extended.background
			}
			if fn == nil {
				return nil
			}
			return fn(s)
		},
		secondBackground: func(s *DynamicScheme) *DynamicColor {
			fn := base.secondBackground
			if pick(s) {
				fn = extended.secondBackground
			}
			if fn == nil {
				return nil
			}
			return fn(s)
		},
		contrastCurve: func(s *DynamicScheme) *ContrastCurve {
			fn := base.contrastCurve
			if pick(s) {
				fn = extended.contrastCurve
			}
			if fn == nil {
				return nil
			}
			return fn(s)
		},
		toneDeltaPair: func(s *DynamicScheme) *ToneDeltaPair {
			fn := base.toneDeltaPair
			if pick(s) {
				fn = extended.toneDeltaPair
			}
			if fn == nil {
				return nil
			}
			return fn(s)
		},
		opacity: func(s *DynamicScheme) float64 {
			fn := base.opacity
			if pick(s) {
				fn = extended.opacity
			}
			if fn == nil {
				return 1
			}
			return fn(s)
		},
	}
}

func (b *Builder) validateExtendedColor(version SpecVersion, extended *DynamicColor) error {
	if b.name != extended.name {
		return fmt.Errorf("attempting to extend color %s with color %s of different name for spec version %s",
			b.name, extended.name, version)
	}
	if b.isBackground != extended.isBackground {
		return fmt.Errorf("attempting to extend color %s as a %s with color %s as a %s for spec version %s",
			b.name, roleKind(b.isBackground), extended.name, roleKind(extended.isBackground), version)
	}
	return nil
}

func roleKind(isBackground bool) string {
	if isBackground {
		return "background"
	}
	return "foreground"
}

// Build validates the builder and returns the role.
func (b *Builder) Build() (*DynamicColor, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.background == nil && b.secondBackground != nil {
		return nil, fmt.Errorf("color %s has secondBackground defined, but background is not defined", b.name)
	}
	if b.background == nil && b.contrastCurve != nil {
		return nil, fmt.Errorf("color %s has contrastCurve defined, but background is not defined", b.name)
	}
	if b.background != nil && b.contrastCurve == nil {
		return nil, fmt.Errorf("color %s has background defined, but contrastCurve is not defined", b.name)
	}

	tone := b.tone
	if tone == nil {
		tone = GetInitialToneFromBackground(b.background)
	}
	return &DynamicColor{
		name:             b.name,
		palette:          b.palette,
		tone:             tone,
		isBackground:     b.isBackground,
		chromaMultiplier: b.chromaMultiplier,
		background:       b.background,
		secondBackground: b.secondBackground,
		contrastCurve:    b.contrastCurve,
		toneDeltaPair:    b.toneDeltaPair,
		opacity:          b.opacity,
	}, nil
}

// MustBuild is Build, panicking on an invalid role. Role catalogs are static,
// so an invalid one is a programming error.
func (b *Builder) MustBuild() *DynamicColor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
