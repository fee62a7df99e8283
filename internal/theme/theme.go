// Package theme resolves every Material role of a scheme into a flat,
// serialisable snapshot that exporters and the CLI render.
package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
)

// ErrUnknownMode is returned when a brightness mode name is not recognised.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects which brightness variants a theme contains.
type Mode string

// Modes.
const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeBoth  Mode = "both"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains([]Mode{ModeLight, ModeDark, ModeBoth}, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (valid: light, dark, both)", ErrUnknownMode, s)
}

func (m Mode) String() string { return string(m) }

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// PaletteTones are the tones listed for each palette in a snapshot.
var PaletteTones = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90, 95, 98, 99, 100}

// Options describe the theme to generate.
type Options struct {
	Source        uint32
	Variant       dynamiccolor.Variant
	ContrastLevel float64
	Platform      dynamiccolor.Platform
	SpecVersion   dynamiccolor.SpecVersion
	Mode          Mode
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.ContrastLevel < -1 || o.ContrastLevel > 1 {
		return fmt.Errorf("contrast level must be within [-1, 1], got %v", o.ContrastLevel)
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	return nil
}

// Color is one resolved role.
type Color struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Hex    string  `json:"hex" yaml:"hex" toml:"hex"`
	Argb   uint32  `json:"argb" yaml:"argb" toml:"argb"`
	Hue    float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone" toml:"tone"`
}

// Scheme holds every role resolved for one brightness.
type Scheme struct {
	Dark     bool    `json:"dark" yaml:"dark" toml:"dark"`
	Colors   []Color `json:"colors" yaml:"colors" toml:"colors"`
	Terminal []Color `json:"terminal,omitempty" yaml:"terminal,omitempty" toml:"terminal,omitempty"`
}

// Get returns the role called name.
func (s *Scheme) Get(name string) (Color, bool) {
	for _, c := range s.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// Hex returns the hex value of role name, or the empty string.
func (s *Scheme) Hex(name string) string {
	c, _ := s.Get(name)
	return c.Hex
}

// ANSI returns terminal colour i (0-15), or the empty string.
func (s *Scheme) ANSI(i int) string {
	if i < 0 || i >= len(s.Terminal) {
		return ""
	}
	return s.Terminal[i].Hex
}

// Tone is one entry of a palette listing.
type Tone struct {
	Tone int    `json:"tone" yaml:"tone" toml:"tone"`
	Hex  string `json:"hex" yaml:"hex" toml:"hex"`
}

// Palette lists the standard tones of one of the scheme's palettes.
type Palette struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Hue      float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma   float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	KeyColor string  `json:"key_color" yaml:"key_color" toml:"key_color"`
	Tones    []Tone  `json:"tones" yaml:"tones" toml:"tones"`
}

// Theme is a generated snapshot.
type Theme struct {
	Source      string    `json:"source" yaml:"source" toml:"source"`
	Variant     string    `json:"variant" yaml:"variant" toml:"variant"`
	SpecVersion string    `json:"spec_version" yaml:"spec_version" toml:"spec_version"`
	Platform    string    `json:"platform" yaml:"platform" toml:"platform"`
	Contrast    float64   `json:"contrast" yaml:"contrast" toml:"contrast"`
	Light       *Scheme   `json:"light,omitempty" yaml:"light,omitempty" toml:"light,omitempty"`
	Dark        *Scheme   `json:"dark,omitempty" yaml:"dark,omitempty" toml:"dark,omitempty"`
	Palettes    []Palette `json:"palettes" yaml:"palettes" toml:"palettes"`
}

// Schemes returns the schemes present, light first.
func (t *Theme) Schemes() []*Scheme {
	var out []*Scheme
	if t.Light != nil {
		out = append(out, t.Light)
	}
	if t.Dark != nil {
		out = append(out, t.Dark)
	}
	return out
}

// Generate resolves a theme.
func Generate(opts Options) (*Theme, error) {
	if opts.Mode == "" {
		opts.Mode = ModeBoth
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	build := func(isDark bool) *dynamiccolor.DynamicScheme {
		return dynamiccolor.NewDynamicScheme(dynamiccolor.Options{
			Source:        hct.FromArgb(opts.Source),
			Variant:       opts.Variant,
			IsDark:        isDark,
			ContrastLevel: opts.ContrastLevel,
			Platform:      opts.Platform,
			SpecVersion:   opts.SpecVersion,
		})
	}

	t := &Theme{
		Source:   hct.HexFromArgb(opts.Source),
		Variant:  opts.Variant.String(),
		Platform: opts.Platform.String(),
		Contrast: opts.ContrastLevel,
	}

	var palettesFrom *dynamiccolor.DynamicScheme
	if opts.Mode != ModeDark {
		s := build(false)
		t.Light = resolve(s)
		palettesFrom = s
	}
	if opts.Mode != ModeLight {
		s := build(true)
		t.Dark = resolve(s)
		if palettesFrom == nil {
			palettesFrom = s
		}
	}
	t.SpecVersion = palettesFrom.SpecVersion.String()
	t.Palettes = listPalettes(palettesFrom)
	return t, nil
}

// Resolve snapshots a single scheme.
func Resolve(s *dynamiccolor.DynamicScheme) *Scheme {
	return resolve(s)
}

func resolve(s *dynamiccolor.DynamicScheme) *Scheme {
	m := dynamiccolor.NewMaterialDynamicColors()
	roles := m.AllDynamicColors()
	out := &Scheme{Dark: s.IsDark, Colors: make([]Color, 0, len(roles))}
	for _, role := range roles {
		if s.SpecVersion == dynamiccolor.Spec2021 && isDimRole(role.Name()) {
			continue
		}
		h := role.GetHct(s)
		argb := role.GetArgb(s)
		out.Colors = append(out.Colors, Color{
			Name:   role.Name(),
			Hex:    hct.HexFromArgb(argb),
			Argb:   argb,
			Hue:    round2(h.Hue()),
			Chroma: round2(h.Chroma()),
			Tone:   round2(h.Tone()),
		})
	}
	out.Terminal = Terminal(s)
	return out
}

// isDimRole reports whether name is one of the 2025 *_dim roles, which the
// 2021 rules do not define.
func isDimRole(name string) bool {
	return strings.HasSuffix(name, "_dim") && !strings.HasSuffix(name, "_fixed_dim") && name != "surface_dim"
}

func listPalettes(s *dynamiccolor.DynamicScheme) []Palette {
	named := []struct {
		name    string
		palette *palettes.TonalPalette
	}{
		{"primary", s.PrimaryPalette},
		{"secondary", s.SecondaryPalette},
		{"tertiary", s.TertiaryPalette},
		{"neutral", s.NeutralPalette},
		{"neutral_variant", s.NeutralVariantPalette},
		{"error", s.ErrorPalette},
	}

	out := make([]Palette, 0, len(named))
	for _, n := range named {
		p := Palette{
			Name:     n.name,
			Hue:      round2(n.palette.Hue()),
			Chroma:   round2(n.palette.Chroma()),
			KeyColor: n.palette.KeyColor().Hex(),
			Tones:    make([]Tone, len(PaletteTones)),
		}
		for i, tone := range PaletteTones {
			p.Tones[i] = Tone{Tone: tone, Hex: hct.HexFromArgb(n.palette.Tone(tone))}
		}
		out = append(out, p)
	}
	return out
}

func round2(x float64) float64 {
	return hct.Round(x*100) / 100
}
