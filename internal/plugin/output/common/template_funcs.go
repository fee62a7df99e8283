// Package common provides shared utilities for exporters.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/theme"
)

// TemplateData is the value templates execute against. The embedded theme
// exposes .Light, .Dark and .Palettes; Scheme is the one the exporter
// renders primarily.
type TemplateData struct {
	*theme.Theme
	Scheme *theme.Scheme
	// Vars carries exporter settings templates may use, e.g. a CSS prefix.
	Vars map[string]string
}

// NewTemplateData selects the preferred scheme of t, falling back to
// whichever brightness is present.
func NewTemplateData(t *theme.Theme, preferDark bool) (*TemplateData, error) {
	if t == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}
	s := t.Light
	if preferDark && t.Dark != nil || s == nil {
		s = t.Dark
	}
	if s == nil {
		return nil, fmt.Errorf("theme has no schemes")
	}
	return &TemplateData{Theme: t, Scheme: s, Vars: map[string]string{}}, nil
}

// ThemeType returns "dark" or "light" for the primary scheme.
func (d *TemplateData) ThemeType() string {
	if d.Scheme.Dark {
		return "dark"
	}
	return "light"
}

// TemplateFuncs returns the template functions shared by every exporter.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Role access.
		"get":     getRoleFunc,
		"getSafe": getSafeRoleFunc,
		"has":     hasRoleFunc,
		"ansi":    ansiFunc,

		// Palette access.
		"palette": paletteFunc,
		"tone":    toneFunc,

		// Format conversion.
		"hex":        hexFunc,
		"hexAlpha":   hexAlphaFunc,
		"hexNoHash":  hexNoHashFunc,
		"rgb":        rgbFunc,
		"rgba":       rgbaFunc,
		"rgbDecimal": rgbDecimalFunc,
		"hsl":        hslFunc,
		"isOpaque":   isOpaqueFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"kebab":      kebabFunc,
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// extractScheme accepts *TemplateData or *theme.Scheme.
func extractScheme(data any) *theme.Scheme {
	switch v := data.(type) {
	case *TemplateData:
		return v.Scheme
	case *theme.Scheme:
		return v
	default:
		panic(fmt.Sprintf("expected *common.TemplateData or *theme.Scheme, got %T", data))
	}
}

// getRoleFunc returns a role by name.
// Panics if the role doesn't exist; use getSafe or has to check first.
func getRoleFunc(data any, roleName string) theme.Color {
	c, ok := extractScheme(data).Get(roleName)
	if !ok {
		panic(fmt.Sprintf("role %q not found", roleName))
	}
	return c
}

func getSafeRoleFunc(data any, roleName string) (theme.Color, error) {
	c, ok := extractScheme(data).Get(roleName)
	if !ok {
		return theme.Color{}, fmt.Errorf("role %q not found", roleName)
	}
	return c, nil
}

func hasRoleFunc(data any, roleName string) bool {
	_, ok := extractScheme(data).Get(roleName)
	return ok
}

// ansiFunc returns terminal colour i (0-15).
func ansiFunc(data any, i int) (theme.Color, error) {
	s := extractScheme(data)
	if i < 0 || i >= len(s.Terminal) {
		return theme.Color{}, fmt.Errorf("ansi index %d out of range (scheme has %d terminal colors)", i, len(s.Terminal))
	}
	return s.Terminal[i], nil
}

func paletteFunc(data any, name string) (theme.Palette, error) {
	var t *theme.Theme
	switch v := data.(type) {
	case *TemplateData:
		t = v.Theme
	case *theme.Theme:
		t = v
	default:
		return theme.Palette{}, fmt.Errorf("expected *common.TemplateData or *theme.Theme, got %T", data)
	}
	for _, p := range t.Palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return theme.Palette{}, fmt.Errorf("palette %q not found", name)
}

func toneFunc(tone int, p theme.Palette) (string, error) {
	for _, t := range p.Tones {
		if t.Tone == tone {
			return t.Hex, nil
		}
	}
	return "", fmt.Errorf("tone %d not listed for palette %q", tone, p.Name)
}

// hexFunc returns #RRGGBB.
func hexFunc(c theme.Color) string {
	return c.Hex
}

// hexAlphaFunc returns #RRGGBBAA.
func hexAlphaFunc(c theme.Color) string {
	return fmt.Sprintf("%s%02x", hct.HexFromArgb(c.Argb), hct.Alpha(c.Argb))
}

// hexNoHashFunc returns RRGGBB.
func hexNoHashFunc(c theme.Color) string {
	return strings.TrimPrefix(c.Hex, "#")
}

// rgbFunc returns CSS rgb(r, g, b).
func rgbFunc(c theme.Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", hct.Red(c.Argb), hct.Green(c.Argb), hct.Blue(c.Argb))
}

// rgbaFunc returns CSS rgba(r, g, b, a) using the role's own opacity.
func rgbaFunc(c theme.Color) string {
	alpha := float64(hct.Alpha(c.Argb)) / 255
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", hct.Red(c.Argb), hct.Green(c.Argb), hct.Blue(c.Argb), alpha)
}

// rgbDecimalFunc returns "r,g,b".
func rgbDecimalFunc(c theme.Color) string {
	return fmt.Sprintf("%d,%d,%d", hct.Red(c.Argb), hct.Green(c.Argb), hct.Blue(c.Argb))
}

func isOpaqueFunc(c theme.Color) bool {
	return hct.IsOpaque(c.Argb)
}

// hslFunc returns CSS hsl(h, s%, l%).
func hslFunc(c theme.Color) string {
	cf := colorful.Color{
		R: float64(hct.Red(c.Argb)) / 255,
		G: float64(hct.Green(c.Argb)) / 255,
		B: float64(hct.Blue(c.Argb)) / 255,
	}
	h, s, l := cf.Hsl()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

// kebabFunc turns a role name such as on_primary into on-primary.
func kebabFunc(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order):
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc removes a suffix from a string (pipe-friendly argument order).
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order):
//
//	{{ value | replace "_" "-" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
