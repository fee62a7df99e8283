package dynamiccolor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownVariant is returned when parsing an unrecognised variant name.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownPlatform is returned when parsing an unrecognised platform name.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnknownSpecVersion is returned when parsing an unrecognised spec version.
	ErrUnknownSpecVersion = errors.New("unknown spec version")
)

// Variant is a stylistic preset controlling how palettes are derived from the
// source colour.
type Variant int

// Variants. The zero value is VariantTonalSpot, the default Material theme.
const (
	VariantTonalSpot Variant = iota
	VariantMonochrome
	VariantNeutral
	VariantVibrant
	VariantExpressive
	VariantFidelity
	VariantContent
	VariantRainbow
	VariantFruitSalad
)

var variantNames = []string{
	VariantTonalSpot:  "tonal_spot",
	VariantMonochrome: "monochrome",
	VariantNeutral:    "neutral",
	VariantVibrant:    "vibrant",
	VariantExpressive: "expressive",
	VariantFidelity:   "fidelity",
	VariantContent:    "content",
	VariantRainbow:    "rainbow",
	VariantFruitSalad: "fruit_salad",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant parses a variant name. Matching ignores case and treats '-'
// and '_' alike, so "tonal-spot", "TONAL_SPOT" and "tonal_spot" are equal.
func ParseVariant(s string) (Variant, error) {
	key := normaliseName(s)
	for i, name := range variantNames {
		if name == key {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVariant, s, strings.Join(variantNames, ", "))
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string { return "variant" }

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error { return v.Set(string(text)) }

// Platform is the device class a scheme targets.
type Platform int

// Platforms.
const (
	PlatformPhone Platform = iota
	PlatformWatch
)

var platformNames = []string{
	PlatformPhone: "phone",
	PlatformWatch: "watch",
}

func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// ParsePlatform parses a platform name, ignoring case.
func ParsePlatform(s string) (Platform, error) {
	key := normaliseName(s)
	for i, name := range platformNames {
		if name == key {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownPlatform, s, strings.Join(platformNames, ", "))
}

// Set implements pflag.Value.
func (p *Platform) Set(s string) error {
	parsed, err := ParsePlatform(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Platform) Type() string { return "platform" }

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error { return p.Set(string(text)) }

// SpecVersion selects the ruleset used for palette generation and tone
// resolution.
type SpecVersion int

// Spec versions.
const (
	Spec2021 SpecVersion = iota
	Spec2025
)

var specVersionNames = []string{
	Spec2021: "2021",
	Spec2025: "2025",
}

func (v SpecVersion) String() string {
	if v < 0 || int(v) >= len(specVersionNames) {
		return fmt.Sprintf("SpecVersion(%d)", int(v))
	}
	return specVersionNames[v]
}

// ParseSpecVersion parses "2021" or "2025". A "spec_" prefix is accepted.
func ParseSpecVersion(s string) (SpecVersion, error) {
	key := strings.TrimPrefix(normaliseName(s), "spec_")
	for i, name := range specVersionNames {
		if name == key {
			return SpecVersion(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownSpecVersion, s, strings.Join(specVersionNames, ", "))
}

// Set implements pflag.Value.
func (v *SpecVersion) Set(s string) error {
	parsed, err := ParseSpecVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *SpecVersion) Type() string { return "spec" }

// MarshalText implements encoding.TextMarshaler.
func (v SpecVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SpecVersion) UnmarshalText(text []byte) error { return v.Set(string(text)) }

func normaliseName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
