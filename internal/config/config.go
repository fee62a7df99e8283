// Package config loads tonal's settings from a TOML file, a .env file and
// TONAL_* environment variables, in increasing order of precedence. Command
// line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/quantize"
	"github.com/jmylchreest/tonal/internal/theme"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "TONAL_"

// Config holds every persistent setting.
type Config struct {
	Seed        string                   `toml:"seed,omitempty" comment:"Source colour as hex, e.g. #4285f4. Ignored when image is set."`
	Image       string                   `toml:"image,omitempty" comment:"Image, directory of images or image URL to extract the source colour from."`
	SeedMode    quantize.SeedMode        `toml:"seed_mode" comment:"How k-means is seeded: content, filepath, manual or random."`
	Variant     dynamiccolor.Variant     `toml:"variant"`
	Mode        theme.Mode               `toml:"mode" comment:"light, dark or both."`
	Contrast    float64                  `toml:"contrast" comment:"Contrast level in [-1, 1]."`
	Platform    dynamiccolor.Platform    `toml:"platform"`
	Spec        dynamiccolor.SpecVersion `toml:"spec"`
	Exporters   []string                 `toml:"exporters"`
	OutputDir   string                   `toml:"output_dir"`
	TemplateDir string                   `toml:"template_dir,omitempty" comment:"Directory of user templates overriding the built-in ones."`
	PluginDir   string                   `toml:"plugin_dir,omitempty" comment:"Directory searched for external exporter plugins."`
	Archive     string                   `toml:"archive,omitempty" comment:"Write every exported file into this .tar.xz as well."`
	Reload      bool                     `toml:"reload" comment:"Ask running applications to reload after export."`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SeedMode:  quantize.SeedContent,
		Variant:   dynamiccolor.VariantTonalSpot,
		Mode:      theme.ModeBoth,
		Platform:  dynamiccolor.PlatformPhone,
		Spec:      dynamiccolor.Spec2025,
		Exporters: []string{"json"},
		OutputDir: ".",
	}
}

// Validate checks the configuration for values no command could use.
func (c *Config) Validate() error {
	if c.Contrast < -1 || c.Contrast > 1 {
		return fmt.Errorf("contrast must be within [-1, 1], got %v", c.Contrast)
	}
	if c.Seed != "" {
		if _, err := hct.ArgbFromHex(c.Seed); err != nil {
			return fmt.Errorf("invalid seed colour: %w", err)
		}
	}
	if _, err := theme.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := quantize.ParseSeedMode(string(c.SeedMode)); err != nil {
		return err
	}
	for i, name := range c.Exporters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("exporter %d: name is required", i)
		}
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}

// SeedArgb parses Seed.
func (c *Config) SeedArgb() (uint32, error) {
	if c.Seed == "" {
		return 0, fmt.Errorf("no seed colour configured")
	}
	return hct.ArgbFromHex(c.Seed)
}

// DefaultPath returns $XDG_CONFIG_HOME/tonal/config.toml, falling back to
// ~/.config/tonal/config.toml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tonal", "config.toml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tonal", "config.toml"), nil
}

// Load reads the configuration at path over the defaults and applies the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
	switch {
	case err == nil:
		if err := Decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Decode parses TOML into cfg, rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads a .env file from dir into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with TONAL_* variables found through lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SEED"); ok {
		cfg.Seed = v
	}
	if v, ok := get("IMAGE"); ok {
		cfg.Image = v
	}
	if v, ok := get("SEED_MODE"); ok {
		cfg.SeedMode = quantize.SeedMode(v)
	}
	if v, ok := get("VARIANT"); ok {
		if err := cfg.Variant.Set(v); err != nil {
			return fmt.Errorf("%sVARIANT: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("MODE"); ok {
		if err := cfg.Mode.Set(v); err != nil {
			return fmt.Errorf("%sMODE: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("CONTRAST"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sCONTRAST: %w", EnvPrefix, err)
		}
		cfg.Contrast = f
	}
	if v, ok := get("PLATFORM"); ok {
		if err := cfg.Platform.Set(v); err != nil {
			return fmt.Errorf("%sPLATFORM: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("SPEC"); ok {
		if err := cfg.Spec.Set(v); err != nil {
			return fmt.Errorf("%sSPEC: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("EXPORTERS"); ok {
		cfg.Exporters = splitList(v)
	}
	if v, ok := get("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := get("TEMPLATE_DIR"); ok {
		cfg.TemplateDir = v
	}
	if v, ok := get("PLUGIN_DIR"); ok {
		cfg.PluginDir = v
	}
	if v, ok := get("ARCHIVE"); ok {
		cfg.Archive = v
	}
	if v, ok := get("RELOAD"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sRELOAD: %w", EnvPrefix, err)
		}
		cfg.Reload = b
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	return os.ExpandEnv(expanded), nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Image, &c.OutputDir, &c.TemplateDir, &c.PluginDir, &c.Archive} {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
