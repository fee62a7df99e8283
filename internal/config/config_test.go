package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/theme"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "contrast out of range", modify: func(c *Config) { c.Contrast = 2 }, wantErr: "contrast"},
		{name: "bad seed", modify: func(c *Config) { c.Seed = "#zzzzzz" }, wantErr: "invalid seed"},
		{name: "bad mode", modify: func(c *Config) { c.Mode = "dusk" }, wantErr: "unknown mode"},
		{name: "bad seed mode", modify: func(c *Config) { c.SeedMode = "lunar" }, wantErr: "invalid seed mode"},
		{name: "blank exporter", modify: func(c *Config) { c.Exporters = []string{"json", " "} }, wantErr: "exporter 1"},
		{name: "no output dir", modify: func(c *Config) { c.OutputDir = "" }, wantErr: "output_dir"},
		{name: "good seed", modify: func(c *Config) { c.Seed = "#4285f4" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	data := []byte(`
seed = "#6750a4"
variant = "vibrant"
mode = "dark"
contrast = 0.5
platform = "watch"
spec = "2021"
exporters = ["css", "kitty"]
output_dir = "/tmp/out"
`)
	cfg := DefaultConfig()
	if err := Decode(data, &cfg); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Seed != "#6750a4" || cfg.Variant != dynamiccolor.VariantVibrant || cfg.Mode != theme.ModeDark {
		t.Errorf("Decode() = %+v", cfg)
	}
	if cfg.Contrast != 0.5 || cfg.Platform != dynamiccolor.PlatformWatch || cfg.Spec != dynamiccolor.Spec2021 {
		t.Errorf("Decode() = %+v", cfg)
	}
	if !slices.Equal(cfg.Exporters, []string{"css", "kitty"}) {
		t.Errorf("Exporters = %v", cfg.Exporters)
	}

	if err := Decode([]byte(`colour = "red"`), &cfg); err == nil || !strings.Contains(err.Error(), "unknown config keys") {
		t.Errorf("Decode() of an unknown key error = %v", err)
	}
	if err := Decode([]byte(`variant = "pastel"`), &cfg); err == nil {
		t.Error("Decode() of an unknown variant error = nil")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "#123456"
	cfg.Variant = dynamiccolor.VariantFruitSalad
	data, err := Encode(&cfg)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), "fruit_salad") {
		t.Errorf("Encode() = %s, want variant as text", data)
	}

	var got Config
	if err := Decode(data, &got); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Seed != cfg.Seed || got.Variant != cfg.Variant || got.Spec != cfg.Spec {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TONAL_SEED":       "#ff0000",
		"TONAL_VARIANT":    "expressive",
		"TONAL_CONTRAST":   "-0.5",
		"TONAL_EXPORTERS":  "json, css,,kitty",
		"TONAL_RELOAD":     "true",
		"TONAL_OUTPUT_DIR": "  ",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Seed != "#ff0000" || cfg.Variant != dynamiccolor.VariantExpressive || cfg.Contrast != -0.5 || !cfg.Reload {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
	if !slices.Equal(cfg.Exporters, []string{"json", "css", "kitty"}) {
		t.Errorf("Exporters = %v", cfg.Exporters)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want blank variable ignored", cfg.OutputDir)
	}

	bad := func(key string) (string, bool) {
		if key == "TONAL_SPEC" {
			return "1999", true
		}
		return "", false
	}
	if err := ApplyEnv(&cfg, bad); err == nil || !strings.Contains(err.Error(), "TONAL_SPEC") {
		t.Errorf("ApplyEnv() error = %v, want TONAL_SPEC", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("variant = \"neutral\"\noutput_dir = \"$TONAL_TEST_OUT/themes\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TONAL_TEST_OUT", dir)
	t.Setenv("TONAL_MODE", "light")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Variant != dynamiccolor.VariantNeutral {
		t.Errorf("Variant = %s, want neutral", cfg.Variant)
	}
	if cfg.Mode != theme.ModeLight {
		t.Errorf("Mode = %s, want light from the environment", cfg.Mode)
	}
	if want := filepath.Join(dir, "themes"); cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing explicit path error = nil")
	}
}

func TestLoadDefaultPathMayBeMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Spec != dynamiccolor.Spec2025 {
		t.Errorf("Spec = %s, want the default", cfg.Spec)
	}
}

func TestSaveAndDefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join(xdg, "tonal", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}

	cfg := DefaultConfig()
	cfg.Contrast = 1
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Contrast != 1 {
		t.Errorf("Contrast = %v, want 1", loaded.Contrast)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(dir); err != nil {
		t.Errorf("LoadDotEnv() without a file error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TONAL_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TONAL_DOTENV_PROBE", "")
	os.Unsetenv("TONAL_DOTENV_PROBE")
	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("TONAL_DOTENV_PROBE"); got != "from-file" {
		t.Errorf("TONAL_DOTENV_PROBE = %q, want from-file", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/themes")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if want := filepath.Join(home, "themes"); got != want {
		t.Errorf("ExpandPath(~/themes) = %q, want %q", got, want)
	}
}
