// Package testing provides shared test utilities for exporters.
package testing

import (
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/theme"
)

// TestSource is the seed colour used by NewTestTheme.
const TestSource = 0xff6750a4

// TestBasicInterface tests the methods every exporter must implement.
// An empty expectedDirSubstring means the exporter writes to the configured
// output directory and DefaultOutputDir must be empty.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string, expectedDirSubstring string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		dir := p.DefaultOutputDir()
		if expectedDirSubstring == "" {
			if dir != "" {
				t.Errorf("DefaultOutputDir() = %s, want empty", dir)
			}
			return
		}
		if !strings.Contains(dir, expectedDirSubstring) {
			t.Errorf("DefaultOutputDir() = %s, should contain '%s'", dir, expectedDirSubstring)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests Generate against light, dark and dual themes.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(NewTestTheme(t, theme.ModeBoth))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilTheme", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil theme should return error")
		}
	})

	for _, mode := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		t.Run("GenerateOnly"+mode.String(), func(t *testing.T) {
			files, err := p.Generate(NewTestTheme(t, mode))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(files) == 0 {
				t.Error("Generate() returned no files")
			}
		})
	}
}

// TestLoggerPlugin checks SetLogger if the exporter implements it.
func TestLoggerPlugin(t *testing.T, p any) {
	lp, ok := p.(output.LoggerPlugin)
	if !ok {
		t.Skip("Plugin does not implement SetLogger")
	}

	t.Run("SetLogger", func(_ *testing.T) {
		lp.SetLogger(hclog.NewNullLogger())
		lp.SetLogger(nil)
	})
}

// TestFlags tests exporter-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlags []string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		p.RegisterFlags(cmd)

		for _, name := range expectedFlags {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("RegisterFlags() did not register %s flag", name)
			}
		}
	})
}

// TestPreExecuteHook tests the PreExecute hook if the exporter implements it.
func TestPreExecuteHook(t *testing.T, p any, expectedBinaryName string) {
	peh, ok := p.(output.PreExecuteHook)
	if !ok {
		t.Skip("Plugin does not implement PreExecute")
	}

	t.Run("PreExecute", func(t *testing.T) {
		skip, reason, err := peh.PreExecute(context.Background())
		if err != nil {
			t.Errorf("PreExecute() unexpected error = %v", err)
		}
		if skip && !strings.Contains(reason, expectedBinaryName) {
			t.Errorf("PreExecute() skip reason should mention %s, got: %s", expectedBinaryName, reason)
		}
	})
}

// NewTestTheme generates a tonal spot theme from TestSource.
func NewTestTheme(t *testing.T, mode theme.Mode) *theme.Theme {
	t.Helper()
	th, err := theme.Generate(theme.Options{
		Source:      TestSource,
		Variant:     dynamiccolor.VariantTonalSpot,
		SpecVersion: dynamiccolor.Spec2025,
		Mode:        mode,
	})
	if err != nil {
		t.Fatalf("theme.Generate() error = %v", err)
	}
	return th
}

// RunAllTests runs all standard tests for an exporter.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName, config.ExpectedDirSubstring)
	TestGeneration(t, p, config.ExpectedFiles)
	TestLoggerPlugin(t, p)
	TestFlags(t, p, config.ExpectedFlags)
	TestPreExecuteHook(t, p, config.ExpectedBinaryName)
}

// TestConfig holds configuration for running exporter tests.
type TestConfig struct {
	ExpectedName         string   // Exporter name
	ExpectedFiles        []string // Files that Generate() should return
	ExpectedFlags        []string // Flags RegisterFlags() should add
	ExpectedBinaryName   string   // Binary name to check in PreExecute (e.g., "kitty")
	ExpectedDirSubstring string   // Substring of DefaultOutputDir; empty means it must be empty
}
