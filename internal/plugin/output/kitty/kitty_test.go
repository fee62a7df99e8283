package kitty

import (
	"context"
	"strings"
	"testing"

	outputtest "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/internal/theme"
)

func TestPlugin(t *testing.T) {
	outputtest.RunAllTests(t, New(), outputtest.TestConfig{
		ExpectedName:         "kitty",
		ExpectedFiles:        []string{"tonal.conf"},
		ExpectedFlags:        []string{"kitty.output-dir", "kitty.reload", "kitty.light"},
		ExpectedBinaryName:   "kitty",
		ExpectedDirSubstring: "kitty",
	})
}

func TestGenerate(t *testing.T) {
	th := outputtest.NewTestTheme(t, theme.ModeBoth)

	tests := []struct {
		name        string
		preferLight bool
		scheme      *theme.Scheme
	}{
		{name: "dark by default", preferLight: false, scheme: th.Dark},
		{name: "light when asked", preferLight: true, scheme: th.Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.preferLight = tt.preferLight
			files, err := p.Generate(th)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			conf := string(files["tonal.conf"])

			for _, want := range []string{
				"background              " + tt.scheme.Hex("surface"),
				"foreground              " + tt.scheme.Hex("on_surface"),
				"cursor                  " + tt.scheme.Hex("primary"),
				"color0                  " + tt.scheme.ANSI(0),
				"color15                 " + tt.scheme.ANSI(15),
			} {
				if !strings.Contains(conf, want) {
					t.Errorf("Generate() missing line %q", want)
				}
			}
		})
	}
}

func TestDefaultOutputDir(t *testing.T) {
	p := New()
	p.outputDir = "/tmp/kitty-test"
	if got := p.DefaultOutputDir(); got != "/tmp/kitty-test" {
		t.Errorf("DefaultOutputDir() = %q, want /tmp/kitty-test", got)
	}
}

func TestPreExecuteSkipsWithoutConfigDir(t *testing.T) {
	p := New()
	p.outputDir = t.TempDir() + "/missing"
	skip, reason, err := p.PreExecute(context.Background())
	if err != nil {
		t.Fatalf("PreExecute() error = %v", err)
	}
	if !skip || !strings.Contains(reason, "kitty") {
		t.Errorf("PreExecute() = %v, %q, want skip mentioning kitty", skip, reason)
	}
}

func TestPostExecuteWithoutReload(t *testing.T) {
	if err := New().PostExecute(context.Background(), []string{"tonal.conf"}); err != nil {
		t.Errorf("PostExecute() without reload error = %v", err)
	}
}
