package css

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	outputtest "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/internal/theme"
)

func TestPlugin(t *testing.T) {
	outputtest.RunAllTests(t, New(), outputtest.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{"tonal.css"},
		ExpectedFlags: []string{"css.output-dir", "css.filename", "css.prefix"},
	})
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		mode      theme.Mode
		wantMedia bool
		wantValue func(*theme.Theme) string
	}{
		{name: "both", mode: theme.ModeBoth, wantMedia: true, wantValue: func(th *theme.Theme) string { return th.Light.Hex("primary") }},
		{name: "dark only", mode: theme.ModeDark, wantMedia: false, wantValue: func(th *theme.Theme) string { return th.Dark.Hex("primary") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := outputtest.NewTestTheme(t, tt.mode)
			files, err := New().Generate(th)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			css := string(files["tonal.css"])

			if got := strings.Contains(css, "@media (prefers-color-scheme: dark)"); got != tt.wantMedia {
				t.Errorf("media query present = %v, want %v", got, tt.wantMedia)
			}
			want := "--md-sys-color-primary: " + tt.wantValue(th) + ";"
			if !strings.Contains(css, want) {
				t.Errorf("Generate() missing %q", want)
			}
			if !strings.Contains(css, "--md-sys-color-on-primary-container:") {
				t.Error("Generate() did not kebab-case role names")
			}
			if !strings.Contains(css, "--md-sys-color-ansi-brightred:") {
				t.Error("Generate() missing terminal colours")
			}
		})
	}
}

func TestGeneratePrefix(t *testing.T) {
	p := New()
	p.prefix = "tonal-"
	files, err := p.Generate(outputtest.NewTestTheme(t, theme.ModeLight))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	css := string(files["tonal.css"])
	if !strings.Contains(css, "--tonal-scrim: #000000;") {
		t.Error("Generate() did not apply the custom prefix")
	}
	if strings.Contains(css, DefaultPrefix) {
		t.Error("Generate() still uses the default prefix")
	}
}

func TestCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "css", templateFile)
	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(custom, []byte(`{{ get . "primary" | hex }}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	p := New()
	p.SetTemplateDir(dir)
	th := outputtest.NewTestTheme(t, theme.ModeLight)
	files, err := p.Generate(th)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := string(files["tonal.css"]); got != th.Light.Hex("primary") {
		t.Errorf("Generate() with custom template = %q, want %q", got, th.Light.Hex("primary"))
	}
}
