package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"theme.conf.tmpl": {Data: []byte("# embedded {{ .Source }}\n")},
		"extra.css.tmpl":  {Data: []byte(":root {}\n")},
		"README.md":       {Data: []byte("not a template")},
	}
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	return New("testplugin", testFS()).WithCustomBase(t.TempDir())
}

func TestLoader_Load(t *testing.T) {
	loader := newTestLoader(t)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("theme.conf.tmpl")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if fromCustom {
			t.Error("Load() fromCustom = true, want false")
		}
		if !strings.Contains(string(content), "embedded") {
			t.Errorf("Load() = %q, want embedded content", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customPath := loader.CustomPath("theme.conf.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(customPath, []byte("# custom\n"), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		content, fromCustom, err := loader.Load("theme.conf.tmpl")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !fromCustom || string(content) != "# custom\n" {
			t.Errorf("Load() = %q, %v, want custom content", content, fromCustom)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

func TestLoader_Paths(t *testing.T) {
	loader := New("kitty", testFS()).WithCustomBase("/home/user/.config/tonal/templates")

	if got, want := loader.CustomPath("tonal.conf.tmpl"), "/home/user/.config/tonal/templates/kitty/tonal.conf.tmpl"; got != want {
		t.Errorf("CustomPath() = %q, want %q", got, want)
	}
	if got, want := loader.CustomDir(), "/home/user/.config/tonal/templates/kitty"; got != want {
		t.Errorf("CustomDir() = %q, want %q", got, want)
	}
}

func TestLoader_WithCustomBaseKeepsDefaultWhenEmpty(t *testing.T) {
	loader := New("kitty", testFS())
	before := loader.customBase
	loader.WithCustomBase("")
	if loader.customBase != before {
		t.Errorf("customBase = %q, want %q", loader.customBase, before)
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	templates, err := newTestLoader(t).ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("ListEmbeddedTemplates() error = %v", err)
	}
	if len(templates) != 2 {
		t.Errorf("ListEmbeddedTemplates() = %v, want 2 templates", templates)
	}
	for _, tmpl := range templates {
		if filepath.Ext(tmpl) != ".tmpl" {
			t.Errorf("ListEmbeddedTemplates() returned %q", tmpl)
		}
	}
}

func TestLoader_DumpTemplate(t *testing.T) {
	loader := newTestLoader(t)

	path, err := loader.DumpTemplate("theme.conf.tmpl", false)
	if err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dumped template not found: %v", err)
	}
	if !loader.HasCustomTemplate("theme.conf.tmpl") {
		t.Error("HasCustomTemplate() = false after dump")
	}

	if _, err := loader.DumpTemplate("theme.conf.tmpl", false); !errors.Is(err, ErrTemplateExists) {
		t.Errorf("DumpTemplate() again error = %v, want ErrTemplateExists", err)
	}
	if _, err := loader.DumpTemplate("theme.conf.tmpl", true); err != nil {
		t.Errorf("DumpTemplate(force) error = %v", err)
	}
	if _, err := loader.DumpTemplate("nonexistent.tmpl", false); err == nil {
		t.Error("DumpTemplate(nonexistent) error = nil")
	}
}

func TestLoader_DumpAllTemplates(t *testing.T) {
	loader := newTestLoader(t)

	if _, err := loader.DumpTemplate("extra.css.tmpl", false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}

	dumped, err := loader.DumpAllTemplates(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("DumpAllTemplates() error = %v, want ErrTemplateExists", err)
	}
	if len(dumped) != 1 || !strings.HasSuffix(dumped[0], "theme.conf.tmpl") {
		t.Errorf("DumpAllTemplates() = %v, want only theme.conf.tmpl", dumped)
	}

	dumped, err = loader.DumpAllTemplates(true)
	if err != nil || len(dumped) != 2 {
		t.Errorf("DumpAllTemplates(force) = %v, %v, want 2 files", dumped, err)
	}
}

func TestLoader_GetInfo(t *testing.T) {
	loader := newTestLoader(t)

	info := loader.GetInfo("theme.conf.tmpl")
	if !info.EmbeddedExists || info.CustomExists || info.UsingCustom() {
		t.Errorf("GetInfo() = %+v, want embedded only", info)
	}

	if _, err := loader.DumpTemplate("theme.conf.tmpl", false); err != nil {
		t.Fatalf("DumpTemplate() error = %v", err)
	}
	if info := loader.GetInfo("theme.conf.tmpl"); !info.UsingCustom() {
		t.Errorf("GetInfo() = %+v, want custom", info)
	}
	if info := loader.GetInfo("missing.tmpl"); info.EmbeddedExists {
		t.Errorf("GetInfo(missing) = %+v, want EmbeddedExists false", info)
	}
}
