// Package template loads exporter templates with support for user overrides.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
)

// ErrTemplateExists is returned by DumpTemplate when a custom template is
// already present and force is false.
var ErrTemplateExists = errors.New("custom template already exists")

// DefaultCustomBase returns ~/.config/tonal/templates.
func DefaultCustomBase() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tonal", "templates")
}

// Loader loads templates, preferring {customBase}/{exporter}/{filename} over
// the exporter's embedded copy.
type Loader struct {
	pluginName string
	embedFS    fs.FS
	customBase string
	logger     hclog.Logger
}

// New creates a loader for the named exporter's embedded templates.
func New(pluginName string, embedFS fs.FS) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedFS:    embedFS,
		customBase: DefaultCustomBase(),
		logger:     hclog.NewNullLogger(),
	}
}

// Name returns the exporter the loader belongs to.
func (l *Loader) Name() string {
	return l.pluginName
}

// WithCustomBase sets the base directory for custom templates. An empty
// base keeps the current one.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	if customBase != "" {
		if expanded, err := homedir.Expand(customBase); err == nil {
			customBase = expanded
		}
		l.customBase = customBase
	}
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template, checking for a custom override first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		if content, err := os.ReadFile(customPath); err == nil {
			l.logger.Debug("using custom template", "exporter", l.pluginName, "path", customPath)
			return content, true, nil
		}
	}

	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	l.logger.Debug("using embedded template", "exporter", l.pluginName, "template", filename)
	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customBase, l.pluginName, filename)
}

// CustomDir returns the directory holding this exporter's custom templates.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns every embedded .tmpl file.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string
	err := fs.WalkDir(l.embedFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			templates = append(templates, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	return templates, nil
}

// DumpTemplate copies an embedded template into the custom directory so it
// can be edited. Existing files are kept unless force is set.
func (l *Loader) DumpTemplate(filename string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return outputPath, fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}
	return outputPath, nil
}

// DumpAllTemplates dumps every embedded template. Templates that already
// exist are skipped when force is false and reported in the joined error.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error
	for _, tmpl := range templates {
		p, err := l.DumpTemplate(tmpl, force)
		if errors.Is(err, ErrTemplateExists) {
			skipped = append(skipped, err)
			continue
		}
		if err != nil {
			return dumped, err
		}
		dumped = append(dumped, p)
	}
	return dumped, errors.Join(skipped...)
}

// TemplateInfo describes where a template would be loaded from.
type TemplateInfo struct {
	Filename       string
	EmbeddedExists bool
	CustomExists   bool
	CustomPath     string
}

// UsingCustom reports whether Load would return the custom copy.
func (i TemplateInfo) UsingCustom() bool { return i.CustomExists }

// GetInfo returns information about a specific template.
func (l *Loader) GetInfo(filename string) TemplateInfo {
	_, embeddedErr := fs.Stat(l.embedFS, filename)
	return TemplateInfo{
		Filename:       filename,
		EmbeddedExists: embeddedErr == nil,
		CustomExists:   l.HasCustomTemplate(filename),
		CustomPath:     l.CustomPath(filename),
	}
}
