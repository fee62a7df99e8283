// Package output provides the interface and registry for exporters, the
// plugins that turn a generated theme into configuration files.
package output

import (
	"context"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/theme"
)

// Plugin represents an exporter that renders a theme into one or more files.
type Plugin interface {
	// Name returns the exporter's name (e.g., "json", "kitty").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// Generate renders the theme.
	// Returns map of filename -> content to support exporters that write multiple files.
	Generate(t *theme.Theme) (map[string][]byte, error)

	// RegisterFlags registers exporter-specific flags with a cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the exporter configuration is valid.
	Validate() error

	// DefaultOutputDir returns the directory files are written to. An empty
	// string means the configured output directory.
	DefaultOutputDir() string
}

// PreExecuteHook is implemented by exporters that must check their
// environment before generating. Returning skip=true skips the exporter
// without failing the run.
type PreExecuteHook interface {
	PreExecute(ctx context.Context) (skip bool, reason string, err error)
}

// PostExecuteHook is implemented by exporters that act after their files are
// written, e.g. to signal a running application to reload.
type PostExecuteHook interface {
	PostExecute(ctx context.Context, writtenFiles []string) error
}

// LoggerPlugin is implemented by exporters that log while generating.
type LoggerPlugin interface {
	SetLogger(logger hclog.Logger)
}

// Registry holds all registered exporters.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new exporter registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds an exporter to the registry, replacing any with the same name.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered exporter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns a copy of the registered exporters.
func (r *Registry) All() map[string]Plugin {
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}
