// Package manager owns the exporter registry and decides which exporters run.
package manager

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/plugin/output/alacritty"
	"github.com/jmylchreest/tonal/internal/plugin/output/css"
	"github.com/jmylchreest/tonal/internal/plugin/output/kitty"
	"github.com/jmylchreest/tonal/internal/plugin/output/structured"
)

// Environment variables read by WithEnvConfig.
const (
	EnvDisabledPlugins = "TONAL_DISABLED_PLUGINS"
	EnvEnabledPlugins  = "TONAL_ENABLED_PLUGINS"
)

// Config holds exporter selection.
type Config struct {
	// DisabledPlugins lists exporters to disable, as "name" or "output:name".
	// "all" disables everything.
	DisabledPlugins []string

	// EnabledPlugins lists exporters to run. "all" enables every exporter
	// that is not disabled.
	EnabledPlugins []string
}

// Builder provides a fluent interface for constructing a Manager.
type Builder struct {
	config   Config
	registry *output.Registry
	logger   hclog.Logger
	useEnv   bool
}

// NewBuilder creates a new Manager builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		registry: output.NewRegistry(),
		logger:   hclog.NewNullLogger(),
	}
}

// WithConfig sets the exporter selection.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig reads TONAL_DISABLED_PLUGINS and TONAL_ENABLED_PLUGINS,
// overriding WithConfig for the lists that are set.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithRegistry replaces the registry built-in exporters are added to.
func (b *Builder) WithRegistry(registry *output.Registry) *Builder {
	b.registry = registry
	return b
}

// WithLogger sets the logger handed to exporters.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build constructs the Manager and registers the built-in exporters.
func (b *Builder) Build() *Manager {
	config := b.config
	if b.useEnv {
		if disabled := os.Getenv(EnvDisabledPlugins); disabled != "" {
			config.DisabledPlugins = parsePluginList(disabled)
		}
		if enabled := os.Getenv(EnvEnabledPlugins); enabled != "" {
			config.EnabledPlugins = parsePluginList(enabled)
		}
	}

	m := &Manager{
		config:   config,
		registry: b.registry,
		logger:   b.logger,
	}
	m.registerBuiltinPlugins()
	return m
}

// Manager holds exporter enable/disable state and owns the registry.
type Manager struct {
	config   Config
	registry *output.Registry
	logger   hclog.Logger
	external []*ExternalPlugin
}

func (m *Manager) registerBuiltinPlugins() {
	builtins := []output.Plugin{
		alacritty.New(),
		css.New(),
		kitty.New(),
		structured.NewJSON(),
		structured.NewYAML(),
		structured.NewTOML(),
	}
	for _, p := range builtins {
		if _, exists := m.registry.Get(p.Name()); exists {
			continue
		}
		m.Register(p)
	}
}

// Register adds an exporter and hands it the manager's logger.
func (m *Manager) Register(p output.Plugin) {
	if lp, ok := p.(output.LoggerPlugin); ok {
		lp.SetLogger(m.logger)
	}
	m.registry.Register(p)
}

// SetLogger replaces the logger and hands it to every registered exporter.
func (m *Manager) SetLogger(logger hclog.Logger) {
	if logger == nil {
		return
	}
	m.logger = logger
	for _, p := range m.registry.All() {
		if lp, ok := p.(output.LoggerPlugin); ok {
			lp.SetLogger(logger)
		}
	}
}

// Registry returns the exporter registry.
func (m *Manager) Registry() *output.Registry {
	return m.registry
}

// Get retrieves an exporter by name.
func (m *Manager) Get(name string) (output.Plugin, bool) {
	return m.registry.Get(name)
}

// IsEnabled reports whether the exporter runs. Nothing runs unless enabled
// by name or by "all"; disabling always wins.
func (m *Manager) IsEnabled(name string) bool {
	fullName := "output:" + name

	if slices.Contains(m.config.DisabledPlugins, "all") {
		return false
	}
	for _, disabled := range m.config.DisabledPlugins {
		if disabled == fullName || disabled == name {
			return false
		}
	}
	if slices.Contains(m.config.EnabledPlugins, "all") {
		return true
	}
	for _, enabled := range m.config.EnabledPlugins {
		if enabled == fullName || enabled == name {
			return true
		}
	}
	return false
}

// Enabled returns the enabled exporters in name order.
func (m *Manager) Enabled() []output.Plugin {
	var plugins []output.Plugin
	for _, name := range m.registry.List() {
		if !m.IsEnabled(name) {
			continue
		}
		p, _ := m.registry.Get(name)
		plugins = append(plugins, p)
	}
	return plugins
}

// CheckEnabled returns an error naming any enabled exporter that is not
// registered.
func (m *Manager) CheckEnabled() error {
	var unknown []string
	for _, name := range m.config.EnabledPlugins {
		name = strings.TrimPrefix(name, "output:")
		if name == "all" {
			continue
		}
		if _, ok := m.registry.Get(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown exporter(s): %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(m.registry.List(), ", "))
	}
	return nil
}

// Config returns the current selection.
func (m *Manager) Config() Config {
	return m.config
}

// UpdateConfig replaces the selection without recreating exporters, so flag
// bindings survive.
func (m *Manager) UpdateConfig(config Config) {
	m.config = config
}

// SetEnabled enables an exporter, removing it from the disabled list.
func (m *Manager) SetEnabled(name string) {
	m.config.DisabledPlugins = slices.DeleteFunc(m.config.DisabledPlugins, func(s string) bool {
		return s == name || s == "output:"+name
	})
	if !slices.Contains(m.config.EnabledPlugins, name) {
		m.config.EnabledPlugins = append(m.config.EnabledPlugins, name)
	}
}

// SetDisabled disables an exporter, removing it from the enabled list.
func (m *Manager) SetDisabled(name string) {
	m.config.EnabledPlugins = slices.DeleteFunc(m.config.EnabledPlugins, func(s string) bool {
		return s == name || s == "output:"+name
	})
	if !slices.Contains(m.config.DisabledPlugins, name) {
		m.config.DisabledPlugins = append(m.config.DisabledPlugins, name)
	}
}

// Close stops every external exporter process.
func (m *Manager) Close() {
	for _, p := range m.external {
		p.Close()
	}
}

func parsePluginList(s string) []string {
	var plugins []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			plugins = append(plugins, p)
		}
	}
	return plugins
}
