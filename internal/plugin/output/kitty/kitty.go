// Package kitty provides an exporter for Kitty terminal colour themes.
package kitty

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
	"github.com/jmylchreest/tonal/internal/theme"
)

//go:embed *.tmpl
var templates embed.FS

const (
	templateFile = "tonal.conf.tmpl"
	outputFile   = "tonal.conf"
)

// Plugin implements the kitty exporter.
type Plugin struct {
	outputDir    string
	reloadConfig bool
	preferLight  bool
	templateDir  string
	logger       hclog.Logger
}

// New creates a new kitty exporter with default settings.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "kitty"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a Kitty terminal colour theme"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "kitty.output-dir", "", "Output directory (default: ~/.config/kitty)")
	cmd.Flags().BoolVar(&p.reloadConfig, "kitty.reload", false, "Reload kitty config after generation (sends SIGUSR1)")
	cmd.Flags().BoolVar(&p.preferLight, "kitty.light", false, "Use the light scheme when both are generated")
}

// SetLogger implements output.LoggerPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = common.Logger(logger, p.Name())
}

// SetTemplateDir sets the base directory searched for custom templates.
func (p *Plugin) SetTemplateDir(dir string) {
	p.templateDir = dir
}

// SetReload enables SIGUSR1 reload after files are written.
func (p *Plugin) SetReload(reload bool) {
	p.reloadConfig = reload
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}

	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".config", "kitty")
	}
	return filepath.Join(home, ".config", "kitty")
}

// Templates returns the exporter's template loader.
func (p *Plugin) Templates() *tmplloader.Loader {
	return tmplloader.New(p.Name(), templates).WithCustomBase(p.templateDir).WithLogger(p.logger)
}

// Generate renders tonal.conf from the dark scheme unless kitty.light is set.
func (p *Plugin) Generate(t *theme.Theme) (map[string][]byte, error) {
	data, err := common.NewTemplateData(t, !p.preferLight)
	if err != nil {
		return nil, err
	}

	content, err := common.Render(p.Templates(), templateFile, data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate theme: %w", err)
	}
	return map[string][]byte{outputFile: content}, nil
}

// PreExecute skips the exporter when kitty is not installed.
func (p *Plugin) PreExecute(_ context.Context) (skip bool, reason string, err error) {
	if _, err := exec.LookPath("kitty"); err != nil {
		return true, "kitty executable not found on $PATH", nil
	}

	configDir := p.DefaultOutputDir()
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return true, fmt.Sprintf("kitty config directory not found: %s", configDir), nil
	}
	return false, "", nil
}

// PostExecute reloads running kitty instances if requested.
func (p *Plugin) PostExecute(_ context.Context, writtenFiles []string) error {
	if !p.reloadConfig || len(writtenFiles) == 0 {
		return nil
	}
	if err := p.reloadAllKittyInstances(); err != nil {
		return err
	}
	p.logger.Info("reloaded kitty instances")
	return nil
}
