// Package alacritty provides an exporter for Alacritty terminal colour themes.
package alacritty

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
	templateFile = "tonal-colors.toml.tmpl"
	outputFile   = "tonal-colors.toml"
)

// Plugin implements the alacritty exporter.
type Plugin struct {
	outputDir   string
	preferLight bool
	templateDir string
	logger      hclog.Logger
}

// New creates a new alacritty exporter with default settings.
func New() *Plugin {
	return &Plugin{logger: hclog.NewNullLogger()}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "alacritty"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate an Alacritty terminal colour theme"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "alacritty.output-dir", "", "Output directory (default: ~/.config/alacritty)")
	cmd.Flags().BoolVar(&p.preferLight, "alacritty.light", false, "Use the light scheme when both are generated")
}

// SetLogger implements output.LoggerPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = common.Logger(logger, p.Name())
}

// SetTemplateDir sets the base directory searched for custom templates.
func (p *Plugin) SetTemplateDir(dir string) {
	p.templateDir = dir
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
		return filepath.Join(".config", "alacritty")
	}
	return filepath.Join(home, ".config", "alacritty")
}

// Templates returns the exporter's template loader.
func (p *Plugin) Templates() *tmplloader.Loader {
	return tmplloader.New(p.Name(), templates).WithCustomBase(p.templateDir).WithLogger(p.logger)
}

// Generate renders tonal-colors.toml from the dark scheme unless
// alacritty.light is set.
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

// PreExecute skips the exporter when alacritty is not installed and creates
// its config directory if needed.
func (p *Plugin) PreExecute(_ context.Context) (skip bool, reason string, err error) {
	if _, err := exec.LookPath("alacritty"); err != nil {
		return true, "alacritty executable not found on $PATH", nil
	}

	configDir := p.DefaultOutputDir()
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0o755); err != nil { // #nosec G301 - Config directory needs standard permissions
			return true, fmt.Sprintf("failed to create alacritty config directory: %s", configDir), nil
		}
		p.logger.Debug("created config directory", "dir", configDir)
	}
	return false, "", nil
}

// PostExecute tells the user how to import the theme. Alacritty reloads
// imported files on change by itself.
func (p *Plugin) PostExecute(_ context.Context, writtenFiles []string) error {
	if len(writtenFiles) == 0 {
		return nil
	}
	p.logger.Info("add the theme to alacritty.toml", "import", fmt.Sprintf("general.import = [%q]", writtenFiles[0]))
	return nil
}
