// Package css provides an exporter that writes the theme as CSS custom
// properties, with the dark scheme behind prefers-color-scheme.
package css

import (
	"embed"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
	"github.com/jmylchreest/tonal/internal/theme"
)

//go:embed *.tmpl
var templates embed.FS

const (
	templateFile = "tonal.css.tmpl"
	// DefaultPrefix follows the Material web token names.
	DefaultPrefix = "md-sys-color-"
)

// Plugin implements the css exporter.
type Plugin struct {
	outputDir   string
	filename    string
	prefix      string
	templateDir string
	logger      hclog.Logger
}

// New creates a new css exporter.
func New() *Plugin {
	return &Plugin{
		filename: "tonal.css",
		prefix:   DefaultPrefix,
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string { return "css" }

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write roles and terminal colours as CSS custom properties"
}

// RegisterFlags registers css.output-dir, css.filename and css.prefix.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", "", "Output directory (default: configured output_dir)")
	cmd.Flags().StringVar(&p.filename, "css.filename", p.filename, "Output file name")
	cmd.Flags().StringVar(&p.prefix, "css.prefix", p.prefix, "Custom property prefix")
}

// SetLogger implements output.LoggerPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = common.Logger(logger, p.Name())
}

// SetTemplateDir sets the base directory searched for custom templates.
func (p *Plugin) SetTemplateDir(dir string) {
	p.templateDir = dir
}

// Validate checks the configuration.
func (p *Plugin) Validate() error {
	if p.filename == "" {
		return fmt.Errorf("css.filename cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the output directory override, if any.
func (p *Plugin) DefaultOutputDir() string {
	return p.outputDir
}

// Templates returns the exporter's template loader.
func (p *Plugin) Templates() *tmplloader.Loader {
	return tmplloader.New(p.Name(), templates).WithCustomBase(p.templateDir).WithLogger(p.logger)
}

// Generate renders the stylesheet.
func (p *Plugin) Generate(t *theme.Theme) (map[string][]byte, error) {
	data, err := common.NewTemplateData(t, false)
	if err != nil {
		return nil, err
	}
	data.Vars["prefix"] = p.prefix

	content, err := common.Render(p.Templates(), templateFile, data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{p.filename: content}, nil
}
