package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/jmylchreest/tonal/pkg/plugin"
)

// GenerateTimeout bounds a single external Generate call.
const GenerateTimeout = 30 * time.Second

// ExternalPlugin adapts an external executable to output.Plugin.
type ExternalPlugin struct {
	exec      *executor.PluginExecutor
	args      map[string]string
	outputDir string
	dryRun    bool
	logger    hclog.Logger
}

// NewExternalPlugin wraps an already detected executor.
func NewExternalPlugin(exec *executor.PluginExecutor) *ExternalPlugin {
	return &ExternalPlugin{
		exec:   exec,
		args:   make(map[string]string),
		logger: hclog.NewNullLogger(),
	}
}

// Name returns the name the plugin reported.
func (p *ExternalPlugin) Name() string {
	return p.exec.Info().Name
}

// Description returns the plugin description, marked as external.
func (p *ExternalPlugin) Description() string {
	info := p.exec.Info()
	if info.Version != "" {
		return fmt.Sprintf("%s (external %s)", info.Description, info.Version)
	}
	return info.Description + " (external)"
}

// Path returns the executable path.
func (p *ExternalPlugin) Path() string {
	return p.exec.Path()
}

// RegisterFlags registers <name>.output-dir and <name>.arg.
func (p *ExternalPlugin) RegisterFlags(cmd *cobra.Command) {
	name := p.Name()
	cmd.Flags().StringVar(&p.outputDir, name+".output-dir", "", "Output directory (default: configured output_dir)")
	cmd.Flags().StringToStringVar(&p.args, name+".arg", nil, "key=value argument passed to the plugin (repeatable)")
}

// SetLogger implements output.LoggerPlugin.
func (p *ExternalPlugin) SetLogger(logger hclog.Logger) {
	if logger == nil {
		return
	}
	p.logger = logger.Named(p.Name())
}

// SetArgs replaces the arguments passed to the plugin.
func (p *ExternalPlugin) SetArgs(args map[string]string) {
	p.args = args
}

// SetDryRun tells the plugin that nothing will be written.
func (p *ExternalPlugin) SetDryRun(dryRun bool) {
	p.dryRun = dryRun
}

// Validate is a no-op; the plugin validates its own arguments.
func (p *ExternalPlugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the output directory override, if any.
func (p *ExternalPlugin) DefaultOutputDir() string {
	return p.outputDir
}

// Generate sends the theme to the plugin.
func (p *ExternalPlugin) Generate(t *theme.Theme) (map[string][]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}
	ctx, cancel := context.WithTimeout(context.Background(), GenerateTimeout)
	defer cancel()

	data := ConvertTheme(t)
	data.Args = p.args
	data.DryRun = p.dryRun

	files, err := p.exec.Generate(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
	}
	p.logger.Debug("external plugin generated", "files", len(files))
	if files == nil {
		files = make(map[string][]byte)
	}
	return files, nil
}

// PreExecute implements output.PreExecuteHook.
func (p *ExternalPlugin) PreExecute(ctx context.Context) (bool, string, error) {
	return p.exec.PreExecute(ctx)
}

// PostExecute implements output.PostExecuteHook.
func (p *ExternalPlugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	return p.exec.PostExecute(ctx, writtenFiles)
}

// FlagHelp returns the flags the plugin documents, if any.
func (p *ExternalPlugin) FlagHelp() []plugin.FlagHelp {
	return p.exec.FlagHelp()
}

// Close stops the plugin process if one is running.
func (p *ExternalPlugin) Close() {
	p.exec.Close()
}

// ConvertTheme copies t into the wire form sent to external plugins.
func ConvertTheme(t *theme.Theme) plugin.ThemeData {
	data := plugin.ThemeData{
		Source:      t.Source,
		Variant:     t.Variant,
		SpecVersion: t.SpecVersion,
		Platform:    t.Platform,
		Contrast:    t.Contrast,
		Light:       convertScheme(t.Light),
		Dark:        convertScheme(t.Dark),
		Palettes:    make([]plugin.PaletteData, 0, len(t.Palettes)),
	}
	for _, p := range t.Palettes {
		pd := plugin.PaletteData{
			Name:     p.Name,
			Hue:      p.Hue,
			Chroma:   p.Chroma,
			KeyColor: p.KeyColor,
			Tones:    make([]plugin.ToneData, len(p.Tones)),
		}
		for i, tone := range p.Tones {
			pd.Tones[i] = plugin.ToneData{Tone: tone.Tone, Hex: tone.Hex}
		}
		data.Palettes = append(data.Palettes, pd)
	}
	return data
}

func convertScheme(s *theme.Scheme) *plugin.SchemeData {
	if s == nil {
		return nil
	}
	return &plugin.SchemeData{
		Dark:     s.Dark,
		Colors:   convertColors(s.Colors),
		Terminal: convertColors(s.Terminal),
	}
}

func convertColors(colors []theme.Color) []plugin.ColorData {
	if colors == nil {
		return nil
	}
	out := make([]plugin.ColorData, len(colors))
	for i, c := range colors {
		out[i] = plugin.ColorData(c)
	}
	return out
}
