// Package structured provides exporters that serialise the whole theme as
// JSON, YAML or TOML.
package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/plugin/output/common"
	"github.com/jmylchreest/tonal/internal/theme"
)

// Format is a serialisation format.
type Format string

// Formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Plugin writes theme.<format>.
type Plugin struct {
	format    Format
	outputDir string
	filename  string
	compact   bool
	logger    hclog.Logger
}

// New creates an exporter for format.
func New(format Format) *Plugin {
	return &Plugin{
		format:   format,
		filename: "theme." + string(format),
		logger:   hclog.NewNullLogger(),
	}
}

// NewJSON creates the JSON exporter.
func NewJSON() *Plugin { return New(FormatJSON) }

// NewYAML creates the YAML exporter.
func NewYAML() *Plugin { return New(FormatYAML) }

// NewTOML creates the TOML exporter.
func NewTOML() *Plugin { return New(FormatTOML) }

// Name returns the format name.
func (p *Plugin) Name() string { return string(p.format) }

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return fmt.Sprintf("Write every role, terminal colour and palette as %s", strings.ToUpper(string(p.format)))
}

// RegisterFlags registers <format>.output-dir, <format>.filename and, for
// JSON, json.compact.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	name := p.Name()
	cmd.Flags().StringVar(&p.outputDir, name+".output-dir", "", "Output directory (default: configured output_dir)")
	cmd.Flags().StringVar(&p.filename, name+".filename", p.filename, "Output file name")
	if p.format == FormatJSON {
		cmd.Flags().BoolVar(&p.compact, "json.compact", false, "Write JSON without indentation")
	}
}

// SetLogger implements output.LoggerPlugin.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	p.logger = common.Logger(logger, p.Name())
}

// Validate checks the configuration.
func (p *Plugin) Validate() error {
	switch p.format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
	if p.filename == "" {
		return fmt.Errorf("%s.filename cannot be empty", p.format)
	}
	return nil
}

// DefaultOutputDir returns the output directory override, if any.
func (p *Plugin) DefaultOutputDir() string {
	return p.outputDir
}

// Generate serialises t.
func (p *Plugin) Generate(t *theme.Theme) (map[string][]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	content, err := Marshal(p.format, t, p.compact)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("serialised theme", "format", p.format, "bytes", len(content))
	return map[string][]byte{p.filename: content}, nil
}

// Marshal encodes t in format.
func Marshal(format Format, t *theme.Theme, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		if !compact {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(t); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return buf.Bytes(), nil
}
