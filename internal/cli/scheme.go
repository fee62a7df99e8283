package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/quantize"
	"github.com/jmylchreest/tonal/internal/theme"
)

// schemeFlags are the theme and export flags shared by scheme and watch.
// Only flags the user set override the configuration.
type schemeFlags struct {
	image       string
	seedMode    string
	kmeansSeed  int64
	variant     dynamiccolor.Variant
	mode        theme.Mode
	contrast    float64
	platform    dynamiccolor.Platform
	spec        dynamiccolor.SpecVersion
	exporters   []string
	outputDir   string
	templateDir string
	archive     string
	reload      bool
	dryRun      bool
	backup      bool
	preview     bool
}

func newSchemeFlags() *schemeFlags {
	d := config.DefaultConfig()
	return &schemeFlags{
		seedMode:  string(d.SeedMode),
		variant:   d.Variant,
		mode:      d.Mode,
		platform:  d.Platform,
		spec:      d.Spec,
		exporters: d.Exporters,
		outputDir: d.OutputDir,
	}
}

// registerSource adds the flags that choose the source colour.
func (f *schemeFlags) registerSource(fs *pflag.FlagSet) {
	fs.StringVarP(&f.image, "image", "i", "", "image, directory of images or image URL to take the source colour from")
	fs.StringVar(&f.seedMode, "seed-mode", f.seedMode, "k-means seeding: content, filepath, manual or random")
	fs.Int64Var(&f.kmeansSeed, "kmeans-seed", 0, "k-means seed used with --seed-mode manual")
}

// registerScheme adds the flags that shape the generated scheme.
func (f *schemeFlags) registerScheme(fs *pflag.FlagSet) {
	fs.Var(&f.variant, "variant", "scheme variant")
	fs.Var(&f.mode, "mode", "light, dark or both")
	fs.Float64VarP(&f.contrast, "contrast", "c", 0, "contrast level in [-1, 1]")
	fs.Var(&f.platform, "platform", "phone or watch")
	fs.Var(&f.spec, "spec", "colour spec version: 2021 or 2025")
}

func (f *schemeFlags) registerExport(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.exporters, "exporters", "o", f.exporters, "exporters to run (comma-separated, or 'all')")
	fs.StringVarP(&f.outputDir, "output-dir", "d", f.outputDir, "directory for exporters without their own output dir")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory of templates overriding the built-in ones")
	fs.StringVar(&f.archive, "archive", "", "also bundle every exported file into this .tar.xz")
	fs.BoolVar(&f.reload, "reload", false, "ask running applications to reload after export")
	fs.BoolVar(&f.dryRun, "dry-run", false, "show what would be written without writing")
	fs.BoolVar(&f.backup, "backup", false, "keep existing files as <name>.backup")
	fs.BoolVarP(&f.preview, "preview", "p", false, "print the resolved roles with colour swatches")
}

func (f *schemeFlags) register(fs *pflag.FlagSet) {
	f.registerSource(fs)
	f.registerScheme(fs)
	f.registerExport(fs)
}

// apply returns a copy of base with the flags the user set.
func (f *schemeFlags) apply(cmd *cobra.Command, base *config.Config) (*config.Config, error) {
	cfg := *base
	changed := cmd.Flags().Changed

	if changed("image") {
		cfg.Image = f.image
	}
	if changed("seed-mode") {
		mode, err := quantize.ParseSeedMode(f.seedMode)
		if err != nil {
			return nil, err
		}
		cfg.SeedMode = mode
	}
	if changed("variant") {
		cfg.Variant = f.variant
	}
	if changed("mode") {
		cfg.Mode = f.mode
	}
	if changed("contrast") {
		cfg.Contrast = f.contrast
	}
	if changed("platform") {
		cfg.Platform = f.platform
	}
	if changed("spec") {
		cfg.Spec = f.spec
	}
	if changed("exporters") {
		cfg.Exporters = f.exporters
	}
	if changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if changed("template-dir") {
		cfg.TemplateDir = f.templateDir
	}
	if changed("archive") {
		cfg.Archive = f.archive
	}
	if changed("reload") {
		cfg.Reload = f.reload
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *schemeFlags) kmeansSeedPtr(cmd *cobra.Command) *int64 {
	if cmd.Flags().Changed("kmeans-seed") {
		return &f.kmeansSeed
	}
	return nil
}

func newSchemeCmd(a *app) *cobra.Command {
	f := newSchemeFlags()
	cmd := &cobra.Command{
		Use:     "scheme [SEED|IMAGE]",
		Aliases: []string{"generate"},
		Short:   "Generate a colour scheme and run exporters",
		Long: `Generate a Material dynamic colour scheme from a seed colour or image and
write it out through the selected exporters.

The source colour is taken from, in order: the positional argument (a hex
colour or an image path), --image, or the seed in the config file.`,
		Example: `  tonal scheme '#6750a4'
  tonal scheme --image ~/wallpapers --variant vibrant -o css,kitty --reload
  tonal scheme https://example.com/wallpaper.jpg -o alacritty
  tonal scheme '#4285f4' --mode dark --contrast 0.5 --preview --dry-run
  tonal scheme '#6750a4' -o json --json.output-dir ./theme --archive theme.tar.xz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			_, err = a.runScheme(cmd.Context(), cmd, cfg, f, args)
			return err
		},
	}
	f.register(cmd.Flags())
	for _, p := range a.plugins.Registry().All() {
		p.RegisterFlags(cmd)
	}
	return cmd
}

// runScheme generates the theme for cfg and exports it.
func (a *app) runScheme(ctx context.Context, cmd *cobra.Command, cfg *config.Config, f *schemeFlags, args []string) (*exportSummary, error) {
	source, err := resolveSource(ctx, args, cfg, f.kmeansSeedPtr(cmd), a.logger)
	if err != nil {
		return nil, err
	}

	th, err := theme.Generate(theme.Options{
		Source:        source,
		Variant:       cfg.Variant,
		ContrastLevel: cfg.Contrast,
		Platform:      cfg.Platform,
		SpecVersion:   cfg.Spec,
		Mode:          cfg.Mode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate theme: %w", err)
	}
	a.logger.Debug("generated theme", "source", th.Source, "variant", th.Variant, "spec", th.SpecVersion, "mode", cfg.Mode)

	out := cmd.OutOrStdout()
	if f.preview {
		newPreviewer(out).theme(th)
		fmt.Fprintln(out)
	}

	summary, err := a.export(ctx, th, cfg, exportOptions{dryRun: f.dryRun, backup: f.backup})
	if err != nil {
		return summary, err
	}
	if !a.quiet {
		summary.print(out)
	}
	return summary, summary.err()
}
