// Package cli provides the command-line interface for tonal.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/plugin/manager"
	"github.com/jmylchreest/tonal/internal/version"
)

// annotationNoConfig marks commands that must run without a readable
// config file.
const annotationNoConfig = "tonal/no-config"

// app holds state shared by every command of one invocation.
type app struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg     *config.Config
	logger  hclog.Logger
	plugins *manager.Manager

	// discoverErr is reported once logging is configured.
	discoverErr error
}

// NewRootCmd builds the tonal command tree. External exporters are
// discovered here, before flag parsing, so that their flags exist.
func NewRootCmd(ctx context.Context) *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}
	a.plugins = manager.NewBuilder().WithEnvConfig().Build()
	_, a.discoverErr = a.plugins.Discover(ctx, pluginDir())

	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "Material You colour schemes from a seed colour or image",
		Long: `tonal builds Material Design 3 dynamic colour schemes from a single seed
colour, or from the dominant colour of an image, and exports them as
CSS custom properties, terminal themes and structured data.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.plugins.Close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tonal/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newSchemeCmd(a),
		newPaletteCmd(a),
		newSeedsCmd(a),
		newExportersCmd(a),
		newWatchCmd(a),
		newRestoreCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd(ctx).ExecuteContext(ctx)
}

// pluginDir resolves the external plugin directory from TONAL_PLUGIN_DIR,
// then the default config file. --config is not parsed yet at this point.
func pluginDir() string {
	if dir := os.Getenv(config.EnvPrefix + "PLUGIN_DIR"); dir != "" {
		return dir
	}
	if cfg, err := config.Load(""); err == nil && cfg.PluginDir != "" {
		return cfg.PluginDir
	}
	return manager.DefaultPluginDir
}

// setup configures logging and loads the configuration. It runs before
// every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
	a.plugins.SetLogger(a.logger.Named("export"))
	if a.discoverErr != nil {
		a.logger.Warn("plugin discovery failed", "error", a.discoverErr)
		a.discoverErr = nil
	}

	wd, err := os.Getwd()
	if err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			a.logger.Warn("ignoring .env", "error", err)
		}
	}

	if cmd.Annotations[annotationNoConfig] == "true" {
		cfg := config.DefaultConfig()
		a.cfg = &cfg
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if !version.IsRelease() {
		a.logger.Debug("development build", "version", version.Short())
	}
	a.logger.Debug("configuration loaded", "variant", cfg.Variant, "spec", cfg.Spec, "mode", cfg.Mode)
	return nil
}

// newLogger returns the CLI logger: Debug with --verbose, Error with
// --quiet, Info otherwise.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Level:  level,
		Output: w,
		Color:  hclog.AutoColor,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
