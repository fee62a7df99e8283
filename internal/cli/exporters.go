package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/manager"
	tmplloader "github.com/jmylchreest/tonal/internal/plugin/output/template"
)

// templateSource is implemented by exporters that render embedded templates.
type templateSource interface {
	Templates() *tmplloader.Loader
}

func newExportersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exporters",
		Aliases: []string{"exporter", "plugins"},
		Short:   "List exporters and manage their templates",
		Long: `List the built-in exporters and any external exporter plugins found in the
plugin directory, and manage the templates template-based exporters render.

Templates can be customised by dumping them to ~/.config/tonal/templates/{exporter}/
(or --template-dir) and editing them. Custom templates take precedence over
the embedded ones.`,
	}
	cmd.AddCommand(newExportersListCmd(a), newTemplatesCmd(a))
	return cmd
}

func newExportersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available exporters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configured := a.cfg.Exporters
			table := NewTable([]string{"NAME", "TYPE", "SELECTED", "OUTPUT DIR", "DESCRIPTION"})
			table.SetColumnMaxWidth(4, 60)

			for _, name := range a.plugins.Registry().List() {
				p, _ := a.plugins.Get(name)
				kind := "built-in"
				if _, ok := p.(*manager.ExternalPlugin); ok {
					kind = "external"
				}
				selected := ""
				if slices.Contains(configured, name) || slices.Contains(configured, "all") {
					selected = "yes"
				}
				dir := p.DefaultOutputDir()
				if dir == "" {
					dir = a.cfg.OutputDir
				}
				table.AddRow([]string{name, kind, selected, dir, p.Description()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func newTemplatesCmd(a *app) *cobra.Command {
	var (
		exporters []string
		force     bool
		location  string
	)

	loaders := func() ([]*tmplloader.Loader, error) {
		base := location
		if base == "" {
			base = a.cfg.TemplateDir
		}
		var out []*tmplloader.Loader
		for _, name := range a.plugins.Registry().List() {
			if len(exporters) > 0 && !slices.Contains(exporters, name) {
				continue
			}
			p, _ := a.plugins.Get(name)
			if ts, ok := p.(templateSource); ok {
				out = append(out, ts.Templates().WithCustomBase(base).WithLogger(a.logger))
			}
		}
		for _, name := range exporters {
			if _, ok := a.plugins.Get(name); !ok {
				return nil, fmt.Errorf("unknown exporter: %s", name)
			}
		}
		return out, nil
	}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List or dump exporter templates",
	}
	cmd.PersistentFlags().StringSliceVarP(&exporters, "exporters", "o", nil, "exporters to include (default: all with templates)")
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "", "template directory (default: configured template_dir or ~/.config/tonal/templates)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List templates and whether a custom override exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ls, err := loaders()
			if err != nil {
				return err
			}
			table := NewTable([]string{"EXPORTER", "TEMPLATE", "SOURCE", "PATH"})
			for _, l := range ls {
				names, err := l.ListEmbeddedTemplates()
				if err != nil {
					return err
				}
				for _, n := range names {
					info := l.GetInfo(n)
					source := "embedded"
					if info.UsingCustom() {
						source = "custom"
					}
					table.AddRow([]string{l.Name(), n, source, info.CustomPath})
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the embedded templates to the template directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ls, err := loaders()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var errs []error
			for _, l := range ls {
				written, err := l.DumpAllTemplates(force)
				for _, w := range written {
					fmt.Fprintf(out, "wrote %s\n", w)
				}
				if err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
	dump.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(list, dump)
	return cmd
}
