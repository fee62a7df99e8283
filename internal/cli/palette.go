package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/dynamiccolor"
	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/palettes"
	"github.com/jmylchreest/tonal/internal/theme"
)

func newPaletteCmd(a *app) *cobra.Command {
	f := newSchemeFlags()
	var tones []int

	cmd := &cobra.Command{
		Use:   "palette [SEED|IMAGE]",
		Short: "Print the tonal palettes of a scheme",
		Long: `Print the tones of the six palettes (primary, secondary, tertiary, neutral,
neutral variant and error) a scheme derives from its source colour.`,
		Example: `  tonal palette '#6750a4'
  tonal palette '#6750a4' --variant expressive --tones 10,40,90`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.apply(cmd, a.cfg)
			if err != nil {
				return err
			}
			source, err := resolveSource(cmd.Context(), args, cfg, f.kmeansSeedPtr(cmd), a.logger)
			if err != nil {
				return err
			}
			for _, t := range tones {
				if t < 0 || t > 100 {
					return fmt.Errorf("tone %d out of range [0, 100]", t)
				}
			}

			s := dynamiccolor.NewDynamicScheme(dynamiccolor.Options{
				Source:        hct.FromArgb(source),
				Variant:       cfg.Variant,
				IsDark:        cfg.Mode == theme.ModeDark,
				ContrastLevel: cfg.Contrast,
				Platform:      cfg.Platform,
				SpecVersion:   cfg.Spec,
			})
			printPalettes(newPreviewer(cmd.OutOrStdout()), s, tones)
			return nil
		},
	}

	fs := cmd.Flags()
	f.registerSource(fs)
	f.registerScheme(fs)
	fs.IntSliceVar(&tones, "tones", theme.PaletteTones, "tones to print")
	return cmd
}

func printPalettes(p *previewer, s *dynamiccolor.DynamicScheme, tones []int) {
	named := []struct {
		name    string
		palette *palettes.TonalPalette
	}{
		{"primary", s.PrimaryPalette},
		{"secondary", s.SecondaryPalette},
		{"tertiary", s.TertiaryPalette},
		{"neutral", s.NeutralPalette},
		{"neutral_variant", s.NeutralVariantPalette},
		{"error", s.ErrorPalette},
	}

	fmt.Fprintf(p.w, "Source %s, %s, spec %s\n\n", hct.HexFromArgb(s.SourceColorArgb()), s.Variant, s.SpecVersion)

	info := p.newTable([]string{"PALETTE", "HUE", "CHROMA", "KEY COLOUR"})
	for _, n := range named {
		info.AddRow([]string{
			n.name,
			strconv.FormatFloat(n.palette.Hue(), 'f', 1, 64),
			strconv.FormatFloat(n.palette.Chroma(), 'f', 1, 64),
			n.palette.KeyColor().Hex(),
		})
	}
	fmt.Fprintln(p.w, info.Render())

	headers := []string{"TONE"}
	for _, n := range named {
		headers = append(headers, n.name)
	}
	table := p.newTable(headers)
	for _, tone := range tones {
		row := []string{strconv.Itoa(tone)}
		for _, n := range named {
			argb := n.palette.Tone(tone)
			cell := hct.HexFromArgb(argb)
			if sw := p.swatch(argb); sw != "" {
				cell = sw + " " + cell
			}
			row = append(row, cell)
		}
		table.AddRow(row)
	}
	fmt.Fprint(p.w, table.Render())
}
