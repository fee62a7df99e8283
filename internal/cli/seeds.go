package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/quantize"
	"github.com/jmylchreest/tonal/internal/score"
)

func newSeedsCmd(a *app) *cobra.Command {
	var (
		count      int
		unfiltered bool
		seedMode   = string(quantize.SeedContent)
		kmeansSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seeds IMAGE",
		Short: "Rank the colours of an image as theme seeds",
		Long: `Quantise an image and rank its colours by how well they would serve as the
source colour of a theme. The first colour is the one 'tonal scheme --image'
uses. A directory picks one of its images at random.`,
		Example: `  tonal seeds ~/wallpapers/forest.jpg
  tonal seeds ~/wallpapers/forest.jpg -n 8 --unfiltered`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := quantize.ParseSeedMode(seedMode)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			var seedPtr *int64
			if cmd.Flags().Changed("kmeans-seed") {
				seedPtr = &kmeansSeed
			}

			opts := score.DefaultOptions()
			opts.Desired = count
			opts.Filter = !unfiltered

			ranked, resolved, err := imageSeeds(cmd.Context(), args[0], mode, seedPtr, opts, a.logger)
			if err != nil {
				return err
			}

			p := newPreviewer(cmd.OutOrStdout())
			fmt.Fprintf(p.w, "%s\n\n", resolved)
			table := p.newTable([]string{"RANK", "SWATCH", "HEX", "HUE", "CHROMA", "TONE"})
			for i, argb := range ranked {
				h := hct.FromArgb(argb)
				table.AddRow([]string{
					strconv.Itoa(i + 1),
					p.swatch(argb),
					h.Hex(),
					strconv.FormatFloat(h.Hue(), 'f', 1, 64),
					strconv.FormatFloat(h.Chroma(), 'f', 1, 64),
					strconv.FormatFloat(h.Tone(), 'f', 1, 64),
				})
			}
			fmt.Fprint(p.w, table.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", score.DefaultOptions().Desired, "maximum number of seeds")
	cmd.Flags().BoolVar(&unfiltered, "unfiltered", false, "keep greys and colours covering almost none of the image")
	cmd.Flags().StringVar(&seedMode, "seed-mode", seedMode, "k-means seeding: content, filepath, manual or random")
	cmd.Flags().Int64Var(&kmeansSeed, "kmeans-seed", 0, "k-means seed used with --seed-mode manual")
	return cmd
}
