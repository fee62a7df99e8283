package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/archive"
	"github.com/jmylchreest/tonal/internal/plugin/output"
)

func newRestoreCmd(a *app) *cobra.Command {
	var (
		outputDir string
		dryRun    bool
		backup    bool
	)

	cmd := &cobra.Command{
		Use:   "restore ARCHIVE",
		Short: "Unpack a theme archive written by 'tonal scheme --archive'",
		Long: `Unpack a .tar.xz theme archive into a directory. Entries keep their
<exporter>/<file> layout. Entries that would escape the directory are
rejected.`,
		Example: `  tonal restore theme.tar.xz -d ~/.local/share/tonal
  tonal restore theme.tar.xz --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := archive.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("archive %s has no files", args[0])
			}

			dir := outputDir
			if dir == "" {
				dir = a.cfg.OutputDir
			}
			written, err := output.WriteFiles(dir, files, output.WriteOptions{
				DryRun: dryRun,
				Backup: backup,
				Logger: a.logger.Named("restore"),
			})
			if err != nil {
				return fmt.Errorf("failed to restore %s: %w", args[0], err)
			}
			if !dryRun {
				a.logger.Info("restored archive", "path", args[0], "dir", dir, "files", len(written))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "directory to unpack into (default: configured output_dir)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be written without writing")
	cmd.Flags().BoolVar(&backup, "backup", false, "keep existing files as <name>.backup")
	return cmd
}
