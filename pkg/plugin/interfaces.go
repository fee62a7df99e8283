package plugin

import "context"

// OutputPlugin is implemented by external exporters served with Serve.
// Contexts passed to the hooks carry the host's deadline.
type OutputPlugin interface {
	// Generate renders theme and returns file name to content. Names are
	// relative to the exporter's output directory.
	Generate(ctx context.Context, theme ThemeData) (map[string][]byte, error)

	// PreExecute runs before Generate. Returning skip leaves the exporter
	// out of this run with reason shown to the user.
	PreExecute(ctx context.Context) (skip bool, reason string, err error)

	// PostExecute receives the paths written for this exporter, e.g. to
	// reload an application. It is not called on dry runs.
	PostExecute(ctx context.Context, writtenFiles []string) error

	GetMetadata() PluginInfo
	GetFlagHelp() []FlagHelp
}
