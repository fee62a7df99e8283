package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/config"
	imgloader "github.com/jmylchreest/tonal/internal/image"
)

// watchDebounce coalesces the burst of events an editor or wallpaper tool
// produces when it saves a file.
const watchDebounce = 300 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	f := newSchemeFlags()
	cmd := &cobra.Command{
		Use:   "watch [SEED|IMAGE]",
		Short: "Regenerate the scheme whenever the config file or image changes",
		Long: `Run 'tonal scheme' once, then again every time the config file or the source
image changes. Pointing --image at a directory regenerates whenever an image
in it is added or replaced. Stop with Ctrl+C.`,
		Example: `  tonal watch --image ~/.cache/wallpaper.png -o kitty,css --reload`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), cmd, f, args)
		},
	}
	f.register(cmd.Flags())
	for _, p := range a.plugins.Registry().All() {
		p.RegisterFlags(cmd)
	}
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, f *schemeFlags, args []string) error {
	logger := a.logger.Named("watch")

	configPath, err := a.resolvedConfigPath()
	if err != nil {
		return err
	}

	run := func() {
		cfg, err := f.apply(cmd, a.cfg)
		if err == nil {
			_, err = a.runScheme(ctx, cmd, cfg, f, args)
		}
		if err != nil {
			logger.Error("regeneration failed", "error", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := watchTargets(configPath, a.imageTarget(cmd, f, args))
	for dir := range targets {
		if err := watcher.Add(dir); err != nil {
			logger.Warn("cannot watch directory", "dir", dir, "error", err)
			continue
		}
		logger.Debug("watching", "dir", dir)
	}
	if len(watcher.WatchList()) == 0 {
		return fmt.Errorf("nothing to watch: neither %s nor an image directory exists", filepath.Dir(configPath))
	}

	run()
	logger.Info("watching for changes", "config", configPath)

	var (
		timer         *time.Timer
		fire          <-chan time.Time
		configChanged bool
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !targets.matches(event.Name) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if filepath.Clean(event.Name) == configPath {
				configChanged = true
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if configChanged {
				configChanged = false
				cfg, err := config.Load(a.configPath)
				if err != nil {
					logger.Error("keeping previous config", "error", err)
				} else {
					a.cfg = cfg
					logger.Info("reloaded config", "path", configPath)
				}
			}
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// imageTarget returns the image path the scheme is taken from, if any.
func (a *app) imageTarget(cmd *cobra.Command, f *schemeFlags, args []string) string {
	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			return args[0]
		}
		return ""
	}
	image := a.cfg.Image
	if cmd.Flags().Changed("image") {
		image = f.image
	}
	if imgloader.IsRemote(image) {
		return ""
	}
	return image
}

// watchSet maps watched directories to the file names of interest in them.
// A nil name set matches every file in the directory.
type watchSet map[string]map[string]bool

func watchTargets(configPath, image string) watchSet {
	set := make(watchSet)
	add := func(dir, name string) {
		if _, err := os.Stat(dir); err != nil {
			return
		}
		names, seen := set[dir]
		if name == "" {
			set[dir] = nil
			return
		}
		if seen && names == nil {
			return
		}
		if names == nil {
			names = make(map[string]bool)
			set[dir] = names
		}
		names[name] = true
	}

	add(filepath.Dir(configPath), filepath.Base(configPath))
	if image != "" {
		image = filepath.Clean(image)
		if info, err := os.Stat(image); err == nil && info.IsDir() {
			add(image, "")
		} else {
			add(filepath.Dir(image), filepath.Base(image))
		}
	}
	return set
}

func (w watchSet) matches(path string) bool {
	path = filepath.Clean(path)
	names, ok := w[filepath.Dir(path)]
	if !ok {
		return false
	}
	return names == nil || names[filepath.Base(path)]
}
