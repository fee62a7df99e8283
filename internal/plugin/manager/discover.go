package manager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
)

// DefaultPluginDir is where external exporters are looked up.
const DefaultPluginDir = "~/.local/share/tonal/plugins"

// Discover registers every executable in dir as an external exporter.
// A missing directory is not an error. Plugins that fail detection are
// logged and skipped; built-in exporters are never replaced.
func (m *Manager) Discover(ctx context.Context, dir string, opts ...executor.Option) ([]*ExternalPlugin, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand plugin dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin dir: %w", err)
	}

	opts = append([]executor.Option{executor.WithLogger(m.logger)}, opts...)

	var found []*ExternalPlugin
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isExecutable(entry) {
			m.logger.Debug("skipping non-executable file", "path", path)
			continue
		}

		exec, err := executor.New(ctx, path, opts...)
		if err != nil {
			m.logger.Warn("skipping plugin", "path", path, "error", err)
			continue
		}

		p := NewExternalPlugin(exec)
		if _, exists := m.registry.Get(p.Name()); exists {
			m.logger.Warn("plugin name already registered, skipping", "name", p.Name(), "path", path)
			continue
		}
		m.Register(p)
		m.external = append(m.external, p)
		found = append(found, p)
		m.logger.Debug("registered external plugin", "name", p.Name(), "path", path)
	}
	return found, nil
}

func isExecutable(entry os.DirEntry) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(filepath.Ext(entry.Name()), ".exe")
	}
	info, err := entry.Info()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
