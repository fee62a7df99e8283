package output

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
)

// WriteOptions control how generated files are written.
type WriteOptions struct {
	// DryRun logs what would be written without touching the filesystem.
	DryRun bool
	// Backup renames an existing file to <name>.backup before overwriting it.
	Backup bool
	Logger hclog.Logger
}

// WriteFiles writes files under dir in name order and returns the paths written.
func WriteFiles(dir string, files map[string][]byte, opts WriteOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]string, 0, len(files))
	for _, name := range names {
		path := filepath.Join(dir, name)
		content := files[name]
		if opts.DryRun {
			logger.Info("would write file", "path", path, "bytes", len(content))
			continue
		}
		if err := writeFile(path, content, opts.Backup, logger); err != nil {
			return written, err
		}
		logger.Debug("wrote file", "path", path, "bytes", len(content))
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, content []byte, backup bool, logger hclog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if backup {
		if _, err := os.Stat(path); err == nil {
			backupPath := path + ".backup"
			if err := os.Rename(path, backupPath); err != nil {
				logger.Warn("could not create backup", "path", path, "error", err)
			} else {
				logger.Debug("created backup", "path", backupPath)
			}
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
