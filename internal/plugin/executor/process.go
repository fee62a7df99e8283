package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for a plugin's output pipes to close
// after it exits or is killed. Plugins that leave children holding the
// pipes would otherwise block Run indefinitely.
const waitDelay = 2 * time.Second

// ProcessRunner runs external processes. Tests swap in a fake.
type ProcessRunner interface {
	// Run executes path with args, feeding stdin, and returns stdout and stderr.
	Run(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

// RealProcessRunner runs plugins with os/exec.
type RealProcessRunner struct{}

// NewRealProcessRunner returns a RealProcessRunner.
func NewRealProcessRunner() *RealProcessRunner {
	return &RealProcessRunner{}
}

// Run executes path and collects both output streams. The plugin sees
// TONAL_PLUGIN=1 in its environment.
func (r *RealProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 - plugin path comes from the configured plugin directory
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), "TONAL_PLUGIN=1")
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
