//go:build unix

package kitty

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/mitchellh/go-ps"
)

// kittyExecutables are the process names kitty runs under. Nix wraps the
// binary as .kitty-wrapped.
var kittyExecutables = map[string]bool{
	"kitty":          true,
	".kitty-wrapped": true,
}

// reloadAllKittyInstances sends SIGUSR1 to every kitty process. A failure
// to signal one instance does not stop the others.
func (p *Plugin) reloadAllKittyInstances() error {
	pids, err := findProcesses(func(name string) bool { return kittyExecutables[name] })
	if err != nil {
		return fmt.Errorf("failed to find kitty processes: %w", err)
	}
	if len(pids) == 0 {
		return fmt.Errorf("no running kitty instances found")
	}

	var errs []error
	for _, pid := range pids {
		if err := syscall.Kill(pid, syscall.SIGUSR1); err != nil {
			errs = append(errs, fmt.Errorf("pid %d: %w", pid, err))
			continue
		}
		p.logger.Debug("sent SIGUSR1", "pid", pid)
	}
	if len(errs) == len(pids) {
		return fmt.Errorf("failed to reload kitty: %w", errors.Join(errs...))
	}
	if len(errs) > 0 {
		p.logger.Warn("some kitty instances were not reloaded", "error", errors.Join(errs...))
	}
	return nil
}

// findProcesses returns the pids of processes whose executable name
// satisfies match, excluding this process.
func findProcesses(match func(name string) bool) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	self := os.Getpid()
	var pids []int
	for _, proc := range processes {
		if proc.Pid() != self && match(proc.Executable()) {
			pids = append(pids, proc.Pid())
		}
	}
	return pids, nil
}
