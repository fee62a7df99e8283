//go:build windows

package kitty

import "fmt"

// reloadAllKittyInstances is not supported on Windows, which has no SIGUSR1.
func (p *Plugin) reloadAllKittyInstances() error {
	return fmt.Errorf("automatic reload is not supported on Windows; restart kitty manually")
}
