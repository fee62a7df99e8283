// notify - tonal exporter that sends a desktop notification after a theme is
// written. It speaks the go-plugin protocol.
//
// Build:
//
//	go build -o ~/.local/share/tonal/plugins/notify ./contrib/plugins/output/notify
//
// Usage:
//
//	tonal scheme '#6750a4' -o css,notify --notify.arg urgency=normal
//
// License: MIT
package main

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

var urgencies = map[string]bool{"low": true, "normal": true, "critical": true}

// NotifyPlugin sends a notification through dunstify or notify-send.
type NotifyPlugin struct {
	summary string
	body    string
	accent  string
	urgency string
	timeout int
}

// Generate writes no files; it records what to announce in PostExecute.
func (p *NotifyPlugin) Generate(_ context.Context, theme plugin.ThemeData) (map[string][]byte, error) {
	p.urgency = "low"
	p.timeout = 5000
	if u, ok := theme.Args["urgency"]; ok {
		if !urgencies[u] {
			return nil, fmt.Errorf("invalid urgency %q: must be low, normal or critical", u)
		}
		p.urgency = u
	}
	if t, ok := theme.Args["timeout"]; ok {
		ms, err := strconv.Atoi(t)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid timeout %q: must be milliseconds", t)
		}
		p.timeout = ms
	}

	scheme := theme.Dark
	if scheme == nil {
		scheme = theme.Light
	}
	if scheme != nil {
		if c, ok := scheme.Get("primary"); ok {
			p.accent = c.Hex
		}
	}

	p.summary = "Theme generated"
	p.body = fmt.Sprintf("%s %s from %s", theme.Variant, theme.SpecVersion, theme.Source)
	return map[string][]byte{}, nil
}

// PreExecute skips the plugin when no notification binary is installed.
func (p *NotifyPlugin) PreExecute(context.Context) (bool, string, error) {
	if _, err := exec.LookPath("dunstify"); err == nil {
		return false, "", nil
	}
	if _, err := exec.LookPath("notify-send"); err == nil {
		return false, "", nil
	}
	return true, "neither dunstify nor notify-send found on $PATH", nil
}

// PostExecute sends the notification.
func (p *NotifyPlugin) PostExecute(ctx context.Context, writtenFiles []string) error {
	body := p.body
	switch n := len(writtenFiles); n {
	case 0:
	case 1:
		body += "\n1 file written"
	default:
		body += fmt.Sprintf("\n%d files written", n)
	}

	args := []string{
		"-a", "tonal",
		"-i", "preferences-desktop-theme",
		"-u", p.urgency,
		"-t", strconv.Itoa(p.timeout),
	}

	bin, err := exec.LookPath("dunstify")
	if err == nil {
		if p.accent != "" {
			args = append(args, "-h", "string:frcolor:"+p.accent)
		}
	} else if bin, err = exec.LookPath("notify-send"); err != nil {
		return fmt.Errorf("neither dunstify nor notify-send found on $PATH")
	}

	args = append(args, p.summary, body)
	// #nosec G204 -- bin is resolved via exec.LookPath
	if out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", bin, err, out)
	}
	return nil
}

// GetMetadata returns plugin metadata.
func (p *NotifyPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "notify",
		Type:            "output",
		Version:         "0.1.0",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Send a desktop notification via dunstify or notify-send",
		PluginProtocol:  string(plugin.PluginTypeGoPlugin),
	}
}

// GetFlagHelp documents the arguments read from --notify.arg.
func (p *NotifyPlugin) GetFlagHelp() []plugin.FlagHelp {
	return []plugin.FlagHelp{
		{Name: "urgency", Type: "string", Default: "low", Description: "Notification urgency: low, normal or critical"},
		{Name: "timeout", Type: "int", Default: "5000", Description: "Notification timeout in milliseconds"},
	}
}

func main() {
	plugin.Serve(&NotifyPlugin{})
}
