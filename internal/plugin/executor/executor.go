// Package executor runs external exporters, whichever protocol they speak
// (go-plugin RPC or JSON over stdio).
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

// Timeouts for the calls the host makes to a plugin.
const (
	InfoTimeout        = 5 * time.Second
	PreExecuteTimeout  = 5 * time.Second
	PostExecuteTimeout = 10 * time.Second
)

// PluginExecutor runs one external exporter.
type PluginExecutor struct {
	path         string
	info         plugin.PluginInfo
	protocolType plugin.PluginType
	runner       ProcessRunner
	logger       hclog.Logger

	client    *goplugin.Client
	rpcClient *plugin.OutputPluginRPCClient
}

// Option configures a PluginExecutor.
type Option func(*PluginExecutor)

// WithRunner replaces the process runner used for --plugin-info and the
// JSON-stdio protocol.
func WithRunner(r ProcessRunner) Option {
	return func(e *PluginExecutor) { e.runner = r }
}

// WithLogger sets the logger the executor and go-plugin log through.
func WithLogger(l hclog.Logger) Option {
	return func(e *PluginExecutor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New queries the plugin at path for its metadata and checks protocol
// compatibility. go-plugin clients are started lazily on first use.
func New(ctx context.Context, path string, opts ...Option) (*PluginExecutor, error) {
	e := &PluginExecutor{
		path:   path,
		runner: NewRealProcessRunner(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	info, err := e.detect(ctx)
	if err != nil {
		return nil, err
	}
	e.info = info
	e.protocolType = plugin.PluginType(info.PluginProtocol)
	e.logger = e.logger.Named(info.Name)
	return e, nil
}

// detect runs the plugin with --plugin-info.
func (e *PluginExecutor) detect(ctx context.Context) (plugin.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, InfoTimeout)
	defer cancel()

	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{plugin.InfoFlag}, nil)
	if err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to query plugin %s: %w%s", e.path, err, stderrSuffix(stderr))
	}

	var info plugin.PluginInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to parse plugin info from %s: %w", e.path, err)
	}
	if info.Name == "" {
		return plugin.PluginInfo{}, fmt.Errorf("plugin %s did not report a name", e.path)
	}
	if info.Type != "" && info.Type != "output" {
		return plugin.PluginInfo{}, fmt.Errorf("plugin %s is a %s plugin, only output plugins are supported", info.Name, info.Type)
	}

	switch plugin.PluginType(info.PluginProtocol) {
	case plugin.PluginTypeGoPlugin, plugin.PluginTypeJSON:
	case "":
		info.PluginProtocol = string(plugin.PluginTypeJSON)
	default:
		return plugin.PluginInfo{}, fmt.Errorf("unknown plugin_protocol: %s", info.PluginProtocol)
	}

	if info.ProtocolVersion != "" {
		if _, err := plugin.IsCompatible(info.ProtocolVersion); err != nil {
			return plugin.PluginInfo{}, fmt.Errorf("plugin %s: %w", info.Name, err)
		}
	}
	return info, nil
}

// Info returns the metadata the plugin reported.
func (e *PluginExecutor) Info() plugin.PluginInfo {
	return e.info
}

// Path returns the plugin executable path.
func (e *PluginExecutor) Path() string {
	return e.path
}

// Generate sends the theme to the plugin and returns the files it produced.
func (e *PluginExecutor) Generate(ctx context.Context, theme plugin.ThemeData) (map[string][]byte, error) {
	switch e.protocolType {
	case plugin.PluginTypeGoPlugin:
		client, err := e.outputClient()
		if err != nil {
			return nil, err
		}
		return client.Generate(ctx, theme)
	case plugin.PluginTypeJSON:
		return e.generateJSON(ctx, theme)
	default:
		return nil, fmt.Errorf("unsupported protocol type: %s", e.protocolType)
	}
}

// PreExecute runs the plugin's pre-execution hook.
func (e *PluginExecutor) PreExecute(ctx context.Context) (skip bool, reason string, err error) {
	ctx, cancel := context.WithTimeout(ctx, PreExecuteTimeout)
	defer cancel()

	switch e.protocolType {
	case plugin.PluginTypeGoPlugin:
		client, err := e.outputClient()
		if err != nil {
			return false, "", err
		}
		return client.PreExecute(ctx)
	case plugin.PluginTypeJSON:
		return e.preExecuteJSON(ctx)
	default:
		return false, "", fmt.Errorf("unsupported protocol type: %s", e.protocolType)
	}
}

// PostExecute runs the plugin's post-execution hook.
func (e *PluginExecutor) PostExecute(ctx context.Context, writtenFiles []string) error {
	ctx, cancel := context.WithTimeout(ctx, PostExecuteTimeout)
	defer cancel()

	switch e.protocolType {
	case plugin.PluginTypeGoPlugin:
		client, err := e.outputClient()
		if err != nil {
			return err
		}
		return client.PostExecute(ctx, writtenFiles)
	case plugin.PluginTypeJSON:
		return e.postExecuteJSON(ctx, writtenFiles)
	default:
		return fmt.Errorf("unsupported protocol type: %s", e.protocolType)
	}
}

// FlagHelp returns the plugin's flag documentation. JSON-stdio plugins have none.
func (e *PluginExecutor) FlagHelp() []plugin.FlagHelp {
	if e.protocolType != plugin.PluginTypeGoPlugin {
		return nil
	}
	client, err := e.outputClient()
	if err != nil {
		e.logger.Debug("flag help unavailable", "error", err)
		return nil
	}
	return client.GetFlagHelp()
}

// Close stops a running go-plugin process. It is safe to call more than once.
func (e *PluginExecutor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpcClient = nil
	}
}

// outputClient starts the go-plugin process on first use.
func (e *PluginExecutor) outputClient() (*plugin.OutputPluginRPCClient, error) {
	if e.rpcClient != nil {
		return e.rpcClient, nil
	}

	e.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins: map[string]goplugin.Plugin{
			plugin.DispenseName: &plugin.OutputPluginRPC{},
		},
		Cmd:              exec.Command(e.path), // #nosec G204 - plugin path comes from the configured plugin directory
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           e.logger,
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.DispenseName)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	client, ok := raw.(*plugin.OutputPluginRPCClient)
	if !ok {
		e.Close()
		return nil, fmt.Errorf("plugin dispensed unexpected type %T", raw)
	}
	e.rpcClient = client
	return client, nil
}

// generateJSON writes the theme as JSON to the plugin's stdin and expects a
// JSON object of filename to content on stdout.
func (e *PluginExecutor) generateJSON(ctx context.Context, theme plugin.ThemeData) (map[string][]byte, error) {
	input, err := json.Marshal(theme)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}

	stdout, stderr, err := e.runner.Run(ctx, e.path, nil, bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("plugin execution failed: %w%s", err, stderrSuffix(stderr))
	}

	var files map[string]string
	if err := json.Unmarshal(stdout, &files); err != nil {
		return nil, fmt.Errorf("failed to parse plugin output: %w", err)
	}

	result := make(map[string][]byte, len(files))
	for name, content := range files {
		result[name] = []byte(content)
	}
	return result, nil
}

// preExecuteJSON runs the plugin with --pre-execute.
// Exit code 0 = continue, 1 = skip (reason on stdout), 2+ = error.
func (e *PluginExecutor) preExecuteJSON(ctx context.Context) (bool, string, error) {
	stdout, stderr, err := e.runner.Run(ctx, e.path, []string{"--pre-execute"}, nil)
	if err == nil {
		return false, "", nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		reason := strings.TrimSpace(string(stdout))
		if reason == "" {
			reason = "plugin requested skip"
		}
		return true, reason, nil
	}

	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		msg = err.Error()
	}
	return false, "", fmt.Errorf("pre-execute failed: %s", msg)
}

// postExecuteJSON runs the plugin with --post-execute, passing the written
// files as {"written_files": [...]} on stdin.
func (e *PluginExecutor) postExecuteJSON(ctx context.Context, writtenFiles []string) error {
	input, err := json.Marshal(map[string][]string{"written_files": writtenFiles})
	if err != nil {
		return fmt.Errorf("failed to marshal files: %w", err)
	}

	_, stderr, err := e.runner.Run(ctx, e.path, []string{"--post-execute"}, bytes.NewReader(input))
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("post-execute failed: %s", msg)
	}
	return nil
}

func stderrSuffix(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if s == "" {
		return ""
	}
	return "\nStderr: " + s
}
