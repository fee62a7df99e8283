package plugin

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-plugin"
)

// Serve runs impl as a go-plugin exporter. When the process is started with
// InfoFlag it prints the plugin metadata as JSON and exits instead.
func Serve(impl OutputPlugin) {
	if len(os.Args) > 1 && os.Args[1] == InfoFlag {
		if err := WriteInfo(impl.GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			DispenseName: &OutputPluginRPC{Impl: impl},
		},
	})
}

// WriteInfo prints info to stdout in the --plugin-info format.
func WriteInfo(info PluginInfo) error {
	if info.PluginProtocol == "" {
		info.PluginProtocol = string(PluginTypeGoPlugin)
	}
	if info.ProtocolVersion == "" {
		info.ProtocolVersion = ProtocolVersion
	}
	if info.Type == "" {
		info.Type = "output"
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
