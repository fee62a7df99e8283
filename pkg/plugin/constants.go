// Package plugin provides the public API for external tonal exporters.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Protocol versions are semver. A plugin is accepted when its major version
// matches ProtocolVersion and it is not older than MinCompatibleVersion.
const (
	ProtocolVersion      = "1.0.0"
	MinCompatibleVersion = "1.0.0"
)

const (
	// InfoFlag is the argument every plugin must answer with its PluginInfo as JSON.
	InfoFlag = "--plugin-info"

	// DispenseName is the name the exporter is registered under in go-plugin.
	DispenseName = "output"
)

// Handshake guards go-plugin connections. The cookie stops a plugin binary
// from being run by hand as if it were a normal program.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TONAL_PLUGIN_COOKIE",
	MagicCookieValue: "tonal_material_theme",
}

// PluginType names the transport a plugin speaks.
type PluginType string

const (
	// PluginTypeGoPlugin is HashiCorp go-plugin over net/rpc.
	PluginTypeGoPlugin PluginType = "go-plugin"

	// PluginTypeJSON reads ThemeData as JSON on stdin and writes a
	// file-name to content map as JSON on stdout.
	PluginTypeJSON PluginType = "json-stdio"
)
