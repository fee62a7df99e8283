package main

import (
	"context"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

func TestGenerate(t *testing.T) {
	theme := plugin.ThemeData{
		Source:      "#6750a4",
		Variant:     "tonal_spot",
		SpecVersion: "2025",
		Dark: &plugin.SchemeData{
			Dark:   true,
			Colors: []plugin.ColorData{{Name: "primary", Hex: "#cfbcff"}},
		},
		Args: map[string]string{"urgency": "critical", "timeout": "100"},
	}

	p := &NotifyPlugin{}
	files, err := p.Generate(context.Background(), theme)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Generate() returned %d files, want 0", len(files))
	}
	if p.accent != "#cfbcff" || p.urgency != "critical" || p.timeout != 100 {
		t.Errorf("state = %+v", p)
	}
	if !strings.Contains(p.body, "#6750a4") {
		t.Errorf("body = %q, want source colour", p.body)
	}
}

func TestGenerateRejectsArgs(t *testing.T) {
	tests := []map[string]string{
		{"urgency": "loud"},
		{"timeout": "soon"},
		{"timeout": "-1"},
	}
	for _, args := range tests {
		p := &NotifyPlugin{}
		if _, err := p.Generate(context.Background(), plugin.ThemeData{Args: args}); err == nil {
			t.Errorf("Generate(%v) error = nil", args)
		}
	}
}

func TestMetadata(t *testing.T) {
	info := (&NotifyPlugin{}).GetMetadata()
	if info.Name != "notify" || info.PluginProtocol != string(plugin.PluginTypeGoPlugin) {
		t.Errorf("GetMetadata() = %+v", info)
	}
	if ok, err := plugin.IsCompatible(info.ProtocolVersion); !ok {
		t.Errorf("IsCompatible(%s) = %v", info.ProtocolVersion, err)
	}
}
