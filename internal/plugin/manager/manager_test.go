package manager

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/executor"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	outputtest "github.com/jmylchreest/tonal/internal/plugin/output/testing"
	"github.com/jmylchreest/tonal/internal/theme"
	"github.com/jmylchreest/tonal/pkg/plugin"
)

type mockOutputPlugin struct {
	name string
}

func (m *mockOutputPlugin) Name() string        { return m.name }
func (m *mockOutputPlugin) Description() string { return "mock" }
func (m *mockOutputPlugin) Generate(*theme.Theme) (map[string][]byte, error) {
	return map[string][]byte{}, nil
}
func (m *mockOutputPlugin) DefaultOutputDir() string     { return "" }
func (m *mockOutputPlugin) RegisterFlags(*cobra.Command) {}
func (m *mockOutputPlugin) Validate() error              { return nil }

// fakeRunner answers --plugin-info with a plugin named after the file and
// echoes the theme source on generate.
type fakeRunner struct{}

func (fakeRunner) Run(_ context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	name := filepath.Base(path)
	if slices.Contains(args, plugin.InfoFlag) {
		if name == "broken" {
			return []byte("garbage"), nil, nil
		}
		info, err := json.Marshal(plugin.PluginInfo{Name: name, Description: "fake " + name, Version: "0.2.0"})
		return info, nil, err
	}
	var td plugin.ThemeData
	if err := json.NewDecoder(stdin).Decode(&td); err != nil {
		return nil, nil, err
	}
	out, _ := json.Marshal(map[string]string{name + ".txt": td.Source + " " + td.Args["mode"]})
	return out, nil, nil
}

func TestBuildRegistersBuiltins(t *testing.T) {
	m := NewBuilder().Build()
	want := []string{"alacritty", "css", "json", "kitty", "toml", "yaml"}
	if got := m.Registry().List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestBuildKeepsCustomRegistration(t *testing.T) {
	reg := output.NewRegistry()
	reg.Register(&mockOutputPlugin{name: "css"})
	m := NewBuilder().WithRegistry(reg).Build()
	p, _ := m.Get("css")
	if _, ok := p.(*mockOutputPlugin); !ok {
		t.Errorf("Get(css) = %T, want the pre-registered mock", p)
	}
}

func TestBuilderWithEnvConfig(t *testing.T) {
	t.Setenv(EnvDisabledPlugins, "output:kitty, yaml")
	t.Setenv(EnvEnabledPlugins, "all")

	m := NewBuilder().WithConfig(Config{EnabledPlugins: []string{"css"}}).WithEnvConfig().Build()
	if got := m.Config().DisabledPlugins; !slices.Equal(got, []string{"output:kitty", "yaml"}) {
		t.Errorf("DisabledPlugins = %v", got)
	}
	if got := m.Config().EnabledPlugins; !slices.Equal(got, []string{"all"}) {
		t.Errorf("EnabledPlugins = %v, want env to override", got)
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		plugin string
		want   bool
	}{
		{name: "default disabled", plugin: "css", want: false},
		{name: "enabled by name", config: Config{EnabledPlugins: []string{"css"}}, plugin: "css", want: true},
		{name: "enabled by full name", config: Config{EnabledPlugins: []string{"output:css"}}, plugin: "css", want: true},
		{name: "not in whitelist", config: Config{EnabledPlugins: []string{"json"}}, plugin: "css", want: false},
		{name: "all", config: Config{EnabledPlugins: []string{"all"}}, plugin: "kitty", want: true},
		{name: "disabled wins", config: Config{EnabledPlugins: []string{"all"}, DisabledPlugins: []string{"kitty"}}, plugin: "kitty", want: false},
		{name: "disable all", config: Config{EnabledPlugins: []string{"css"}, DisabledPlugins: []string{"all"}}, plugin: "css", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBuilder().WithConfig(tt.config).Build()
			if got := m.IsEnabled(tt.plugin); got != tt.want {
				t.Errorf("IsEnabled(%q) = %v, want %v", tt.plugin, got, tt.want)
			}
		})
	}
}

func TestEnabledAndCheck(t *testing.T) {
	m := NewBuilder().WithConfig(Config{EnabledPlugins: []string{"yaml", "css"}}).Build()
	var names []string
	for _, p := range m.Enabled() {
		names = append(names, p.Name())
	}
	if !slices.Equal(names, []string{"css", "yaml"}) {
		t.Errorf("Enabled() = %v, want [css yaml]", names)
	}
	if err := m.CheckEnabled(); err != nil {
		t.Errorf("CheckEnabled() error = %v", err)
	}

	m.UpdateConfig(Config{EnabledPlugins: []string{"css", "foot"}})
	if err := m.CheckEnabled(); err == nil {
		t.Error("CheckEnabled() with unknown exporter error = nil")
	}
}

func TestSetEnabledDisabled(t *testing.T) {
	m := NewBuilder().Build()
	m.SetEnabled("css")
	if !m.IsEnabled("css") {
		t.Error("css not enabled after SetEnabled")
	}
	m.SetDisabled("css")
	if m.IsEnabled("css") {
		t.Error("css enabled after SetDisabled")
	}
	m.SetEnabled("css")
	if !m.IsEnabled("css") || slices.Contains(m.Config().DisabledPlugins, "css") {
		t.Errorf("config after re-enable = %+v", m.Config())
	}
}

func TestParsePluginList(t *testing.T) {
	got := parsePluginList(" css ,, output:json,")
	if !slices.Equal(got, []string{"css", "output:json"}) {
		t.Errorf("parsePluginList() = %v", got)
	}
}

func writeExecutable(t *testing.T, dir, name string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), mode); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit detection is unix only")
	}
	dir := t.TempDir()
	writeExecutable(t, dir, "notify", 0o755)
	writeExecutable(t, dir, "broken", 0o755)
	writeExecutable(t, dir, "css", 0o755)
	writeExecutable(t, dir, "readme.txt", 0o644)
	writeExecutable(t, dir, ".hidden", 0o755)

	m := NewBuilder().Build()
	found, err := m.Discover(context.Background(), dir, executor.WithRunner(fakeRunner{}))
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(found) != 1 || found[0].Name() != "notify" {
		t.Fatalf("Discover() found %d plugins, want only notify", len(found))
	}
	p, ok := m.Get("notify")
	if !ok {
		t.Fatal("notify not registered")
	}
	if p.Description() != "fake notify (external 0.2.0)" {
		t.Errorf("Description() = %q", p.Description())
	}
	if builtin, _ := m.Get("css"); builtin == output.Plugin(found[0]) {
		t.Error("external plugin replaced built-in css")
	}

	ext := found[0]
	ext.SetArgs(map[string]string{"mode": "urgent"})
	files, err := ext.Generate(outputtest.NewTestTheme(t, theme.ModeDark))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := string(files["notify.txt"]); got != "#6750a4 urgent" {
		t.Errorf("notify.txt = %q, want source and arg", got)
	}
	m.Close()
}

func TestDiscoverMissingDir(t *testing.T) {
	m := NewBuilder().Build()
	found, err := m.Discover(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err != nil || found != nil {
		t.Errorf("Discover(missing) = %v, %v, want nil, nil", found, err)
	}
}

func TestExternalPluginFlags(t *testing.T) {
	exec, err := executor.New(context.Background(), "/plugins/notify", executor.WithRunner(fakeRunner{}))
	if err != nil {
		t.Fatalf("executor.New() error = %v", err)
	}
	p := NewExternalPlugin(exec)
	outputtest.TestFlags(t, p, []string{"notify.output-dir", "notify.arg"})

	cmd := &cobra.Command{}
	p2 := NewExternalPlugin(exec)
	p2.RegisterFlags(cmd)
	if err := cmd.Flags().Parse([]string{"--notify.arg", "a=1,b=2", "--notify.output-dir", "/tmp/x"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p2.args["a"] != "1" || p2.args["b"] != "2" {
		t.Errorf("args = %v", p2.args)
	}
	if p2.DefaultOutputDir() != "/tmp/x" {
		t.Errorf("DefaultOutputDir() = %q", p2.DefaultOutputDir())
	}
}

func TestConvertTheme(t *testing.T) {
	th := outputtest.NewTestTheme(t, theme.ModeBoth)
	data := ConvertTheme(th)

	if data.Source != th.Source || data.Variant != th.Variant || data.SpecVersion != th.SpecVersion {
		t.Errorf("header = %s/%s/%s", data.Source, data.Variant, data.SpecVersion)
	}
	if data.Light == nil || data.Dark == nil {
		t.Fatal("ConvertTheme() dropped a scheme")
	}
	if c, ok := data.Dark.Get("primary"); !ok || c.Hex != th.Dark.Hex("primary") {
		t.Errorf("dark primary = %v, want %s", c, th.Dark.Hex("primary"))
	}
	if len(data.Light.Terminal) != len(th.Light.Terminal) {
		t.Errorf("terminal colours = %d, want %d", len(data.Light.Terminal), len(th.Light.Terminal))
	}
	if len(data.Palettes) != len(th.Palettes) || len(data.Palettes[0].Tones) != len(th.Palettes[0].Tones) {
		t.Error("palettes not copied")
	}

	dark := ConvertTheme(outputtest.NewTestTheme(t, theme.ModeDark))
	if dark.Light != nil {
		t.Error("ConvertTheme() of dark-only theme has a light scheme")
	}
}
