package plugin

import (
	"context"
	"errors"
	"net"
	"net/rpc"
	"testing"
	"time"
)

type mockOutputPlugin struct {
	files       map[string][]byte
	skipPreExec bool
	skipReason  string
	metadata    PluginInfo
	flagHelp    []FlagHelp
	generateErr error
	preExecErr  error
	postExecErr error

	// block, when set, holds Generate until it is closed.
	block chan struct{}

	gotTheme    ThemeData
	gotFiles    []string
	gotDeadline bool
}

func (m *mockOutputPlugin) Generate(ctx context.Context, theme ThemeData) (map[string][]byte, error) {
	m.gotTheme = theme
	_, m.gotDeadline = ctx.Deadline()
	if m.block != nil {
		<-m.block
	}
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.files, nil
}

func (m *mockOutputPlugin) PreExecute(_ context.Context) (bool, string, error) {
	if m.preExecErr != nil {
		return false, "", m.preExecErr
	}
	return m.skipPreExec, m.skipReason, nil
}

func (m *mockOutputPlugin) PostExecute(_ context.Context, files []string) error {
	m.gotFiles = files
	return m.postExecErr
}

func (m *mockOutputPlugin) GetMetadata() PluginInfo {
	return m.metadata
}

func (m *mockOutputPlugin) GetFlagHelp() []FlagHelp {
	return m.flagHelp
}

// connect serves impl over an in-memory net/rpc connection.
func connect(t *testing.T, impl OutputPlugin) *OutputPluginRPCClient {
	t.Helper()
	p := &OutputPluginRPC{Impl: impl}
	server, err := p.Server(nil)
	if err != nil {
		t.Fatalf("Server() error = %v", err)
	}

	srv := rpc.NewServer()
	if err := srv.RegisterName("Plugin", server); err != nil {
		t.Fatalf("RegisterName() error = %v", err)
	}
	serverConn, clientConn := net.Pipe()
	go srv.ServeConn(serverConn)

	rpcClient := rpc.NewClient(clientConn)
	t.Cleanup(func() { _ = rpcClient.Close() })

	raw, err := p.Client(nil, rpcClient)
	if err != nil {
		t.Fatalf("Client() error = %v", err)
	}
	return raw.(*OutputPluginRPCClient)
}

func testTheme() ThemeData {
	return ThemeData{
		Source:  "#6750a4",
		Variant: "tonal_spot",
		Dark: &SchemeData{
			Dark:   true,
			Colors: []ColorData{{Name: "primary", Hex: "#d0bcff", Argb: 0xffd0bcff}},
		},
		Args: map[string]string{"name": "value"},
	}
}

func TestOutputPluginRPCRoundTrip(t *testing.T) {
	mock := &mockOutputPlugin{
		files: map[string][]byte{"theme.conf": []byte("primary=#d0bcff")},
		metadata: PluginInfo{
			Name:            "test-output",
			Type:            "output",
			Version:         "1.0.0",
			ProtocolVersion: ProtocolVersion,
			PluginProtocol:  string(PluginTypeGoPlugin),
		},
		flagHelp: []FlagHelp{{Name: "output-dir", Type: "string"}},
	}
	client := connect(t, mock)
	ctx := context.Background()

	t.Run("Generate", func(t *testing.T) {
		files, err := client.Generate(ctx, testTheme())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if string(files["theme.conf"]) != "primary=#d0bcff" {
			t.Errorf("Generate() = %v", files)
		}
		if mock.gotTheme.Dark == nil || mock.gotTheme.Dark.Colors[0].Argb != 0xffd0bcff {
			t.Errorf("plugin received theme %+v", mock.gotTheme)
		}
		if mock.gotTheme.Args["name"] != "value" {
			t.Errorf("plugin received args %v", mock.gotTheme.Args)
		}
	})

	t.Run("PreExecute", func(t *testing.T) {
		skip, reason, err := client.PreExecute(ctx)
		if err != nil || skip || reason != "" {
			t.Errorf("PreExecute() = %v, %q, %v", skip, reason, err)
		}
	})

	t.Run("PostExecute", func(t *testing.T) {
		if err := client.PostExecute(ctx, []string{"/tmp/theme.conf"}); err != nil {
			t.Fatalf("PostExecute() error = %v", err)
		}
		if len(mock.gotFiles) != 1 || mock.gotFiles[0] != "/tmp/theme.conf" {
			t.Errorf("plugin received files %v", mock.gotFiles)
		}
	})

	t.Run("GetMetadata", func(t *testing.T) {
		info, err := client.GetMetadata()
		if err != nil || info.Name != "test-output" {
			t.Errorf("GetMetadata() = %+v, %v", info, err)
		}
	})

	t.Run("GetFlagHelp", func(t *testing.T) {
		help := client.GetFlagHelp()
		if len(help) != 1 || help[0].Name != "output-dir" {
			t.Errorf("GetFlagHelp() = %+v", help)
		}
	})
}

func TestOutputPluginRPCErrors(t *testing.T) {
	mock := &mockOutputPlugin{
		generateErr: errors.New("boom"),
		preExecErr:  errors.New("missing binary"),
	}
	client := connect(t, mock)
	ctx := context.Background()

	_, err := client.Generate(ctx, testTheme())
	var genErr *RPCError
	if !errors.As(err, &genErr) || genErr.Message != "boom" {
		t.Errorf("Generate() error = %v, want RPCError(boom)", err)
	}

	_, _, err = client.PreExecute(ctx)
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Message != "missing binary" {
		t.Errorf("PreExecute() error = %v, want RPCError(missing binary)", err)
	}
}

func TestOutputPluginRPCDeadline(t *testing.T) {
	mock := &mockOutputPlugin{files: map[string][]byte{}}
	client := connect(t, mock)

	if _, err := client.Generate(context.Background(), testTheme()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mock.gotDeadline {
		t.Error("plugin saw a deadline the caller did not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := client.Generate(ctx, testTheme()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !mock.gotDeadline {
		t.Error("plugin did not receive the caller's deadline")
	}
}

func TestOutputPluginRPCCancel(t *testing.T) {
	mock := &mockOutputPlugin{block: make(chan struct{})}
	defer close(mock.block)
	client := connect(t, mock)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Generate(ctx, testTheme()); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Generate() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestOutputPluginRPCSkip(t *testing.T) {
	client := connect(t, &mockOutputPlugin{skipPreExec: true, skipReason: "no display"})
	skip, reason, err := client.PreExecute(context.Background())
	if err != nil || !skip || reason != "no display" {
		t.Errorf("PreExecute() = %v, %q, %v, want skip", skip, reason, err)
	}
}

func TestSchemeDataGet(t *testing.T) {
	s := testTheme().Dark
	if c, ok := s.Get("primary"); !ok || c.Hex != "#d0bcff" {
		t.Errorf("Get(primary) = %+v, %v", c, ok)
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("Get(nope) ok = true")
	}
}
