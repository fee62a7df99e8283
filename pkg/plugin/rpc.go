package plugin

import (
	"context"
	"errors"
	"net/rpc"
	"time"

	"github.com/hashicorp/go-plugin"
)

// OutputPluginRPC connects OutputPlugin to go-plugin's net/rpc transport.
type OutputPluginRPC struct {
	plugin.Plugin
	Impl OutputPlugin
}

// Server returns the RPC server wrapping Impl.
func (p *OutputPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &OutputPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an OutputPluginRPCClient for c.
func (p *OutputPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &OutputPluginRPCClient{client: c}, nil
}

// Wire types. Timeout carries the caller's remaining deadline; zero means
// none.
type (
	GenerateArgs struct {
		Theme   ThemeData
		Timeout time.Duration
	}

	GenerateReply struct {
		Files map[string][]byte
	}

	PreExecuteArgs struct {
		Timeout time.Duration
	}

	PreExecuteReply struct {
		Skip   bool
		Reason string
		Error  string
	}

	PostExecuteArgs struct {
		Files   []string
		Timeout time.Duration
	}

	PostExecuteReply struct {
		Error string
	}
)

// remaining converts ctx's deadline to a wire timeout.
func remaining(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0
	}
	if d := time.Until(deadline); d > 0 {
		return d
	}
	return time.Nanosecond
}

// withTimeout rebuilds the caller's deadline on the plugin side.
func withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}

// OutputPluginRPCServer runs inside the plugin process.
type OutputPluginRPCServer struct {
	Impl OutputPlugin
}

// Generate serves Plugin.Generate.
func (s *OutputPluginRPCServer) Generate(args GenerateArgs, reply *GenerateReply) error {
	ctx, cancel := withTimeout(args.Timeout)
	defer cancel()

	files, err := s.Impl.Generate(ctx, args.Theme)
	if err != nil {
		return err
	}
	reply.Files = files
	return nil
}

// PreExecute serves Plugin.PreExecute. Hook errors travel in the reply so
// that a skip reason is not lost.
func (s *OutputPluginRPCServer) PreExecute(args PreExecuteArgs, reply *PreExecuteReply) error {
	ctx, cancel := withTimeout(args.Timeout)
	defer cancel()

	skip, reason, err := s.Impl.PreExecute(ctx)
	reply.Skip = skip
	reply.Reason = reason
	if err != nil {
		reply.Error = err.Error()
	}
	return nil
}

// PostExecute serves Plugin.PostExecute.
func (s *OutputPluginRPCServer) PostExecute(args PostExecuteArgs, reply *PostExecuteReply) error {
	ctx, cancel := withTimeout(args.Timeout)
	defer cancel()

	if err := s.Impl.PostExecute(ctx, args.Files); err != nil {
		reply.Error = err.Error()
	}
	return nil
}

// GetMetadata serves Plugin.GetMetadata.
func (s *OutputPluginRPCServer) GetMetadata(_ any, reply *PluginInfo) error {
	*reply = s.Impl.GetMetadata()
	return nil
}

// GetFlagHelp serves Plugin.GetFlagHelp.
func (s *OutputPluginRPCServer) GetFlagHelp(_ any, reply *[]FlagHelp) error {
	*reply = s.Impl.GetFlagHelp()
	return nil
}

// OutputPluginRPCClient is the host side of an output plugin.
type OutputPluginRPCClient struct {
	client *rpc.Client
}

// call invokes method and gives up when ctx ends. Errors returned by the
// plugin become *RPCError.
func (c *OutputPluginRPCClient) call(ctx context.Context, method string, args, reply any) error {
	pending := c.client.Go("Plugin."+method, args, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-pending.Done:
		var serverErr rpc.ServerError
		if errors.As(done.Error, &serverErr) {
			return &RPCError{Message: string(serverErr)}
		}
		return done.Error
	}
}

// Generate asks the plugin to render theme.
func (c *OutputPluginRPCClient) Generate(ctx context.Context, theme ThemeData) (map[string][]byte, error) {
	var reply GenerateReply
	if err := c.call(ctx, "Generate", GenerateArgs{Theme: theme, Timeout: remaining(ctx)}, &reply); err != nil {
		return nil, err
	}
	return reply.Files, nil
}

// PreExecute runs the plugin's pre-execution check.
func (c *OutputPluginRPCClient) PreExecute(ctx context.Context) (bool, string, error) {
	var reply PreExecuteReply
	if err := c.call(ctx, "PreExecute", PreExecuteArgs{Timeout: remaining(ctx)}, &reply); err != nil {
		return false, "", err
	}
	if reply.Error != "" {
		return reply.Skip, reply.Reason, &RPCError{Message: reply.Error}
	}
	return reply.Skip, reply.Reason, nil
}

// PostExecute passes the written files to the plugin's post-execution hook.
func (c *OutputPluginRPCClient) PostExecute(ctx context.Context, files []string) error {
	var reply PostExecuteReply
	if err := c.call(ctx, "PostExecute", PostExecuteArgs{Files: files, Timeout: remaining(ctx)}, &reply); err != nil {
		return err
	}
	if reply.Error != "" {
		return &RPCError{Message: reply.Error}
	}
	return nil
}

// GetMetadata fetches the plugin's metadata.
func (c *OutputPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.call(context.Background(), "GetMetadata", new(any), &info)
	return info, err
}

// GetFlagHelp fetches the plugin's flag help, or nil if the call fails.
func (c *OutputPluginRPCClient) GetFlagHelp() []FlagHelp {
	var help []FlagHelp
	if err := c.call(context.Background(), "GetFlagHelp", new(any), &help); err != nil {
		return nil
	}
	return help
}

// RPCError is an error reported by the plugin process.
type RPCError struct {
	Message string
}

func (e *RPCError) Error() string {
	return e.Message
}
