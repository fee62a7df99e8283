package executor

import (
	"context"
	"io"
	"time"
)

// mockProcessRunner records calls and answers with RunFunc.
type mockProcessRunner struct {
	RunFunc func(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)

	// ShouldTimeout blocks until the context is cancelled.
	ShouldTimeout bool
	Delay         time.Duration

	CallCount int
	LastPath  string
	LastArgs  []string
	LastStdin []byte
}

func (m *mockProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	m.CallCount++
	m.LastPath = path
	m.LastArgs = args
	m.LastStdin = nil
	if stdin != nil {
		m.LastStdin, _ = io.ReadAll(stdin)
	}

	if m.ShouldTimeout {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args, stdin)
	}
	return []byte("{}"), nil, nil
}
