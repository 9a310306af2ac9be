package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/digest/cmd/digest/commands"
	"go.trai.ch/digest/internal/app"
	"go.trai.ch/digest/internal/build"
)

type mockApp struct {
	runFunc   func(ctx context.Context, opts app.RunOptions) error
	calls     []string
	limit     int
	addr      string
	failCache error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	m.calls = append(m.calls, "run")
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) CacheStatus(context.Context) error {
	m.calls = append(m.calls, "cache-status")
	return m.failCache
}

func (m *mockApp) RefreshCache(context.Context) error {
	m.calls = append(m.calls, "cache-refresh")
	return m.failCache
}

func (m *mockApp) History(_ context.Context, limit int) error {
	m.calls = append(m.calls, "history")
	m.limit = limit
	return nil
}

func (m *mockApp) Serve(_ context.Context, addr string) error {
	m.calls = append(m.calls, "serve")
	m.addr = addr
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "run", "--project", "101", "--force", "--no-notify")
		require.NoError(t, err)
		assert.Equal(t, app.RunOptions{ProjectID: "101", Force: true, NoNotify: true}, captured)
	})

	t.Run("cache flags", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "run", "--cache-status")
		require.NoError(t, err)
		assert.True(t, captured.CacheStatus)

		_, err = execute(t, mock, "run", "--cache-status", "--refresh-cache")
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "run", "101")
		require.Error(t, err)
		assert.Empty(t, mock.calls)
	})
}

func TestCommands_Cache(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "cache", "status")
	require.NoError(t, err)
	_, err = execute(t, mock, "cache", "refresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"cache-status", "cache-refresh"}, mock.calls)

	mock = &mockApp{failCache: errors.New("cache unreadable")}
	_, err = execute(t, mock, "cache", "status")
	require.ErrorContains(t, err, "cache unreadable")
}

func TestCommands_History(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "history")
	require.NoError(t, err)
	assert.Equal(t, 20, mock.limit)

	_, err = execute(t, mock, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, mock.limit)
}

func TestCommands_Serve(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "serve", "--addr", "127.0.0.1:9090")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", mock.addr)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "digest version "+build.Version)
}
