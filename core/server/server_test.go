package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/WebeWizard/flashcard-server/core/server"
)

func pingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

func TestNewBindsImmediately(t *testing.T) {
	t.Parallel()

	srv, err := server.New("127.0.0.1:0")
	require.NoError(t, err)
	require.NotNil(t, srv.Addr())

	t.Cleanup(func() { srv.Stop() })

	// The port is held from New on, so a second bind must fail.
	_, err = server.New(srv.Addr().String())
	require.ErrorIs(t, err, server.ErrBindFailed)
}

func TestNewInvalidAddress(t *testing.T) {
	t.Parallel()

	_, err := server.New("not-an-address")
	require.ErrorIs(t, err, server.ErrBindFailed)
}

func TestStartServesRequests(t *testing.T) {
	t.Parallel()

	srv, err := server.New("127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx, pingHandler())
	}()

	resp, err := http.Get("http://" + srv.Addr().String() + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	require.NoError(t, srv.Stop())
}

func TestStartAlreadyRunning(t *testing.T) {
	t.Parallel()

	srv, err := server.New("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { srv.Stop() })

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	// Start returns on context cancellation but the server keeps running
	// until Stop, so a second Start must refuse.
	require.ErrorIs(t, srv.Start(canceled, pingHandler()), context.Canceled)
	require.ErrorIs(t, srv.Start(canceled, pingHandler()), server.ErrServerAlreadyRunning)
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	srv, err := server.New("127.0.0.1:0")
	require.NoError(t, err)

	require.NoError(t, srv.Stop())
	require.NoError(t, srv.Stop())
}

func TestRunWithErrgroup(t *testing.T) {
	t.Parallel()

	srv, err := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, pingHandler()))

	resp, err := http.Get("http://" + srv.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, g.Wait())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("binds_configured_address", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.BindPort = 0

		srv, err := server.NewFromConfig(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { srv.Stop() })

		host, _, err := net.SplitHostPort(srv.Addr().String())
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", host)
	})

	t.Run("rejects_missing_ip", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.BindIP = ""

		_, err := server.NewFromConfig(cfg)
		require.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("rejects_invalid_ip", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.BindIP = "localhost"

		_, err := server.NewFromConfig(cfg)
		require.ErrorIs(t, err, server.ErrInvalidBindIP)
	})

	t.Run("rejects_out_of_range_port", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		cfg.BindPort = 70000

		_, err := server.NewFromConfig(cfg)
		require.ErrorIs(t, err, server.ErrInvalidBindPort)
	})
}

func TestConfigAddr(t *testing.T) {
	t.Parallel()

	cfg := server.Config{BindIP: "0.0.0.0", BindPort: 9001}
	assert.Equal(t, "0.0.0.0:9001", cfg.Addr())
}
