package api_test

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pocketcasino/internal/api"
	"github.com/mcoot/pocketcasino/internal/testutil"
)

func TestServerEphemeralPortLifecycle(t *testing.T) {
	ts := newTestServer(t)
	cfg := api.DefaultServerConfig()
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second
	server := api.NewServer(ts.handler, cfg, testutil.NopLogger())

	require.NoError(t, server.Listen())
	addr := server.Addr()
	assert.False(t, strings.HasSuffix(addr, ":0"), "bound address should carry the chosen port")

	served := make(chan error, 1)
	go func() { served <- server.Serve() }()

	resp, err := http.Get("http://" + addr + "/api/v1/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, server.Shutdown(context.Background()))
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestServerListenAddressInUse(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Port = 0
	first := api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())
	require.NoError(t, first.Listen())
	go func() { _ = first.Serve() }()
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)
	cfg.Port, err = strconv.Atoi(port)
	require.NoError(t, err)

	err = api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger()).Listen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
