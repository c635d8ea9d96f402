package devserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sol-swap/pkg/client"
	"sol-swap/pkg/types"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestServer(t *testing.T, backendURL, assetsDir string) *httptest.Server {
	t.Helper()
	s, err := New(Config{BackendURL: backendURL, AssetsDir: assetsDir}, quietLogger())
	require.NoError(t, err)
	return httptest.NewServer(s.Handler())
}

func TestProxy_ForwardsSwap(t *testing.T) {
	var gotPath, gotContentType string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"signature":"abc123"}`))
	}))
	defer backend.Close()

	dev := newTestServer(t, backend.URL, "")
	defer dev.Close()

	resp, err := client.NewBackendClient(dev.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)

	assert.Equal(t, types.SwapSuccess{Signature: "abc123"}, resp)
	assert.Equal(t, "/swap", gotPath)
	assert.Equal(t, "application/json", gotContentType)
}

func TestProxy_PassesRejectionThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"insufficient funds"}`))
	}))
	defer backend.Close()

	dev := newTestServer(t, backend.URL, "")
	defer dev.Close()

	resp, err := client.NewBackendClient(dev.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)
	assert.Equal(t, types.SwapFailure{StatusCode: 400, Error: "insufficient funds"}, resp)
}

func TestProxy_UnreachableBackend(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	dev := newTestServer(t, "http://"+addr, "")
	defer dev.Close()

	resp, err := client.NewBackendClient(dev.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)

	failure, ok := resp.(types.SwapFailure)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, failure.StatusCode)
	assert.Contains(t, failure.Error, "swap backend unreachable")
}

func TestProxy_RecordsMetrics(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"signature":"abc123"}`))
	}))
	defer backend.Close()

	dev := newTestServer(t, backend.URL, "")
	defer dev.Close()

	_, err := client.NewBackendClient(dev.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)

	res, err := http.Get(dev.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `solswap_proxy_requests_total{status="200"} 1`)
	assert.Contains(t, string(body), "solswap_proxy_request_duration_seconds_count 1")
}

func TestIndexAndStatic(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "main.wasm"), []byte("wasm"), 0600))

	dev := newTestServer(t, "http://localhost:5000", assets)
	defer dev.Close()

	res, err := http.Get(dev.URL + "/")
	require.NoError(t, err)
	page, _ := io.ReadAll(res.Body)
	res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(page), `id="swap-form"`)
	assert.Contains(t, string(page), `id="token-address"`)

	res, err = http.Get(dev.URL + "/static/main.wasm")
	require.NoError(t, err)
	wasm, _ := io.ReadAll(res.Body)
	res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "wasm", string(wasm))
}

func TestSwapRouteIsPostOnly(t *testing.T) {
	dev := newTestServer(t, "http://localhost:5000", "")
	defer dev.Close()

	res, err := http.Get(dev.URL + "/swap")
	require.NoError(t, err)
	res.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestNew_RejectsRelativeBackend(t *testing.T) {
	_, err := New(Config{BackendURL: "localhost:5000"}, quietLogger())
	assert.Error(t, err)
}

func TestStart_StopsOnCancel(t *testing.T) {
	s, err := New(Config{ListenAddr: "127.0.0.1:0", BackendURL: "http://localhost:5000"}, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
