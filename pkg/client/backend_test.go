package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sol-swap/pkg/types"
)

func mockBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSwap_SendsJSONPost(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"signature":"sig"}`))
	}))
	defer server.Close()

	c := NewBackendClient(server.URL + "/")
	_, err := c.Swap(context.Background(), types.NewSwapRequest("buy", "1.5", "mint"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/swap", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]interface{}{
		"action":       "buy",
		"amount":       "1.5",
		"tokenAddress": "mint",
		"publicKey":    "PUBLIC KEY",
	}, gotBody)
}

func TestSwap_Success(t *testing.T) {
	server := mockBackend(t, http.StatusOK, `{"signature":"abc123"}`)
	defer server.Close()

	resp, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)
	assert.Equal(t, types.SwapSuccess{Signature: "abc123"}, resp)
}

func TestSwap_SuccessWithoutSignature(t *testing.T) {
	for _, body := range []string{`{}`, `{"signature":""}`, `null`} {
		t.Run(body, func(t *testing.T) {
			server := mockBackend(t, http.StatusOK, body)
			defer server.Close()

			resp, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
			assert.ErrorIs(t, err, ErrMissingSignature)
			assert.Nil(t, resp)
		})
	}
}

func TestSwap_SuccessWithWrongSignatureType(t *testing.T) {
	server := mockBackend(t, http.StatusOK, `{"signature":42}`)
	defer server.Close()

	_, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response (status 200)")
}

func TestSwap_Rejected(t *testing.T) {
	server := mockBackend(t, http.StatusBadRequest, `{"error":"Invalid token address"}`)
	defer server.Close()

	resp, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "bad"))
	require.NoError(t, err)
	assert.Equal(t, types.SwapFailure{StatusCode: 400, Error: "Invalid token address"}, resp)
}

func TestSwap_RejectedWithoutMessageUsesStatusText(t *testing.T) {
	server := mockBackend(t, http.StatusInternalServerError, `{}`)
	defer server.Close()

	resp, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.NoError(t, err)
	assert.Equal(t, types.SwapFailure{StatusCode: 500, Error: "Internal Server Error"}, resp)
}

func TestSwap_NonJSONBody(t *testing.T) {
	server := mockBackend(t, http.StatusBadGateway, `Bad Gateway`)
	defer server.Close()

	resp, err := NewBackendClient(server.URL).Swap(context.Background(), types.NewSwapRequest("buy", "1", "mint"))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSwap_CancelledContext(t *testing.T) {
	server := mockBackend(t, http.StatusOK, `{"signature":"abc123"}`)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBackendClient(server.URL).Swap(ctx, types.NewSwapRequest("buy", "1", "mint"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{}
	c := NewBackendClient("http://localhost:5000", WithHTTPClient(custom))

	assert.Same(t, custom, c.httpClient)
	assert.Equal(t, "http://localhost:5000/swap", c.URL())
}

func TestEmptyBaseURLIsRelative(t *testing.T) {
	assert.Equal(t, "/swap", NewBackendClient("").URL())
}
