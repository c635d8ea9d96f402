package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sol-swap/pkg/types"
)

// SwapPath is the backend route that executes a swap
const SwapPath = "/swap"

// ErrMissingSignature is returned when a success response carries no signature
var ErrMissingSignature = errors.New("swap response is missing a signature")

// BackendClient posts swap requests to the swap backend
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a BackendClient
type Option func(*BackendClient)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(b *BackendClient) {
		b.httpClient = c
	}
}

// NewBackendClient creates a client for the backend at baseURL.
// An empty baseURL posts to the relative path, which is what the browser
// build wants when served from the backend's own origin.
func NewBackendClient(baseURL string, opts ...Option) *BackendClient {
	b := &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// URL returns the full swap endpoint
func (c *BackendClient) URL() string {
	return c.baseURL + SwapPath
}

// swapResponseBody covers both response shapes so the status code decides
// which one applies
type swapResponseBody struct {
	Signature *string `json:"signature"`
	Error     *string `json:"error"`
}

// Swap sends one swap request. A returned error means the call could not
// complete or its body could not be understood; a backend rejection comes
// back as a types.SwapFailure with a nil error.
func (c *BackendClient) Swap(ctx context.Context, req types.SwapRequest) (types.SwapResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal swap request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach swap backend: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var body swapResponseBody
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", httpResp.StatusCode, err)
	}

	// Check for successful status codes (200-299)
	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		if body.Signature == nil || *body.Signature == "" {
			return nil, ErrMissingSignature
		}
		return types.SwapSuccess{Signature: *body.Signature}, nil
	}

	message := http.StatusText(httpResp.StatusCode)
	if body.Error != nil && *body.Error != "" {
		message = *body.Error
	}

	return types.SwapFailure{
		StatusCode: httpResp.StatusCode,
		Error:      message,
	}, nil
}
