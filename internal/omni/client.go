package omni

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	sendTextPath  = "/api/v1/instance/%s/send-text"
	instancesPath = "/api/v1/instances/"

	apiKeyHeader = "X-API-Key"

	// DefaultTimeout bounds a single gateway call when the caller's context has no deadline.
	DefaultTimeout = 10 * time.Second
)

var _ Gateway = (*Client)(nil)

// Client talks to the Omni gateway over HTTP. It holds no per-call state
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

// NewClient captures the gateway base URL and optional API key.
// An empty apiKey means requests are sent without X-API-Key. No I/O happens here.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// SendText posts a text message to the given instance.
func (c *Client) SendText(ctx context.Context, instanceName string, req SendTextRequest) (*SendTextResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("omni: marshal send-text request: %w", err)
	}

	endpoint := c.baseURL + fmt.Sprintf(sendTextPath, url.PathEscape(instanceName))

	raw, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}

	var resp SendTextResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, decodeError("failed to parse send-text response", err)
	}

	return &resp, nil
}

// ListInstances returns every instance the gateway knows about, in gateway order.
func (c *Client) ListInstances(ctx context.Context) ([]InstanceInfo, error) {
	raw, err := c.do(ctx, http.MethodGet, c.baseURL+instancesPath, nil)
	if err != nil {
		return nil, err
	}

	var env instancesEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, decodeError("failed to parse instances response", err)
	}

	return env.unwrap(), nil
}

// do runs one request and returns the body of a 2xx response.
// Anything else comes back as *Error.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, transportError("failed to create request", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, transportError("request timeout or canceled", err)
		}
		return nil, transportError("request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, httpError(resp.StatusCode, string(raw))
	}

	return raw, nil
}
