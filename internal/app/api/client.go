// internal/app/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the shared transport for the institute's REST backend.
//
// It owns base-URL resolution, JSON encoding, response-envelope unwrapping,
// and translation of backend failures into *Error values. One Client is
// constructed at startup and shared by every resource client.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// DefaultTimeout is the transport-level request timeout. Handlers impose
// their own per-operation deadlines via context; this is only the backstop.
const DefaultTimeout = 30 * time.Second

// NewClient constructs a Client for the given backend base URL
// (e.g. "http://localhost:8000"). The base must be an absolute http(s) URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api base url must be absolute http(s): %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}, nil
}

// BaseURL returns the configured backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.base.String() }

// ResolveURL resolves a possibly-relative URL (as returned by the upload
// endpoint) against the backend base. Absolute URLs pass through unchanged;
// empty input stays empty.
func (c *Client) ResolveURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ref, err := url.Parse(s)
	if err != nil {
		return s
	}
	if ref.IsAbs() {
		return s
	}
	return c.base.ResolveReference(ref).String()
}

// Ping verifies the backend is reachable. Any HTTP response counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// CloseIdleConnections releases pooled connections during shutdown.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// do issues one request and decodes the (possibly enveloped) response body
// into out. Transport failures propagate as-is; HTTP error statuses become
// *Error values carrying the backend's message and field errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := decodeError(resp.StatusCode, raw)
		c.log.Debug("backend error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	return decodeBody(raw, out)
}

// decodeBody unwraps an optional {"data": ...} envelope and decodes the
// payload into out. Bare payloads and enveloped payloads are both accepted.
func decodeBody(raw []byte, out any) error {
	payload := unwrap(raw)
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// unwrap returns the inner payload of a {"data": ...} envelope, or the raw
// body when no envelope is present.
func unwrap(raw []byte) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return raw
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if len(bytes.TrimSpace(env.Data)) == 0 {
		return raw
	}
	return env.Data
}
