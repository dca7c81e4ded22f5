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
	"time"

	"github.com/ashimpoudel/portfolio/pkg/contact"
)

// SubmitPath is the fixed relay endpoint.
const SubmitPath = "/api/submit"

// maxResponseSize caps how much of a relay answer is read.
const maxResponseSize = 64 << 10

// Response is the relay's success body.
type Response struct {
	Message string `json:"message"`
}

// Client posts submissions to a relay.
type Client struct {
	http     *http.Client
	endpoint string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// New creates a client for the relay at baseURL (scheme and host, with
// or without a trailing slash).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		endpoint: strings.TrimRight(baseURL, "/") + SubmitPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the full submit URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Submit sends one POST with s as JSON. It never retries.
func (c *Client) Submit(ctx context.Context, s contact.Submission) (*Response, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrInvalidResponse, err)
	}

	var decoded Response
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			Status:  resp.StatusCode,
			Kind:    kindForStatus(resp.StatusCode),
			Message: decoded.Message,
		}
	}

	if decodeErr != nil {
		return nil, errors.Join(ErrInvalidResponse, decodeErr)
	}
	return &decoded, nil
}
