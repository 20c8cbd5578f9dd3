// Package client wraps the gateway's universal endpoint in a small
// request/response/error state machine, mirroring what a browser hook
// tracks: loading, data, error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// State is a point-in-time view of the adapter. Exactly one of Data/Err is
// set after a call completes; Loading is true only while a call is in
// flight.
type State struct {
	Loading bool
	Data    json.RawMessage
	Err     error
}

// StatusError reports a non-2xx gateway or upstream response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Client calls the gateway and tracks the state of the most recent call.
// A new invocation supersedes the previous one: the older call still runs
// to completion and its error is still returned to its caller, but its
// completion no longer touches the shared state.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu         sync.Mutex
	generation uint64
	state      State
}

// New creates a Client pointing at the given gateway base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// HTTPClient exposes the underlying http.Client for specialized calls.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// State returns a snapshot of the adapter state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Get fetches target through the gateway.
func (c *Client) Get(ctx context.Context, target string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, target, nil)
}

// Post sends body (marshaled to JSON) to target through the gateway.
func (c *Client) Post(ctx context.Context, target string, body any) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, target, bytes.NewReader(encoded))
}

// do runs one call through the state machine. The deferred completion plays
// the role of a finally block: Loading is cleared on every exit path, and a
// completion that has been superseded by a newer call is discarded instead
// of overwriting newer state.
func (c *Client) do(ctx context.Context, method, target string, body io.Reader) (data json.RawMessage, err error) {
	gen := c.begin()
	defer func() { c.complete(gen, data, err) }()

	reqURL := c.baseURL + "/api/universal?target=" + url.QueryEscape(target)
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Status:  resp.StatusCode,
			Message: errorMessage(raw),
		}
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	return json.RawMessage(raw), nil
}

// begin marks a new call in flight and returns its generation token.
func (c *Client) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state = State{Loading: true}
	return c.generation
}

// complete records the outcome of call gen unless a newer call has started.
func (c *Client) complete(gen uint64, data json.RawMessage, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// Stale completion; a newer call owns the state now.
		return
	}
	c.state = State{Data: data, Err: err}
}

// errorMessage extracts the {"error": "..."} message the stack uses for
// failures, falling back to the raw body.
func errorMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(raw)
}
