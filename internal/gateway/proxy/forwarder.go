// Package proxy performs the outbound leg of a gateway request.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ariel-systems/ariel-bridge/common/middleware"
)

// ErrUpstream wraps transport-level failures toward a bridge service.
var ErrUpstream = errors.New("upstream call failed")

// Result is a completed upstream response, body fully read.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

// Forwarder issues upstream HTTP calls with a bounded timeout. It holds no
// per-request state and is safe for concurrent use.
type Forwarder struct {
	httpClient *http.Client
}

// NewForwarder creates a Forwarder. A timeout of zero or less falls back to
// 10 seconds.
func NewForwarder(timeout time.Duration) *Forwarder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Forwarder{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forward sends one request upstream and reads the full response. The
// upstream status code is returned as-is; only transport failures (connect,
// timeout, torn body) produce an error, wrapped in ErrUpstream. Failed calls
// are never retried.
func (f *Forwarder) Forward(ctx context.Context, method, url string, body io.Reader) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}

	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID := middleware.GetRequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}

	return &Result{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        respBody,
	}, nil
}
