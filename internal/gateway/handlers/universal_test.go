package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/proxy"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/routes"
)

func newTestHandler(backendURL string) *UniversalHandler {
	table := routes.NewTable(backendURL, map[string]string{
		"neural":    "",
		"affiliate": "",
	})
	return NewUniversalHandler(table, proxy.NewForwarder(5*time.Second), logging.Default())
}

func TestHandle_ForwardsGetVerbatim(t *testing.T) {
	var calls int
	var receivedPath string

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		receivedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trend":"upward","confidence":0.91}`))
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	req := httptest.NewRequest("GET", "/api/universal?target=neural/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if calls != 1 {
		t.Fatalf("expected exactly one outbound call, got %d", calls)
	}
	if receivedPath != "/neural/metrics" {
		t.Errorf("expected upstream path /neural/metrics, got %q", receivedPath)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != `{"trend":"upward","confidence":0.91}` {
		t.Errorf("body not relayed verbatim: %q", body)
	}
}

func TestHandle_MissingTarget(t *testing.T) {
	var calls int
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	for _, url := range []string{"/api/universal", "/api/universal?target="} {
		req := httptest.NewRequest("GET", url, nil)
		rr := httptest.NewRecorder()
		h.Handle(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", url, rr.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: invalid error body: %v", url, err)
		}
		if resp["error"] != "No target specified" {
			t.Errorf("%s: unexpected error message %q", url, resp["error"])
		}
	}

	if calls != 0 {
		t.Errorf("validation failures must not reach upstream, got %d calls", calls)
	}
}

func TestHandle_UnknownRouteRejected(t *testing.T) {
	var calls int
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	req := httptest.NewRequest("GET", "/api/universal?target=quantum/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
	if calls != 0 {
		t.Errorf("unknown routes must not reach upstream, got %d calls", calls)
	}
}

func TestHandle_ForwardsPostBody(t *testing.T) {
	var receivedMethod, receivedBody, receivedContentType string

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	req := httptest.NewRequest("POST", "/api/universal?target=affiliate/optimize", strings.NewReader(`{"campaign":"X"}`))
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if receivedMethod != "POST" {
		t.Errorf("expected POST upstream, got %s", receivedMethod)
	}
	if receivedBody != `{"campaign":"X"}` {
		t.Errorf("body not forwarded raw: %q", receivedBody)
	}
	if receivedContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", receivedContentType)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestHandle_PropagatesUpstreamStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	req := httptest.NewRequest("GET", "/api/universal?target=neural/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("upstream status must pass through, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != `{"error":"boom"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestHandle_UpstreamUnreachable(t *testing.T) {
	h := newTestHandler("http://127.0.0.1:1")

	req := httptest.NewRequest("GET", "/api/universal?target=neural/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected a populated error message")
	}
}

func TestHandle_DefaultsContentTypeToJSON(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No explicit Content-Type; httptest will sniff, so strip it.
		w.Header()["Content-Type"] = nil
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	h := newTestHandler(backend.URL)

	req := httptest.NewRequest("GET", "/api/universal?target=neural/metrics", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected application/json, got %q", ct)
	}
}
