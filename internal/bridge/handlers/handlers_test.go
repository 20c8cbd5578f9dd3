package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/activity"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/domain"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/events"
)

func newTestHandler(t *testing.T, domainName string) (*Handler, *activity.Log, *http.ServeMux) {
	t.Helper()

	provider, ok := domain.Lookup(domainName)
	require.True(t, ok, "domain %s must be registered", domainName)

	log := activity.NewLog(20)
	publisher := events.NewPublisher(nil, domainName, logging.Default())
	h := New(provider, log, publisher, logging.Default())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return h, log, mux
}

func TestMetrics_ReturnsSnapshotWithTimestamp(t *testing.T) {
	_, _, mux := newTestHandler(t, "neural")

	req := httptest.NewRequest("GET", "/neural/metrics", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snapshot))
	assert.Contains(t, snapshot, "timestamp")
	assert.Contains(t, snapshot, "trend")
	assert.Contains(t, snapshot, "confidence")
}

func TestMetrics_AppendsActivityRecord(t *testing.T) {
	_, log, mux := newTestHandler(t, "neural")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	records := log.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, activity.TypeMetricsServed, records[0].Type)
	assert.Nil(t, records[0].Payload)
}

func TestMetrics_LogBoundedAtCapacity(t *testing.T) {
	_, log, mux := newTestHandler(t, "neural")

	// 25 metrics serves against capacity 20.
	for i := 0; i < 25; i++ {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/activities", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []activity.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	assert.Len(t, records, 20)
	assert.Equal(t, uint64(5), log.Evicted())
}

func TestOptimize_RecordsPayload(t *testing.T) {
	_, log, mux := newTestHandler(t, "neural")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/neural/optimize", strings.NewReader(`{"foo":1}`))
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp OptimizeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	records := log.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, activity.TypeOptimizeTriggered, records[0].Type)
	assert.Equal(t, map[string]any{"foo": float64(1)}, records[0].Payload)
}

func TestOptimize_EmptyBody(t *testing.T) {
	_, log, mux := newTestHandler(t, "neural")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("POST", "/neural/optimize", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	records := log.Recent(0)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{}, records[0].Payload)
}

func TestActivities_NewestFirstWithLimit(t *testing.T) {
	_, _, mux := newTestHandler(t, "neural")

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/metrics", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("POST", "/neural/optimize", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/activities?limit=2", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []activity.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, activity.TypeOptimizeTriggered, records[0].Type)
	assert.Equal(t, activity.TypeMetricsServed, records[1].Type)
}

// Mirrors the affiliate flow end to end: trigger an optimization, then read
// the feed and find it at the head.
func TestAffiliate_OptimizeThenActivities(t *testing.T) {
	_, _, mux := newTestHandler(t, "affiliate")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/affiliate/optimize", strings.NewReader(`{"campaign":"X"}`))
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/affiliate/activities", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []activity.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.NotEmpty(t, records)
	assert.Equal(t, activity.TypeOptimizeTriggered, records[0].Type)
	assert.Equal(t, "X", records[0].Payload["campaign"])
}

func TestRoutes_WrongMethodRejected(t *testing.T) {
	_, _, mux := newTestHandler(t, "neural")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("POST", "/neural/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/neural/optimize", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
