// Package handlers exposes the HTTP endpoints of a bridge service:
// metrics, optimize and activities for one domain.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ariel-systems/ariel-bridge/common/httputil"
	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/activity"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/domain"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/events"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/metrics"
)

// OptimizeResponse acknowledges an optimization trigger.
type OptimizeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler serves one bridge domain. It owns the activity log for the
// lifetime of the process.
type Handler struct {
	provider  domain.Provider
	log       *activity.Log
	publisher *events.Publisher
	logger    *logging.Logger
}

// New builds a Handler. publisher may be nil when broadcasting is disabled.
func New(provider domain.Provider, log *activity.Log, publisher *events.Publisher, logger *logging.Logger) *Handler {
	return &Handler{
		provider:  provider,
		log:       log,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterRoutes wires the domain-prefixed endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	name := h.provider.Name()
	mux.HandleFunc(fmt.Sprintf("GET /%s/metrics", name), h.Metrics)
	mux.HandleFunc(fmt.Sprintf("POST /%s/optimize", name), h.Optimize)
	mux.HandleFunc(fmt.Sprintf("GET /%s/activities", name), h.Activities)
}

// Metrics computes a fresh snapshot for the domain and records the serve in
// the activity log. It always succeeds.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	metrics.RequestsTotal.WithLabelValues(name, "metrics").Inc()

	snapshot := h.provider.Snapshot()
	snapshot["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	h.record(r, activity.TypeMetricsServed, nil)

	httputil.WriteJSON(w, http.StatusOK, snapshot)
}

// Optimize accepts an arbitrary JSON body and records it as the payload of
// an optimize-triggered activity. It always succeeds; an unreadable body is
// recorded as an empty payload.
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	metrics.RequestsTotal.WithLabelValues(name, "optimize").Inc()

	payload := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		payload = map[string]any{}
	}

	h.record(r, activity.TypeOptimizeTriggered, payload)

	httputil.WriteJSON(w, http.StatusOK, OptimizeResponse{
		Success: true,
		Message: h.provider.OptimizeMessage(),
	})
}

// Activities returns the activity log, newest first. An optional limit query
// parameter caps the number of records returned.
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	metrics.RequestsTotal.WithLabelValues(name, "activities").Inc()

	limit := httputil.ParseIntParam(r.URL.Query().Get("limit"), 0)
	httputil.WriteJSON(w, http.StatusOK, h.log.Recent(limit))
}

// record appends to the activity log, updates counters and broadcasts the
// new record.
func (h *Handler) record(r *http.Request, recordType string, payload map[string]any) {
	name := h.provider.Name()

	rec, evicted := h.log.Append(recordType, payload)
	metrics.ActivitiesLogged.WithLabelValues(name, recordType).Inc()
	if evicted {
		metrics.ActivitiesEvicted.WithLabelValues(name).Inc()
	}
	metrics.ActivityLogDepth.WithLabelValues(name).Set(float64(h.log.Len()))

	h.publisher.Publish(r.Context(), rec)

	h.logger.DebugContext(r.Context(), "Activity recorded",
		logging.Domain(name),
		logging.ActivityType(recordType),
	)
}
