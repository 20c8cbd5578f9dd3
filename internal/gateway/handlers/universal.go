// Package handlers exposes the gateway's universal forwarding endpoint.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ariel-systems/ariel-bridge/common/httputil"
	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/metrics"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/proxy"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/routes"
)

// UniversalHandler maps a target query parameter to an upstream bridge call
// and relays the response. It is stateless between requests.
type UniversalHandler struct {
	table     *routes.Table
	forwarder *proxy.Forwarder
	logger    *logging.Logger
}

// NewUniversalHandler builds a UniversalHandler.
func NewUniversalHandler(table *routes.Table, forwarder *proxy.Forwarder, logger *logging.Logger) *UniversalHandler {
	return &UniversalHandler{
		table:     table,
		forwarder: forwarder,
		logger:    logger,
	}
}

// Handle validates the target, forwards the request and relays the upstream
// response. Validation failures answer 400 before any outbound call;
// transport failures answer 502. Upstream status codes pass through
// unchanged.
func (h *UniversalHandler) Handle(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")

	upstreamURL, route, err := h.table.Resolve(target)
	if err != nil {
		metrics.ValidationRejects.Inc()
		if errors.Is(err, routes.ErrEmptyTarget) {
			httputil.WriteError(w, http.StatusBadRequest, "No target specified")
			return
		}
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result, err := h.forwarder.Forward(r.Context(), r.Method, upstreamURL, r.Body)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(route).Inc()
		h.logger.ErrorContext(r.Context(), "Upstream call failed",
			logging.Route(route),
			logging.Target(target),
			logging.Error(err),
		)
		httputil.WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	metrics.ForwardedTotal.WithLabelValues(route, strconv.Itoa(result.Status)).Inc()
	h.logger.InfoContext(r.Context(), "Forwarded request",
		logging.Method(r.Method),
		logging.Route(route),
		logging.Target(target),
		logging.Status(result.Status),
		logging.Duration(time.Since(start).Milliseconds()),
	)

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(result.Status)
	_, _ = w.Write(result.Body)
}
