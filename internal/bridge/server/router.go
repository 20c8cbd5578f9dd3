package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ariel-systems/ariel-bridge/common/middleware"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/handlers"
)

// NewRouter constructs a ServeMux with the bridge routes registered.
// Domain endpoints are prefixed with the domain name, matching the path the
// gateway forwards (e.g. /affiliate/metrics). Prometheus metrics live at the
// unprefixed /metrics.
func NewRouter(domain string, h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()

	h.RegisterRoutes(mux)

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok","service":"bridge","domain":%q}`, domain)
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.RequestID(mux)
}
