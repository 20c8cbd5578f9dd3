package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ariel-systems/ariel-bridge/common/middleware"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/handlers"
)

// NewRouter constructs a ServeMux with the gateway routes registered.
func NewRouter(universal *handlers.UniversalHandler) http.Handler {
	mux := http.NewServeMux()

	// Universal forwarding endpoint
	mux.HandleFunc("GET /api/universal", universal.Handle)
	mux.HandleFunc("POST /api/universal", universal.Handle)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok","service":"gateway"}`)
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	cors := middleware.CORS(middleware.DefaultCORSConfig())
	return middleware.RequestID(cors(mux))
}
