package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/config"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/handlers"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/proxy"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/routes"
	"github.com/ariel-systems/ariel-bridge/internal/gateway/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "override listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("gateway"))
	logging.SetDefault(logger)

	table := routes.NewTable(cfg.Upstream.BackendURL, cfg.Upstream.Routes)
	forwarder := proxy.NewForwarder(cfg.Upstream.Timeout())
	universal := handlers.NewUniversalHandler(table, forwarder, logger)

	slog.Info("Starting gateway",
		slog.Int("port", cfg.Server.Port),
		slog.String("backend_url", cfg.Upstream.BackendURL),
		slog.Any("routes", table.Routes()),
	)

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      server.NewRouter(universal),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gateway")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", slog.String("error", err.Error()))
	}
}
