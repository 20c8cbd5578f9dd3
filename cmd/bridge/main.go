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
	"github.com/ariel-systems/ariel-bridge/common/messaging"
	natsclient "github.com/ariel-systems/ariel-bridge/common/messaging/nats"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/activity"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/config"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/domain"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/events"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/handlers"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/server"
)

func main() {
	domainName := flag.String("domain", os.Getenv("ARIEL_DOMAIN"), "bridge domain to serve")
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "override listen address")
	flag.Parse()

	if *domainName == "" {
		log.Fatalf("no domain specified (use -domain or ARIEL_DOMAIN, known: %v)", domain.Names())
	}
	provider, ok := domain.Lookup(*domainName)
	if !ok {
		log.Fatalf("unknown domain %q (known: %v)", *domainName, domain.Names())
	}

	cfg, err := config.Load(*configPath, provider.DefaultPort())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("bridge"), logging.Domain(provider.Name()))
	logging.SetDefault(logger)

	slog.Info("Starting bridge service",
		slog.Int("port", cfg.Server.Port),
		slog.Int("activity_capacity", cfg.Activity.Capacity),
	)

	// Optional broker connection; the bridge works without it.
	var broker messaging.Client
	if cfg.NATS.Enabled {
		natsCfg := natsclient.Config{
			URL:           cfg.NATS.URL,
			Name:          fmt.Sprintf("ariel-bridge-%s", provider.Name()),
			MaxReconnects: cfg.NATS.MaxReconnects,
			ReconnectWait: cfg.NATS.ReconnectWaitDuration(),
			Timeout:       5 * time.Second,
		}
		client, err := natsclient.NewClient(natsCfg)
		if err != nil {
			slog.Warn("Failed to connect to NATS (continuing without broadcast)",
				slog.String("url", cfg.NATS.URL),
				slog.String("error", err.Error()),
			)
		} else {
			slog.Info("Connected to NATS", slog.String("url", cfg.NATS.URL))
			broker = client
			defer client.Close()
		}
	}

	activityLog := activity.NewLog(cfg.Activity.Capacity)
	publisher := events.NewPublisher(broker, provider.Name(), logger)
	h := handlers.New(provider, activityLog, publisher, logger)

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      server.NewRouter(provider.Name(), h),
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
	slog.Info("Shutting down bridge service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", slog.String("error", err.Error()))
	}
}
