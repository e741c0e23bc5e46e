package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/pulseplan/internal/config"
	"github.com/claude/pulseplan/internal/planner"
	"github.com/claude/pulseplan/internal/server"
	"github.com/claude/pulseplan/internal/snapshot"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("PulsePlan starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open snapshot store
	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Error("failed to open snapshot store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	log.Info("snapshot store ready", "backend", cfg.Storage.Backend)

	// Hydrate planner (falls back to seeded defaults when no snapshot exists)
	ctx := context.Background()
	p := planner.New(store, log)
	p.Hydrate(ctx)
	log.Info("planner hydrated", "workouts", len(p.Snapshot().Workouts), "sessions", p.Summary().TotalSessions)

	// Create server
	srv := server.New(p, cfg.Auth.APIKey, log)
	if cfg.Auth.APIKey == "" {
		log.Warn("no API key configured, mutation endpoints are unauthenticated")
	}

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "plain HTTP (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// openStore builds the snapshot store selected by config. The returned func
// releases any held resources.
func openStore(cfg *config.Config) (planner.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "file":
		return snapshot.NewFileStore(cfg.Storage.Path), func() {}, nil
	case "sqlite":
		s, err := snapshot.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "postgres":
		if err := snapshot.RunMigrations(cfg.Storage.DSN, "migrations"); err != nil {
			return nil, nil, err
		}
		s, err := snapshot.NewPostgres(context.Background(), cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
