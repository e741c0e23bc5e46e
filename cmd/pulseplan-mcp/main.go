package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/pulseplan/internal/config"
	"github.com/claude/pulseplan/internal/mcp"
	"github.com/claude/pulseplan/internal/planner"
	"github.com/claude/pulseplan/internal/snapshot"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remote := flag.String("remote", "", "base URL of a running PulsePlan server; empty opens the local store directly")
	flag.Parse()

	// Stdio transport owns stdout; all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var ds mcp.DataSource
	if *remote != "" {
		ds = mcp.NewHTTPClient(*remote, cfg.Auth.APIKey)
		log.Info("MCP in remote mode", "server", *remote)
	} else {
		store, closeStore, err := openStore(cfg)
		if err != nil {
			log.Error("failed to open snapshot store", "backend", cfg.Storage.Backend, "error", err)
			os.Exit(1)
		}
		defer closeStore()

		p := planner.New(store, log)
		p.Hydrate(context.Background())
		ds = mcp.Local{Planner: p}
		log.Info("MCP in local mode", "backend", cfg.Storage.Backend)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (planner.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := snapshot.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "postgres":
		s, err := snapshot.NewPostgres(context.Background(), cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return snapshot.NewFileStore(cfg.Storage.Path), func() {}, nil
	}
}
