// pulseplan-import loads a raw snapshot JSON file (for example one exported
// from another PulsePlan instance) into the configured store, normalizing the
// shape first so partial documents come out whole.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/pulseplan/internal/config"
	"github.com/claude/pulseplan/internal/planner"
	"github.com/claude/pulseplan/internal/snapshot"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to snapshot JSON file (required)")
	dryRun := flag.Bool("dry-run", false, "report what would be written without saving")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: pulseplan-import -config config.yaml -file snapshot.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Error("failed to read snapshot file", "path", *filePath, "error", err)
		os.Exit(1)
	}

	state, err := snapshot.Decode(data)
	if err != nil {
		log.Error("snapshot file is not parsable", "path", *filePath, "error", err)
		os.Exit(1)
	}

	slots := 0
	for _, day := range planner.Days() {
		slots += len(state.Schedule[day])
	}
	summary := planner.Summarize(state.Workouts, state.Schedule)
	log.Info("snapshot parsed",
		"workouts", len(state.Workouts),
		"slots", slots,
		"recovery_days", summary.RecoveryDays,
		"dominant_focus", summary.DominantFocus,
	)

	if *dryRun {
		log.Info("DRY RUN mode — nothing written to the store")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open snapshot store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := store.Save(ctx, state); err != nil {
		log.Error("failed to save snapshot", "error", err)
		os.Exit(1)
	}
	log.Info("snapshot imported", "backend", cfg.Storage.Backend)
}

func openStore(ctx context.Context, cfg *config.Config) (planner.Store, func(), error) {
	switch cfg.Storage.Backend {
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
		s, err := snapshot.NewPostgres(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return snapshot.NewFileStore(cfg.Storage.Path), func() {}, nil
	}
}
