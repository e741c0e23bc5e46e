package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/claude/pulseplan/internal/planner"
)

// TestSQLiteStoreRoundTrip verifies save-then-load through the SQLite
// backend, including upserting over a previous snapshot row.
func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "pulseplan.db"))
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Save(ctx, planner.DefaultState()); err != nil {
		t.Fatalf("save error: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(got.Workouts) != 3 {
		t.Errorf("workouts = %d, want 3", len(got.Workouts))
	}

	// Saving again must replace, not duplicate, the snapshot row.
	st2 := &planner.State{Workouts: []planner.Workout{{ID: "only", Title: "Only"}}}
	st2.Normalize()
	if err := store.Save(ctx, st2); err != nil {
		t.Fatalf("second save error: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second load error: %v", err)
	}
	if len(got.Workouts) != 1 || got.Workouts[0].ID != "only" {
		t.Errorf("workouts after upsert = %v, want the single replacement", got.Workouts)
	}
}

// TestSQLiteStoreMissing verifies that a fresh database reports ErrNotFound
// until the first save.
func TestSQLiteStoreMissing(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "pulseplan.db"))
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("load of empty db = %v, want ErrNotFound", err)
	}
}

// TestSQLiteStoreReopen verifies the snapshot survives closing and reopening
// the database file.
func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulseplan.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if err := store.Save(ctx, planner.DefaultState()); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("load after reopen error: %v", err)
	}
	if len(got.Workouts) != 3 {
		t.Errorf("workouts after reopen = %d, want 3", len(got.Workouts))
	}
}
