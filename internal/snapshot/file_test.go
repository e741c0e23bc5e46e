package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/claude/pulseplan/internal/planner"
)

// TestFileStoreRoundTrip verifies save-then-load through a real file,
// including overwriting a previous snapshot.
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "pulseplan.json")
	store := NewFileStore(path)
	ctx := context.Background()

	st := planner.DefaultState()
	if err := store.Save(ctx, st); err != nil {
		t.Fatalf("save error: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(got.Workouts) != 3 {
		t.Errorf("workouts = %d, want 3", len(got.Workouts))
	}

	// Overwrite with a smaller state; the old content must be fully replaced.
	st2 := &planner.State{}
	st2.Normalize()
	st2.Workouts = []planner.Workout{}
	if err := store.Save(ctx, st2); err != nil {
		t.Fatalf("second save error: %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second load error: %v", err)
	}
	if len(got.Workouts) != 0 {
		t.Errorf("workouts after overwrite = %d, want 0", len(got.Workouts))
	}
}

// TestFileStoreMissing verifies that loading before any save reports
// ErrNotFound, the signal to fall back to defaults.
func TestFileStoreMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("load of missing file = %v, want ErrNotFound", err)
	}
}

// TestFileStoreCorrupt verifies that a torn or hand-edited file surfaces a
// decode error rather than a panic or a half-read state.
func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulseplan.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error for corrupt snapshot file")
	}
}

// TestFileStoreNoTempLeftovers verifies that successful saves do not leave
// temp files behind in the snapshot directory.
func TestFileStoreNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "pulseplan.json"))

	if err := store.Save(context.Background(), planner.DefaultState()); err != nil {
		t.Fatalf("save error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "pulseplan.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("snapshot dir contains %v, want only pulseplan.json", names)
	}
}
