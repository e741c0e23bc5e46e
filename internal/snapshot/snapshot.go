// Package snapshot persists the planner state as a versioned JSON document.
// Three backends share the same document shape: a plain file (default), a
// local SQLite database, and Postgres.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/pulseplan/internal/planner"
)

// SchemaVersion is written into every saved document. Version 0 (a document
// written before the field existed) decodes identically.
const SchemaVersion = 1

// DefaultKey is the storage key for the single planner snapshot in the
// keyed backends.
const DefaultKey = "pulse-plan-v1"

// ErrNotFound is returned by Load when no snapshot has been saved yet.
// Callers fall back to the default planner state.
var ErrNotFound = errors.New("snapshot not found")

// document is the on-disk shape: the planner state plus a schema version.
type document struct {
	Version  int                                        `json:"version"`
	Workouts []planner.Workout                          `json:"workouts"`
	Schedule map[planner.Day][]planner.ScheduledWorkout `json:"schedule"`
}

// Encode serializes a state into the versioned snapshot document.
func Encode(state *planner.State) ([]byte, error) {
	doc := document{
		Version:  SchemaVersion,
		Workouts: state.Workouts,
		Schedule: state.Schedule,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot document and normalizes the result, so missing
// day keys never leak out of the storage layer. Future schema versions are
// rejected rather than half-read.
func Decode(data []byte) (*planner.State, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if doc.Version > SchemaVersion {
		return nil, fmt.Errorf("snapshot schema version %d is newer than supported %d", doc.Version, SchemaVersion)
	}
	state := &planner.State{Workouts: doc.Workouts, Schedule: doc.Schedule}
	state.Normalize()
	return state, nil
}
