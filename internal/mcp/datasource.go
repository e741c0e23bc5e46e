package mcp

import (
	"context"

	"github.com/claude/pulseplan/internal/planner"
)

// DataSource abstracts the planner for MCP tools. Satisfied by Local (an
// in-process planner) and by HTTPClient (a remote PulsePlan server reached
// over its REST API, e.g. across a tailnet).
type DataSource interface {
	State(ctx context.Context) (*planner.State, error)
	Summary(ctx context.Context) (planner.Summary, error)
	Catalog(ctx context.Context) ([]planner.Exercise, error)
	CreateWorkout(ctx context.Context, draft planner.WorkoutDraft) (id string, created bool, err error)
	AssignSlot(ctx context.Context, day planner.Day, workoutID string, timeOfDay planner.TimeOfDay, notes string) (slotID string, ok bool, err error)
	RemoveSlot(ctx context.Context, day planner.Day, slotID string) error
}

// Local adapts an in-process planner to the DataSource interface. Planner
// operations cannot fail, so the error returns are always nil.
type Local struct {
	Planner *planner.Planner
}

// Compile-time check: Local satisfies DataSource.
var _ DataSource = Local{}

func (l Local) State(ctx context.Context) (*planner.State, error) {
	return l.Planner.Snapshot(), nil
}

func (l Local) Summary(ctx context.Context) (planner.Summary, error) {
	return l.Planner.Summary(), nil
}

func (l Local) Catalog(ctx context.Context) ([]planner.Exercise, error) {
	return planner.Catalog(), nil
}

func (l Local) CreateWorkout(ctx context.Context, draft planner.WorkoutDraft) (string, bool, error) {
	id, created := l.Planner.CreateWorkout(ctx, draft)
	return id, created, nil
}

func (l Local) AssignSlot(ctx context.Context, day planner.Day, workoutID string, timeOfDay planner.TimeOfDay, notes string) (string, bool, error) {
	id, ok := l.Planner.AssignSlot(ctx, day, workoutID, timeOfDay, notes)
	return id, ok, nil
}

func (l Local) RemoveSlot(ctx context.Context, day planner.Day, slotID string) error {
	l.Planner.RemoveSlot(ctx, day, slotID)
	return nil
}
