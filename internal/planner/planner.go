package planner

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store persists planner snapshots. Implemented by the backends in
// internal/snapshot.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// ExerciseSelection is one picked exercise in a workout draft. Drafts carry
// an ordered slice rather than a map so the order exercises were selected in
// survives into the created workout.
type ExerciseSelection struct {
	ExerciseID   string `json:"exerciseId"`
	Prescription string `json:"prescription"`
}

// WorkoutDraft is the input to CreateWorkout.
type WorkoutDraft struct {
	Title          string              `json:"title"`
	Focus          Focus               `json:"focus"`
	Intensity      Intensity           `json:"intensity"`
	TrainingEffect string              `json:"trainingEffect"`
	Selection      []ExerciseSelection `json:"exercises"`
	Notes          string              `json:"notes"`
}

// Planner owns the authoritative in-memory state and applies mutations to it.
// Mutations replace the state value wholesale (copy-on-write), so a state
// returned by Snapshot is never modified afterwards. Every committed mutation
// is written through to the store; a failed save is logged and the in-memory
// state stays authoritative.
type Planner struct {
	mu    sync.Mutex
	state *State
	store Store
	log   *slog.Logger

	// NewID generates unique ids for workouts and slots. Overridable in tests.
	NewID func() string
}

// New creates a Planner starting from the default seed state. Call Hydrate to
// load a persisted snapshot. store may be nil for a purely in-memory planner.
func New(store Store, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{
		state: DefaultState(),
		store: store,
		log:   log,
		NewID: uuid.NewString,
	}
}

// Hydrate replaces the state with the persisted snapshot. A missing or
// unreadable snapshot is not an error: the planner falls back to the default
// state. The loaded state is normalized so all seven day keys exist.
func (p *Planner) Hydrate(ctx context.Context) {
	if p.store == nil {
		return
	}
	state, err := p.store.Load(ctx)
	if err != nil {
		p.log.Info("no usable snapshot, starting from defaults", "reason", err)
		state = DefaultState()
	}
	state.Normalize()

	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (p *Planner) Snapshot() *State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Clone()
}

// Summary computes the weekly statistics over the current state.
func (p *Planner) Summary() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Summarize(p.state.Workouts, p.state.Schedule)
}

// CreateWorkout builds a workout from the draft and appends it to the
// repository. A draft with a blank title (after trimming) or an empty
// exercise selection is silently declined: the state is left unchanged and
// created is false. The schedule is never touched.
//
// The returned id lets callers immediately point an assignment picker at the
// new workout.
func (p *Planner) CreateWorkout(ctx context.Context, draft WorkoutDraft) (id string, created bool) {
	title := strings.TrimSpace(draft.Title)
	if title == "" || len(draft.Selection) == 0 {
		return "", false
	}

	effect := draft.TrainingEffect
	if effect == "" {
		effect = string(draft.Focus) + " development"
	}
	exercises := make([]WorkoutExercise, len(draft.Selection))
	for i, sel := range draft.Selection {
		exercises[i] = WorkoutExercise{ExerciseID: sel.ExerciseID, Prescription: sel.Prescription}
	}

	w := Workout{
		ID:             p.NewID(),
		Title:          title,
		Focus:          draft.Focus,
		Intensity:      draft.Intensity,
		TrainingEffect: effect,
		Exercises:      exercises,
		Notes:          strings.TrimSpace(draft.Notes),
	}

	p.mu.Lock()
	next := &State{
		Workouts: append(append([]Workout{}, p.state.Workouts...), w),
		Schedule: p.state.Schedule,
	}
	p.state = next
	p.mu.Unlock()

	p.save(ctx)
	return w.ID, true
}

// AssignSlot appends a new slot for workoutID to the end of day's list. An
// empty workout id or an unknown day is silently declined. No existence check
// is made against the repository: a dangling reference degrades gracefully
// everywhere it is read. Duplicates within a day are allowed and there is no
// per-day cap.
func (p *Planner) AssignSlot(ctx context.Context, day Day, workoutID string, timeOfDay TimeOfDay, notes string) (slotID string, ok bool) {
	if workoutID == "" || !ValidDay(day) {
		return "", false
	}

	slot := ScheduledWorkout{
		ID:        p.NewID(),
		WorkoutID: workoutID,
		TimeOfDay: timeOfDay,
		Notes:     strings.TrimSpace(notes),
	}

	p.mu.Lock()
	p.state = p.state.withDay(day, append(append([]ScheduledWorkout{}, p.state.Schedule[day]...), slot))
	p.mu.Unlock()

	p.save(ctx)
	return slot.ID, true
}

// RemoveSlot deletes the slot with the given id from day's list. A missing
// slot id or unknown day is a no-op, not an error.
func (p *Planner) RemoveSlot(ctx context.Context, day Day, slotID string) {
	if !ValidDay(day) {
		return
	}

	p.mu.Lock()
	slots := p.state.Schedule[day]
	filtered := make([]ScheduledWorkout, 0, len(slots))
	for _, s := range slots {
		if s.ID != slotID {
			filtered = append(filtered, s)
		}
	}
	changed := len(filtered) != len(slots)
	if changed {
		p.state = p.state.withDay(day, filtered)
	}
	p.mu.Unlock()

	if changed {
		p.save(ctx)
	}
}

// withDay returns a new state sharing all slot lists except day, which is
// replaced by slots. Other days and the workout list are reused as-is; they
// are never mutated in place.
func (s *State) withDay(day Day, slots []ScheduledWorkout) *State {
	schedule := make(map[Day][]ScheduledWorkout, len(s.Schedule))
	for d, v := range s.Schedule {
		schedule[d] = v
	}
	schedule[day] = slots
	return &State{Workouts: s.Workouts, Schedule: schedule}
}

// save writes the current state through to the store. Failures never roll
// back the in-memory mutation; they are reported and the next successful save
// catches up.
func (p *Planner) save(ctx context.Context) {
	if p.store == nil {
		return
	}
	state := p.Snapshot()
	if err := p.store.Save(ctx, state); err != nil {
		p.log.Warn("snapshot save failed, in-memory state remains authoritative", "error", err)
	}
}
