package planner

// Day identifies one of the seven fixed weekday buckets in a schedule.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days returns all seven days in week order. The slice is freshly allocated
// so callers may reorder it.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ValidDay reports whether d is one of the seven fixed day identifiers.
func ValidDay(d Day) bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Focus is the training focus area of an exercise or workout.
type Focus string

const (
	FocusStrength    Focus = "Strength"
	FocusHypertrophy Focus = "Hypertrophy"
	FocusEndurance   Focus = "Endurance"
	FocusMobility    Focus = "Mobility"
	FocusRecovery    Focus = "Recovery"
)

// focusOrder is the declaration order of focus areas. Dominant-focus ties are
// broken by this order so the result is deterministic.
var focusOrder = []Focus{FocusStrength, FocusHypertrophy, FocusEndurance, FocusMobility, FocusRecovery}

// Intensity is the effort level of a workout.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// TimeOfDay tags a scheduled slot with a rough time window.
type TimeOfDay string

const (
	Morning TimeOfDay = "Morning"
	Midday  TimeOfDay = "Midday"
	Evening TimeOfDay = "Evening"
)

// Exercise is one entry in the immutable exercise catalog.
type Exercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Focus          Focus    `json:"focus"`
	Equipment      string   `json:"equipment"`
	PrimaryMuscles []string `json:"primaryMuscles"`
	Description    string   `json:"description"`
}

// WorkoutExercise references a catalog exercise with a free-text prescription.
// The reference is advisory: a dangling exercise id degrades display but is
// never an error.
type WorkoutExercise struct {
	ExerciseID   string `json:"exerciseId"`
	Prescription string `json:"prescription"`
}

// Workout is a named, reusable session template. Workouts are never edited in
// place after creation; the only way to change one is to create a new one.
type Workout struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Focus          Focus             `json:"focus"`
	Intensity      Intensity         `json:"intensity"`
	TrainingEffect string            `json:"trainingEffect"`
	Exercises      []WorkoutExercise `json:"exercises"`
	Notes          string            `json:"notes,omitempty"`
}

// ScheduledWorkout is one slot on a day: a workout reference plus a time tag.
// The workout reference may dangle if the repository is later replaced.
type ScheduledWorkout struct {
	ID        string    `json:"id"`
	WorkoutID string    `json:"workoutId"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	Notes     string    `json:"notes,omitempty"`
}

// State is the aggregate root: the workout repository plus the weekly
// schedule. It is the unit of persistence and of atomic replacement.
//
// Invariant: Schedule always carries exactly the seven day keys, each mapping
// to a (possibly empty) slot list. Normalize enforces this after decoding
// untrusted snapshots.
type State struct {
	Workouts []Workout                  `json:"workouts"`
	Schedule map[Day][]ScheduledWorkout `json:"schedule"`
}

// Normalize repairs a state decoded from an untrusted snapshot: missing day
// keys become empty lists and a missing workout list falls back to the seed
// workouts. It never fails.
func (s *State) Normalize() {
	if s.Workouts == nil {
		s.Workouts = DefaultState().Workouts
	}
	if s.Schedule == nil {
		s.Schedule = make(map[Day][]ScheduledWorkout, 7)
	}
	for _, d := range Days() {
		if _, ok := s.Schedule[d]; !ok {
			s.Schedule[d] = []ScheduledWorkout{}
		}
	}
}

// Clone returns a deep copy of the state so callers can hold it without
// observing later mutations.
func (s *State) Clone() *State {
	out := &State{
		Workouts: make([]Workout, len(s.Workouts)),
		Schedule: make(map[Day][]ScheduledWorkout, len(s.Schedule)),
	}
	for i, w := range s.Workouts {
		cw := w
		cw.Exercises = append([]WorkoutExercise(nil), w.Exercises...)
		out.Workouts[i] = cw
	}
	for d, slots := range s.Schedule {
		out.Schedule[d] = append([]ScheduledWorkout{}, slots...)
	}
	return out
}

// FindWorkout returns the workout with the given id, or false when absent.
func (s *State) FindWorkout(id string) (Workout, bool) {
	for _, w := range s.Workouts {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}
