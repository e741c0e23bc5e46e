package planner

// exerciseLibrary is the fixed catalog of exercises available when composing
// workouts. Defined once at startup and never mutated.
var exerciseLibrary = []Exercise{
	{
		ID:             "front-squat",
		Name:           "Front Squat",
		Focus:          FocusStrength,
		Equipment:      "Barbell",
		PrimaryMuscles: []string{"Quads", "Core"},
		Description:    "Upright squat variation that targets quads and reinforces core tension.",
	},
	{
		ID:             "rdl",
		Name:           "Romanian Deadlift",
		Focus:          FocusHypertrophy,
		Equipment:      "Barbell",
		PrimaryMuscles: []string{"Hamstrings", "Glutes"},
		Description:    "Posterior-chain hinge emphasizing eccentric control and hamstring tension.",
	},
	{
		ID:             "tempo-pushup",
		Name:           "Tempo Push-Up",
		Focus:          FocusEndurance,
		Equipment:      "Bodyweight",
		PrimaryMuscles: []string{"Chest", "Shoulders", "Triceps"},
		Description:    "Push-up variation performed with slow tempo to increase time under tension.",
	},
	{
		ID:             "hang-clean",
		Name:           "Hang Power Clean",
		Focus:          FocusStrength,
		Equipment:      "Barbell",
		PrimaryMuscles: []string{"Posterior Chain", "Upper Back"},
		Description:    "Explosive pull from the hang position to develop power and coordination.",
	},
	{
		ID:             "assault-bike",
		Name:           "Assault Bike Intervals",
		Focus:          FocusEndurance,
		Equipment:      "Air Bike",
		PrimaryMuscles: []string{"Full Body"},
		Description:    "Alternating sprint and recovery intervals to elevate VO₂ max.",
	},
	{
		ID:             "copenhagen-plank",
		Name:           "Copenhagen Plank",
		Focus:          FocusMobility,
		Equipment:      "Bodyweight",
		PrimaryMuscles: []string{"Adductors", "Core"},
		Description:    "Side plank variation targeting adductors and lateral core stability.",
	},
	{
		ID:             "landmine-press",
		Name:           "Landmine Press",
		Focus:          FocusStrength,
		Equipment:      "Barbell",
		PrimaryMuscles: []string{"Shoulders", "Core"},
		Description:    "Angled press to train scapular stability and unilateral strength.",
	},
	{
		ID:             "single-leg-row",
		Name:           "Single-Leg Dumbbell Row",
		Focus:          FocusHypertrophy,
		Equipment:      "Dumbbell",
		PrimaryMuscles: []string{"Lats", "Glutes"},
		Description:    "Row variation pairing balance demand with upper-back hypertrophy focus.",
	},
	{
		ID:             "90-90-hovers",
		Name:           "90/90 Hip Hovers",
		Focus:          FocusMobility,
		Equipment:      "Bodyweight",
		PrimaryMuscles: []string{"Hips"},
		Description:    "Controlled rotation drill to unlock hip external/internal rotation.",
	},
	{
		ID:             "breathing-reset",
		Name:           "Parasympathetic Breathing Reset",
		Focus:          FocusRecovery,
		Equipment:      "None",
		PrimaryMuscles: []string{"Diaphragm"},
		Description:    "Guided breath sequence to down-regulate and accelerate recovery.",
	},
}

// Catalog returns the full exercise library in declaration order. The slice
// is a copy; the library itself is never exposed for mutation.
func Catalog() []Exercise {
	return append([]Exercise(nil), exerciseLibrary...)
}

// LookupExercise returns the catalog exercise with the given id. Absent ids
// are not an error: callers render a placeholder instead.
func LookupExercise(id string) (Exercise, bool) {
	for _, ex := range exerciseLibrary {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
