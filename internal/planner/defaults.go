package planner

// DefaultState returns the seed planner state used when no snapshot exists:
// three starter workouts and a pre-filled example week.
func DefaultState() *State {
	return &State{
		Workouts: []Workout{
			{
				ID:             "alpha-strength",
				Title:          "Lower Body Power",
				Focus:          FocusStrength,
				Intensity:      IntensityHigh,
				TrainingEffect: "Explosive strength + posterior-chain activation",
				Exercises: []WorkoutExercise{
					{ExerciseID: "front-squat", Prescription: "5 x 3 @ 80% 1RM"},
					{ExerciseID: "hang-clean", Prescription: "6 x 2 @ 70% 1RM"},
					{ExerciseID: "rdl", Prescription: "4 x 6 controlled eccentric"},
				},
				Notes: "Emphasize bar speed and full recovery between sets.",
			},
			{
				ID:             "engine-builder",
				Title:          "Engine Builder",
				Focus:          FocusEndurance,
				Intensity:      IntensityMedium,
				TrainingEffect: "Conditioning capacity + aerobic base",
				Exercises: []WorkoutExercise{
					{ExerciseID: "assault-bike", Prescription: "6 rounds :30 hard / :60 cruise"},
					{ExerciseID: "tempo-pushup", Prescription: "3 x 12 @ 3-1-1 tempo"},
					{ExerciseID: "copenhagen-plank", Prescription: "3 x :30/side"},
				},
				Notes: "Aim to recover breathing to conversational pace during cruise.",
			},
			{
				ID:             "reset-flow",
				Title:          "Active Recovery Flow",
				Focus:          FocusRecovery,
				Intensity:      IntensityLow,
				TrainingEffect: "Mobility + parasympathetic reset",
				Exercises: []WorkoutExercise{
					{ExerciseID: "90-90-hovers", Prescription: "3 x 5 slow transitions"},
					{ExerciseID: "breathing-reset", Prescription: "5 minutes boxed breathing"},
					{ExerciseID: "single-leg-row", Prescription: "2 x 15 light"},
				},
				Notes: "Keep effort low; finish feeling fresher than you started.",
			},
		},
		Schedule: map[Day][]ScheduledWorkout{
			Monday: {
				{ID: "slot-mon-am", WorkoutID: "alpha-strength", TimeOfDay: Morning, Notes: "Fast carbs pre-lift"},
			},
			Tuesday: {
				{ID: "slot-tue-pm", WorkoutID: "engine-builder", TimeOfDay: Evening, Notes: "Zone 3 cap"},
			},
			Wednesday: {},
			Thursday: {
				{ID: "slot-thu-am", WorkoutID: "alpha-strength", TimeOfDay: Morning, Notes: "Reduce load 10%"},
			},
			Friday: {
				{ID: "slot-fri-lunch", WorkoutID: "engine-builder", TimeOfDay: Midday},
			},
			Saturday: {
				{ID: "slot-sat-am", WorkoutID: "reset-flow", TimeOfDay: Morning, Notes: "Outdoor session"},
			},
			Sunday: {},
		},
	}
}
