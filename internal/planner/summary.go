package planner

// DominantFocusBalanced is the sentinel dominant focus reported when no
// scheduled slot resolves to a workout.
const DominantFocusBalanced = "Balanced"

// Summary holds the derived weekly statistics.
type Summary struct {
	TotalSessions    int               `json:"totalSessions"`
	IntensityBuckets map[Intensity]int `json:"intensityBuckets"`
	DominantFocus    string            `json:"dominantFocus"`
	RecoveryDays     int               `json:"recoveryDays"`
}

// Summarize computes the weekly statistics for the given workouts and
// schedule. It is a pure function: no side effects, total over any normalized
// state. Slots whose workout id does not resolve are silently excluded from
// the intensity and focus counts (they still count toward total sessions).
func Summarize(workouts []Workout, schedule map[Day][]ScheduledWorkout) Summary {
	byID := make(map[string]Workout, len(workouts))
	for _, w := range workouts {
		byID[w.ID] = w
	}

	intensity := map[Intensity]int{
		IntensityLow:    0,
		IntensityMedium: 0,
		IntensityHigh:   0,
	}
	focus := make(map[Focus]int)

	total := 0
	recovery := 0
	for _, day := range Days() {
		slots := schedule[day]
		total += len(slots)
		if len(slots) == 0 {
			recovery++
		}
		for _, slot := range slots {
			w, ok := byID[slot.WorkoutID]
			if !ok {
				continue
			}
			intensity[w.Intensity]++
			focus[w.Focus]++
		}
	}

	return Summary{
		TotalSessions:    total,
		IntensityBuckets: intensity,
		DominantFocus:    dominantFocus(focus),
		RecoveryDays:     recovery,
	}
}

// dominantFocus picks the focus with the strictly highest count. Ties are
// broken by focus declaration order; an empty count map yields the Balanced
// sentinel.
func dominantFocus(counts map[Focus]int) string {
	best := ""
	bestCount := 0
	for _, f := range focusOrder {
		if c := counts[f]; c > bestCount {
			best = string(f)
			bestCount = c
		}
	}
	if best == "" {
		return DominantFocusBalanced
	}
	return best
}
