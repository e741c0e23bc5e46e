package mcp

import (
	"context"
	"strings"

	"github.com/claude/pulseplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseSelection parses an exercise selection string of the form
// "id=prescription; id=prescription". Order is preserved. An entry without a
// prescription gets the builder default "3 x 12".
func parseSelection(s string) []planner.ExerciseSelection {
	var selection []planner.ExerciseSelection
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, prescription, found := strings.Cut(entry, "=")
		id = strings.TrimSpace(id)
		prescription = strings.TrimSpace(prescription)
		if !found || prescription == "" {
			prescription = "3 x 12"
		}
		if id == "" {
			continue
		}
		selection = append(selection, planner.ExerciseSelection{
			ExerciseID:   id,
			Prescription: prescription,
		})
	}
	return selection
}

// --- Tool definitions ---

var toolGetWeekSummary = mcp.NewTool("get_week_summary",
	mcp.WithDescription("Get the weekly statistics: total scheduled sessions, intensity distribution (Low/Medium/High), dominant focus area, and recovery day count."),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List all workout templates with their focus, intensity, training effect, and exercises."),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get a single workout template by id, with each exercise resolved against the catalog where possible."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id")),
)

var toolListSchedule = mcp.NewTool("list_schedule",
	mcp.WithDescription("List scheduled sessions. Returns the whole week, or a single day when the day parameter is given."),
	mcp.WithString("day", mcp.Description("Day of the week"), mcp.Enum("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog: id, name, focus area, equipment, and primary muscles."),
)

var toolCreateWorkout = mcp.NewTool("create_workout",
	mcp.WithDescription("Create a new workout template. Declined (without error) when the title is blank or no exercises are selected."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Workout title")),
	mcp.WithString("focus", mcp.Required(), mcp.Description("Focus area"), mcp.Enum("Strength", "Hypertrophy", "Endurance", "Mobility", "Recovery")),
	mcp.WithString("intensity", mcp.Required(), mcp.Description("Intensity level"), mcp.Enum("Low", "Medium", "High")),
	mcp.WithString("exercises", mcp.Required(), mcp.Description("Semicolon-separated selection, e.g. 'front-squat=5 x 3; rdl=4 x 6'. Use list_exercises for valid ids.")),
	mcp.WithString("training_effect", mcp.Description("Intended training effect. Defaults to '<focus> development'.")),
	mcp.WithString("notes", mcp.Description("Optional session notes")),
)

var toolAssignWorkout = mcp.NewTool("assign_workout",
	mcp.WithDescription("Schedule a workout on a day. Duplicates are allowed; there is no per-day limit."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day of the week"), mcp.Enum("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")),
	mcp.WithString("workout_id", mcp.Required(), mcp.Description("Workout id to schedule")),
	mcp.WithString("time_of_day", mcp.Description("Time window. Defaults to Morning."), mcp.Enum("Morning", "Midday", "Evening")),
	mcp.WithString("notes", mcp.Description("Optional slot notes")),
)

var toolRemoveSlot = mcp.NewTool("remove_slot",
	mcp.WithDescription("Remove a scheduled session from a day by slot id. Removing an absent slot is a no-op."),
	mcp.WithString("day", mcp.Required(), mcp.Description("Day of the week"), mcp.Enum("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")),
	mcp.WithString("slot_id", mcp.Required(), mcp.Description("Slot id, as returned by assign_workout or list_schedule")),
)

// --- Tool handlers ---

func (h *handlers) getWeekSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.ds.Summary(ctx)
	if err != nil {
		h.log.Error("mcp get_week_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.ds.State(ctx)
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(state.Workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// workoutDetail is a workout with catalog data joined onto each exercise.
type workoutDetail struct {
	planner.Workout
	Resolved []resolvedExercise `json:"resolvedExercises"`
}

type resolvedExercise struct {
	ExerciseID   string `json:"exerciseId"`
	Name         string `json:"name"`
	Prescription string `json:"prescription"`
	Known        bool   `json:"known"`
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	state, err := h.ds.State(ctx)
	if err != nil {
		h.log.Error("mcp get_workout", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	w, found := state.FindWorkout(id)
	if !found {
		return mcp.NewToolResultError("no workout with id " + id), nil
	}

	detail := workoutDetail{Workout: w, Resolved: make([]resolvedExercise, len(w.Exercises))}
	for i, we := range w.Exercises {
		re := resolvedExercise{ExerciseID: we.ExerciseID, Prescription: we.Prescription, Name: "Exercise"}
		if ex, ok := planner.LookupExercise(we.ExerciseID); ok {
			re.Name = ex.Name
			re.Known = true
		}
		detail.Resolved[i] = re
	}

	result, err := mcp.NewToolResultJSON(detail)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := h.ds.State(ctx)
	if err != nil {
		h.log.Error("mcp list_schedule", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if dayStr := req.GetString("day", ""); dayStr != "" {
		day := planner.Day(dayStr)
		if !planner.ValidDay(day) {
			return mcp.NewToolResultError("unknown day: " + dayStr), nil
		}
		result, err := mcp.NewToolResultJSON(state.Schedule[day])
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	result, err := mcp.NewToolResultJSON(state.Schedule)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := h.ds.Catalog(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(catalog)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) createWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	focus, err := req.RequireString("focus")
	if err != nil {
		return mcp.NewToolResultError("focus parameter is required"), nil
	}
	intensity, err := req.RequireString("intensity")
	if err != nil {
		return mcp.NewToolResultError("intensity parameter is required"), nil
	}
	exercises, err := req.RequireString("exercises")
	if err != nil {
		return mcp.NewToolResultError("exercises parameter is required"), nil
	}

	draft := planner.WorkoutDraft{
		Title:          title,
		Focus:          planner.Focus(focus),
		Intensity:      planner.Intensity(intensity),
		TrainingEffect: req.GetString("training_effect", ""),
		Selection:      parseSelection(exercises),
		Notes:          req.GetString("notes", ""),
	}

	id, created, err := h.ds.CreateWorkout(ctx, draft)
	if err != nil {
		h.log.Error("mcp create_workout", "error", err)
		return mcp.NewToolResultError("create failed: " + err.Error()), nil
	}
	if !created {
		return mcp.NewToolResultError("draft declined: title and at least one exercise are required"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{"id": id})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) assignWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayStr, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	workoutID, err := req.RequireString("workout_id")
	if err != nil {
		return mcp.NewToolResultError("workout_id parameter is required"), nil
	}

	day := planner.Day(dayStr)
	if !planner.ValidDay(day) {
		return mcp.NewToolResultError("unknown day: " + dayStr), nil
	}
	timeOfDay := planner.TimeOfDay(req.GetString("time_of_day", string(planner.Morning)))

	id, ok, err := h.ds.AssignSlot(ctx, day, workoutID, timeOfDay, req.GetString("notes", ""))
	if err != nil {
		h.log.Error("mcp assign_workout", "error", err)
		return mcp.NewToolResultError("assign failed: " + err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("workout_id is required"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{"id": id})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) removeSlot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayStr, err := req.RequireString("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	slotID, err := req.RequireString("slot_id")
	if err != nil {
		return mcp.NewToolResultError("slot_id parameter is required"), nil
	}

	day := planner.Day(dayStr)
	if !planner.ValidDay(day) {
		return mcp.NewToolResultError("unknown day: " + dayStr), nil
	}

	if err := h.ds.RemoveSlot(ctx, day, slotID); err != nil {
		h.log.Error("mcp remove_slot", "error", err)
		return mcp.NewToolResultError("remove failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{"removed": slotID})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
