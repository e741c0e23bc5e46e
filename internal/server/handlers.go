package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/pulseplan/internal/planner"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Snapshot())
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, planner.Catalog())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Summary())
}

func (s *Server) handleDaySchedule(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}
	writeJSON(w, http.StatusOK, s.planner.Snapshot().Schedule[day])
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	var draft planner.WorkoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id, created := s.planner.CreateWorkout(r.Context(), draft)
	if !created {
		// The core declines silently; the HTTP surface still explains why.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "draft declined: title and at least one exercise are required",
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type assignRequest struct {
	WorkoutID string            `json:"workoutId"`
	TimeOfDay planner.TimeOfDay `json:"timeOfDay"`
	Notes     string            `json:"notes"`
}

func (s *Server) handleAssignSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id, ok := s.planner.AssignSlot(r.Context(), day, req.WorkoutID, req.TimeOfDay, req.Notes)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "workoutId is required"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown day"})
		return
	}

	// Removal is idempotent: removing an absent slot is still a 204.
	s.planner.RemoveSlot(r.Context(), day, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func dayParam(r *http.Request) (planner.Day, bool) {
	day := planner.Day(chi.URLParam(r, "day"))
	return day, planner.ValidDay(day)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
