package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/pulseplan/internal/planner"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner *planner.Planner
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// mutating routes unauthenticated (localhost / tailnet deployments).
func New(p *planner.Planner, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		planner: p,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints
		r.Get("/state", s.handleState)
		r.Get("/catalog", s.handleCatalog)
		r.Get("/summary", s.handleSummary)
		r.Get("/schedule/{day}", s.handleDaySchedule)

		// Mutation endpoints (API key enforced when configured)
		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Post("/workouts", s.handleCreateWorkout)
			r.Post("/schedule/{day}/slots", s.handleAssignSlot)
			r.Delete("/schedule/{day}/slots/{id}", s.handleRemoveSlot)
		})
	})
}
