package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all planner tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PulsePlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PulsePlan weekly workout planner. Inspect the week, the workout library, and the exercise catalog; create workout templates and schedule or remove sessions. All data belongs to a single local user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWeekSummary, Handler: h.getWeekSummary},
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolListSchedule, Handler: h.listSchedule},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolCreateWorkout, Handler: h.createWorkout},
		server.ServerTool{Tool: toolAssignWorkout, Handler: h.assignWorkout},
		server.ServerTool{Tool: toolRemoveSlot, Handler: h.removeSlot},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeek, Handler: h.weekResource},
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

type handlers struct {
	ds  DataSource
	log *slog.Logger
}
