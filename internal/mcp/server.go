package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Power Up", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Power Up fitness tracker. Query logged strength, endurance, and high-intensity cardio workouts, workout statistics, the activity calendar, and the Training Vault workout library."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetWorkoutSummary, Handler: h.getWorkoutSummary},
		server.ServerTool{Tool: toolGetWorkoutCalendar, Handler: h.getWorkoutCalendar},
		server.ServerTool{Tool: toolListTrainingVault, Handler: h.listTrainingVault},
		server.ServerTool{Tool: toolGetVaultWorkout, Handler: h.getVaultWorkout},
		server.ServerTool{Tool: toolLookupPreset, Handler: h.lookupPreset},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resTrainingVault, Handler: h.trainingVaultResource},
		server.ServerResource{Resource: resWorkoutSummary, Handler: h.workoutSummaryResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resTrainingVault = mcp.NewResource(
	"powerup://training_vault",
	"Training Vault",
	mcp.WithResourceDescription("The full library of 40 prescribed high-intensity cardio workouts with step-by-step instructions"),
	mcp.WithMIMEType("application/json"),
)

var resWorkoutSummary = mcp.NewResource(
	"powerup://workout_summary",
	"Workout Summary",
	mcp.WithResourceDescription("Per-category workout counts and days since the last workout"),
	mcp.WithMIMEType("application/json"),
)
