package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/powerup/internal/catalog"
	"github.com/meltforce/powerup/internal/views"
)

// parseMonth parses a YYYY-MM cursor, defaulting to the current month.
func parseMonth(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01", s)
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("List logged workouts, newest first. Each entry carries a 'kind' discriminator (strength, endurance, or hic) with the matching record payload."),
	mcp.WithString("kind", mcp.Description("Filter by workout kind"), mcp.Enum("strength", "endurance", "hic")),
)

var toolGetWorkoutSummary = mcp.NewTool("get_workout_summary",
	mcp.WithDescription("Workout statistics: per-category counts and days since the last workout, plus the total across all categories."),
)

var toolGetWorkoutCalendar = mcp.NewTool("get_workout_calendar",
	mcp.WithDescription("42-day activity calendar for a month (6 weeks starting on the Sunday on or before the 1st). Each day lists which workout categories occurred."),
	mcp.WithString("month", mcp.Description("Month cursor in YYYY-MM format. Defaults to the current month.")),
)

var toolListTrainingVault = mcp.NewTool("list_training_vault",
	mcp.WithDescription("List all 40 Training Vault workouts with their step-by-step instructions."),
)

var toolGetVaultWorkout = mcp.NewTool("get_vault_workout",
	mcp.WithDescription("Get one Training Vault workout by its number (1-40)."),
	mcp.WithNumber("number", mcp.Required(), mcp.Description("Vault workout number, 1 through 40")),
)

var toolLookupPreset = mcp.NewTool("lookup_preset",
	mcp.WithDescription("Classify a high-intensity cardio preset name. Returns the category (exact catalog match, or keyword inference for free-form names), its description, and optionally the intensity level for a duration."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Preset or workout name, e.g. 'GC #5' or 'Power Complex'")),
	mcp.WithNumber("duration_min", mcp.Description("Workout duration in minutes; when given, the result includes the intensity level")),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var payload any
	var err error

	switch kind := req.GetString("kind", ""); kind {
	case "strength":
		payload, err = h.ds.QueryStrengthWorkouts(ctx)
	case "endurance":
		payload, err = h.ds.QueryEnduranceWorkouts(ctx)
	case "hic":
		payload, err = h.ds.QueryHICWorkouts(ctx)
	case "":
		payload, err = h.ds.QueryAllWorkouts(ctx)
	default:
		return mcp.NewToolResultError("unknown kind: " + kind), nil
	}
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	strength, err := h.ds.QueryStrengthWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_summary strength", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	endurance, err := h.ds.QueryEnduranceWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_summary endurance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	hic, err := h.ds.QueryHICWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_summary hic", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(views.Summarize(time.Now(), strength, endurance, hic))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	month, err := parseMonth(req.GetString("month", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid month, want YYYY-MM: " + err.Error()), nil
	}

	strength, err := h.ds.QueryStrengthWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_calendar strength", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	endurance, err := h.ds.QueryEnduranceWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_calendar endurance", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	hic, err := h.ds.QueryHICWorkouts(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_calendar hic", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"month": month.Format("2006-01"),
		"days":  views.MonthGrid(month, strength, endurance, hic),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTrainingVault(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(catalog.Vault())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVaultWorkout(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := req.RequireInt("number")
	if err != nil {
		return mcp.NewToolResultError("number parameter is required"), nil
	}

	entry, ok := catalog.VaultByNumber(number)
	if !ok {
		return mcp.NewToolResultError("no vault workout with that number (want 1-40)"), nil
	}

	result, err := mcp.NewToolResultJSON(entry)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) lookupPreset(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	info := views.InferHICInfo(name)
	payload := map[string]any{
		"name":        name,
		"category":    info.Category,
		"description": info.Description,
	}
	if _, ok := catalog.LookupPreset(name); ok {
		payload["catalog_match"] = true
	}
	if duration := req.GetInt("duration_min", 0); duration > 0 {
		payload["intensity"] = views.IntensityLevel(duration)
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
