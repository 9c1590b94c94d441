package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/powerup/internal/models"
	"github.com/meltforce/powerup/internal/views"
)

// fakeDataSource serves canned collections for tool handler tests.
type fakeDataSource struct {
	strength  []models.StrengthWorkout
	endurance []models.EnduranceWorkout
	hic       []models.HICWorkout
	err       error
}

func (f *fakeDataSource) QueryStrengthWorkouts(context.Context) ([]models.StrengthWorkout, error) {
	return f.strength, f.err
}

func (f *fakeDataSource) QueryEnduranceWorkouts(context.Context) ([]models.EnduranceWorkout, error) {
	return f.endurance, f.err
}

func (f *fakeDataSource) QueryHICWorkouts(context.Context) ([]models.HICWorkout, error) {
	return f.hic, f.err
}

func (f *fakeDataSource) QueryAllWorkouts(context.Context) ([]models.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []models.Workout
	for _, w := range f.strength {
		all = append(all, models.NewStrength(w))
	}
	for _, w := range f.endurance {
		all = append(all, models.NewEndurance(w))
	}
	for _, w := range f.hic {
		all = append(all, models.NewHIC(w))
	}
	return all, nil
}

func testHandlers(ds DataSource) *handlers {
	return &handlers{ds: ds, log: slog.Default()}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload from a tool result, failing on error results.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

// TestGetWorkoutsKindFilter verifies the kind parameter selects the matching
// collection.
func TestGetWorkoutsKindFilter(t *testing.T) {
	ds := &fakeDataSource{
		hic: []models.HICWorkout{
			{ID: uuid.New(), Date: time.Now(), PresetName: "GC #5", DurationMin: 20},
		},
	}
	h := testHandlers(ds)

	result, err := h.getWorkouts(context.Background(), callRequest(map[string]any{"kind": "hic"}))
	if err != nil {
		t.Fatal(err)
	}

	var workouts []models.HICWorkout
	if err := json.Unmarshal([]byte(resultText(t, result)), &workouts); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("got %d workouts, want 1", len(workouts))
	}
	if workouts[0].PresetName != "GC #5" {
		t.Errorf("preset_name = %q, want GC #5", workouts[0].PresetName)
	}
}

// TestGetWorkoutsQueryError verifies store failures surface as tool error results.
func TestGetWorkoutsQueryError(t *testing.T) {
	h := testHandlers(&fakeDataSource{err: errors.New("disk gone")})

	result, err := h.getWorkouts(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error result for failing store")
	}
}

// TestGetWorkoutSummary verifies counts and days-since values flow through the
// summary tool.
func TestGetWorkoutSummary(t *testing.T) {
	now := time.Now()
	ds := &fakeDataSource{
		strength: []models.StrengthWorkout{
			{ID: uuid.New(), Name: "Pull Day", Date: now.AddDate(0, 0, -2)},
		},
		hic: []models.HICWorkout{
			{ID: uuid.New(), Date: now, PresetName: "Fast 5", DurationMin: 25},
		},
	}
	h := testHandlers(ds)

	result, err := h.getWorkoutSummary(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}

	var summary views.Summary
	if err := json.Unmarshal([]byte(resultText(t, result)), &summary); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if summary.Total.Count != 2 {
		t.Errorf("total count = %d, want 2", summary.Total.Count)
	}
	if summary.Strength.DaysSinceLast == nil || *summary.Strength.DaysSinceLast != 2 {
		t.Errorf("strength days_since_last = %v, want 2", summary.Strength.DaysSinceLast)
	}
	if summary.Endurance.DaysSinceLast != nil {
		t.Error("endurance days_since_last should be nil with no records")
	}
	if summary.Total.DaysSinceLast == nil || *summary.Total.DaysSinceLast != 0 {
		t.Errorf("total days_since_last = %v, want 0", summary.Total.DaysSinceLast)
	}
}

// TestGetWorkoutCalendar verifies the month cursor and the fixed 42-day grid.
func TestGetWorkoutCalendar(t *testing.T) {
	ds := &fakeDataSource{
		endurance: []models.EnduranceWorkout{
			{ID: uuid.New(), CardioMethod: models.CardioRowing, Date: time.Date(2026, 8, 14, 6, 0, 0, 0, time.UTC), DurationMin: 40, HeartRateBPM: 145},
		},
	}
	h := testHandlers(ds)

	result, err := h.getWorkoutCalendar(context.Background(), callRequest(map[string]any{"month": "2026-08"}))
	if err != nil {
		t.Fatal(err)
	}

	var resp struct {
		Month string      `json:"month"`
		Days  []views.Day `json:"days"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Month != "2026-08" {
		t.Errorf("month = %q, want 2026-08", resp.Month)
	}
	if len(resp.Days) != views.GridDays {
		t.Fatalf("got %d days, want %d", len(resp.Days), views.GridDays)
	}

	marked := 0
	for _, d := range resp.Days {
		if d.Categories.Endurance {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("endurance-marked days = %d, want 1", marked)
	}
}

// TestGetWorkoutCalendarBadMonth verifies an unparseable cursor yields an error result.
func TestGetWorkoutCalendarBadMonth(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	result, err := h.getWorkoutCalendar(context.Background(), callRequest(map[string]any{"month": "August"}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error result for bad month cursor")
	}
}

// TestListTrainingVault verifies the full vault is returned.
func TestListTrainingVault(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	result, err := h.listTrainingVault(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &entries); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(entries) != 40 {
		t.Fatalf("vault size = %d, want 40", len(entries))
	}
}

// TestGetVaultWorkoutOutOfRange verifies numbers outside 1-40 yield an error result.
func TestGetVaultWorkoutOutOfRange(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	result, err := h.getVaultWorkout(context.Background(), callRequest(map[string]any{"number": 41}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error result for number 41")
	}
}

// TestLookupPreset verifies catalog classification and intensity inclusion.
func TestLookupPreset(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	result, err := h.lookupPreset(context.Background(), callRequest(map[string]any{
		"name":         "Power Complex",
		"duration_min": 12,
	}))
	if err != nil {
		t.Fatal(err)
	}

	var resp map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["category"] != "Power Development" {
		t.Errorf("category = %v, want Power Development", resp["category"])
	}
	if resp["catalog_match"] != true {
		t.Errorf("catalog_match = %v, want true", resp["catalog_match"])
	}
	if resp["intensity"] != "Max" {
		t.Errorf("intensity = %v, want Max", resp["intensity"])
	}
}

// TestParseMonth verifies cursor parsing and the current-month default.
func TestParseMonth(t *testing.T) {
	got, err := parseMonth("2026-02")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2026 || got.Month() != time.February {
		t.Errorf("parseMonth(2026-02) = %v", got)
	}

	now, err := parseMonth("")
	if err != nil {
		t.Fatal(err)
	}
	if now.Month() != time.Now().Month() {
		t.Errorf("default month = %v, want current month", now.Month())
	}

	if _, err := parseMonth("02/2026"); err == nil {
		t.Error("expected error for non-YYYY-MM cursor")
	}
}
