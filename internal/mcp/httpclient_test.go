package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/powerup/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestQueryHICWorkouts verifies the HTTP client sends the kind filter and
// parses the JSON array response.
func TestQueryHICWorkouts(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("kind"); got != "hic" {
				t.Errorf("kind=%q, want hic", got)
			}
			writeTestJSON(t, w, []models.HICWorkout{
				{ID: uuid.New(), Date: time.Date(2026, 8, 1, 7, 0, 0, 0, time.UTC), PresetName: "Fast 5", DurationMin: 25},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	workouts, err := client.QueryHICWorkouts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 1 {
		t.Fatalf("got %d workouts, want 1", len(workouts))
	}
	if workouts[0].PresetName != "Fast 5" {
		t.Errorf("preset_name=%q, want Fast 5", workouts[0].PresetName)
	}
}

// TestQueryAllWorkouts verifies the unfiltered request decodes the tagged
// union wire format.
func TestQueryAllWorkouts(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("kind"); got != "" {
				t.Errorf("kind=%q, want empty", got)
			}
			writeTestJSON(t, w, []models.Workout{
				models.NewStrength(models.StrengthWorkout{ID: uuid.New(), Name: "Push Day", Date: time.Now()}),
				models.NewEndurance(models.EnduranceWorkout{ID: uuid.New(), CardioMethod: models.CardioRunning, Date: time.Now(), DurationMin: 30, HeartRateBPM: 150}),
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	workouts, err := client.QueryAllWorkouts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 2 {
		t.Fatalf("got %d workouts, want 2", len(workouts))
	}
	if workouts[0].Kind() != models.KindStrength {
		t.Errorf("workouts[0].Kind() = %q, want strength", workouts[0].Kind())
	}
	if workouts[1].Title() != models.CardioRunning {
		t.Errorf("workouts[1].Title() = %q, want Running", workouts[1].Title())
	}
}

// TestHTTPClientServerError verifies the client returns an error on non-200 responses.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/workouts": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database down"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.QueryStrengthWorkouts(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
