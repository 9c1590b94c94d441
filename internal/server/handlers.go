package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/powerup/internal/catalog"
	"github.com/meltforce/powerup/internal/models"
	"github.com/meltforce/powerup/internal/views"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleCreateStrength(w http.ResponseWriter, r *http.Request) {
	var workout models.StrengthWorkout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workout.ID = uuid.New()
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := s.db.InsertStrengthWorkout(r.Context(), workout); err != nil {
		s.log.Error("insert strength workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (s *Server) handleCreateEndurance(w http.ResponseWriter, r *http.Request) {
	var workout models.EnduranceWorkout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.Distance != nil && workout.DistanceUnit == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "distance_unit is required when distance is set"})
		return
	}
	workout.ID = uuid.New()
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := s.db.InsertEnduranceWorkout(r.Context(), workout); err != nil {
		s.log.Error("insert endurance workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (s *Server) handleCreateHIC(w http.ResponseWriter, r *http.Request) {
	var workout models.HICWorkout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	workout.ID = uuid.New()
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := s.db.InsertHICWorkout(r.Context(), workout); err != nil {
		s.log.Error("insert hic workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind, err := models.ParseKind(kindStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.listByKind(w, r, kind)
		return
	}

	workouts, err := s.db.QueryAllWorkouts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) listByKind(w http.ResponseWriter, r *http.Request, kind models.Kind) {
	var (
		result any
		err    error
	)
	switch kind {
	case models.KindStrength:
		var list []models.StrengthWorkout
		if list, err = s.db.QueryStrengthWorkouts(r.Context()); list == nil {
			list = []models.StrengthWorkout{}
		}
		result = list
	case models.KindEndurance:
		var list []models.EnduranceWorkout
		if list, err = s.db.QueryEnduranceWorkouts(r.Context()); list == nil {
			list = []models.EnduranceWorkout{}
		}
		result = list
	case models.KindHIC:
		var list []models.HICWorkout
		if list, err = s.db.QueryHICWorkouts(r.Context()); list == nil {
			list = []models.HICWorkout{}
		}
		result = list
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	kind, err := models.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	deleted, err := s.db.DeleteWorkout(r.Context(), kind, id)
	if err != nil {
		s.log.Error("delete workout", "kind", kind, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	strength, endurance, hic, err := s.queryCollections(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, views.Summarize(time.Now(), strength, endurance, hic))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	month := time.Now()
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "month must be YYYY-MM"})
			return
		}
		month = parsed
	}

	strength, endurance, hic, err := s.queryCollections(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"month": month.Format("2006-01"),
		"days":  views.MonthGrid(month, strength, endurance, hic),
	})
}

func (s *Server) queryCollections(r *http.Request) ([]models.StrengthWorkout, []models.EnduranceWorkout, []models.HICWorkout, error) {
	strength, err := s.db.QueryStrengthWorkouts(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	endurance, err := s.db.QueryEnduranceWorkouts(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	hic, err := s.db.QueryHICWorkouts(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	return strength, endurance, hic, nil
}

func (s *Server) handleHICInfo(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	info := views.InferHICInfo(name)
	resp := map[string]any{
		"category":    info.Category,
		"description": info.Description,
	}
	if d := r.URL.Query().Get("duration_min"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil {
			resp["intensity"] = views.IntensityLevel(minutes)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVault(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Vault())
}

func (s *Server) handleVaultEntry(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout number"})
		return
	}
	entry, ok := catalog.VaultByNumber(number)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "vault workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		string(catalog.AerobicAnaerobic):    catalog.AerobicAnaerobicPresets,
		string(catalog.GeneralConditioning): catalog.GeneralConditioningPresets,
		string(catalog.PowerDevelopment):    catalog.PowerDevelopmentPresets,
	})
}

func (s *Server) handlePresetLookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	category, ok := catalog.LookupPreset(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"name":     name,
		"category": string(category),
	})
}
