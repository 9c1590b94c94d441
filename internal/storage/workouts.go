package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/powerup/internal/models"
)

// InsertStrengthWorkout inserts a strength workout and its exercises in one
// transaction. A failed insert leaves the store unchanged.
func (db *DB) InsertStrengthWorkout(ctx context.Context, w models.StrengthWorkout) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO strength_workouts (id, name, date) VALUES (?, ?, ?)`,
		w.ID.String(), w.Name, w.Date.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting strength workout: %w", err)
	}

	for i, ex := range w.Exercises {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO exercises (workout_id, position, name, sets, reps, weight)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID.String(), i, ex.Name, ex.Sets, ex.Reps, ex.Weight)
		if err != nil {
			return fmt.Errorf("inserting exercise: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing strength workout: %w", err)
	}
	return nil
}

// InsertEnduranceWorkout inserts an endurance workout row.
func (db *DB) InsertEnduranceWorkout(ctx context.Context, w models.EnduranceWorkout) error {
	var unit any
	if w.DistanceUnit != "" {
		unit = w.DistanceUnit
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO endurance_workouts (id, cardio_method, date, duration_min, heart_rate_bpm, distance, distance_unit)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID.String(), w.CardioMethod, w.Date.UTC().Format(time.RFC3339Nano),
		w.DurationMin, w.HeartRateBPM, w.Distance, unit)
	if err != nil {
		return fmt.Errorf("inserting endurance workout: %w", err)
	}
	return nil
}

// InsertHICWorkout inserts a high-intensity cardio workout row.
func (db *DB) InsertHICWorkout(ctx context.Context, w models.HICWorkout) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO hic_workouts (id, date, preset_name, duration_min, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		w.ID.String(), w.Date.UTC().Format(time.RFC3339Nano), w.PresetName, w.DurationMin, w.Notes)
	if err != nil {
		return fmt.Errorf("inserting hic workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes the record of the given kind. Exercises cascade with
// their strength workout. Returns false when no row matched.
func (db *DB) DeleteWorkout(ctx context.Context, kind models.Kind, id uuid.UUID) (bool, error) {
	var table string
	switch kind {
	case models.KindStrength:
		table = "strength_workouts"
	case models.KindEndurance:
		table = "endurance_workouts"
	case models.KindHIC:
		table = "hic_workouts"
	default:
		return false, fmt.Errorf("unknown workout kind %q", kind)
	}

	res, err := db.conn.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id.String())
	if err != nil {
		return false, fmt.Errorf("deleting %s workout: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// QueryStrengthWorkouts retrieves all strength workouts, newest first, with
// exercises in their recorded order.
func (db *DB) QueryStrengthWorkouts(ctx context.Context) ([]models.StrengthWorkout, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, date FROM strength_workouts ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying strength workouts: %w", err)
	}
	defer rows.Close()

	var result []models.StrengthWorkout
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			w       models.StrengthWorkout
			id, ts  string
		)
		if err := rows.Scan(&id, &w.Name, &ts); err != nil {
			return nil, fmt.Errorf("scanning strength workout: %w", err)
		}
		if w.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing strength workout id: %w", err)
		}
		if w.Date, err = parseStoredTime(ts); err != nil {
			return nil, err
		}
		index[w.ID] = len(result)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	exRows, err := db.conn.QueryContext(ctx,
		`SELECT workout_id, name, sets, reps, weight FROM exercises ORDER BY workout_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		var (
			wid string
			ex  models.Exercise
		)
		if err := exRows.Scan(&wid, &ex.Name, &ex.Sets, &ex.Reps, &ex.Weight); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		id, err := uuid.Parse(wid)
		if err != nil {
			return nil, fmt.Errorf("parsing exercise workout id: %w", err)
		}
		if i, ok := index[id]; ok {
			result[i].Exercises = append(result[i].Exercises, ex)
		}
	}
	return result, exRows.Err()
}

// QueryEnduranceWorkouts retrieves all endurance workouts, newest first.
func (db *DB) QueryEnduranceWorkouts(ctx context.Context) ([]models.EnduranceWorkout, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, cardio_method, date, duration_min, heart_rate_bpm, distance, distance_unit
		 FROM endurance_workouts ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying endurance workouts: %w", err)
	}
	defer rows.Close()

	var result []models.EnduranceWorkout
	for rows.Next() {
		var (
			w      models.EnduranceWorkout
			id, ts string
			unit   *string
		)
		if err := rows.Scan(&id, &w.CardioMethod, &ts, &w.DurationMin, &w.HeartRateBPM, &w.Distance, &unit); err != nil {
			return nil, fmt.Errorf("scanning endurance workout: %w", err)
		}
		if w.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing endurance workout id: %w", err)
		}
		if w.Date, err = parseStoredTime(ts); err != nil {
			return nil, err
		}
		if unit != nil {
			w.DistanceUnit = *unit
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// QueryHICWorkouts retrieves all high-intensity cardio workouts, newest first.
func (db *DB) QueryHICWorkouts(ctx context.Context) ([]models.HICWorkout, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, date, preset_name, duration_min, notes FROM hic_workouts ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying hic workouts: %w", err)
	}
	defer rows.Close()

	var result []models.HICWorkout
	for rows.Next() {
		var (
			w      models.HICWorkout
			id, ts string
		)
		if err := rows.Scan(&id, &ts, &w.PresetName, &w.DurationMin, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning hic workout: %w", err)
		}
		if w.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing hic workout id: %w", err)
		}
		if w.Date, err = parseStoredTime(ts); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// QueryAllWorkouts merges the three collections into a single list of union
// values, newest first.
func (db *DB) QueryAllWorkouts(ctx context.Context) ([]models.Workout, error) {
	strength, err := db.QueryStrengthWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	endurance, err := db.QueryEnduranceWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	hic, err := db.QueryHICWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]models.Workout, 0, len(strength)+len(endurance)+len(hic))
	for _, w := range strength {
		all = append(all, models.NewStrength(w))
	}
	for _, w := range endurance {
		all = append(all, models.NewEndurance(w))
	}
	for _, w := range hic {
		all = append(all, models.NewHIC(w))
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date().After(all[j].Date())
	})
	return all, nil
}

func parseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored date %q: %w", s, err)
	}
	return t, nil
}
