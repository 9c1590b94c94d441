package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which concrete record a Workout wraps.
type Kind string

const (
	KindStrength  Kind = "strength"
	KindEndurance Kind = "endurance"
	KindHIC       Kind = "hic"
)

// CardioMethod is the fixed set of endurance cardio methods. When the user
// picks "Other" the free-text override is stored in the same field, so any
// string is a valid CardioMethod at the model level.
type CardioMethod = string

const (
	CardioRunning    CardioMethod = "Running"
	CardioCycling    CardioMethod = "Cycling"
	CardioSwimming   CardioMethod = "Swimming"
	CardioWalking    CardioMethod = "Walking"
	CardioElliptical CardioMethod = "Elliptical"
	CardioRowing     CardioMethod = "Rowing"
	CardioOther      CardioMethod = "Other"
)

// CardioMethods lists the selectable methods in display order.
var CardioMethods = []CardioMethod{
	CardioRunning, CardioCycling, CardioSwimming,
	CardioWalking, CardioElliptical, CardioRowing, CardioOther,
}

// Distance units for endurance workouts.
const (
	UnitMiles      = "mi"
	UnitKilometers = "km"
)

// Exercise is one movement within a strength workout. Weight is pounds.
type Exercise struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// StrengthWorkout is a logged strength session.
type StrengthWorkout struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	Exercises []Exercise `json:"exercises"`
}

// EnduranceWorkout is a logged steady-state cardio session. Duration is
// minutes (input widget allows 1–120), heart rate is average BPM (60–220).
// Neither range is enforced here. Distance is optional; DistanceUnit is set
// whenever Distance is.
type EnduranceWorkout struct {
	ID           uuid.UUID `json:"id"`
	CardioMethod string    `json:"cardio_method"`
	Date         time.Time `json:"date"`
	DurationMin  int       `json:"duration_min"`
	HeartRateBPM int       `json:"heart_rate_bpm"`
	Distance     *float64  `json:"distance,omitempty"`
	DistanceUnit string    `json:"distance_unit,omitempty"`
}

// HICWorkout is a logged high-intensity cardio session. PresetName normally
// matches a catalog entry but membership is not enforced; category is always
// re-derived from the name, never stored.
type HICWorkout struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	PresetName  string    `json:"preset_name"`
	DurationMin int       `json:"duration_min"`
	Notes       string    `json:"notes,omitempty"`
}

// Workout is the tagged union over the three record kinds. Exactly one of the
// three pointers is non-nil; the wrapped record supplies identity, date, and
// title. Construct via NewStrength/NewEndurance/NewHIC.
type Workout struct {
	Strength  *StrengthWorkout
	Endurance *EnduranceWorkout
	HIC       *HICWorkout
}

// NewStrength wraps a strength record.
func NewStrength(w StrengthWorkout) Workout { return Workout{Strength: &w} }

// NewEndurance wraps an endurance record.
func NewEndurance(w EnduranceWorkout) Workout { return Workout{Endurance: &w} }

// NewHIC wraps a high-intensity cardio record.
func NewHIC(w HICWorkout) Workout { return Workout{HIC: &w} }

// Kind reports which record the union wraps.
func (w Workout) Kind() Kind {
	switch {
	case w.Strength != nil:
		return KindStrength
	case w.Endurance != nil:
		return KindEndurance
	default:
		return KindHIC
	}
}

// ID returns the wrapped record's identity.
func (w Workout) ID() uuid.UUID {
	switch {
	case w.Strength != nil:
		return w.Strength.ID
	case w.Endurance != nil:
		return w.Endurance.ID
	case w.HIC != nil:
		return w.HIC.ID
	}
	return uuid.Nil
}

// Date returns the wrapped record's date.
func (w Workout) Date() time.Time {
	switch {
	case w.Strength != nil:
		return w.Strength.Date
	case w.Endurance != nil:
		return w.Endurance.Date
	case w.HIC != nil:
		return w.HIC.Date
	}
	return time.Time{}
}

// Title returns the kind-specific display title: the workout name for
// strength, the cardio method for endurance, the preset name for HIC.
func (w Workout) Title() string {
	switch {
	case w.Strength != nil:
		return w.Strength.Name
	case w.Endurance != nil:
		return w.Endurance.CardioMethod
	case w.HIC != nil:
		return w.HIC.PresetName
	}
	return ""
}

// Same reports whether two union values wrap records with the same identity.
func (w Workout) Same(other Workout) bool {
	return w.ID() == other.ID()
}

// workoutJSON is the wire shape for the union: a kind discriminator plus the
// record under a kind-specific key.
type workoutJSON struct {
	Kind      Kind              `json:"kind"`
	Strength  *StrengthWorkout  `json:"strength,omitempty"`
	Endurance *EnduranceWorkout `json:"endurance,omitempty"`
	HIC       *HICWorkout       `json:"hic,omitempty"`
}

func (w Workout) MarshalJSON() ([]byte, error) {
	return json.Marshal(workoutJSON{
		Kind:      w.Kind(),
		Strength:  w.Strength,
		Endurance: w.Endurance,
		HIC:       w.HIC,
	})
}

func (w *Workout) UnmarshalJSON(data []byte) error {
	var wire workoutJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Kind {
	case KindStrength:
		if wire.Strength == nil {
			return fmt.Errorf("workout kind %q missing strength record", wire.Kind)
		}
		w.Strength, w.Endurance, w.HIC = wire.Strength, nil, nil
	case KindEndurance:
		if wire.Endurance == nil {
			return fmt.Errorf("workout kind %q missing endurance record", wire.Kind)
		}
		w.Strength, w.Endurance, w.HIC = nil, wire.Endurance, nil
	case KindHIC:
		if wire.HIC == nil {
			return fmt.Errorf("workout kind %q missing hic record", wire.Kind)
		}
		w.Strength, w.Endurance, w.HIC = nil, nil, wire.HIC
	default:
		return fmt.Errorf("unknown workout kind %q", wire.Kind)
	}
	return nil
}

// ParseKind validates a kind string from a URL or query parameter.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStrength, KindEndurance, KindHIC:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown workout kind %q", s)
}
