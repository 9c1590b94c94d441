// Package views computes display-ready aggregates from workout record
// collections. Every function here is pure: no I/O, no stored state, and no
// error paths — empty inputs produce empty outputs.
package views

import (
	"math"
	"time"

	"github.com/meltforce/powerup/internal/models"
)

// CategorySummary holds the per-category workout stats shown on the profile
// screen. DaysSinceLast is nil when the category has no records.
type CategorySummary struct {
	Count         int  `json:"count"`
	DaysSinceLast *int `json:"days_since_last,omitempty"`
}

// Summary is the full workout statistics block: one entry per category plus
// the total across all three.
type Summary struct {
	Strength  CategorySummary `json:"strength"`
	Endurance CategorySummary `json:"endurance"`
	HIC       CategorySummary `json:"hic"`
	Total     CategorySummary `json:"total"`
}

// Summarize computes counts and days-since-last-workout for the three
// collections. Each input is expected sorted date-descending (the store's
// query order), so the most recent record is the head; the total's most
// recent date is the max of the three heads. Day differences use calendar-day
// granularity: a workout earlier today is 0 days ago.
func Summarize(now time.Time, strength []models.StrengthWorkout, endurance []models.EnduranceWorkout, hic []models.HICWorkout) Summary {
	s := Summary{
		Strength:  CategorySummary{Count: len(strength)},
		Endurance: CategorySummary{Count: len(endurance)},
		HIC:       CategorySummary{Count: len(hic)},
		Total:     CategorySummary{Count: len(strength) + len(endurance) + len(hic)},
	}

	var heads []time.Time
	if len(strength) > 0 {
		d := strength[0].Date
		s.Strength.DaysSinceLast = daysSince(d, now)
		heads = append(heads, d)
	}
	if len(endurance) > 0 {
		d := endurance[0].Date
		s.Endurance.DaysSinceLast = daysSince(d, now)
		heads = append(heads, d)
	}
	if len(hic) > 0 {
		d := hic[0].Date
		s.HIC.DaysSinceLast = daysSince(d, now)
		heads = append(heads, d)
	}

	if len(heads) > 0 {
		latest := heads[0]
		for _, d := range heads[1:] {
			if d.After(latest) {
				latest = d
			}
		}
		s.Total.DaysSinceLast = daysSince(latest, now)
	}

	return s
}

// daysSince returns the whole calendar days between date and now, truncating
// time-of-day on both sides. Rounding absorbs DST offsets.
func daysSince(date, now time.Time) *int {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(to.Sub(from).Hours() / 24))
	return &days
}
