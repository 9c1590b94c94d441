package views

import (
	"time"

	"github.com/meltforce/powerup/internal/models"
)

// GridDays is the fixed calendar size: 6 weeks of 7 days, starting on the
// Sunday on or before the 1st of the displayed month.
const GridDays = 42

// DayCategories is the set of workout categories with at least one record on
// a calendar day.
type DayCategories struct {
	Strength  bool `json:"strength"`
	Endurance bool `json:"endurance"`
	HIC       bool `json:"hic"`
}

// Any reports whether any category occurred.
func (c DayCategories) Any() bool {
	return c.Strength || c.Endurance || c.HIC
}

// Primary returns the category providing the day's fill indicator, using the
// display priority strength > endurance > HIC. Empty when no category
// occurred.
func (c DayCategories) Primary() models.Kind {
	switch {
	case c.Strength:
		return models.KindStrength
	case c.Endurance:
		return models.KindEndurance
	case c.HIC:
		return models.KindHIC
	}
	return ""
}

// Day is one cell of the month grid.
type Day struct {
	Date       time.Time     `json:"date"`
	InMonth    bool          `json:"in_month"`
	Categories DayCategories `json:"categories"`
}

// MonthGrid builds the 42-day calendar for the month containing the cursor
// date. Day membership is same-calendar-day, so multiple records on one day
// mark the day once per category, and a day with records in two categories
// carries exactly those two.
func MonthGrid(month time.Time, strength []models.StrengthWorkout, endurance []models.EnduranceWorkout, hic []models.HICWorkout) []Day {
	byDay := make(map[string]DayCategories)
	mark := func(date time.Time, set func(*DayCategories)) {
		key := dayKey(date)
		c := byDay[key]
		set(&c)
		byDay[key] = c
	}
	for _, w := range strength {
		mark(w.Date, func(c *DayCategories) { c.Strength = true })
	}
	for _, w := range endurance {
		mark(w.Date, func(c *DayCategories) { c.Endurance = true })
	}
	for _, w := range hic {
		mark(w.Date, func(c *DayCategories) { c.HIC = true })
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]Day, 0, GridDays)
	for i := 0; i < GridDays; i++ {
		date := start.AddDate(0, 0, i)
		grid = append(grid, Day{
			Date:       date,
			InMonth:    date.Month() == first.Month() && date.Year() == first.Year(),
			Categories: byDay[dayKey(date)],
		})
	}
	return grid
}

// NextMonth advances the displayed-month cursor by one whole month.
func NextMonth(cursor time.Time) time.Time {
	return time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location()).AddDate(0, 1, 0)
}

// PrevMonth retreats the displayed-month cursor by one whole month.
func PrevMonth(cursor time.Time) time.Time {
	return time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location()).AddDate(0, -1, 0)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
