// Package report turns a date-ordered list of bookings into the statistics
// shown on the freelance dashboard.
//
// Every function is pure: it reads the bookings it is given, never modifies
// them, and returns freshly allocated results. The bookings must already be
// sorted by date, as the loader returns them.
package report

import "github.com/jgoulah/freelancestats/pkg/models"

// Options tunes Compute. Zero values select the defaults.
type Options struct {
	TopRuns      int // runs listed in Bundle.TopRuns (default 5)
	BusinessDays int // reference working days per year (default 256)
}

// Bundle is every statistic derived from one set of bookings
type Bundle struct {
	Runs             []ConsecutiveRun    `json:"runs"`
	TopRuns          []ConsecutiveRun    `json:"top_runs"`
	Longest          RunSummary          `json:"longest"`
	Monthly          []MonthlyBucket     `json:"monthly"`
	DayFrequency     []DayFrequency      `json:"day_frequency"`
	WeekdayFrequency [7]WeekdayFrequency `json:"weekday_frequency"`
	WorkTypes        []TypeCount         `json:"work_types"`
	Studios          []StudioTotal       `json:"studios"`
	Summary          Summary             `json:"summary"`
}

// Compute builds the full report for bookings
func Compute(bookings []models.Booking, opts Options) Bundle {
	runs := Runs(bookings)

	return Bundle{
		Runs:             runs,
		TopRuns:          TopRuns(runs, opts.TopRuns),
		Longest:          LongestRuns(runs),
		Monthly:          Monthly(bookings),
		DayFrequency:     DaysOfMonth(bookings),
		WeekdayFrequency: Weekdays(bookings),
		WorkTypes:        WorkTypes(bookings),
		Studios:          Studios(bookings),
		Summary:          Summarize(bookings, opts.BusinessDays),
	}
}
