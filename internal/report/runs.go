package report

import (
	"sort"
	"time"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// DefaultTopRuns is how many runs TopRuns returns when n is not positive
const DefaultTopRuns = 5

// ConsecutiveRun is a maximal stretch of date-adjacent bookings at one studio
type ConsecutiveRun struct {
	Studio string    `json:"studio"`
	Type   string    `json:"type"` // type of the first booking in the run
	Days   int       `json:"days"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// RunSummary holds the two longest runs. HasSecond is false when the
// bookings form a single run; Second is then the zero value.
type RunSummary struct {
	Longest   ConsecutiveRun `json:"longest"`
	Second    ConsecutiveRun `json:"second"`
	HasSecond bool           `json:"has_second"`
}

// Runs groups date-ordered bookings into runs, starting a new run whenever
// the studio changes from the previous booking. A run's type is the first
// non-empty type among its bookings.
func Runs(bookings []models.Booking) []ConsecutiveRun {
	var runs []ConsecutiveRun
	for i, b := range bookings {
		if i > 0 && b.Studio == bookings[i-1].Studio {
			last := &runs[len(runs)-1]
			last.Days++
			last.End = b.Date
			if last.Type == "" {
				last.Type = b.Type
			}
			continue
		}
		runs = append(runs, ConsecutiveRun{
			Studio: b.Studio,
			Type:   b.Type,
			Days:   1,
			Start:  b.Date,
			End:    b.Date,
		})
	}
	return runs
}

// TopRuns returns the n longest runs, longest first. Equal lengths keep
// their chronological order.
func TopRuns(runs []ConsecutiveRun, n int) []ConsecutiveRun {
	if n <= 0 {
		n = DefaultTopRuns
	}

	sorted := make([]ConsecutiveRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Days > sorted[j].Days
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LongestRuns picks the longest and second longest runs
func LongestRuns(runs []ConsecutiveRun) RunSummary {
	top := TopRuns(runs, 2)

	var s RunSummary
	if len(top) > 0 {
		s.Longest = top[0]
	}
	if len(top) > 1 {
		s.Second = top[1]
		s.HasSecond = true
	}
	return s
}
