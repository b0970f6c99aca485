package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// sequence builds one booking per studio name on consecutive days.
func sequence(studios ...string) []models.Booking {
	var out []models.Booking
	start := day(2023, 5, 1)
	for i, s := range studios {
		out = append(out, booking(start.AddDate(0, 0, i), s, "type-"+s, 100, 0))
	}
	return out
}

func runShape(runs []ConsecutiveRun) []string {
	var out []string
	for _, r := range runs {
		out = append(out, r.Studio+":"+string(rune('0'+r.Days)))
	}
	return out
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		studios []string
		want    []string
	}{
		{"empty", nil, nil},
		{"single booking", []string{"A"}, []string{"A:1"}},
		{"one long run", []string{"A", "A", "A"}, []string{"A:3"}},
		{"alternating", []string{"A", "B", "A", "B"}, []string{"A:1", "B:1", "A:1", "B:1"}},
		{"return to studio starts new run", []string{"A", "A", "B", "A", "A", "A"}, []string{"A:2", "B:1", "A:3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runShape(Runs(sequence(tt.studios...))))
		})
	}
}

func TestRunsKeepFirstType(t *testing.T) {
	bookings := []models.Booking{
		booking(day(2023, 1, 2), "Mill", "Comp", 100, 0),
		booking(day(2023, 1, 3), "Mill", "Roto", 100, 0),
	}

	runs := Runs(bookings)
	require.Len(t, runs, 1)
	assert.Equal(t, "Comp", runs[0].Type)
	assert.Equal(t, day(2023, 1, 2), runs[0].Start)
	assert.Equal(t, day(2023, 1, 3), runs[0].End)
}

func TestRunsTypeSkipsEmptyTypes(t *testing.T) {
	bookings := []models.Booking{
		booking(day(2023, 1, 5), "A", "", 300, 0),
		booking(day(2023, 1, 6), "A", "VFX", 300, 0),
		booking(day(2023, 1, 9), "B", "", 250, 1),
	}

	runs := Runs(bookings)
	require.Len(t, runs, 2)
	assert.Equal(t, "VFX", runs[0].Type)
	assert.Equal(t, 2, runs[0].Days)
	assert.Equal(t, "", runs[1].Type, "a run with no typed booking has no type")
}

func TestTopRuns(t *testing.T) {
	runs := Runs(sequence("A", "B", "B", "C", "D", "D", "E", "F", "F", "F", "G"))

	assert.Equal(t, []string{"F:3", "B:2", "D:2", "A:1", "C:1"}, runShape(TopRuns(runs, 5)))
	assert.Equal(t, []string{"F:3", "B:2"}, runShape(TopRuns(runs, 2)))
	assert.Len(t, TopRuns(runs, 0), DefaultTopRuns)
	assert.Len(t, TopRuns(runs, 50), len(runs))

	// input order is untouched
	assert.Equal(t, "A", runs[0].Studio)
}

func TestLongestRuns(t *testing.T) {
	t.Run("ties keep first occurrence", func(t *testing.T) {
		s := LongestRuns(Runs(sequence("A", "A", "B", "C", "C", "D", "D")))

		assert.Equal(t, "A", s.Longest.Studio)
		require.True(t, s.HasSecond)
		assert.Equal(t, "C", s.Second.Studio)
		assert.Equal(t, 2, s.Second.Days)
	})

	t.Run("single run has no second", func(t *testing.T) {
		s := LongestRuns(Runs(sequence("A", "A", "A")))

		assert.Equal(t, "A", s.Longest.Studio)
		assert.Equal(t, 3, s.Longest.Days)
		assert.False(t, s.HasSecond)
		assert.Equal(t, ConsecutiveRun{}, s.Second)
	})

	t.Run("no bookings", func(t *testing.T) {
		s := LongestRuns(nil)

		assert.Equal(t, RunSummary{}, s)
	})
}
