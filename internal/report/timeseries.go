package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// MonthlyBucket is the bookings of one calendar month
type MonthlyBucket struct {
	Month time.Time       `json:"month"` // first day of the month
	Total decimal.Decimal `json:"total"`
	Days  int             `json:"days"` // number of bookings, not an average
}

// DayFrequency counts bookings falling on one day of the month
type DayFrequency struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// WeekdayFrequency counts bookings falling on one weekday
type WeekdayFrequency struct {
	Weekday time.Weekday `json:"weekday"`
	Label   string       `json:"label"`
	Count   int          `json:"count"`
}

// weekOrder is the display order of weekdays, Monday first
var weekOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tues",
	time.Wednesday: "Wedn",
	time.Thursday:  "Thurs",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// Monthly sums rates and counts bookings per calendar month, oldest first.
// Months without bookings are left out.
func Monthly(bookings []models.Booking) []MonthlyBucket {
	index := make(map[time.Time]int)
	var buckets []MonthlyBucket

	for _, b := range bookings {
		month := time.Date(b.Date.Year(), b.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		i, ok := index[month]
		if !ok {
			i = len(buckets)
			index[month] = i
			buckets = append(buckets, MonthlyBucket{Month: month})
		}
		buckets[i].Total = buckets[i].Total.Add(b.Rate)
		buckets[i].Days++
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	return buckets
}

// DaysOfMonth counts bookings per day of the month. Days with no bookings
// are absent.
func DaysOfMonth(bookings []models.Booking) []DayFrequency {
	var counts [32]int
	for _, b := range bookings {
		counts[b.Date.Day()]++
	}

	var out []DayFrequency
	for d := 1; d <= 31; d++ {
		if counts[d] > 0 {
			out = append(out, DayFrequency{Day: d, Count: counts[d]})
		}
	}
	return out
}

// Weekdays counts bookings per weekday. All seven weekdays are present,
// Monday to Sunday.
func Weekdays(bookings []models.Booking) [7]WeekdayFrequency {
	counts := make(map[time.Weekday]int)
	for _, b := range bookings {
		counts[b.Date.Weekday()]++
	}

	var out [7]WeekdayFrequency
	for i, wd := range weekOrder {
		out[i] = WeekdayFrequency{
			Weekday: wd,
			Label:   weekdayLabels[wd],
			Count:   counts[wd],
		}
	}
	return out
}
