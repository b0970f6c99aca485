package report

import (
	"sort"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// OtherThreshold is the largest studio total merged into the Other bucket
const OtherThreshold = 4

// OtherStudio names the synthetic bucket of low-volume studios
const OtherStudio = "Other"

// TypeCount is how many bookings had a given work type
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// StudioTotal is the number of days booked at a studio. For the Other
// bucket, Members lists the merged studios and Days is their sum.
type StudioTotal struct {
	Studio  string        `json:"studio"`
	Days    int           `json:"days"`
	Members []StudioTotal `json:"members,omitempty"`
}

// IsOther reports whether t is the merged bucket
func (t StudioTotal) IsOther() bool {
	return t.Members != nil
}

// WorkTypes counts bookings per work type, most frequent first. Equal
// counts keep first-seen order. Bookings without a type are not counted.
func WorkTypes(bookings []models.Booking) []TypeCount {
	index := make(map[string]int)
	var out []TypeCount

	for _, b := range bookings {
		if b.Type == "" {
			continue
		}
		i, ok := index[b.Type]
		if !ok {
			i = len(out)
			index[b.Type] = i
			out = append(out, TypeCount{Type: b.Type})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Studios totals booked days per studio, merging studios with at most
// OtherThreshold days into one Other entry. The result is ordered by days,
// smallest first.
func Studios(bookings []models.Booking) []StudioTotal {
	days := make(map[string]int)
	for _, b := range bookings {
		days[b.Studio]++
	}

	names := make([]string, 0, len(days))
	for name := range days {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []StudioTotal
	var other []StudioTotal
	otherDays := 0
	for _, name := range names {
		t := StudioTotal{Studio: name, Days: days[name]}
		if t.Days <= OtherThreshold {
			other = append(other, t)
			otherDays += t.Days
			continue
		}
		out = append(out, t)
	}

	if len(other) > 0 {
		out = append(out, StudioTotal{Studio: OtherStudio, Days: otherDays, Members: other})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Days < out[j].Days
	})
	return out
}

// OtherMembers returns the studios merged into the Other bucket, if any
func OtherMembers(totals []StudioTotal) []StudioTotal {
	for _, t := range totals {
		if t.IsOther() {
			return t.Members
		}
	}
	return nil
}
