package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/jgoulah/freelancestats/internal/report"
)

// Dashboard writes every section of the report to w
func Dashboard(w io.Writer, b report.Bundle, opts Options) error {
	s := newStyles(w, opts.Color)
	cur := opts.currency()
	width := opts.barWidth()
	sum := b.Summary

	blocks := []string{
		s.title.Render(sum.TaxYear + " Freelance Year Overview"),
		fmt.Sprintf("Gross Profit : %s\nNet Profit estimate (after deducing 20%% Tax): %s",
			Money(cur, sum.Gross), Money(cur, sum.Net)),
		daysWorked(s, b, width),
		topRuns(s, b.TopRuns),
		monthly(s, b.Monthly, cur),
		workTypes(s, b.WorkTypes),
		studios(s, b.Studios, sum.DaysWorked),
		daysOfMonth(s, b.DayFrequency, width),
		weekdays(s, b.WeekdayFrequency, width),
		workLocations(s, sum, width),
	}
	return write(w, blocks)
}

func daysWorked(s styles, b report.Bundle, width int) string {
	sum := b.Summary
	longest, second := b.Longest.Longest, b.Longest.Second

	secondStudio := "-"
	if b.Longest.HasSecond {
		secondStudio = second.Studio
	}

	scale := max(sum.BusinessDays, sum.DaysWorked)
	rows := [][]string{
		{"Business Days.", strconv.Itoa(sum.BusinessDays), bar(sum.BusinessDays, scale, width)},
		{"Days Worked.", strconv.Itoa(sum.DaysWorked), bar(sum.DaysWorked, scale, width)},
		{"Longest single consecutive booking. Studio: " + longest.Studio, strconv.Itoa(longest.Days), bar(longest.Days, scale, width)},
		{"Second longest. Studio: " + secondStudio, strconv.Itoa(second.Days), bar(second.Days, scale, width)},
	}

	return s.section.Render("Days worked in the "+sum.TaxYear+" Tax Year.") + "\n" +
		s.newTable([]string{"", "Days", ""}, rows, 1)
}

func topRuns(s styles, runs []report.ConsecutiveRun) string {
	rows := make([][]string, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Studio,
			r.Type,
			strconv.Itoa(r.Days),
			r.Start.Format("02/01/2006"),
			r.End.Format("02/01/2006"),
		})
	}

	title := fmt.Sprintf("%d Studios with longest consecutive bookings in Days.", len(runs))
	return s.section.Render(title) + "\n" +
		s.newTable([]string{"#", "Studio", "Type", "Days", "From", "To"}, rows, 0, 3)
}

func monthly(s styles, buckets []report.MonthlyBucket, cur string) string {
	rows := make([][]string, 0, len(buckets))
	for _, m := range buckets {
		rows = append(rows, []string{
			m.Month.Format("01/2006"),
			Money(cur, m.Total),
			strconv.Itoa(m.Days),
		})
	}

	return s.section.Render("Monthly profits in given currency.") + "\n" +
		s.newTable([]string{"Month", "Profit", "Days"}, rows, 1, 2)
}

func workTypes(s styles, types []report.TypeCount) string {
	total := 0
	for _, t := range types {
		total += t.Count
	}

	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{t.Type, strconv.Itoa(t.Count), percent(t.Count, total)})
	}

	return s.section.Render("Work Type Overview.") + "\n" +
		s.newTable([]string{"Type", "Days", "Share"}, rows, 1, 2)
}

func studios(s styles, totals []report.StudioTotal, daysWorked int) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		name := t.Studio
		if t.IsOther() {
			name = `"` + report.OtherStudio + `"`
		}
		rows = append(rows, []string{name, strconv.Itoa(t.Days), percent(t.Days, daysWorked)})
	}

	out := s.section.Render("Amount of bookings in days for each Studio.") + "\n" +
		s.newTable([]string{"Studio", "Days", "Share"}, rows, 1, 2)

	members := report.OtherMembers(totals)
	if len(members) == 0 {
		return out
	}

	memberRows := make([][]string, 0, len(members))
	for _, m := range members {
		memberRows = append(memberRows, []string{m.Studio, strconv.Itoa(m.Days)})
	}
	return out + "\n" + s.muted.Render(`"Other" Category of shortest bookings:`) + "\n" +
		s.newTable([]string{"Studio", "Days"}, memberRows, 1)
}

func daysOfMonth(s styles, days []report.DayFrequency, width int) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Count)
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{humanize.Ordinal(d.Day), strconv.Itoa(d.Count), bar(d.Count, peak, width)})
	}

	return s.section.Render("Frequency of bookings for each day of the month.") + "\n" +
		s.newTable([]string{"Date", "Frequency", ""}, rows, 0, 1)
}

func weekdays(s styles, days [7]report.WeekdayFrequency, width int) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Count)
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{d.Label, strconv.Itoa(d.Count), bar(d.Count, peak, width)})
	}

	return s.section.Render("Frequency of bookings for each day of the Week.") + "\n" +
		s.newTable([]string{"Day of the Week", "Frequency", ""}, rows, 1)
}

func workLocations(s styles, sum report.Summary, width int) string {
	scale := max(sum.DaysFromHome, sum.DaysOnSite)
	rows := [][]string{
		{"Worked from Home.", strconv.Itoa(sum.DaysFromHome), bar(sum.DaysFromHome, scale, width)},
		{"Worked On-Site.", strconv.Itoa(sum.DaysOnSite), bar(sum.DaysOnSite, scale, width)},
	}

	return s.section.Render("Days worked from Home in the "+sum.TaxYear+" Tax Year.") + "\n" +
		s.newTable([]string{"", "Days", ""}, rows, 1)
}
