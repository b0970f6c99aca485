package report

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// DefaultBusinessDays is the number of working days in a tax year
const DefaultBusinessDays = 256

// taxRate is the flat deduction used for the net profit estimate
var taxRate = decimal.NewFromFloat(0.2)

// Summary holds the scalar figures of a report
type Summary struct {
	DaysWorked   int             `json:"days_worked"`
	BusinessDays int             `json:"business_days"`
	Gross        decimal.Decimal `json:"gross"`
	Net          decimal.Decimal `json:"net"`
	DaysFromHome int             `json:"days_from_home"`
	DaysOnSite   int             `json:"days_on_site"`
	TaxYear      string          `json:"tax_year"`
}

// Summarize computes profit, work-from-home counts and the tax year label
func Summarize(bookings []models.Booking, businessDays int) Summary {
	if businessDays <= 0 {
		businessDays = DefaultBusinessDays
	}

	s := Summary{
		DaysWorked:   len(bookings),
		BusinessDays: businessDays,
		Gross:        GrossProfit(bookings),
		TaxYear:      TaxYear(bookings),
	}
	s.Net = NetProfit(s.Gross)
	s.DaysFromHome, s.DaysOnSite = WorkLocations(bookings)
	return s
}

// GrossProfit sums the rate of every booking
func GrossProfit(bookings []models.Booking) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(b.Rate)
	}
	return total
}

// NetProfit deducts the flat 20% tax estimate from gross
func NetProfit(gross decimal.Decimal) decimal.Decimal {
	return gross.Sub(gross.Mul(taxRate))
}

// WorkLocations returns the summed WFH flags and the number of bookings
// whose flag is exactly 0. Flags other than 0 and 1 are not coerced, so the
// two counts need not add up to the number of bookings.
func WorkLocations(bookings []models.Booking) (fromHome, onSite int) {
	sum := decimal.Zero
	for _, b := range bookings {
		if !b.WFH.Valid {
			continue
		}
		sum = sum.Add(b.WFH.Decimal)
		if b.OnSite() {
			onSite++
		}
	}
	return int(sum.IntPart()), onSite
}

// TaxYear labels the period covered by the bookings: "2023" for one year,
// "2023-2024" for two (in the order first seen), and the earliest to latest
// year when there are more.
func TaxYear(bookings []models.Booking) string {
	var years []int
	seen := make(map[int]bool)
	for _, b := range bookings {
		y := b.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}

	switch len(years) {
	case 0:
		return ""
	case 1:
		return strconv.Itoa(years[0])
	case 2:
		return fmt.Sprintf("%d-%d", years[0], years[1])
	}

	lo, hi := years[0], years[0]
	for _, y := range years[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
