package render

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jgoulah/freelancestats/pkg/models"
)

// Bookings writes the bookings as a table followed by their totals
func Bookings(w io.Writer, bookings []models.Booking, opts Options) error {
	s := newStyles(w, opts.Color)
	cur := opts.currency()

	total := decimal.Zero
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		wfh := ""
		if b.WFH.Valid {
			wfh = b.WFH.Decimal.String()
		}
		rows = append(rows, []string{
			b.Date.Format("2006-01-02"),
			b.Date.Weekday().String()[:3],
			b.Studio,
			b.Type,
			Money(cur, b.Rate),
			wfh,
		})
		total = total.Add(b.Rate)
	}

	return write(w, []string{
		s.newTable([]string{"Date", "Day", "Studio", "Type", "Rate", "WFH"}, rows, 4, 5),
		fmt.Sprintf("Total: %s (%d bookings)", Money(cur, total), len(bookings)),
	})
}
