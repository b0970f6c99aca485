package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a single day of freelance work
type Booking struct {
	Date   time.Time           `json:"date"` // Calendar date, midnight UTC
	Studio string              `json:"studio"`
	Type   string              `json:"type"`
	Rate   decimal.Decimal     `json:"rate"`
	WFH    decimal.NullDecimal `json:"wfh"` // 1 = home, 0 = on-site; not Valid when the cell was empty
}

// WorkedFromHome reports whether the WFH flag is exactly 1
func (b Booking) WorkedFromHome() bool {
	return b.WFH.Valid && b.WFH.Decimal.Equal(decimal.NewFromInt(1))
}

// OnSite reports whether the WFH flag is exactly 0
func (b Booking) OnSite() bool {
	return b.WFH.Valid && b.WFH.Decimal.IsZero()
}
