package planilla

import (
	"fmt"
	"iter"
	"time"

	"github.com/etnz/planilla/date"
)

// DefaultOrigin is the first day of period 1 when none is configured.
var DefaultOrigin = date.New(2025, time.August, 1)

var monthAbbr = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// PeriodAxis maps certification periods 1..Count to calendar months, period 1
// being the month of Origin.
//
// The axis does not depend on the contract start date: periods are calendar
// months from a configured origin.
type PeriodAxis struct {
	Origin date.Date `json:"origin"`
	Count  int       `json:"count"`
}

// NewPeriodAxis builds the axis for items. The count is the highest period
// index carried by the items, and 1 when they carry none: a period nobody
// executed in is still a period. An empty item set yields an empty axis.
func NewPeriodAxis(origin date.Date, items []LineItem) PeriodAxis {
	if origin.IsZero() {
		origin = DefaultOrigin
	}
	axis := PeriodAxis{Origin: origin.FirstOfMonth()}
	if len(items) == 0 {
		return axis
	}
	axis.Count = 1
	for _, it := range items {
		for p := range it.Executed {
			axis.Count = max(axis.Count, p)
		}
	}
	return axis
}

// Contains reports whether period belongs to the axis.
func (a PeriodAxis) Contains(period int) bool { return period >= 1 && period <= a.Count }

// Periods iterates over the period indices.
func (a PeriodAxis) Periods() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= a.Count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Range returns the calendar month of period.
func (a PeriodAxis) Range(period int) date.Range {
	return date.MonthOf(a.Origin.AddMonth(period - 1))
}

// Label returns the short label of period, e.g. "ago 25".
func (a PeriodAxis) Label(period int) string {
	d := a.Range(period).From
	return fmt.Sprintf("%s %02d", monthAbbr[d.Month()-1], d.Year()%100)
}

// Code returns the code of period, e.g. "P1".
func (a PeriodAxis) Code(period int) string { return fmt.Sprintf("P%d", period) }

// FullLabel returns the certificate title of period, e.g. "Planilla 1 (ago 25)".
func (a PeriodAxis) FullLabel(period int) string {
	return fmt.Sprintf("Planilla %d (%s)", period, a.Label(period))
}
