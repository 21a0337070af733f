package planilla

import (
	"time"

	"github.com/etnz/planilla/date"
)

// BOB is a helper for test to create bolivianos from const
func BOB(v float64) Money { return M(v, "BOB") }

// NO is a helper for test to create money from const wit no currency set
func NO(v float64) Money { return M(v, "") }

// day is a helper for test to create a date in 2025 or 2026
func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

// periods is a helper for test to build the executed quantities from the
// quantity of periods 1, 2, ... in order.
func periods(qty ...float64) map[int]Quantity {
	ex := make(map[int]Quantity, len(qty))
	for i, q := range qty {
		ex[i+1] = Q(q)
	}
	return ex
}

// sameMoney compares values only, ignoring the weak "" currency.
func sameMoney(a, b Money) bool { return a.Decimal().Equal(b.Decimal()) }

// testMaster is a contract of 100000 for 100 days starting on 2025-08-01 with
// a 20% advance.
func testMaster() MasterData {
	return MasterData{
		Name:             "Test road",
		Currency:         "BOB",
		StartDate:        day(2025, time.August, 1),
		OriginalDuration: 100,
		OriginalAmount:   BOB(100000),
		AdvanceAmount:    BOB(20000),
		AdvancePercent:   20,
	}
}
