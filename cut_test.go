package planilla

import "testing"

func TestReport_Cut(t *testing.T) {
	r := mustCompute(t, testInput())

	testCases := []struct {
		name       string
		period     int
		wantPeriod int
	}{
		{"selected", 2, 2},
		{"too far", 10, 3},
		{"zero", 0, 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := r.Cut(tc.period)
			if c.Entry.Period != tc.wantPeriod {
				t.Errorf("Cut(%d).Entry.Period = %d, want %d", tc.period, c.Entry.Period, tc.wantPeriod)
			}
			if !sameMoney(c.PaidWithAdv, c.Entry.FinancialAccum) || !sameMoney(c.PaidLiquid, c.Entry.FinancialAccumNoAdv) {
				t.Errorf("Cut(%d) paid = %v / %v, want the entry accumulations", tc.period, c.PaidWithAdv, c.PaidLiquid)
			}
			if got := c.AdvanceBalance.Add(c.Entry.AmortizationAccum); !sameMoney(got, r.Advance) {
				t.Errorf("Cut(%d) advance balance + amortized = %v, want %v", tc.period, got, r.Advance)
			}
			if got := c.Balance.Add(c.PaidWithAdv); !sameMoney(got, r.Config.TotalAmount) {
				t.Errorf("Cut(%d) balance + paid = %v, want %v", tc.period, got, r.Config.TotalAmount)
			}
		})
	}

	// P1: 20000 advance + 30000 - 6000
	if c := r.Cut(1); !sameMoney(c.Balance, BOB(56000)) {
		t.Errorf("Cut(1).Balance = %v, want 56000", c.Balance)
	}
	// P1 amortizes 20% of 30000 executed.
	if c := r.Cut(1); !sameMoney(c.AdvanceBalance, BOB(14000)) {
		t.Errorf("Cut(1).AdvanceBalance = %v, want 14000", c.AdvanceBalance)
	}
}
