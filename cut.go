package planilla

// Cut is the state of the contract at a selected period.
type Cut struct {
	Entry LedgerEntry `json:"entry"`

	TotalAmount Money `json:"totalAmount"`
	PaidWithAdv Money `json:"totalPaid"`       // advance included
	PaidLiquid  Money `json:"totalPaidLiquid"` // certificates only
	Balance     Money `json:"balance"`         // still to be paid

	AdvanceBalance Money `json:"advanceBalance"` // advance still to be amortized
}

// Cut returns the state of the contract at the close of period. A period out
// of the axis selects the last one.
func (r *Report) Cut(period int) Cut {
	e := r.Periods[r.Clamp(period)-1]
	return Cut{
		Entry:       e,
		TotalAmount: r.Config.TotalAmount,
		PaidWithAdv: e.FinancialAccum,
		PaidLiquid:  e.FinancialAccumNoAdv,
		Balance:     r.Config.TotalAmount.Sub(e.FinancialAccum),

		AdvanceBalance: r.Advance.Sub(e.AmortizationAccum),
	}
}
