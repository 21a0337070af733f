package planilla

import "github.com/etnz/planilla/date"

// LedgerEntry is the state of the contract at the close of one period.
// Partial fields concern the period alone, accumulated fields periods 1..Period.
type LedgerEntry struct {
	Period    int        `json:"month"`
	Code      string     `json:"period"`
	Label     string     `json:"label"`
	FullLabel string     `json:"fullLabel"`
	Range     date.Range `json:"-"`

	PhysicalPartial     Money  `json:"physicalPartial"`
	PhysicalAccum       Money  `json:"physicalAccum"`
	PlannedPartial      Money  `json:"plannedPartial"`
	PlannedAccum        Money  `json:"plannedAccum"`
	Amortization        Money  `json:"amortization"`
	AmortizationAccum   Money  `json:"amortizationAccum"`
	Penalty             Money  `json:"penalty"`
	PenaltyReason       string `json:"penaltyReason"`
	LiquidPayable       Money  `json:"liquidPartial"`
	FinancialAccum      Money  `json:"financialAccum"`
	FinancialAccumNoAdv Money  `json:"financialAccumNoAdv"`

	PhysicalProgress       Percent `json:"progressPhysical"`
	FinancialProgress      Percent `json:"progressFinancial"`
	FinancialProgressNoAdv Percent `json:"progressFinancialNoAdv"`
	CollectedPeriod        Percent `json:"percentCollectedPeriod"`

	SPI       Index `json:"spi"`
	CPI       Index `json:"cpi"`
	PeriodSPI Index `json:"spiPeriod"`
	PeriodCPI Index `json:"cpiPeriod"`
}

// buildLedger runs the periods of axis in order, threading the running totals
// from one period to the next.
func buildLedger(items []LineItem, cfg Config, axis PeriodAxis, penalties Penalties, planned []Money) []LedgerEntry {
	cur := cfg.Master.Currency
	total := cfg.TotalAmount
	advance := cfg.Master.AdvanceAmount

	var physicalAccum, liquidAccum, plannedAccum, amortizationAccum Money
	entries := make([]LedgerEntry, 0, axis.Count)
	for p := range axis.Periods() {
		physical := M(0, cur)
		for _, it := range items {
			physical = physical.Add(it.AmountIn(p))
		}
		amortization := physical.Percent(cfg.Master.AdvancePercent)
		penalty, reason := M(0, cur), ""
		if pen, ok := penalties.For(p); ok {
			penalty, reason = pen.Amount, pen.Reason
		}
		liquid := physical.Sub(amortization).Sub(penalty) // not clamped

		physicalAccum = physicalAccum.Add(physical)
		liquidAccum = liquidAccum.Add(liquid)
		amortizationAccum = amortizationAccum.Add(amortization)
		plannedAccum = plannedAccum.Add(planned[p-1]).Min(total)
		financial := advance.Add(liquidAccum)

		entries = append(entries, LedgerEntry{
			Period:    p,
			Code:      axis.Code(p),
			Label:     axis.Label(p),
			FullLabel: axis.FullLabel(p),
			Range:     axis.Range(p),

			PhysicalPartial:     physical,
			PhysicalAccum:       physicalAccum,
			PlannedPartial:      planned[p-1],
			PlannedAccum:        plannedAccum,
			Amortization:        amortization,
			AmortizationAccum:   amortizationAccum,
			Penalty:             penalty,
			PenaltyReason:       reason,
			LiquidPayable:       liquid,
			FinancialAccum:      financial,
			FinancialAccumNoAdv: liquidAccum,

			PhysicalProgress:       share(physicalAccum, total),
			FinancialProgress:      share(financial, total),
			FinancialProgressNoAdv: share(liquidAccum, total),
			CollectedPeriod:        share(liquid, total),

			SPI:       index(physicalAccum, plannedAccum),
			CPI:       index(physicalAccum, financial),
			PeriodSPI: index(physical, planned[p-1]),
			// TODO: derive the period CPI from the period cost once its
			// definition is settled with the supervision; it is reported as 1.
			PeriodCPI: 1,
		})
	}
	return entries
}
