package planilla

// PlannedValues apportions the budget of every scheduled item over the periods
// of axis, pro rata of the days of its activity window falling in each period.
// The result is indexed by period-1.
//
// Items without a schedule contribute nothing. A window that overflows the
// axis leaks its remainder outside: the planned value is a baseline, not a
// partition of the contract amount.
func PlannedValues(items []LineItem, axis PeriodAxis) []Money {
	planned := make([]Money, axis.Count)
	for _, it := range items {
		window, ok := it.Schedule()
		if !ok {
			continue
		}
		duration := window.Len()
		if duration <= 0 {
			continue
		}
		budget := it.Budget()
		for p := range axis.Periods() {
			overlap := window.Overlap(axis.Range(p))
			if overlap == 0 {
				continue
			}
			// multiplying before dividing keeps a full window exact.
			planned[p-1] = planned[p-1].Add(budget.Prorate(overlap, duration))
		}
	}
	return planned
}
