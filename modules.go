package planilla

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultModule groups the items that carry no module name.
const DefaultModule = "GENERAL"

var upper = cases.Upper(language.Spanish)

// ModuleName normalises a module name: surrounding and repeated inner spaces
// are dropped and letters upper-cased, so that "m1 - faenas" and
// "M1  - FAENAS " group together.
func ModuleName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return DefaultModule
	}
	return upper.String(s)
}

// ModuleStat rolls up the items of one module.
type ModuleStat struct {
	Name          string  `json:"name"`
	Budget        Money   `json:"totalBudget"`
	ExecutedAccum Money   `json:"executedAccum"`
	Incidence     Percent `json:"incidence"` // of the contract total amount
	Progress      Percent `json:"progress"`  // of the module budget
}

// ItemHistoryEntry is the execution of one item in one period.
type ItemHistoryEntry struct {
	QtyPartial Quantity `json:"qtyPartial"`
	QtyAccum   Quantity `json:"qtyAccum"`
	AmtPartial Money    `json:"amtPartial"`
	AmtAccum   Money    `json:"amtAccum"`
	Incidence  Percent  `json:"incidence"` // of the period physical amount
}

// ItemReport is a line item with its execution history, History[i] being
// period i+1.
type ItemReport struct {
	LineItem
	History []ItemHistoryEntry `json:"historial"`
}

// At returns the history entry at the close of period, the zero entry when
// period is out of the history.
func (r ItemReport) At(period int) ItemHistoryEntry {
	if period < 1 || period > len(r.History) {
		return ItemHistoryEntry{}
	}
	return r.History[period-1]
}

// Progress returns the executed share of the item budget at the close of period.
func (r ItemReport) Progress(period int) Percent {
	return share(r.At(period).AmtAccum, r.Budget())
}

// moduleStats groups items by normalised module name in order of first
// appearance.
func moduleStats(items []LineItem, axis PeriodAxis, total Money) []ModuleStat {
	var stats []ModuleStat
	pos := make(map[string]int)
	for _, it := range items {
		name := ModuleName(it.Module)
		i, ok := pos[name]
		if !ok {
			i = len(stats)
			pos[name] = i
			stats = append(stats, ModuleStat{Name: name})
		}
		s := &stats[i]
		s.Budget = s.Budget.Add(it.Budget())
		for p := range axis.Periods() {
			s.ExecutedAccum = s.ExecutedAccum.Add(it.AmountIn(p))
		}
	}
	for i := range stats {
		stats[i].Incidence = share(stats[i].Budget, total)
		stats[i].Progress = share(stats[i].ExecutedAccum, stats[i].Budget)
	}
	return stats
}

// itemReports computes every item history against the completed ledger.
func itemReports(items []LineItem, axis PeriodAxis, ledger []LedgerEntry) []ItemReport {
	reports := make([]ItemReport, 0, len(items))
	for _, it := range items {
		r := ItemReport{LineItem: it, History: make([]ItemHistoryEntry, 0, axis.Count)}
		var qtyAccum Quantity
		for p := range axis.Periods() {
			qty := it.ExecutedIn(p)
			qtyAccum = qtyAccum.Add(qty)
			amount := it.AmountIn(p)
			r.History = append(r.History, ItemHistoryEntry{
				QtyPartial: qty,
				QtyAccum:   qtyAccum,
				AmtPartial: amount,
				AmtAccum:   it.UnitPrice.Mul(qtyAccum),
				Incidence:  share(amount, ledger[p-1].PhysicalPartial),
			})
		}
		reports = append(reports, r)
	}
	return reports
}
