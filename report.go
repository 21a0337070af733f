package planilla

import (
	"errors"
	"fmt"

	"github.com/etnz/planilla/date"
)

// ErrNoData is returned by Compute when there is no line item: there is no
// period to report on.
var ErrNoData = errors.New("no data available")

// ErrCurrencyMismatch is returned when the amounts of an input are not all in
// the same currency.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Input is the full tuple the ledger depends on.
type Input struct {
	Items         []LineItem     `json:"items"`
	Master        MasterData     `json:"master"`
	Modifications []Modification `json:"modifications"`
	Penalties     Penalties      `json:"penalties"`
	Origin        date.Date      `json:"origin"` // first day of period 1, DefaultOrigin when zero
}

// Report is the complete ledger of the contract.
type Report struct {
	Config  Config        `json:"config"`
	Axis    PeriodAxis    `json:"axis"`
	Periods []LedgerEntry `json:"monthlyData"`
	Items   []ItemReport  `json:"processedItems"`
	Modules []ModuleStat  `json:"moduleStats"`
	Advance Money         `json:"advanceAmount"`
}

// Currency returns the currency shared by every amount of in, "" when none
// carries one. Amounts without currency are compatible with any.
func (in Input) Currency() (string, error) {
	var found, what string
	check := func(c, where string) error {
		switch {
		case c == "" || c == found:
		case found == "":
			found, what = c, where
		default:
			return fmt.Errorf("%w: %s is in %s but %s is in %s", ErrCurrencyMismatch, where, c, what, found)
		}
		return nil
	}
	m := in.Master
	if err := check(m.Currency, "the contract"); err != nil {
		return "", err
	}
	if err := check(m.OriginalAmount.cur, "the original amount"); err != nil {
		return "", err
	}
	if err := check(m.AdvanceAmount.cur, "the advance"); err != nil {
		return "", err
	}
	for _, it := range in.Items {
		if err := check(it.UnitPrice.cur, fmt.Sprintf("item %q", it.Code)); err != nil {
			return "", err
		}
	}
	for _, mod := range in.Modifications {
		if err := check(mod.Amount.cur, fmt.Sprintf("modification %q", mod.ID)); err != nil {
			return "", err
		}
	}
	for _, p := range in.Penalties {
		if err := check(p.Amount.cur, fmt.Sprintf("penalty of period %d", p.Period)); err != nil {
			return "", err
		}
	}
	return found, nil
}

// Compute builds the report for in. It is deterministic and has no side
// effect. It fails with ErrNoData when there is no item, and with
// ErrCurrencyMismatch when the amounts cannot be added up.
func Compute(in Input) (*Report, error) {
	if len(in.Items) == 0 {
		return nil, ErrNoData
	}
	if _, err := in.Currency(); err != nil {
		return nil, err
	}
	cfg := Resolve(in.Master, in.Modifications)
	axis := NewPeriodAxis(in.Origin, in.Items)
	planned := PlannedValues(in.Items, axis)
	ledger := buildLedger(in.Items, cfg, axis, in.Penalties, planned)

	return &Report{
		Config:  cfg,
		Axis:    axis,
		Periods: ledger,
		Items:   itemReports(in.Items, axis, ledger),
		Modules: moduleStats(in.Items, axis, cfg.TotalAmount),
		Advance: in.Master.AdvanceAmount,
	}, nil
}

// Period returns the ledger entry of period.
func (r *Report) Period(period int) (LedgerEntry, bool) {
	if !r.Axis.Contains(period) {
		return LedgerEntry{}, false
	}
	return r.Periods[period-1], true
}

// Last returns the ledger entry of the last period.
func (r *Report) Last() LedgerEntry { return r.Periods[len(r.Periods)-1] }

// Clamp returns period, or the last period when period is out of the axis.
func (r *Report) Clamp(period int) int {
	if r.Axis.Contains(period) {
		return period
	}
	return max(r.Axis.Count, 1)
}

// ItemsIn returns the items executed in period, in input order.
func (r *Report) ItemsIn(period int) []ItemReport {
	var items []ItemReport
	for _, it := range r.Items {
		if !it.ExecutedIn(period).IsZero() {
			items = append(items, it)
		}
	}
	return items
}
