package planilla

import (
	"maps"
	"slices"

	"github.com/etnz/planilla/date"
)

// LineItem is one budgeted activity of the contract.
//
// Executed maps a period index (1-based) to the quantity certified in that
// period. A missing period means nothing was executed.
type LineItem struct {
	Module      string           `json:"modulo"`
	Code        string           `json:"item"`
	Description string           `json:"actividad"`
	Unit        string           `json:"unidad"`
	Start       date.Date        `json:"fecha_inicio"`
	End         date.Date        `json:"fecha_fin"`
	OriginalQty Quantity         `json:"cantidad_original"`
	CurrentQty  Quantity         `json:"cantidad_vigente"`
	UnitPrice   Money            `json:"precio_unitario"`
	Executed    map[int]Quantity `json:"periodos,omitempty"`
}

// Budget returns the value of the item at its current quantity.
func (it LineItem) Budget() Money { return it.UnitPrice.Mul(it.CurrentQty) }

// ExecutedIn returns the quantity executed in period.
func (it LineItem) ExecutedIn(period int) Quantity { return it.Executed[period] }

// AmountIn returns the value executed in period.
func (it LineItem) AmountIn(period int) Money { return it.UnitPrice.Mul(it.Executed[period]) }

// Schedule returns the activity window, false when a date is missing.
func (it LineItem) Schedule() (date.Range, bool) {
	if it.Start.IsZero() || it.End.IsZero() {
		return date.Range{}, false
	}
	return date.Range{From: it.Start, To: it.End}, true
}

// Periods returns the period indices the item carries, in increasing order.
func (it LineItem) Periods() []int {
	return slices.Sorted(maps.Keys(it.Executed))
}
