package planilla

import "slices"

// Penalty is a deduction applied to the liquid payable of one period.
type Penalty struct {
	Period int    `json:"period"`
	Amount Money  `json:"amount"`
	Reason string `json:"reason"`
}

// Penalties is the set of registered penalties, at most one per period, in
// registration order.
type Penalties []Penalty

// Register returns a copy of ps where p replaces any penalty registered for
// the same period. Value and reason are fully replaced, never accumulated.
func (ps Penalties) Register(p Penalty) Penalties {
	out := slices.Clone(ps)
	for i, q := range out {
		if q.Period == p.Period {
			out[i] = p
			return out
		}
	}
	return append(out, p)
}

// Remove returns a copy of ps without the penalty for period.
func (ps Penalties) Remove(period int) Penalties {
	return slices.DeleteFunc(slices.Clone(ps), func(p Penalty) bool { return p.Period == period })
}

// For returns the penalty registered for period. When the set was built by
// hand with duplicates, the last one wins.
func (ps Penalties) For(period int) (Penalty, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Period == period {
			return ps[i], true
		}
	}
	return Penalty{}, false
}
