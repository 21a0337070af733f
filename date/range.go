package date

import (
	"iter"
)

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) Range {
	return Range{From: d.FirstOfMonth(), To: d.LastOfMonth()}
}

// Between returns the range from 'from' to 'to'. If 'from' is after 'to', they are swapped.
func Between(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Len returns the number of days in the range, boundaries included. An
// inverted range has a zero or negative length.
func (r Range) Len() int { return r.To.DaysSince(r.From) + 1 }

// Overlap returns the number of days r and o have in common, boundaries
// included, or 0 if they are disjoint.
func (r Range) Overlap(o Range) int {
	days := Range{From: Max(r.From, o.From), To: Min(r.To, o.To)}.Len()
	if days < 0 {
		return 0
	}
	return days
}

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// IsMonth reports whether the range spans exactly one calendar month.
func (r Range) IsMonth() bool { return r.From.Day() == 1 && r.From.LastOfMonth() == r.To }

// Identifier compute a unique identifier for the Range: "2006-01" for a
// calendar month, "from_to" otherwise.
func (r Range) Identifier() string {
	if r.IsMonth() {
		return r.From.Format("2006-01")
	}
	return r.From.String() + "_" + r.To.String()
}

// String returns the range as "from..to".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
