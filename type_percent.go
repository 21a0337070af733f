package planilla

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Index is a performance index such as SPI or CPI: 1 is on plan, below 1 is
// behind schedule or over cost.
type Index float64

func (i Index) String() string { return fmt.Sprintf("%.2f", i) }

// Behind reports whether the index signals a delay or an overrun.
func (i Index) Behind() bool { return i < 1 }
