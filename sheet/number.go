package sheet

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// numberPrefix is the leading number of a cleaned cell, anything after it is
// ignored.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads a number as typed in a Bolivian spreadsheet: "Bs 1.234,50",
// "$1,234.50", "1234,5" or "1,234,567". Currency marks and spaces are dropped.
// When both separators are present the last one is the decimal separator. A
// single comma is a decimal separator, repeated commas are thousands
// separators. Anything unreadable is 0.
func ParseNumber(s string) decimal.Decimal {
	s = strings.Map(func(r rune) rune {
		if r == 'B' || r == 's' || r == '$' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(numberPrefix.FindString(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
