package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-05", New(2025, time.July, 5), false},
		{"2025-7-5", New(2025, time.July, 5), false},
		{" 2025-07-05 ", New(2025, time.July, 5), false},
		{"5/7/2025", New(2025, time.July, 5), false},
		{"2025-07-05T00:00:00Z", New(2025, time.July, 5), false},
		{"", Date{}, true},
		{"not a date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDaysSince(t *testing.T) {
	from := New(2025, time.July, 3)
	if got := New(2025, time.July, 3).DaysSince(from); got != 0 {
		t.Errorf("same day DaysSince = %d, want 0", got)
	}
	if got := New(2026, time.April, 19).DaysSince(from); got != 290 {
		t.Errorf("DaysSince = %d, want 290", got)
	}
	if got := New(2025, time.July, 1).DaysSince(from); got != -2 {
		t.Errorf("DaysSince = %d, want -2", got)
	}
}

func TestMonthOf(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{"A leap year", New(2024, time.February, 15), Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}},
		{"December", New(2025, time.December, 31), Range{From: New(2025, time.December, 1), To: New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthOf(tc.in); got != tc.want {
				t.Errorf("MonthOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRange_Overlap(t *testing.T) {
	august := MonthOf(New(2025, time.August, 1))
	testCases := []struct {
		name string
		in   Range
		want int
	}{
		{"inside", Between(New(2025, time.August, 10), New(2025, time.August, 12)), 3},
		{"whole month", august, 31},
		{"straddling start", Between(New(2025, time.July, 15), New(2025, time.August, 2)), 2},
		{"straddling end", Between(New(2025, time.August, 30), New(2025, time.September, 30)), 2},
		{"covering", Between(New(2025, time.July, 1), New(2025, time.October, 1)), 31},
		{"before", Between(New(2025, time.July, 1), New(2025, time.July, 31)), 0},
		{"after", Between(New(2025, time.September, 1), New(2025, time.September, 2)), 0},
		{"single day", Between(New(2025, time.August, 31), New(2025, time.August, 31)), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := august.Overlap(tc.in); got != tc.want {
				t.Errorf("Overlap() = %d, want %d", got, tc.want)
			}
			if got := tc.in.Overlap(august); got != tc.want {
				t.Errorf("reverse Overlap() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Monthly Identifier", MonthOf(New(2025, time.September, 1)), "2025-09"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
		{"Multi month", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "2025-01-01_2026-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.July, 3)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-07-03"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", got, d)
	}
	if err := got.UnmarshalJSON([]byte(`""`)); err != nil || !got.IsZero() {
		t.Errorf("empty date should decode to zero, got %v, %v", got, err)
	}
}
