package planilla

import (
	"errors"
	"testing"
	"time"
)

func TestInput_Key(t *testing.T) {
	base := testInput()
	key := base.Key()
	if key != testInput().Key() {
		t.Fatalf("Key() is not deterministic")
	}

	testCases := []struct {
		name   string
		change func(in *Input)
	}{
		{"item quantity", func(in *Input) { in.Items[0].Executed = periods(0.5) }},
		{"sub cent price", func(in *Input) { in.Items[1].UnitPrice = BOB(5000.001) }},
		{"master", func(in *Input) { in.Master.AdvancePercent = 10 }},
		{"modification", func(in *Input) {
			in.Modifications = []Modification{{ID: "CM-1", Name: "CM", Amount: BOB(1), Active: true}}
		}},
		{"penalty", func(in *Input) { in.Penalties = Penalties{{Period: 1, Amount: BOB(1), Reason: "x"}} }},
		{"origin", func(in *Input) { in.Origin = day(2025, time.July, 1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := testInput()
			tc.change(&in)
			if in.Key() == key {
				t.Errorf("Key() did not change")
			}
		})
	}
}

func TestInput_KeyCurrency(t *testing.T) {
	testCases := []struct {
		name   string
		change func(in *Input, m Money)
	}{
		{"original amount", func(in *Input, m Money) { in.Master.OriginalAmount = m }},
		{"advance", func(in *Input, m Money) { in.Master.AdvanceAmount = m }},
		{"item price", func(in *Input, m Money) { in.Items[0].UnitPrice = m }},
		{"modification", func(in *Input, m Money) {
			in.Modifications = []Modification{{ID: "CM-1", Name: "CM", Amount: m, Active: true}}
		}},
		{"penalty", func(in *Input, m Money) { in.Penalties = Penalties{{Period: 1, Amount: m, Reason: "x"}} }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bob, weak := testInput(), testInput()
			tc.change(&bob, BOB(1))
			tc.change(&weak, NO(1))
			if bob.Key() == weak.Key() {
				t.Errorf("Key() ignores the currency")
			}
		})
	}
}

func TestCache(t *testing.T) {
	c := NewCache(2)
	in := testInput()
	r1, err := c.Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := c.Compute(testInput())
	if r1 != r2 {
		t.Errorf("same input should hit the cache")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits %d misses, want 1 and 1", hits, misses)
	}

	for _, pct := range []Percent{10, 15, 25} {
		in := testInput()
		in.Master.AdvancePercent = pct
		if _, err := c.Compute(in); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if r3, _ := c.Compute(in); r3 == r1 {
		t.Errorf("oldest entry should have been evicted")
	}

	if _, err := c.Compute(Input{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Compute(empty) error = %v, want ErrNoData", err)
	}
}
