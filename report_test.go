package planilla

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// testItems is a small road: 4 items over 3 periods for a budget of 100000.
func testItems() []LineItem {
	return []LineItem{
		{Module: "M1 - Faenas", Code: "1", Description: "Instalación de faenas", Unit: "GLB", Start: day(2025, time.August, 1), End: day(2025, time.August, 31), CurrentQty: Q(1), UnitPrice: BOB(10000), Executed: periods(1)},
		{Module: "m1 -  faenas ", Code: "2", Description: "Letrero de obra", Unit: "PZA", Start: day(2025, time.August, 1), End: day(2025, time.August, 10), CurrentQty: Q(2), UnitPrice: BOB(5000), Executed: periods(2)},
		{Module: "M2 - Movimiento de tierras", Code: "3", Description: "Excavación", Unit: "M3", Start: day(2025, time.August, 15), End: day(2025, time.October, 15), CurrentQty: Q(1000), UnitPrice: BOB(50), Executed: periods(200, 300, 100)},
		{Module: "", Code: "4", Description: "Limpieza", Unit: "GLB", CurrentQty: Q(1), UnitPrice: BOB(30000), Executed: periods(0, 0, 1)},
	}
}

func testInput() Input {
	return Input{Items: testItems(), Master: testMaster()}
}

func mustCompute(t *testing.T, in Input) *Report {
	t.Helper()
	r, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return r
}

func TestCompute_NoData(t *testing.T) {
	r, err := Compute(Input{Master: testMaster()})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Compute() error = %v, want ErrNoData", err)
	}
	if r != nil {
		t.Errorf("Compute() = %v, want nil report", r)
	}
}

func TestCompute_SingleItem(t *testing.T) {
	in := Input{
		Items: []LineItem{{Code: "1", CurrentQty: Q(1000), UnitPrice: BOB(10), Executed: periods(1000)}},
		Master: MasterData{
			Currency:       "BOB",
			OriginalAmount: BOB(10000),
			AdvanceAmount:  BOB(2000),
			AdvancePercent: 20,
		},
	}
	r := mustCompute(t, in)
	if len(r.Periods) != 1 {
		t.Fatalf("len(Periods) = %d, want 1", len(r.Periods))
	}
	e := r.Periods[0]
	checks := []struct {
		name      string
		got, want Money
	}{
		{"PhysicalPartial", e.PhysicalPartial, BOB(10000)},
		{"Amortization", e.Amortization, BOB(2000)},
		{"Penalty", e.Penalty, BOB(0)},
		{"LiquidPayable", e.LiquidPayable, BOB(8000)},
		{"FinancialAccum", e.FinancialAccum, BOB(10000)},
		{"FinancialAccumNoAdv", e.FinancialAccumNoAdv, BOB(8000)},
		{"PlannedPartial", e.PlannedPartial, BOB(0)},
	}
	for _, c := range checks {
		if !sameMoney(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !e.PhysicalProgress.Equal(100) {
		t.Errorf("PhysicalProgress = %v, want 100%%", e.PhysicalProgress)
	}
	if !e.CollectedPeriod.Equal(80) {
		t.Errorf("CollectedPeriod = %v, want 80%%", e.CollectedPeriod)
	}
	// nothing was planned: on schedule by convention
	if e.SPI != 1 || e.PeriodSPI != 1 {
		t.Errorf("SPI = %v, PeriodSPI = %v, want 1", e.SPI, e.PeriodSPI)
	}
	if e.CPI != 1 {
		t.Errorf("CPI = %v, want 1", e.CPI)
	}
}

func TestCompute_Ledger(t *testing.T) {
	r := mustCompute(t, testInput())
	if len(r.Periods) != 3 {
		t.Fatalf("len(Periods) = %d, want 3", len(r.Periods))
	}
	want := []struct {
		physical, planned, plannedAccum float64
	}{
		// august: faenas 10000 + letrero 10000 + 17/62 of 50000
		{30000, 20000 + 50000.0*17/62, 20000 + 50000.0*17/62},
		{15000, 50000.0 * 30 / 62, 20000 + 50000.0*47/62},
		{35000, 50000.0 * 15 / 62, 70000},
	}
	for i, w := range want {
		e := r.Periods[i]
		if !sameMoney(e.PhysicalPartial, BOB(w.physical)) {
			t.Errorf("P%d PhysicalPartial = %v, want %v", i+1, e.PhysicalPartial, w.physical)
		}
		if got := e.PlannedPartial.AsFloat(); !Percent(got).Equal(Percent(w.planned)) {
			t.Errorf("P%d PlannedPartial = %v, want %v", i+1, got, w.planned)
		}
		if got := e.PlannedAccum.AsFloat(); !Percent(got).Equal(Percent(w.plannedAccum)) {
			t.Errorf("P%d PlannedAccum = %v, want %v", i+1, got, w.plannedAccum)
		}
	}
	if got := r.Last().PhysicalAccum; !sameMoney(got, BOB(80000)) {
		t.Errorf("last PhysicalAccum = %v, want 80000", got)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	r := mustCompute(t, testInput())
	for i := 1; i < len(r.Periods); i++ {
		prev, cur := r.Periods[i-1], r.Periods[i]
		if cur.PhysicalAccum.LessThan(prev.PhysicalAccum) {
			t.Errorf("PhysicalAccum decreases from P%d to P%d", i, i+1)
		}
		if cur.PlannedAccum.LessThan(prev.PlannedAccum) {
			t.Errorf("PlannedAccum decreases from P%d to P%d", i, i+1)
		}
		if cur.AmortizationAccum.LessThan(prev.AmortizationAccum) {
			t.Errorf("AmortizationAccum decreases from P%d to P%d", i, i+1)
		}
	}
}

func TestCompute_PlannedAccumCapped(t *testing.T) {
	in := testInput()
	// the contract amount is below the sum of the budgets
	in.Master.OriginalAmount = BOB(25000)
	r := mustCompute(t, in)
	for _, e := range r.Periods {
		if e.PlannedAccum.GreaterThan(r.Config.TotalAmount) {
			t.Errorf("%s PlannedAccum = %v exceeds the total %v", e.Code, e.PlannedAccum, r.Config.TotalAmount)
		}
	}
	if !sameMoney(r.Periods[0].PlannedAccum, BOB(25000)) {
		t.Errorf("P1 PlannedAccum = %v, want 25000", r.Periods[0].PlannedAccum)
	}
	// the capped value carries forward
	if !sameMoney(r.Periods[1].PlannedAccum, BOB(25000)) {
		t.Errorf("P2 PlannedAccum = %v, want 25000", r.Periods[1].PlannedAccum)
	}
}

func TestCompute_FinancialAdvanceGap(t *testing.T) {
	in := testInput()
	in.Penalties = Penalties{{Period: 2, Amount: BOB(500), Reason: "atraso"}}
	r := mustCompute(t, in)
	sum := BOB(0)
	for _, e := range r.Periods {
		sum = sum.Add(e.LiquidPayable)
		if !sameMoney(e.FinancialAccumNoAdv, sum) {
			t.Errorf("%s FinancialAccumNoAdv = %v, want %v", e.Code, e.FinancialAccumNoAdv, sum)
		}
		if gap := e.FinancialAccum.Sub(e.FinancialAccumNoAdv); !sameMoney(gap, r.Advance) {
			t.Errorf("%s with and without advance differ by %v, want %v", e.Code, gap, r.Advance)
		}
	}
}

func TestCompute_Penalties(t *testing.T) {
	in := testInput()
	in.Penalties = Penalties{}.
		Register(Penalty{Period: 2, Amount: BOB(100), Reason: "first"}).
		Register(Penalty{Period: 2, Amount: BOB(20000), Reason: "second"}).
		Register(Penalty{Period: 9, Amount: BOB(1), Reason: "out of the axis"})
	r := mustCompute(t, in)

	if len(r.Periods) != 3 {
		t.Errorf("len(Periods) = %d, an unknown penalty period must not extend the axis", len(r.Periods))
	}
	e := r.Periods[1]
	if !sameMoney(e.Penalty, BOB(20000)) || e.PenaltyReason != "second" {
		t.Errorf("P2 penalty = %v %q, want 20000 %q", e.Penalty, e.PenaltyReason, "second")
	}
	// 15000 - 3000 - 20000: negative and not clamped
	if !sameMoney(e.LiquidPayable, BOB(-8000)) {
		t.Errorf("P2 LiquidPayable = %v, want -8000", e.LiquidPayable)
	}
	if !r.Periods[0].Penalty.IsZero() || r.Periods[0].PenaltyReason != "" {
		t.Errorf("P1 penalty = %v %q, want none", r.Periods[0].Penalty, r.Periods[0].PenaltyReason)
	}
}

func TestCompute_NoActiveModification(t *testing.T) {
	in := testInput()
	in.Modifications = []Modification{{ID: "OC-1", Name: "x", Days: 30, Amount: BOB(5000), Active: false}}
	r := mustCompute(t, in)
	if !r.Config.TotalAmount.Equal(in.Master.OriginalAmount) {
		t.Errorf("TotalAmount = %v, want %v", r.Config.TotalAmount, in.Master.OriginalAmount)
	}
	if r.Config.TotalDays != in.Master.OriginalDuration {
		t.Errorf("TotalDays = %d, want %d", r.Config.TotalDays, in.Master.OriginalDuration)
	}
}

func TestCompute_ToggleTwice(t *testing.T) {
	in := testInput()
	in.Modifications = []Modification{{ID: "CM-1", Name: "CM", Type: Amendment, Days: 30, Amount: BOB(50000), Active: true}}
	want := mustCompute(t, in)

	in.Modifications[0].Active = false
	off := mustCompute(t, in)
	if sameMoney(off.Config.TotalAmount, want.Config.TotalAmount) {
		t.Errorf("disabling the modification did not change the total amount")
	}

	in.Modifications[0].Active = true
	got := mustCompute(t, in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toggling twice changed the report (-want +got):\n%s", diff)
	}
}

func TestCompute_Modules(t *testing.T) {
	r := mustCompute(t, testInput())
	wantNames := []string{"M1 - FAENAS", "M2 - MOVIMIENTO DE TIERRAS", DefaultModule}
	if len(r.Modules) != len(wantNames) {
		t.Fatalf("len(Modules) = %d, want %d: %v", len(r.Modules), len(wantNames), r.Modules)
	}
	var incidence Percent
	for i, m := range r.Modules {
		if m.Name != wantNames[i] {
			t.Errorf("Modules[%d].Name = %q, want %q", i, m.Name, wantNames[i])
		}
		incidence += m.Incidence
	}
	if !incidence.Equal(100) {
		t.Errorf("sum of incidences = %v, want 100%%", incidence)
	}
	m1 := r.Modules[0]
	if !sameMoney(m1.Budget, BOB(20000)) || !sameMoney(m1.ExecutedAccum, BOB(20000)) || !m1.Progress.Equal(100) {
		t.Errorf("M1 = %+v, want budget 20000 fully executed", m1)
	}
	m2 := r.Modules[1]
	if !m2.Progress.Equal(60) || !m2.Incidence.Equal(50) {
		t.Errorf("M2 progress = %v incidence = %v, want 60%% and 50%%", m2.Progress, m2.Incidence)
	}
}

func TestCompute_ItemHistory(t *testing.T) {
	r := mustCompute(t, testInput())
	excavation := r.Items[2]
	if len(excavation.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(excavation.History))
	}
	h := excavation.At(2)
	if !h.QtyPartial.Equal(Q(300)) || !h.QtyAccum.Equal(Q(500)) {
		t.Errorf("P2 qty = %v / %v, want 300 / 500", h.QtyPartial, h.QtyAccum)
	}
	if !sameMoney(h.AmtPartial, BOB(15000)) || !sameMoney(h.AmtAccum, BOB(25000)) {
		t.Errorf("P2 amount = %v / %v, want 15000 / 25000", h.AmtPartial, h.AmtAccum)
	}
	// the excavation is the only item of period 2
	if !h.Incidence.Equal(100) {
		t.Errorf("P2 incidence = %v, want 100%%", h.Incidence)
	}
	if got := excavation.At(1).Incidence; !got.Equal(Percent(100.0 / 3)) {
		t.Errorf("P1 incidence = %v, want 33.33%%", got)
	}
	if got := excavation.Progress(3); !got.Equal(60) {
		t.Errorf("Progress(3) = %v, want 60%%", got)
	}
	if got := excavation.At(7); !got.QtyAccum.IsZero() {
		t.Errorf("At(7) = %+v, want zero entry", got)
	}

	var codes []string
	for _, it := range r.ItemsIn(1) {
		codes = append(codes, it.Code)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, codes); diff != "" {
		t.Errorf("ItemsIn(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_Period(t *testing.T) {
	r := mustCompute(t, testInput())
	if _, ok := r.Period(0); ok {
		t.Errorf("Period(0) should not exist")
	}
	if e, ok := r.Period(3); !ok || e.Code != "P3" {
		t.Errorf("Period(3) = %v, %v", e.Code, ok)
	}
	if got := r.Clamp(12); got != 3 {
		t.Errorf("Clamp(12) = %d, want 3", got)
	}
}

func TestCompute_CurrencyMismatch(t *testing.T) {
	in := testInput()
	in.Master.Currency = "USD"
	if _, err := Compute(in); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Compute(USD contract, BOB items) error = %v, want ErrCurrencyMismatch", err)
	}

	in = testInput()
	in.Penalties = Penalties{{Period: 1, Amount: M(10, "USD"), Reason: "x"}}
	if _, err := Compute(in); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Compute(USD penalty) error = %v, want ErrCurrencyMismatch", err)
	}

	// amounts without currency take any.
	in = testInput()
	in.Penalties = Penalties{{Period: 1, Amount: NO(10), Reason: "x"}}
	in.Modifications = []Modification{{ID: "OC-1", Name: "OC", Type: ChangeOrder, Amount: NO(100), Active: true}}
	if cur, err := in.Currency(); err != nil || cur != "BOB" {
		t.Errorf("Currency() = %q, %v, want BOB", cur, err)
	}
	mustCompute(t, in)
}

func TestCompute_SparsePeriods(t *testing.T) {
	in := Input{
		Master: testMaster(),
		Items: []LineItem{
			{Module: "M1", Code: "A", CurrentQty: Q(10), UnitPrice: BOB(100), Executed: map[int]Quantity{1: Q(5)}},
			{Module: "M1", Code: "B", CurrentQty: Q(10), UnitPrice: BOB(100), Executed: map[int]Quantity{3: Q(5)}},
		},
	}
	r := mustCompute(t, in)
	if r.Axis.Count != 3 || len(r.Periods) != 3 {
		t.Fatalf("Axis.Count = %d, len(Periods) = %d, want 3", r.Axis.Count, len(r.Periods))
	}
	if !r.Periods[1].PhysicalPartial.IsZero() {
		t.Errorf("P2 PhysicalPartial = %v, want 0", r.Periods[1].PhysicalPartial)
	}
	if got := r.Last().PhysicalAccum; !sameMoney(got, BOB(1000)) {
		t.Errorf("last PhysicalAccum = %v, want 1000", got)
	}
	if got := r.Modules[0].ExecutedAccum; !sameMoney(got, BOB(1000)) {
		t.Errorf("M1 ExecutedAccum = %v, want 1000", got)
	}
}
