package planilla

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	master := MasterData{
		StartDate:        day(2025, time.July, 3),
		OriginalDuration: 290,
		OriginalAmount:   BOB(21360803.45),
	}
	cm1 := Modification{ID: "CM-1", Name: "Contrato Modificatorio N°1", Type: Amendment, Days: 90, Amount: BOB(2123782.08), Active: true}
	oc1 := Modification{ID: "OC-1", Name: "Orden de Cambio N°1", Type: ChangeOrder, Days: 10, Amount: BOB(1000), Active: false}

	testCases := []struct {
		name       string
		mods       []Modification
		wantAmount Money
		wantDays   int
		wantEnd    string
		wantActive bool
	}{
		{"no modification", nil, BOB(21360803.45), 290, "2026-04-19", false},
		{"inactive only", []Modification{oc1}, BOB(21360803.45), 290, "2026-04-19", false},
		{"one active", []Modification{cm1, oc1}, BOB(23484585.53), 380, "2026-07-18", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Resolve(master, tc.mods)
			if !cfg.TotalAmount.Equal(tc.wantAmount) {
				t.Errorf("TotalAmount = %v, want %v", cfg.TotalAmount, tc.wantAmount)
			}
			if cfg.TotalDays != tc.wantDays {
				t.Errorf("TotalDays = %d, want %d", cfg.TotalDays, tc.wantDays)
			}
			if got := cfg.EndDate.String(); got != tc.wantEnd {
				t.Errorf("EndDate = %s, want %s", got, tc.wantEnd)
			}
			if cfg.HasActiveMods != tc.wantActive {
				t.Errorf("HasActiveMods = %v, want %v", cfg.HasActiveMods, tc.wantActive)
			}
			if got, want := cfg.ActiveDays(), tc.wantDays-290; got != want {
				t.Errorf("ActiveDays() = %d, want %d", got, want)
			}
		})
	}
}

func TestResolve_NoStartDate(t *testing.T) {
	cfg := Resolve(MasterData{OriginalDuration: 10}, nil)
	if !cfg.EndDate.IsZero() {
		t.Errorf("EndDate = %v, want zero date", cfg.EndDate)
	}
}

func TestParseModificationType(t *testing.T) {
	testCases := []struct {
		in      string
		want    ModificationType
		wantErr bool
	}{
		{"", ChangeOrder, false},
		{"oc", ChangeOrder, false},
		{" CM ", Amendment, false},
		{"AP", TimeExtension, false},
		{"XX", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseModificationType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseModificationType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseModificationType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
