package planilla

import (
	"testing"
	"time"

	"github.com/etnz/planilla/date"
)

func TestMilestoneStatuses(t *testing.T) {
	cfg := Resolve(MasterData{StartDate: day(2025, time.July, 3), OriginalDuration: 290, OriginalAmount: BOB(100000)}, nil)

	testCases := []struct {
		name  string
		today date.Date
		want  []MilestoneState
	}{
		{"first due today", day(2025, time.November, 6), []MilestoneState{MilestoneAlert, MilestonePending, MilestonePending}},
		{"first passed", day(2026, time.January, 15), []MilestoneState{MilestoneDone, MilestoneWarning, MilestonePending}},
		{"second close", day(2026, time.February, 20), []MilestoneState{MilestoneDone, MilestoneAlert, MilestonePending}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MilestoneStatuses(cfg, DefaultMilestones, tc.today)
			if len(got) != len(tc.want) {
				t.Fatalf("len(MilestoneStatuses()) = %d, want %d", len(got), len(tc.want))
			}
			for i, s := range got {
				if s.State != tc.want[i] {
					t.Errorf("milestone %d state = %s, want %s (%d days remaining)", s.ID, s.State, tc.want[i], s.DaysRemaining)
				}
			}
		})
	}

	got := MilestoneStatuses(cfg, DefaultMilestones, day(2025, time.November, 6))
	if got[0].DaysRemaining != 0 {
		t.Errorf("DaysRemaining = %d, want 0", got[0].DaysRemaining)
	}
	if !got[0].Target.Equal(BOB(12500)) {
		t.Errorf("Target = %v, want 12500", got[0].Target)
	}
	if want := day(2025, time.November, 6); got[0].DueDate != want {
		t.Errorf("DueDate = %v, want %v", got[0].DueDate, want)
	}
}

func TestConfig_DaysElapsed(t *testing.T) {
	if got := (Config{}).DaysElapsed(day(2025, time.July, 3)); got != 0 {
		t.Errorf("DaysElapsed() without start = %d, want 0", got)
	}
}
