package planilla

import "github.com/etnz/planilla/date"

// Milestone is a contractual financial progress target, due a number of days
// after the contract start.
type Milestone struct {
	ID          int     `json:"id" yaml:"id"`
	Day         int     `json:"day" yaml:"day"`
	Percent     Percent `json:"percent" yaml:"percent"`
	Description string  `json:"desc" yaml:"desc"`
}

// MilestoneState is the control state of a milestone.
type MilestoneState string

const (
	MilestoneDone    MilestoneState = "done"
	MilestoneAlert   MilestoneState = "alert"   // due within 30 days
	MilestoneWarning MilestoneState = "warning" // due within 60 days
	MilestonePending MilestoneState = "pending"
)

// MilestoneStatus is a milestone as seen on a given day.
type MilestoneStatus struct {
	Milestone
	DueDate       date.Date      `json:"dueDate"`
	DaysRemaining int            `json:"daysRemaining"`
	State         MilestoneState `json:"state"`
	Target        Money          `json:"target"` // the percent of the total amount
}

// DefaultMilestones are the milestones of the contract when none is configured.
var DefaultMilestones = []Milestone{
	{ID: 1, Day: 126, Percent: 12.5, Description: "Avance Financiero 12.50%"},
	{ID: 2, Day: 251, Percent: 46, Description: "Avance Financiero 46.00%"},
	{ID: 3, Day: 380, Percent: 100, Description: "Entrega Definitiva (100%)"},
}

// DaysElapsed returns the days since the contract start at today, 0 when the
// start date is unknown.
func (c Config) DaysElapsed(today date.Date) int {
	if c.Master.StartDate.IsZero() {
		return 0
	}
	return today.DaysSince(c.Master.StartDate)
}

// MilestoneStatuses evaluates milestones at today.
func MilestoneStatuses(cfg Config, milestones []Milestone, today date.Date) []MilestoneStatus {
	elapsed := cfg.DaysElapsed(today)
	statuses := make([]MilestoneStatus, 0, len(milestones))
	for _, m := range milestones {
		remaining := m.Day - elapsed
		state := MilestonePending
		switch {
		case remaining < 0:
			state = MilestoneDone
		case remaining <= 30:
			state = MilestoneAlert
		case remaining <= 60:
			state = MilestoneWarning
		}
		var due date.Date
		if !cfg.Master.StartDate.IsZero() {
			due = cfg.Master.StartDate.Add(m.Day)
		}
		statuses = append(statuses, MilestoneStatus{
			Milestone:     m,
			DueDate:       due,
			DaysRemaining: remaining,
			State:         state,
			Target:        cfg.TotalAmount.Percent(m.Percent),
		})
	}
	return statuses
}
