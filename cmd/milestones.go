package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type milestonesCmd struct {
	date string
}

func (*milestonesCmd) Name() string     { return "milestones" }
func (*milestonesCmd) Synopsis() string { return "display the control of the contract milestones" }
func (*milestonesCmd) Usage() string {
	return `pln milestones [-d <date>]

  Display the financial milestones of the contract with their due date and
  state at a given day.
`
}

func (c *milestonesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day of the control (YYYY-MM-DD). Defaults to today.")
}

func (c *milestonesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := date.Today()
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		today = d
	}
	p, err := loadProject()
	if err != nil {
		return fail(err)
	}
	cfg := planilla.Resolve(p.Master, p.Modifications)
	statuses := planilla.MilestoneStatuses(cfg, p.Milestones, today)
	printMarkdown(renderer.MilestonesMarkdown(statuses, cfg.DaysElapsed(today)))
	return subcommands.ExitSuccess
}
