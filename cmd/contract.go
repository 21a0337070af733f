package cmd

import (
	"context"
	"flag"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type contractCmd struct{}

func (*contractCmd) Name() string     { return "contract" }
func (*contractCmd) Synopsis() string { return "display the contract and its modifications" }
func (*contractCmd) Usage() string {
	return `pln contract

  Display the technical sheet of the contract: parties, original and current
  amount and duration, and the modifications with their state.
  It does not read the sheet.
`
}

func (*contractCmd) SetFlags(f *flag.FlagSet) {}

func (*contractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProject()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ContractMarkdown(planilla.Resolve(p.Master, p.Modifications)))
	return subcommands.ExitSuccess
}
