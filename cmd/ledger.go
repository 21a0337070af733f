package cmd

import (
	"context"
	"flag"

	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type ledgerCmd struct{}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the physical-financial ledger of every period" }
func (*ledgerCmd) Usage() string {
	return `pln ledger

  Display the ledger of the contract: executed, planned and paid amounts of
  every period, with the progress percentages and the SPI/CPI indices.
`
}

func (*ledgerCmd) SetFlags(f *flag.FlagSet) {}

func (*ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LedgerMarkdown(r))
	return subcommands.ExitSuccess
}
