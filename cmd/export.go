package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planilla/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "export the ledger, modules and items as an XLSX workbook"
}
func (*exportCmd) Usage() string {
	return `pln export [-o <file>]

  Write the report as an XLSX workbook with one sheet for the ledger, the
  modules, the items and the contract.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "planilla.xlsx", "output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	b, err := export.Workbook(r)
	if err != nil {
		return fail(fmt.Errorf("rendering workbook: %w", err))
	}
	if err := os.WriteFile(c.output, b, 0o644); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Workbook written to %s\n", c.output)
	return subcommands.ExitSuccess
}
