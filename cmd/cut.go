package cmd

import (
	"context"
	"flag"

	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type cutCmd struct {
	period int
}

func (*cutCmd) Name() string     { return "cut" }
func (*cutCmd) Synopsis() string { return "display the state of the contract at a period" }
func (*cutCmd) Usage() string {
	return `pln cut [-p <period>]

  Display the key figures of the contract at the close of a period: paid
  amounts, balance, performance indices and alerts.
  The last period is used when -p is omitted or out of range.
`
}

func (c *cutCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.period, "p", 0, "period number (1 is the first). Defaults to the last one.")
}

func (c *cutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CutMarkdown(r, c.period))
	return subcommands.ExitSuccess
}
