package cmd

import (
	"context"
	"flag"

	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type modulesCmd struct{}

func (*modulesCmd) Name() string     { return "modules" }
func (*modulesCmd) Synopsis() string { return "display the progress of every module" }
func (*modulesCmd) Usage() string {
	return `pln modules

  Display the budget, executed amount, incidence and progress of every module.
`
}

func (*modulesCmd) SetFlags(f *flag.FlagSet) {}

func (*modulesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ModulesMarkdown(r))
	return subcommands.ExitSuccess
}
