package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planilla/export"
	"github.com/etnz/planilla/renderer"
	"github.com/google/subcommands"
)

type certificateCmd struct {
	period int
	pdf    string
}

func (*certificateCmd) Name() string     { return "certificate" }
func (*certificateCmd) Synopsis() string { return "display the payment certificate of a period" }
func (*certificateCmd) Usage() string {
	return `pln certificate [-p <period>] [-pdf <file>]

  Display the payment certificate of a period: the items executed in the
  period, the advance amortization, the penalty and the liquid payable.

Usage Examples:
# Certificate of the second period, also written as a PDF file.
$ pln certificate -p 2 -pdf planilla2.pdf
`
}

func (c *certificateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.period, "p", 0, "period number (1 is the first). Defaults to the last one.")
	f.StringVar(&c.pdf, "pdf", "", "write the certificate as a PDF file too")
}

func (c *certificateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CertificateMarkdown(r, c.period))
	if c.pdf == "" {
		return subcommands.ExitSuccess
	}
	b, err := export.CertificatePDF(r, c.period)
	if err != nil {
		return fail(fmt.Errorf("rendering PDF: %w", err))
	}
	if err := os.WriteFile(c.pdf, b, 0o644); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Certificate written to %s\n", c.pdf)
	return subcommands.ExitSuccess
}
