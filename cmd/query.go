package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/planilla"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the report with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `pln query <jsonpath>

  Print the part of the JSON report selected by a JSONPath expression.
  Without expression, the whole report is printed.

Usage Examples:
# Liquid payable of every period.
$ pln query '$.monthlyData[*].liquidPartial'

# SPI of the last period.
$ pln query '$.monthlyData[-1:].spi'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting a single JSONPath expression")
		return subcommands.ExitUsageError
	}
	path := "$"
	if f.NArg() == 1 {
		path = f.Arg(0)
	}
	_, r, err := loadReport(ctx)
	if err != nil {
		return fail(err)
	}
	if err := query(os.Stdout, r, path); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// query writes the indented JSON of the values of r selected by path.
func query(w io.Writer, r *planilla.Report, path string) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		return err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", path, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jval)
}
