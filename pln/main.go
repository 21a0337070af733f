// Command pln follows the progress and payments of a construction contract.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/planilla/cmd"
	"github.com/etnz/planilla/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	completion().Complete("pln")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"config":    predict.Files("*.yaml"),
		"sheet":     predict.Files("*.csv"),
		"demo":      predict.Nothing,
		"cache-dir": predict.Dirs("*"),
		"v":         predict.Nothing,
	}
	c := &complete.Command{Sub: map[string]*complete.Command{}, Flags: global}
	for _, e := range cmd.Commands {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs := flag.NewFlagSet(e.Name(), flag.ContinueOnError)
		e.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Something
		})
		c.Sub[e.Name()] = sub
	}
	c.Sub["export"].Flags["o"] = predict.Files("*.xlsx")
	c.Sub["certificate"].Flags["pdf"] = predict.Files("*.pdf")
	if topics, err := docs.GetAllTopics(); err == nil {
		c.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return c
}
