package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/planilla/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string { return "topic" }
func (*topicCmd) Synopsis() string {
	return "show the documentation of the ledger, the sheet and the server"
}
func (*topicCmd) Usage() string {
	topics, _ := docs.GetAllTopics()
	return `pln topic [-list] [<topic>...]

  Show the documentation of the given topics, the overview by default.
  "*" shows every topic.

  Topics: ` + strings.Join(topics, ", ") + `

`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the topic names, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		if err := listTopics(os.Stdout); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(fmt.Errorf("reading doc: %w", err))
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// listTopics writes the topic names to w.
func listTopics(w io.Writer) error {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return err
	}
	for _, t := range topics {
		fmt.Fprintln(w, t)
	}
	return nil
}
