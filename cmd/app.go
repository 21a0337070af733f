// Package cmd implements the CLI application to follow a construction contract.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/planilla"
	"github.com/etnz/planilla/config"
	"github.com/etnz/planilla/sheet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// Entry is a subcommand and the group it is listed in.
type Entry struct {
	subcommands.Command
	Group string
}

// Commands are all the subcommands of the application.
var Commands = []Entry{
	{&ledgerCmd{}, "reports"},
	{&cutCmd{}, "reports"},
	{&certificateCmd{}, "reports"},
	{&modulesCmd{}, "reports"},
	{&contractCmd{}, "reports"},
	{&milestonesCmd{}, "reports"},
	{&exportCmd{}, "export"},
	{&queryCmd{}, "export"},
	{&assistCmd{}, "assistant"},
	{&serveCmd{}, "server"},
	{&topicCmd{}, "help"},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML project file. Defaults to $PLANILLA_CONFIG, or the built-in contract.")
var sheetSource = flag.String("sheet", "", "URL of the published CSV sheet, or a local CSV file. Overrides the project file.")
var demo = flag.Bool("demo", false, "Use the demo dataset when the sheet is missing or unreadable.")
var cacheDir = flag.String("cache-dir", "", "Folder where downloaded sheets are cached for the day. Defaults to the temporary folder.")
var verbose = flag.Bool("v", false, "Verbose logging.")

// newLogger returns the logger of the application: development when verbose,
// production warnings otherwise.
func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		log.Printf("warning, could not build logger: %v", err)
		return zap.NewNop()
	}
	return logger
}

// loadProject reads the project file with the command line overrides.
func loadProject() (*config.Project, error) {
	p, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *sheetSource != "" {
		p.Sheet = *sheetSource
	}
	return p, nil
}

// newLoader returns the sheet loader of p.
func newLoader(p *config.Project, logger *zap.Logger) *sheet.Loader {
	return &sheet.Loader{
		Source:   p.Sheet,
		Currency: p.Master.Currency,
		Demo:     *demo,
		Client:   sheet.NewDailyClient(*cacheDir, logger),
		Logger:   logger,
	}
}

// loadInput reads the project and its line items.
func loadInput(ctx context.Context) (*config.Project, planilla.Input, error) {
	logger := newLogger()
	defer logger.Sync()

	p, err := loadProject()
	if err != nil {
		return nil, planilla.Input{}, fmt.Errorf("loading project: %w", err)
	}
	items, usedDemo, err := newLoader(p, logger).Load(ctx)
	if err != nil {
		return nil, planilla.Input{}, fmt.Errorf("loading sheet: %w", err)
	}
	if usedDemo {
		log.Println("warning, using the demo dataset")
	}
	return p, p.Input(items), nil
}

// loadReport reads the project and computes its report.
func loadReport(ctx context.Context) (*config.Project, *planilla.Report, error) {
	p, in, err := loadInput(ctx)
	if err != nil {
		return nil, nil, err
	}
	r, err := planilla.Compute(in)
	if err != nil {
		return nil, nil, err
	}
	return p, r, nil
}

// printMarkdown renders md on the terminal, or prints it raw when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints err and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
