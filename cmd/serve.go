package cmd

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/server"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the report and its editing over HTTP" }
func (*serveCmd) Usage() string {
	return `pln serve [-addr <host:port>]

  Serve the JSON API of the contract: report views, edition of the master
  data, modifications and penalties, refresh of the sheet, and Prometheus
  metrics on /metrics. Edits live as long as the process.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "listen address. Defaults to the project address.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	p, err := loadProject()
	if err != nil {
		return fail(err)
	}
	loader := newLoader(p, logger)
	items, usedDemo, err := loader.Load(ctx)
	if err != nil {
		// the sheet can still be loaded later with POST /api/refresh.
		logger.Warn("starting without items", zap.Error(err))
	}
	if usedDemo {
		logger.Warn("serving the demo dataset")
	}

	addr := c.addr
	if addr == "" {
		addr = p.Addr
	}
	s := server.New(planilla.NewSession(p.Input(items)), server.Options{
		Loader:     loader,
		Milestones: p.Milestones,
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.Run(ctx, addr); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
