// Package server exposes a contract session over a JSON HTTP API: the report
// views, the editing of master data, modifications and penalties, and the
// refresh of the line items from the sheet.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/etnz/planilla/sheet"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Server. Every field is optional.
type Options struct {
	// Loader refreshes the line items on POST /api/refresh. Refresh is
	// unavailable when nil.
	Loader     *sheet.Loader
	Milestones []planilla.Milestone
	Logger     *zap.Logger
	// Today is the day milestones are evaluated at, date.Today when nil.
	Today func() date.Date
}

// Server serves one session.
type Server struct {
	session    *planilla.Session
	loader     *sheet.Loader
	milestones []planilla.Milestone
	logger     *zap.Logger
	today      func() date.Date
	metrics    *metrics
}

// New creates a server over session.
func New(session *planilla.Session, opts Options) *Server {
	s := &Server{
		session:    session,
		loader:     opts.Loader,
		milestones: opts.Milestones,
		logger:     opts.Logger,
		today:      opts.Today,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.today == nil {
		s.today = date.Today
	}
	if s.milestones == nil {
		s.milestones = planilla.DefaultMilestones
	}
	s.metrics = newMetrics(session)
	return s
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/report", s.handleReport)
		r.Get("/ledger", s.handleLedger)
		r.Get("/modules", s.handleModules)
		r.Get("/items", s.handleItems)
		r.Get("/cut", s.handleCut)
		r.Get("/contract", s.handleContract)
		r.Get("/milestones", s.handleMilestones)
		r.Put("/master", s.handlePutMaster)
		r.Route("/modifications", func(r chi.Router) {
			r.Post("/", s.handleAddModification)
			r.Post("/{id}/toggle", s.handleToggleModification)
			r.Delete("/{id}", s.handleRemoveModification)
		})
		r.Route("/penalties", func(r chi.Router) {
			r.Post("/", s.handleRegisterPenalty)
			r.Delete("/{period}", s.handleRemovePenalty)
		})
		r.Post("/refresh", s.handleRefresh)
	})
	return r
}

// instrument logs and measures every request by route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.latency.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  40 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  time.Minute,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server stopping", zap.String("addr", addr))
		return srv.Shutdown(shutdown)
	})
	return g.Wait()
}
