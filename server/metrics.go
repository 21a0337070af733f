package server

import (
	"errors"

	"github.com/etnz/planilla"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "planilla_"

	resultSuccess = "success"
	resultNoData  = "no_data"
)

type metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	recomputes      *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	periods         prometheus.Gauge
	financialAccum  prometheus.Gauge
	physicalPercent prometheus.Gauge
}

// newMetrics registers the server metrics on a registry of their own, the
// session cache counters included.
func newMetrics(session *planilla.Session) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_latency_seconds",
				Help:    "HTTP latency in seconds by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		recomputes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "recompute_total",
				Help: "Total report recomputations by result",
			},
			[]string{"result"},
		),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "sheet_refresh_total",
				Help: "Total sheet refreshes by source",
			},
			[]string{"source"},
		),
		periods: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "periods",
			Help: "Number of periods of the current report",
		}),
		financialAccum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "financial_accum",
			Help: "Amount paid at the last period, advance included",
		}),
		physicalPercent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "physical_progress_percent",
			Help: "Physical progress at the last period",
		}),
	}
	m.registry.MustRegister(
		m.requests, m.latency, m.recomputes, m.refreshes,
		m.periods, m.financialAccum, m.physicalPercent,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: metricPrefix + "cache_hits_total",
			Help: "Report cache hits",
		}, func() float64 {
			hits, _ := session.CacheStats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: metricPrefix + "cache_misses_total",
			Help: "Report cache misses",
		}, func() float64 {
			_, misses := session.CacheStats()
			return float64(misses)
		}),
	)
	r, err := session.Report()
	m.observe(r, err)
	session.Subscribe(m.recomputed)
	return m
}

// recomputed is the session listener.
func (m *metrics) recomputed(r *planilla.Report, err error) {
	result := resultSuccess
	if errors.Is(err, planilla.ErrNoData) {
		result = resultNoData
	}
	m.recomputes.WithLabelValues(result).Inc()
	m.observe(r, err)
}

func (m *metrics) observe(r *planilla.Report, err error) {
	if err != nil {
		m.periods.Set(0)
		m.financialAccum.Set(0)
		m.physicalPercent.Set(0)
		return
	}
	last := r.Last()
	m.periods.Set(float64(r.Axis.Count))
	m.financialAccum.Set(last.FinancialAccum.AsFloat())
	m.physicalPercent.Set(float64(last.PhysicalProgress))
}
