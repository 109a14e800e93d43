package dijkstra

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus collectors describing engine runs.
// A single Metrics value may be shared by many engines.
type Metrics struct {
	Runs         *prometheus.CounterVec
	Visits       prometheus.Counter
	Relaxations  prometheus.Counter
	StalePops    prometheus.Counter
	FrontierPeak prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathtrace_runs_total",
				Help: "Total engine runs by result",
			},
			[]string{"result"},
		),
		Visits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pathtrace_visits_total",
				Help: "Total nodes finalized",
			},
		),
		Relaxations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pathtrace_relaxations_total",
				Help: "Total successful edge relaxations",
			},
		),
		StalePops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pathtrace_stale_pops_total",
				Help: "Total frontier entries discarded as stale",
			},
		),
		FrontierPeak: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pathtrace_frontier_peak",
				Help:    "Largest frontier size observed per run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Visits, m.Relaxations, m.StalePops, m.FrontierPeak)
	}

	return m
}

// runStats is what a single run contributes to Metrics.
type runStats struct {
	visits      int
	relaxations int
	stalePops   int
	peak        int
}

func (m *Metrics) observe(s runStats, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Runs.WithLabelValues("error").Inc()
		return
	}
	m.Runs.WithLabelValues("ok").Inc()
	m.Visits.Add(float64(s.visits))
	m.Relaxations.Add(float64(s.relaxations))
	m.StalePops.Add(float64(s.stalePops))
	m.FrontierPeak.Observe(float64(s.peak))
}
