package dijkstra

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// Sentinel errors returned by the engine. Graph contract violations found
// during relaxation are reported with core.ErrDanglingEdge and
// core.ErrNegativeWeight.
var (
	// ErrNilGraph indicates that the engine was built over a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownStartNode indicates that the start node is not a key of the graph.
	ErrUnknownStartNode = errors.New("dijkstra: start node not found in graph")

	// ErrInvalidGraph wraps the aggregated result of strict validation.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")
)

// Options configures an Engine.
//
// Logger     – receives Debug (run boundaries) and Trace (per-step) records.
// Cumulative – keep the trace across Run calls instead of resetting it.
// Strict     – validate every edge of the graph before running.
// Metrics    – optional Prometheus collectors; nil disables instrumentation.
type Options struct {
	Logger     hclog.Logger
	Cumulative bool
	Strict     bool
	Metrics    *Metrics
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default null logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCumulativeTrace makes Run append to the engine's trace history and
// return the whole history rather than only the latest run's events.
func WithCumulativeTrace() Option {
	return func(o *Options) {
		o.Cumulative = true
	}
}

// WithStrictValidation scans all edges for negative weights and dangling
// targets before the first pop, failing fast with ErrInvalidGraph.
// Without it only edges leaving visited nodes are checked.
func WithStrictValidation() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// DefaultOptions returns per-run trace reset, lazy validation, a null logger
// and no metrics.
func DefaultOptions() Options {
	return Options{
		Logger: hclog.NewNullLogger(),
	}
}
