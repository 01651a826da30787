package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the path-computation core
type Registry struct {
	// Computation metrics
	ComputationsTotal    *prometheus.CounterVec
	ComputationDuration  *prometheus.HistogramVec
	PathsReturned        prometheus.Histogram
	SubgraphsSearched    prometheus.Histogram
	PartialResultsTotal  prometheus.Counter
	SlowComputations     prometheus.Counter
	DisjointSelections   prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{registry: reg}

	r.ComputationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_computations_total",
		Help: "Path computations by outcome (ok, no_path, invalid_request, unknown_node)",
	}, []string{"status"})

	r.ComputationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathfinder_computation_duration_seconds",
		Help:    "Duration of path computations",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"status"})

	r.PathsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_paths_returned",
		Help:    "Number of paths returned per computation",
		Buckets: prometheus.LinearBuckets(0, 2, 10),
	})

	r.SubgraphsSearched = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_subgraphs_searched",
		Help:    "Flexible-attribute subgraphs searched per computation",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})

	r.PartialResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pathfinder_partial_results_total",
		Help: "Computations truncated by a deadline",
	})

	r.SlowComputations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pathfinder_slow_computations_total",
		Help: "Computations slower than one second",
	})

	r.DisjointSelections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pathfinder_disjoint_selections_total",
		Help: "Protection-path selections served",
	})

	reg.MustRegister(
		r.ComputationsTotal,
		r.ComputationDuration,
		r.PathsReturned,
		r.SubgraphsSearched,
		r.PartialResultsTotal,
		r.SlowComputations,
		r.DisjointSelections,
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordComputation records one finished path computation
func (r *Registry) RecordComputation(status string, duration time.Duration, paths, subgraphs int, partial bool) {
	r.ComputationsTotal.WithLabelValues(status).Inc()
	r.ComputationDuration.WithLabelValues(status).Observe(duration.Seconds())
	r.PathsReturned.Observe(float64(paths))
	r.SubgraphsSearched.Observe(float64(subgraphs))

	if partial {
		r.PartialResultsTotal.Inc()
	}
	if duration > time.Second {
		r.SlowComputations.Inc()
	}
}

// RecordDisjointSelection records one protection-path selection
func (r *Registry) RecordDisjointSelection() {
	r.DisjointSelections.Inc()
}
