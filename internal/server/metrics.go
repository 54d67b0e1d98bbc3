package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics groups the collectors of one Server. Each Server registers on its
// own registry so several can coexist in a process.
type metrics struct {
	registry *prometheus.Registry

	// solveTotal counts finished runs by algorithm and outcome
	solveTotal *prometheus.CounterVec
	// solveDuration tracks engine time per run
	solveDuration *prometheus.HistogramVec
	// solveExpanded tracks frontier cells processed per run
	solveExpanded *prometheus.HistogramVec
	// solveErrors counts rejected requests by reason
	solveErrors *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		solveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_solve_total",
			Help: "Total search runs by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_solve_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}, []string{"algorithm"}),
		solveExpanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_solve_expanded_cells",
			Help:    "Frontier cells processed per search run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		solveErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_solve_errors_total",
			Help: "Total rejected solve requests by reason",
		}, []string{"reason"}),
	}
}
