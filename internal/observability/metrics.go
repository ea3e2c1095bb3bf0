package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one analysis run.
// The run is a batch job, so the values are summarized to the log at the end
// rather than scraped.
type Metrics struct {
	RowsLoaded            prometheus.Counter
	UnknownMagnitudeCodes prometheus.Counter
	GroupsAggregated      prometheus.Counter
	ReportsRendered       prometheus.Counter
	RunDuration           prometheus.Histogram
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "rows_loaded_total",
			Help:      "Total storm event rows read from the source file.",
		}),
		UnknownMagnitudeCodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "unknown_magnitude_codes_total",
			Help:      "Damage magnitude codes outside the K/M/B/digit set, left unscaled.",
		}),
		GroupsAggregated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "groups_aggregated_total",
			Help:      "Event type groups produced across all aggregations.",
		}),
		ReportsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_report",
			Name:      "reports_rendered_total",
			Help:      "Impact reports rendered (table plus chart).",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_report",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-normalize-aggregate-report run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}

	prometheus.MustRegister(
		m.RowsLoaded,
		m.UnknownMagnitudeCodes,
		m.GroupsAggregated,
		m.ReportsRendered,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsLoaded:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "rows_loaded_total"}),
		UnknownMagnitudeCodes: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "unknown_magnitude_codes_total"}),
		GroupsAggregated:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "groups_aggregated_total"}),
		ReportsRendered:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_report", Name: "reports_rendered_total"}),
		RunDuration:           prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_report", Name: "run_duration_seconds"}),
	}
}
