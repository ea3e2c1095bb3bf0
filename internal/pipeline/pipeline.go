// Package pipeline chains the analysis stages: load, normalize, aggregate,
// report. One pass, no retries, no concurrency.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/domain"
	"github.com/Lori-Stroud/NOAA-storm-database-analysis/internal/observability"
)

// Loader reads the full storm event table into memory.
type Loader interface {
	Read(ctx context.Context) ([]domain.StormEvent, error)
}

// Reporter renders aggregated impact reports and a closing summary.
type Reporter interface {
	Report(ctx context.Context, rep domain.ImpactReport) error
	WriteSummary(ctx context.Context) error
}

// Pipeline orchestrates one analysis run.
type Pipeline struct {
	loader   Loader
	reporter Reporter
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(loader Loader, reporter Reporter, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:   loader,
		reporter: reporter,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes the load-normalize-aggregate-report pass. Any stage error
// aborts the run before later stages see partial data.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	events, err := p.loader.Read(ctx)
	if err != nil {
		return fmt.Errorf("load storm data: %w", err)
	}
	p.metrics.RowsLoaded.Add(float64(len(events)))

	unknown := 0
	for i := range events {
		unknown += domain.NormalizeDamage(&events[i])
	}
	p.metrics.UnknownMagnitudeCodes.Add(float64(unknown))
	if unknown > 0 {
		p.logger.Debug("unmapped magnitude codes left unscaled", "count", unknown)
	}

	for _, rep := range p.buildReports(events) {
		p.metrics.GroupsAggregated.Add(float64(len(rep.Groups)))
		if err := p.reporter.Report(ctx, rep); err != nil {
			return fmt.Errorf("render %s: %w", rep.Slug, err)
		}
		p.metrics.ReportsRendered.Inc()
	}

	if err := p.reporter.WriteSummary(ctx); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	elapsed := time.Since(start)
	p.metrics.RunDuration.Observe(elapsed.Seconds())
	p.logger.Info("analysis complete",
		"rows", len(events),
		"unknown_codes", unknown,
		"duration", elapsed,
	)
	return nil
}

// buildReports aggregates the two metric families over the normalized events.
func (p *Pipeline) buildReports(events []domain.StormEvent) []domain.ImpactReport {
	health := []domain.Metric{domain.MetricInjuries, domain.MetricFatalities}
	financial := []domain.Metric{domain.MetricPropDamage, domain.MetricCropDamage}

	return []domain.ImpactReport{
		{
			Title:     "Health Impact by Event Type",
			Slug:      "health-impact",
			AxisLabel: "Total Count of Injuries and Fatalities",
			Metrics:   metricNames(health),
			Groups:    domain.AggregateByEventType(events, health),
		},
		{
			Title:     "Financial Impact by Event Type",
			Slug:      "financial-impact",
			AxisLabel: "Total Cost of Damages ($)",
			Metrics:   metricNames(financial),
			Groups:    domain.AggregateByEventType(events, financial),
		},
	}
}

func metricNames(metrics []domain.Metric) []string {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Name
	}
	return names
}
