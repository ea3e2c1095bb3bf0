package domain

import (
	"math"
	"sort"
)

// Metric names one numeric column of a StormEvent for aggregation.
type Metric struct {
	Name  string
	Value func(StormEvent) float64
}

// Metrics for the two report families. Damage metrics expect events that
// have already been through NormalizeDamage.
var (
	MetricInjuries   = Metric{Name: "Injuries", Value: func(e StormEvent) float64 { return e.Injuries }}
	MetricFatalities = Metric{Name: "Fatalities", Value: func(e StormEvent) float64 { return e.Fatalities }}
	MetricPropDamage = Metric{Name: "Property Damage", Value: func(e StormEvent) float64 { return e.PropDamage }}
	MetricCropDamage = Metric{Name: "Crop Damage", Value: func(e StormEvent) float64 { return e.CropDamage }}
)

// ImpactGroup is one aggregated output row: an event type with its
// per-metric sums and the ranking total.
type ImpactGroup struct {
	EventType string
	Sums      []float64 // parallel to the metrics passed to AggregateByEventType
	Total     float64
}

// ImpactReport pairs an aggregation with its presentation labels.
type ImpactReport struct {
	Title     string   // report heading, e.g. "Health Impact by Event Type"
	Slug      string   // filename-safe identifier for rendered artifacts
	AxisLabel string   // y-axis title on the bar chart
	Metrics   []string // table column headers, parallel to ImpactGroup.Sums
	Groups    []ImpactGroup
}

// AggregateByEventType groups events by their EVTYPE label and sums the
// given metrics per group. Each input row is visited exactly once. NaN
// values contribute zero so one bad row cannot poison a group sum. Groups
// come back sorted by total descending; equal totals keep the order in
// which their labels first appeared in the input.
func AggregateByEventType(events []StormEvent, metrics []Metric) []ImpactGroup {
	index := make(map[string]int)
	groups := make([]ImpactGroup, 0, 64)

	for _, e := range events {
		i, seen := index[e.EventType]
		if !seen {
			i = len(groups)
			index[e.EventType] = i
			groups = append(groups, ImpactGroup{
				EventType: e.EventType,
				Sums:      make([]float64, len(metrics)),
			})
		}
		for j, m := range metrics {
			v := m.Value(e)
			if math.IsNaN(v) {
				continue
			}
			groups[i].Sums[j] += v
			groups[i].Total += v
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total > groups[b].Total
	})
	return groups
}

// TopN returns the first n groups, or all of them when fewer exist.
func TopN(groups []ImpactGroup, n int) []ImpactGroup {
	if n > len(groups) {
		n = len(groups)
	}
	return groups[:n]
}
