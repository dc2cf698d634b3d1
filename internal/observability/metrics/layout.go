package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	layoutMeterName = "timeline.layout"
)

type LayoutMetrics struct {
	layoutsComputed  metric.Int64Counter
	tasksPlaced      metric.Int64Counter
	laneCount        metric.Int64Histogram
	layoutDuration   metric.Float64Histogram
	fetchDuration    metric.Float64Histogram
	snapshotLookups  metric.Int64Counter
	activitiesFailed metric.Int64Counter
}

func NewLayoutMetrics() (*LayoutMetrics, error) {
	meter := otel.Meter(layoutMeterName)

	layoutsComputed, err := meter.Int64Counter(
		"timeline_layouts_total",
		metric.WithDescription("Total number of timeline layouts computed"),
		metric.WithUnit("{layout}"),
	)
	if err != nil {
		return nil, err
	}

	tasksPlaced, err := meter.Int64Counter(
		"timeline_tasks_placed_total",
		metric.WithDescription("Total number of tasks placed on a lane"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	laneCount, err := meter.Int64Histogram(
		"timeline_group_lanes",
		metric.WithDescription("Number of lanes a group needed"),
		metric.WithUnit("{lane}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 6, 8, 12, 16, 32),
	)
	if err != nil {
		return nil, err
	}

	layoutDuration, err := meter.Float64Histogram(
		"timeline_layout_duration_seconds",
		metric.WithDescription("Time spent computing a layout"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	fetchDuration, err := meter.Float64Histogram(
		"timeline_fetch_duration_seconds",
		metric.WithDescription("Time spent fetching activities from the source"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	snapshotLookups, err := meter.Int64Counter(
		"timeline_snapshot_lookups_total",
		metric.WithDescription("Snapshot cache lookups by outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	activitiesFailed, err := meter.Int64Counter(
		"timeline_source_failures_total",
		metric.WithDescription("Activity source requests that failed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &LayoutMetrics{
		layoutsComputed:  layoutsComputed,
		tasksPlaced:      tasksPlaced,
		laneCount:        laneCount,
		layoutDuration:   layoutDuration,
		fetchDuration:    fetchDuration,
		snapshotLookups:  snapshotLookups,
		activitiesFailed: activitiesFailed,
	}, nil
}

func (m *LayoutMetrics) RecordLayout(ctx context.Context, source string, taskCount int, duration time.Duration) {
	attrs := appendLoadtestLabels(ctx, []attribute.KeyValue{
		attribute.String("source", source),
	})
	m.layoutsComputed.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.tasksPlaced.Add(ctx, int64(taskCount), metric.WithAttributes(attrs...))
	m.layoutDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

func (m *LayoutMetrics) RecordGroupLanes(ctx context.Context, lanes int) {
	m.laneCount.Record(ctx, int64(lanes), metric.WithAttributes(appendLoadtestLabels(ctx, nil)...))
}

func (m *LayoutMetrics) RecordFetch(ctx context.Context, source string, duration time.Duration, err error) {
	attrs := appendLoadtestLabels(ctx, []attribute.KeyValue{
		attribute.String("source", source),
	})
	m.fetchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	if err != nil {
		m.activitiesFailed.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSnapshotLookup counts cache lookups; outcome is hit, miss or error.
func (m *LayoutMetrics) RecordSnapshotLookup(ctx context.Context, outcome string) {
	m.snapshotLookups.Add(ctx, 1, metric.WithAttributes(
		appendLoadtestLabels(ctx, []attribute.KeyValue{attribute.String("outcome", outcome)})...,
	))
}
