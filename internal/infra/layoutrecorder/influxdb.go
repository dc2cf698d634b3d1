//go:build !gcloud

package layoutrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

const layoutMeasurement = "timeline_layout"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.LayoutRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "layout result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, layout result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "layout result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

// RecordLayout writes one point per group. Write failures are logged and
// dropped so a missing InfluxDB never fails a layout request.
func (r *influxDBRecorder) RecordLayout(ctx context.Context, records []domain.LayoutRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		runID := record.RunID
		if runID == "" {
			runID = "default"
		}

		recordedAt := record.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = time.Now()
		}

		points = append(points, influxdb2.NewPoint(
			layoutMeasurement,
			map[string]string{
				"run_id": runID,
				"source": record.Source,
				"group":  record.GroupKey,
			},
			map[string]any{
				"task_count":     record.TaskCount,
				"lane_count":     record.LaneCount,
				"window_from":    record.WindowFrom.UnixMilli(),
				"window_to":      record.WindowTo.UnixMilli(),
				"window_span_ms": record.WindowTo.Sub(record.WindowFrom).Milliseconds(),
			},
			recordedAt,
		))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write layout results to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client == nil {
		return nil
	}
	r.client.Close()
	return nil
}
