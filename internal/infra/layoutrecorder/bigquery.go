//go:build gcloud

package layoutrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	RunID      string    `bigquery:"run_id"`
	Source     string    `bigquery:"source"`
	GroupKey   string    `bigquery:"group_key"`
	TaskCount  int64     `bigquery:"task_count"`
	LaneCount  int64     `bigquery:"lane_count"`
	WindowFrom time.Time `bigquery:"window_from"`
	WindowTo   time.Time `bigquery:"window_to"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.LayoutRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "layout result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, layout result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, layout result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "layout result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordLayout(ctx context.Context, records []domain.LayoutRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt: record.RecordedAt,
			RunID:      record.RunID,
			Source:     record.Source,
			GroupKey:   record.GroupKey,
			TaskCount:  int64(record.TaskCount),
			LaneCount:  int64(record.LaneCount),
			WindowFrom: record.WindowFrom,
			WindowTo:   record.WindowTo,
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert layout results to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
