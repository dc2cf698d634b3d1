package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=layout_recorder.go -destination=layout_recorder_mock.go -package=domain

// LayoutRecord summarizes one group of one layout run.
type LayoutRecord struct {
	RunID      string
	RecordedAt time.Time
	Source     string
	GroupKey   string
	TaskCount  int
	LaneCount  int
	WindowFrom time.Time
	WindowTo   time.Time
}

type LayoutRecorder interface {
	RecordLayout(ctx context.Context, records []LayoutRecord) error
	Flush(ctx context.Context) error
	Close() error
}
