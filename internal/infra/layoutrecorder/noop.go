package layoutrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.LayoutRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordLayout(_ context.Context, _ []domain.LayoutRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
