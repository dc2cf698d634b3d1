package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=activity_source.go -destination=activity_source_mock.go -package=domain

type ActivitySource interface {
	ListActivities(ctx context.Context, criteria ActivityCriteria) (*ActivityPage, error)
}

type SnapshotCache interface {
	Get(ctx context.Context, key string) (*ActivityPage, error)
	Save(ctx context.Context, key string, page *ActivityPage, ttl time.Duration) error
}
