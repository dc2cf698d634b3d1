package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/tracing"
)

const snapshotKeyPrefix = "timeline:snapshot:"

type snapshotRecord struct {
	Activities []domain.ActivityRecord `json:"activities"`
	Total      int                     `json:"total"`
	SavedAt    time.Time               `json:"saved_at"`
}

type cache struct {
	client *redis.Client
}

// NewCache stores activity pages in Redis as JSON snapshots.
func NewCache(client *redis.Client) domain.SnapshotCache {
	return &cache{
		client: client,
	}
}

func (c *cache) Get(ctx context.Context, key string) (*domain.ActivityPage, error) {
	redisKey := snapshotKeyPrefix + key

	ctx, span := tracing.StartCacheSpan(ctx, "get", redisKey)
	defer span.End()

	data, err := c.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			tracing.RecordError(span, nil)
			return nil, domain.ErrSnapshotNotFound
		}
		tracing.RecordError(span, err)
		return nil, err
	}

	var record snapshotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshotData, err)
	}

	activities := record.Activities
	if activities == nil {
		activities = []domain.ActivityRecord{}
	}

	return &domain.ActivityPage{
		Activities: activities,
		Total:      record.Total,
	}, nil
}

func (c *cache) Save(ctx context.Context, key string, page *domain.ActivityPage, ttl time.Duration) error {
	if page == nil {
		return ErrInvalidSnapshotData
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	redisKey := snapshotKeyPrefix + key

	ctx, span := tracing.StartCacheSpan(ctx, "set", redisKey)
	defer span.End()

	data, err := json.Marshal(snapshotRecord{
		Activities: page.Activities,
		Total:      page.Total,
		SavedAt:    time.Now().UTC(),
	})
	if err != nil {
		tracing.RecordError(span, err)
		return ErrInvalidSnapshotData
	}

	err = c.client.Set(ctx, redisKey, data, ttl).Err()
	tracing.RecordError(span, err)
	return err
}
