package activity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/metrics"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/tracing"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/gantt"
)

type Service struct {
	source          domain.ActivitySource
	sourceName      string
	cache           domain.SnapshotCache
	snapshotTTL     time.Duration
	engine          *gantt.Engine
	recorder        domain.LayoutRecorder
	layoutMetrics   *metrics.LayoutMetrics
	defaultDuration time.Duration
	now             func() time.Time
}

type Options struct {
	SourceName      string
	SnapshotTTL     time.Duration
	DefaultDuration time.Duration
	Now             func() time.Time
}

// NewService wires the activity service. cache, recorder and layoutMetrics
// may be nil.
func NewService(
	source domain.ActivitySource,
	cache domain.SnapshotCache,
	engine *gantt.Engine,
	recorder domain.LayoutRecorder,
	layoutMetrics *metrics.LayoutMetrics,
	opts Options,
) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	defaultDuration := opts.DefaultDuration
	if defaultDuration <= 0 {
		defaultDuration = 7 * 24 * time.Hour
	}

	return &Service{
		source:          source,
		sourceName:      opts.SourceName,
		cache:           cache,
		snapshotTTL:     opts.SnapshotTTL,
		engine:          engine,
		recorder:        recorder,
		layoutMetrics:   layoutMetrics,
		defaultDuration: defaultDuration,
		now:             now,
	}
}

// Timeline fetches the activities matching criteria and lays them out.
func (s *Service) Timeline(ctx context.Context, criteria domain.ActivityCriteria) (*Timeline, error) {
	page, err := s.fetch(ctx, criteria)
	if err != nil {
		return nil, err
	}

	timeline := s.layout(ctx, s.sourceName, page.Activities)
	timeline.Total = page.Total

	return timeline, nil
}

// LayoutRecords lays out records supplied by the caller without touching
// the activity source.
func (s *Service) LayoutRecords(ctx context.Context, records []domain.ActivityRecord) *Timeline {
	timeline := s.layout(ctx, SourceRequest, records)
	timeline.Total = len(records)
	return timeline
}

func (s *Service) Stats(ctx context.Context, criteria domain.ActivityCriteria) (*StatsResult, error) {
	page, err := s.fetch(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		Users: ComputeUserStats(page.Activities),
		Total: page.Total,
	}, nil
}

func (s *Service) layout(ctx context.Context, source string, records []domain.ActivityRecord) *Timeline {
	runID := uuid.NewString()
	started := time.Now()

	tasks := ToTasks(records, s.now(), s.defaultDuration)

	ctx, span := tracing.StartLayoutSpan(ctx, source, len(tasks))
	defer span.End()

	layout := s.engine.Layout(tasks)

	maxLanes := 0
	for _, g := range layout.Groups {
		maxLanes = max(maxLanes, g.LaneCount)
		if s.layoutMetrics != nil {
			s.layoutMetrics.RecordGroupLanes(ctx, g.LaneCount)
		}
	}
	tracing.RecordLayoutResult(span, len(layout.Groups), maxLanes, layout.Window.From, layout.Window.To)

	if s.layoutMetrics != nil {
		s.layoutMetrics.RecordLayout(ctx, source, layout.TaskCount, time.Since(started))
	}

	slog.DebugContext(ctx, "timeline laid out",
		slog.String("run_id", runID),
		slog.String("source", source),
		slog.Int("task_count", layout.TaskCount),
		slog.Int("group_count", len(layout.Groups)),
		slog.Int("max_lanes", maxLanes),
	)

	s.recordLayout(ctx, runID, source, layout)

	byID := make(map[string]domain.ActivityRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	return &Timeline{
		RunID:   runID,
		Layout:  layout,
		Records: byID,
	}
}

func (s *Service) recordLayout(ctx context.Context, runID, source string, layout *gantt.Layout) {
	if s.recorder == nil || len(layout.Groups) == 0 {
		return
	}

	recordedAt := s.now()
	records := make([]domain.LayoutRecord, 0, len(layout.Groups))
	for _, g := range layout.Groups {
		records = append(records, domain.LayoutRecord{
			RunID:      runID,
			RecordedAt: recordedAt,
			Source:     source,
			GroupKey:   g.Key,
			TaskCount:  len(g.Tasks),
			LaneCount:  g.LaneCount,
			WindowFrom: layout.Window.From,
			WindowTo:   layout.Window.To,
		})
	}

	if err := s.recorder.RecordLayout(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record layout",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) fetch(ctx context.Context, criteria domain.ActivityCriteria) (*domain.ActivityPage, error) {
	key := SnapshotKey(criteria)

	if s.cache != nil && s.snapshotTTL > 0 {
		page, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.recordSnapshotLookup(ctx, "hit")
			slog.DebugContext(ctx, "activity snapshot hit", slog.String("key", key))
			return page, nil
		case errors.Is(err, domain.ErrSnapshotNotFound):
			s.recordSnapshotLookup(ctx, "miss")
		default:
			s.recordSnapshotLookup(ctx, "error")
			slog.WarnContext(ctx, "failed to read activity snapshot",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	ctx, span := tracing.StartFetchSpan(ctx, s.sourceName, criteria.Limit, criteria.Offset)
	defer span.End()

	started := time.Now()
	page, err := s.source.ListActivities(ctx, criteria)
	if s.layoutMetrics != nil {
		s.layoutMetrics.RecordFetch(ctx, s.sourceName, time.Since(started), err)
	}
	if err != nil {
		tracing.RecordError(span, err)
		slog.ErrorContext(ctx, "failed to fetch activities",
			slog.String("source", s.sourceName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	tracing.RecordFetchResult(span, len(page.Activities), page.Total, nil)

	if s.cache != nil && s.snapshotTTL > 0 {
		if err := s.cache.Save(ctx, key, page, s.snapshotTTL); err != nil {
			slog.WarnContext(ctx, "failed to save activity snapshot",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return page, nil
}

func (s *Service) recordSnapshotLookup(ctx context.Context, outcome string) {
	if s.layoutMetrics != nil {
		s.layoutMetrics.RecordSnapshotLookup(ctx, outcome)
	}
}

// SnapshotKey identifies the activity listing selected by criteria.
func SnapshotKey(c domain.ActivityCriteria) string {
	raw := fmt.Sprintf("u=%s|t=%s|e=%s|l=%d|o=%d|s=%d|a=%t",
		c.UserID, c.ActivityType, c.EntityID, c.Limit, c.Offset, c.SortColumn, c.Ascending)
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:16])
}
