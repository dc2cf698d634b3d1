package activity

import (
	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/service/gantt"
)

const (
	SourceRequest = "request"
)

// Timeline is a computed layout together with the records it was built from.
type Timeline struct {
	RunID   string
	Layout  *gantt.Layout
	Records map[string]domain.ActivityRecord
	Total   int
}

type StatsResult struct {
	Users []UserStats
	Total int
}
