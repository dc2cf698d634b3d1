package domain

import "time"

// ActivityRecord is a user activity as served by the activity endpoint.
// Timestamps are epoch milliseconds and nil when the upstream omits them.
type ActivityRecord struct {
	ID                     string `json:"id"`
	UserID                 string `json:"user_id"`
	Username               string `json:"username"`
	ActivityType           string `json:"activity_type"`
	EntityID               string `json:"entity_id,omitempty"`
	EntityName             string `json:"entity_name,omitempty"`
	Progress               int    `json:"progress"`
	PlannedDateTimestamp   *int64 `json:"planned_date_timestamp,omitempty"`
	CompletedDateTimestamp *int64 `json:"completed_date_timestamp,omitempty"`
	CreateTimestamp        *int64 `json:"create_timestamp,omitempty"`
}

func (r *ActivityRecord) CreatedAt() (time.Time, bool) {
	return millisToTime(r.CreateTimestamp)
}

func (r *ActivityRecord) PlannedAt() (time.Time, bool) {
	return millisToTime(r.PlannedDateTimestamp)
}

func (r *ActivityRecord) CompletedAt() (time.Time, bool) {
	return millisToTime(r.CompletedDateTimestamp)
}

func (r *ActivityRecord) Status() ProgressStatus {
	return ClassifyProgress(r.Progress)
}

func millisToTime(ms *int64) (time.Time, bool) {
	if ms == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*ms).UTC(), true
}

// Millis converts t to the epoch-millisecond form used on the wire.
func Millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

// SortColumn selects the ordering of an activity listing.
type SortColumn int

const (
	SortByCreateDate SortColumn = iota
	SortByUsername
	SortByActivityType
	SortByProgress
	SortByPlannedDate
)

func (c SortColumn) Valid() bool {
	return c >= SortByCreateDate && c <= SortByPlannedDate
}

// ActivityCriteria filters an activity listing. Empty strings mean no filter.
type ActivityCriteria struct {
	UserID       string
	ActivityType string
	EntityID     string
	Limit        int
	Offset       int
	SortColumn   SortColumn
	Ascending    bool
}

type ActivityPage struct {
	Activities []ActivityRecord `json:"activities"`
	Total      int              `json:"total"`
}
