package stub

type ActivityResponse struct {
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

type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}

type SeedRequest struct {
	Buckets []SeedBucket `json:"buckets"`
}

// SeedBucket spreads Count activities for one user evenly over
// [StartTime, EndTime).
type SeedBucket struct {
	Username     string `json:"username"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Count        int    `json:"count"`
	ActivityType string `json:"activity_type"`
	// DurationHours is the planned length of every generated activity.
	DurationHours int `json:"duration_hours"`
}
