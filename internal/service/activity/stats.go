package activity

import "github.com/KasumiMercury/primind-activity-timeline/internal/domain"

type UserStats struct {
	Username          string  `json:"username"`
	Total             int     `json:"total"`
	Completed         int     `json:"completed"`
	InProgress        int     `json:"in_progress"`
	NotStarted        int     `json:"not_started"`
	CompletedPercent  float64 `json:"completed_percent"`
	InProgressPercent float64 `json:"in_progress_percent"`
	NotStartedPercent float64 `json:"not_started_percent"`
}

// ComputeUserStats tallies progress per user in first-seen order.
func ComputeUserStats(records []domain.ActivityRecord) []UserStats {
	index := make(map[string]int)
	stats := make([]UserStats, 0)

	for _, r := range records {
		name := r.Username
		if name == "" {
			name = r.UserID
		}

		i, ok := index[name]
		if !ok {
			i = len(stats)
			index[name] = i
			stats = append(stats, UserStats{Username: name})
		}

		s := &stats[i]
		s.Total++
		switch r.Status() {
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusInProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}

	for i := range stats {
		s := &stats[i]
		total := float64(s.Total)
		s.CompletedPercent = float64(s.Completed) / total * 100
		s.InProgressPercent = float64(s.InProgress) / total * 100
		s.NotStartedPercent = float64(s.NotStarted) / total * 100
	}

	return stats
}
