package activityapi

import "github.com/KasumiMercury/primind-activity-timeline/internal/domain"

type listResponse struct {
	Activities []domain.ActivityRecord `json:"activities"`
	Total      int                     `json:"total"`
}

func (r listResponse) toPage() *domain.ActivityPage {
	activities := r.Activities
	if activities == nil {
		activities = []domain.ActivityRecord{}
	}
	for i := range activities {
		activities[i].Progress = domain.ClampProgress(activities[i].Progress)
	}
	return &domain.ActivityPage{
		Activities: activities,
		Total:      r.Total,
	}
}
