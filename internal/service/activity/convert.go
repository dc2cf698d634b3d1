package activity

import (
	"time"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

// ToTask adapts an activity record to a timeline task.
func ToTask(record domain.ActivityRecord, now time.Time, defaultDuration time.Duration) domain.Task {
	start, ok := record.CreatedAt()
	if !ok {
		start = now
	}

	end, ok := record.CompletedAt()
	if !ok {
		end, ok = record.PlannedAt()
	}
	if !ok {
		end = start.Add(defaultDuration)
	}

	name := record.EntityName
	if name == "" {
		name = record.ActivityType
	}

	group := record.Username
	if group == "" {
		group = record.UserID
	}

	return domain.Task{
		ID:              record.ID,
		DisplayName:     name,
		Start:           start,
		End:             end,
		ProgressPercent: domain.ClampProgress(record.Progress),
		GroupKey:        group,
	}
}

func ToTasks(records []domain.ActivityRecord, now time.Time, defaultDuration time.Duration) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, ToTask(r, now, defaultDuration))
	}
	return tasks
}
