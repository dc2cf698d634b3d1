package activitystore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

const listColumns = "ua.UTA_ID_C as id, ua.UTA_IDUSER_C as user_id, u.USE_USERNAME_C as username, " +
	"ua.UTA_ACTIVITY_TYPE_C as activity_type, ua.UTA_ENTITY_ID_C as entity_id, d.DOC_TITLE_C as entity_name, " +
	"ua.UTA_PROGRESS_N as progress, ua.UTA_PLANNED_DATE_D as planned_date, " +
	"ua.UTA_COMPLETED_DATE_D as completed_date, ua.UTA_CREATEDATE_D as create_date"

var sortColumns = map[domain.SortColumn]string{
	domain.SortByCreateDate:   "ua.UTA_CREATEDATE_D",
	domain.SortByUsername:     "u.USE_USERNAME_C",
	domain.SortByActivityType: "ua.UTA_ACTIVITY_TYPE_C",
	domain.SortByProgress:     "ua.UTA_PROGRESS_N",
	domain.SortByPlannedDate:  "ua.UTA_PLANNED_DATE_D",
}

// Store lists user activities straight from the document database.
type Store struct {
	db *gorm.DB
}

var _ domain.ActivitySource = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListActivities(ctx context.Context, criteria domain.ActivityCriteria) (*domain.ActivityPage, error) {
	var total int64
	if err := s.filtered(ctx, criteria).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	column, ok := sortColumns[criteria.SortColumn]
	if !ok {
		column = sortColumns[domain.SortByCreateDate]
	}
	direction := "desc"
	if criteria.Ascending {
		direction = "asc"
	}

	q := s.filtered(ctx, criteria).
		Select(listColumns).
		Order(column + " " + direction).
		Order("ua.UTA_ID_C asc")
	if criteria.Limit > 0 {
		q = q.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		q = q.Offset(criteria.Offset)
	}

	var rows []activityRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]domain.ActivityRecord, 0, len(rows))
	for _, r := range rows {
		activities = append(activities, r.toRecord())
	}

	return &domain.ActivityPage{
		Activities: activities,
		Total:      int(total),
	}, nil
}

func (s *Store) filtered(ctx context.Context, criteria domain.ActivityCriteria) *gorm.DB {
	q := s.db.WithContext(ctx).
		Table("T_USER_ACTIVITY ua").
		Joins("join T_USER u on ua.UTA_IDUSER_C = u.USE_ID_C").
		Joins("left join T_DOCUMENT d on ua.UTA_ENTITY_ID_C = d.DOC_ID_C").
		Where("ua.UTA_DELETEDATE_D is null")

	if criteria.UserID != "" {
		q = q.Where("ua.UTA_IDUSER_C = ?", criteria.UserID)
	}
	if criteria.ActivityType != "" {
		q = q.Where("ua.UTA_ACTIVITY_TYPE_C = ?", criteria.ActivityType)
	}
	if criteria.EntityID != "" {
		q = q.Where("ua.UTA_ENTITY_ID_C = ?", criteria.EntityID)
	}
	return q
}

func (r activityRow) toRecord() domain.ActivityRecord {
	record := domain.ActivityRecord{
		ID:                     r.ID,
		UserID:                 r.UserID,
		Username:               r.Username,
		ActivityType:           r.ActivityType,
		Progress:               domain.ClampProgress(r.Progress),
		PlannedDateTimestamp:   optionalMillis(r.PlannedDate),
		CompletedDateTimestamp: optionalMillis(r.CompletedDate),
		CreateTimestamp:        optionalMillis(r.CreateDate),
	}
	if r.EntityID != nil {
		record.EntityID = *r.EntityID
	}
	if r.EntityName != nil {
		record.EntityName = *r.EntityName
	}
	return record
}

func optionalMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	return domain.Millis(*t)
}
