package activitystore

import "time"

type UserRow struct {
	ID         string     `gorm:"column:USE_ID_C;primaryKey;size:36"`
	Username   string     `gorm:"column:USE_USERNAME_C;size:50;not null"`
	DeleteDate *time.Time `gorm:"column:USE_DELETEDATE_D"`
}

func (UserRow) TableName() string { return "T_USER" }

type DocumentRow struct {
	ID         string     `gorm:"column:DOC_ID_C;primaryKey;size:36"`
	Title      string     `gorm:"column:DOC_TITLE_C;size:100;not null"`
	DeleteDate *time.Time `gorm:"column:DOC_DELETEDATE_D"`
}

func (DocumentRow) TableName() string { return "T_DOCUMENT" }

type UserActivityRow struct {
	ID            string     `gorm:"column:UTA_ID_C;primaryKey;size:36"`
	UserID        string     `gorm:"column:UTA_IDUSER_C;size:36;not null;index"`
	ActivityType  string     `gorm:"column:UTA_ACTIVITY_TYPE_C;size:50;not null"`
	EntityID      *string    `gorm:"column:UTA_ENTITY_ID_C;size:36"`
	Progress      int        `gorm:"column:UTA_PROGRESS_N;not null"`
	PlannedDate   *time.Time `gorm:"column:UTA_PLANNED_DATE_D"`
	CompletedDate *time.Time `gorm:"column:UTA_COMPLETED_DATE_D"`
	CreateDate    time.Time  `gorm:"column:UTA_CREATEDATE_D;not null"`
	DeleteDate    *time.Time `gorm:"column:UTA_DELETEDATE_D"`
}

func (UserActivityRow) TableName() string { return "T_USER_ACTIVITY" }

// activityRow is one row of the joined activity listing.
type activityRow struct {
	ID            string     `gorm:"column:id"`
	UserID        string     `gorm:"column:user_id"`
	Username      string     `gorm:"column:username"`
	ActivityType  string     `gorm:"column:activity_type"`
	EntityID      *string    `gorm:"column:entity_id"`
	EntityName    *string    `gorm:"column:entity_name"`
	Progress      int        `gorm:"column:progress"`
	PlannedDate   *time.Time `gorm:"column:planned_date"`
	CompletedDate *time.Time `gorm:"column:completed_date"`
	CreateDate    *time.Time `gorm:"column:create_date"`
}
