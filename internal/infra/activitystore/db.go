package activitystore

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens the document database the activity tables live in.
func OpenDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open db: empty dsn")
	}

	dbLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	return db, nil
}

// Migrate creates the tables the store reads. The service never writes to
// them; this is for fixtures and local databases.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserRow{}, &DocumentRow{}, &UserActivityRow{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}
