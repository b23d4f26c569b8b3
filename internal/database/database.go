package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realty-service/internal/config"
	"realty-service/internal/model"
)

// Open connects to the configured database. TranslateError is on so that
// unique-index violations surface as gorm.ErrDuplicatedKey, which the slug
// retry loop in the listing service depends on.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database.Open: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Listing{},
		&model.User{},
		&model.Job{},
		&model.Inquiry{},
	); err != nil {
		return fmt.Errorf("database.Migrate: %w", err)
	}
	return nil
}
