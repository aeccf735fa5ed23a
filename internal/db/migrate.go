package db

import (
	"chainwatch/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table owned by the application
func Models() []any {
	return []any{&domain.Case{}, &domain.Wallet{}}
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
