package db

import (
	"time" // Pool lifetimes

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM query logging
)

// Open connects to the database behind dsn and tunes the connection pool
func Open(dsn string, isProd bool) (*gorm.DB, error) {
	level := logger.Info // Print SQL outside production
	if isProd {
		level = logger.Warn
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)           // Idle connections kept warm
	sqlDB.SetMaxOpenConns(100)          // Upper bound on open connections
	sqlDB.SetConnMaxLifetime(time.Hour) // Recycle long lived connections
	logrus.WithField("database", db.Name()).Info("Database connection established")
	return db, nil
}
