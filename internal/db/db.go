package db

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"serenity-backend/internal/config"
	"serenity-backend/internal/model"
)

var (
	conn   *gorm.DB
	connMu sync.RWMutex
)

// InitDBFromConfig opens the postgres connection described by cfg and applies
// the pool settings.
func InitDBFromConfig(cfg *config.APIConfig) error {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	if n := cfg.DB.Pool.MaxOpenConns; n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}
	if n := cfg.DB.Pool.MaxIdleConns; n > 0 {
		sqlDB.SetMaxIdleConns(n)
	}
	if secs := cfg.DB.Pool.ConnMaxLifetime; secs > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(secs) * time.Second)
	}

	SetDB(gdb)
	return nil
}

// Migrate creates or updates every table the application owns.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.MoodCheckIn{},
		&model.JournalEntry{},
		&model.ChatMessage{},
		&model.Therapist{},
		&model.MeditationSession{},
	)
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	connMu.RLock()
	defer connMu.RUnlock()
	return conn
}

// SetDB replaces the shared connection.
func SetDB(gdb *gorm.DB) {
	connMu.Lock()
	defer connMu.Unlock()
	conn = gdb
}
