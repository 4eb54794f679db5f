package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/config"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	connectAttempts = 5
	connectBackoff  = 3 * time.Second
)

// Connect opens the database with a bounded retry loop. Startup aborts only
// after every attempt has failed.
func Connect(cfg *config.Config) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		slog.Warn("database connection failed", "attempt", attempt, "error", err)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Expense{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
