package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mertdogan/expense-tracker-api/internal/config"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. A single connection is
// forced so every query (including concurrent ones) sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Expense{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      24 * time.Hour,
		GoogleClientID: "test-client-id",
		AuthTimeout:    2 * time.Second,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, googleID, email string) *models.User {
	t.Helper()
	user := &models.User{
		GoogleID: googleID,
		Email:    email,
		Name:     "Test User",
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
