package services

import (
	"testing"
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addExpense(t *testing.T, db *gorm.DB, userID uint, amount float64, category string, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Expense{
		UserID:   userID,
		Title:    "Entry",
		Amount:   amount,
		Category: category,
		Date:     date,
	}).Error)
}

func TestCategoryReportPercentagesSumTo100(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	now := time.Now()
	addExpense(t, db, user, 100, "Food", now)
	addExpense(t, db, user, 200.5, "Transport", now)
	addExpense(t, db, user, 33.21, "Other", now)
	addExpense(t, db, user, 66.29, "Food", now)

	rows, err := svc.CategoryReport(user)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var sum float64
	byCategory := map[string]dto.CategoryReportRow{}
	for _, row := range rows {
		sum += row.Percentage
		byCategory[row.Category] = row
	}
	assert.InDelta(t, 100, sum, 0.05)

	food := byCategory["Food"]
	assert.Equal(t, int64(2), food.Count)
	assert.InDelta(t, 166.29, food.TotalAmount, 0.001)

	// Ordered by descending total.
	assert.Equal(t, "Transport", rows[0].Category)
}

func TestCategoryReportEmptyLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	rows, err := svc.CategoryReport(user)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCategoryReportScopedToUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	alice := createTestUser(t, db, "g-1", "a@example.com").ID
	bob := createTestUser(t, db, "g-2", "b@example.com").ID

	addExpense(t, db, alice, 100, "Food", time.Now())
	addExpense(t, db, bob, 999, "Shopping", time.Now())

	rows, err := svc.CategoryReport(alice)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Food", rows[0].Category)
	assert.InDelta(t, 100, rows[0].Percentage, 0.001)
}

func TestMonthlyReportOrderingAndWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	now := time.Now()
	inWindow := []time.Time{
		now.Add(-10 * 24 * time.Hour),
		now.Add(-45 * 24 * time.Hour),
		now.Add(-100 * 24 * time.Hour),
	}
	for i, d := range inWindow {
		addExpense(t, db, user, float64(10*(i+1)), "Food", d)
	}
	// Outside the 6*30-day window.
	addExpense(t, db, user, 5000, "Food", now.Add(-200*24*time.Hour))

	rows, err := svc.MonthlyReport(user, 6)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	windowStart := now.Add(-6 * 30 * 24 * time.Hour)
	monthFloor := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, time.UTC)

	var total float64
	var count int64
	prev := time.Time{}
	for _, row := range rows {
		bucket, err := time.Parse("January 2006", row.Month)
		require.NoError(t, err)
		// Strictly ascending, nothing before the window's month.
		assert.True(t, bucket.After(prev), "buckets must be strictly ascending")
		assert.False(t, bucket.Before(monthFloor), "bucket %s outside window", row.Month)
		prev = bucket
		total += row.TotalAmount
		count += row.Count
	}
	assert.Equal(t, int64(3), count)
	assert.InDelta(t, 60, total, 0.001)
}

func TestMonthlyReportDefaultWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	addExpense(t, db, user, 10, "Food", time.Now())

	rows, err := svc.MonthlyReport(user, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Count)
}

func TestSummaryReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	now := time.Now()
	addExpense(t, db, user, 10, "Food", now)
	addExpense(t, db, user, 20, "Food", now)
	addExpense(t, db, user, 5, "Transport", now)

	report, err := svc.SummaryReport(user)
	require.NoError(t, err)
	assert.InDelta(t, 35, report.TotalAmount, 0.001)
	assert.Equal(t, int64(3), report.TotalCount)
	assert.InDelta(t, 11.67, report.AverageAmount, 0.001)
	assert.Len(t, report.Categories, 2)
}

func TestSummaryReportEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	user := createTestUser(t, db, "g-1", "a@example.com").ID

	report, err := svc.SummaryReport(user)
	require.NoError(t, err)
	assert.Zero(t, report.TotalAmount)
	assert.Zero(t, report.TotalCount)
	assert.Zero(t, report.AverageAmount)
	assert.Empty(t, report.Categories)
}
