package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"gorm.io/gorm"
)

const DefaultReportMonths = 6

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// CategoryReport groups the user's expenses by category with each category's
// share of the grand total. Empty ledger yields an empty report.
func (s *ReportService) CategoryReport(userID uint) ([]dto.CategoryReportRow, error) {
	var rows []dto.CategoryReportRow
	err := s.db.Model(&models.Expense{}).
		Scopes(scope.ForUser(userID)).
		Select("category, COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS count").
		Group("category").
		Order("total_amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build category report: %w", err)
	}

	var grandTotal float64
	for _, row := range rows {
		grandTotal += row.TotalAmount
	}
	for i := range rows {
		if grandTotal > 0 {
			rows[i].Percentage = round2(rows[i].TotalAmount / grandTotal * 100)
		}
		rows[i].TotalAmount = round2(rows[i].TotalAmount)
	}

	if rows == nil {
		rows = []dto.CategoryReportRow{}
	}
	return rows, nil
}

// MonthlyReport buckets the last months*30 days of expenses by calendar
// month, oldest bucket first. The window is a 30-day-per-month approximation,
// not calendar-exact.
func (s *ReportService) MonthlyReport(userID uint, months int) ([]dto.MonthlyReportRow, error) {
	if months < 1 {
		months = DefaultReportMonths
	}
	cutoff := time.Now().Add(-time.Duration(months) * 30 * 24 * time.Hour)

	var expenses []models.Expense
	err := s.db.Scopes(scope.ForUser(userID)).
		Select("date, amount").
		Where("date >= ?", cutoff).
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly report: %w", err)
	}

	type bucket struct {
		total float64
		count int64
	}
	buckets := make(map[time.Time]*bucket)
	for _, e := range expenses {
		key := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += e.Amount
		b.count++
	}

	keys := make([]time.Time, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	rows := make([]dto.MonthlyReportRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, dto.MonthlyReportRow{
			Month:       k.Format("January 2006"),
			TotalAmount: round2(buckets[k].total),
			Count:       buckets[k].count,
		})
	}
	return rows, nil
}

// SummaryReport returns grand totals, the average expense amount, and the
// full category breakdown.
func (s *ReportService) SummaryReport(userID uint) (*dto.SummaryReport, error) {
	var totals struct {
		TotalAmount float64
		TotalCount  int64
	}
	err := s.db.Model(&models.Expense{}).
		Scopes(scope.ForUser(userID)).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(*) AS total_count").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build summary report: %w", err)
	}

	categories, err := s.CategoryReport(userID)
	if err != nil {
		return nil, err
	}

	var average float64
	if totals.TotalCount > 0 {
		average = round2(totals.TotalAmount / float64(totals.TotalCount))
	}

	return &dto.SummaryReport{
		TotalAmount:   round2(totals.TotalAmount),
		TotalCount:    totals.TotalCount,
		AverageAmount: average,
		Categories:    categories,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
