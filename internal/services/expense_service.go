package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/catalog"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrTitleRequired   = errors.New("title is required")
)

const (
	DefaultListLimit = 100
	DefaultSeedCount = 10
	MaxSeedCount     = 100
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// Create persists a new expense for the user. Category defaults to "Other"
// and date to now when omitted.
func (s *ExpenseService) Create(userID uint, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	expense := models.Expense{
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: category,
		Date:     date,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

// List returns one page of the user's expenses, newest first, plus the total
// row count for that user.
func (s *ExpenseService) List(userID uint, offset, limit int) ([]models.Expense, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	var total int64
	if err := s.db.Model(&models.Expense{}).Scopes(scope.ForUser(userID)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	var expenses []models.Expense
	err := s.db.Scopes(scope.ForUser(userID)).
		Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByID returns the expense only when it belongs to the user. A row owned
// by someone else is indistinguishable from a missing one.
func (s *ExpenseService) GetByID(userID, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := s.db.Scopes(scope.ForUser(userID)).First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}
	return &expense, nil
}

// Update applies a partial update: only non-nil fields change.
func (s *ExpenseService) Update(userID, id uint, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = *req.Title
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update expense: %w", err)
		}
	}
	return expense, nil
}

// Delete removes the expense when owned by the user.
func (s *ExpenseService) Delete(userID, id uint) error {
	result := s.db.Scopes(scope.ForUser(userID)).Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// ClearAll deletes every expense owned by the user and reports how many rows
// went away. Zero matches is still a success.
func (s *ExpenseService) ClearAll(userID uint) (int64, error) {
	result := s.db.Scopes(scope.ForUser(userID)).Delete(&models.Expense{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear expenses: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Seed replaces all of the user's expenses with count synthetic records:
// random catalog category, a matching title suggestion, amount uniform in
// [50, 1000] rounded to 2 decimals, date uniform over the past 30 days.
func (s *ExpenseService) Seed(userID uint, count int) ([]models.Expense, error) {
	if count < 1 {
		count = DefaultSeedCount
	}
	if count > MaxSeedCount {
		count = MaxSeedCount
	}

	now := time.Now()
	expenses := make([]models.Expense, count)
	for i := range expenses {
		category := catalog.RandomCategory()
		expenses[i] = models.Expense{
			UserID:   userID,
			Title:    catalog.RandomTitle(category),
			Category: category,
			Amount:   math.Round((50+rand.Float64()*950)*100) / 100,
			Date:     now.Add(-time.Duration(rand.Int63n(int64(30 * 24 * time.Hour)))),
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scope.ForUser(userID)).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Create(&expenses).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed expenses: %w", err)
	}

	return expenses, nil
}
