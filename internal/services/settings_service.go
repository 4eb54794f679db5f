package services

import (
	"errors"
	"fmt"

	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/models"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the user's settings, creating the default row on first access.
// Concurrent first access is resolved by the unique index on user_id: the
// losing insert re-reads the surviving row.
func (s *SettingsService) Get(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Scopes(scope.ForUser(userID)).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings = models.UserSettings{
		UserID:   userID,
		Theme:    models.DefaultTheme,
		Currency: models.DefaultCurrency,
	}
	if err := s.db.Create(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.UserSettings
			if ferr := s.db.Scopes(scope.ForUser(userID)).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return &settings, nil
}

// Update applies a partial update, creating defaults first when the row is
// absent.
func (s *SettingsService) Update(userID uint, req *dto.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update settings: %w", err)
		}
	}
	return settings, nil
}
