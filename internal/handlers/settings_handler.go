package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"github.com/mertdogan/expense-tracker-api/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /settings - returns the user's settings, creating defaults
// on first access.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	settings, err := h.settingsService.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		Theme:    settings.Theme,
		Currency: settings.Currency,
	})
}

// Update handles PUT /settings with patch semantics.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	settings, err := h.settingsService.Update(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		Theme:    settings.Theme,
		Currency: settings.Currency,
	})
}
