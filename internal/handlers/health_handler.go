package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mertdogan/expense-tracker-api/internal/database"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"
	status := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "down"
		status = "degraded"
	}

	return c.JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
