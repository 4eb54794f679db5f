package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"github.com/mertdogan/expense-tracker-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Categories handles GET /expenses/reports/categories.
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	rows, err := h.reportService.CategoryReport(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build category report",
		})
	}
	return c.JSON(rows)
}

// Monthly handles GET /expenses/reports/monthly?months=N.
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	months := c.QueryInt("months", services.DefaultReportMonths)
	rows, err := h.reportService.MonthlyReport(userID, months)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build monthly report",
		})
	}
	return c.JSON(rows)
}

// Summary handles GET /expenses/reports/summary.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	report, err := h.reportService.SummaryReport(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build summary report",
		})
	}
	return c.JSON(report)
}
