package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mertdogan/expense-tracker-api/internal/catalog"
	"github.com/mertdogan/expense-tracker-api/internal/dto"
	"github.com/mertdogan/expense-tracker-api/internal/scope"
	"github.com/mertdogan/expense-tracker-api/internal/services"
)

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	expense, err := h.expenseService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create expense",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// List handles GET /expenses with offset/limit pagination.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", services.DefaultListLimit)

	expenses, total, err := h.expenseService.List(userID, offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch expenses",
		})
	}

	if limit < 1 || limit > services.DefaultListLimit {
		limit = services.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return c.JSON(dto.ExpensesListResponse{
		Expenses: expenses,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// GetByID handles GET /expenses/:id.
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expense ID",
		})
	}

	expense, err := h.expenseService.GetByID(userID, id)
	if err != nil {
		return expenseError(c, err)
	}
	return c.JSON(expense)
}

// Update handles PUT /expenses/:id with patch semantics.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expense ID",
		})
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	expense, err := h.expenseService.Update(userID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return expenseError(c, err)
	}
	return c.JSON(expense)
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expense ID",
		})
	}

	if err := h.expenseService.Delete(userID, id); err != nil {
		return expenseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}

// ClearAll handles DELETE /expenses - removes every expense of the user.
func (h *ExpenseHandler) ClearAll(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	deleted, err := h.expenseService.ClearAll(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear expenses",
		})
	}
	return c.JSON(dto.ClearAllResponse{Deleted: deleted})
}

// Seed handles POST /expenses/seed - destructively replaces the user's
// expenses with synthetic records.
func (h *ExpenseHandler) Seed(c *fiber.Ctx) error {
	userID, err := scope.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SeedRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid request body",
			})
		}
	}

	expenses, err := h.expenseService.Seed(userID, req.Count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to seed expenses",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SeedResponse{
		Expenses: expenses,
		Count:    len(expenses),
	})
}

// Categories handles GET /expenses/categories - the fixed catalog for client
// pickers.
func (h *ExpenseHandler) Categories(c *fiber.Ctx) error {
	categories := make(map[string][]string, len(catalog.Names))
	for _, name := range catalog.Names {
		categories[name] = catalog.Titles(name)
	}
	return c.JSON(dto.CategoryCatalogResponse{
		Categories: categories,
		Names:      catalog.Names,
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func expenseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrExpenseNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Expense not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
