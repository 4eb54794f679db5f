package dto

import (
	"time"

	"github.com/mertdogan/expense-tracker-api/internal/models"
)

type CreateExpenseRequest struct {
	Title    string     `json:"title"`
	Amount   float64    `json:"amount"`
	Category string     `json:"category,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

// UpdateExpenseRequest carries patch semantics: nil fields are left untouched.
type UpdateExpenseRequest struct {
	Title    *string    `json:"title,omitempty"`
	Amount   *float64   `json:"amount,omitempty"`
	Category *string    `json:"category,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
}

type ExpensesListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

type SeedRequest struct {
	Count int `json:"count"`
}

type SeedResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Count    int              `json:"count"`
}

type ClearAllResponse struct {
	Deleted int64 `json:"deleted"`
}

type CategoryCatalogResponse struct {
	Categories map[string][]string `json:"categories"`
	Names      []string            `json:"names"`
}
