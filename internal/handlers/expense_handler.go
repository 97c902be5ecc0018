package handlers

import (
	"context"

	"expense-manager/internal/dto"

	"github.com/labstack/echo/v4"
)

// ExpenseServiceInterface is the service surface the expense handler needs.
type ExpenseServiceInterface interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest, userID string) (string, error)
	Fetch(ctx context.Context, req dto.FetchRequest) (interface{}, error)
}

// ExpenseHandler handles transaction HTTP requests.
type ExpenseHandler struct {
	expenses ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenses ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create handles POST /transaction/create. Data is the linked category id.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return Failure(c, "Failed to create transactions", err)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to create transactions", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to create transactions", err)
	}

	categoryID, err := h.expenses.Create(c.Request().Context(), req, userID)
	if err != nil {
		return Failure(c, "Failed to create transactions", err)
	}
	return Success(c, categoryID)
}

// Fetch handles POST /transaction/fetch with the same shaping rule as
// category fetch.
func (h *ExpenseHandler) Fetch(c echo.Context) error {
	var req dto.FetchRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to fetch transactions", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to fetch transactions", err)
	}

	data, err := h.expenses.Fetch(c.Request().Context(), req)
	if err != nil {
		return Failure(c, "Failed to fetch transactions", err)
	}
	return Success(c, data)
}
