package handlers

import (
	"context"

	"expense-manager/internal/dto"

	"github.com/labstack/echo/v4"
)

// CategoryServiceInterface is the service surface the category handler needs.
type CategoryServiceInterface interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest, userID string) (string, error)
	Update(ctx context.Context, req dto.UpdateCategoryRequest, userID string) error
	Fetch(ctx context.Context, req dto.FetchRequest) (interface{}, error)
}

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categories CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create handles POST /category/create. Data is the new category id.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return Failure(c, "Failed to create categories", err)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to create categories", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to create categories", err)
	}

	categoryID, err := h.categories.Create(c.Request().Context(), req, userID)
	if err != nil {
		return Failure(c, "Failed to create categories", err)
	}
	return Success(c, categoryID)
}

// Update handles POST /category/update. Data is null on success.
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return Failure(c, "Failed to update categories", err)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to update categories", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to update categories", err)
	}

	if err := h.categories.Update(c.Request().Context(), req, userID); err != nil {
		return Failure(c, "Failed to update categories", err)
	}
	return Success(c, nil)
}

// Fetch handles POST /category/fetch. Data is an array of categories, the
// bare object when exactly one matches, or an empty array.
func (h *CategoryHandler) Fetch(c echo.Context) error {
	var req dto.FetchRequest
	if err := c.Bind(&req); err != nil {
		return Failure(c, "Failed to fetch categories", err)
	}
	if err := c.Validate(&req); err != nil {
		return Failure(c, "Failed to fetch categories", err)
	}

	data, err := h.categories.Fetch(c.Request().Context(), req)
	if err != nil {
		return Failure(c, "Failed to fetch categories", err)
	}
	return Success(c, data)
}
