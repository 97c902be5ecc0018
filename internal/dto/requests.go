// Package dto holds the request payloads bound at the HTTP boundary.
package dto

import (
	"github.com/shopspring/decimal"

	"expense-manager/internal/models"
)

// CreateCategoryRequest creates a category; the id is assigned server-side.
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
	Description  string `json:"description"`
}

// UpdateCategoryRequest rewrites an existing category.
type UpdateCategoryRequest struct {
	CategoryID   string `json:"category_id" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
	Description  string `json:"description"`
}

// CreateExpenseRequest records a spend against a category.
type CreateExpenseRequest struct {
	CategoryID  string           `json:"category_id" validate:"required"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description"`
}

// FetchRequest drives category/expense fetches. Filters is table-agnostic;
// unknown columns in it are ignored, not rejected.
type FetchRequest struct {
	UserID  string             `json:"user_id" validate:"required"`
	Filters *models.FilterSpec `json:"filters"`
}

// Spec returns the filter payload, empty when the caller sent none.
func (r FetchRequest) Spec() models.FilterSpec {
	if r.Filters == nil {
		return models.FilterSpec{}
	}
	return *r.Filters
}

// UpdateProfileRequest rewrites a user profile document.
type UpdateProfileRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	UserRole string `json:"user_role" validate:"required"`
}
