package models

import (
	"github.com/shopspring/decimal"
)

// Expense is a single spend record linked to a category. The category
// reference is not enforced at the application level; a dangling category_id
// simply produces an expense that no category fetch will join against.
type Expense struct {
	TID         string          `gorm:"column:t_id;primaryKey" json:"t_id"`
	CategoryID  string          `gorm:"column:category_id;not null" json:"category_id"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric" json:"amount"`
	Description string          `gorm:"column:description" json:"description"`
	Meta        Metadata        `gorm:"column:meta;type:json" json:"meta"`
}

// TableName returns the table name for Expense. The table is named
// "transaction" (singular) for compatibility with existing deployments.
func (Expense) TableName() string {
	return "transaction"
}

// Row returns the generic row representation consumed by the table accessor.
func (e Expense) Row() map[string]interface{} {
	return map[string]interface{}{
		"t_id":        e.TID,
		"category_id": e.CategoryID,
		"amount":      e.Amount,
		"description": e.Description,
		"meta":        e.Meta,
	}
}
