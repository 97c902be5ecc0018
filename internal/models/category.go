package models

// Category is an expense category. IDs are assigned server-side at create
// time; category names are unique across the table (enforced by a pre-check
// in the service layer, backed by a unique index in the migration).
type Category struct {
	CategoryID   string   `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName string   `gorm:"column:category_name;not null" json:"category_name"`
	Description  string   `gorm:"column:description" json:"description"`
	Meta         Metadata `gorm:"column:meta;type:json" json:"meta"`
}

// TableName returns the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// Row returns the generic row representation consumed by the table accessor.
func (c Category) Row() map[string]interface{} {
	return map[string]interface{}{
		"category_id":   c.CategoryID,
		"category_name": c.CategoryName,
		"description":   c.Description,
		"meta":          c.Meta,
	}
}
