// Package seed fills a development database with plausible categories and
// expenses. Never enabled in production; gated on SEED_DATABASE=true.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"expense-manager/internal/models"
	"expense-manager/internal/services"
	"expense-manager/internal/store"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Food", "Transport", "Rent", "Utilities", "Entertainment",
	"Health", "Travel", "Shopping", "Education", "Subscriptions",
}

// Generator writes sample rows through the same accessors production uses.
type Generator struct {
	db *gorm.DB
}

// NewGenerator creates a seed generator over the shared session.
func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

// RunIfEnabled seeds when SEED_DATABASE=true and the tables are empty.
func (g *Generator) RunIfEnabled(ctx context.Context, expensesPerCategory int) error {
	if os.Getenv("SEED_DATABASE") != "true" {
		return nil
	}

	var count int64
	if err := g.db.WithContext(ctx).Table(models.CategoriesTable.Name).Count(&count).Error; err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if count > 0 {
		slog.Info("seed skipped, categories already present", "count", count)
		return nil
	}

	return g.Run(ctx, expensesPerCategory)
}

// Run inserts every sample category and a batch of expenses under each.
func (g *Generator) Run(ctx context.Context, expensesPerCategory int) error {
	categories := store.NewAccessor(g.db, models.CategoriesTable)
	expenses := store.NewAccessor(g.db, models.ExpensesTable)

	seedUser := "seed"

	for _, name := range categoryNames {
		category := models.Category{
			CategoryID:   services.NewShortID(),
			CategoryName: name,
			Description:  gofakeit.Sentence(6),
			Meta:         models.NewCreatedStamp(seedUser),
		}
		if _, err := categories.Insert(ctx, []map[string]interface{}{category.Row()}); err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}

		rows := make([]map[string]interface{}, 0, expensesPerCategory)
		for i := 0; i < expensesPerCategory; i++ {
			expense := models.Expense{
				TID:         services.NewShortID(),
				CategoryID:  category.CategoryID,
				Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
				Description: gofakeit.ProductName(),
				Meta:        models.NewCreatedStamp(seedUser),
			}
			rows = append(rows, expense.Row())
		}
		if _, err := expenses.Insert(ctx, rows); err != nil {
			return fmt.Errorf("seeding expenses for %q: %w", name, err)
		}
	}

	slog.Info("seed completed",
		"categories", len(categoryNames),
		"expenses", len(categoryNames)*expensesPerCategory,
	)
	return nil
}
