package services

import (
	"context"
	"log/slog"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/models"
	"expense-manager/internal/query"
	"expense-manager/internal/store"

	"gorm.io/gorm"
)

// ExpenseService records and fetches expenses. Unlike categories there is no
// uniqueness invariant; creation is stamp-and-insert.
type ExpenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new expense service.
func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

func (s *ExpenseService) accessor() *store.Accessor {
	return store.NewAccessor(s.db, models.ExpensesTable)
}

// Create assigns an id, stamps created metadata, and inserts. The returned
// value is the linked category id, not the new expense id; existing clients
// depend on that.
func (s *ExpenseService) Create(ctx context.Context, req dto.CreateExpenseRequest, userID string) (string, error) {
	expense := models.Expense{
		TID:         NewShortID(),
		CategoryID:  req.CategoryID,
		Amount:      *req.Amount,
		Description: req.Description,
		Meta:        models.NewCreatedStamp(userID),
	}

	if _, err := s.accessor().Insert(ctx, []map[string]interface{}{expense.Row()}); err != nil {
		slog.Error("expense insert failed", "category_id", req.CategoryID, "error", err)
		return "", errors.Store(err)
	}
	return expense.CategoryID, nil
}

// Fetch mirrors category fetch over the transaction table.
func (s *ExpenseService) Fetch(ctx context.Context, req dto.FetchRequest) (interface{}, error) {
	spec := req.Spec()

	res, err := s.accessor().SelectFrom(ctx, store.SelectOptions{
		Scopes: []store.Scope{func(db *gorm.DB) *gorm.DB {
			return query.Compile(db, models.ExpensesTable, spec)
		}},
	})
	if err != nil {
		return nil, errors.Store(err)
	}
	return res.Data, nil
}
