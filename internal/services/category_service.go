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

// CategoryService applies category invariants on top of the generic table
// accessor: server-side id assignment, name uniqueness, audit stamping.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service.
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) accessor() *store.Accessor {
	return store.NewAccessor(s.db, models.CategoriesTable)
}

// Create assigns an id, pre-checks name uniqueness, stamps created metadata,
// and inserts. The check and the insert are separate statements; the unique
// index on category_name backstops the race window.
func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest, userID string) (string, error) {
	acc := s.accessor()

	existing, err := acc.SelectFrom(ctx, store.SelectOptions{
		Conds:     map[string]interface{}{"category_name": req.CategoryName},
		SelectOne: true,
	})
	if err != nil {
		return "", errors.Store(err)
	}
	if existing.Data != nil {
		return "", errors.Conflict(errors.CategoryNameTaken)
	}

	category := models.Category{
		CategoryID:   NewShortID(),
		CategoryName: req.CategoryName,
		Description:  req.Description,
		Meta:         models.NewCreatedStamp(userID),
	}

	if _, err := acc.Insert(ctx, []map[string]interface{}{category.Row()}); err != nil {
		slog.Error("category insert failed", "category_name", req.CategoryName, "error", err)
		return "", errors.Store(err)
	}
	return category.CategoryID, nil
}

// Update requires the target id to exist, preserves the original created
// stamp, stamps the updated fields, and writes the new values.
func (s *CategoryService) Update(ctx context.Context, req dto.UpdateCategoryRequest, userID string) error {
	acc := s.accessor()

	existing, err := acc.SelectFrom(ctx, store.SelectOptions{
		Conds:     map[string]interface{}{"category_id": req.CategoryID},
		SelectOne: true,
	})
	if err != nil {
		return errors.Store(err)
	}
	row, ok := existing.Data.(map[string]interface{})
	if !ok {
		return errors.NotFound(errors.CategoryNotFound)
	}

	meta := metadataOf(row)
	meta.Touch(userID)

	category := models.Category{
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Description:  req.Description,
		Meta:         meta,
	}

	if _, err := acc.UpdateWhere(ctx, category.Row(),
		map[string]interface{}{"category_id": req.CategoryID}); err != nil {
		slog.Error("category update failed", "category_id", req.CategoryID, "error", err)
		return errors.Store(err)
	}
	return nil
}

// Fetch compiles the request's filter spec against the categories table and
// returns the shaped result: a slice, or the bare object when exactly one
// row matches.
func (s *CategoryService) Fetch(ctx context.Context, req dto.FetchRequest) (interface{}, error) {
	acc := s.accessor()
	spec := req.Spec()

	res, err := acc.SelectFrom(ctx, store.SelectOptions{
		Scopes: []store.Scope{func(db *gorm.DB) *gorm.DB {
			return query.Compile(db, models.CategoriesTable, spec)
		}},
	})
	if err != nil {
		return nil, errors.Store(err)
	}
	return res.Data, nil
}

// metadataOf extracts the audit stamp from a shaped row.
func metadataOf(row map[string]interface{}) models.Metadata {
	raw, _ := row["meta"].(map[string]interface{})
	return models.MetadataFromMap(raw)
}
