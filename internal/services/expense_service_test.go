package services

import (
	"context"
	"testing"

	"expense-manager/internal/database"
	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseServiceSuite defines the test suite for ExpenseService.
type ExpenseServiceSuite struct {
	suite.Suite
	db      *database.DB
	service *ExpenseService
	ctx     context.Context
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewExpenseService(s.db.DB)
	s.ctx = context.Background()
}

func (s *ExpenseServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) create(categoryID string, amount int64, description string) string {
	d := decimal.NewFromInt(amount)
	got, err := s.service.Create(s.ctx, dto.CreateExpenseRequest{
		CategoryID:  categoryID,
		Amount:      &d,
		Description: description,
	}, "user-1")
	s.Require().NoError(err)
	return got
}

// Create answers with the linked category id, not the generated expense id.
// Deployed clients depend on that.
func (s *ExpenseServiceSuite) TestCreate_ReturnsCategoryID() {
	got := s.create("cat-1", 250, "weekly shop")
	s.Equal("cat-1", got)

	acc := store.NewAccessor(s.db.DB, models.ExpensesTable)
	res, err := acc.SelectFrom(s.ctx, store.SelectOptions{
		Conds:     map[string]interface{}{"category_id": "cat-1"},
		SelectOne: true,
	})
	s.Require().NoError(err)

	row, ok := res.Data.(map[string]interface{})
	s.Require().True(ok)
	s.Len(row["t_id"], 22)
	s.EqualValues(250, row["amount"])
	s.Equal("weekly shop", row["description"])

	meta := row["meta"].(map[string]interface{})
	s.Equal("user-1", meta["created_by"])
}

func (s *ExpenseServiceSuite) TestFetch_FilterByCategory() {
	s.create("cat-1", 100, "bus")
	s.create("cat-1", 200, "train")
	s.create("cat-2", 900, "rent")

	data, err := s.service.Fetch(s.ctx, dto.FetchRequest{
		UserID: "user-1",
		Filters: &models.FilterSpec{
			FilterModel: map[string]interface{}{"category_id": "cat-1"},
			SortModel:   []models.SortEntry{{ColID: "description", Sort: "asc"}},
		},
	})
	s.NoError(err)

	rows, ok := data.([]map[string]interface{})
	s.Require().True(ok, "two matches should stay a slice, got %T", data)
	s.Require().Len(rows, 2)
	s.Equal("bus", rows[0]["description"])
	s.Equal("train", rows[1]["description"])
}

func (s *ExpenseServiceSuite) TestFetch_SingleMatchCollapses() {
	s.create("cat-2", 900, "rent")

	data, err := s.service.Fetch(s.ctx, dto.FetchRequest{
		UserID:  "user-1",
		Filters: &models.FilterSpec{FilterModel: map[string]interface{}{"category_id": "cat-2"}},
	})
	s.NoError(err)

	row, ok := data.(map[string]interface{})
	s.Require().True(ok, "one expense should collapse to the bare object, got %T", data)
	s.Equal("rent", row["description"])
}

func (s *ExpenseServiceSuite) TestFetch_SortByCreatedAtAlias() {
	s.create("cat-1", 100, "first")
	s.create("cat-1", 200, "second")

	// Unknown sort columns contribute nothing; the alias still applies.
	data, err := s.service.Fetch(s.ctx, dto.FetchRequest{
		UserID: "user-1",
		Filters: &models.FilterSpec{
			SortModel: []models.SortEntry{
				{ColID: "bogus", Sort: "asc"},
				{ColID: "created_at", Sort: "asc"},
			},
		},
	})
	s.NoError(err)

	rows, ok := data.([]map[string]interface{})
	s.Require().True(ok)
	s.Len(rows, 2)
}
