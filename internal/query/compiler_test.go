package query_test

import (
	"testing"

	"expense-manager/internal/database"
	"expense-manager/internal/models"
	"expense-manager/internal/query"

	"github.com/stretchr/testify/suite"
)

// CompilerSuite exercises the filter/sort compiler against a real schema so
// the generated clauses are validated by execution, not string inspection.
type CompilerSuite struct {
	suite.Suite
	db *database.DB
}

func (s *CompilerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	seed := []models.Category{
		{
			CategoryID:   "cat-food",
			CategoryName: "food",
			Description:  "monthly",
			Meta:         models.Metadata{CreatedBy: "u3", CreatedAt: 300},
		},
		{
			CategoryID:   "cat-rent",
			CategoryName: "rent",
			Description:  "monthly",
			Meta:         models.Metadata{CreatedBy: "u1", CreatedAt: 100},
		},
		{
			CategoryID:   "cat-travel",
			CategoryName: "travel",
			Description:  "yearly",
			Meta:         models.Metadata{CreatedBy: "u2", CreatedAt: 200},
		},
	}
	for _, c := range seed {
		s.Require().NoError(s.db.Create(&c).Error)
	}
}

func (s *CompilerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCompilerSuite(t *testing.T) {
	suite.Run(t, new(CompilerSuite))
}

func (s *CompilerSuite) fetch(spec models.FilterSpec) []map[string]interface{} {
	var rows []map[string]interface{}
	q := query.Compile(s.db.Table("categories"), models.CategoriesTable, spec)
	s.Require().NoError(q.Find(&rows).Error)
	return rows
}

func names(rows []map[string]interface{}) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row["category_name"].(string))
	}
	return out
}

func (s *CompilerSuite) TestEmptySpecReturnsEverything() {
	rows := s.fetch(models.FilterSpec{})
	s.Len(rows, 3)
}

func (s *CompilerSuite) TestSortByColumnAsc() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "category_name", Sort: "asc"}},
	})
	s.Equal([]string{"food", "rent", "travel"}, names(rows))
}

func (s *CompilerSuite) TestSortByColumnDesc() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "category_name", Sort: "desc"}},
	})
	s.Equal([]string{"travel", "rent", "food"}, names(rows))
}

func (s *CompilerSuite) TestSortDirectionCaseInsensitive() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "category_name", Sort: "DESC"}},
	})
	s.Equal([]string{"travel", "rent", "food"}, names(rows))
}

// created_at is not a column; the alias map points it into the meta document.
func (s *CompilerSuite) TestSortByCreatedAtAlias() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "created_at", Sort: "asc"}},
	})
	s.Equal([]string{"rent", "travel", "food"}, names(rows))
}

func (s *CompilerSuite) TestSortByMetaFieldDirectly() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "meta.created_by", Sort: "desc"}},
	})
	s.Equal([]string{"food", "travel", "rent"}, names(rows))
}

func (s *CompilerSuite) TestSecondarySortBreaksTies() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{
			{ColID: "description", Sort: "asc"},
			{ColID: "category_name", Sort: "desc"},
		},
	})
	s.Equal([]string{"rent", "food", "travel"}, names(rows))
}

// Unknown columns, bad directions, and non-identifier meta fields all vanish
// without affecting the rest of the query.
func (s *CompilerSuite) TestUnknownSortColumnIgnored() {
	baseline := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{{ColID: "category_name", Sort: "asc"}},
	})
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{
			{ColID: "no_such_column", Sort: "asc"},
			{ColID: "category_name", Sort: "asc"},
		},
	})
	s.Equal(names(baseline), names(rows))
}

func (s *CompilerSuite) TestInvalidSortDirectionIgnored() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{
			{ColID: "category_name", Sort: "sideways"},
			{ColID: "created_at", Sort: "asc"},
		},
	})
	s.Equal([]string{"rent", "travel", "food"}, names(rows))
}

func (s *CompilerSuite) TestNonIdentifierMetaFieldIgnored() {
	rows := s.fetch(models.FilterSpec{
		SortModel: []models.SortEntry{
			{ColID: "meta.created_at; DROP TABLE categories", Sort: "asc"},
			{ColID: "category_name", Sort: "asc"},
		},
	})
	s.Equal([]string{"food", "rent", "travel"}, names(rows))

	var count int64
	s.Require().NoError(s.db.Table("categories").Count(&count).Error)
	s.EqualValues(3, count)
}

func (s *CompilerSuite) TestFilterEquality() {
	rows := s.fetch(models.FilterSpec{
		FilterModel: map[string]interface{}{"category_name": "food"},
	})
	s.Equal([]string{"food"}, names(rows))
}

func (s *CompilerSuite) TestFilterPercentMeansLike() {
	rows := s.fetch(models.FilterSpec{
		FilterModel: map[string]interface{}{"category_name": "%r%"},
		SortModel:   []models.SortEntry{{ColID: "category_name", Sort: "asc"}},
	})
	s.Equal([]string{"rent", "travel"}, names(rows))
}

func (s *CompilerSuite) TestFiltersConjunct() {
	rows := s.fetch(models.FilterSpec{
		FilterModel: map[string]interface{}{
			"category_name": "%r%",
			"description":   "monthly",
		},
	})
	s.Equal([]string{"rent"}, names(rows))
}

func (s *CompilerSuite) TestUnknownFilterColumnIgnored() {
	rows := s.fetch(models.FilterSpec{
		FilterModel: map[string]interface{}{"no_such_column": "anything"},
	})
	s.Len(rows, 3)
}
