// Package query translates a client-supplied, grid-style filter/sort payload
// into relational query clauses against any registered table.
package query

import (
	"fmt"
	"strings"

	"expense-manager/internal/models"

	"gorm.io/gorm"
)

const metaPrefix = "meta."

// Compile applies f to a base query over table. Sort entries are applied in
// caller order so earlier entries produce the primary ordering; filter
// entries conjunct. Unknown columns and unrecognized sort directions are
// dropped without error: grid frontends routinely send extra keys and the
// contract is that they have zero effect.
func Compile(db *gorm.DB, table models.TableDescriptor, f models.FilterSpec) *gorm.DB {
	db = applySorts(db, table, f.SortModel)
	return applyFilters(db, table, f.FilterModel)
}

func applySorts(db *gorm.DB, table models.TableDescriptor, sorts []models.SortEntry) *gorm.DB {
	for _, entry := range sorts {
		colID := table.ResolveAlias(entry.ColID)
		dir, ok := sortDirection(entry.Sort)
		if !ok {
			continue
		}

		switch {
		case table.HasColumn(colID):
			db = db.Order(fmt.Sprintf("%s %s", colID, dir))
		case strings.HasPrefix(colID, metaPrefix):
			field := strings.TrimPrefix(colID, metaPrefix)
			if !isIdentifier(field) {
				continue
			}
			db = db.Order(fmt.Sprintf("%s %s", jsonFieldExpr(db, "meta", field), dir))
		}
	}
	return db
}

func applyFilters(db *gorm.DB, table models.TableDescriptor, filters map[string]interface{}) *gorm.DB {
	for column, value := range filters {
		if !table.HasColumn(column) {
			continue
		}
		if s, ok := value.(string); ok && strings.Contains(s, "%") {
			db = db.Where(fmt.Sprintf("%s LIKE ?", column), s)
			continue
		}
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return db
}

// sortDirection normalizes a direction string. Anything other than asc/desc
// (case-insensitive) means the sort entry contributes no clause.
func sortDirection(s string) (string, bool) {
	switch strings.ToLower(s) {
	case "desc":
		return "DESC", true
	case "asc":
		return "ASC", true
	default:
		return "", false
	}
}

// isIdentifier guards the JSON field name before it is interpolated into the
// extraction expression. Non-identifier fields are dropped like any other
// unknown sort column.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// jsonFieldExpr renders a text extraction of field from a JSON column for the
// session's dialect. Postgres serves production; sqlite serves the test DB.
func jsonFieldExpr(db *gorm.DB, column, field string) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("json_extract(%s, '$.%s')", column, field)
	}
	return fmt.Sprintf("%s->>'%s'", column, field)
}
