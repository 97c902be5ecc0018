package models

// TableDescriptor is the registration-time description of a relational table:
// its name, column set, and sort alias map. The query compiler and the table
// accessor operate purely through descriptors, which is what lets one
// implementation serve every table without per-entity query code.
type TableDescriptor struct {
	Name       string
	PrimaryKey string
	columns    map[string]struct{}
	// Aliases rewrites client-facing sort ids before column resolution,
	// e.g. created_at -> meta.created_at.
	Aliases map[string]string
	// JSONColumns are serialized as JSON text in the row and are expanded
	// back into objects when results are shaped.
	JSONColumns []string
}

// NewTableDescriptor builds a descriptor from an explicit column list.
func NewTableDescriptor(name, primaryKey string, columns []string) TableDescriptor {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return TableDescriptor{
		Name:       name,
		PrimaryKey: primaryKey,
		columns:    set,
		Aliases:    map[string]string{},
	}
}

// HasColumn reports whether name is a direct column of the table.
func (t TableDescriptor) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Columns returns the column names. Order is not significant.
func (t TableDescriptor) Columns() []string {
	out := make([]string, 0, len(t.columns))
	for c := range t.columns {
		out = append(out, c)
	}
	return out
}

// ResolveAlias maps a client-facing sort id to its storage column id.
func (t TableDescriptor) ResolveAlias(colID string) string {
	if mapped, ok := t.Aliases[colID]; ok {
		return mapped
	}
	return colID
}

// IsJSONColumn reports whether the named column holds serialized JSON.
func (t TableDescriptor) IsJSONColumn(name string) bool {
	for _, c := range t.JSONColumns {
		if c == name {
			return true
		}
	}
	return false
}

var (
	// CategoriesTable describes the categories table.
	CategoriesTable = func() TableDescriptor {
		d := NewTableDescriptor("categories", "category_id",
			[]string{"category_id", "category_name", "description", "meta"})
		d.Aliases = map[string]string{"created_at": "meta.created_at"}
		d.JSONColumns = []string{"meta"}
		return d
	}()

	// ExpensesTable describes the transaction table.
	ExpensesTable = func() TableDescriptor {
		d := NewTableDescriptor("transaction", "t_id",
			[]string{"t_id", "category_id", "amount", "description", "meta"})
		d.Aliases = map[string]string{"created_at": "meta.created_at"}
		d.JSONColumns = []string{"meta"}
		return d
	}()
)
