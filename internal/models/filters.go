package models

// SortEntry is one entry of a grid sort model: a column id plus a direction
// string ("asc"/"desc", compared case-insensitively). Entries with unknown
// columns or directions are silently dropped by the query compiler.
type SortEntry struct {
	ColID string `json:"colId"`
	Sort  string `json:"sort"`
}

// FilterSpec is the client-supplied, table-agnostic filter+sort payload.
// FilterModel maps column names to an exact value or a LIKE pattern (any
// string containing '%'); SortModel is ordered, earlier entries win.
type FilterSpec struct {
	FilterModel map[string]interface{} `json:"filterModel"`
	SortModel   []SortEntry            `json:"sortModel"`
}

// IsZero reports whether the spec would leave a query untouched.
func (f FilterSpec) IsZero() bool {
	return len(f.FilterModel) == 0 && len(f.SortModel) == 0
}
