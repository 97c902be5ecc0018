// Package store provides a generic relational accessor parameterized by a
// table descriptor. One implementation serves every table; entity-specific
// behavior lives in the services that drive it.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"expense-manager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope mutates a base query, typically with compiled filter/sort clauses.
type Scope func(*gorm.DB) *gorm.DB

// SelectOptions shapes a SelectFrom call. Conds are ANDed equality
// predicates; Scopes carry anything richer (the query compiler's output).
type SelectOptions struct {
	Conds     map[string]interface{}
	Columns   []string
	Scopes    []Scope
	SelectOne bool
	Offset    int
	Limit     int
	WithCount bool
	OrderBy   []string
	GroupBy   []string
}

// Result is the outcome of a SelectFrom call. Data is nil, a single row map,
// or a slice of row maps: exactly one matching row collapses to the lone map,
// which callers rely on to distinguish "found one" from "found a set".
type Result struct {
	Data  interface{}
	Count int64
}

// Accessor executes generic CRUD against one table over a shared session.
// Each write commits independently; there is no cross-call transaction.
type Accessor struct {
	db    *gorm.DB
	table models.TableDescriptor
}

// NewAccessor binds an accessor to a table for the lifetime of the request.
func NewAccessor(db *gorm.DB, table models.TableDescriptor) *Accessor {
	return &Accessor{db: db, table: table}
}

// Table exposes the bound descriptor for callers that compile filters.
func (a *Accessor) Table() models.TableDescriptor {
	return a.table
}

// Insert writes one or more rows. Each row map must be columns-complete for
// the table. When returning columns are requested their values are collected
// from the written rows (ids are generated server-side before insert, so the
// input rows already carry every returnable value).
func (a *Accessor) Insert(ctx context.Context, rows []map[string]interface{}, returning ...string) ([]map[string]interface{}, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	for _, row := range rows {
		if err := a.session(ctx).Create(normalizeWriteRow(a.table, row)).Error; err != nil {
			return nil, &WriteError{Op: "insert", Table: a.table.Name, Err: err}
		}
	}

	if len(returning) == 0 {
		return nil, nil
	}
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		returned := make(map[string]interface{}, len(returning))
		for _, col := range returning {
			returned[col] = row[col]
		}
		out = append(out, returned)
	}
	return out, nil
}

// UpdateWhere applies a column patch to every row matching conds. Zero
// matching rows is a no-op, not an error.
func (a *Accessor) UpdateWhere(ctx context.Context, data map[string]interface{}, conds map[string]interface{}) (int64, error) {
	res := a.session(ctx).Where(conds).Updates(normalizeWriteRow(a.table, data))
	if res.Error != nil {
		return 0, &WriteError{Op: "update", Table: a.table.Name, Err: res.Error}
	}
	return res.RowsAffected, nil
}

// Upsert inserts row, or on conflict over conflictColumns overwrites the
// existing row with the new values entirely.
func (a *Accessor) Upsert(ctx context.Context, row map[string]interface{}, conflictColumns []string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	normalized := normalizeWriteRow(a.table, row)
	err := a.session(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.Assignments(normalized),
	}).Create(normalized).Error
	if err != nil {
		return &WriteError{Op: "upsert", Table: a.table.Name, Err: err}
	}
	return nil
}

// Delete removes every row matching conds and reports how many went away.
func (a *Accessor) Delete(ctx context.Context, conds map[string]interface{}) (int64, error) {
	res := a.session(ctx).Where(conds).Delete(nil)
	if res.Error != nil {
		return 0, &WriteError{Op: "delete", Table: a.table.Name, Err: res.Error}
	}
	return res.RowsAffected, nil
}

// SelectFrom builds the base "select columns, where, order, group, offset"
// query and executes it per opts. See Result for the shaping contract.
func (a *Accessor) SelectFrom(ctx context.Context, opts SelectOptions) (Result, error) {
	q := a.baseQuery(ctx, opts)

	if opts.SelectOne {
		row := map[string]interface{}{}
		err := q.Limit(1).Find(&row).Error
		if err != nil {
			return Result{}, &ReadError{Op: "select", Table: a.table.Name, Err: err}
		}
		if len(row) == 0 {
			return Result{}, nil
		}
		return Result{Data: a.shapeRow(row)}, nil
	}

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []map[string]interface{}
	if err := q.Find(&rows).Error; err != nil {
		return Result{}, &ReadError{Op: "select", Table: a.table.Name, Err: err}
	}

	result := Result{Data: a.shapeRows(rows)}
	if opts.WithCount {
		count, err := a.count(ctx, opts)
		if err != nil {
			return Result{}, err
		}
		result.Count = count
	}
	return result, nil
}

// count re-runs the predicate set through a COUNT(*), ignoring limit/offset.
func (a *Accessor) count(ctx context.Context, opts SelectOptions) (int64, error) {
	q := a.db.WithContext(ctx).Table(a.table.Name)
	if len(opts.Conds) > 0 {
		q = q.Where(opts.Conds)
	}
	for _, scope := range opts.Scopes {
		q = scope(q)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, &ReadError{Op: "count", Table: a.table.Name, Err: err}
	}
	return count, nil
}

func (a *Accessor) baseQuery(ctx context.Context, opts SelectOptions) *gorm.DB {
	q := a.session(ctx)
	if len(opts.Columns) > 0 {
		q = q.Select(opts.Columns)
	}
	if len(opts.Conds) > 0 {
		q = q.Where(opts.Conds)
	}
	for _, scope := range opts.Scopes {
		q = scope(q)
	}
	for _, order := range opts.OrderBy {
		q = q.Order(order)
	}
	for _, group := range opts.GroupBy {
		q = q.Group(group)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	return q
}

func (a *Accessor) session(ctx context.Context) *gorm.DB {
	return a.db.WithContext(ctx).Table(a.table.Name)
}

// shapeRows serializes rows into the JSON-compatible structure the HTTP layer
// emits. A single matching row collapses to the bare object.
func (a *Accessor) shapeRows(rows []map[string]interface{}) interface{} {
	shaped := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		shaped = append(shaped, a.shapeRow(row))
	}
	if len(shaped) == 1 {
		return shaped[0]
	}
	return shaped
}

// shapeRow expands JSON-typed columns (stored as text) back into objects.
func (a *Accessor) shapeRow(row map[string]interface{}) map[string]interface{} {
	for _, col := range a.table.JSONColumns {
		raw, ok := row[col]
		if !ok {
			continue
		}

		var data []byte
		switch v := raw.(type) {
		case []byte:
			data = v
		case string:
			data = []byte(v)
		default:
			continue
		}

		var decoded map[string]interface{}
		if err := json.Unmarshal(data, &decoded); err == nil {
			row[col] = decoded
		}
	}
	return row
}

// normalizeWriteRow serializes JSON-typed column values so map-based writes
// behave identically across dialects.
func normalizeWriteRow(table models.TableDescriptor, row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[k] = v
	}
	for _, col := range table.JSONColumns {
		v, ok := out[col]
		if !ok {
			continue
		}
		switch v.(type) {
		case string, []byte, nil:
			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			out[col] = fmt.Sprintf("%v", v)
			continue
		}
		out[col] = string(encoded)
	}
	return out
}
