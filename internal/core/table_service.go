package core

import (
	"context"
	"fmt"
)

// TableService provides metadata-driven list/filter/sort/insert/update/delete
// for one table. Column identifiers are only ever drawn from the introspected
// schema or fixed literal sets; user-entered values are always bound
// parameters. After any successful mutation callers must reload the displayed
// list in full; there is no incremental patching.
type TableService struct {
	exec    *Executor
	table   string
	columns []string
}

// NewTableService introspects the table and returns a service bound to it.
// An unknown table (empty column list) is an error: the caller should not
// offer it for management.
func NewTableService(ctx context.Context, exec *Executor, in *Introspector, table string) (*TableService, error) {
	columns := in.Columns(ctx, table)
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s not found or has no columns", table)
	}
	return &TableService{exec: exec, table: table, columns: columns}, nil
}

// Table returns the managed table's name.
func (s *TableService) Table() string { return s.table }

// Columns returns the introspected column list. columns[0] is the identity
// column used for update and delete targeting.
func (s *TableService) Columns() []string { return s.columns }

// List returns all rows, through the joined display projection for tables on
// the display allow-list and through SELECT * for everything else.
func (s *TableService) List(ctx context.Context) (*Grid, error) {
	return s.exec.Fetch(ctx, listSQL(s.table))
}

// Filter returns rows whose column contains text, matched case-insensitively
// as a substring against the base table.
func (s *TableService) Filter(ctx context.Context, column, text string) (*Grid, error) {
	sql, args, err := buildFilterSQL(s.table, s.columns, column, text)
	if err != nil {
		return nil, err
	}
	return s.exec.Fetch(ctx, sql, args...)
}

// Sort returns all base-table rows ordered by column in the given direction
// (ASC or DESC).
func (s *TableService) Sort(ctx context.Context, column, direction string) (*Grid, error) {
	sql, err := buildSortSQL(s.table, s.columns, column, direction)
	if err != nil {
		return nil, err
	}
	return s.exec.Fetch(ctx, sql)
}

// Insert creates a row from raw input strings keyed by column name. The
// identity column is omitted (assigned by the store); blanks become NULL
// except date/timestamp columns, which default to now.
func (s *TableService) Insert(ctx context.Context, values map[string]string) error {
	sql, args, err := buildInsertSQL(s.table, s.columns, values)
	if err != nil {
		return err
	}
	return s.exec.Exec(ctx, sql, args...)
}

// Update rewrites every non-identity column of the row whose identity column
// equals id.
func (s *TableService) Update(ctx context.Context, id any, values map[string]string) error {
	sql, args, err := buildUpdateSQL(s.table, s.columns, id, values)
	if err != nil {
		return err
	}
	return s.exec.Exec(ctx, sql, args...)
}

// Delete removes the row whose identity column equals id.
func (s *TableService) Delete(ctx context.Context, id any) error {
	sql, args, err := buildDeleteSQL(s.table, s.columns, id)
	if err != nil {
		return err
	}
	return s.exec.Exec(ctx, sql, args...)
}
