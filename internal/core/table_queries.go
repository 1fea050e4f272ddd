package core

import (
	"fmt"
	"strings"
	"time"
)

// displayQueries maps tables whose raw rows are foreign-key heavy onto
// hand-curated joined projections with human-readable labels. This is a
// deliberate finite dispatch: a generic join resolver for arbitrary schemas
// is out of scope, so the known tables are enumerated explicitly and every
// other table falls through to SELECT *.
var displayQueries = map[string]string{
	"staff": `
		SELECT s.staff_id,
		       w.name AS warehouse,
		       s.full_name,
		       p.name AS position,
		       s.inn,
		       s.hired_at
		FROM staff s
		JOIN warehouses w ON w.warehouse_id = s.warehouse_id
		JOIN positions p  ON p.position_id  = s.position_id
		ORDER BY s.staff_id`,

	"incoming_invoices": `
		SELECT i.incoming_id,
		       w.name AS warehouse,
		       i.supplier,
		       i.invoice_number,
		       i.invoice_date,
		       i.total_amount
		FROM incoming_invoices i
		JOIN warehouses w ON w.warehouse_id = i.warehouse_id
		ORDER BY i.incoming_id`,

	"incoming_items": `
		SELECT it.incoming_item_id,
		       inv.invoice_number AS invoice,
		       p.name AS product,
		       it.quantity,
		       it.unit_price,
		       it.line_total
		FROM incoming_items it
		JOIN incoming_invoices inv ON inv.incoming_id = it.incoming_id
		JOIN products p            ON p.product_id    = it.product_id
		ORDER BY it.incoming_item_id`,

	"outgoing_invoices": `
		SELECT o.outgoing_id,
		       w.name AS warehouse,
		       o.customer,
		       o.invoice_number,
		       o.invoice_date,
		       o.total_amount
		FROM outgoing_invoices o
		JOIN warehouses w ON w.warehouse_id = o.warehouse_id
		ORDER BY o.outgoing_id`,

	"outgoing_items": `
		SELECT ot.outgoing_item_id,
		       inv.invoice_number AS invoice,
		       p.name AS product,
		       ot.quantity,
		       ot.unit_price,
		       ot.line_total
		FROM outgoing_items ot
		JOIN outgoing_invoices inv ON inv.outgoing_id = ot.outgoing_id
		JOIN products p            ON p.product_id    = ot.product_id
		ORDER BY ot.outgoing_item_id`,

	"stock_balances": `
		SELECT w.name AS warehouse,
		       p.sku,
		       p.name AS product,
		       sb.qty,
		       sb.last_updated
		FROM stock_balances sb
		JOIN warehouses w ON w.warehouse_id = sb.warehouse_id
		JOIN products p   ON p.product_id   = sb.product_id
		ORDER BY w.name, p.name`,

	"products": `
		SELECT product_id, sku, name, unit, price, created_at
		FROM products`,
}

// listSQL returns the display projection for known tables and the generic
// SELECT * for everything else. The table identifier is interpolated, never
// bound: it comes from the service's own construction, not from user text.
func listSQL(table string) string {
	if q, ok := displayQueries[table]; ok {
		return q
	}
	return fmt.Sprintf("SELECT * FROM %s", table)
}

// hasColumn reports whether name is in the introspected column set. Every
// interpolated column identifier must pass this gate; values never need it
// because values are always bound.
func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// buildFilterSQL assembles the substring search against the base table.
// Note the filter deliberately targets the base table while List may render
// a joined projection; a joined label column is therefore not filterable.
// Known product-level quirk carried over from the original behaviour.
func buildFilterSQL(table string, columns []string, column, text string) (string, []any, error) {
	if column == "" || text == "" {
		return "", nil, validationf("choose a column and enter a value to search")
	}
	if !hasColumn(columns, column) {
		return "", nil, validationf("column %q does not exist on table %q", column, table)
	}
	sql := fmt.Sprintf("SELECT * FROM %s WHERE CAST(%s AS TEXT) ILIKE $1", table, column)
	return sql, []any{"%" + text + "%"}, nil
}

// buildSortSQL assembles the ordered listing. The direction is restricted to
// the two literals; the column must come from the introspected set.
func buildSortSQL(table string, columns []string, column, direction string) (string, error) {
	if column == "" {
		return "", validationf("choose a column to sort by")
	}
	if !hasColumn(columns, column) {
		return "", validationf("column %q does not exist on table %q", column, table)
	}
	dir := strings.ToUpper(direction)
	if dir == "" {
		dir = "ASC"
	}
	if dir != "ASC" && dir != "DESC" {
		return "", validationf("sort direction must be ASC or DESC, got %q", direction)
	}
	return fmt.Sprintf("SELECT * FROM %s ORDER BY %s %s", table, column, dir), nil
}

// buildInsertSQL assembles a parameterized INSERT over every column except
// the identity column. Blank inputs become NULL, except date/timestamp
// columns which default to the current date or time.
func buildInsertSQL(table string, columns []string, values map[string]string) (string, []any, error) {
	if len(columns) < 2 {
		return "", nil, validationf("table %q has no insertable columns", table)
	}
	insertCols := columns[1:]
	args := make([]any, len(insertCols))
	placeholders := make([]string, len(insertCols))
	for i, col := range insertCols {
		args[i] = cellValue(col, values[col])
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(insertCols, ", "), strings.Join(placeholders, ", "))
	return sql, args, nil
}

// buildUpdateSQL assembles a parameterized UPDATE of every non-identity
// column, keyed by equality on the identity column (columns[0]).
func buildUpdateSQL(table string, columns []string, id any, values map[string]string) (string, []any, error) {
	if len(columns) < 2 {
		return "", nil, validationf("table %q has no updatable columns", table)
	}
	setCols := columns[1:]
	args := make([]any, 0, len(setCols)+1)
	assignments := make([]string, len(setCols))
	for i, col := range setCols {
		args = append(args, cellValue(col, values[col]))
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), columns[0], len(args))
	return sql, args, nil
}

// buildDeleteSQL assembles a parameterized DELETE keyed by the identity
// column.
func buildDeleteSQL(table string, columns []string, id any) (string, []any, error) {
	if len(columns) == 0 {
		return "", nil, validationf("table %q has no columns", table)
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, columns[0])
	return sql, []any{id}, nil
}

// cellValue maps a raw input string onto the bound parameter for a column.
// Blank date-like columns default to today, blank created_at-like columns to
// the current timestamp, and any other blank becomes NULL.
func cellValue(column, raw string) any {
	if raw != "" {
		return raw
	}
	lower := strings.ToLower(column)
	switch {
	case strings.Contains(lower, "created_at"):
		return time.Now().Format("2006-01-02 15:04:05")
	case strings.Contains(lower, "date") && !strings.Contains(lower, "time") && !strings.Contains(lower, "updated"):
		return time.Now().Format("2006-01-02")
	default:
		return nil
	}
}
