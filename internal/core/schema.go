package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Introspector reads table metadata from information_schema.
type Introspector struct {
	pool *pgxpool.Pool
}

func NewIntrospector(pool *pgxpool.Pool) *Introspector {
	return &Introspector{pool: pool}
}

// Columns returns the table's column names in physical order. An unknown
// table (or any introspection failure) yields an empty slice, not an error:
// callers treat an empty column list as "table unavailable".
func (in *Introspector) Columns(ctx context.Context, table string) []string {
	rows, err := in.pool.Query(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = $1
		ORDER BY ordinal_position
	`, table)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil
		}
		columns = append(columns, name)
	}
	if rows.Err() != nil {
		return nil
	}
	return columns
}
