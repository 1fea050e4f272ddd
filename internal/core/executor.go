package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Grid is the presentation-facing shape of any list-type result: ordered
// column headers plus rows of cells. A cell is one of string,
// decimal.Decimal, an integer sized by the column width (int16, int32, or
// int64), time.Time, bool, or nil.
type Grid struct {
	Columns []string
	Rows    [][]any
}

// Executor runs parameterized reads and single-statement auto-commit writes
// against the shared pool. It is the only path through which the engines
// touch the store.
type Executor struct {
	pool *pgxpool.Pool
}

func NewExecutor(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

// Fetch executes a read and materializes the full result set as a Grid.
// Column headers are taken from the statement's field descriptions, so
// joined display projections carry their aliased names.
func (e *Executor) Fetch(ctx context.Context, sql string, args ...any) (*Grid, error) {
	rows, err := e.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	grid := &Grid{Columns: make([]string, len(fields))}
	for i, fd := range fields {
		grid.Columns[i] = fd.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = normalizeCell(v)
		}
		grid.Rows = append(grid.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	return grid, nil
}

// Exec executes a write. Each call is its own implicit transaction: on error
// nothing is applied, on success the statement is committed.
func (e *Executor) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := e.pool.Exec(ctx, sql, args...); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}

// normalizeCell maps driver-level values onto the small cell vocabulary the
// presentation layer renders. NUMERIC columns become decimal.Decimal so
// money survives the trip without float rounding.
func normalizeCell(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		d, err := numericToDecimal(val)
		if err != nil {
			return nil
		}
		return d
	case float32:
		return decimal.NewFromFloat32(val)
	case float64:
		return decimal.NewFromFloat(val)
	default:
		return val
	}
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	drv, err := n.Value()
	if err != nil {
		return decimal.Zero, err
	}
	s, ok := drv.(string)
	if !ok {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
