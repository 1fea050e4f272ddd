package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LookupService serves the reference pickers the presentation layer fills
// its selection lists from. Foreign keys entered through pickers are the
// reason the engines never have to insert a dangling reference.
type LookupService struct {
	pool *pgxpool.Pool
}

func NewLookupService(pool *pgxpool.Pool) *LookupService {
	return &LookupService{pool: pool}
}

// Products returns all products ordered by name, with the list price so the
// adapter can pre-fill the unit price on item entry.
func (s *LookupService) Products(ctx context.Context) ([]ProductOption, error) {
	const q = "SELECT product_id, name, sku, price FROM products ORDER BY name"
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var options []ProductOption
	for rows.Next() {
		var p ProductOption
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		options = append(options, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return options, nil
}

// Warehouses returns all warehouses ordered by name.
func (s *LookupService) Warehouses(ctx context.Context) ([]WarehouseOption, error) {
	const q = "SELECT warehouse_id, name FROM warehouses ORDER BY name"
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var options []WarehouseOption
	for rows.Next() {
		var w WarehouseOption
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		options = append(options, w)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return options, nil
}

// SKUs returns the ordered SKU list used by the movement report filter.
func (s *LookupService) SKUs(ctx context.Context) ([]string, error) {
	const q = "SELECT sku FROM products ORDER BY sku"
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var skus []string
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		skus = append(skus, sku)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return skus, nil
}
