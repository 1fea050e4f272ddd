package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

// StockReportRow is one line of the current-stock snapshot, read from the
// vw_current_stock view.
type StockReportRow struct {
	Warehouse   string
	SKU         string
	Product     string
	Unit        string
	Qty         decimal.Decimal
	Price       decimal.Decimal
	StockValue  decimal.Decimal
	LastUpdated string
}

// ProfitReportRow aggregates outgoing sales of one product over a date
// range. Profit = SUM(line_total - quantity * buy price).
type ProfitReportRow struct {
	Product      string
	QtySold      decimal.Decimal
	AvgSellPrice decimal.Decimal
	AvgBuyPrice  decimal.Decimal
	Profit       decimal.Decimal
}

// MovementReportRow sums incoming and outgoing quantities per product.
// Absent movement on either side counts as zero.
type MovementReportRow struct {
	SKU           string
	Product       string
	IncomingQty   decimal.Decimal
	OutgoingQty   decimal.Decimal
	BalanceChange decimal.Decimal
}

// Fixed header sets for the presentation layer. A report with zero rows
// still renders these.
var (
	StockReportColumns    = []string{"warehouse", "sku", "product", "unit", "qty", "price", "stock_value", "last_updated"}
	ProfitReportColumns   = []string{"product", "qty_sold", "avg_sell_price", "avg_buy_price", "profit"}
	MovementReportColumns = []string{"sku", "product", "incoming_qty", "outgoing_qty", "balance_change"}
)

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService provides the three parameterized reports. Each builder is
// stateless given its filter inputs and performs exactly one aggregate query.
type ReportingService interface {
	// StockReport returns the current stock snapshot, optionally restricted
	// to one warehouse by name (empty string means all warehouses).
	StockReport(ctx context.Context, warehouseName string) ([]StockReportRow, error)

	// ProfitReport aggregates outgoing items whose invoice date falls in the
	// inclusive range [dateFrom, dateTo], grouped by product, ordered by
	// profit descending. The bounds are user-supplied strings parsed by the
	// store; a malformed date surfaces as a QueryError.
	ProfitReport(ctx context.Context, dateFrom, dateTo string) ([]ProfitReportRow, error)

	// MovementReport sums incoming and outgoing quantity per product,
	// optionally restricted to one exact SKU (empty string means all),
	// ordered by SKU.
	MovementReport(ctx context.Context, sku string) ([]MovementReportRow, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type reportingService struct {
	pool *pgxpool.Pool
}

// NewReportingService constructs a ReportingService backed by the given pool.
func NewReportingService(pool *pgxpool.Pool) ReportingService {
	return &reportingService{pool: pool}
}

func (s *reportingService) StockReport(ctx context.Context, warehouseName string) ([]StockReportRow, error) {
	q := `
		SELECT warehouse_name, sku, product_name, unit, qty, price, stock_value, last_updated::text
		FROM vw_current_stock`

	var args []any
	if warehouseName != "" {
		args = append(args, warehouseName)
		q += " WHERE warehouse_name = $1"
	}
	q += " ORDER BY warehouse_name, product_name"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var report []StockReportRow
	for rows.Next() {
		var r StockReportRow
		if err := rows.Scan(&r.Warehouse, &r.SKU, &r.Product, &r.Unit,
			&r.Qty, &r.Price, &r.StockValue, &r.LastUpdated); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		report = append(report, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return report, nil
}

func (s *reportingService) ProfitReport(ctx context.Context, dateFrom, dateTo string) ([]ProfitReportRow, error) {
	const q = `
		SELECT p.name AS product,
		       SUM(oi.quantity)   AS qty_sold,
		       AVG(oi.unit_price) AS avg_sell_price,
		       AVG(p.price)       AS avg_buy_price,
		       SUM(oi.line_total - oi.quantity * p.price) AS profit
		FROM outgoing_items oi
		JOIN outgoing_invoices inv ON inv.outgoing_id = oi.outgoing_id
		JOIN products p            ON p.product_id    = oi.product_id
		WHERE inv.invoice_date BETWEEN $1 AND $2
		GROUP BY p.name
		ORDER BY profit DESC`

	rows, err := s.pool.Query(ctx, q, dateFrom, dateTo)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var report []ProfitReportRow
	for rows.Next() {
		var r ProfitReportRow
		if err := rows.Scan(&r.Product, &r.QtySold, &r.AvgSellPrice,
			&r.AvgBuyPrice, &r.Profit); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		report = append(report, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return report, nil
}

func (s *reportingService) MovementReport(ctx context.Context, sku string) ([]MovementReportRow, error) {
	q := `
		SELECT p.sku,
		       p.name,
		       COALESCE(i.inc_qty, 0) AS incoming_qty,
		       COALESCE(o.out_qty, 0) AS outgoing_qty,
		       COALESCE(i.inc_qty, 0) - COALESCE(o.out_qty, 0) AS balance_change
		FROM products p
		LEFT JOIN (
		    SELECT product_id, SUM(quantity) AS inc_qty
		    FROM incoming_items
		    GROUP BY product_id
		) i ON i.product_id = p.product_id
		LEFT JOIN (
		    SELECT product_id, SUM(quantity) AS out_qty
		    FROM outgoing_items
		    GROUP BY product_id
		) o ON o.product_id = p.product_id`

	var args []any
	if sku != "" {
		args = append(args, sku)
		q += " WHERE p.sku = $1"
	}
	q += " ORDER BY p.sku"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var report []MovementReportRow
	for rows.Next() {
		var r MovementReportRow
		if err := rows.Scan(&r.SKU, &r.Product, &r.IncomingQty,
			&r.OutgoingQty, &r.BalanceChange); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		report = append(report, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return report, nil
}
