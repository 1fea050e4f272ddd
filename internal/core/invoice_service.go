package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceService is the master-detail engine for one invoice kind. Items
// carry a store-generated line_total, and the parent invoice's total_amount
// is recomputed by a store trigger whenever its items change, so every item
// write here is a single auto-commit statement. After any of them the
// caller must reload both the item list and the invoice list.
type InvoiceService struct {
	exec   *Executor
	kind   InvoiceKind
	tables invoiceTables
}

func NewInvoiceService(exec *Executor, kind InvoiceKind) (*InvoiceService, error) {
	tables, ok := kindTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown invoice kind %q", kind)
	}
	return &InvoiceService{exec: exec, kind: kind, tables: tables}, nil
}

// Kind returns the invoice kind this service is bound to.
func (s *InvoiceService) Kind() InvoiceKind { return s.kind }

// ListInvoices returns all invoices of this kind with the warehouse name
// joined in, newest invoice date first.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]InvoiceRow, error) {
	q := fmt.Sprintf(`
		SELECT i.%s,
		       w.name AS warehouse,
		       i.%s AS counterparty,
		       i.invoice_number,
		       i.invoice_date,
		       i.total_amount
		FROM %s i
		JOIN warehouses w ON w.warehouse_id = i.warehouse_id
		ORDER BY i.invoice_date DESC
	`, s.tables.invoiceIDCol, s.tables.counterparty, s.tables.invoiceTable)

	rows, err := s.exec.pool.Query(ctx, q)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var invoices []InvoiceRow
	for rows.Next() {
		var r InvoiceRow
		if err := rows.Scan(&r.ID, &r.Warehouse, &r.Counterparty,
			&r.InvoiceNumber, &r.InvoiceDate, &r.TotalAmount); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		invoices = append(invoices, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return invoices, nil
}

// ListItems returns the lines of one invoice with product name and SKU
// joined in, ordered by item id.
func (s *InvoiceService) ListItems(ctx context.Context, invoiceID int) ([]ItemRow, error) {
	q := fmt.Sprintf(`
		SELECT it.%s,
		       p.name AS product,
		       p.sku,
		       it.quantity,
		       it.unit_price,
		       it.line_total
		FROM %s it
		JOIN products p ON p.product_id = it.product_id
		WHERE it.%s = $1
		ORDER BY it.%s
	`, s.tables.itemIDCol, s.tables.itemTable, s.tables.invoiceIDCol, s.tables.itemIDCol)

	rows, err := s.exec.pool.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	defer rows.Close()

	var items []ItemRow
	for rows.Next() {
		var r ItemRow
		if err := rows.Scan(&r.ID, &r.Product, &r.SKU,
			&r.Quantity, &r.UnitPrice, &r.LineTotal); err != nil {
			return nil, &QueryError{Query: q, Err: err}
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: q, Err: err}
	}
	return items, nil
}

// AddItem inserts a new line on the invoice. line_total and the invoice's
// total_amount are maintained by the store.
func (s *InvoiceService) AddItem(ctx context.Context, invoiceID, productID int, qty, unitPrice decimal.Decimal) error {
	if err := validateItemInput(qty, unitPrice); err != nil {
		return err
	}
	q := fmt.Sprintf(`
		INSERT INTO %s (%s, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
	`, s.tables.itemTable, s.tables.invoiceIDCol)
	return s.exec.Exec(ctx, q, invoiceID, productID, qty, unitPrice)
}

// EditItem rewrites a line's product, quantity, and unit price.
func (s *InvoiceService) EditItem(ctx context.Context, itemID, productID int, qty, unitPrice decimal.Decimal) error {
	if err := validateItemInput(qty, unitPrice); err != nil {
		return err
	}
	q := fmt.Sprintf(`
		UPDATE %s
		SET product_id = $1, quantity = $2, unit_price = $3
		WHERE %s = $4
	`, s.tables.itemTable, s.tables.itemIDCol)
	return s.exec.Exec(ctx, q, productID, qty, unitPrice, itemID)
}

// DeleteItem removes a line from its invoice.
func (s *InvoiceService) DeleteItem(ctx context.Context, itemID int) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.tables.itemTable, s.tables.itemIDCol)
	return s.exec.Exec(ctx, q, itemID)
}

func validateItemInput(qty, unitPrice decimal.Decimal) error {
	if qty.IsZero() || qty.IsNegative() {
		return validationf("quantity must be positive, got %s", qty)
	}
	if unitPrice.IsNegative() {
		return validationf("unit price cannot be negative, got %s", unitPrice)
	}
	return nil
}
