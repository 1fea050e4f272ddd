package app

import "warehouse-client/internal/core"

// TableResult is returned by every generic list-type operation: ordered
// column headers plus rows of typed cells for the adapter to render.
type TableResult struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// InvoiceListResult is returned by ListInvoices.
type InvoiceListResult struct {
	Kind     core.InvoiceKind
	Invoices []core.InvoiceRow
}

// ItemListResult is returned by ListItems.
type ItemListResult struct {
	Kind      core.InvoiceKind
	InvoiceID int
	Items     []core.ItemRow
}

// ReportResult is returned by the three report builders. Columns is the
// report's fixed header set; it is present even when Rows is empty.
type ReportResult struct {
	Title   string
	Columns []string
	Rows    [][]any
}
