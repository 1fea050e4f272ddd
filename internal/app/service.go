package app

import (
	"context"

	"warehouse-client/internal/core"
)

// ApplicationService is the single interface all UI adapters call. It
// decouples presentation from the engines. Implementations must contain no
// fmt.Println, no ANSI codes, and no display logic of any kind: list-type
// operations hand back column headers plus rows of typed cells, mutating
// operations hand back an error the adapter renders as a message.
type ApplicationService interface {
	// ManagedTables returns the table names the client offers for generic
	// management, in menu order.
	ManagedTables() []string

	// TableColumns returns the schema-ordered column list of a managed
	// table. The first column is the identity column.
	TableColumns(ctx context.Context, table string) ([]string, error)

	// ListTable returns all rows of a table, through its joined display
	// projection when the table is on the display allow-list.
	ListTable(ctx context.Context, table string) (*TableResult, error)

	// FilterTable returns base-table rows whose column contains text,
	// matched case-insensitively.
	FilterTable(ctx context.Context, table, column, text string) (*TableResult, error)

	// SortTable returns base-table rows ordered by column; direction is
	// ASC or DESC.
	SortTable(ctx context.Context, table, column, direction string) (*TableResult, error)

	// InsertRow creates a row from raw input strings keyed by column name.
	InsertRow(ctx context.Context, req RowRequest) error

	// UpdateRow rewrites every non-identity column of the row identified
	// by req.ID.
	UpdateRow(ctx context.Context, req RowRequest) error

	// DeleteRow removes the row identified by id. The adapter is expected
	// to have confirmed the deletion with the user.
	DeleteRow(ctx context.Context, table string, id any) error

	// ListInvoices returns the invoice master list for one kind, newest
	// invoice date first.
	ListInvoices(ctx context.Context, kind core.InvoiceKind) (*InvoiceListResult, error)

	// ListItems returns the lines of one invoice.
	ListItems(ctx context.Context, kind core.InvoiceKind, invoiceID int) (*ItemListResult, error)

	// AddItem, EditItem, and DeleteItem mutate one invoice line. After any
	// of them the adapter must reload both the item list and the invoice
	// list: the invoice's total_amount is recomputed by the store.
	AddItem(ctx context.Context, req ItemRequest) error
	EditItem(ctx context.Context, req ItemRequest) error
	DeleteItem(ctx context.Context, kind core.InvoiceKind, itemID int) error

	// StockReport returns the current stock snapshot, optionally filtered
	// to one warehouse by name.
	StockReport(ctx context.Context, warehouseName string) (*ReportResult, error)

	// ProfitReport aggregates outgoing sales per product over the
	// inclusive date range [dateFrom, dateTo].
	ProfitReport(ctx context.Context, dateFrom, dateTo string) (*ReportResult, error)

	// MovementReport sums incoming and outgoing quantity per product,
	// optionally filtered to one exact SKU.
	MovementReport(ctx context.Context, sku string) (*ReportResult, error)

	// ListProducts, ListWarehouses, and ListSKUs serve the pickers the
	// adapter fills its selection lists from.
	ListProducts(ctx context.Context) ([]core.ProductOption, error)
	ListWarehouses(ctx context.Context) ([]core.WarehouseOption, error)
	ListSKUs(ctx context.Context) ([]string, error)
}
