package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"warehouse-client/internal/core"
)

// managedTables are the tables the client offers for generic management, in
// menu order. Other tables still work through the generic path if asked for
// by name; these are just the advertised set.
var managedTables = []string{
	"warehouses",
	"positions",
	"staff",
	"products",
	"incoming_invoices",
	"outgoing_invoices",
}

type appService struct {
	pool         *pgxpool.Pool
	exec         *core.Executor
	introspector *core.Introspector
	incoming     *core.InvoiceService
	outgoing     *core.InvoiceService
	reporting    core.ReportingService
	lookup       *core.LookupService

	// tables caches one TableService per table; introspection runs once
	// per table per process.
	tables map[string]*core.TableService
}

// NewAppService wires the engines over one shared pool and returns the
// facade the adapters talk to.
func NewAppService(pool *pgxpool.Pool) (ApplicationService, error) {
	exec := core.NewExecutor(pool)

	incoming, err := core.NewInvoiceService(exec, core.Incoming)
	if err != nil {
		return nil, err
	}
	outgoing, err := core.NewInvoiceService(exec, core.Outgoing)
	if err != nil {
		return nil, err
	}

	return &appService{
		pool:         pool,
		exec:         exec,
		introspector: core.NewIntrospector(pool),
		incoming:     incoming,
		outgoing:     outgoing,
		reporting:    core.NewReportingService(pool),
		lookup:       core.NewLookupService(pool),
		tables:       make(map[string]*core.TableService),
	}, nil
}

func (s *appService) ManagedTables() []string {
	out := make([]string, len(managedTables))
	copy(out, managedTables)
	return out
}

// tableService returns the cached service for a table, introspecting it on
// first use.
func (s *appService) tableService(ctx context.Context, table string) (*core.TableService, error) {
	if svc, ok := s.tables[table]; ok {
		return svc, nil
	}
	svc, err := core.NewTableService(ctx, s.exec, s.introspector, table)
	if err != nil {
		return nil, err
	}
	s.tables[table] = svc
	return svc, nil
}

func (s *appService) TableColumns(ctx context.Context, table string) ([]string, error) {
	svc, err := s.tableService(ctx, table)
	if err != nil {
		return nil, err
	}
	return svc.Columns(), nil
}

func (s *appService) ListTable(ctx context.Context, table string) (*TableResult, error) {
	svc, err := s.tableService(ctx, table)
	if err != nil {
		return nil, err
	}
	grid, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return &TableResult{Table: table, Columns: grid.Columns, Rows: grid.Rows}, nil
}

func (s *appService) FilterTable(ctx context.Context, table, column, text string) (*TableResult, error) {
	svc, err := s.tableService(ctx, table)
	if err != nil {
		return nil, err
	}
	grid, err := svc.Filter(ctx, column, text)
	if err != nil {
		return nil, err
	}
	return &TableResult{Table: table, Columns: grid.Columns, Rows: grid.Rows}, nil
}

func (s *appService) SortTable(ctx context.Context, table, column, direction string) (*TableResult, error) {
	svc, err := s.tableService(ctx, table)
	if err != nil {
		return nil, err
	}
	grid, err := svc.Sort(ctx, column, direction)
	if err != nil {
		return nil, err
	}
	return &TableResult{Table: table, Columns: grid.Columns, Rows: grid.Rows}, nil
}

func (s *appService) InsertRow(ctx context.Context, req RowRequest) error {
	svc, err := s.tableService(ctx, req.Table)
	if err != nil {
		return err
	}
	return svc.Insert(ctx, req.Values)
}

func (s *appService) UpdateRow(ctx context.Context, req RowRequest) error {
	svc, err := s.tableService(ctx, req.Table)
	if err != nil {
		return err
	}
	return svc.Update(ctx, req.ID, req.Values)
}

func (s *appService) DeleteRow(ctx context.Context, table string, id any) error {
	svc, err := s.tableService(ctx, table)
	if err != nil {
		return err
	}
	return svc.Delete(ctx, id)
}

// invoiceService resolves the engine for a kind.
func (s *appService) invoiceService(kind core.InvoiceKind) (*core.InvoiceService, error) {
	switch kind {
	case core.Incoming:
		return s.incoming, nil
	case core.Outgoing:
		return s.outgoing, nil
	default:
		return nil, fmt.Errorf("unknown invoice kind %q", kind)
	}
}

func (s *appService) ListInvoices(ctx context.Context, kind core.InvoiceKind) (*InvoiceListResult, error) {
	svc, err := s.invoiceService(kind)
	if err != nil {
		return nil, err
	}
	invoices, err := svc.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return &InvoiceListResult{Kind: kind, Invoices: invoices}, nil
}

func (s *appService) ListItems(ctx context.Context, kind core.InvoiceKind, invoiceID int) (*ItemListResult, error) {
	svc, err := s.invoiceService(kind)
	if err != nil {
		return nil, err
	}
	items, err := svc.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Kind: kind, InvoiceID: invoiceID, Items: items}, nil
}

func (s *appService) AddItem(ctx context.Context, req ItemRequest) error {
	svc, err := s.invoiceService(req.Kind)
	if err != nil {
		return err
	}
	return svc.AddItem(ctx, req.InvoiceID, req.ProductID, req.Quantity, req.UnitPrice)
}

func (s *appService) EditItem(ctx context.Context, req ItemRequest) error {
	svc, err := s.invoiceService(req.Kind)
	if err != nil {
		return err
	}
	return svc.EditItem(ctx, req.ItemID, req.ProductID, req.Quantity, req.UnitPrice)
}

func (s *appService) DeleteItem(ctx context.Context, kind core.InvoiceKind, itemID int) error {
	svc, err := s.invoiceService(kind)
	if err != nil {
		return err
	}
	return svc.DeleteItem(ctx, itemID)
}

func (s *appService) StockReport(ctx context.Context, warehouseName string) (*ReportResult, error) {
	rows, err := s.reporting.StockReport(ctx, warehouseName)
	if err != nil {
		return nil, err
	}
	result := &ReportResult{Title: "Current stock", Columns: core.StockReportColumns}
	for _, r := range rows {
		result.Rows = append(result.Rows, []any{
			r.Warehouse, r.SKU, r.Product, r.Unit, r.Qty, r.Price, r.StockValue, r.LastUpdated,
		})
	}
	return result, nil
}

func (s *appService) ProfitReport(ctx context.Context, dateFrom, dateTo string) (*ReportResult, error) {
	rows, err := s.reporting.ProfitReport(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	result := &ReportResult{Title: "Profit by product", Columns: core.ProfitReportColumns}
	for _, r := range rows {
		result.Rows = append(result.Rows, []any{
			r.Product, r.QtySold, r.AvgSellPrice, r.AvgBuyPrice, r.Profit,
		})
	}
	return result, nil
}

func (s *appService) MovementReport(ctx context.Context, sku string) (*ReportResult, error) {
	rows, err := s.reporting.MovementReport(ctx, sku)
	if err != nil {
		return nil, err
	}
	result := &ReportResult{Title: "Goods movement", Columns: core.MovementReportColumns}
	for _, r := range rows {
		result.Rows = append(result.Rows, []any{
			r.SKU, r.Product, r.IncomingQty, r.OutgoingQty, r.BalanceChange,
		})
	}
	return result, nil
}

func (s *appService) ListProducts(ctx context.Context) ([]core.ProductOption, error) {
	return s.lookup.Products(ctx)
}

func (s *appService) ListWarehouses(ctx context.Context) ([]core.WarehouseOption, error) {
	return s.lookup.Warehouses(ctx)
}

func (s *appService) ListSKUs(ctx context.Context) ([]string, error) {
	return s.lookup.SKUs(ctx)
}
