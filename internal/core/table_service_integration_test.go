package core_test

import (
	"context"
	"strconv"
	"testing"

	"warehouse-client/internal/core"

	"github.com/shopspring/decimal"
)

func TestTableService_UnknownTable(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)

	_, err := core.NewTableService(context.Background(), exec, introspector, "no_such_table")
	if err == nil {
		t.Fatalf("Expected error for unknown table, got nil")
	}
}

func TestTableService_ColumnsIdentityFirst(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	svc, err := core.NewTableService(ctx, exec, introspector, "products")
	if err != nil {
		t.Fatalf("Failed to open products: %v", err)
	}

	cols := svc.Columns()
	if len(cols) == 0 || cols[0] != "product_id" {
		t.Fatalf("Expected identity column product_id first, got %v", cols)
	}
}

func TestTableService_ListAndFilter(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	svc, err := core.NewTableService(ctx, exec, introspector, "products")
	if err != nil {
		t.Fatalf("Failed to open products: %v", err)
	}

	grid, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(grid.Rows))
	}

	// Substring match is case-insensitive and works on non-text columns too.
	grid, err = svc.Filter(ctx, "name", "tape")
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(grid.Rows) != 1 {
		t.Fatalf("Expected 1 match for 'tape', got %d", len(grid.Rows))
	}

	grid, err = svc.Filter(ctx, "price", "5")
	if err != nil {
		t.Fatalf("Numeric filter failed: %v", err)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("Expected both prices to contain '5', got %d rows", len(grid.Rows))
	}

	// No SQL runs when inputs are incomplete.
	_, err = svc.Filter(ctx, "name", "")
	if !core.IsValidation(err) {
		t.Fatalf("Expected validation error for empty text, got %v", err)
	}
	_, err = svc.Filter(ctx, "nope", "x")
	if !core.IsValidation(err) {
		t.Fatalf("Expected validation error for unknown column, got %v", err)
	}
}

func TestTableService_SortDirections(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	svc, err := core.NewTableService(ctx, exec, introspector, "products")
	if err != nil {
		t.Fatalf("Failed to open products: %v", err)
	}

	asc, err := svc.Sort(ctx, "sku", "ASC")
	if err != nil {
		t.Fatalf("Sort ASC failed: %v", err)
	}
	desc, err := svc.Sort(ctx, "sku", "DESC")
	if err != nil {
		t.Fatalf("Sort DESC failed: %v", err)
	}

	if len(asc.Rows) != 2 || len(desc.Rows) != 2 {
		t.Fatalf("Expected 2 rows each, got %d and %d", len(asc.Rows), len(desc.Rows))
	}
	if asc.Rows[0][1] != "SKU-A" || desc.Rows[0][1] != "SKU-B" {
		t.Errorf("Expected DESC to reverse ASC: asc first %v, desc first %v", asc.Rows[0][1], desc.Rows[0][1])
	}

	// Serial identity columns come back as int32 cells.
	if _, ok := asc.Rows[0][0].(int32); !ok {
		t.Errorf("Expected int32 identity cell, got %T", asc.Rows[0][0])
	}
}

func TestTableService_InsertUpdateDelete(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	svc, err := core.NewTableService(ctx, exec, introspector, "staff")
	if err != nil {
		t.Fatalf("Failed to open staff: %v", err)
	}

	// Blank hired_at defaults to today, blank inn becomes NULL.
	err = svc.Insert(ctx, map[string]string{
		"warehouse_id": "1",
		"full_name":    "Test Person",
		"position_id":  "1",
		"inn":          "",
		"hired_at":     "",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	var id int
	var inn *string
	err = pool.QueryRow(ctx, "SELECT staff_id, inn FROM staff WHERE full_name = 'Test Person'").Scan(&id, &inn)
	if err != nil {
		t.Fatalf("Failed to read inserted row: %v", err)
	}
	if inn != nil {
		t.Errorf("Expected NULL inn for blank input, got %q", *inn)
	}

	err = svc.Update(ctx, id, map[string]string{
		"warehouse_id": "2",
		"full_name":    "Renamed Person",
		"position_id":  "2",
		"inn":          "500100732259",
		"hired_at":     "2024-05-01",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var name string
	var warehouseID int
	err = pool.QueryRow(ctx, "SELECT full_name, warehouse_id FROM staff WHERE staff_id = $1", id).Scan(&name, &warehouseID)
	if err != nil {
		t.Fatalf("Failed to read updated row: %v", err)
	}
	if name != "Renamed Person" || warehouseID != 2 {
		t.Errorf("Update did not apply: name=%q warehouse_id=%d", name, warehouseID)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM staff WHERE staff_id = $1", id).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected row to be gone, found %d", count)
	}
}

func TestTableService_ItemTableGenericWrites(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	invoiceID := createInvoice(t, pool, "incoming_invoices", "supplier", "2026-03-01")

	// Item tables are not on the managed menu but still work through the
	// generic path. line_total is store-computed, so whatever the generic
	// insert binds for it is overwritten.
	svc, err := core.NewTableService(ctx, exec, introspector, "incoming_items")
	if err != nil {
		t.Fatalf("Failed to open incoming_items: %v", err)
	}

	err = svc.Insert(ctx, map[string]string{
		"incoming_id": strconv.Itoa(invoiceID),
		"product_id":  "1",
		"quantity":    "4",
		"unit_price":  "2.50",
		"line_total":  "",
	})
	if err != nil {
		t.Fatalf("Generic insert into incoming_items failed: %v", err)
	}

	var itemID int
	var lineTotal decimal.Decimal
	err = pool.QueryRow(ctx,
		"SELECT incoming_item_id, line_total FROM incoming_items WHERE incoming_id = $1", invoiceID).
		Scan(&itemID, &lineTotal)
	if err != nil {
		t.Fatalf("Failed to read inserted item: %v", err)
	}
	if !lineTotal.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("Expected computed line_total 10.00, got %s", lineTotal)
	}

	// An explicit line_total on update is overwritten too.
	err = svc.Update(ctx, itemID, map[string]string{
		"incoming_id": strconv.Itoa(invoiceID),
		"product_id":  "1",
		"quantity":    "6",
		"unit_price":  "2.50",
		"line_total":  "999.99",
	})
	if err != nil {
		t.Fatalf("Generic update of incoming_items failed: %v", err)
	}
	err = pool.QueryRow(ctx,
		"SELECT line_total FROM incoming_items WHERE incoming_item_id = $1", itemID).Scan(&lineTotal)
	if err != nil {
		t.Fatalf("Failed to read updated item: %v", err)
	}
	if !lineTotal.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("Expected recomputed line_total 15.00, got %s", lineTotal)
	}

	var total decimal.Decimal
	err = pool.QueryRow(ctx,
		"SELECT total_amount FROM incoming_invoices WHERE incoming_id = $1", invoiceID).Scan(&total)
	if err != nil {
		t.Fatalf("Failed to read invoice total: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("15.00")) {
		t.Errorf("Expected invoice total 15.00 after generic writes, got %s", total)
	}
}

func TestTableService_DisplayProjection(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	exec := core.NewExecutor(pool)
	introspector := core.NewIntrospector(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff (warehouse_id, full_name, position_id, inn, hired_at)
		VALUES (1, 'Joined Person', 1, NULL, '2024-01-01')
	`)
	if err != nil {
		t.Fatalf("Failed to seed staff: %v", err)
	}

	svc, err := core.NewTableService(ctx, exec, introspector, "staff")
	if err != nil {
		t.Fatalf("Failed to open staff: %v", err)
	}

	grid, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(grid.Rows) != 1 {
		t.Fatalf("Expected 1 staff row, got %d", len(grid.Rows))
	}

	// The listing shows the joined warehouse name, not the foreign key.
	if grid.Columns[1] != "warehouse" {
		t.Fatalf("Expected second column to be warehouse, got %v", grid.Columns)
	}
	if grid.Rows[0][1] != "Test Warehouse" {
		t.Errorf("Expected warehouse name in listing, got %v", grid.Rows[0][1])
	}
}
