package core_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// setupTestDB connects to the dedicated test database, wipes all warehouse
// data and seeds a small fixture. Run cmd/verify-db against the test database
// first so the schema, triggers and views exist.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean and seed test DB
	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE incoming_items, outgoing_items, incoming_invoices, outgoing_invoices,
		               stock_balances, staff, products, positions, warehouses
		RESTART IDENTITY CASCADE;

		INSERT INTO warehouses (warehouse_id, name, address) VALUES
		(1, 'Test Warehouse', '1 Test St'),
		(2, 'Second Warehouse', '2 Test St');
		SELECT setval('warehouses_warehouse_id_seq', 2);

		INSERT INTO positions (position_id, name) VALUES
		(1, 'Storekeeper'),
		(2, 'Picker');
		SELECT setval('positions_position_id_seq', 2);

		INSERT INTO products (product_id, sku, name, unit, price) VALUES
		(1, 'SKU-A', 'Test Box', 'pcs', 5.00),
		(2, 'SKU-B', 'Test Tape', 'pcs', 2.50);
		SELECT setval('products_product_id_seq', 2);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool
}

// createInvoice inserts an invoice header directly and returns its id.
// table is incoming_invoices or outgoing_invoices; the counterparty column
// name differs between the two.
func createInvoice(t *testing.T, pool *pgxpool.Pool, table, counterpartyCol, invoiceDate string) int {
	t.Helper()

	var id int
	q := "INSERT INTO " + table + " (warehouse_id, " + counterpartyCol + ", invoice_number, invoice_date)" +
		" VALUES (1, 'Test Counterparty', $1, $2) RETURNING " + idColumn(table)
	err := pool.QueryRow(context.Background(), q, uuid.NewString(), invoiceDate).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create invoice in %s: %v", table, err)
	}
	return id
}

func idColumn(table string) string {
	if table == "incoming_invoices" {
		return "incoming_id"
	}
	return "outgoing_id"
}
