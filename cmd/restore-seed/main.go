// restore-seed is a one-shot tool to reset demo data in the warehouse
// database. It wipes invoices, items and stock balances, then restores the
// reference warehouses, positions and product catalog.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"log"
	"os"

	"warehouse-client/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing documents and stock...")
	_, err = tx.Exec(ctx, `
		DELETE FROM incoming_items;
		DELETE FROM outgoing_items;
		DELETE FROM incoming_invoices;
		DELETE FROM outgoing_invoices;
		DELETE FROM stock_balances;
		DELETE FROM staff;
	`)
	if err != nil {
		log.Fatalf("Failed to clear documents: %v", err)
	}

	log.Println("Restoring warehouses...")
	_, err = tx.Exec(ctx, `
		INSERT INTO warehouses (name, address)
		VALUES
		    ('Main Warehouse', '12 Industrial Ave'),
		    ('North Depot',    '4 Ring Road'),
		    ('South Depot',    '89 Harbor St')
		ON CONFLICT (name) DO UPDATE SET address = EXCLUDED.address;
	`)
	if err != nil {
		log.Fatalf("Failed to restore warehouses: %v", err)
	}

	log.Println("Restoring positions...")
	_, err = tx.Exec(ctx, `
		INSERT INTO positions (name)
		VALUES
		    ('Warehouse Manager'),
		    ('Storekeeper'),
		    ('Picker'),
		    ('Forklift Operator')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to restore positions: %v", err)
	}

	log.Println("Restoring product catalog...")
	_, err = tx.Exec(ctx, `
		INSERT INTO products (sku, name, unit, price)
		VALUES
		    ('SKU-0001', 'Cardboard Box M',   'pcs',  1.20),
		    ('SKU-0002', 'Cardboard Box L',   'pcs',  1.80),
		    ('SKU-0003', 'Stretch Film Roll', 'pcs',  6.50),
		    ('SKU-0004', 'Wooden Pallet',     'pcs',  11.00),
		    ('SKU-0005', 'Packing Tape',      'pcs',  0.90),
		    ('SKU-0006', 'Bubble Wrap 50m',   'roll', 14.30)
		ON CONFLICT (sku) DO UPDATE
		  SET name = EXCLUDED.name,
		      unit = EXCLUDED.unit,
		      price = EXCLUDED.price;
	`)
	if err != nil {
		log.Fatalf("Failed to restore product catalog: %v", err)
	}

	log.Println("Restoring demo staff...")
	_, err = tx.Exec(ctx, `
		INSERT INTO staff (warehouse_id, full_name, position_id, inn, hired_at)
		SELECT w.warehouse_id, s.full_name, p.position_id, s.inn, s.hired_at::date
		FROM (VALUES
		    ('Main Warehouse', 'Anna Petrova',  'Warehouse Manager', '500100732259', '2023-02-01'),
		    ('Main Warehouse', 'Igor Smirnov',  'Storekeeper',       '500100732260', '2023-06-15'),
		    ('North Depot',    'Elena Volkova', 'Storekeeper',       '500100732261', '2024-01-10'),
		    ('South Depot',    'Pavel Orlov',   'Forklift Operator', '500100732262', '2024-09-03')
		) AS s(warehouse, full_name, position, inn, hired_at)
		JOIN warehouses w ON w.name = s.warehouse
		JOIN positions p ON p.name = s.position;
	`)
	if err != nil {
		log.Fatalf("Failed to restore staff: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data restored successfully.")
	os.Exit(0)
}
