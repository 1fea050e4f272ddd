// Package repl is the text-mode presentation adapter. It renders grids the
// application service hands back and collects raw input strings; it holds no
// business logic and builds no SQL.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"warehouse-client/internal/app"
	"warehouse-client/internal/core"
)

// Run starts the interactive loop. Every user action executes one engine
// call synchronously to completion; after any successful mutation the
// affected lists are reloaded in full.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("Warehouse Client")
	fmt.Println("Commands: open <table>, in, out, reports, tables, help, exit")
	fmt.Println(strings.Repeat("-", 70))

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		tokens := strings.Fields(strings.TrimSpace(input))
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "exit", "quit":
			return
		case "help":
			fmt.Println("  tables           list managed tables")
			fmt.Println("  open <table>     manage one table (list/filter/sort/add/edit/del)")
			fmt.Println("  in               incoming invoices and their items")
			fmt.Println("  out              outgoing invoices and their items")
			fmt.Println("  reports          stock / profit / movement reports")
			fmt.Println("  exit             quit")
		case "tables":
			for _, t := range svc.ManagedTables() {
				fmt.Printf("  %s\n", t)
			}
		case "open":
			if len(tokens) < 2 {
				fmt.Println("Usage: open <table>")
				continue
			}
			runTableManager(ctx, svc, reader, tokens[1])
		case "in":
			runInvoiceView(ctx, svc, reader, core.Incoming)
		case "out":
			runInvoiceView(ctx, svc, reader, core.Outgoing)
		case "reports":
			runReports(ctx, svc, reader)
		default:
			fmt.Printf("Unknown command: %s\n", tokens[0])
		}
	}
}

// reportError distinguishes input notices from store failures.
func reportError(err error) {
	if core.IsValidation(err) {
		fmt.Printf("Notice: %v\n", err)
		return
	}
	fmt.Printf("Error: %v\n", err)
}

// runTableManager is the generic single-table session: the analog of one
// table-management window.
func runTableManager(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, table string) {
	columns, err := svc.TableColumns(ctx, table)
	if err != nil {
		reportError(err)
		return
	}

	reload := func() {
		result, err := svc.ListTable(ctx, table)
		if err != nil {
			reportError(err)
			return
		}
		printTable(result)
	}
	reload()
	fmt.Printf("\n[%s] commands: list, cols, filter <col> <text>, sort <col> [asc|desc], add, edit <id>, del <id>, back\n", table)

	for {
		fmt.Printf("\n%s> ", table)
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		tokens := strings.Fields(strings.TrimSpace(input))
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "back":
			return
		case "list":
			reload()
		case "cols":
			fmt.Printf("  %s (identity: %s)\n", strings.Join(columns, ", "), columns[0])
		case "filter":
			if len(tokens) < 3 {
				fmt.Println("Usage: filter <column> <text>")
				continue
			}
			result, err := svc.FilterTable(ctx, table, tokens[1], strings.Join(tokens[2:], " "))
			if err != nil {
				reportError(err)
				continue
			}
			printTable(result)
		case "sort":
			if len(tokens) < 2 {
				fmt.Println("Usage: sort <column> [asc|desc]")
				continue
			}
			direction := "ASC"
			if len(tokens) > 2 {
				direction = tokens[2]
			}
			result, err := svc.SortTable(ctx, table, tokens[1], direction)
			if err != nil {
				reportError(err)
				continue
			}
			printTable(result)
		case "add":
			values, ok := promptRowValues(reader, columns, nil)
			if !ok {
				fmt.Println("Cancelled.")
				continue
			}
			if err := svc.InsertRow(ctx, app.RowRequest{Table: table, Values: values}); err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Row added.")
			reload()
		case "edit":
			if len(tokens) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			current, found := fetchBaseRow(ctx, svc, table, columns, tokens[1])
			if !found {
				fmt.Println("No row with that id.")
				continue
			}
			values, ok := promptRowValues(reader, columns, current)
			if !ok {
				fmt.Println("Cancelled.")
				continue
			}
			if err := svc.UpdateRow(ctx, app.RowRequest{Table: table, ID: tokens[1], Values: values}); err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Row updated.")
			reload()
		case "del":
			if len(tokens) < 2 {
				fmt.Println("Usage: del <id>")
				continue
			}
			if !confirm(reader, "Delete this row?") {
				fmt.Println("Cancelled.")
				continue
			}
			if err := svc.DeleteRow(ctx, table, tokens[1]); err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Row deleted.")
			reload()
		default:
			fmt.Printf("Unknown command: %s\n", tokens[0])
		}
	}
}

// fetchBaseRow loads the base-table row with the given identity value so the
// edit wizard can show current values. The base table is used deliberately:
// edits write base columns, not joined display labels.
func fetchBaseRow(ctx context.Context, svc app.ApplicationService, table string, columns []string, id string) (map[string]string, bool) {
	result, err := svc.SortTable(ctx, table, columns[0], "ASC")
	if err != nil {
		reportError(err)
		return nil, false
	}
	for _, row := range result.Rows {
		if len(row) == 0 || formatCell(row[0]) != id {
			continue
		}
		current := make(map[string]string, len(columns))
		for i, col := range result.Columns {
			if i < len(row) {
				current[col] = formatCell(row[i])
			}
		}
		return current, true
	}
	return nil, false
}

// runInvoiceView is the master-detail session for one invoice kind.
func runInvoiceView(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, kind core.InvoiceKind) {
	selected := 0

	reloadInvoices := func() {
		result, err := svc.ListInvoices(ctx, kind)
		if err != nil {
			reportError(err)
			return
		}
		printInvoices(result)
	}
	reloadItems := func() {
		if selected == 0 {
			return
		}
		result, err := svc.ListItems(ctx, kind, selected)
		if err != nil {
			reportError(err)
			return
		}
		printItems(result)
	}

	reloadInvoices()
	fmt.Printf("\n[%s] commands: list, items <invoice-id>, add, edit <item-id>, del <item-id>, back\n", kind)

	for {
		fmt.Printf("\n%s> ", kind)
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		tokens := strings.Fields(strings.TrimSpace(input))
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "back":
			return
		case "list":
			reloadInvoices()
		case "items":
			if len(tokens) < 2 {
				fmt.Println("Usage: items <invoice-id>")
				continue
			}
			id, err := strconv.Atoi(tokens[1])
			if err != nil {
				fmt.Println("Invalid invoice id.")
				continue
			}
			selected = id
			reloadItems()
		case "add":
			if selected == 0 {
				fmt.Println("Select an invoice first: items <invoice-id>")
				continue
			}
			productID, qty, price, ok := promptItem(ctx, reader, svc)
			if !ok {
				continue
			}
			err := svc.AddItem(ctx, app.ItemRequest{
				Kind: kind, InvoiceID: selected,
				ProductID: productID, Quantity: qty, UnitPrice: price,
			})
			if err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Item added.")
			// The invoice total is recomputed by the store; show both.
			reloadItems()
			reloadInvoices()
		case "edit":
			if len(tokens) < 2 {
				fmt.Println("Usage: edit <item-id>")
				continue
			}
			itemID, err := strconv.Atoi(tokens[1])
			if err != nil {
				fmt.Println("Invalid item id.")
				continue
			}
			productID, qty, price, ok := promptItem(ctx, reader, svc)
			if !ok {
				continue
			}
			err = svc.EditItem(ctx, app.ItemRequest{
				Kind: kind, ItemID: itemID,
				ProductID: productID, Quantity: qty, UnitPrice: price,
			})
			if err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Item updated.")
			reloadItems()
			reloadInvoices()
		case "del":
			if len(tokens) < 2 {
				fmt.Println("Usage: del <item-id>")
				continue
			}
			itemID, err := strconv.Atoi(tokens[1])
			if err != nil {
				fmt.Println("Invalid item id.")
				continue
			}
			if !confirm(reader, "Delete this item?") {
				fmt.Println("Cancelled.")
				continue
			}
			if err := svc.DeleteItem(ctx, kind, itemID); err != nil {
				reportError(err)
				continue
			}
			fmt.Println("Item deleted.")
			reloadItems()
			reloadInvoices()
		default:
			fmt.Printf("Unknown command: %s\n", tokens[0])
		}
	}
}

// runReports is the report session with per-report filters.
func runReports(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println("\n[reports] commands: stock [warehouse], profit <from> <to>, movement [sku], skus, back")

	for {
		fmt.Print("\nreports> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		tokens := strings.Fields(strings.TrimSpace(input))
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToLower(tokens[0]) {
		case "back":
			return
		case "stock":
			warehouse := ""
			if len(tokens) > 1 {
				warehouse = strings.Join(tokens[1:], " ")
			}
			result, err := svc.StockReport(ctx, warehouse)
			if err != nil {
				reportError(err)
				continue
			}
			printReport(result)
		case "profit":
			if len(tokens) < 3 {
				fmt.Println("Usage: profit <date-from> <date-to>  (YYYY-MM-DD)")
				continue
			}
			result, err := svc.ProfitReport(ctx, tokens[1], tokens[2])
			if err != nil {
				reportError(err)
				continue
			}
			printReport(result)
		case "movement":
			sku := ""
			if len(tokens) > 1 {
				sku = tokens[1]
			}
			result, err := svc.MovementReport(ctx, sku)
			if err != nil {
				reportError(err)
				continue
			}
			printReport(result)
		case "skus":
			skus, err := svc.ListSKUs(ctx)
			if err != nil {
				reportError(err)
				continue
			}
			for _, s := range skus {
				fmt.Printf("  %s\n", s)
			}
		default:
			fmt.Printf("Unknown command: %s\n", tokens[0])
		}
	}
}
