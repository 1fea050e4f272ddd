package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"warehouse-client/internal/app"
	"warehouse-client/internal/core"
)

// formatCell renders one typed cell for terminal output.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return val.String()
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// printGrid renders a header row and data rows with per-column widths.
func printGrid(columns []string, rows [][]any) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	rendered := make([][]string, len(rows))
	for ri, row := range rows {
		cells := make([]string, len(row))
		for ci, v := range row {
			cells[ci] = formatCell(v)
			if ci < len(widths) && len(cells[ci]) > widths[ci] {
				widths[ci] = len(cells[ci])
			}
		}
		rendered[ri] = cells
	}

	var total int
	for _, w := range widths {
		total += w + 2
	}

	var header strings.Builder
	for i, c := range columns {
		fmt.Fprintf(&header, "%-*s  ", widths[i], c)
	}
	fmt.Println(header.String())
	fmt.Println(strings.Repeat("-", total))
	for _, cells := range rendered {
		var line strings.Builder
		for i, c := range cells {
			if i < len(widths) {
				fmt.Fprintf(&line, "%-*s  ", widths[i], c)
			}
		}
		fmt.Println(line.String())
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
	}
}

func printTable(result *app.TableResult) {
	fmt.Println()
	fmt.Printf("TABLE: %s (%d rows)\n", result.Table, len(result.Rows))
	printGrid(result.Columns, result.Rows)
}

func printInvoices(result *app.InvoiceListResult) {
	title := "INCOMING INVOICES"
	if result.Kind == core.Outgoing {
		title = "OUTGOING INVOICES"
	}
	fmt.Println()
	fmt.Println(title)
	rows := make([][]any, len(result.Invoices))
	for i, inv := range result.Invoices {
		rows[i] = []any{inv.ID, inv.Warehouse, inv.Counterparty, inv.InvoiceNumber, inv.InvoiceDate, inv.TotalAmount}
	}
	printGrid([]string{"id", "warehouse", "counterparty", "invoice_number", "invoice_date", "total_amount"}, rows)
}

func printItems(result *app.ItemListResult) {
	fmt.Println()
	fmt.Printf("ITEMS OF INVOICE %d\n", result.InvoiceID)
	rows := make([][]any, len(result.Items))
	for i, it := range result.Items {
		rows[i] = []any{it.ID, it.Product, it.SKU, it.Quantity, it.UnitPrice, it.LineTotal}
	}
	printGrid([]string{"id", "product", "sku", "quantity", "unit_price", "line_total"}, rows)
}

func printReport(result *app.ReportResult) {
	fmt.Println()
	fmt.Println(strings.ToUpper(result.Title))
	printGrid(result.Columns, result.Rows)
}

func printProducts(options []core.ProductOption) {
	fmt.Println()
	fmt.Println("PRODUCTS")
	rows := make([][]any, len(options))
	for i, p := range options {
		rows[i] = []any{p.ID, p.Name, p.SKU, p.Price}
	}
	printGrid([]string{"id", "name", "sku", "price"}, rows)
}
