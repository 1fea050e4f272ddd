package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind selects between the two symmetric master-detail pairs. The
// kind is a tagged variant resolved once at construction: it fixes the
// invoice table, the item table, both identity columns, and the
// counterparty label (supplier vs customer).
type InvoiceKind string

const (
	Incoming InvoiceKind = "incoming"
	Outgoing InvoiceKind = "outgoing"
)

type invoiceTables struct {
	invoiceTable string
	itemTable    string
	invoiceIDCol string
	itemIDCol    string
	counterparty string
}

var kindTables = map[InvoiceKind]invoiceTables{
	Incoming: {
		invoiceTable: "incoming_invoices",
		itemTable:    "incoming_items",
		invoiceIDCol: "incoming_id",
		itemIDCol:    "incoming_item_id",
		counterparty: "supplier",
	},
	Outgoing: {
		invoiceTable: "outgoing_invoices",
		itemTable:    "outgoing_items",
		invoiceIDCol: "outgoing_id",
		itemIDCol:    "outgoing_item_id",
		counterparty: "customer",
	},
}

// InvoiceRow is one invoice in the master list, with the warehouse resolved
// to its name and the counterparty normalized across kinds.
type InvoiceRow struct {
	ID            int             `json:"id"`
	Warehouse     string          `json:"warehouse"`
	Counterparty  string          `json:"counterparty"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// ItemRow is one line of a selected invoice, with the product resolved to
// its name and SKU. LineTotal is store-computed (quantity * unit_price).
type ItemRow struct {
	ID        int             `json:"id"`
	Product   string          `json:"product"`
	SKU       string          `json:"sku"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
