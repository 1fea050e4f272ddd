package app

import (
	"github.com/shopspring/decimal"

	"warehouse-client/internal/core"
)

// RowRequest is the input for inserting or updating a generic table row.
// Values holds user-entered raw strings keyed by column name; blanks become
// NULL (or the current date for date-typed columns). ID is ignored on
// insert.
type RowRequest struct {
	Table  string
	ID     any
	Values map[string]string
}

// ItemRequest is the input for adding or editing one invoice line.
// InvoiceID is ignored on edit, ItemID on add.
type ItemRequest struct {
	Kind      core.InvoiceKind
	InvoiceID int
	ItemID    int
	ProductID int
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
