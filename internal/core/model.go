package core

import "github.com/shopspring/decimal"

// ProductOption is a picker entry for item entry forms. Price is carried so
// the adapter can pre-fill the unit price when a product is chosen.
type ProductOption struct {
	ID    int             `json:"product_id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}

// WarehouseOption is a picker entry for warehouse filters.
type WarehouseOption struct {
	ID   int    `json:"warehouse_id"`
	Name string `json:"name"`
}
