package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"warehouse-client/internal/app"
	"warehouse-client/internal/core"
)

// promptRowValues walks the non-identity columns and collects raw input
// strings. Blank answers stay blank: the engine maps them to NULL or a
// current-date default. Returns false if the user cancelled.
func promptRowValues(reader *bufio.Reader, columns []string, current map[string]string) (map[string]string, bool) {
	fmt.Println("Enter values (blank keeps shown value, '-' clears it, 'cancel' aborts):")
	values := make(map[string]string, len(columns)-1)
	for _, col := range columns[1:] {
		prompt := col
		if cur, ok := current[col]; ok && cur != "" {
			prompt = fmt.Sprintf("%s [%s]", col, cur)
		}
		fmt.Printf("  %s: ", prompt)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "cancel") {
			return nil, false
		}
		switch raw {
		case "":
			values[col] = current[col]
		case "-":
			values[col] = ""
		default:
			values[col] = raw
		}
	}
	return values, true
}

// promptItem runs the item entry dialog: pick a product from the catalog,
// enter a quantity, and accept or override the pre-filled unit price.
func promptItem(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) (productID int, qty, price decimal.Decimal, ok bool) {
	products, err := svc.ListProducts(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 0, decimal.Zero, decimal.Zero, false
	}
	if len(products) == 0 {
		fmt.Println("No products in the catalog; add products first.")
		return 0, decimal.Zero, decimal.Zero, false
	}
	printProducts(products)

	byID := make(map[int]core.ProductOption, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	fmt.Print("Product id: ")
	raw, _ := reader.ReadString('\n')
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Println("Invalid product id.")
		return 0, decimal.Zero, decimal.Zero, false
	}
	product, found := byID[id]
	if !found {
		fmt.Println("No such product.")
		return 0, decimal.Zero, decimal.Zero, false
	}

	fmt.Print("Quantity: ")
	raw, _ = reader.ReadString('\n')
	qty, err = decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || qty.IsZero() || qty.IsNegative() {
		fmt.Println("Invalid quantity.")
		return 0, decimal.Zero, decimal.Zero, false
	}

	fmt.Printf("Unit price [%s]: ", product.Price)
	raw, _ = reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	price = product.Price
	if raw != "" {
		price, err = decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			fmt.Println("Invalid price.")
			return 0, decimal.Zero, decimal.Zero, false
		}
	}
	return id, qty, price, true
}

// confirm asks a yes/no question and returns true only on an explicit yes.
func confirm(reader *bufio.Reader, question string) bool {
	fmt.Printf("%s (y/n): ", question)
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(strings.ToLower(raw))
	return raw == "y" || raw == "yes"
}
