package inventory

import (
	"strconv"

	"github.com/optibiz/erp/internal/application/tableview"
	"github.com/optibiz/erp/internal/domain/inventory"
	"github.com/optibiz/erp/internal/store"
)

// ProductColumns defines the inventory table. The supplier cell is
// resolved against the supplier store; an absent id renders a
// placeholder rather than failing.
func ProductColumns(suppliers *store.Store[inventory.Supplier]) []tableview.Column[inventory.Product] {
	return []tableview.Column[inventory.Product]{
		{Key: "name", Title: "Product", Render: func(p inventory.Product) string { return p.Name }},
		{Key: "sku", Title: "SKU", Render: func(p inventory.Product) string { return p.SKU }},
		{Key: "category", Title: "Category", Render: func(p inventory.Product) string { return p.Category }},
		{
			Key:    "quantity",
			Title:  "In Stock",
			Render: func(p inventory.Product) string { return strconv.Itoa(p.Quantity) },
			Compare: func(a, b inventory.Product) int {
				return a.Quantity - b.Quantity
			},
		},
		{
			Key:    "sellingPrice",
			Title:  "Price",
			Render: func(p inventory.Product) string { return "$" + p.SellingPrice.StringFixed(2) },
			Compare: func(a, b inventory.Product) int {
				return a.SellingPrice.Cmp(b.SellingPrice)
			},
		},
		{
			Key:   "supplier",
			Title: "Supplier",
			Render: func(p inventory.Product) string {
				if s, ok := suppliers.Get(p.Supplier); ok {
					return s.Name
				}
				return "Unknown supplier"
			},
		},
		{Key: "status", Title: "Status", Render: func(p inventory.Product) string { return string(p.Status) }},
	}
}
