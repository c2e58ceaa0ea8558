package inventory

import (
	"github.com/optibiz/erp/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the form values for a new product
type CreateProductRequest struct {
	Name         string          `validate:"required"`
	Category     string          `validate:"required"`
	SubCategory  string          `validate:"required"`
	SKU          string          `validate:"required"`
	Description  string
	CostPrice    decimal.Decimal `validate:"required"`
	SellingPrice decimal.Decimal `validate:"required"`
	Quantity     int             `validate:"gte=0"`
	ReorderLevel int             `validate:"gte=0"`
	Supplier     string          `validate:"required"`
	Location     string
	Image        string
	Status       inventory.ProductStatus `validate:"required"`
	Warranty     string
}

// UpdateProductRequest carries a partial record for a product edit
type UpdateProductRequest struct {
	Name         *string
	Category     *string
	SubCategory  *string
	SKU          *string
	Description  *string
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	Quantity     *int `validate:"omitempty,gte=0"`
	ReorderLevel *int `validate:"omitempty,gte=0"`
	Supplier     *string
	Location     *string
	Image        *string
	Status       *inventory.ProductStatus
	Warranty     *string
}
