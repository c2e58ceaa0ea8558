package inventory

import (
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle state of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a stocked item in the inventory module
type Product struct {
	ID            string
	Name          string
	Category      string
	SubCategory   string
	SKU           string
	Barcode       string
	Description   string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	Quantity      int
	ReorderLevel  int
	Supplier      string
	Location      string
	Image         string
	Status        ProductStatus
	LastRestocked string
	Tags          []string
	Warranty      string
}

// GetID returns the product id
func (p Product) GetID() string {
	return p.ID
}

// NeedsReorder returns true when stock is at or below the reorder threshold
func (p Product) NeedsReorder() bool {
	return p.Quantity <= p.ReorderLevel
}

// IsOutOfStock returns true when no units remain
func (p Product) IsOutOfStock() bool {
	return p.Quantity == 0
}

// StockValue returns the cost value of the units on hand
func (p Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Margin returns selling price minus cost price per unit
func (p Product) Margin() decimal.Decimal {
	return p.SellingPrice.Sub(p.CostPrice)
}

// ValidateProductStatus checks the status against the closed enum set
func ValidateProductStatus(s ProductStatus) error {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Product status must be 'active', 'inactive', or 'discontinued'")
	}
}
