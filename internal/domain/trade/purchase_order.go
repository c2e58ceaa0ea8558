package trade

import "github.com/shopspring/decimal"

// PurchaseOrderStatus represents the lifecycle of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSubmitted PurchaseOrderStatus = "submitted"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrderItem is one product line on a purchase order
type PurchaseOrderItem struct {
	ID         string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// PurchaseOrder represents replenishment stock ordered from a supplier
type PurchaseOrder struct {
	ID                   string
	SupplierID           string
	OrderDate            string
	ExpectedDeliveryDate string
	Status               PurchaseOrderStatus
	Items                []PurchaseOrderItem
	TotalAmount          decimal.Decimal
	PaymentStatus        PaymentStatus
	PaymentDueDate       string
	Notes                string
}

// GetID returns the purchase order id
func (p PurchaseOrder) GetID() string {
	return p.ID
}

// IsOpen returns true while the order still awaits receipt
func (p PurchaseOrder) IsOpen() bool {
	return p.Status == PurchaseOrderStatusDraft || p.Status == PurchaseOrderStatusSubmitted
}
