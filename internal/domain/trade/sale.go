package trade

import "github.com/shopspring/decimal"

// PaymentMethod represents how a sale was paid for
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodOnline     PaymentMethod = "online"
	PaymentMethodCredit     PaymentMethod = "credit"
)

// PaymentStatus represents how much of an order has been paid
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DeliveryStatus represents the fulfilment state of a sale
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusProcessing DeliveryStatus = "processing"
	DeliveryStatusShipped    DeliveryStatus = "shipped"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusCancelled  DeliveryStatus = "cancelled"
)

// SaleItem is one product line on a sale
type SaleItem struct {
	ID         string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	Discount   decimal.Decimal
	TotalPrice decimal.Decimal
}

// Sale represents a customer order
type Sale struct {
	ID             string
	CustomerID     string
	OrderDate      string
	Items          []SaleItem
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	Notes          string
}

// GetID returns the sale id
func (s Sale) GetID() string {
	return s.ID
}

// ItemCount returns the total unit quantity across all lines
func (s Sale) ItemCount() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}
