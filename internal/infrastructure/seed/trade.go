package seed

import "github.com/optibiz/erp/internal/domain/trade"

// Sales returns the demo sales history
func Sales() []trade.Sale {
	return []trade.Sale{
		{
			ID:         "sale1",
			CustomerID: "cust1",
			OrderDate:  "2023-09-12",
			Items: []trade.SaleItem{
				{ID: "si1", ProductID: "prod1", Quantity: 1, UnitPrice: money(999), Discount: money(0), TotalPrice: money(999)},
				{ID: "si2", ProductID: "prod5", Quantity: 1, UnitPrice: money(249), Discount: money(0), TotalPrice: money(249)},
			},
			Subtotal:       money(1248),
			TaxAmount:      money(99.84),
			DiscountAmount: money(0),
			TotalAmount:    money(1347.84),
			PaymentMethod:  trade.PaymentMethodCreditCard,
			PaymentStatus:  trade.PaymentStatusPaid,
			DeliveryStatus: trade.DeliveryStatusDelivered,
			Notes:          "Regular customer, added AppleCare",
		},
		{
			ID:         "sale2",
			CustomerID: "cust2",
			OrderDate:  "2023-09-18",
			Items: []trade.SaleItem{
				{ID: "si3", ProductID: "prod2", Quantity: 1, UnitPrice: money(899), Discount: money(50), TotalPrice: money(849)},
				{ID: "si4", ProductID: "prod7", Quantity: 2, UnitPrice: money(59.99), Discount: money(0), TotalPrice: money(119.98)},
			},
			Subtotal:       money(968.98),
			TaxAmount:      money(77.52),
			DiscountAmount: money(50),
			TotalAmount:    money(1046.50),
			PaymentMethod:  trade.PaymentMethodCreditCard,
			PaymentStatus:  trade.PaymentStatusPaid,
			DeliveryStatus: trade.DeliveryStatusDelivered,
			Notes:          "Applied promotional discount on Galaxy S23",
		},
		{
			ID:         "sale3",
			CustomerID: "cust3",
			OrderDate:  "2023-09-05",
			Items: []trade.SaleItem{
				{ID: "si5", ProductID: "prod4", Quantity: 5, UnitPrice: money(1399), Discount: money(500), TotalPrice: money(6495)},
				{ID: "si6", ProductID: "prod6", Quantity: 5, UnitPrice: money(399), Discount: money(100), TotalPrice: money(1895)},
			},
			Subtotal:       money(8390),
			TaxAmount:      money(671.20),
			DiscountAmount: money(600),
			TotalAmount:    money(8461.20),
			PaymentMethod:  trade.PaymentMethodCredit,
			PaymentStatus:  trade.PaymentStatusPaid,
			DeliveryStatus: trade.DeliveryStatusDelivered,
			Notes:          "Corporate order for new office setup",
		},
		{
			ID:         "sale4",
			CustomerID: "cust7",
			OrderDate:  "2023-09-20",
			Items: []trade.SaleItem{
				{ID: "si7", ProductID: "prod3", Quantity: 1, UnitPrice: money(1199), Discount: money(0), TotalPrice: money(1199)},
				{ID: "si8", ProductID: "prod10", Quantity: 1, UnitPrice: money(99.99), Discount: money(0), TotalPrice: money(99.99)},
			},
			Subtotal:       money(1298.99),
			TaxAmount:      money(103.92),
			DiscountAmount: money(0),
			TotalAmount:    money(1402.91),
			PaymentMethod:  trade.PaymentMethodCreditCard,
			PaymentStatus:  trade.PaymentStatusPaid,
			DeliveryStatus: trade.DeliveryStatusDelivered,
			Notes:          "Customer purchased extended warranty",
		},
		{
			ID:         "sale5",
			CustomerID: "cust8",
			OrderDate:  "2023-09-10",
			Items: []trade.SaleItem{
				{ID: "si9", ProductID: "prod9", Quantity: 8, UnitPrice: money(699), Discount: money(400), TotalPrice: money(5192)},
			},
			Subtotal:       money(5192),
			TaxAmount:      money(415.36),
			DiscountAmount: money(400),
			TotalAmount:    money(5607.36),
			PaymentMethod:  trade.PaymentMethodCredit,
			PaymentStatus:  trade.PaymentStatusPaid,
			DeliveryStatus: trade.DeliveryStatusDelivered,
			Notes:          "Bulk order for store tablets",
		},
	}
}

// PurchaseOrders returns the demo replenishment orders
func PurchaseOrders() []trade.PurchaseOrder {
	return []trade.PurchaseOrder{
		{
			ID:                   "po1",
			SupplierID:           "sup1",
			OrderDate:            "2023-09-01",
			ExpectedDeliveryDate: "2023-09-15",
			Status:               trade.PurchaseOrderStatusReceived,
			Items: []trade.PurchaseOrderItem{
				{ID: "poi1", ProductID: "prod1", Quantity: 10, UnitPrice: money(799), TotalPrice: money(7990)},
				{ID: "poi2", ProductID: "prod5", Quantity: 20, UnitPrice: money(179), TotalPrice: money(3580)},
			},
			TotalAmount:    money(11570),
			PaymentStatus:  trade.PaymentStatusPaid,
			PaymentDueDate: "2023-10-01",
			Notes:          "Regular stock replenishment",
		},
		{
			ID:                   "po2",
			SupplierID:           "sup2",
			OrderDate:            "2023-08-25",
			ExpectedDeliveryDate: "2023-09-10",
			Status:               trade.PurchaseOrderStatusReceived,
			Items: []trade.PurchaseOrderItem{
				{ID: "poi3", ProductID: "prod2", Quantity: 8, UnitPrice: money(699), TotalPrice: money(5592)},
				{ID: "poi4", ProductID: "prod6", Quantity: 5, UnitPrice: money(299), TotalPrice: money(1495)},
			},
			TotalAmount:    money(7087),
			PaymentStatus:  trade.PaymentStatusPaid,
			PaymentDueDate: "2023-10-09",
			Notes:          "Expedited shipping requested",
		},
		{
			ID:                   "po3",
			SupplierID:           "sup3",
			OrderDate:            "2023-09-05",
			ExpectedDeliveryDate: "2023-09-25",
			Status:               trade.PurchaseOrderStatusSubmitted,
			Items: []trade.PurchaseOrderItem{
				{ID: "poi5", ProductID: "prod4", Quantity: 5, UnitPrice: money(1099), TotalPrice: money(5495)},
			},
			TotalAmount:    money(5495),
			PaymentStatus:  trade.PaymentStatusPending,
			PaymentDueDate: "2023-11-04",
			Notes:          "Back-to-school promotion stock",
		},
		{
			ID:                   "po4",
			SupplierID:           "sup1",
			OrderDate:            "2023-09-15",
			ExpectedDeliveryDate: "2023-10-01",
			Status:               trade.PurchaseOrderStatusSubmitted,
			Items: []trade.PurchaseOrderItem{
				{ID: "poi6", ProductID: "prod8", Quantity: 10, UnitPrice: money(449), TotalPrice: money(4490)},
			},
			TotalAmount:    money(4490),
			PaymentStatus:  trade.PaymentStatusPending,
			PaymentDueDate: "2023-10-15",
			Notes:          "New iPad model release preparation",
		},
	}
}
