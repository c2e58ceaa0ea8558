package seed

import "github.com/optibiz/erp/internal/domain/inventory"

// Products returns the demo product catalog
func Products() []inventory.Product {
	return []inventory.Product{
		{
			ID:            "prod1",
			Name:          "iPhone 15 Pro",
			Category:      "Smartphones",
			SubCategory:   "iOS",
			SKU:           "IP15P-128-BLK",
			Barcode:       "1234567890123",
			Description:   "Latest iPhone model with A17 chip and improved camera",
			CostPrice:     money(799),
			SellingPrice:  money(999),
			Quantity:      25,
			ReorderLevel:  10,
			Supplier:      "sup1",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-09-15",
			Tags:          []string{"apple", "smartphone", "premium"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod2",
			Name:          "Samsung Galaxy S23",
			Category:      "Smartphones",
			SubCategory:   "Android",
			SKU:           "SGS23-256-WHT",
			Barcode:       "2345678901234",
			Description:   "Flagship Android smartphone with advanced camera system",
			CostPrice:     money(699),
			SellingPrice:  money(899),
			Quantity:      18,
			ReorderLevel:  8,
			Supplier:      "sup2",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-08-28",
			Tags:          []string{"samsung", "smartphone", "android"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod3",
			Name:          "MacBook Air M2",
			Category:      "Laptops",
			SubCategory:   "MacOS",
			SKU:           "MBA-M2-512-SVR",
			Barcode:       "3456789012345",
			Description:   "Thin and light laptop with Apple M2 chip",
			CostPrice:     money(899),
			SellingPrice:  money(1199),
			Quantity:      12,
			ReorderLevel:  5,
			Supplier:      "sup1",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-09-05",
			Tags:          []string{"apple", "laptop", "macbook"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod4",
			Name:          "Dell XPS 15",
			Category:      "Laptops",
			SubCategory:   "Windows",
			SKU:           "DXP15-1TB-BLK",
			Barcode:       "4567890123456",
			Description:   "Premium Windows laptop with 15-inch display",
			CostPrice:     money(1099),
			SellingPrice:  money(1399),
			Quantity:      8,
			ReorderLevel:  3,
			Supplier:      "sup3",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-07-20",
			Tags:          []string{"dell", "laptop", "windows"},
			Warranty:      "2 years",
		},
		{
			ID:            "prod5",
			Name:          "AirPods Pro 2",
			Category:      "Accessories",
			SubCategory:   "Audio",
			SKU:           "APP2-WHT",
			Barcode:       "5678901234567",
			Description:   "Wireless earbuds with noise cancellation",
			CostPrice:     money(179),
			SellingPrice:  money(249),
			Quantity:      30,
			ReorderLevel:  15,
			Supplier:      "sup1",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-09-10",
			Tags:          []string{"apple", "audio", "wireless"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod6",
			Name:          "Samsung 27\" Monitor",
			Category:      "Accessories",
			SubCategory:   "Monitors",
			SKU:           "SM27-4K-BLK",
			Barcode:       "6789012345678",
			Description:   "27-inch 4K monitor with USB-C connectivity",
			CostPrice:     money(299),
			SellingPrice:  money(399),
			Quantity:      7,
			ReorderLevel:  3,
			Supplier:      "sup2",
			Location:      "Warehouse",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-08-05",
			Tags:          []string{"samsung", "monitor", "display"},
			Warranty:      "3 years",
		},
		{
			ID:            "prod7",
			Name:          "Anker PowerCore",
			Category:      "Accessories",
			SubCategory:   "Power",
			SKU:           "APC-20K-BLK",
			Barcode:       "7890123456789",
			Description:   "20,000mAh portable power bank with fast charging",
			CostPrice:     money(39),
			SellingPrice:  money(59.99),
			Quantity:      45,
			ReorderLevel:  20,
			Supplier:      "sup4",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-09-20",
			Tags:          []string{"anker", "power bank", "charging"},
			Warranty:      "18 months",
		},
		{
			ID:            "prod8",
			Name:          "iPad Air",
			Category:      "Tablets",
			SubCategory:   "iOS",
			SKU:           "IPA-64-GRY",
			Barcode:       "8901234567890",
			Description:   "Mid-range tablet with 10.9-inch display",
			CostPrice:     money(449),
			SellingPrice:  money(599),
			Quantity:      15,
			ReorderLevel:  7,
			Supplier:      "sup1",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-08-15",
			Tags:          []string{"apple", "tablet", "ipad"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod9",
			Name:          "Samsung Galaxy Tab S8",
			Category:      "Tablets",
			SubCategory:   "Android",
			SKU:           "SGT-S8-128-BLK",
			Barcode:       "9012345678901",
			Description:   "High-performance Android tablet with S Pen",
			CostPrice:     money(549),
			SellingPrice:  money(699),
			Quantity:      10,
			ReorderLevel:  5,
			Supplier:      "sup2",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-07-30",
			Tags:          []string{"samsung", "tablet", "android"},
			Warranty:      "1 year",
		},
		{
			ID:            "prod10",
			Name:          "Logitech MX Master 3",
			Category:      "Accessories",
			SubCategory:   "Input Devices",
			SKU:           "LMX3-BLK",
			Barcode:       "0123456789012",
			Description:   "Advanced wireless mouse for productivity",
			CostPrice:     money(79),
			SellingPrice:  money(99.99),
			Quantity:      20,
			ReorderLevel:  8,
			Supplier:      "sup5",
			Location:      "Main Store",
			Status:        inventory.ProductStatusActive,
			LastRestocked: "2023-09-01",
			Tags:          []string{"logitech", "mouse", "wireless"},
			Warranty:      "2 years",
		},
	}
}

// Suppliers returns the demo vendor list
func Suppliers() []inventory.Supplier {
	return []inventory.Supplier{
		{
			ID:            "sup1",
			Name:          "Apple Distribution",
			ContactPerson: "Tim Anderson",
			Email:         "tim@appledist.com",
			Phone:         "+1-555-123-4567",
			Address:       "1 Infinite Loop, Cupertino, CA",
			TaxID:         "AD-987654321",
			PaymentTerms:  "Net 30",
			Rating:        5,
			Status:        inventory.SupplierStatusActive,
			Products:      []string{"prod1", "prod3", "prod5", "prod8"},
		},
		{
			ID:            "sup2",
			Name:          "Samsung Electronics",
			ContactPerson: "Sarah Kim",
			Email:         "sarah@samsung-dist.com",
			Phone:         "+1-555-234-5678",
			Address:       "123 Tech Blvd, Seoul",
			TaxID:         "SE-876543210",
			PaymentTerms:  "Net 45",
			Rating:        4,
			Status:        inventory.SupplierStatusActive,
			Products:      []string{"prod2", "prod6", "prod9"},
		},
		{
			ID:            "sup3",
			Name:          "Dell Technologies",
			ContactPerson: "Michael Dell",
			Email:         "michael@dell-wholesale.com",
			Phone:         "+1-555-345-6789",
			Address:       "1 Dell Way, Round Rock, TX",
			TaxID:         "DT-765432109",
			PaymentTerms:  "Net 60",
			Rating:        4,
			Status:        inventory.SupplierStatusActive,
			Products:      []string{"prod4"},
		},
		{
			ID:            "sup4",
			Name:          "Anker Innovations",
			ContactPerson: "Steven Yang",
			Email:         "steven@anker-dist.com",
			Phone:         "+1-555-456-7890",
			Address:       "456 Power Ave, Shenzhen",
			TaxID:         "AI-654321098",
			PaymentTerms:  "Net 30",
			Rating:        4,
			Status:        inventory.SupplierStatusActive,
			Products:      []string{"prod7"},
		},
		{
			ID:            "sup5",
			Name:          "Logitech Distribution",
			ContactPerson: "Emma Thompson",
			Email:         "emma@logitech-dist.com",
			Phone:         "+1-555-567-8901",
			Address:       "789 Mouse St, Lausanne",
			TaxID:         "LD-543210987",
			PaymentTerms:  "Net 30",
			Rating:        5,
			Status:        inventory.SupplierStatusActive,
			Products:      []string{"prod10"},
		},
	}
}
