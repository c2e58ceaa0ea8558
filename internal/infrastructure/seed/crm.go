package seed

import "github.com/optibiz/erp/internal/domain/crm"

// Customers returns the demo customer book
func Customers() []crm.Customer {
	return []crm.Customer{
		{
			ID:             "cust1",
			FirstName:      "Robert",
			LastName:       "Johnson",
			Email:          "robert.johnson@email.com",
			Phone:          "+1-555-111-2222",
			Address:        "123 Oak St",
			City:           "Springfield",
			State:          "IL",
			Zip:            "62704",
			Country:        "USA",
			Type:           crm.CustomerTypeIndividual,
			JoinDate:       "2022-03-15",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(2450.75),
			LastPurchase:   "2023-09-12",
			LoyaltyPoints:  245,
			Notes:          "Frequent buyer of Apple products",
		},
		{
			ID:             "cust2",
			FirstName:      "Jennifer",
			LastName:       "Smith",
			Email:          "jennifer.smith@email.com",
			Phone:          "+1-555-222-3333",
			Address:        "456 Maple Ave",
			City:           "Riverdale",
			State:          "NY",
			Zip:            "10471",
			Country:        "USA",
			Type:           crm.CustomerTypeIndividual,
			JoinDate:       "2022-05-22",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(1890.50),
			LastPurchase:   "2023-09-18",
			LoyaltyPoints:  190,
			Notes:          "Prefers Samsung devices",
		},
		{
			ID:             "cust3",
			FirstName:      "Michael",
			LastName:       "Brown",
			Email:          "michael.brown@techinc.com",
			Phone:          "+1-555-333-4444",
			Address:        "789 Pine St",
			City:           "Portland",
			State:          "OR",
			Zip:            "97205",
			Country:        "USA",
			Type:           crm.CustomerTypeBusiness,
			Company:        "Tech Inc.",
			JoinDate:       "2022-01-10",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(8750.25),
			LastPurchase:   "2023-09-05",
			LoyaltyPoints:  875,
			Notes:          "Corporate account, requires invoicing",
		},
		{
			ID:             "cust4",
			FirstName:      "Sarah",
			LastName:       "Davis",
			Email:          "sarah.davis@email.com",
			Phone:          "+1-555-444-5555",
			Address:        "101 Elm St",
			City:           "Austin",
			State:          "TX",
			Zip:            "78701",
			Country:        "USA",
			Type:           crm.CustomerTypeIndividual,
			JoinDate:       "2022-08-05",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(950.00),
			LastPurchase:   "2023-08-28",
			LoyaltyPoints:  95,
			Notes:          "Interested in gaming accessories",
		},
		{
			ID:             "cust5",
			FirstName:      "David",
			LastName:       "Wilson",
			Email:          "david.wilson@schooldist.edu",
			Phone:          "+1-555-555-6666",
			Address:        "202 Cedar Rd",
			City:           "Boston",
			State:          "MA",
			Zip:            "02108",
			Country:        "USA",
			Type:           crm.CustomerTypeBusiness,
			Company:        "School District 5",
			JoinDate:       "2022-06-15",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(12500.75),
			LastPurchase:   "2023-08-15",
			LoyaltyPoints:  1250,
			Notes:          "Educational discount applies",
		},
		{
			ID:             "cust6",
			FirstName:      "Jessica",
			LastName:       "Miller",
			Email:          "jessica.miller@email.com",
			Phone:          "+1-555-666-7777",
			Address:        "303 Birch Ln",
			City:           "San Diego",
			State:          "CA",
			Zip:            "92101",
			Country:        "USA",
			Type:           crm.CustomerTypeIndividual,
			JoinDate:       "2022-09-20",
			Status:         crm.CustomerStatusInactive,
			TotalPurchases: money(450.25),
			LastPurchase:   "2023-01-15",
			LoyaltyPoints:  45,
			Notes:          "Has not made purchases in 6+ months",
		},
		{
			ID:             "cust7",
			FirstName:      "Christopher",
			LastName:       "Taylor",
			Email:          "christopher.taylor@email.com",
			Phone:          "+1-555-777-8888",
			Address:        "404 Spruce Dr",
			City:           "Denver",
			State:          "CO",
			Zip:            "80202",
			Country:        "USA",
			Type:           crm.CustomerTypeIndividual,
			JoinDate:       "2022-11-10",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(3275.50),
			LastPurchase:   "2023-09-20",
			LoyaltyPoints:  330,
			Notes:          "Prefers high-end laptops",
		},
		{
			ID:             "cust8",
			FirstName:      "Amanda",
			LastName:       "Thomas",
			Email:          "amanda.thomas@shoprite.com",
			Phone:          "+1-555-888-9999",
			Address:        "505 Walnut St",
			City:           "Chicago",
			State:          "IL",
			Zip:            "60601",
			Country:        "USA",
			Type:           crm.CustomerTypeBusiness,
			Company:        "Shop-Rite",
			JoinDate:       "2022-02-28",
			Status:         crm.CustomerStatusActive,
			TotalPurchases: money(6750.00),
			LastPurchase:   "2023-09-10",
			LoyaltyPoints:  675,
			Notes:          "Monthly ordering of tablets for POS",
		},
	}
}

// Tickets returns the demo support queue
func Tickets() []crm.SupportTicket {
	return []crm.SupportTicket{
		{
			ID:          "ticket1",
			CustomerID:  "cust1",
			Subject:     "iPhone not charging properly",
			Description: "Customer reports that their iPhone 15 Pro purchased last week isn't charging consistently with the included cable.",
			Category:    "Product Issue",
			Priority:    crm.TicketPriorityHigh,
			Status:      crm.TicketStatusInProgress,
			AssignedTo:  "emp3",
			CreatedDate: "2023-09-18",
			UpdatedDate: "2023-09-19",
			Comments: []crm.Comment{
				{
					ID:        "comm1",
					TicketID:  "ticket1",
					UserID:    "emp3",
					Content:   "Contacted customer to troubleshoot. Will test with different cable and adapter.",
					Timestamp: "2023-09-19",
				},
			},
		},
		{
			ID:          "ticket2",
			CustomerID:  "cust4",
			Subject:     "Request for gaming accessory recommendations",
			Description: "Customer is looking for recommendations on gaming keyboards and mice compatible with their new laptop.",
			Category:    "Sales Inquiry",
			Priority:    crm.TicketPriorityMedium,
			Status:      crm.TicketStatusNew,
			CreatedDate: "2023-09-20",
			UpdatedDate: "2023-09-20",
		},
		{
			ID:          "ticket3",
			CustomerID:  "cust2",
			Subject:     "Warranty claim for Samsung Galaxy S23",
			Description: "Screen developed dead pixels after 3 months of use. Customer requesting warranty service.",
			Category:    "Warranty",
			Priority:    crm.TicketPriorityHigh,
			Status:      crm.TicketStatusWaiting,
			AssignedTo:  "emp2",
			CreatedDate: "2023-09-15",
			UpdatedDate: "2023-09-17",
			Comments: []crm.Comment{
				{
					ID:        "comm2",
					TicketID:  "ticket3",
					UserID:    "emp2",
					Content:   "Submitted claim to Samsung. Waiting for approval. Estimated 3-5 business days for response.",
					Timestamp: "2023-09-17",
				},
			},
		},
		{
			ID:           "ticket4",
			CustomerID:   "cust7",
			Subject:      "Software installation assistance",
			Description:  "Customer needs help installing specialized software on their new MacBook Air.",
			Category:     "Technical Support",
			Priority:     crm.TicketPriorityMedium,
			Status:       crm.TicketStatusResolved,
			AssignedTo:   "emp3",
			CreatedDate:  "2023-09-10",
			UpdatedDate:  "2023-09-12",
			ResolvedDate: "2023-09-12",
			Comments: []crm.Comment{
				{
					ID:        "comm3",
					TicketID:  "ticket4",
					UserID:    "emp3",
					Content:   "Provided step-by-step instructions via email.",
					Timestamp: "2023-09-11",
				},
				{
					ID:        "comm4",
					TicketID:  "ticket4",
					UserID:    "emp3",
					Content:   "Customer confirmed successful installation. Issue resolved.",
					Timestamp: "2023-09-12",
				},
			},
		},
	}
}
