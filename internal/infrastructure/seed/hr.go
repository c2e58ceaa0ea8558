package seed

import "github.com/optibiz/erp/internal/domain/hr"

// Employees returns the demo staff roster
func Employees() []hr.Employee {
	return []hr.Employee{
		{
			ID:          "emp1",
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@optibiz.com",
			Phone:       "+1234567890",
			Position:    "Store Manager",
			Department:  "Sales",
			JoinDate:    "2021-03-15",
			Salary:      money(45000),
			Status:      hr.EmployeeStatusActive,
			Address:     "123 Main St, Cityville",
			Avatar:      "https://i.pravatar.cc/150?img=2",
			BankAccount: "9876543210",
			BankName:    "First National Bank",
			TaxID:       "TX12345",
			EmergencyContact: hr.EmergencyContact{
				Name:         "Jane Doe",
				Relationship: "Spouse",
				Phone:        "+1234567891",
			},
			PerformanceReviews: []hr.PerformanceReview{
				{
					ID:         "pr1",
					EmployeeID: "emp1",
					ReviewerID: "u1",
					Date:       "2023-01-15",
					Rating:     money(4),
					Strengths:  []string{"Customer service", "Team leadership"},
					Weaknesses: []string{"Inventory management"},
					Goals:      []string{"Improve inventory tracking", "Train new hires"},
					Comments:   "John is a valuable team member who consistently meets targets.",
				},
			},
			LeaveBalance: hr.LeaveBalance{Annual: 18, Sick: 10, Unpaid: 0},
		},
		{
			ID:          "emp2",
			FirstName:   "Sarah",
			LastName:    "Smith",
			Email:       "sarah.smith@optibiz.com",
			Phone:       "+1234567892",
			Position:    "Sales Associate",
			Department:  "Sales",
			JoinDate:    "2022-01-10",
			Salary:      money(32000),
			Status:      hr.EmployeeStatusActive,
			Address:     "456 Elm St, Townsville",
			Avatar:      "https://i.pravatar.cc/150?img=5",
			BankAccount: "1234567890",
			BankName:    "First National Bank",
			TaxID:       "TX12346",
			EmergencyContact: hr.EmergencyContact{
				Name:         "Mike Smith",
				Relationship: "Brother",
				Phone:        "+1234567893",
			},
			PerformanceReviews: []hr.PerformanceReview{
				{
					ID:         "pr2",
					EmployeeID: "emp2",
					ReviewerID: "u1",
					Date:       "2023-01-18",
					Rating:     money(4.5),
					Strengths:  []string{"Sales conversion", "Product knowledge"},
					Weaknesses: []string{"Documentation"},
					Goals:      []string{"Improve documentation", "Meet quarterly targets"},
					Comments:   "Sarah consistently exceeds sales targets and has excellent product knowledge.",
				},
			},
			LeaveBalance: hr.LeaveBalance{Annual: 12, Sick: 7, Unpaid: 0},
		},
		{
			ID:          "emp3",
			FirstName:   "Michael",
			LastName:    "Johnson",
			Email:       "michael.johnson@optibiz.com",
			Phone:       "+1234567894",
			Position:    "Technical Support",
			Department:  "IT",
			JoinDate:    "2021-06-20",
			Salary:      money(38000),
			Status:      hr.EmployeeStatusActive,
			Address:     "789 Oak St, Villageton",
			Avatar:      "https://i.pravatar.cc/150?img=3",
			BankAccount: "2345678901",
			BankName:    "City Bank",
			TaxID:       "TX12347",
			EmergencyContact: hr.EmergencyContact{
				Name:         "Lisa Johnson",
				Relationship: "Spouse",
				Phone:        "+1234567895",
			},
			PerformanceReviews: []hr.PerformanceReview{
				{
					ID:         "pr3",
					EmployeeID: "emp3",
					ReviewerID: "u1",
					Date:       "2023-01-20",
					Rating:     money(3.8),
					Strengths:  []string{"Technical knowledge", "Problem-solving"},
					Weaknesses: []string{"Customer communication"},
					Goals:      []string{"Improve customer service skills", "Learn new repair techniques"},
					Comments:   "Michael has strong technical skills but needs to work on customer communication.",
				},
			},
			LeaveBalance: hr.LeaveBalance{Annual: 15, Sick: 8, Unpaid: 0},
		},
		{
			ID:          "emp4",
			FirstName:   "Emily",
			LastName:    "Brown",
			Email:       "emily.brown@optibiz.com",
			Phone:       "+1234567896",
			Position:    "Accountant",
			Department:  "Finance",
			JoinDate:    "2022-04-05",
			Salary:      money(40000),
			Status:      hr.EmployeeStatusOnLeave,
			Address:     "101 Pine St, Hamletville",
			Avatar:      "https://i.pravatar.cc/150?img=4",
			BankAccount: "3456789012",
			BankName:    "United Bank",
			TaxID:       "TX12348",
			EmergencyContact: hr.EmergencyContact{
				Name:         "David Brown",
				Relationship: "Spouse",
				Phone:        "+1234567897",
			},
			PerformanceReviews: []hr.PerformanceReview{
				{
					ID:         "pr4",
					EmployeeID: "emp4",
					ReviewerID: "u1",
					Date:       "2023-01-25",
					Rating:     money(4.2),
					Strengths:  []string{"Attention to detail", "Financial analysis"},
					Weaknesses: []string{"Software proficiency"},
					Goals:      []string{"Master new accounting software", "Streamline monthly reporting"},
					Comments:   "Emily is detail-oriented and reliable in her financial reporting duties.",
				},
			},
			LeaveBalance: hr.LeaveBalance{Annual: 10, Sick: 5, Unpaid: 0},
		},
		{
			ID:          "emp5",
			FirstName:   "David",
			LastName:    "Wilson",
			Email:       "david.wilson@optibiz.com",
			Phone:       "+1234567898",
			Position:    "Warehouse Manager",
			Department:  "Inventory",
			JoinDate:    "2021-02-15",
			Salary:      money(42000),
			Status:      hr.EmployeeStatusActive,
			Address:     "202 Maple St, Boroughtown",
			Avatar:      "https://i.pravatar.cc/150?img=6",
			BankAccount: "4567890123",
			BankName:    "Metro Bank",
			TaxID:       "TX12349",
			EmergencyContact: hr.EmergencyContact{
				Name:         "Susan Wilson",
				Relationship: "Spouse",
				Phone:        "+1234567899",
			},
			PerformanceReviews: []hr.PerformanceReview{
				{
					ID:         "pr5",
					EmployeeID: "emp5",
					ReviewerID: "u1",
					Date:       "2023-02-01",
					Rating:     money(4),
					Strengths:  []string{"Inventory control", "Team coordination"},
					Weaknesses: []string{"Technology adoption"},
					Goals:      []string{"Implement new inventory system", "Reduce shipping errors"},
					Comments:   "David manages the warehouse effectively and maintains accurate inventory records.",
				},
			},
			LeaveBalance: hr.LeaveBalance{Annual: 20, Sick: 10, Unpaid: 0},
		},
	}
}

// Payrolls returns the demo payroll runs for August
func Payrolls() []hr.Payroll {
	return []hr.Payroll{
		{
			ID:          "pay1",
			EmployeeID:  "emp1",
			PeriodStart: "2023-08-01",
			PeriodEnd:   "2023-08-31",
			BasicSalary: money(3750),
			Allowances: hr.Allowances{
				Housing:   money(500),
				Transport: money(200),
				Meal:      money(100),
			},
			Deductions: hr.Deductions{
				Tax:       money(450),
				Insurance: money(150),
				Pension:   money(187.5),
			},
			NetSalary:     money(3762.5),
			Status:        hr.PayrollStatusPaid,
			PaymentDate:   "2023-09-05",
			PaymentMethod: hr.PaymentMethodBank,
		},
		{
			ID:          "pay2",
			EmployeeID:  "emp2",
			PeriodStart: "2023-08-01",
			PeriodEnd:   "2023-08-31",
			BasicSalary: money(2666.67),
			Allowances: hr.Allowances{
				Housing:   money(350),
				Transport: money(150),
				Meal:      money(75),
			},
			Deductions: hr.Deductions{
				Tax:       money(320),
				Insurance: money(120),
				Pension:   money(133.33),
				Loans:     money(200),
			},
			NetSalary:     money(2469.01),
			Status:        hr.PayrollStatusPaid,
			PaymentDate:   "2023-09-05",
			PaymentMethod: hr.PaymentMethodBank,
		},
	}
}
