package seed

import "github.com/optibiz/erp/internal/domain/workplace"

// Projects returns the demo project portfolio with embedded task breakdowns
func Projects() []workplace.Project {
	return []workplace.Project{
		{
			ID:          "proj1",
			Name:        "Store Renovation",
			Description: "Renovate the main store layout to improve customer flow and product visibility",
			Manager:     "emp1",
			Team:        []string{"emp2", "emp5"},
			StartDate:   "2023-10-01",
			Deadline:    "2023-10-15",
			Status:      workplace.ProjectStatusPlanning,
			Progress:    0,
			Budget:      money(15000),
			Expenses:    money(0),
			Priority:    workplace.PriorityHigh,
			Tasks: []workplace.Task{
				{
					ID:          "task1",
					ProjectID:   "proj1",
					Title:       "Design store layout",
					Description: "Create a new floor plan to optimize space and customer flow",
					AssignedTo:  "emp1",
					StartDate:   "2023-10-01",
					DueDate:     "2023-10-03",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityHigh,
				},
				{
					ID:          "task2",
					ProjectID:   "proj1",
					Title:       "Order display fixtures",
					Description: "Purchase new display units for improved product presentation",
					AssignedTo:  "emp5",
					StartDate:   "2023-10-04",
					DueDate:     "2023-10-06",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityMedium,
				},
				{
					ID:          "task3",
					ProjectID:   "proj1",
					Title:       "Schedule installation",
					Description: "Coordinate with contractors for installation during off-hours",
					AssignedTo:  "emp1",
					StartDate:   "2023-10-07",
					DueDate:     "2023-10-09",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityMedium,
				},
				{
					ID:          "task4",
					ProjectID:   "proj1",
					Title:       "Move inventory",
					Description: "Reorganize stock according to new layout",
					AssignedTo:  "emp5",
					StartDate:   "2023-10-10",
					DueDate:     "2023-10-12",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityHigh,
				},
				{
					ID:          "task5",
					ProjectID:   "proj1",
					Title:       "Finalize and launch",
					Description: "Complete final adjustments and reopen store",
					AssignedTo:  "emp1",
					StartDate:   "2023-10-13",
					DueDate:     "2023-10-15",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityHigh,
				},
			},
			Notes: "Need to ensure minimal disruption to regular business operations",
		},
		{
			ID:          "proj2",
			Name:        "Holiday Season Preparation",
			Description: "Plan and execute marketing campaign and inventory management for upcoming holiday season",
			Manager:     "emp1",
			Team:        []string{"emp2", "emp3", "emp5"},
			StartDate:   "2023-10-15",
			Deadline:    "2023-11-15",
			Status:      workplace.ProjectStatusPlanning,
			Progress:    0,
			Budget:      money(25000),
			Expenses:    money(0),
			Priority:    workplace.PriorityMedium,
			Tasks: []workplace.Task{
				{
					ID:          "task6",
					ProjectID:   "proj2",
					Title:       "Market research",
					Description: "Analyze previous holiday season trends and new product popularity",
					AssignedTo:  "emp2",
					StartDate:   "2023-10-15",
					DueDate:     "2023-10-20",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityHigh,
				},
				{
					ID:          "task7",
					ProjectID:   "proj2",
					Title:       "Develop promotional strategy",
					Description: "Create special offers and bundle deals for holiday shoppers",
					AssignedTo:  "emp2",
					StartDate:   "2023-10-21",
					DueDate:     "2023-10-28",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityHigh,
				},
				{
					ID:          "task8",
					ProjectID:   "proj2",
					Title:       "Order additional inventory",
					Description: "Stock up on popular items to meet increased demand",
					AssignedTo:  "emp5",
					StartDate:   "2023-10-29",
					DueDate:     "2023-11-05",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityMedium,
				},
				{
					ID:          "task9",
					ProjectID:   "proj2",
					Title:       "Update website and social media",
					Description: "Create holiday-themed online presence with special offers",
					AssignedTo:  "emp3",
					StartDate:   "2023-11-01",
					DueDate:     "2023-11-10",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityMedium,
				},
				{
					ID:          "task10",
					ProjectID:   "proj2",
					Title:       "Staff training",
					Description: "Train staff on holiday promotions and extended hours",
					AssignedTo:  "emp1",
					StartDate:   "2023-11-05",
					DueDate:     "2023-11-15",
					Status:      workplace.TaskStatusTodo,
					Priority:    workplace.PriorityMedium,
				},
			},
			Notes: "Focus on exclusive deals for high-margin accessories",
		},
	}
}

// Tasks returns the demo standalone tasks, those not linked to a project
func Tasks() []workplace.Task {
	return []workplace.Task{
		{
			ID:          "standalone1",
			Title:       "Monthly inventory audit",
			Description: "Conduct full inventory count and reconciliation",
			AssignedTo:  "emp5",
			StartDate:   "2023-09-25",
			DueDate:     "2023-09-30",
			Status:      workplace.TaskStatusTodo,
			Priority:    workplace.PriorityHigh,
		},
		{
			ID:          "standalone2",
			Title:       "Employee performance reviews",
			Description: "Complete quarterly performance evaluations for all staff",
			AssignedTo:  "emp1",
			StartDate:   "2023-09-28",
			DueDate:     "2023-10-05",
			Status:      workplace.TaskStatusTodo,
			Priority:    workplace.PriorityMedium,
		},
		{
			ID:          "standalone3",
			Title:       "Update website product listings",
			Description: "Ensure all new products are listed with correct descriptions and pricing",
			AssignedTo:  "emp3",
			StartDate:   "2023-09-22",
			DueDate:     "2023-09-25",
			Status:      workplace.TaskStatusInProgress,
			Priority:    workplace.PriorityMedium,
			Progress:    50,
		},
	}
}

// Assets returns the demo fixed-asset register
func Assets() []workplace.Asset {
	return []workplace.Asset{
		{
			ID:             "asset1",
			Name:           "Point of Sale System",
			Category:       "Electronics",
			SerialNumber:   "POS-2021-001",
			PurchaseDate:   "2021-01-15",
			PurchasePrice:  money(2500),
			AssignedTo:     "emp1",
			Location:       "Main Store",
			Status:         workplace.AssetStatusInUse,
			Condition:      workplace.AssetConditionGood,
			WarrantyExpiry: "2024-01-15",
			MaintenanceSchedule: []workplace.MaintenanceEvent{
				{
					ID:          "maint1",
					AssetID:     "asset1",
					Type:        "routine",
					Date:        "2023-07-15",
					Cost:        money(150),
					Provider:    "TechSupport Inc.",
					Description: "Regular system check and software update",
					Status:      "completed",
				},
				{
					ID:          "maint2",
					AssetID:     "asset1",
					Type:        "routine",
					Date:        "2024-01-15",
					Cost:        money(150),
					Provider:    "TechSupport Inc.",
					Description: "Scheduled maintenance before warranty expires",
					Status:      "scheduled",
				},
			},
			Depreciation: workplace.Depreciation{Method: "straight-line", Rate: 20, CurrentValue: money(1500)},
			Notes:        "Main checkout system, critical for operations",
		},
		{
			ID:             "asset2",
			Name:           "Store Display iPad",
			Category:       "Electronics",
			SerialNumber:   "IPAD-2022-002",
			PurchaseDate:   "2022-03-10",
			PurchasePrice:  money(599),
			AssignedTo:     "emp2",
			Location:       "Main Store",
			Status:         workplace.AssetStatusInUse,
			Condition:      workplace.AssetConditionExcellent,
			WarrantyExpiry: "2023-03-10",
			Depreciation:   workplace.Depreciation{Method: "straight-line", Rate: 33, CurrentValue: money(400)},
			Notes:          "Used for product demos and customer sign-ups",
		},
		{
			ID:             "asset3",
			Name:           "Office Laptop - Dell XPS",
			Category:       "Electronics",
			SerialNumber:   "DELL-2022-003",
			PurchaseDate:   "2022-05-20",
			PurchasePrice:  money(1299),
			AssignedTo:     "emp4",
			Location:       "Office",
			Status:         workplace.AssetStatusInUse,
			Condition:      workplace.AssetConditionExcellent,
			WarrantyExpiry: "2025-05-20",
			Depreciation:   workplace.Depreciation{Method: "straight-line", Rate: 25, CurrentValue: money(1000)},
			Notes:          "Used for accounting and financial reporting",
		},
		{
			ID:             "asset4",
			Name:           "Inventory Scanner",
			Category:       "Electronics",
			SerialNumber:   "SCAN-2022-004",
			PurchaseDate:   "2022-02-15",
			PurchasePrice:  money(499),
			AssignedTo:     "emp5",
			Location:       "Warehouse",
			Status:         workplace.AssetStatusInUse,
			Condition:      workplace.AssetConditionGood,
			WarrantyExpiry: "2024-02-15",
			MaintenanceSchedule: []workplace.MaintenanceEvent{
				{
					ID:          "maint3",
					AssetID:     "asset4",
					Type:        "repair",
					Date:        "2023-06-10",
					Cost:        money(75),
					Provider:    "TechSupport Inc.",
					Description: "Battery replacement",
					Status:      "completed",
				},
			},
			Depreciation: workplace.Depreciation{Method: "straight-line", Rate: 25, CurrentValue: money(350)},
			Notes:        "Used for inventory management and stock taking",
		},
		{
			ID:             "asset5",
			Name:           "Office Furniture Set",
			Category:       "Furniture",
			SerialNumber:   "FURN-2021-005",
			PurchaseDate:   "2021-01-15",
			PurchasePrice:  money(3500),
			Location:       "Office",
			Status:         workplace.AssetStatusInUse,
			Condition:      workplace.AssetConditionGood,
			WarrantyExpiry: "2023-01-15",
			Depreciation:   workplace.Depreciation{Method: "straight-line", Rate: 10, CurrentValue: money(2800)},
			Notes:          "Complete set of desks, chairs, and storage cabinets",
		},
	}
}

// Documents returns the demo document library
func Documents() []workplace.Document {
	return []workplace.Document{
		{
			ID:           "doc1",
			Name:         "Business License",
			Type:         "pdf",
			Category:     "Legal",
			Path:         "/documents/legal/business_license_2023.pdf",
			Size:         1250000,
			UploadedBy:   "emp1",
			UploadDate:   "2023-01-05",
			LastModified: "2023-01-05",
			Status:       workplace.DocumentStatusActive,
			Tags:         []string{"legal", "compliance", "license"},
			AccessLevel:  workplace.AccessLevelRestricted,
			AllowedUsers: []string{"emp1", "emp4"},
		},
		{
			ID:           "doc2",
			Name:         "Employee Handbook",
			Type:         "pdf",
			Category:     "HR",
			Path:         "/documents/hr/employee_handbook_2023.pdf",
			Size:         3500000,
			UploadedBy:   "emp1",
			UploadDate:   "2023-01-15",
			LastModified: "2023-02-10",
			Status:       workplace.DocumentStatusActive,
			Tags:         []string{"hr", "policies", "handbook"},
			AccessLevel:  workplace.AccessLevelInternal,
		},
		{
			ID:           "doc3",
			Name:         "Supplier Agreement - Apple",
			Type:         "docx",
			Category:     "Contracts",
			Path:         "/documents/contracts/apple_agreement_2023.docx",
			Size:         980000,
			UploadedBy:   "emp1",
			UploadDate:   "2023-01-20",
			LastModified: "2023-01-20",
			Status:       workplace.DocumentStatusActive,
			Tags:         []string{"supplier", "contract", "apple"},
			AccessLevel:  workplace.AccessLevelConfidential,
			AllowedUsers: []string{"emp1", "emp4", "emp5"},
		},
		{
			ID:           "doc4",
			Name:         "Store Renovation Plan",
			Type:         "pdf",
			Category:     "Projects",
			Path:         "/documents/projects/store_renovation_plan.pdf",
			Size:         4500000,
			UploadedBy:   "emp1",
			UploadDate:   "2023-09-15",
			LastModified: "2023-09-15",
			Status:       workplace.DocumentStatusActive,
			Tags:         []string{"project", "renovation", "planning"},
			AccessLevel:  workplace.AccessLevelInternal,
		},
		{
			ID:           "doc5",
			Name:         "Q2 Financial Report",
			Type:         "xlsx",
			Category:     "Financial",
			Path:         "/documents/financial/q2_financial_report.xlsx",
			Size:         1800000,
			UploadedBy:   "emp4",
			UploadDate:   "2023-07-15",
			LastModified: "2023-07-20",
			Status:       workplace.DocumentStatusActive,
			Tags:         []string{"financial", "quarterly", "report"},
			AccessLevel:  workplace.AccessLevelConfidential,
			AllowedUsers: []string{"emp1", "emp4"},
		},
	}
}
