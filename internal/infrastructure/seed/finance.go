package seed

import "github.com/optibiz/erp/internal/domain/finance"

// Accounts returns the demo chart of accounts
func Accounts() []finance.Account {
	return []finance.Account{
		{
			ID:             "acc1",
			Name:           "Main Operations",
			Type:           finance.AccountTypeBank,
			Currency:       "USD",
			Balance:        money(125750.45),
			OpeningBalance: money(100000),
			OpeningDate:    "2021-01-01",
			Status:         finance.AccountStatusActive,
			Notes:          "Primary business account",
		},
		{
			ID:             "acc2",
			Name:           "Payroll Account",
			Type:           finance.AccountTypeBank,
			Currency:       "USD",
			Balance:        money(45250.80),
			OpeningBalance: money(50000),
			OpeningDate:    "2021-01-01",
			Status:         finance.AccountStatusActive,
			Notes:          "Used for employee salaries and benefits",
		},
		{
			ID:             "acc3",
			Name:           "Petty Cash",
			Type:           finance.AccountTypeCash,
			Currency:       "USD",
			Balance:        money(750.25),
			OpeningBalance: money(1000),
			OpeningDate:    "2021-01-01",
			Status:         finance.AccountStatusActive,
			Notes:          "Office expenses and small purchases",
		},
		{
			ID:             "acc4",
			Name:           "Company Credit Card",
			Type:           finance.AccountTypeCreditCard,
			Currency:       "USD",
			Balance:        money(-2450.75),
			OpeningBalance: money(0),
			OpeningDate:    "2021-01-15",
			Status:         finance.AccountStatusActive,
			Notes:          "Business expenses and online purchases",
		},
		{
			ID:             "acc5",
			Name:           "Savings",
			Type:           finance.AccountTypeBank,
			Currency:       "USD",
			Balance:        money(75000.00),
			OpeningBalance: money(50000),
			OpeningDate:    "2021-06-01",
			Status:         finance.AccountStatusActive,
			Notes:          "Emergency fund and future expansion",
		},
	}
}

// Transactions returns the demo ledger entries
func Transactions() []finance.Transaction {
	return []finance.Transaction{
		{
			ID:          "tr1",
			Date:        "2023-09-15",
			Type:        finance.TransactionTypeIncome,
			Category:    "Sales",
			Amount:      money(8461.20),
			Account:     "acc1",
			Description: "Payment for corporate order #sale3",
			Reference:   "INV-2023-0905",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr2",
			Date:        "2023-09-12",
			Type:        finance.TransactionTypeIncome,
			Category:    "Sales",
			Amount:      money(1347.84),
			Account:     "acc1",
			Description: "Payment for order #sale1",
			Reference:   "INV-2023-0912",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr3",
			Date:        "2023-09-10",
			Type:        finance.TransactionTypeExpense,
			Category:    "Inventory",
			Amount:      money(11570),
			Account:     "acc1",
			Description: "Payment for purchase order #po1",
			Reference:   "PO-2023-0901",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr4",
			Date:        "2023-09-05",
			Type:        finance.TransactionTypeExpense,
			Category:    "Payroll",
			Amount:      money(15750.35),
			Account:     "acc2",
			Description: "Employee salaries for August 2023",
			Reference:   "PAY-2023-08",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr5",
			Date:        "2023-09-02",
			Type:        finance.TransactionTypeExpense,
			Category:    "Utilities",
			Amount:      money(850.45),
			Account:     "acc1",
			Description: "Electricity and water bill for August",
			Reference:   "UTIL-2023-08",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr6",
			Date:        "2023-09-01",
			Type:        finance.TransactionTypeExpense,
			Category:    "Rent",
			Amount:      money(3500),
			Account:     "acc1",
			Description: "Store rent for September 2023",
			Reference:   "RENT-2023-09",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr7",
			Date:        "2023-08-28",
			Type:        finance.TransactionTypeExpense,
			Category:    "Marketing",
			Amount:      money(1250.75),
			Account:     "acc4",
			Description: "Social media advertising for September",
			Reference:   "MKT-2023-09",
			Status:      finance.TransactionStatusCompleted,
		},
		{
			ID:          "tr8",
			Date:        "2023-08-25",
			Type:        finance.TransactionTypeExpense,
			Category:    "Inventory",
			Amount:      money(7087),
			Account:     "acc1",
			Description: "Payment for purchase order #po2",
			Reference:   "PO-2023-0825",
			Status:      finance.TransactionStatusCompleted,
		},
	}
}
