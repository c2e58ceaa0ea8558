package report

import (
	"github.com/optibiz/erp/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CategoryAmount is one slice of a category breakdown chart.
// Breakdowns keep first-encountered key order so chart legends stay stable.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CashflowPoint is one bucket of the cash-flow series
type CashflowPoint struct {
	Date    string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AccountBalance is one row of the account-balances card
type AccountBalance struct {
	Account string
	Balance decimal.Decimal
}

// ProductSales is one row of the top-selling products ranking
type ProductSales struct {
	ProductID string
	Name      string
	Sold      int
}

// SalesStats summarises the trade module for the dashboard
type SalesStats struct {
	TotalOrders     int
	TotalRevenue    decimal.Decimal
	SalesByCategory []CategoryAmount
	RecentSales     []trade.Sale
}

// InventoryStats summarises the inventory module for the dashboard
type InventoryStats struct {
	TotalProducts   int
	LowStock        int
	OutOfStock      int
	TotalStockValue decimal.Decimal
	StockByCategory []CategoryAmount
	TopSelling      []ProductSales
}

// FinanceStats summarises the finance module for the dashboard
type FinanceStats struct {
	Revenue           decimal.Decimal
	Expenses          decimal.Decimal
	Profit            decimal.Decimal
	TotalBalance      decimal.Decimal
	IncomeByCategory  []CategoryAmount
	ExpenseByCategory []CategoryAmount
	Cashflow          []CashflowPoint
	AccountBalances   []AccountBalance
}

// HRStats summarises the HR module for the dashboard
type HRStats struct {
	TotalEmployees  int
	OnLeave         int
	SalaryBudget    decimal.Decimal
	AverageSalary   decimal.Decimal
	HeadcountByDept []CategoryAmount
	UpcomingReviews int
}

// CustomerStats summarises the customer base for the dashboard
type CustomerStats struct {
	Total           int
	Active          int
	Inactive        int
	Business        int
	AveragePurchase decimal.Decimal
	TopCustomers    []TopCustomer
}

// TopCustomer is one row of the top-customers ranking
type TopCustomer struct {
	CustomerID     string
	Name           string
	TotalPurchases decimal.Decimal
}

// TicketStats summarises the support queue for the dashboard
type TicketStats struct {
	Total    int
	Open     int
	Resolved int
	ByStatus []CategoryAmount
}

// TaskStats summarises project and standalone tasks for the dashboard
type TaskStats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int
}

// DashboardStats is the full metric set consumed by the overview page
type DashboardStats struct {
	Sales     SalesStats
	Inventory InventoryStats
	Finance   FinanceStats
	HR        HRStats
	Customers CustomerStats
	Tickets   TicketStats
	Tasks     TaskStats
}
