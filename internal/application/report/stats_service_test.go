package report

import (
	"testing"
	"time"

	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/domain/hr"
	"github.com/optibiz/erp/internal/domain/inventory"
	"github.com/optibiz/erp/internal/domain/trade"
	"github.com/optibiz/erp/internal/domain/workplace"
	"github.com/optibiz/erp/internal/infrastructure/seed"
	"github.com/optibiz/erp/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// seededService builds a stats service over the demo dataset with the
// clock pinned to the newest date in the data.
func seededService() *StatsService {
	s := NewStatsService(
		store.MustNew("emp", seed.Employees()),
		store.MustNew("prod", seed.Products()),
		store.MustNew("cust", seed.Customers()),
		store.MustNew("ticket", seed.Tickets()),
		store.MustNew("sale", seed.Sales()),
		store.MustNew("acc", seed.Accounts()),
		store.MustNew("tr", seed.Transactions()),
		store.MustNew("proj", seed.Projects()),
		store.MustNew("standalone", seed.Tasks()),
		DefaultOptions(),
		zap.NewNop(),
	)
	s.clock = func() time.Time {
		return time.Date(2023, 9, 20, 9, 0, 0, 0, time.UTC)
	}
	return s
}

func TestSalesStats(t *testing.T) {
	stats := seededService().SalesStats()

	t.Run("totals", func(t *testing.T) {
		assert.Equal(t, 5, stats.TotalOrders)
		assert.Equal(t, "17865.81", stats.TotalRevenue.StringFixed(2))
	})

	t.Run("category order follows the sale lines", func(t *testing.T) {
		require.Len(t, stats.SalesByCategory, 4)
		assert.Equal(t, "Smartphones", stats.SalesByCategory[0].Category)
		assert.Equal(t, "Accessories", stats.SalesByCategory[1].Category)
		assert.Equal(t, "Laptops", stats.SalesByCategory[2].Category)
		assert.Equal(t, "Tablets", stats.SalesByCategory[3].Category)
		assert.Equal(t, "1848.00", stats.SalesByCategory[0].Amount.StringFixed(2))
		assert.Equal(t, "7694.00", stats.SalesByCategory[2].Amount.StringFixed(2))
	})

	t.Run("recent sales are newest first", func(t *testing.T) {
		require.Len(t, stats.RecentSales, 5)
		assert.Equal(t, "sale4", stats.RecentSales[0].ID)
		assert.Equal(t, "sale2", stats.RecentSales[1].ID)
		assert.Equal(t, "sale3", stats.RecentSales[4].ID)
	})
}

func TestInventoryStats(t *testing.T) {
	stats := seededService().InventoryStats()

	t.Run("no product sits at or below its reorder level", func(t *testing.T) {
		assert.Equal(t, 10, stats.TotalProducts)
		assert.Zero(t, stats.LowStock)
		assert.Zero(t, stats.OutOfStock)
	})

	t.Run("top selling ranks by units sold", func(t *testing.T) {
		require.NotEmpty(t, stats.TopSelling)
		assert.Equal(t, "prod9", stats.TopSelling[0].ProductID)
		assert.Equal(t, 8, stats.TopSelling[0].Sold)
	})
}

func TestFinanceStats(t *testing.T) {
	stats := seededService().FinanceStats()

	t.Run("revenue and expenses split by type", func(t *testing.T) {
		assert.Equal(t, "9809.04", stats.Revenue.StringFixed(2))
		assert.Equal(t, "40008.55", stats.Expenses.StringFixed(2))
		assert.Equal(t, "-30199.51", stats.Profit.StringFixed(2))
	})

	t.Run("credit card balance is negated in the total", func(t *testing.T) {
		// 125750.45 + 45250.80 + 750.25 + 75000.00 - (-2450.75)
		assert.Equal(t, "249202.25", stats.TotalBalance.StringFixed(2))
	})

	t.Run("cashflow covers the whole trailing week", func(t *testing.T) {
		require.Len(t, stats.Cashflow, 7)
		assert.Equal(t, "2023-09-14", stats.Cashflow[0].Date)
		assert.Equal(t, "2023-09-20", stats.Cashflow[6].Date)
		assert.Equal(t, "8461.20", stats.Cashflow[1].Income.StringFixed(2))
		assert.True(t, stats.Cashflow[6].Income.IsZero())
	})

	t.Run("every account appears in the balances card", func(t *testing.T) {
		assert.Len(t, stats.AccountBalances, 5)
		assert.Equal(t, "Main Operations", stats.AccountBalances[0].Account)
	})
}

func TestHRStats(t *testing.T) {
	stats := seededService().HRStats()

	t.Run("headcount", func(t *testing.T) {
		assert.Equal(t, 5, stats.TotalEmployees)
		assert.Equal(t, 1, stats.OnLeave)
	})

	t.Run("average salary", func(t *testing.T) {
		assert.Equal(t, "39400.00", stats.AverageSalary.StringFixed(2))
		assert.Equal(t, "197000.00", stats.SalaryBudget.StringFixed(2))
	})

	t.Run("departments keep roster order", func(t *testing.T) {
		require.Len(t, stats.HeadcountByDept, 4)
		assert.Equal(t, "Sales", stats.HeadcountByDept[0].Category)
		assert.Equal(t, "2", stats.HeadcountByDept[0].Amount.String())
		assert.Equal(t, "IT", stats.HeadcountByDept[1].Category)
		assert.Equal(t, "Finance", stats.HeadcountByDept[2].Category)
		assert.Equal(t, "Inventory", stats.HeadcountByDept[3].Category)
	})
}

func TestCustomerStats(t *testing.T) {
	stats := seededService().CustomerStats()

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 7, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 3, stats.Business)

	require.Len(t, stats.TopCustomers, 5)
	assert.Equal(t, "cust5", stats.TopCustomers[0].CustomerID)
	assert.Equal(t, "12500.75", stats.TopCustomers[0].TotalPurchases.StringFixed(2))
	assert.Equal(t, "cust3", stats.TopCustomers[1].CustomerID)
	assert.Equal(t, "cust1", stats.TopCustomers[4].CustomerID)
}

func TestTicketStats(t *testing.T) {
	stats := seededService().TicketStats()

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Open)
	assert.Equal(t, 1, stats.Resolved)
}

func TestTaskStats(t *testing.T) {
	stats := seededService().TaskStats()

	assert.Equal(t, 13, stats.Total)
	assert.Zero(t, stats.Completed)
	assert.Equal(t, 1, stats.InProgress)
	assert.Zero(t, stats.Overdue)
}

func TestDashboard(t *testing.T) {
	stats := seededService().Dashboard()

	assert.Equal(t, 5, stats.Sales.TotalOrders)
	assert.Equal(t, 10, stats.Inventory.TotalProducts)
	assert.Equal(t, 5, stats.HR.TotalEmployees)
	assert.Equal(t, 8, stats.Customers.Total)
	assert.Equal(t, 4, stats.Tickets.Total)
	assert.Equal(t, 13, stats.Tasks.Total)
}

func TestStatsOnEmptyStores(t *testing.T) {
	s := NewStatsService(
		store.MustNew[hr.Employee]("emp", nil),
		store.MustNew[inventory.Product]("prod", nil),
		store.MustNew[crm.Customer]("cust", nil),
		store.MustNew[crm.SupportTicket]("ticket", nil),
		store.MustNew[trade.Sale]("sale", nil),
		store.MustNew[finance.Account]("acc", nil),
		store.MustNew[finance.Transaction]("tr", nil),
		store.MustNew[workplace.Project]("proj", nil),
		store.MustNew[workplace.Task]("standalone", nil),
		DefaultOptions(),
		zap.NewNop(),
	)

	stats := s.Dashboard()
	assert.Zero(t, stats.Sales.TotalOrders)
	assert.True(t, stats.HR.AverageSalary.IsZero())
	assert.True(t, stats.Customers.AveragePurchase.IsZero())
	assert.Len(t, stats.Finance.Cashflow, DefaultOptions().CashflowDays)
}
