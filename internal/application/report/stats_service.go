package report

import (
	"time"

	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/domain/hr"
	"github.com/optibiz/erp/internal/domain/inventory"
	"github.com/optibiz/erp/internal/domain/report"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/domain/trade"
	"github.com/optibiz/erp/internal/domain/workplace"
	"github.com/optibiz/erp/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Options tunes the dashboard rankings and windows
type Options struct {
	CashflowDays int
	TopCustomers int
	RecentSales  int
}

// DefaultOptions mirrors the dashboard's fixed chart dimensions
func DefaultOptions() Options {
	return Options{
		CashflowDays: 7,
		TopCustomers: 5,
		RecentSales:  5,
	}
}

// StatsService reduces store snapshots into dashboard statistics. It
// reads the stores and never mutates them.
type StatsService struct {
	employees    *store.Store[hr.Employee]
	products     *store.Store[inventory.Product]
	customers    *store.Store[crm.Customer]
	tickets      *store.Store[crm.SupportTicket]
	sales        *store.Store[trade.Sale]
	accounts     *store.Store[finance.Account]
	transactions *store.Store[finance.Transaction]
	projects     *store.Store[workplace.Project]
	tasks        *store.Store[workplace.Task]
	opts         Options
	logger       *zap.Logger
	clock        func() time.Time
}

// NewStatsService creates a stats service over the given stores
func NewStatsService(
	employees *store.Store[hr.Employee],
	products *store.Store[inventory.Product],
	customers *store.Store[crm.Customer],
	tickets *store.Store[crm.SupportTicket],
	sales *store.Store[trade.Sale],
	accounts *store.Store[finance.Account],
	transactions *store.Store[finance.Transaction],
	projects *store.Store[workplace.Project],
	tasks *store.Store[workplace.Task],
	opts Options,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		employees:    employees,
		products:     products,
		customers:    customers,
		tickets:      tickets,
		sales:        sales,
		accounts:     accounts,
		transactions: transactions,
		projects:     projects,
		tasks:        tasks,
		opts:         opts,
		logger:       logger,
		clock:        time.Now,
	}
}

// Dashboard computes the full metric set for the overview page
func (s *StatsService) Dashboard() report.DashboardStats {
	return report.DashboardStats{
		Sales:     s.SalesStats(),
		Inventory: s.InventoryStats(),
		Finance:   s.FinanceStats(),
		HR:        s.HRStats(),
		Customers: s.CustomerStats(),
		Tickets:   s.TicketStats(),
		Tasks:     s.TaskStats(),
	}
}

// SalesStats summarises the sale collection. Category revenue resolves
// each sale line against the product store; lines whose product id is
// absent fall into an "Unknown" bucket instead of failing.
func (s *StatsService) SalesStats() report.SalesStats {
	sales := s.sales.Snapshot()

	type lineAmount struct {
		category string
		amount   decimal.Decimal
	}
	var lines []lineAmount
	for _, sale := range sales {
		for _, item := range sale.Items {
			category := "Unknown"
			if product, ok := s.products.Get(item.ProductID); ok {
				category = product.Category
			}
			lines = append(lines, lineAmount{category: category, amount: item.TotalPrice})
		}
	}

	recent := TopN(sales, s.opts.RecentSales, func(a, b trade.Sale) bool {
		return a.OrderDate > b.OrderDate
	})

	return report.SalesStats{
		TotalOrders:  len(sales),
		TotalRevenue: Sum(sales, func(sale trade.Sale) decimal.Decimal { return sale.TotalAmount }),
		SalesByCategory: GroupSum(lines,
			func(l lineAmount) string { return l.category },
			func(l lineAmount) decimal.Decimal { return l.amount }),
		RecentSales: recent,
	}
}

// InventoryStats summarises the product collection
func (s *StatsService) InventoryStats() report.InventoryStats {
	products := s.products.Snapshot()

	type soldCount struct {
		product inventory.Product
		sold    int
	}
	sold := make(map[string]int)
	for _, sale := range s.sales.Snapshot() {
		for _, item := range sale.Items {
			sold[item.ProductID] += item.Quantity
		}
	}
	var counts []soldCount
	for _, p := range products {
		if n := sold[p.ID]; n > 0 {
			counts = append(counts, soldCount{product: p, sold: n})
		}
	}
	ranked := TopN(counts, s.opts.RecentSales, func(a, b soldCount) bool {
		return a.sold > b.sold
	})
	topSelling := make([]report.ProductSales, 0, len(ranked))
	for _, c := range ranked {
		topSelling = append(topSelling, report.ProductSales{
			ProductID: c.product.ID,
			Name:      c.product.Name,
			Sold:      c.sold,
		})
	}

	return report.InventoryStats{
		TotalProducts:   len(products),
		LowStock:        Count(products, inventory.Product.NeedsReorder),
		OutOfStock:      Count(products, inventory.Product.IsOutOfStock),
		TotalStockValue: Sum(products, inventory.Product.StockValue),
		StockByCategory: GroupSum(products,
			func(p inventory.Product) string { return p.Category },
			func(p inventory.Product) decimal.Decimal { return decimal.NewFromInt(int64(p.Quantity)) }),
		TopSelling: topSelling,
	}
}

// FinanceStats summarises accounts and transactions. Credit-card
// balances count against the total balance.
func (s *StatsService) FinanceStats() report.FinanceStats {
	transactions := s.transactions.Snapshot()
	accounts := s.accounts.Snapshot()

	income := Where(transactions, finance.Transaction.IsIncome)
	expenses := Where(transactions, finance.Transaction.IsExpense)
	amount := func(t finance.Transaction) decimal.Decimal { return t.Amount }
	category := func(t finance.Transaction) string { return t.Category }

	revenue := Sum(income, amount)
	spent := Sum(expenses, amount)

	balances := make([]report.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balances = append(balances, report.AccountBalance{Account: a.Name, Balance: a.Balance})
	}

	return report.FinanceStats{
		Revenue:           revenue,
		Expenses:          spent,
		Profit:            revenue.Sub(spent),
		TotalBalance:      Sum(accounts, finance.Account.NetBalance),
		IncomeByCategory:  GroupSum(income, category, amount),
		ExpenseByCategory: GroupSum(expenses, category, amount),
		Cashflow:          CashflowSeries(transactions, s.clock(), s.opts.CashflowDays),
		AccountBalances:   balances,
	}
}

// HRStats summarises the employee collection
func (s *StatsService) HRStats() report.HRStats {
	employees := s.employees.Snapshot()

	salary := func(e hr.Employee) decimal.Decimal { return e.Salary }
	average, err := Average(employees, salary)
	if err != nil {
		s.logger.Debug("average salary undefined", zap.Error(err))
	}

	return report.HRStats{
		TotalEmployees: len(employees),
		OnLeave:        Count(employees, hr.Employee.IsOnLeave),
		SalaryBudget:   Sum(employees, salary),
		AverageSalary:  average,
		HeadcountByDept: GroupCount(employees,
			func(e hr.Employee) string { return e.Department }),
		UpcomingReviews: Count(employees, func(e hr.Employee) bool {
			return len(e.PerformanceReviews) > 0
		}),
	}
}

// CustomerStats summarises the customer base
func (s *StatsService) CustomerStats() report.CustomerStats {
	customers := s.customers.Snapshot()

	purchases := func(c crm.Customer) decimal.Decimal { return c.TotalPurchases }
	average, err := Average(customers, purchases)
	if err != nil {
		s.logger.Debug("average purchase undefined", zap.Error(err))
	}

	ranked := TopN(customers, s.opts.TopCustomers, func(a, b crm.Customer) bool {
		return a.TotalPurchases.GreaterThan(b.TotalPurchases)
	})
	top := make([]report.TopCustomer, 0, len(ranked))
	for _, c := range ranked {
		top = append(top, report.TopCustomer{
			CustomerID:     c.ID,
			Name:           c.FullName(),
			TotalPurchases: c.TotalPurchases,
		})
	}

	return report.CustomerStats{
		Total:           len(customers),
		Active:          Count(customers, crm.Customer.IsActive),
		Inactive:        Count(customers, func(c crm.Customer) bool { return !c.IsActive() }),
		Business:        Count(customers, crm.Customer.IsBusiness),
		AveragePurchase: average,
		TopCustomers:    top,
	}
}

// TicketStats summarises the support queue
func (s *StatsService) TicketStats() report.TicketStats {
	tickets := s.tickets.Snapshot()
	return report.TicketStats{
		Total:    len(tickets),
		Open:     Count(tickets, crm.SupportTicket.IsOpen),
		Resolved: Count(tickets, crm.SupportTicket.IsResolved),
		ByStatus: GroupCount(tickets,
			func(t crm.SupportTicket) string { return string(t.Status) }),
	}
}

// TaskStats summarises project tasks plus standalone tasks
func (s *StatsService) TaskStats() report.TaskStats {
	var tasks []workplace.Task
	for _, p := range s.projects.Snapshot() {
		tasks = append(tasks, p.Tasks...)
	}
	tasks = append(tasks, s.tasks.Snapshot()...)

	today := shared.FormatDate(s.clock())
	return report.TaskStats{
		Total:      len(tasks),
		Completed:  Count(tasks, func(t workplace.Task) bool { return t.Status == workplace.TaskStatusCompleted }),
		InProgress: Count(tasks, func(t workplace.Task) bool { return t.Status == workplace.TaskStatusInProgress }),
		Overdue: Count(tasks, func(t workplace.Task) bool {
			return t.Status != workplace.TaskStatusCompleted && t.DueDate != "" && t.DueDate < today
		}),
	}
}
