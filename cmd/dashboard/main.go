package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	crmapp "github.com/optibiz/erp/internal/application/crm"
	financeapp "github.com/optibiz/erp/internal/application/finance"
	hrapp "github.com/optibiz/erp/internal/application/hr"
	inventoryapp "github.com/optibiz/erp/internal/application/inventory"
	reportapp "github.com/optibiz/erp/internal/application/report"
	"github.com/optibiz/erp/internal/application/tableview"
	"github.com/optibiz/erp/internal/domain/report"
	"github.com/optibiz/erp/internal/infrastructure/config"
	"github.com/optibiz/erp/internal/infrastructure/logger"
	"github.com/optibiz/erp/internal/infrastructure/seed"
	"github.com/optibiz/erp/internal/store"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	sessionID := uuid.NewString()
	log = log.With(zap.String("session_id", sessionID))
	log.Info("Starting dashboard",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Seed the entity stores
	employees := store.MustNew("emp", seed.Employees())
	payrolls := store.MustNew("pay", seed.Payrolls())
	products := store.MustNew("prod", seed.Products())
	suppliers := store.MustNew("sup", seed.Suppliers())
	customers := store.MustNew("cust", seed.Customers())
	tickets := store.MustNew("ticket", seed.Tickets())
	sales := store.MustNew("sale", seed.Sales())
	purchaseOrders := store.MustNew("po", seed.PurchaseOrders())
	accounts := store.MustNew("acc", seed.Accounts())
	transactions := store.MustNew("tr", seed.Transactions())
	projects := store.MustNew("proj", seed.Projects())
	tasks := store.MustNew("standalone", seed.Tasks())
	assets := store.MustNew("asset", seed.Assets())
	documents := store.MustNew("doc", seed.Documents())

	log.Info("Stores seeded",
		zap.Int("employees", employees.Len()),
		zap.Int("products", products.Len()),
		zap.Int("customers", customers.Len()),
		zap.Int("sales", sales.Len()),
		zap.Int("purchase_orders", purchaseOrders.Len()),
		zap.Int("transactions", transactions.Len()),
		zap.Int("assets", assets.Len()),
		zap.Int("documents", documents.Len()),
	)

	// Aggregate the overview metrics
	statsService := reportapp.NewStatsService(
		employees, products, customers, tickets, sales,
		accounts, transactions, projects, tasks,
		reportapp.Options{
			CashflowDays: cfg.Dashboard.CashflowDays,
			TopCustomers: cfg.Dashboard.TopCustomers,
			RecentSales:  cfg.Dashboard.RecentSales,
		},
		log,
	)
	stats := statsService.Dashboard()
	renderStats(stats)

	pageSize := cfg.Table.PageSize

	// Module tables, one per page of the app
	employeeView := tableview.NewView(hrapp.EmployeeColumns(),
		tableview.WithPageSize(pageSize))
	renderTable("Employees", employeeView, employees.Snapshot())

	payrollView := tableview.NewView(hrapp.PayrollColumns(),
		tableview.WithPageSize(pageSize))
	renderTable("Payroll", payrollView, payrolls.Snapshot())

	productView := tableview.NewView(inventoryapp.ProductColumns(suppliers),
		tableview.WithPageSize(pageSize),
		tableview.WithInitialSort("quantity", tableview.Ascending))
	renderTable("Inventory (lowest stock first)", productView, products.Snapshot())

	customerView := tableview.NewView(crmapp.CustomerColumns(),
		tableview.WithPageSize(pageSize))
	customerView.SetFilterText("business")
	renderTable("Customers matching \"business\"", customerView, customers.Snapshot())

	ticketView := crmapp.NewTicketView(customers, pageSize)
	renderTable("Support Tickets", ticketView, tickets.Snapshot())

	transactionView := financeapp.NewTransactionView(accounts, pageSize)
	renderTable("Transactions", transactionView, transactions.Snapshot())

	log.Info("Dashboard rendered")
}

func renderStats(stats report.DashboardStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "== Overview ==")
	fmt.Fprintf(w, "Sales\t%d orders\trevenue $%s\n",
		stats.Sales.TotalOrders, stats.Sales.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Inventory\t%d products\t%d low stock\t%d out of stock\n",
		stats.Inventory.TotalProducts, stats.Inventory.LowStock, stats.Inventory.OutOfStock)
	fmt.Fprintf(w, "Finance\trevenue $%s\texpenses $%s\tprofit $%s\n",
		stats.Finance.Revenue.StringFixed(2),
		stats.Finance.Expenses.StringFixed(2),
		stats.Finance.Profit.StringFixed(2))
	fmt.Fprintf(w, "HR\t%d employees\t%d on leave\tavg salary $%s\n",
		stats.HR.TotalEmployees, stats.HR.OnLeave, stats.HR.AverageSalary.StringFixed(2))
	fmt.Fprintf(w, "Customers\t%d total\t%d active\t%d inactive\n",
		stats.Customers.Total, stats.Customers.Active, stats.Customers.Inactive)
	fmt.Fprintf(w, "Tickets\t%d total\t%d open\t%d resolved\n",
		stats.Tickets.Total, stats.Tickets.Open, stats.Tickets.Resolved)
	fmt.Fprintf(w, "Tasks\t%d total\t%d in progress\t%d overdue\n",
		stats.Tasks.Total, stats.Tasks.InProgress, stats.Tasks.Overdue)

	fmt.Fprintln(w, "\nSales by category")
	for _, c := range stats.Sales.SalesByCategory {
		fmt.Fprintf(w, "  %s\t$%s\n", c.Category, c.Amount.StringFixed(2))
	}

	fmt.Fprintln(w, "\nCashflow")
	for _, p := range stats.Finance.Cashflow {
		fmt.Fprintf(w, "  %s\tin $%s\tout $%s\n",
			p.Date, p.Income.StringFixed(2), p.Expense.StringFixed(2))
	}

	fmt.Fprintln(w, "\nTop customers")
	for _, c := range stats.Customers.TopCustomers {
		fmt.Fprintf(w, "  %s\t$%s\n", c.Name, c.TotalPurchases.StringFixed(2))
	}
	fmt.Fprintln(w)
}

func renderTable[T any](title string, view *tableview.View[T], items []T) {
	result := view.Project(items)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "== %s ==\n", title)
	for _, col := range view.Columns() {
		if col.Hidden {
			continue
		}
		fmt.Fprintf(w, "%s\t", col.Title)
	}
	fmt.Fprintln(w)
	for _, row := range result.Rows {
		for _, col := range view.Columns() {
			if col.Hidden {
				continue
			}
			fmt.Fprintf(w, "%s\t", col.Render(row))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "showing %d of %d (total %d)\n\n",
		len(result.Rows), result.TotalFilteredCount, result.TotalCount)
}
