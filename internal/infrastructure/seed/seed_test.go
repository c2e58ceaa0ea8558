package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionSizes(t *testing.T) {
	assert.Len(t, Employees(), 5)
	assert.Len(t, Payrolls(), 2)
	assert.Len(t, Products(), 10)
	assert.Len(t, Suppliers(), 5)
	assert.Len(t, Customers(), 8)
	assert.Len(t, Tickets(), 4)
	assert.Len(t, Sales(), 5)
	assert.Len(t, PurchaseOrders(), 4)
	assert.Len(t, Accounts(), 5)
	assert.Len(t, Transactions(), 8)
	assert.Len(t, Projects(), 2)
	assert.Len(t, Tasks(), 3)
	assert.Len(t, Assets(), 5)
	assert.Len(t, Documents(), 5)
}

func TestUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	record := func(id string) {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	for _, e := range Employees() {
		record(e.ID)
	}
	for _, p := range Payrolls() {
		record(p.ID)
	}
	for _, p := range Products() {
		record(p.ID)
	}
	for _, s := range Suppliers() {
		record(s.ID)
	}
	for _, c := range Customers() {
		record(c.ID)
	}
	for _, tk := range Tickets() {
		record(tk.ID)
	}
	for _, s := range Sales() {
		record(s.ID)
	}
	for _, po := range PurchaseOrders() {
		record(po.ID)
	}
	for _, a := range Accounts() {
		record(a.ID)
	}
	for _, tr := range Transactions() {
		record(tr.ID)
	}
	for _, p := range Projects() {
		record(p.ID)
	}
	for _, task := range Tasks() {
		record(task.ID)
	}
	for _, a := range Assets() {
		record(a.ID)
	}
	for _, d := range Documents() {
		record(d.ID)
	}
}

func TestReferencesResolve(t *testing.T) {
	customers := map[string]bool{}
	for _, c := range Customers() {
		customers[c.ID] = true
	}
	products := map[string]bool{}
	for _, p := range Products() {
		products[p.ID] = true
	}
	suppliers := map[string]bool{}
	for _, s := range Suppliers() {
		suppliers[s.ID] = true
	}
	accounts := map[string]bool{}
	for _, a := range Accounts() {
		accounts[a.ID] = true
	}

	employees := map[string]bool{}
	for _, e := range Employees() {
		employees[e.ID] = true
	}

	t.Run("payroll runs point at known employees", func(t *testing.T) {
		for _, p := range Payrolls() {
			assert.True(t, employees[p.EmployeeID], "payroll %s employee %s", p.ID, p.EmployeeID)
		}
	})

	t.Run("tickets point at known customers", func(t *testing.T) {
		for _, tk := range Tickets() {
			assert.True(t, customers[tk.CustomerID], "ticket %s customer %s", tk.ID, tk.CustomerID)
		}
	})

	t.Run("sales point at known customers and products", func(t *testing.T) {
		for _, s := range Sales() {
			assert.True(t, customers[s.CustomerID], "sale %s customer %s", s.ID, s.CustomerID)
			for _, item := range s.Items {
				assert.True(t, products[item.ProductID], "sale %s product %s", s.ID, item.ProductID)
			}
		}
	})

	t.Run("purchase orders point at known suppliers and products", func(t *testing.T) {
		for _, po := range PurchaseOrders() {
			assert.True(t, suppliers[po.SupplierID], "order %s supplier %s", po.ID, po.SupplierID)
			for _, item := range po.Items {
				assert.True(t, products[item.ProductID], "order %s product %s", po.ID, item.ProductID)
			}
		}
	})

	t.Run("products point at known suppliers", func(t *testing.T) {
		for _, p := range Products() {
			assert.True(t, suppliers[p.Supplier], "product %s supplier %s", p.ID, p.Supplier)
		}
	})

	t.Run("transactions point at known accounts", func(t *testing.T) {
		for _, tr := range Transactions() {
			assert.True(t, accounts[tr.Account], "transaction %s account %s", tr.ID, tr.Account)
		}
	})

	t.Run("project tasks carry their project id", func(t *testing.T) {
		for _, p := range Projects() {
			for _, task := range p.Tasks {
				assert.Equal(t, p.ID, task.ProjectID)
			}
		}
	})
}
